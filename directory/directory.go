// Package directory is the identity registry: credentials and display
// profiles keyed by email, separate from the issue collection.
package directory

import (
	"sync"
	"time"

	"fixit-be/models"
	"fixit-be/store"
)

// Directory keeps users and their profiles in memory behind a single
// lock. Emails are matched exactly and case-sensitively; callers that
// want normalization lowercase before calling.
type Directory struct {
	mu       sync.RWMutex
	users    map[string]models.User
	profiles map[string]models.UserProfile
}

// New returns an empty directory.
func New() *Directory {
	return &Directory{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.UserProfile),
	}
}

// AddUser registers an email/password/role triple and creates a
// default profile for the email if one does not already exist. The
// password is bcrypt-hashed before it is kept.
func (d *Directory) AddUser(email, password string, role models.UserRole) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[email]; ok {
		return store.ErrAlreadyExists
	}

	user := models.User{
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := user.HashPassword(); err != nil {
		return err
	}
	d.users[email] = user

	if _, ok := d.profiles[email]; !ok {
		d.profiles[email] = models.DefaultProfile(email, role)
	}
	return nil
}

// FindUser verifies the credential and returns the matching profile.
// A non-empty role restricts the lookup: a citizen account does not
// satisfy an admin lookup.
func (d *Directory) FindUser(email, password string, role models.UserRole) (*models.UserProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[email]
	if !ok || !user.ComparePassword(password) {
		return nil, store.ErrNotFound
	}
	if role != "" && user.Role != role {
		return nil, store.ErrNotFound
	}

	profile, ok := d.profiles[email]
	if !ok {
		profile = models.DefaultProfile(email, user.Role)
	}
	return &profile, nil
}

// GetProfile returns the profile for an email.
func (d *Directory) GetProfile(email string) (*models.UserProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	profile, ok := d.profiles[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &profile, nil
}

// SetProfile replaces the whole profile. No merge: callers
// read-modify-write. The email, role and creation time are pinned to
// the registered values so a profile update cannot reassign identity.
func (d *Directory) SetProfile(email string, profile models.UserProfile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.profiles[email]
	if !ok {
		return store.ErrNotFound
	}
	profile.Email = existing.Email
	profile.Role = existing.Role
	profile.CreatedAt = existing.CreatedAt
	d.profiles[email] = profile
	return nil
}

// Role returns the registered role for an email.
func (d *Directory) Role(email string) (models.UserRole, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[email]
	if !ok {
		return "", store.ErrNotFound
	}
	return user.Role, nil
}
