package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole enum
type UserRole string

const (
	RoleCitizen UserRole = "citizen"
	RoleAdmin   UserRole = "admin"
)

// ValidUserRole reports whether r is a known role.
func ValidUserRole(r UserRole) bool {
	return r == RoleCitizen || r == RoleAdmin
}

// User is a credential record in the directory. Passwords are stored
// bcrypt-hashed; the directory never keeps plaintext.
type User struct {
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// UserProfile is the display profile kept per registered email. The
// role-specific counters are advisory display metrics; they are not
// derived from the issue collection.
type UserProfile struct {
	Email       string    `json:"email"`
	Role        UserRole  `json:"role"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Phone       string    `json:"phone,omitempty"`
	Location    string    `json:"location,omitempty"`
	Bio         string    `json:"bio,omitempty"`

	// Citizen-specific
	ReportsSubmitted int      `json:"reportsSubmitted,omitempty"`
	ReportsResolved  int      `json:"reportsResolved,omitempty"`
	CommentsMade     int      `json:"commentsMade,omitempty"`
	Badges           []string `json:"badges,omitempty"`

	// Admin-specific
	IssuesManaged           int `json:"issuesManaged,omitempty"`
	IssuesResolvedThisMonth int `json:"issuesResolvedThisMonth,omitempty"`
}

// DefaultProfile builds the profile a freshly registered user starts
// with: display name from the local part of the email, zeroed
// role-specific counters, and a starter badge for citizens.
func DefaultProfile(email string, role UserRole) UserProfile {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	p := UserProfile{
		Email:       email,
		Role:        role,
		DisplayName: name,
		CreatedAt:   time.Now(),
	}
	if role == RoleCitizen {
		p.Badges = []string{"New Member"}
	}
	return p
}
