package models

import (
	"time"
)

// IssueType enum
type IssueType string

const (
	Road        IssueType = "Road"
	Garbage     IssueType = "Garbage"
	Streetlight IssueType = "Streetlight"
	Park        IssueType = "Park"
	Other       IssueType = "Other"
)

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "Low"
	Medium IssuePriority = "Medium"
	High   IssuePriority = "High"
)

// IssueStatus enum
type IssueStatus string

const (
	Pending    IssueStatus = "Pending"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

// Location holds the coordinates of a reported issue plus an optional
// reverse-geocoded address. Zero/zero coordinates mean the device
// location was never acquired and are rejected at the API boundary.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// Acquired reports whether the location carries real coordinates.
func (l Location) Acquired() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID           string        `bson:"_id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Type         IssueType     `bson:"type" json:"type"`
	Priority     IssuePriority `bson:"priority" json:"priority"`
	Location     Location      `bson:"location" json:"location"`
	Status       IssueStatus   `bson:"status" json:"status"`
	ReportedByID string        `bson:"reportedById" json:"reportedById"`
	ReportedAt   time.Time     `bson:"reportedAt" json:"reportedAt"`
	DueDate      time.Time     `bson:"dueDate" json:"dueDate"`
	ResolvedAt   *time.Time    `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ImageURL     *string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	AssignedTo   string        `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	AdminNotes   string        `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
}

// NewIssueInput is what the reporting flow hands to the store. The id,
// due date and resolution timestamp are server-computed.
type NewIssueInput struct {
	Title        string
	Description  string
	Type         IssueType
	Priority     IssuePriority
	Location     Location
	ReportedByID string
	ReportedAt   time.Time // zero means "now"
	ImageURL     *string
}

// ValidIssueType reports whether t is one of the closed issue types.
func ValidIssueType(t IssueType) bool {
	switch t {
	case Road, Garbage, Streetlight, Park, Other:
		return true
	}
	return false
}

// ValidIssuePriority reports whether p is one of the closed priorities.
func ValidIssuePriority(p IssuePriority) bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// ValidIssueStatus reports whether s is one of the closed statuses.
func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case Pending, InProgress, Resolved:
		return true
	}
	return false
}
