package store

import (
	"strings"

	"fixit-be/models"
)

// Filter narrows List results. Zero-valued fields are ignored.
type Filter struct {
	Status       models.IssueStatus
	Type         models.IssueType
	Priority     models.IssuePriority
	ReportedByID string
	// Search is a case-insensitive substring match over title,
	// description, address, id and reporter id.
	Search string
}

// Matches reports whether the issue passes every set criterion.
func (f Filter) Matches(issue models.Issue) bool {
	if f.Status != "" && issue.Status != f.Status {
		return false
	}
	if f.Type != "" && issue.Type != f.Type {
		return false
	}
	if f.Priority != "" && issue.Priority != f.Priority {
		return false
	}
	if f.ReportedByID != "" && issue.ReportedByID != f.ReportedByID {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(issue.Title), q) &&
			!strings.Contains(strings.ToLower(issue.Description), q) &&
			!strings.Contains(strings.ToLower(issue.Location.Address), q) &&
			!strings.Contains(strings.ToLower(issue.ID), q) &&
			!strings.Contains(strings.ToLower(issue.ReportedByID), q) {
			return false
		}
	}
	return true
}
