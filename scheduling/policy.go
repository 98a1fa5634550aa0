// Package scheduling maps issue priorities onto service-level due
// dates and classifies how urgent an open issue is relative to the
// wall clock. Everything here is pure; the store calls CalculateDueDate
// on writes and the dashboards call ClassifyUrgency on every read.
package scheduling

import (
	"fmt"
	"time"

	"fixit-be/models"
)

// SLA windows, in calendar days after the report time.
const (
	HighPriorityDays   = 3
	MediumPriorityDays = 5
	LowPriorityDays    = 7
)

// DueSoonWindow is how close to the due date an open issue has to be
// before it is flagged as due soon.
const DueSoonWindow = 2 * 24 * time.Hour

// Urgency is a read-time display classification. It is never persisted
// since it depends on the current time.
type Urgency string

const (
	UrgencyNone    Urgency = "None"
	UrgencyOverdue Urgency = "Overdue"
	UrgencyDueSoon Urgency = "DueSoon"
	UrgencyNormal  Urgency = "Normal"
)

// CalculateDueDate returns the deadline for an issue reported at
// reportedAt with the given priority. Unrecognized priorities fall
// back to the Low-tier window. Uses calendar-day addition so the
// deadline lands on the same wall-clock time N days later, DST
// transitions included.
func CalculateDueDate(reportedAt time.Time, priority models.IssuePriority) time.Time {
	switch priority {
	case models.High:
		return reportedAt.AddDate(0, 0, HighPriorityDays)
	case models.Medium:
		return reportedAt.AddDate(0, 0, MediumPriorityDays)
	case models.Low:
		fallthrough
	default:
		return reportedAt.AddDate(0, 0, LowPriorityDays)
	}
}

// ClassifyUrgency buckets an issue's deadline against now. A zero
// dueDate or a resolved issue classifies as None.
func ClassifyUrgency(dueDate time.Time, status models.IssueStatus, now time.Time) Urgency {
	if dueDate.IsZero() || status == models.Resolved {
		return UrgencyNone
	}
	if now.After(dueDate) {
		return UrgencyOverdue
	}
	if dueDate.Sub(now) <= DueSoonWindow {
		return UrgencyDueSoon
	}
	return UrgencyNormal
}

// FormatDueDate renders the deadline the way the dashboards show it:
// "Overdue by 2d", "Due in 5d", or "N/A" for resolved issues.
func FormatDueDate(dueDate time.Time, status models.IssueStatus, now time.Time) string {
	if dueDate.IsZero() || status == models.Resolved {
		return "N/A"
	}
	if now.After(dueDate) {
		return fmt.Sprintf("Overdue by %s", roughDuration(now.Sub(dueDate)))
	}
	return fmt.Sprintf("Due in %s", roughDuration(dueDate.Sub(now)))
}

func roughDuration(d time.Duration) string {
	if days := int(d.Hours() / 24); days >= 1 {
		return fmt.Sprintf("%dd", days)
	}
	if hours := int(d.Hours()); hours >= 1 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
