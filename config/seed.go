package config

import (
	"context"
	"log"
	"time"

	"fixit-be/directory"
	"fixit-be/models"
	"fixit-be/store"
)

func strPtr(s string) *string { return &s }

// SeedDemoUsers registers the demo accounts used by the walkthrough.
func SeedDemoUsers(dir *directory.Directory) error {
	seed := []struct {
		email    string
		password string
		role     models.UserRole
	}{
		{"citizen@example.com", "password", models.RoleCitizen},
		{"admin@example.com", "password", models.RoleAdmin},
	}
	for _, u := range seed {
		if err := dir.AddUser(u.email, u.password, u.role); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoIssues loads a handful of reports so the dashboards have
// something to show on a fresh boot. Report times are offsets from
// now so the due-date tinting stays meaningful.
func SeedDemoIssues(ctx context.Context, issues *store.IssueStore) error {
	now := time.Now()
	seed := []struct {
		input  models.NewIssueInput
		status models.IssueStatus
		assign string
	}{
		{
			input: models.NewIssueInput{
				Title:       "Large Pothole on Main St",
				Description: "A large pothole near the intersection of Main St and 1st Ave is causing traffic issues.",
				Type:        models.Road,
				Priority:    models.High,
				Location: models.Location{
					Latitude: 34.0522, Longitude: -118.2437,
					Address: "100 Main St, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now.AddDate(0, 0, -10),
				ImageURL:     strPtr("https://picsum.photos/seed/issue1/400/300"),
			},
			status: models.Pending,
		},
		{
			input: models.NewIssueInput{
				Title:       "Streetlight Out",
				Description: "The streetlight at Elm St park entrance is not working.",
				Type:        models.Streetlight,
				Priority:    models.Medium,
				Location: models.Location{
					Latitude: 34.0550, Longitude: -118.2450,
					Address: "50 Elm St, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now.AddDate(0, 0, -4),
				ImageURL:     strPtr("https://picsum.photos/seed/issue2/400/300"),
			},
			status: models.InProgress,
			assign: "Dept. of Public Works",
		},
		{
			input: models.NewIssueInput{
				Title:       "Overflowing Bin",
				Description: "Public garbage bin at the bus stop on Oak Ave is overflowing.",
				Type:        models.Garbage,
				Priority:    models.Low,
				Location: models.Location{
					Latitude: 34.0500, Longitude: -118.2400,
					Address: "25 Oak Ave, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now.AddDate(0, 0, -14),
				ImageURL:     strPtr("https://picsum.photos/seed/issue3/400/300"),
			},
			status: models.Resolved,
		},
		{
			input: models.NewIssueInput{
				Title:       "Broken Park Bench",
				Description: "A bench in Central Park is broken and unsafe.",
				Type:        models.Park,
				Priority:    models.Medium,
				Location: models.Location{
					Latitude: 34.0600, Longitude: -118.2500,
					Address: "Central Park, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now.AddDate(0, 0, -1),
				ImageURL:     strPtr("https://picsum.photos/seed/issue4/400/300"),
			},
			status: models.Pending,
		},
		{
			input: models.NewIssueInput{
				Title:       "Illegal Dumping",
				Description: "Someone dumped trash behind the old factory on Industrial Rd.",
				Type:        models.Other,
				Priority:    models.High,
				Location: models.Location{
					Latitude: 34.0400, Longitude: -118.2300,
					Address: "1 Industrial Rd, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now.AddDate(0, 0, -2),
				ImageURL:     strPtr("https://picsum.photos/seed/issue5/400/300"),
			},
			status: models.InProgress,
			assign: "Sanitation Dept.",
		},
		{
			input: models.NewIssueInput{
				Title:       "Damaged Road Sign",
				Description: "Stop sign at Corner St & Avenue B is bent.",
				Type:        models.Road,
				Priority:    models.Medium,
				Location: models.Location{
					Latitude: 34.0700, Longitude: -118.2600,
					Address: "Corner St & Avenue B, Los Angeles",
				},
				ReportedByID: "citizen@example.com",
				ReportedAt:   now,
				ImageURL:     strPtr("https://picsum.photos/seed/issue6/400/300"),
			},
			status: models.Pending,
		},
	}

	for _, row := range seed {
		issue, err := issues.Create(ctx, row.input)
		if err != nil {
			return err
		}
		if row.status != models.Pending {
			if err := issues.SetStatus(ctx, issue.ID, row.status); err != nil {
				return err
			}
		}
		if row.assign != "" {
			if err := issues.SetAssignment(ctx, issue.ID, &row.assign, nil); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d demo issues", len(seed))
	return nil
}
