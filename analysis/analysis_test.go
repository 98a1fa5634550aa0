package analysis

import (
	"testing"

	"fixit-be/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		suggestion   Suggestion
		wantType     models.IssueType
		wantPriority models.IssuePriority
	}{
		{
			"valid values pass through",
			Suggestion{DetectedType: models.Road, SuggestedPriority: models.High},
			models.Road, models.High,
		},
		{
			"unknown priority becomes Medium",
			Suggestion{DetectedType: models.Garbage, SuggestedPriority: "Critical"},
			models.Garbage, models.Medium,
		},
		{
			"unknown type becomes Other",
			Suggestion{DetectedType: "Graffiti", SuggestedPriority: models.Low},
			models.Other, models.Low,
		},
		{
			"empty suggestion is clamped",
			Suggestion{},
			models.Other, models.Medium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.suggestion
			s.Normalize()
			if s.DetectedType != tt.wantType {
				t.Errorf("type = %q, want %q", s.DetectedType, tt.wantType)
			}
			if s.SuggestedPriority != tt.wantPriority {
				t.Errorf("priority = %q, want %q", s.SuggestedPriority, tt.wantPriority)
			}
		})
	}
}
