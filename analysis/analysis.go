// Package analysis defines the contract with the image-analysis
// collaborator that suggests report details from a photo. The model
// call itself lives outside this service; only the vocabulary and the
// normalization of its output are defined here.
package analysis

import (
	"context"

	"fixit-be/models"
)

// Input is a photo of a potential civic issue plus optional reporter
// context. ImageDataURI is a data URI ("data:<mime>;base64,...").
type Input struct {
	ImageDataURI string `json:"imageDataUri"`
	Description  string `json:"description,omitempty"`
}

// Suggestion is the collaborator's proposed report, constrained to
// the same enumerations as the data model. The UI feeds an accepted
// suggestion into the create flow.
type Suggestion struct {
	DetectedType         models.IssueType     `json:"detectedType"`
	SuggestedTitle       string               `json:"suggestedTitle"`
	SuggestedDescription string               `json:"suggestedDescription"`
	SuggestedPriority    models.IssuePriority `json:"suggestedPriority"`
}

// Analyzer is implemented by whatever backs the suggestion (a
// generative model in production, a fake in tests).
type Analyzer interface {
	AnalyzeIssueImage(ctx context.Context, in Input) (*Suggestion, error)
}

// Normalize clamps out-of-enum values from the collaborator: an
// unknown type becomes Other, an unknown priority becomes Medium.
func (s *Suggestion) Normalize() {
	if !models.ValidIssueType(s.DetectedType) {
		s.DetectedType = models.Other
	}
	if !models.ValidIssuePriority(s.SuggestedPriority) {
		s.SuggestedPriority = models.Medium
	}
}
