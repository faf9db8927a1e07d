package ai

import (
	"context"

	"hireflow/internal/recruit"
)

// FitReview is an advisory AI verdict on how well a candidate fits a job.
// It never feeds the deterministic screening engine.
type FitReview struct {
	Fit    bool
	Score  float64
	Reason string
	Note   string
	Raw    string
}

// Reviewer produces fit reviews for job/candidate pairs.
type Reviewer interface {
	Review(ctx context.Context, job *recruit.JobPosting, candidate *recruit.CandidateProfile) (*FitReview, error)
}
