package qecc

import (
	"time"

	"github.com/google/uuid"
)

// Trial is one pipeline run scheduled on the Pool.
type Trial struct {
	ID        string
	Code      string
	Basis     Basis
	Positions []int
	StartTime time.Time
}

// TrialOption is a function type for configuring trials
type TrialOption func(*Trial)

// WithTrialID replaces the generated trial ID.
func WithTrialID(id string) TrialOption {
	return func(t *Trial) {
		t.ID = id
	}
}

func NewTrial(code string, basis Basis, positions []int, opts ...TrialOption) Trial {
	trial := Trial{
		ID:        uuid.New().String(),
		Code:      code,
		Basis:     basis,
		Positions: positions,
	}

	for _, opt := range opts {
		opt(&trial)
	}

	return trial
}

// TrialResult is what a worker reports back for a Trial.
type TrialResult struct {
	TrialID     string
	Result      *CorrectionResult
	Err         error
	Duration    time.Duration
	CompletedAt time.Time
}
