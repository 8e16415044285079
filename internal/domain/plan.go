package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultPreferences = "culture, relaxation"
	DefaultBudget      = 2000
	DefaultNights      = 5
	DefaultOriginCode  = "NYCA"
	DefaultOriginName  = "New York"
)

var ErrInvalidRequest = errors.New("invalid request")

// PlanRequest is the user input for one recommendation cycle.
type PlanRequest struct {
	Region      string
	Preferences string
	Budget      float64
	Nights      int
	OriginCode  string
	OriginName  string
}

// WithDefaults fills the empty text fields. Budget and Nights are taken as
// given: zero is a real answer, so callers substitute DefaultBudget and
// DefaultNights only when no value was provided.
func (r PlanRequest) WithDefaults() PlanRequest {
	if strings.TrimSpace(r.Preferences) == "" {
		r.Preferences = DefaultPreferences
	}
	if strings.TrimSpace(r.OriginCode) == "" {
		r.OriginCode = DefaultOriginCode
	}
	if strings.TrimSpace(r.OriginName) == "" {
		r.OriginName = DefaultOriginName
	}
	return r
}

// Validate checks the numeric fields. Any region is accepted; one outside the
// catalog yields an empty candidate list rather than an error.
func (r PlanRequest) Validate() error {
	if r.Nights <= 0 {
		return fmt.Errorf("%w: nights must be positive, got %d", ErrInvalidRequest, r.Nights)
	}
	if r.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidRequest)
	}
	return nil
}

// RecommendationRequest is the read-only input of the recommendation engine.
type RecommendationRequest struct {
	Region      string
	Preferences string
	Budget      float64
	Nights      int
	Candidates  []Destination
}

// Plan is the result of one cycle.
type Plan struct {
	Request    PlanRequest
	Candidates []Destination
	Report     Report
}
