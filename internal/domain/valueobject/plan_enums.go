package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// DistributionType – immutable value object
// ---------------------------------------------------------------------------

// DistributionType says whether a plan's installments are computed uniformly
// (FIXED) or individually specified by the caller (CUSTOM).
type DistributionType struct {
	value string
}

const (
	distributionFixed  = "FIXED"
	distributionCustom = "CUSTOM"
)

var (
	DistributionTypeFixed  = DistributionType{value: distributionFixed}
	DistributionTypeCustom = DistributionType{value: distributionCustom}
)

var validDistributionTypes = map[string]DistributionType{
	distributionFixed:  DistributionTypeFixed,
	distributionCustom: DistributionTypeCustom,
}

// NewDistributionType creates a DistributionType from a raw string.
func NewDistributionType(s string) (DistributionType, error) {
	v, ok := validDistributionTypes[s]
	if !ok {
		return DistributionType{}, fmt.Errorf("invalid distribution type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (d DistributionType) String() string { return d.value }

// IsZero returns true when not initialised.
func (d DistributionType) IsZero() bool { return d.value == "" }

// IsCustom reports whether installments are individually specified.
func (d DistributionType) IsCustom() bool { return d.value == distributionCustom }

// Equal returns true when both types match.
func (d DistributionType) Equal(other DistributionType) bool { return d.value == other.value }

// ---------------------------------------------------------------------------
// PlanFrequency – immutable value object
// ---------------------------------------------------------------------------

// PlanFrequency is the cadence of a fixed payment plan.
type PlanFrequency struct {
	value string
}

const (
	frequencyWeekly    = "WEEKLY"
	frequencyBiweekly  = "BIWEEKLY"
	frequencyMonthly   = "MONTHLY"
	frequencyQuarterly = "QUARTERLY"
	frequencyAnnual    = "ANNUAL"
)

var (
	PlanFrequencyWeekly    = PlanFrequency{value: frequencyWeekly}
	PlanFrequencyBiweekly  = PlanFrequency{value: frequencyBiweekly}
	PlanFrequencyMonthly   = PlanFrequency{value: frequencyMonthly}
	PlanFrequencyQuarterly = PlanFrequency{value: frequencyQuarterly}
	PlanFrequencyAnnual    = PlanFrequency{value: frequencyAnnual}
)

var validPlanFrequencies = map[string]PlanFrequency{
	frequencyWeekly:    PlanFrequencyWeekly,
	frequencyBiweekly:  PlanFrequencyBiweekly,
	frequencyMonthly:   PlanFrequencyMonthly,
	frequencyQuarterly: PlanFrequencyQuarterly,
	frequencyAnnual:    PlanFrequencyAnnual,
}

// NewPlanFrequency creates a PlanFrequency from a raw string.
func NewPlanFrequency(s string) (PlanFrequency, error) {
	v, ok := validPlanFrequencies[s]
	if !ok {
		return PlanFrequency{}, fmt.Errorf("invalid plan frequency: %q", s)
	}
	return v, nil
}

// Advance returns t moved forward by n periods of this frequency.
func (f PlanFrequency) Advance(t time.Time, n int) time.Time {
	switch f.value {
	case frequencyWeekly:
		return t.AddDate(0, 0, 7*n)
	case frequencyBiweekly:
		return t.AddDate(0, 0, 14*n)
	case frequencyMonthly:
		return t.AddDate(0, n, 0)
	case frequencyQuarterly:
		return t.AddDate(0, 3*n, 0)
	case frequencyAnnual:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

// String returns the string representation.
func (f PlanFrequency) String() string { return f.value }

// IsZero returns true when not initialised.
func (f PlanFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies match.
func (f PlanFrequency) Equal(other PlanFrequency) bool { return f.value == other.value }

// ---------------------------------------------------------------------------
// PlanStatus – immutable value object
// ---------------------------------------------------------------------------

// PlanStatus represents the lifecycle stage of a payment plan.
type PlanStatus struct {
	value string
}

const (
	planStatusActive    = "ACTIVE"
	planStatusPaused    = "PAUSED"
	planStatusCompleted = "COMPLETED"
	planStatusCancelled = "CANCELLED"
)

var (
	PlanStatusActive    = PlanStatus{value: planStatusActive}
	PlanStatusPaused    = PlanStatus{value: planStatusPaused}
	PlanStatusCompleted = PlanStatus{value: planStatusCompleted}
	PlanStatusCancelled = PlanStatus{value: planStatusCancelled}
)

var validPlanStatuses = map[string]PlanStatus{
	planStatusActive:    PlanStatusActive,
	planStatusPaused:    PlanStatusPaused,
	planStatusCompleted: PlanStatusCompleted,
	planStatusCancelled: PlanStatusCancelled,
}

// NewPlanStatus creates a PlanStatus from a raw string.
func NewPlanStatus(s string) (PlanStatus, error) {
	v, ok := validPlanStatuses[s]
	if !ok {
		return PlanStatus{}, fmt.Errorf("invalid plan status: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (s PlanStatus) String() string { return s.value }

// IsZero returns true when not initialised.
func (s PlanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses match.
func (s PlanStatus) Equal(other PlanStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
