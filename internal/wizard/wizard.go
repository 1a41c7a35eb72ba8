package wizard

import (
	"net/url"
)

// TripType is the answer to step 1.
type TripType string

// CostRange is the answer to step 2.
type CostRange string

// CoverageLevel is the answer to step 3.
type CoverageLevel string

const (
	TripSingle TripType = "single"
	TripMulti  TripType = "multi"

	CostUnder500  CostRange = "under_500"
	Cost500To1500 CostRange = "500_1500"
	CostOver1500  CostRange = "over_1500"

	CoverStandard CoverageLevel = "standard"
	CoverPremium  CoverageLevel = "premium"
	CoverMax      CoverageLevel = "max"
)

// StepCount is the number of questionnaire steps.
const StepCount = 3

// StepComplete is the pseudo-step reached after the third selection.
const StepComplete = StepCount + 1

// Selections holds the shopper's answers. Zero values mean "unset".
type Selections struct {
	Trip  TripType
	Cost  CostRange
	Cover CoverageLevel
}

// Query parameter names used to round-trip selections between fragments.
const (
	paramTrip  = "trip"
	paramCost  = "cost"
	paramCover = "cover"
)

func validTrip(v string) bool {
	return v == string(TripSingle) || v == string(TripMulti)
}

func validCost(v string) bool {
	return v == string(CostUnder500) || v == string(Cost500To1500) || v == string(CostOver1500)
}

func validCover(v string) bool {
	return v == string(CoverStandard) || v == string(CoverPremium) || v == string(CoverMax)
}

// FromQuery decodes selections from URL query values. Unknown or invalid
// values are treated as unset.
func FromQuery(q url.Values) Selections {
	var s Selections
	if v := q.Get(paramTrip); validTrip(v) {
		s.Trip = TripType(v)
	}
	if v := q.Get(paramCost); validCost(v) {
		s.Cost = CostRange(v)
	}
	if v := q.Get(paramCover); validCover(v) {
		s.Cover = CoverageLevel(v)
	}
	return s
}

// Query encodes the set selections as URL query values.
func (s Selections) Query() url.Values {
	q := url.Values{}
	if s.Trip != "" {
		q.Set(paramTrip, string(s.Trip))
	}
	if s.Cost != "" {
		q.Set(paramCost, string(s.Cost))
	}
	if s.Cover != "" {
		q.Set(paramCover, string(s.Cover))
	}
	return q
}

// Step derives the current step from the set selections. Advancement is
// strictly linear: step 1 until the trip type is chosen, then step 2, then
// step 3, then StepComplete.
func (s Selections) Step() int {
	switch {
	case s.Trip == "":
		return 1
	case s.Cost == "":
		return 2
	case s.Cover == "":
		return 3
	default:
		return StepComplete
	}
}

// Complete reports whether all three answers are recorded.
func (s Selections) Complete() bool {
	return s.Step() == StepComplete
}

// WithSelection records a value for the given step, overwriting only that
// step's own field. Values that fail validation leave the field untouched.
func (s Selections) WithSelection(step int, value string) Selections {
	switch step {
	case 1:
		if validTrip(value) {
			s.Trip = TripType(value)
		}
	case 2:
		if validCost(value) {
			s.Cost = CostRange(value)
		}
	case 3:
		if validCover(value) {
			s.Cover = CoverageLevel(value)
		}
	}
	return s
}

// Reset returns the wizard to its initial state with all answers unset.
func (s Selections) Reset() Selections {
	return Selections{}
}

// ProgressStep is the indicator state for one questionnaire step.
type ProgressStep struct {
	Number    int
	Active    bool
	Completed bool
}

// Progress renders the indicator state for all steps: steps below the
// current one are completed, the current one is active, later steps neither.
func (s Selections) Progress() []ProgressStep {
	cur := s.Step()
	steps := make([]ProgressStep, 0, StepCount)
	for n := 1; n <= StepCount; n++ {
		steps = append(steps, ProgressStep{
			Number:    n,
			Active:    n == cur,
			Completed: n < cur,
		})
	}
	return steps
}

// ProgressFraction is the continuous fill of the progress bar,
// (currentStep-1)/3. It reaches 1.0 once the wizard is complete.
func (s Selections) ProgressFraction() float64 {
	return float64(s.Step()-1) / float64(StepCount)
}
