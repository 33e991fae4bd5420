// Package rating implements the scoring and rating engine for incident
// simulations. Rating scale is 800-1600 (SAT-style). All functions are
// pure: they operate on in-memory values, perform no I/O, and never fail —
// unrecognized inputs fall back to documented defaults.
package rating

// Incident severities, highest first.
const (
	SeverityP0 = "P0"
	SeverityP1 = "P1"
	SeverityP2 = "P2"
	SeverityP3 = "P3"
)

// Solution types.
const (
	SolutionRootCause   = "root_cause"
	SolutionWorkaround  = "workaround"
	SolutionEscalation  = "escalation"
	SolutionAbandonment = "abandonment"
	SolutionUnclear     = "unclear"
)

// Rating bounds and the rating assigned to a new user.
const (
	MinRating  = 800
	MaxRating  = 1600
	BaseRating = 800
)

// Penalty points for non-scoring outcomes.
const (
	PenaltyGiveUp     = -20
	PenaltyTimeout    = -10
	PenaltyEscalation = -5
)

const (
	penaltyTypeGiveUp     = "give_up"
	penaltyTypeTimeout    = "timeout"
	penaltyTypeEscalation = "escalation"
)

// severityWeights maps severity to base points available. Higher severity
// incidents are worth more.
var severityWeights = map[string]int{
	SeverityP0: 100,
	SeverityP1: 75,
	SeverityP2: 50,
	SeverityP3: 25,
}

const defaultSeverityWeight = 50

// severityMultipliers scale the quality-driven scoring mode.
var severityMultipliers = map[string]float64{
	SeverityP0: 1.5,
	SeverityP1: 1.2,
	SeverityP2: 1.0,
	SeverityP3: 0.8,
}

const defaultSeverityMultiplier = 1.0

// qualityMultipliers maps solution type to its point multiplier.
var qualityMultipliers = map[string]float64{
	SolutionRootCause:   2.0,
	SolutionWorkaround:  1.0,
	SolutionEscalation:  0.5,
	SolutionAbandonment: 0.0,
}

const defaultQualityMultiplier = 1.0

// speedBands are half-open [Min,Max) bands over the time ratio, checked in
// ascending order. A ratio exactly on a boundary belongs to the band whose
// lower bound equals it.
var speedBands = []struct {
	Category string
	Min, Max float64
	Bonus    int
}{
	{"excellent", 0, 0.25, 50},
	{"good", 0.25, 0.50, 30},
	{"satisfactory", 0.50, 0.75, 15},
	{"adequate", 0.75, 1.00, 5},
	{"poor", 1.00, maxTimeRatio, 0},
}

// maxTimeRatio is an effectively unbounded upper limit for the last band.
const maxTimeRatio = 1 << 30

// categoryBands are inclusive rating ranges, checked in ascending order.
var categoryBands = []struct {
	Name     string
	Min, Max int
}{
	{"junior", 800, 999},
	{"mid", 1000, 1199},
	{"senior", 1200, 1399},
	{"staff", 1400, 1600},
}

func severityWeight(severity string) int {
	if w, ok := severityWeights[severity]; ok {
		return w
	}
	return defaultSeverityWeight
}

func severityMultiplier(severity string) float64 {
	if m, ok := severityMultipliers[severity]; ok {
		return m
	}
	return defaultSeverityMultiplier
}

func qualityMultiplier(solutionType string) float64 {
	if m, ok := qualityMultipliers[solutionType]; ok {
		return m
	}
	return defaultQualityMultiplier
}

func speedBonus(timeRatio float64) int {
	for _, b := range speedBands {
		if b.Min <= timeRatio && timeRatio < b.Max {
			return b.Bonus
		}
	}
	return 0
}

func speedCategory(timeRatio float64) string {
	for _, b := range speedBands {
		if b.Min <= timeRatio && timeRatio < b.Max {
			return b.Category
		}
	}
	return "poor"
}

// clampRating bounds a rating to [MinRating, MaxRating].
func clampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Category returns the band name for a rating. Ratings outside every band
// report as junior; clamping upstream makes that unreachable in practice.
func Category(r int) string {
	for _, b := range categoryBands {
		if b.Min <= r && r <= b.Max {
			return b.Name
		}
	}
	return "junior"
}

// Percentile estimates where a rating sits in the population. It is a
// fixed step function, not a live distribution.
func Percentile(r int) float64 {
	switch {
	case r >= 1500:
		return 95.0
	case r >= 1400:
		return 85.0
	case r >= 1300:
		return 70.0
	case r >= 1200:
		return 50.0
	case r >= 1100:
		return 30.0
	case r >= 1000:
		return 15.0
	case r >= 900:
		return 5.0
	default:
		return 1.0
	}
}
