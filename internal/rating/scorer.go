package rating

import "math"

// Outcome describes a single resolution attempt as reported by the caller.
// QualityScore, when set, is on the grader's 1-10 scale. QualityIsCorrect,
// when set, overrides WasSuccessful for attempts that were neither
// abandoned nor escalated.
type Outcome struct {
	TimeLimitMinutes  int
	ActualTimeMinutes int
	SolutionType      string
	Severity          string
	WasSuccessful     bool
	WasEscalated      bool
	WasAbandoned      bool
	QualityScore      *float64
	QualityIsCorrect  *bool
}

// Breakdown records the inputs that produced a ScoreResult, for audit and
// for history-based aggregation. HasTiming is false for penalty outcomes,
// which carry no usable resolution time.
type Breakdown struct {
	Severity       string
	TimeLimit      int
	ActualTime     int
	SolutionType   string
	SpeedCategory  string
	QualityScore   *float64
	QualityCorrect *bool
	HasTiming      bool
	PenaltyApplied string
	PenaltyPoints  int
}

// ScoreResult is the outcome of scoring one attempt. It is never mutated
// after being returned.
type ScoreResult struct {
	BasePoints        int
	SpeedBonus        int
	QualityMultiplier float64
	TotalPoints       int
	TimeRatio         float64
	QualityAdjusted   bool
	Breakdown         Breakdown
}

// ScoreIncident computes the point delta for one attempt using the
// solution-type formula. Outcome classification is checked in priority
// order: abandonment, then timeout, then escalation; only attempts that
// clear all three earn points through the standard formula.
func ScoreIncident(o Outcome) ScoreResult {
	wasSuccessful := o.WasSuccessful
	if o.QualityIsCorrect != nil && !o.WasAbandoned && !o.WasEscalated {
		wasSuccessful = *o.QualityIsCorrect
	}

	if o.WasAbandoned {
		return penaltyResult(penaltyTypeGiveUp, PenaltyGiveUp)
	}
	if !wasSuccessful && o.ActualTimeMinutes >= o.TimeLimitMinutes {
		return penaltyResult(penaltyTypeTimeout, PenaltyTimeout)
	}
	if o.WasEscalated {
		return penaltyResult(penaltyTypeEscalation, PenaltyEscalation)
	}

	basePoints := severityWeight(o.Severity)

	timeRatio := 1.0
	if o.TimeLimitMinutes > 0 {
		timeRatio = float64(o.ActualTimeMinutes) / float64(o.TimeLimitMinutes)
	}
	bonus := speedBonus(timeRatio)

	multiplier := qualityMultiplier(o.SolutionType)
	if o.QualityScore != nil {
		// Grader score 1-10 maps to a 0.2-2.0 multiplier, combined
		// multiplicatively with the solution-type multiplier.
		multiplier *= (*o.QualityScore / 10.0) * 2.0
	}

	total := int(math.Round(float64(basePoints+bonus) * multiplier))

	return ScoreResult{
		BasePoints:        basePoints,
		SpeedBonus:        bonus,
		QualityMultiplier: multiplier,
		TotalPoints:       total,
		TimeRatio:         timeRatio,
		QualityAdjusted:   o.QualityScore != nil,
		Breakdown: Breakdown{
			Severity:       o.Severity,
			TimeLimit:      o.TimeLimitMinutes,
			ActualTime:     o.ActualTimeMinutes,
			SolutionType:   o.SolutionType,
			SpeedCategory:  speedCategory(timeRatio),
			QualityScore:   o.QualityScore,
			QualityCorrect: o.QualityIsCorrect,
			HasTiming:      true,
		},
	}
}

func penaltyResult(penaltyType string, points int) ScoreResult {
	return ScoreResult{
		BasePoints:        0,
		SpeedBonus:        0,
		QualityMultiplier: 1.0,
		TotalPoints:       points,
		TimeRatio:         1.0,
		Breakdown: Breakdown{
			PenaltyApplied: penaltyType,
			PenaltyPoints:  points,
		},
	}
}

// Quality-driven scoring thresholds (0-100 grader scale).
const (
	qualityHighScore   = 80
	qualityMediumScore = 50

	qualityHighDelta   = 25
	qualityMediumDelta = 10
	qualityLowDelta    = -15
)

// Time bands for the quality-driven mode.
const (
	fastTimeRatio = 0.5
	slowTimeRatio = 1.0
)

// ScoreFromQuality computes the point delta for one attempt from a 0-100
// grader score alone, used when no solution-type signal is available. It
// is a distinct strategy from ScoreIncident: the base delta comes from
// score thresholds, scaled by a time-efficiency multiplier that only
// rewards speed when quality is high or medium, then by the severity
// multiplier. The product is truncated, not rounded.
func ScoreFromQuality(score float64, actualTimeMinutes, timeLimitMinutes int, severity string) ScoreResult {
	timeRatio := 1.0
	if timeLimitMinutes > 0 {
		timeRatio = float64(actualTimeMinutes) / float64(timeLimitMinutes)
	}

	var baseDelta int
	switch {
	case score >= qualityHighScore:
		baseDelta = qualityHighDelta
	case score >= qualityMediumScore:
		baseDelta = qualityMediumDelta
	default:
		baseDelta = qualityLowDelta
	}

	timeMultiplier := 1.0
	switch {
	case timeRatio <= fastTimeRatio && score >= qualityHighScore:
		timeMultiplier = 1.5
	case timeRatio <= fastTimeRatio && score >= qualityMediumScore:
		timeMultiplier = 1.2
	case timeRatio > slowTimeRatio && score >= qualityMediumScore && score < qualityHighScore:
		timeMultiplier = 0.8
	}

	sevMultiplier := severityMultiplier(severity)
	multiplier := timeMultiplier * sevMultiplier
	total := int(float64(baseDelta) * multiplier)

	return ScoreResult{
		BasePoints:        baseDelta,
		SpeedBonus:        0,
		QualityMultiplier: multiplier,
		TotalPoints:       total,
		TimeRatio:         timeRatio,
		QualityAdjusted:   true,
		Breakdown: Breakdown{
			Severity:      severity,
			TimeLimit:     timeLimitMinutes,
			ActualTime:    actualTimeMinutes,
			SpeedCategory: speedCategory(timeRatio),
			QualityScore:  &score,
			HasTiming:     true,
		},
	}
}
