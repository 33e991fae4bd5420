package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestScoreIncidentPenalties(t *testing.T) {
	t.Run("abandonment overrides everything", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 5,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP0,
			WasSuccessful:     true,
			WasAbandoned:      true,
		})

		assert.Equal(t, PenaltyGiveUp, result.TotalPoints)
		assert.Equal(t, 0, result.BasePoints)
		assert.Equal(t, 0, result.SpeedBonus)
		assert.Equal(t, 1.0, result.QualityMultiplier)
		assert.Equal(t, "give_up", result.Breakdown.PenaltyApplied)
		assert.False(t, result.Breakdown.HasTiming)
	})

	t.Run("timeout when unsuccessful past the limit", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 31,
			SolutionType:      SolutionWorkaround,
			Severity:          SeverityP1,
			WasSuccessful:     false,
		})

		assert.Equal(t, PenaltyTimeout, result.TotalPoints)
		assert.Equal(t, "timeout", result.Breakdown.PenaltyApplied)
	})

	t.Run("escalation penalty", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 10,
			SolutionType:      SolutionEscalation,
			Severity:          SeverityP2,
			WasSuccessful:     true,
			WasEscalated:      true,
		})

		assert.Equal(t, PenaltyEscalation, result.TotalPoints)
		assert.Equal(t, "escalation", result.Breakdown.PenaltyApplied)
	})

	t.Run("abandonment checked before timeout", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 45,
			WasSuccessful:     false,
			WasAbandoned:      true,
		})

		assert.Equal(t, PenaltyGiveUp, result.TotalPoints)
	})
}

func TestScoreIncidentStandardFormula(t *testing.T) {
	t.Run("fast P0 root cause", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 7,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP0,
			WasSuccessful:     true,
		})

		assert.Equal(t, 100, result.BasePoints)
		assert.Equal(t, 50, result.SpeedBonus)
		assert.Equal(t, 2.0, result.QualityMultiplier)
		assert.Equal(t, 300, result.TotalPoints)
		assert.InDelta(t, 7.0/30.0, result.TimeRatio, 1e-9)
		assert.Equal(t, "excellent", result.Breakdown.SpeedCategory)
		assert.True(t, result.Breakdown.HasTiming)
	})

	t.Run("unknown severity defaults to P2 weight", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 29,
			SolutionType:      SolutionWorkaround,
			Severity:          "SEV-9000",
			WasSuccessful:     true,
		})

		assert.Equal(t, 50, result.BasePoints)
	})

	t.Run("unknown solution type defaults to 1.0 multiplier", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 29,
			SolutionType:      "percussive_maintenance",
			Severity:          SeverityP2,
			WasSuccessful:     true,
		})

		assert.Equal(t, 1.0, result.QualityMultiplier)
	})

	t.Run("zero time limit degrades ratio to 1.0", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  0,
			ActualTimeMinutes: 0,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP2,
			WasSuccessful:     true,
		})

		assert.Equal(t, 1.0, result.TimeRatio)
		assert.Equal(t, 0, result.SpeedBonus)
		assert.Equal(t, "poor", result.Breakdown.SpeedCategory)
	})

	t.Run("speed band boundaries belong to the upper band", func(t *testing.T) {
		cases := []struct {
			name    string
			actual  int
			limit   int
			bonus   int
			speedCat string
		}{
			{"exactly 25 percent", 25, 100, 30, "good"},
			{"exactly 50 percent", 50, 100, 15, "satisfactory"},
			{"exactly 75 percent", 75, 100, 5, "adequate"},
			{"exactly at limit", 100, 100, 0, "poor"},
			{"just under 25 percent", 24, 100, 50, "excellent"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := ScoreIncident(Outcome{
					TimeLimitMinutes:  tc.limit,
					ActualTimeMinutes: tc.actual,
					SolutionType:      SolutionWorkaround,
					Severity:          SeverityP2,
					WasSuccessful:     true,
				})
				assert.Equal(t, tc.bonus, result.SpeedBonus)
				assert.Equal(t, tc.speedCat, result.Breakdown.SpeedCategory)
			})
		}
	})

	t.Run("grader score scales the multiplier", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 7,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP0,
			WasSuccessful:     true,
			QualityScore:      floatPtr(5.0),
		})

		// (100+50) * (2.0 * (5/10)*2.0) = 300
		assert.Equal(t, 2.0, result.QualityMultiplier)
		assert.Equal(t, 300, result.TotalPoints)
		assert.True(t, result.QualityAdjusted)
	})

	t.Run("correctness override turns failure into success", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 45,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP1,
			WasSuccessful:     false,
			QualityIsCorrect:  boolPtr(true),
		})

		// Override avoids the timeout penalty; standard formula applies.
		assert.Equal(t, 75, result.BasePoints)
		assert.Equal(t, 0, result.SpeedBonus)
		assert.Equal(t, 150, result.TotalPoints)
	})

	t.Run("correctness override ignored on abandonment", func(t *testing.T) {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  30,
			ActualTimeMinutes: 10,
			WasAbandoned:      true,
			QualityIsCorrect:  boolPtr(true),
		})

		assert.Equal(t, PenaltyGiveUp, result.TotalPoints)
	})
}

func TestScoreIncidentPurity(t *testing.T) {
	outcome := Outcome{
		TimeLimitMinutes:  30,
		ActualTimeMinutes: 12,
		SolutionType:      SolutionRootCause,
		Severity:          SeverityP1,
		WasSuccessful:     true,
		QualityScore:      floatPtr(8.0),
	}

	first := ScoreIncident(outcome)
	second := ScoreIncident(outcome)
	assert.Equal(t, first, second)
}

func TestScoreIncidentMonotonicInTime(t *testing.T) {
	// Decreasing actual time never decreases total points.
	prev := -1 << 30
	for actual := 60; actual >= 0; actual-- {
		result := ScoreIncident(Outcome{
			TimeLimitMinutes:  60,
			ActualTimeMinutes: actual,
			SolutionType:      SolutionRootCause,
			Severity:          SeverityP0,
			WasSuccessful:     true,
		})
		assert.GreaterOrEqual(t, result.TotalPoints, prev, "actual=%d", actual)
		prev = result.TotalPoints
	}
}

func TestScoreFromQuality(t *testing.T) {
	t.Run("high score fast on P0", func(t *testing.T) {
		result := ScoreFromQuality(90, 10, 30, SeverityP0)

		// 25 * 1.5 (fast+high) * 1.5 (P0) = 56.25 -> truncated to 56
		assert.Equal(t, 25, result.BasePoints)
		assert.InDelta(t, 2.25, result.QualityMultiplier, 1e-9)
		assert.Equal(t, 56, result.TotalPoints)
	})

	t.Run("medium score fast", func(t *testing.T) {
		result := ScoreFromQuality(60, 10, 30, SeverityP2)

		// 10 * 1.2 * 1.0 = 12
		assert.Equal(t, 12, result.TotalPoints)
	})

	t.Run("medium score over the limit", func(t *testing.T) {
		result := ScoreFromQuality(60, 40, 30, SeverityP2)

		// 10 * 0.8 = 8
		assert.Equal(t, 8, result.TotalPoints)
	})

	t.Run("low score gets no speed reward", func(t *testing.T) {
		result := ScoreFromQuality(20, 5, 30, SeverityP2)

		// -15 * 1.0 * 1.0
		assert.Equal(t, -15, result.TotalPoints)
	})

	t.Run("low score on P3 truncates toward zero", func(t *testing.T) {
		result := ScoreFromQuality(20, 40, 30, SeverityP3)

		// -15 * 1.0 * 0.8 = -12.0
		assert.Equal(t, -12, result.TotalPoints)
	})

	t.Run("unknown severity uses neutral multiplier", func(t *testing.T) {
		result := ScoreFromQuality(90, 40, 30, "unknown")

		// slow+high keeps time multiplier 1.0
		assert.Equal(t, 25, result.TotalPoints)
	})

	t.Run("zero time limit treated as ratio 1.0", func(t *testing.T) {
		result := ScoreFromQuality(90, 10, 0, SeverityP2)

		assert.Equal(t, 1.0, result.TimeRatio)
		assert.Equal(t, 25, result.TotalPoints)
	})
}
