package rating

import "math"

// SkillRatings are per-skill sub-ratings derived from recent performance.
type SkillRatings struct {
	DebuggingSkill   int
	SystemDesign     int
	IncidentResponse int
	Communication    int
}

// SessionStats summarizes the set of results that fed an update.
type SessionStats struct {
	TotalIncidents      int
	SuccessfulIncidents int
	FailedIncidents     int
}

// RatingUpdate is the result of folding recent attempt scores into a
// current rating. Persisting NewRating is the caller's responsibility, and
// concurrent updates for the same user must be serialized by the caller:
// two updates computed from the same current rating would each apply their
// delta to a stale base.
type RatingUpdate struct {
	NewRating             int
	RatingChange          int
	TotalPointsEarned     int
	SuccessRate           float64
	AverageResolutionTime float64
	SkillRatings          SkillRatings
	Session               SessionStats
}

// Rating smoothing factors: the higher the current rating, the more points
// a further increase costs.
var smoothingBands = []struct {
	MinRating int
	Factor    float64
}{
	{1400, 0.5},
	{1200, 0.7},
	{1000, 0.8},
}

// Per-skill bonuses scaled by success rate on top of the shared base.
const (
	debuggingBonus        = 50
	systemDesignBonus     = 30
	incidentResponseBonus = 80
	communicationBonus    = 20

	skillSuccessScale = 600
)

// UpdateRating folds recent attempt results into the current rating. An
// empty result list is a no-op: the rating is returned unchanged with base
// skill ratings. The new rating is always clamped to [MinRating, MaxRating].
func UpdateRating(currentRating int, results []ScoreResult) RatingUpdate {
	if len(results) == 0 {
		return RatingUpdate{
			NewRating:    currentRating,
			SkillRatings: baseSkillRatings(),
		}
	}

	totalPoints := 0
	successful := 0
	timeSum := 0
	timeCount := 0
	for _, r := range results {
		totalPoints += r.TotalPoints
		if r.TotalPoints > 0 {
			successful++
		}
		if r.Breakdown.HasTiming {
			timeSum += r.Breakdown.ActualTime
			timeCount++
		}
	}

	successRate := float64(successful) / float64(len(results))

	avgResolutionTime := 0.0
	if timeCount > 0 {
		avgResolutionTime = float64(timeSum) / float64(timeCount)
	}

	change := smoothChange(totalPoints, currentRating)
	newRating := clampRating(currentRating + change)

	return RatingUpdate{
		NewRating:             newRating,
		RatingChange:          change,
		TotalPointsEarned:     totalPoints,
		SuccessRate:           successRate,
		AverageResolutionTime: avgResolutionTime,
		SkillRatings:          skillRatings(successRate),
		Session: SessionStats{
			TotalIncidents:      len(results),
			SuccessfulIncidents: successful,
			FailedIncidents:     len(results) - successful,
		},
	}
}

// smoothChange dampens a point delta based on the current rating so that
// highly rated users need proportionally more points to climb.
func smoothChange(points, currentRating int) int {
	factor := 1.0
	for _, b := range smoothingBands {
		if currentRating >= b.MinRating {
			factor = b.Factor
			break
		}
	}
	return int(math.Round(float64(points) * factor))
}

// skillRatings derives the four sub-ratings from the session success rate.
// The derivation is a placeholder contract shared with the product side:
// a common base scaled into [800,1400] plus a distinct per-skill bonus.
func skillRatings(successRate float64) SkillRatings {
	base := float64(BaseRating) + successRate*skillSuccessScale
	return SkillRatings{
		DebuggingSkill:   clampRating(int(math.Round(base + successRate*debuggingBonus))),
		SystemDesign:     clampRating(int(math.Round(base + successRate*systemDesignBonus))),
		IncidentResponse: clampRating(int(math.Round(base + successRate*incidentResponseBonus))),
		Communication:    clampRating(int(math.Round(base + successRate*communicationBonus))),
	}
}

func baseSkillRatings() SkillRatings {
	return SkillRatings{
		DebuggingSkill:   BaseRating,
		SystemDesign:     BaseRating,
		IncidentResponse: BaseRating,
		Communication:    BaseRating,
	}
}
