package rating

// Trend labels for recent performance.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// PerformanceTrend summarizes recent attempt results. Results are expected
// most-recent-first.
type PerformanceTrend struct {
	TotalIncidents int
	SuccessRate    float64
	Trend          string
	AveragePoints  float64
}

// RatingReport carries the human-facing facts derived from a rating.
type RatingReport struct {
	CurrentRating     int
	Category          string
	Percentile        float64
	RangeMin          int
	RangeMax          int
	NextThreshold     int
	PointsToNext      int
	RecentPerformance *PerformanceTrend
}

// Report derives category, percentile, and progression facts from a rating.
// When recent results are supplied, a trend analysis is included.
func Report(userRating int, recent []ScoreResult) RatingReport {
	category := Category(userRating)
	rangeMin, rangeMax := categoryRange(category)
	next := nextThreshold(userRating)

	pointsToNext := next - userRating
	if pointsToNext < 0 {
		pointsToNext = 0
	}

	report := RatingReport{
		CurrentRating: userRating,
		Category:      category,
		Percentile:    Percentile(userRating),
		RangeMin:      rangeMin,
		RangeMax:      rangeMax,
		NextThreshold: next,
		PointsToNext:  pointsToNext,
	}
	if len(recent) > 0 {
		report.RecentPerformance = analyzeRecent(recent)
	}
	return report
}

func categoryRange(name string) (int, int) {
	for _, b := range categoryBands {
		if b.Name == name {
			return b.Min, b.Max
		}
	}
	return MinRating, MaxRating
}

// nextThreshold is the max bound of the first category whose max exceeds
// the rating, or MaxRating when already at the top.
func nextThreshold(userRating int) int {
	for _, b := range categoryBands {
		if userRating < b.Max {
			return b.Max
		}
	}
	return MaxRating
}

// analyzeRecent compares the success rate of the newest three results
// against the three before them. Fewer than three results is not enough
// signal for a trend.
func analyzeRecent(recent []ScoreResult) *PerformanceTrend {
	total := len(recent)
	successful := 0
	pointsSum := 0
	for _, r := range recent {
		if r.TotalPoints > 0 {
			successful++
		}
		pointsSum += r.TotalPoints
	}

	trend := TrendInsufficientData
	if total >= 3 {
		newest := recent[:3]
		older := recent[3:]
		if len(older) > 3 {
			older = older[:3]
		}

		newestRate := successRateOf(newest)
		olderRate := 0.0
		if len(older) > 0 {
			olderRate = successRateOf(older)
		}

		switch {
		case newestRate > olderRate:
			trend = TrendImproving
		case newestRate < olderRate:
			trend = TrendDeclining
		default:
			trend = TrendStable
		}
	}

	return &PerformanceTrend{
		TotalIncidents: total,
		SuccessRate:    float64(successful) / float64(total),
		Trend:          trend,
		AveragePoints:  float64(pointsSum) / float64(total),
	}
}

func successRateOf(results []ScoreResult) float64 {
	if len(results) == 0 {
		return 0
	}
	successful := 0
	for _, r := range results {
		if r.TotalPoints > 0 {
			successful++
		}
	}
	return float64(successful) / float64(len(results))
}
