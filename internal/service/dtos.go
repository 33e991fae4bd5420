package service

import "time"

// Resolution actions accepted by ResolveIncident.
const (
	ActionResolve  = "resolve"
	ActionGiveUp   = "give_up"
	ActionEscalate = "escalate"
)

type CompanySummary struct {
	ID                int64
	Name              string
	Slug              string
	Description       string
	Industry          string
	CompanySize       string
	TechStack         []string
	FocusAreas        []string
	IncidentFrequency float64
}

type TimerView struct {
	ElapsedSeconds   int
	RemainingSeconds int
	RemainingPercent float64
	PressureLevel    string
	Expired          bool
}

type IncidentView struct {
	ID                     string
	CompanyID              int64
	Title                  string
	Description            string
	Severity               string
	TimeLimitMinutes       int
	AffectedServices       []string
	ErrorLogs              string
	CodebaseContext        string
	MonitoringDashboardURL string
	Status                 string
	StartedAt              time.Time
	Timer                  TimerView
}

type StartIncidentRequest struct {
	UserID      int64
	CompanySlug string
	Severity    string
}

type ResolveIncidentRequest struct {
	UserID             int64
	IncidentID         string
	Action             string
	ResolutionApproach string
	CodeChanges        string
	CommandsExecuted   []string
	SolutionType       string
}

type ResolutionResult struct {
	IncidentID       string
	Status           string
	WasSuccessful    bool
	TimeSpentMinutes int
	QualityScore     int
	GradeMethod      string
	Feedback         string
	PointsEarned     int
	PenaltyApplied   string
	NewRating        int
	RatingChange     int
}

type SkillRatingsView struct {
	DebuggingSkill   int
	SystemDesign     int
	IncidentResponse int
	Communication    int
}

type TrendView struct {
	TotalIncidents int
	SuccessRate    float64
	Trend          string
	AveragePoints  float64
}

type RatingReportView struct {
	UserID                 int64
	CurrentRating          int
	Category               string
	Percentile             float64
	RangeMin               int
	RangeMax               int
	NextThreshold          int
	PointsToNext           int
	Skills                 SkillRatingsView
	TotalIncidentsResolved int
	AverageResolutionTime  float64
	SuccessRate            float64
	RecentPerformance      *TrendView
}
