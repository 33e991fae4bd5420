package models

import "time"

// Incident statuses.
const (
	IncidentActive    = "active"
	IncidentResolved  = "resolved"
	IncidentEscalated = "escalated"
	IncidentAbandoned = "abandoned"
)

// Company is a stored simulation company profile.
type Company struct {
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

// Incident is a generated incident assigned to a user.
type Incident struct {
	ID                     string
	CompanyID              int64
	UserID                 int64
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
	ResolvedAt             *time.Time
	ResolutionNotes        string
	SolutionType           string
}

// Attempt is one recorded resolution attempt, the unit the rating
// aggregator folds over. PenaltyApplied is empty for scored attempts;
// when set, the timing fields carry no signal for averages.
type Attempt struct {
	ID               int64
	IncidentID       string
	UserID           int64
	Severity         string
	SolutionType     string
	TimeSpentMinutes int
	TimeLimitMinutes int
	WasSuccessful    bool
	PointsEarned     int
	QualityScore     int
	GradeMethod      string
	Feedback         string
	PenaltyApplied   string
	CreatedAt        time.Time
}

// RatingState is the persisted rating record for one user. The engine
// computes replacements for it; this layer only stores them.
type RatingState struct {
	UserID                 int64
	OverallRating          int
	DebuggingSkill         int
	SystemDesign           int
	IncidentResponse       int
	Communication          int
	TotalIncidentsResolved int
	AverageResolutionTime  float64
	SuccessRate            float64
	UpdatedAt              time.Time
}
