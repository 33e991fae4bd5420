package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oncallsim/incident-server/internal/generator"
	"github.com/oncallsim/incident-server/internal/grading"
	"github.com/oncallsim/incident-server/internal/rating"
	"github.com/oncallsim/incident-server/internal/repository/models"
	"github.com/oncallsim/incident-server/internal/session"
)

const (
	dbTimeout = 1 * time.Second
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrIncidentNotFound  = errors.New("incident not found")
	ErrIncidentNotActive = errors.New("incident is not active")
	ErrInvalidAction     = errors.New("invalid resolution action")
	ErrStorageFailure    = errors.New("storage failure")
)

// SimulationService runs the incident lifecycle: generating incidents for
// a company, grading resolutions, and folding the results into ratings.
type SimulationService struct {
	companies CompanyStore
	incidents IncidentStore
	ratings   RatingStore
	grader    grading.Grader
	logger    *zap.Logger
	now       session.Clock
}

// NewSimulationService creates a new SimulationService instance. A nil
// clock falls back to time.Now.
func NewSimulationService(
	companies CompanyStore,
	incidents IncidentStore,
	ratings RatingStore,
	grader grading.Grader,
	logger *zap.Logger,
	now session.Clock,
) *SimulationService {
	if companies == nil || incidents == nil || ratings == nil {
		panic("stores must not be nil")
	}
	if grader == nil {
		panic("grader must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	if now == nil {
		now = time.Now
	}
	return &SimulationService{
		companies: companies,
		incidents: incidents,
		ratings:   ratings,
		grader:    grader,
		logger:    logger.Named("simulation"),
		now:       now,
	}
}

// ListCompanies returns all available company profiles.
func (s *SimulationService) ListCompanies(ctx context.Context) ([]CompanySummary, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	companies, err := s.companies.List(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	out := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanySummary{
			ID:                c.ID,
			Name:              c.Name,
			Slug:              c.Slug,
			Description:       c.Description,
			Industry:          c.Industry,
			CompanySize:       c.CompanySize,
			TechStack:         c.TechStack,
			FocusAreas:        c.FocusAreas,
			IncidentFrequency: c.IncidentFrequency,
		})
	}
	return out, nil
}

// StartIncident generates a fresh incident for the user at the given
// company and starts its timer.
func (s *SimulationService) StartIncident(ctx context.Context, req StartIncidentRequest) (IncidentView, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	company, err := s.companies.GetBySlug(dbCtx, req.CompanySlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IncidentView{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, req.CompanySlug)
		}
		return IncidentView{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	startedAt := s.now()
	gen := generator.New(company.Slug)
	generated := gen.Generate(req.Severity, generator.TimeOfDayForHour(startedAt.Hour()))

	incident := models.Incident{
		CompanyID:              company.ID,
		UserID:                 req.UserID,
		Title:                  generated.Title,
		Description:            generated.Description,
		Severity:               generated.Severity,
		TimeLimitMinutes:       generated.TimeLimitMinutes,
		AffectedServices:       generated.AffectedServices,
		ErrorLogs:              generated.ErrorLogs,
		CodebaseContext:        generated.CodebaseContext,
		MonitoringDashboardURL: generated.MonitoringDashboardURL,
		Status:                 models.IncidentActive,
		StartedAt:              startedAt,
	}
	if err := s.incidents.Create(dbCtx, &incident); err != nil {
		return IncidentView{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("incident started",
		zap.String("incident_id", incident.ID),
		zap.Int64("user_id", req.UserID),
		zap.String("company", company.Slug),
		zap.String("severity", incident.Severity))

	return s.incidentView(incident), nil
}

// GetIncident returns one of the user's incidents with its live timer.
func (s *SimulationService) GetIncident(ctx context.Context, userID int64, incidentID string) (IncidentView, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	incident, err := s.loadOwnedIncident(dbCtx, userID, incidentID)
	if err != nil {
		return IncidentView{}, err
	}
	return s.incidentView(incident), nil
}

// ActiveIncidents returns the user's open incidents, oldest first.
func (s *SimulationService) ActiveIncidents(ctx context.Context, userID int64) ([]IncidentView, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	incidents, err := s.incidents.ActiveForUser(dbCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	views := make([]IncidentView, 0, len(incidents))
	for _, incident := range incidents {
		views = append(views, s.incidentView(incident))
	}
	return views, nil
}

// ResolveIncident closes an active incident with the requested action,
// grades the response where applicable, and applies the scored attempt to
// the user's rating. The read-modify-write on the rating is serialized by
// the rating store.
func (s *SimulationService) ResolveIncident(ctx context.Context, req ResolveIncidentRequest) (ResolutionResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	incident, err := s.loadOwnedIncident(dbCtx, req.UserID, req.IncidentID)
	if err != nil {
		return ResolutionResult{}, err
	}
	if incident.Status != models.IncidentActive {
		return ResolutionResult{}, fmt.Errorf("%w: %s", ErrIncidentNotActive, incident.ID)
	}

	timer := session.Resume(incident.ID, incident.StartedAt, incident.TimeLimitMinutes, s.now)
	elapsed := timer.ElapsedMinutes()

	var (
		score  rating.ScoreResult
		grade  grading.Result
		status string
	)

	action := req.Action
	if action == "" {
		action = ActionResolve
	}

	switch action {
	case ActionGiveUp:
		score = rating.ScoreIncident(rating.Outcome{
			TimeLimitMinutes:  incident.TimeLimitMinutes,
			ActualTimeMinutes: elapsed,
			Severity:          incident.Severity,
			WasAbandoned:      true,
		})
		status = models.IncidentAbandoned

	case ActionEscalate:
		score = rating.ScoreIncident(rating.Outcome{
			TimeLimitMinutes:  incident.TimeLimitMinutes,
			ActualTimeMinutes: elapsed,
			SolutionType:      rating.SolutionEscalation,
			Severity:          incident.Severity,
			WasEscalated:      true,
		})
		status = models.IncidentEscalated

	case ActionResolve:
		// Grading never fails; a model outage degrades to the
		// deterministic fallback inside the grader.
		grade = s.grader.Grade(ctx, grading.Request{
			IncidentTitle:       incident.Title,
			IncidentDescription: incident.Description,
			IncidentSeverity:    incident.Severity,
			AffectedServices:    incident.AffectedServices,
			ErrorLogs:           incident.ErrorLogs,
			CodebaseContext:     incident.CodebaseContext,
			ResolutionApproach:  req.ResolutionApproach,
			CodeChanges:         req.CodeChanges,
			CommandsExecuted:    req.CommandsExecuted,
			SolutionType:        req.SolutionType,
			TimeSpentMinutes:    elapsed,
			TimeLimitMinutes:    incident.TimeLimitMinutes,
		})

		if !grade.IsCorrect && timer.Expired() {
			score = rating.ScoreIncident(rating.Outcome{
				TimeLimitMinutes:  incident.TimeLimitMinutes,
				ActualTimeMinutes: elapsed,
				SolutionType:      req.SolutionType,
				Severity:          incident.Severity,
				WasSuccessful:     false,
			})
		} else {
			score = rating.ScoreFromQuality(float64(grade.Score), elapsed, incident.TimeLimitMinutes, incident.Severity)
		}
		status = models.IncidentResolved

	default:
		return ResolutionResult{}, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	resolvedAt := s.now()
	closed, err := s.incidents.Close(dbCtx, incident.ID, status, req.ResolutionApproach, req.SolutionType, resolvedAt)
	if err != nil {
		return ResolutionResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !closed {
		return ResolutionResult{}, fmt.Errorf("%w: %s", ErrIncidentNotActive, incident.ID)
	}

	wasSuccessful := status == models.IncidentResolved && grade.IsCorrect

	attempt := models.Attempt{
		IncidentID:       incident.ID,
		UserID:           req.UserID,
		Severity:         incident.Severity,
		SolutionType:     req.SolutionType,
		TimeSpentMinutes: elapsed,
		TimeLimitMinutes: incident.TimeLimitMinutes,
		WasSuccessful:    wasSuccessful,
		PointsEarned:     score.TotalPoints,
		QualityScore:     grade.Score,
		GradeMethod:      grade.Method,
		Feedback:         grade.Feedback,
		PenaltyApplied:   score.Breakdown.PenaltyApplied,
		CreatedAt:        resolvedAt,
	}

	var change int
	state, err := s.ratings.ApplyAttempt(dbCtx, attempt, func(prev models.RatingState, history []models.Attempt) models.RatingState {
		// The rating delta comes from this attempt alone; the rolling
		// attempt window only feeds the profile statistics. Folding the
		// whole window into the delta would re-apply old points.
		update := rating.UpdateRating(prev.OverallRating, []rating.ScoreResult{score})
		window := rating.UpdateRating(prev.OverallRating, scoreResultsOf(history))
		change = update.RatingChange

		next := prev
		next.OverallRating = update.NewRating
		next.DebuggingSkill = window.SkillRatings.DebuggingSkill
		next.SystemDesign = window.SkillRatings.SystemDesign
		next.IncidentResponse = window.SkillRatings.IncidentResponse
		next.Communication = window.SkillRatings.Communication
		next.AverageResolutionTime = window.AverageResolutionTime
		next.SuccessRate = window.SuccessRate
		if wasSuccessful {
			next.TotalIncidentsResolved++
		}
		return next
	})
	if err != nil {
		return ResolutionResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("incident closed",
		zap.String("incident_id", incident.ID),
		zap.Int64("user_id", req.UserID),
		zap.String("status", status),
		zap.Int("points", score.TotalPoints),
		zap.Int("new_rating", state.OverallRating))

	return ResolutionResult{
		IncidentID:       incident.ID,
		Status:           status,
		WasSuccessful:    wasSuccessful,
		TimeSpentMinutes: elapsed,
		QualityScore:     grade.Score,
		GradeMethod:      grade.Method,
		Feedback:         grade.Feedback,
		PointsEarned:     score.TotalPoints,
		PenaltyApplied:   score.Breakdown.PenaltyApplied,
		NewRating:        state.OverallRating,
		RatingChange:     change,
	}, nil
}

// UserRatingReport assembles the user's rating profile with trend analysis
// over their recent attempts.
func (s *SimulationService) UserRatingReport(ctx context.Context, userID int64) (RatingReportView, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	state, err := s.ratings.GetState(dbCtx, userID)
	if err != nil {
		return RatingReportView{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	attempts, err := s.ratings.RecentAttempts(dbCtx, userID)
	if err != nil {
		return RatingReportView{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	report := rating.Report(state.OverallRating, scoreResultsOf(attempts))

	view := RatingReportView{
		UserID:        userID,
		CurrentRating: report.CurrentRating,
		Category:      report.Category,
		Percentile:    report.Percentile,
		RangeMin:      report.RangeMin,
		RangeMax:      report.RangeMax,
		NextThreshold: report.NextThreshold,
		PointsToNext:  report.PointsToNext,
		Skills: SkillRatingsView{
			DebuggingSkill:   state.DebuggingSkill,
			SystemDesign:     state.SystemDesign,
			IncidentResponse: state.IncidentResponse,
			Communication:    state.Communication,
		},
		TotalIncidentsResolved: state.TotalIncidentsResolved,
		AverageResolutionTime:  state.AverageResolutionTime,
		SuccessRate:            state.SuccessRate,
	}
	if report.RecentPerformance != nil {
		view.RecentPerformance = &TrendView{
			TotalIncidents: report.RecentPerformance.TotalIncidents,
			SuccessRate:    report.RecentPerformance.SuccessRate,
			Trend:          report.RecentPerformance.Trend,
			AveragePoints:  report.RecentPerformance.AveragePoints,
		}
	}
	return view, nil
}

func (s *SimulationService) loadOwnedIncident(ctx context.Context, userID int64, incidentID string) (models.Incident, error) {
	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Incident{}, fmt.Errorf("%w: %s", ErrIncidentNotFound, incidentID)
		}
		return models.Incident{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if incident.UserID != userID {
		return models.Incident{}, fmt.Errorf("%w: %s", ErrIncidentNotFound, incidentID)
	}
	return incident, nil
}

func (s *SimulationService) incidentView(incident models.Incident) IncidentView {
	view := IncidentView{
		ID:                     incident.ID,
		CompanyID:              incident.CompanyID,
		Title:                  incident.Title,
		Description:            incident.Description,
		Severity:               incident.Severity,
		TimeLimitMinutes:       incident.TimeLimitMinutes,
		AffectedServices:       incident.AffectedServices,
		ErrorLogs:              incident.ErrorLogs,
		CodebaseContext:        incident.CodebaseContext,
		MonitoringDashboardURL: incident.MonitoringDashboardURL,
		Status:                 incident.Status,
		StartedAt:              incident.StartedAt,
	}
	if incident.Status == models.IncidentActive {
		timer := session.Resume(incident.ID, incident.StartedAt, incident.TimeLimitMinutes, s.now)
		st := timer.Status()
		view.Timer = TimerView{
			ElapsedSeconds:   st.ElapsedSeconds,
			RemainingSeconds: st.RemainingSeconds,
			RemainingPercent: st.RemainingPercent,
			PressureLevel:    st.PressureLevel,
			Expired:          st.Expired,
		}
	} else {
		view.Timer = TimerView{PressureLevel: session.PressureInactive}
	}
	return view
}

// scoreResultsOf reconstructs the minimal score facts the aggregation and
// reporting code reads from stored attempts.
func scoreResultsOf(attempts []models.Attempt) []rating.ScoreResult {
	results := make([]rating.ScoreResult, 0, len(attempts))
	for _, a := range attempts {
		results = append(results, rating.ScoreResult{
			TotalPoints: a.PointsEarned,
			Breakdown: rating.Breakdown{
				Severity:       a.Severity,
				TimeLimit:      a.TimeLimitMinutes,
				ActualTime:     a.TimeSpentMinutes,
				SolutionType:   a.SolutionType,
				HasTiming:      a.PenaltyApplied == "",
				PenaltyApplied: a.PenaltyApplied,
			},
		})
	}
	return results
}
