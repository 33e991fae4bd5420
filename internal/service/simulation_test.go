package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oncallsim/incident-server/internal/grading"
	"github.com/oncallsim/incident-server/internal/repository/models"
	"github.com/oncallsim/incident-server/internal/service"
	"github.com/oncallsim/incident-server/internal/service/mocks"
	"github.com/oncallsim/incident-server/internal/session"
)

var testStart = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func clockAt(t time.Time) session.Clock {
	return func() time.Time { return t }
}

func activeIncident() models.Incident {
	return models.Incident{
		ID:               "inc-1",
		CompanyID:        1,
		UserID:           7,
		Title:            "Checkout latency spike",
		Description:      "p99 latency above 5s",
		Severity:         "P0",
		TimeLimitMinutes: 30,
		AffectedServices: []string{"checkout", "payments"},
		Status:           models.IncidentActive,
		StartedAt:        testStart,
	}
}

// applyingRatingStore runs the compute callback the way the real store
// does: against a base state, with the new attempt prepended to history.
func applyingRatingStore(prev models.RatingState) *mocks.MockRatingStore {
	return &mocks.MockRatingStore{
		ApplyAttemptFunc: func(_ context.Context, attempt models.Attempt, compute func(models.RatingState, []models.Attempt) models.RatingState) (models.RatingState, error) {
			return compute(prev, []models.Attempt{attempt}), nil
		},
	}
}

func TestResolveIncident(t *testing.T) {
	companies := &mocks.MockCompanyStore{}

	newIncidents := func(inc models.Incident) *mocks.MockIncidentStore {
		return &mocks.MockIncidentStore{
			GetByIDFunc: func(_ context.Context, id string) (models.Incident, error) {
				if id == inc.ID {
					return inc, nil
				}
				return models.Incident{}, sql.ErrNoRows
			},
			CloseFunc: func(_ context.Context, _, _, _, _ string, _ time.Time) (bool, error) {
				return true, nil
			},
		}
	}

	t.Run("graded resolution earns quality-driven points", func(t *testing.T) {
		inc := activeIncident()
		grader := &mocks.MockGrader{
			GradeFunc: func(_ context.Context, req grading.Request) grading.Result {
				assert.Equal(t, inc.Title, req.IncidentTitle)
				assert.Equal(t, 12, req.TimeSpentMinutes)
				return grading.Result{Score: 90, Feedback: "Solid diagnosis.", IsCorrect: true, Method: grading.MethodLLM}
			},
		}
		ratings := applyingRatingStore(models.RatingState{UserID: 7, OverallRating: 800})
		svc := service.NewSimulationService(companies, newIncidents(inc), ratings, grader, zap.NewNop(), clockAt(testStart.Add(12*time.Minute)))

		result, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{
			UserID:             7,
			IncidentID:         "inc-1",
			Action:             service.ActionResolve,
			ResolutionApproach: "Rolled back the bad deploy",
			SolutionType:       "root_cause",
		})
		require.NoError(t, err)

		// High quality at 0.4 time ratio on a P0: 25 * 1.5 * 1.5 = 56.
		assert.Equal(t, 56, result.PointsEarned)
		assert.Equal(t, models.IncidentResolved, result.Status)
		assert.True(t, result.WasSuccessful)
		assert.Equal(t, 90, result.QualityScore)
		assert.Equal(t, grading.MethodLLM, result.GradeMethod)
		assert.Equal(t, 12, result.TimeSpentMinutes)
		assert.Empty(t, result.PenaltyApplied)
		assert.Equal(t, 856, result.NewRating)
		assert.Equal(t, 56, result.RatingChange)
	})

	t.Run("expired incorrect resolution takes the timeout penalty", func(t *testing.T) {
		inc := activeIncident()
		grader := &mocks.MockGrader{
			GradeFunc: func(_ context.Context, _ grading.Request) grading.Result {
				return grading.Result{Score: 20, Feedback: "Missed the cause.", IsCorrect: false, Method: grading.MethodFallback}
			},
		}
		ratings := applyingRatingStore(models.RatingState{UserID: 7, OverallRating: 1000})
		svc := service.NewSimulationService(companies, newIncidents(inc), ratings, grader, zap.NewNop(), clockAt(testStart.Add(45*time.Minute)))

		result, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{
			UserID:     7,
			IncidentID: "inc-1",
			Action:     service.ActionResolve,
		})
		require.NoError(t, err)

		assert.Equal(t, -10, result.PointsEarned)
		assert.Equal(t, "timeout", result.PenaltyApplied)
		assert.False(t, result.WasSuccessful)
		// -10 smoothed at 0.8 rounds to -8.
		assert.Equal(t, 992, result.NewRating)
	})

	t.Run("give up", func(t *testing.T) {
		inc := activeIncident()
		var closedStatus string
		incidents := newIncidents(inc)
		incidents.CloseFunc = func(_ context.Context, _, status, _, _ string, _ time.Time) (bool, error) {
			closedStatus = status
			return true, nil
		}
		ratings := applyingRatingStore(models.RatingState{UserID: 7, OverallRating: 800})
		svc := service.NewSimulationService(companies, incidents, ratings, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart.Add(5*time.Minute)))

		result, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{
			UserID:     7,
			IncidentID: "inc-1",
			Action:     service.ActionGiveUp,
		})
		require.NoError(t, err)

		assert.Equal(t, -20, result.PointsEarned)
		assert.Equal(t, "give_up", result.PenaltyApplied)
		assert.Equal(t, models.IncidentAbandoned, result.Status)
		assert.Equal(t, models.IncidentAbandoned, closedStatus)
		assert.False(t, result.WasSuccessful)
		// Already at the floor; the penalty cannot push below it.
		assert.Equal(t, 800, result.NewRating)
	})

	t.Run("escalate", func(t *testing.T) {
		inc := activeIncident()
		ratings := applyingRatingStore(models.RatingState{UserID: 7, OverallRating: 1100})
		svc := service.NewSimulationService(companies, newIncidents(inc), ratings, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart.Add(5*time.Minute)))

		result, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{
			UserID:     7,
			IncidentID: "inc-1",
			Action:     service.ActionEscalate,
		})
		require.NoError(t, err)

		assert.Equal(t, -5, result.PointsEarned)
		assert.Equal(t, "escalation", result.PenaltyApplied)
		assert.Equal(t, models.IncidentEscalated, result.Status)
		assert.Equal(t, 1096, result.NewRating)
	})

	t.Run("unknown incident", func(t *testing.T) {
		inc := activeIncident()
		svc := service.NewSimulationService(companies, newIncidents(inc), &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{UserID: 7, IncidentID: "missing"})
		assert.ErrorIs(t, err, service.ErrIncidentNotFound)
	})

	t.Run("another user's incident is not visible", func(t *testing.T) {
		inc := activeIncident()
		svc := service.NewSimulationService(companies, newIncidents(inc), &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{UserID: 999, IncidentID: "inc-1"})
		assert.ErrorIs(t, err, service.ErrIncidentNotFound)
	})

	t.Run("already closed incident", func(t *testing.T) {
		inc := activeIncident()
		inc.Status = models.IncidentResolved
		svc := service.NewSimulationService(companies, newIncidents(inc), &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{UserID: 7, IncidentID: "inc-1"})
		assert.ErrorIs(t, err, service.ErrIncidentNotActive)
	})

	t.Run("lost close race", func(t *testing.T) {
		inc := activeIncident()
		incidents := newIncidents(inc)
		incidents.CloseFunc = func(_ context.Context, _, _, _, _ string, _ time.Time) (bool, error) {
			return false, nil
		}
		svc := service.NewSimulationService(companies, incidents, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{UserID: 7, IncidentID: "inc-1", Action: service.ActionGiveUp})
		assert.ErrorIs(t, err, service.ErrIncidentNotActive)
	})

	t.Run("invalid action", func(t *testing.T) {
		inc := activeIncident()
		svc := service.NewSimulationService(companies, newIncidents(inc), &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.ResolveIncident(context.Background(), service.ResolveIncidentRequest{UserID: 7, IncidentID: "inc-1", Action: "defer"})
		assert.ErrorIs(t, err, service.ErrInvalidAction)
	})
}

func TestStartIncident(t *testing.T) {
	company := models.Company{ID: 3, Name: "Amazon", Slug: "amazon"}

	companies := &mocks.MockCompanyStore{
		GetBySlugFunc: func(_ context.Context, slug string) (models.Company, error) {
			if slug == "amazon" {
				return company, nil
			}
			return models.Company{}, sql.ErrNoRows
		},
	}

	t.Run("generates and persists an incident", func(t *testing.T) {
		var created models.Incident
		incidents := &mocks.MockIncidentStore{
			CreateFunc: func(_ context.Context, incident *models.Incident) error {
				incident.ID = "inc-new"
				created = *incident
				return nil
			},
		}
		svc := service.NewSimulationService(companies, incidents, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		view, err := svc.StartIncident(context.Background(), service.StartIncidentRequest{
			UserID:      7,
			CompanySlug: "amazon",
			Severity:    "P1",
		})
		require.NoError(t, err)

		assert.Equal(t, "inc-new", view.ID)
		assert.Equal(t, "P1", view.Severity)
		assert.Equal(t, models.IncidentActive, view.Status)
		assert.NotEmpty(t, view.Title)
		assert.Positive(t, view.TimeLimitMinutes)
		assert.Equal(t, session.PressureLow, view.Timer.PressureLevel)
		assert.False(t, view.Timer.Expired)

		assert.Equal(t, int64(3), created.CompanyID)
		assert.Equal(t, int64(7), created.UserID)
		assert.True(t, created.StartedAt.Equal(testStart))
	})

	t.Run("unknown company", func(t *testing.T) {
		svc := service.NewSimulationService(companies, &mocks.MockIncidentStore{}, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.StartIncident(context.Background(), service.StartIncidentRequest{UserID: 7, CompanySlug: "nope"})
		assert.ErrorIs(t, err, service.ErrCompanyNotFound)
	})

	t.Run("storage failure surfaces as such", func(t *testing.T) {
		incidents := &mocks.MockIncidentStore{
			CreateFunc: func(_ context.Context, _ *models.Incident) error {
				return errors.New("disk full")
			},
		}
		svc := service.NewSimulationService(companies, incidents, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), clockAt(testStart))

		_, err := svc.StartIncident(context.Background(), service.StartIncidentRequest{UserID: 7, CompanySlug: "amazon"})
		assert.ErrorIs(t, err, service.ErrStorageFailure)
	})
}

func TestListCompanies(t *testing.T) {
	t.Run("maps company rows", func(t *testing.T) {
		companies := &mocks.MockCompanyStore{
			ListFunc: func(_ context.Context) ([]models.Company, error) {
				return []models.Company{
					{ID: 1, Name: "Amazon", Slug: "amazon", TechStack: []string{"Java", "DynamoDB"}},
				}, nil
			},
		}
		svc := service.NewSimulationService(companies, &mocks.MockIncidentStore{}, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), nil)

		got, err := svc.ListCompanies(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "amazon", got[0].Slug)
		assert.Equal(t, []string{"Java", "DynamoDB"}, got[0].TechStack)
	})

	t.Run("storage failure", func(t *testing.T) {
		companies := &mocks.MockCompanyStore{
			ListFunc: func(_ context.Context) ([]models.Company, error) {
				return nil, errors.New("db gone")
			},
		}
		svc := service.NewSimulationService(companies, &mocks.MockIncidentStore{}, &mocks.MockRatingStore{}, &mocks.MockGrader{}, zap.NewNop(), nil)

		_, err := svc.ListCompanies(context.Background())
		assert.ErrorIs(t, err, service.ErrStorageFailure)
	})
}

func TestUserRatingReport(t *testing.T) {
	state := models.RatingState{
		UserID:                 7,
		OverallRating:          1250,
		DebuggingSkill:         1300,
		SystemDesign:           1280,
		IncidentResponse:       1330,
		Communication:          1270,
		TotalIncidentsResolved: 14,
		AverageResolutionTime:  18.5,
		SuccessRate:            0.75,
	}

	attempts := []models.Attempt{
		{PointsEarned: 120, TimeSpentMinutes: 10, TimeLimitMinutes: 30},
		{PointsEarned: 90, TimeSpentMinutes: 15, TimeLimitMinutes: 30},
		{PointsEarned: 40, TimeSpentMinutes: 20, TimeLimitMinutes: 45},
		{PointsEarned: -10, PenaltyApplied: "timeout"},
		{PointsEarned: -20, PenaltyApplied: "give_up"},
		{PointsEarned: -5, PenaltyApplied: "escalation"},
	}

	ratings := &mocks.MockRatingStore{
		GetStateFunc: func(_ context.Context, userID int64) (models.RatingState, error) {
			return state, nil
		},
		RecentAttemptsFunc: func(_ context.Context, userID int64) ([]models.Attempt, error) {
			return attempts, nil
		},
	}
	svc := service.NewSimulationService(&mocks.MockCompanyStore{}, &mocks.MockIncidentStore{}, ratings, &mocks.MockGrader{}, zap.NewNop(), nil)

	report, err := svc.UserRatingReport(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1250, report.CurrentRating)
	assert.Equal(t, "senior", report.Category)
	assert.Equal(t, 50.0, report.Percentile)
	assert.Equal(t, 1399, report.NextThreshold)
	assert.Equal(t, 149, report.PointsToNext)
	assert.Equal(t, 1300, report.Skills.DebuggingSkill)
	assert.Equal(t, 14, report.TotalIncidentsResolved)

	require.NotNil(t, report.RecentPerformance)
	// Newest three all scored, the three before all penalized.
	assert.Equal(t, "improving", report.RecentPerformance.Trend)
	assert.Equal(t, 6, report.RecentPerformance.TotalIncidents)
	assert.InDelta(t, 0.5, report.RecentPerformance.SuccessRate, 1e-9)
}
