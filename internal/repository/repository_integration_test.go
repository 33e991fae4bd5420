package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/oncallsim/incident-server/internal/repository"
	"github.com/oncallsim/incident-server/internal/repository/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.EnsureSchema(context.Background(), db))
	return db
}

func seedCompany(t *testing.T, db *sql.DB) models.Company {
	t.Helper()

	repo := repository.NewCompanyRepository(db)
	err := repo.Seed(context.Background(), []models.Company{{
		Name:              "Streamline",
		Slug:              "streamline",
		Description:       "Video delivery platform",
		Industry:          "Media",
		CompanySize:       "2000+",
		TechStack:         []string{"Go", "Kafka", "PostgreSQL"},
		FocusAreas:        []string{"streaming", "cdn"},
		IncidentFrequency: 1.2,
	}})
	require.NoError(t, err)

	company, err := repo.GetBySlug(context.Background(), "streamline")
	require.NoError(t, err)
	return company
}

func TestCompanyRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewCompanyRepository(db)

	companies := []models.Company{
		{Name: "Beta Corp", Slug: "beta", TechStack: []string{"Go"}, FocusAreas: []string{"payments"}},
		{Name: "Alpha Inc", Slug: "alpha", TechStack: []string{"Python"}, FocusAreas: []string{"search"}},
	}
	require.NoError(t, repo.Seed(ctx, companies))

	t.Run("List orders by name", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Alpha Inc", got[0].Name)
		require.Equal(t, "Beta Corp", got[1].Name)
		require.Equal(t, []string{"Go"}, got[1].TechStack)
	})

	t.Run("GetBySlug", func(t *testing.T) {
		got, err := repo.GetBySlug(ctx, "alpha")
		require.NoError(t, err)
		require.Equal(t, "Alpha Inc", got.Name)
		require.Equal(t, []string{"search"}, got.FocusAreas)
	})

	t.Run("GetBySlug missing", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "nope")
		require.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Seed is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Seed(ctx, companies))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestIncidentRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	company := seedCompany(t, db)
	repo := repository.NewIncidentRepository(db)

	startedAt := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	incident := models.Incident{
		CompanyID:        company.ID,
		UserID:           7,
		Title:            "CDN cache hit rate collapsed",
		Description:      "Hit rate dropped from 94% to 31% in five minutes",
		Severity:         "P1",
		TimeLimitMinutes: 45,
		AffectedServices: []string{"edge-cache", "origin"},
		ErrorLogs:        "origin: connection pool exhausted",
		StartedAt:        startedAt,
	}

	t.Run("Create assigns an id and active status", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &incident))
		require.NotEmpty(t, incident.ID)
		require.Equal(t, models.IncidentActive, incident.Status)
	})

	t.Run("GetByID round trips", func(t *testing.T) {
		got, err := repo.GetByID(ctx, incident.ID)
		require.NoError(t, err)
		require.Equal(t, incident.Title, got.Title)
		require.Equal(t, []string{"edge-cache", "origin"}, got.AffectedServices)
		require.Nil(t, got.ResolvedAt)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "no-such-incident")
		require.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("ActiveForUser", func(t *testing.T) {
		got, err := repo.ActiveForUser(ctx, 7)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, incident.ID, got[0].ID)

		none, err := repo.ActiveForUser(ctx, 99)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("Close transitions active incidents once", func(t *testing.T) {
		resolvedAt := startedAt.Add(22 * time.Minute)
		closed, err := repo.Close(ctx, incident.ID, models.IncidentResolved, "Scaled origin pool", "root_cause", resolvedAt)
		require.NoError(t, err)
		require.True(t, closed)

		got, err := repo.GetByID(ctx, incident.ID)
		require.NoError(t, err)
		require.Equal(t, models.IncidentResolved, got.Status)
		require.Equal(t, "root_cause", got.SolutionType)
		require.NotNil(t, got.ResolvedAt)
		require.True(t, got.ResolvedAt.Equal(resolvedAt))

		closed, err = repo.Close(ctx, incident.ID, models.IncidentAbandoned, "", "", resolvedAt)
		require.NoError(t, err)
		require.False(t, closed, "already closed incidents must not transition again")
	})
}

func TestRatingRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewRatingRepository(db)

	t.Run("GetState defaults to base record", func(t *testing.T) {
		state, err := repo.GetState(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, int64(42), state.UserID)
		require.Equal(t, 800, state.OverallRating)
		require.Equal(t, 800, state.DebuggingSkill)
		require.Zero(t, state.TotalIncidentsResolved)
	})

	t.Run("ApplyAttempt records and updates atomically", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
		attempt := models.Attempt{
			IncidentID:       "inc-1",
			UserID:           42,
			Severity:         "P1",
			SolutionType:     "root_cause",
			TimeSpentMinutes: 12,
			TimeLimitMinutes: 45,
			WasSuccessful:    true,
			PointsEarned:     200,
			QualityScore:     85,
			GradeMethod:      "llm",
			CreatedAt:        createdAt,
		}

		var seenPrev models.RatingState
		var seenHistory []models.Attempt
		next, err := repo.ApplyAttempt(ctx, attempt, func(prev models.RatingState, history []models.Attempt) models.RatingState {
			seenPrev = prev
			seenHistory = history
			prev.OverallRating += attempt.PointsEarned
			prev.TotalIncidentsResolved++
			return prev
		})
		require.NoError(t, err)

		require.Equal(t, 800, seenPrev.OverallRating, "compute sees the state before this attempt")
		require.Len(t, seenHistory, 1, "history includes the attempt being applied")
		require.Equal(t, "inc-1", seenHistory[0].IncidentID)

		require.Equal(t, 1000, next.OverallRating)
		require.Equal(t, 1, next.TotalIncidentsResolved)
		require.True(t, next.UpdatedAt.Equal(createdAt))

		stored, err := repo.GetState(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, 1000, stored.OverallRating)
	})

	t.Run("RecentAttempts newest first with cap", func(t *testing.T) {
		base := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
		for i := 0; i < 25; i++ {
			attempt := models.Attempt{
				IncidentID:       "inc-bulk",
				UserID:           7,
				Severity:         "P2",
				SolutionType:     "workaround",
				TimeSpentMinutes: i + 1,
				TimeLimitMinutes: 30,
				WasSuccessful:    true,
				PointsEarned:     50,
				CreatedAt:        base.Add(time.Duration(i) * time.Minute),
			}
			_, err := repo.ApplyAttempt(ctx, attempt, func(prev models.RatingState, _ []models.Attempt) models.RatingState {
				return prev
			})
			require.NoError(t, err)
		}

		attempts, err := repo.RecentAttempts(ctx, 7)
		require.NoError(t, err)
		require.Len(t, attempts, 20)
		require.Equal(t, 25, attempts[0].TimeSpentMinutes, "most recent attempt first")
		require.Equal(t, 6, attempts[19].TimeSpentMinutes)
	})
}
