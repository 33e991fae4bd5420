package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/oncallsim/incident-server/internal/repository"
	"github.com/oncallsim/incident-server/internal/repository/models"
)

func TestRatingRepositoryApplyAttemptErrors(t *testing.T) {
	attempt := models.Attempt{
		IncidentID:   "inc-err",
		UserID:       3,
		Severity:     "P2",
		SolutionType: "workaround",
		CreatedAt:    time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC),
	}
	compute := func(prev models.RatingState, _ []models.Attempt) models.RatingState { return prev }

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("db gone"))

		repo := repository.NewRatingRepository(db)
		_, err = repo.ApplyAttempt(context.Background(), attempt, compute)
		require.ErrorContains(t, err, "begin rating update")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO attempts").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		repo := repository.NewRatingRepository(db)
		_, err = repo.ApplyAttempt(context.Background(), attempt, compute)
		require.ErrorContains(t, err, "insert attempt")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("state query failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO attempts").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT user_id, overall_rating").WillReturnError(errors.New("corrupt page"))
		mock.ExpectRollback()

		repo := repository.NewRatingRepository(db)
		_, err = repo.ApplyAttempt(context.Background(), attempt, compute)
		require.ErrorContains(t, err, "query rating state")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
