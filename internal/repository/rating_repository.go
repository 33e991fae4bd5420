package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oncallsim/incident-server/internal/rating"
	"github.com/oncallsim/incident-server/internal/repository/models"
)

// recentAttemptWindow bounds how much history the rating engine folds
// over on each update.
const recentAttemptWindow = 20

type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// GetState returns the user's rating record, or a fresh base record when
// the user has no history yet.
func (r *RatingRepository) GetState(ctx context.Context, userID int64) (models.RatingState, error) {
	return getState(ctx, r.db, userID)
}

// RecentAttempts returns the user's attempts, most recent first, capped
// at the aggregation window.
func (r *RatingRepository) RecentAttempts(ctx context.Context, userID int64) ([]models.Attempt, error) {
	return recentAttempts(ctx, r.db, userID)
}

// ApplyAttempt records an attempt and updates the user's rating state in
// one transaction. compute receives the state as it stood before this
// attempt plus the attempt history including it, most recent first, and
// returns the replacement state. Serializing the read-modify-write inside
// the transaction keeps concurrent resolutions for one user from
// clobbering each other.
func (r *RatingRepository) ApplyAttempt(
	ctx context.Context,
	attempt models.Attempt,
	compute func(prev models.RatingState, history []models.Attempt) models.RatingState,
) (models.RatingState, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.RatingState{}, fmt.Errorf("begin rating update: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO attempts (incident_id, user_id, severity, solution_type,
			time_spent_minutes, time_limit_minutes, was_successful, points_earned,
			quality_score, grade_method, feedback, penalty_applied, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert,
		attempt.IncidentID, attempt.UserID, attempt.Severity, attempt.SolutionType,
		attempt.TimeSpentMinutes, attempt.TimeLimitMinutes, attempt.WasSuccessful,
		attempt.PointsEarned, attempt.QualityScore, attempt.GradeMethod,
		attempt.Feedback, attempt.PenaltyApplied, attempt.CreatedAt,
	); err != nil {
		return models.RatingState{}, fmt.Errorf("insert attempt: %w", err)
	}

	prev, err := getState(ctx, tx, attempt.UserID)
	if err != nil {
		return models.RatingState{}, err
	}

	history, err := recentAttempts(ctx, tx, attempt.UserID)
	if err != nil {
		return models.RatingState{}, err
	}

	next := compute(prev, history)
	next.UserID = attempt.UserID
	next.UpdatedAt = attempt.CreatedAt

	const upsert = `
		INSERT INTO rating_states (user_id, overall_rating, debugging_skill,
			system_design, incident_response, communication,
			total_incidents_resolved, average_resolution_time, success_rate, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			overall_rating = excluded.overall_rating,
			debugging_skill = excluded.debugging_skill,
			system_design = excluded.system_design,
			incident_response = excluded.incident_response,
			communication = excluded.communication,
			total_incidents_resolved = excluded.total_incidents_resolved,
			average_resolution_time = excluded.average_resolution_time,
			success_rate = excluded.success_rate,
			updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, upsert,
		next.UserID, next.OverallRating, next.DebuggingSkill, next.SystemDesign,
		next.IncidentResponse, next.Communication, next.TotalIncidentsResolved,
		next.AverageResolutionTime, next.SuccessRate, next.UpdatedAt,
	); err != nil {
		return models.RatingState{}, fmt.Errorf("upsert rating state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.RatingState{}, fmt.Errorf("commit rating update: %w", err)
	}
	return next, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx so the reads below
// work inside and outside ApplyAttempt's transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getState(ctx context.Context, q querier, userID int64) (models.RatingState, error) {
	const query = `
		SELECT user_id, overall_rating, debugging_skill, system_design,
			incident_response, communication, total_incidents_resolved,
			average_resolution_time, success_rate, updated_at
		FROM rating_states
		WHERE user_id = ?
	`

	var s models.RatingState
	err := q.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.OverallRating, &s.DebuggingSkill, &s.SystemDesign,
		&s.IncidentResponse, &s.Communication, &s.TotalIncidentsResolved,
		&s.AverageResolutionTime, &s.SuccessRate, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return baseRatingState(userID), nil
	}
	if err != nil {
		return models.RatingState{}, fmt.Errorf("query rating state: %w", err)
	}
	return s, nil
}

func recentAttempts(ctx context.Context, q querier, userID int64) ([]models.Attempt, error) {
	const query = `
		SELECT id, incident_id, user_id, severity, solution_type,
			time_spent_minutes, time_limit_minutes, was_successful, points_earned,
			quality_score, grade_method, feedback, penalty_applied, created_at
		FROM attempts
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := q.QueryContext(ctx, query, userID, recentAttemptWindow)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.Attempt
	for rows.Next() {
		var a models.Attempt
		if err := rows.Scan(
			&a.ID, &a.IncidentID, &a.UserID, &a.Severity, &a.SolutionType,
			&a.TimeSpentMinutes, &a.TimeLimitMinutes, &a.WasSuccessful,
			&a.PointsEarned, &a.QualityScore, &a.GradeMethod, &a.Feedback,
			&a.PenaltyApplied, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}

func baseRatingState(userID int64) models.RatingState {
	return models.RatingState{
		UserID:           userID,
		OverallRating:    rating.BaseRating,
		DebuggingSkill:   rating.BaseRating,
		SystemDesign:     rating.BaseRating,
		IncidentResponse: rating.BaseRating,
		Communication:    rating.BaseRating,
	}
}
