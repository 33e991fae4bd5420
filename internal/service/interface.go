package service

import (
	"context"
	"time"

	"github.com/oncallsim/incident-server/internal/repository/models"
)

// CompanyStore defines the company persistence operations the service needs.
type CompanyStore interface {
	List(ctx context.Context) ([]models.Company, error)
	GetBySlug(ctx context.Context, slug string) (models.Company, error)
}

// IncidentStore defines the incident persistence operations the service needs.
type IncidentStore interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (models.Incident, error)
	ActiveForUser(ctx context.Context, userID int64) ([]models.Incident, error)
	Close(ctx context.Context, id, status, notes, solutionType string, resolvedAt time.Time) (bool, error)
}

// RatingStore defines the rating persistence operations the service needs.
type RatingStore interface {
	GetState(ctx context.Context, userID int64) (models.RatingState, error)
	RecentAttempts(ctx context.Context, userID int64) ([]models.Attempt, error)
	ApplyAttempt(ctx context.Context, attempt models.Attempt, compute func(prev models.RatingState, history []models.Attempt) models.RatingState) (models.RatingState, error)
}
