package grpc

import (
	"context"
	"time"

	"github.com/oncallsim/incident-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type SimulationService interface {
	ListCompanies(ctx context.Context) ([]service.CompanySummary, error)
	StartIncident(ctx context.Context, req service.StartIncidentRequest) (service.IncidentView, error)
	GetIncident(ctx context.Context, userID int64, incidentID string) (service.IncidentView, error)
	ActiveIncidents(ctx context.Context, userID int64) ([]service.IncidentView, error)
	ResolveIncident(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error)
	UserRatingReport(ctx context.Context, userID int64) (service.RatingReportView, error)
}
