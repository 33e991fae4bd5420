package mocks

import (
	"context"
	"errors"

	"github.com/oncallsim/incident-server/internal/service"
)

// MockSimulationService is a mock implementation of the SimulationService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockSimulationService struct {
	ListCompaniesFunc    func(ctx context.Context) ([]service.CompanySummary, error)
	StartIncidentFunc    func(ctx context.Context, req service.StartIncidentRequest) (service.IncidentView, error)
	GetIncidentFunc      func(ctx context.Context, userID int64, incidentID string) (service.IncidentView, error)
	ActiveIncidentsFunc  func(ctx context.Context, userID int64) ([]service.IncidentView, error)
	ResolveIncidentFunc  func(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error)
	UserRatingReportFunc func(ctx context.Context, userID int64) (service.RatingReportView, error)
}

// ListCompanies implements the SimulationService interface
func (m *MockSimulationService) ListCompanies(ctx context.Context) ([]service.CompanySummary, error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx)
	}
	return nil, errors.New("ListCompaniesFunc not implemented")
}

// StartIncident implements the SimulationService interface
func (m *MockSimulationService) StartIncident(ctx context.Context, req service.StartIncidentRequest) (service.IncidentView, error) {
	if m.StartIncidentFunc != nil {
		return m.StartIncidentFunc(ctx, req)
	}
	return service.IncidentView{}, errors.New("StartIncidentFunc not implemented")
}

// GetIncident implements the SimulationService interface
func (m *MockSimulationService) GetIncident(ctx context.Context, userID int64, incidentID string) (service.IncidentView, error) {
	if m.GetIncidentFunc != nil {
		return m.GetIncidentFunc(ctx, userID, incidentID)
	}
	return service.IncidentView{}, errors.New("GetIncidentFunc not implemented")
}

// ActiveIncidents implements the SimulationService interface
func (m *MockSimulationService) ActiveIncidents(ctx context.Context, userID int64) ([]service.IncidentView, error) {
	if m.ActiveIncidentsFunc != nil {
		return m.ActiveIncidentsFunc(ctx, userID)
	}
	return nil, errors.New("ActiveIncidentsFunc not implemented")
}

// ResolveIncident implements the SimulationService interface
func (m *MockSimulationService) ResolveIncident(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error) {
	if m.ResolveIncidentFunc != nil {
		return m.ResolveIncidentFunc(ctx, req)
	}
	return service.ResolutionResult{}, errors.New("ResolveIncidentFunc not implemented")
}

// UserRatingReport implements the SimulationService interface
func (m *MockSimulationService) UserRatingReport(ctx context.Context, userID int64) (service.RatingReportView, error) {
	if m.UserRatingReportFunc != nil {
		return m.UserRatingReportFunc(ctx, userID)
	}
	return service.RatingReportView{}, errors.New("UserRatingReportFunc not implemented")
}
