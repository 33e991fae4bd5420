package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/oncallsim/incident-server/internal/grading"
	"github.com/oncallsim/incident-server/internal/repository/models"
)

// MockCompanyStore is a mock implementation of the CompanyStore interface
// for testing the service layer.
type MockCompanyStore struct {
	ListFunc      func(ctx context.Context) ([]models.Company, error)
	GetBySlugFunc func(ctx context.Context, slug string) (models.Company, error)
}

func (m *MockCompanyStore) List(ctx context.Context) ([]models.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented")
}

func (m *MockCompanyStore) GetBySlug(ctx context.Context, slug string) (models.Company, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return models.Company{}, errors.New("GetBySlugFunc not implemented")
}

// MockIncidentStore is a mock implementation of the IncidentStore interface.
type MockIncidentStore struct {
	CreateFunc        func(ctx context.Context, incident *models.Incident) error
	GetByIDFunc       func(ctx context.Context, id string) (models.Incident, error)
	ActiveForUserFunc func(ctx context.Context, userID int64) ([]models.Incident, error)
	CloseFunc         func(ctx context.Context, id, status, notes, solutionType string, resolvedAt time.Time) (bool, error)
}

func (m *MockIncidentStore) Create(ctx context.Context, incident *models.Incident) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, incident)
	}
	return errors.New("CreateFunc not implemented")
}

func (m *MockIncidentStore) GetByID(ctx context.Context, id string) (models.Incident, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return models.Incident{}, errors.New("GetByIDFunc not implemented")
}

func (m *MockIncidentStore) ActiveForUser(ctx context.Context, userID int64) ([]models.Incident, error) {
	if m.ActiveForUserFunc != nil {
		return m.ActiveForUserFunc(ctx, userID)
	}
	return nil, errors.New("ActiveForUserFunc not implemented")
}

func (m *MockIncidentStore) Close(ctx context.Context, id, status, notes, solutionType string, resolvedAt time.Time) (bool, error) {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, id, status, notes, solutionType, resolvedAt)
	}
	return false, errors.New("CloseFunc not implemented")
}

// MockRatingStore is a mock implementation of the RatingStore interface.
type MockRatingStore struct {
	GetStateFunc       func(ctx context.Context, userID int64) (models.RatingState, error)
	RecentAttemptsFunc func(ctx context.Context, userID int64) ([]models.Attempt, error)
	ApplyAttemptFunc   func(ctx context.Context, attempt models.Attempt, compute func(prev models.RatingState, history []models.Attempt) models.RatingState) (models.RatingState, error)
}

func (m *MockRatingStore) GetState(ctx context.Context, userID int64) (models.RatingState, error) {
	if m.GetStateFunc != nil {
		return m.GetStateFunc(ctx, userID)
	}
	return models.RatingState{}, errors.New("GetStateFunc not implemented")
}

func (m *MockRatingStore) RecentAttempts(ctx context.Context, userID int64) ([]models.Attempt, error) {
	if m.RecentAttemptsFunc != nil {
		return m.RecentAttemptsFunc(ctx, userID)
	}
	return nil, errors.New("RecentAttemptsFunc not implemented")
}

func (m *MockRatingStore) ApplyAttempt(ctx context.Context, attempt models.Attempt, compute func(prev models.RatingState, history []models.Attempt) models.RatingState) (models.RatingState, error) {
	if m.ApplyAttemptFunc != nil {
		return m.ApplyAttemptFunc(ctx, attempt, compute)
	}
	return models.RatingState{}, errors.New("ApplyAttemptFunc not implemented")
}

// MockGrader is a mock implementation of the grading.Grader interface.
type MockGrader struct {
	GradeFunc func(ctx context.Context, req grading.Request) grading.Result
}

func (m *MockGrader) Grade(ctx context.Context, req grading.Request) grading.Result {
	if m.GradeFunc != nil {
		return m.GradeFunc(ctx, req)
	}
	return grading.Result{Score: 50, Method: grading.MethodFallback}
}
