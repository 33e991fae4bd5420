package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oncallsim/incident-server/api/v1"
	"github.com/oncallsim/incident-server/internal/grpc/mocks"
	"github.com/oncallsim/incident-server/internal/service"
)

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{}
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()
		ttl := 5 * time.Minute

		handlers := NewGRPCHandlers(mockSim, mockCache, logger, ttl)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockSim, handlers.sim)
		assert.Equal(t, mockCache, handlers.cache)
		assert.Equal(t, ttl, handlers.cacheTTL)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil simulation service panics", func(t *testing.T) {
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()

		assert.Panics(t, func() {
			NewGRPCHandlers(nil, mockCache, logger, time.Minute)
		})
	})

	t.Run("zero TTL uses default", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{}
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()

		handlers := NewGRPCHandlers(mockSim, mockCache, logger, 0)

		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})

	t.Run("negative TTL uses default", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{}
		mockCache := &mocks.MockCacher{}
		logger := zap.NewNop()

		handlers := NewGRPCHandlers(mockSim, mockCache, logger, -time.Minute)

		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})
}

// TestRequestValidation tests request validation through the actual handler methods
func TestRequestValidation(t *testing.T) {
	mockSim := &mocks.MockSimulationService{}
	mockCache := &mocks.MockCacher{}
	handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

	t.Run("StartIncident requires user_id", func(t *testing.T) {
		resp, err := handlers.StartIncident(context.Background(), &pb.StartIncidentRequest{
			CompanySlug: "amazon",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "user_id is required")
	})

	t.Run("StartIncident requires company_slug", func(t *testing.T) {
		resp, err := handlers.StartIncident(context.Background(), &pb.StartIncidentRequest{
			UserId: 7,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "company_slug is required")
	})

	t.Run("GetIncident requires incident_id", func(t *testing.T) {
		resp, err := handlers.GetIncident(context.Background(), &pb.GetIncidentRequest{
			UserId: 7,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "incident_id is required")
	})

	t.Run("ListActiveIncidents requires user_id", func(t *testing.T) {
		resp, err := handlers.ListActiveIncidents(context.Background(), &pb.ListActiveIncidentsRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("ResolveIncident requires incident_id", func(t *testing.T) {
		resp, err := handlers.ResolveIncident(context.Background(), &pb.ResolveIncidentRequest{
			UserId: 7,
			Action: "resolve",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "incident_id is required")
	})

	t.Run("GetRatingReport requires user_id", func(t *testing.T) {
		resp, err := handlers.GetRatingReport(context.Background(), &pb.RatingReportRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("negative user_id rejected", func(t *testing.T) {
		resp, err := handlers.GetRatingReport(context.Background(), &pb.RatingReportRequest{
			UserId: -1,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

// TestRatingReportKey tests cache key generation
func TestRatingReportKey(t *testing.T) {
	assert.Equal(t, "grpc:rating_report:7", ratingReportKey(7))
	assert.Equal(t, "grpc:rating_report:120042", ratingReportKey(120042))
}

// TestHandleError tests error handling and status code mapping
func TestHandleError(t *testing.T) {
	handlers := &GRPCHandlers{logger: zap.NewNop()}

	t.Run("context canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Error(t, err)
		assert.Equal(t, codes.Canceled, status.Code(err))
		assert.Contains(t, err.Error(), "request canceled")
	})

	t.Run("context deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond) // Ensure timeout

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Error(t, err)
		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
		assert.Contains(t, err.Error(), "request timed out")
	})

	t.Run("company not found error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", service.ErrCompanyNotFound)

		assert.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Contains(t, err.Error(), "company not found")
	})

	t.Run("incident not found error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", service.ErrIncidentNotFound)

		assert.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Contains(t, err.Error(), "incident not found")
	})

	t.Run("incident not active error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", service.ErrIncidentNotActive)

		assert.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		assert.Contains(t, err.Error(), "incident is not active")
	})

	t.Run("invalid action error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", service.ErrInvalidAction)

		assert.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "invalid resolution action")
	})

	t.Run("storage failure error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", service.ErrStorageFailure)

		assert.Error(t, err)
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Contains(t, err.Error(), "database error")
	})

	t.Run("wrapped sentinel still maps", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: querying incidents: disk I/O error", service.ErrStorageFailure)

		err := handlers.handleError(context.Background(), "test_operation", wrapped)

		assert.Error(t, err)
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Contains(t, err.Error(), "database error")
	})

	t.Run("unknown error", func(t *testing.T) {
		unknownErr := errors.New("database connection lost")

		err := handlers.handleError(context.Background(), "test_operation", unknownErr)

		assert.Error(t, err)
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Contains(t, err.Error(), "test_operation failed")
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

// TestMapToProtoIncident tests data transformation
func TestMapToProtoIncident(t *testing.T) {
	mockSim := &mocks.MockSimulationService{}
	mockCache := &mocks.MockCacher{}
	handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

	startedAt := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	view := service.IncidentView{
		ID:                     "inc-1",
		CompanyID:              3,
		Title:                  "Payment API Latency Spike",
		Description:            "p99 latency above 5s",
		Severity:               "P1",
		TimeLimitMinutes:       45,
		AffectedServices:       []string{"payments-api", "checkout"},
		ErrorLogs:              "timeout waiting for connection pool",
		CodebaseContext:        "internal/payments/pool.go",
		MonitoringDashboardURL: "https://grafana.example.com/d/payments",
		Status:                 "active",
		StartedAt:              startedAt,
		Timer: service.TimerView{
			ElapsedSeconds:   600,
			RemainingSeconds: 2100,
			RemainingPercent: 77.8,
			PressureLevel:    "low",
			Expired:          false,
		},
	}

	result := handlers.mapToProtoIncident(view)

	assert.Equal(t, "inc-1", result.Id)
	assert.Equal(t, int64(3), result.CompanyId)
	assert.Equal(t, "Payment API Latency Spike", result.Title)
	assert.Equal(t, "P1", result.Severity)
	assert.Equal(t, int32(45), result.TimeLimitMinutes)
	assert.Equal(t, []string{"payments-api", "checkout"}, result.AffectedServices)
	assert.Equal(t, "https://grafana.example.com/d/payments", result.MonitoringDashboardUrl)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, startedAt.Unix(), result.StartedAtUnix)
	assert.NotNil(t, result.Timer)
	assert.Equal(t, int64(600), result.Timer.ElapsedSeconds)
	assert.Equal(t, int64(2100), result.Timer.RemainingSeconds)
	assert.Equal(t, 77.8, result.Timer.RemainingPercent)
	assert.Equal(t, "low", result.Timer.PressureLevel)
	assert.False(t, result.Timer.Expired)
}

// TestErrorHandling tests error propagation from service layer
func TestErrorHandling_ServiceErrors(t *testing.T) {
	t.Run("StartIncident with unknown company", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			StartIncidentFunc: func(ctx context.Context, req service.StartIncidentRequest) (service.IncidentView, error) {
				return service.IncidentView{}, service.ErrCompanyNotFound
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.StartIncident(context.Background(), &pb.StartIncidentRequest{
			UserId:      7,
			CompanySlug: "nonexistent",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.NotFound, status.Code(err))
		assert.Contains(t, err.Error(), "company not found")
	})

	t.Run("ResolveIncident on closed incident", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			ResolveIncidentFunc: func(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error) {
				return service.ResolutionResult{}, service.ErrIncidentNotActive
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.ResolveIncident(context.Background(), &pb.ResolveIncidentRequest{
			UserId:     7,
			IncidentId: "inc-1",
			Action:     "resolve",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("GetIncident storage failure", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			GetIncidentFunc: func(ctx context.Context, userID int64, incidentID string) (service.IncidentView, error) {
				return service.IncidentView{}, fmt.Errorf("%w: connection refused", service.ErrStorageFailure)
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.GetIncident(context.Background(), &pb.GetIncidentRequest{
			UserId:     7,
			IncidentId: "inc-1",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Contains(t, err.Error(), "database error")
	})
}

// TestSuccessfulCalls tests successful handler calls with function-based mocks
func TestSuccessfulCalls(t *testing.T) {
	t.Run("ListCompanies success", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			ListCompaniesFunc: func(ctx context.Context) ([]service.CompanySummary, error) {
				return []service.CompanySummary{
					{
						ID:                1,
						Name:              "Amazon",
						Slug:              "amazon",
						Industry:          "E-commerce",
						CompanySize:       "enterprise",
						TechStack:         []string{"Java", "DynamoDB"},
						FocusAreas:        []string{"scalability"},
						IncidentFrequency: 0.8,
					},
					{ID: 2, Name: "Stripe", Slug: "stripe"},
				}, nil
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.ListCompanies(context.Background(), &pb.ListCompaniesRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Len(t, resp.Companies, 2)
		assert.Equal(t, "amazon", resp.Companies[0].Slug)
		assert.Equal(t, []string{"Java", "DynamoDB"}, resp.Companies[0].TechStack)
		assert.Equal(t, 0.8, resp.Companies[0].IncidentFrequency)
		assert.Equal(t, "Stripe", resp.Companies[1].Name)
	})

	t.Run("StartIncident success", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			StartIncidentFunc: func(ctx context.Context, req service.StartIncidentRequest) (service.IncidentView, error) {
				assert.Equal(t, int64(7), req.UserID)
				assert.Equal(t, "amazon", req.CompanySlug)
				assert.Equal(t, "P1", req.Severity)
				return service.IncidentView{
					ID:       "inc-new",
					Severity: "P1",
					Status:   "active",
				}, nil
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.StartIncident(context.Background(), &pb.StartIncidentRequest{
			UserId:      7,
			CompanySlug: "amazon",
			Severity:    "P1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "inc-new", resp.Incident.Id)
		assert.Equal(t, "active", resp.Incident.Status)
	})

	t.Run("ListActiveIncidents success", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			ActiveIncidentsFunc: func(ctx context.Context, userID int64) ([]service.IncidentView, error) {
				return []service.IncidentView{
					{ID: "inc-1", Status: "active"},
					{ID: "inc-2", Status: "active"},
				}, nil
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.ListActiveIncidents(context.Background(), &pb.ListActiveIncidentsRequest{UserId: 7})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Len(t, resp.Incidents, 2)
		assert.Equal(t, "inc-1", resp.Incidents[0].Id)
		assert.Equal(t, "inc-2", resp.Incidents[1].Id)
	})

	t.Run("ResolveIncident success invalidates report cache", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			ResolveIncidentFunc: func(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error) {
				return service.ResolutionResult{
					IncidentID:       req.IncidentID,
					Status:           "resolved",
					WasSuccessful:    true,
					TimeSpentMinutes: 22,
					QualityScore:     90,
					GradeMethod:      "llm",
					Feedback:         "Good root cause analysis.",
					PointsEarned:     56,
					NewRating:        856,
					RatingChange:     56,
				}, nil
			},
		}

		var deletedKeys []string
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				deletedKeys = append(deletedKeys, keys...)
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.ResolveIncident(context.Background(), &pb.ResolveIncidentRequest{
			UserId:             7,
			IncidentId:         "inc-1",
			Action:             "resolve",
			ResolutionApproach: "restarted the connection pool after raising the limit",
			SolutionType:       "root_cause",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "inc-1", resp.IncidentId)
		assert.Equal(t, "resolved", resp.Status)
		assert.True(t, resp.WasSuccessful)
		assert.Equal(t, int32(90), resp.QualityScore)
		assert.Equal(t, int32(56), resp.PointsEarned)
		assert.Equal(t, int32(856), resp.NewRating)
		assert.Equal(t, []string{"grpc:rating_report:7"}, deletedKeys)
	})

	t.Run("ResolveIncident succeeds even when invalidation fails", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			ResolveIncidentFunc: func(ctx context.Context, req service.ResolveIncidentRequest) (service.ResolutionResult, error) {
				return service.ResolutionResult{IncidentID: req.IncidentID, Status: "abandoned"}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				return errors.New("redis unavailable")
			},
		}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.ResolveIncident(context.Background(), &pb.ResolveIncidentRequest{
			UserId:     7,
			IncidentId: "inc-1",
			Action:     "give_up",
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "abandoned", resp.Status)
	})

	t.Run("GetRatingReport success", func(t *testing.T) {
		mockSim := &mocks.MockSimulationService{
			UserRatingReportFunc: func(ctx context.Context, userID int64) (service.RatingReportView, error) {
				return service.RatingReportView{
					UserID:        userID,
					CurrentRating: 1250,
					Category:      "senior",
					Percentile:    50.0,
					RangeMin:      1200,
					RangeMax:      1399,
					NextThreshold: 1400,
					PointsToNext:  150,
					Skills: service.SkillRatingsView{
						DebuggingSkill:   1230,
						SystemDesign:     1180,
						IncidentResponse: 1260,
						Communication:    1100,
					},
					TotalIncidentsResolved: 40,
					AverageResolutionTime:  18.5,
					SuccessRate:            0.75,
					RecentPerformance: &service.TrendView{
						TotalIncidents: 6,
						SuccessRate:    0.83,
						Trend:          "improving",
						AveragePoints:  31.5,
					},
				}, nil
			},
		}
		mockCache := &mocks.MockCacher{}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.GetRatingReport(context.Background(), &pb.RatingReportRequest{UserId: 7})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int64(7), resp.UserId)
		assert.Equal(t, int32(1250), resp.CurrentRating)
		assert.Equal(t, "senior", resp.Category)
		assert.Equal(t, 50.0, resp.Percentile)
		assert.Equal(t, int32(150), resp.PointsToNext)
		assert.Equal(t, int32(1230), resp.Skills.DebuggingSkill)
		assert.Equal(t, int32(40), resp.TotalIncidentsResolved)
		assert.NotNil(t, resp.RecentPerformance)
		assert.Equal(t, "improving", resp.RecentPerformance.Trend)
		assert.Equal(t, int32(6), resp.RecentPerformance.TotalIncidents)
	})

	t.Run("GetRatingReport served from cache", func(t *testing.T) {
		// The cached report differs from what the service would return,
		// so the response proves which path was taken.
		mockSim := &mocks.MockSimulationService{
			UserRatingReportFunc: func(ctx context.Context, userID int64) (service.RatingReportView, error) {
				return service.RatingReportView{UserID: userID, CurrentRating: 800, Category: "junior"}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				assert.Equal(t, "grpc:rating_report:7", key)
				report, ok := dest.(*service.RatingReportView)
				assert.True(t, ok)
				report.UserID = 7
				report.CurrentRating = 1100
				report.Category = "mid_level"
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockSim, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.GetRatingReport(context.Background(), &pb.RatingReportRequest{UserId: 7})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int32(1100), resp.CurrentRating)
		assert.Equal(t, "mid_level", resp.Category)
	})
}
