package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oncallsim/incident-server/api/v1"
	"github.com/oncallsim/incident-server/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyCompanies    CacheKeyType = "grpc:companies"
	cacheKeyRatingReport CacheKeyType = "grpc:rating_report"
)

type GRPCHandlers struct {
	pb.UnimplementedIncidentSimServer
	sim      SimulationService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(sim SimulationService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if sim == nil {
		panic("nil SimulationService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		sim:      sim,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func ratingReportKey(userID int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyRatingReport, userID)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		s.logger.Info("company not found", zap.String("op", op))
		return status.Error(codes.NotFound, "company not found")
	case errors.Is(err, service.ErrIncidentNotFound):
		s.logger.Info("incident not found", zap.String("op", op))
		return status.Error(codes.NotFound, "incident not found")
	case errors.Is(err, service.ErrIncidentNotActive):
		s.logger.Info("incident not active", zap.String("op", op))
		return status.Error(codes.FailedPrecondition, "incident is not active")
	case errors.Is(err, service.ErrInvalidAction):
		return status.Error(codes.InvalidArgument, "invalid resolution action")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) ListCompanies(ctx context.Context, req *pb.ListCompaniesRequest) (*pb.ListCompaniesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	companies, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyCompanies), s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.CompanySummary, error) {
		return s.sim.ListCompanies(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListCompanies", err)
	}

	pbCompanies := make([]*pb.Company, len(companies))
	for i, c := range companies {
		pbCompanies[i] = &pb.Company{
			Id:                c.ID,
			Name:              c.Name,
			Slug:              c.Slug,
			Description:       c.Description,
			Industry:          c.Industry,
			CompanySize:       c.CompanySize,
			TechStack:         c.TechStack,
			FocusAreas:        c.FocusAreas,
			IncidentFrequency: c.IncidentFrequency,
		}
	}
	return &pb.ListCompaniesResponse{Companies: pbCompanies}, nil
}

func (s *GRPCHandlers) StartIncident(ctx context.Context, req *pb.StartIncidentRequest) (*pb.IncidentResponse, error) {
	if req.GetUserId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetCompanySlug() == "" {
		return nil, status.Error(codes.InvalidArgument, "company_slug is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	view, err := s.sim.StartIncident(ctx, service.StartIncidentRequest{
		UserID:      req.GetUserId(),
		CompanySlug: req.GetCompanySlug(),
		Severity:    req.GetSeverity(),
	})
	if err != nil {
		return nil, s.handleError(ctx, "StartIncident", err)
	}

	return &pb.IncidentResponse{Incident: s.mapToProtoIncident(view)}, nil
}

func (s *GRPCHandlers) GetIncident(ctx context.Context, req *pb.GetIncidentRequest) (*pb.IncidentResponse, error) {
	if req.GetUserId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetIncidentId() == "" {
		return nil, status.Error(codes.InvalidArgument, "incident_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	view, err := s.sim.GetIncident(ctx, req.GetUserId(), req.GetIncidentId())
	if err != nil {
		return nil, s.handleError(ctx, "GetIncident", err)
	}

	return &pb.IncidentResponse{Incident: s.mapToProtoIncident(view)}, nil
}

func (s *GRPCHandlers) ListActiveIncidents(ctx context.Context, req *pb.ListActiveIncidentsRequest) (*pb.ListActiveIncidentsResponse, error) {
	if req.GetUserId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	views, err := s.sim.ActiveIncidents(ctx, req.GetUserId())
	if err != nil {
		return nil, s.handleError(ctx, "ListActiveIncidents", err)
	}

	incidents := make([]*pb.Incident, len(views))
	for i, v := range views {
		incidents[i] = s.mapToProtoIncident(v)
	}
	return &pb.ListActiveIncidentsResponse{Incidents: incidents}, nil
}

func (s *GRPCHandlers) ResolveIncident(ctx context.Context, req *pb.ResolveIncidentRequest) (*pb.ResolveIncidentResponse, error) {
	if req.GetUserId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetIncidentId() == "" {
		return nil, status.Error(codes.InvalidArgument, "incident_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.sim.ResolveIncident(ctx, service.ResolveIncidentRequest{
		UserID:             req.GetUserId(),
		IncidentID:         req.GetIncidentId(),
		Action:             req.GetAction(),
		ResolutionApproach: req.GetResolutionApproach(),
		CodeChanges:        req.GetCodeChanges(),
		CommandsExecuted:   req.GetCommandsExecuted(),
		SolutionType:       req.GetSolutionType(),
	})
	if err != nil {
		return nil, s.handleError(ctx, "ResolveIncident", err)
	}

	// The rating changed; a stale cached report would show the old rating
	// until TTL expiry.
	if err := s.cache.Del(ctx, ratingReportKey(req.GetUserId())); err != nil {
		s.logger.Warn("failed to invalidate rating report cache",
			zap.Int64("user_id", req.GetUserId()),
			zap.Error(err))
	}

	return &pb.ResolveIncidentResponse{
		IncidentId:       result.IncidentID,
		Status:           result.Status,
		WasSuccessful:    result.WasSuccessful,
		TimeSpentMinutes: int32(result.TimeSpentMinutes),
		QualityScore:     int32(result.QualityScore),
		GradeMethod:      result.GradeMethod,
		Feedback:         result.Feedback,
		PointsEarned:     int32(result.PointsEarned),
		PenaltyApplied:   result.PenaltyApplied,
		NewRating:        int32(result.NewRating),
		RatingChange:     int32(result.RatingChange),
	}, nil
}

func (s *GRPCHandlers) GetRatingReport(ctx context.Context, req *pb.RatingReportRequest) (*pb.RatingReportResponse, error) {
	if req.GetUserId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	userID := req.GetUserId()
	report, err := FindAndCache(ctx, s.cache, &s.sfGroup, ratingReportKey(userID), s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.RatingReportView, error) {
		return s.sim.UserRatingReport(fetchCtx, userID)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetRatingReport", err)
	}

	return s.mapToProtoReport(report), nil
}

func (s *GRPCHandlers) mapToProtoIncident(v service.IncidentView) *pb.Incident {
	return &pb.Incident{
		Id:                     v.ID,
		CompanyId:              v.CompanyID,
		Title:                  v.Title,
		Description:            v.Description,
		Severity:               v.Severity,
		TimeLimitMinutes:       int32(v.TimeLimitMinutes),
		AffectedServices:       v.AffectedServices,
		ErrorLogs:              v.ErrorLogs,
		CodebaseContext:        v.CodebaseContext,
		MonitoringDashboardUrl: v.MonitoringDashboardURL,
		Status:                 v.Status,
		StartedAtUnix:          v.StartedAt.Unix(),
		Timer: &pb.TimerStatus{
			ElapsedSeconds:   int64(v.Timer.ElapsedSeconds),
			RemainingSeconds: int64(v.Timer.RemainingSeconds),
			RemainingPercent: v.Timer.RemainingPercent,
			PressureLevel:    v.Timer.PressureLevel,
			Expired:          v.Timer.Expired,
		},
	}
}

func (s *GRPCHandlers) mapToProtoReport(r service.RatingReportView) *pb.RatingReportResponse {
	resp := &pb.RatingReportResponse{
		UserId:        r.UserID,
		CurrentRating: int32(r.CurrentRating),
		Category:      r.Category,
		Percentile:    r.Percentile,
		RangeMin:      int32(r.RangeMin),
		RangeMax:      int32(r.RangeMax),
		NextThreshold: int32(r.NextThreshold),
		PointsToNext:  int32(r.PointsToNext),
		Skills: &pb.SkillRatings{
			DebuggingSkill:   int32(r.Skills.DebuggingSkill),
			SystemDesign:     int32(r.Skills.SystemDesign),
			IncidentResponse: int32(r.Skills.IncidentResponse),
			Communication:    int32(r.Skills.Communication),
		},
		TotalIncidentsResolved: int32(r.TotalIncidentsResolved),
		AverageResolutionTime:  r.AverageResolutionTime,
		SuccessRate:            r.SuccessRate,
	}
	if r.RecentPerformance != nil {
		resp.RecentPerformance = &pb.PerformanceTrend{
			TotalIncidents: int32(r.RecentPerformance.TotalIncidents),
			SuccessRate:    r.RecentPerformance.SuccessRate,
			Trend:          r.RecentPerformance.Trend,
			AveragePoints:  r.RecentPerformance.AveragePoints,
		}
	}
	return resp
}
