package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/oncallsim/incident-server/api/v1"
	"github.com/oncallsim/incident-server/internal/config"
	"github.com/oncallsim/incident-server/internal/generator"
	"github.com/oncallsim/incident-server/internal/grading"
	handler "github.com/oncallsim/incident-server/internal/grpc"
	"github.com/oncallsim/incident-server/internal/repository"
	"github.com/oncallsim/incident-server/internal/repository/models"
	"github.com/oncallsim/incident-server/internal/service"
	"github.com/oncallsim/incident-server/pkg/cache"
	dbbuilder "github.com/oncallsim/incident-server/pkg/database"
	grpcsrv "github.com/oncallsim/incident-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	if err := repository.EnsureSchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	companyRepo := repository.NewCompanyRepository(dbPool)
	incidentRepo := repository.NewIncidentRepository(dbPool)
	ratingRepo := repository.NewRatingRepository(dbPool)

	if err := companyRepo.Seed(ctx, seedCompanies()); err != nil {
		return nil, fmt.Errorf("company seed failed: %w", err)
	}

	// Disabling grading drops the grader into its deterministic
	// fallback mode; incident resolution keeps working without a model.
	apiKey := cfg.OpenAIAPIKey
	if !cfg.GradingEnabled {
		apiKey = ""
	}
	grader := grading.NewLLMGrader(apiKey, cfg.GradingModel, logger)

	simulationService := service.NewSimulationService(companyRepo, incidentRepo, ratingRepo, grader, logger, nil)

	grpcHandlers := handler.NewGRPCHandlers(simulationService, cacheClient, logger, 10*time.Minute)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterIncidentSimServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// seedCompanies converts the built-in company profiles to storable rows.
func seedCompanies() []models.Company {
	profiles := generator.Profiles()
	companies := make([]models.Company, 0, len(profiles))
	for _, p := range profiles {
		companies = append(companies, models.Company{
			Name:              p.Name,
			Slug:              p.Slug,
			Description:       p.Description,
			Industry:          p.Industry,
			CompanySize:       p.CompanySize,
			TechStack:         p.TechStack,
			FocusAreas:        p.FocusAreas,
			IncidentFrequency: p.IncidentFrequency,
		})
	}
	return companies
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC shutdown incomplete", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
