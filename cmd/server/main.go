package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeclock-backend/internal/api/routes"
	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/config"
	"timeclock-backend/internal/database"
	"timeclock-backend/internal/database/models"
	"timeclock-backend/internal/localcache"
	"timeclock-backend/internal/logger"
	"timeclock-backend/internal/service"
	"timeclock-backend/internal/tenant"
	"timeclock-backend/internal/tenantstore"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "timeclock-backend/docs" // This is needed for swag
)

const version = "1.0.0"

//	@title			Timeclock Backend API
//	@version		1.0
//	@description	Multi-tenant time tracking: clock sessions, teams, tasks and dashboard metrics, one store per company.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := tenant.LoadRegistry(cfg.TenantsFile)
	if err != nil {
		logrus.Fatal("Failed to load tenant registry: ", err)
	}
	manager := tenantstore.NewManager(cfg.DataDir, database.ParseLogLevel(cfg.DBLogLevel))

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatal("Failed to initialize auth service: ", err)
	}

	var (
		mirror       service.Mirror
		sharedTenant string
	)
	if cfg.IsSingleDataset() {
		cache := localcache.New(cfg.LocalCachePath, cfg.SharedTenantID)
		if err := rehydrate(ctx, manager, registry, cfg.SharedTenantID, cache); err != nil {
			logrus.Fatal("Failed to prepare shared dataset: ", err)
		}
		mirror = cache
		sharedTenant = cfg.SharedTenantID
	}

	sessions := tenant.NewSessions(registry, manager, sharedTenant)
	if cfg.SessionIdleTimeout > 0 {
		sessions.SetIdleTimeout(cfg.SessionIdleTimeout)
		go sessions.Run(ctx, cfg.SessionSweepInterval)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close tenant sessions")
		}
	}()

	provider := service.NewWorkspaceProvider(sessions, service.NewValidator(), mirror, time.Local, time.Now)
	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Provider:    provider,
		AuthService: authService,
		Stores:      manager,
		Now:         time.Now,
		Version:     version,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": port, "mode": cfg.Mode}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}

// rehydrate makes sure the shared store exists and seeds it from the local cache when it is empty.
func rehydrate(ctx context.Context, manager *tenantstore.Manager, registry *tenant.Registry, tenantID string, cache *localcache.Cache) error {
	var (
		handle *tenantstore.Handle
		err    error
	)
	if manager.Exists(tenantID) {
		handle, err = manager.Open(ctx, tenantID)
	} else {
		company := &models.Company{BaseModel: models.BaseModel{ID: tenantID}, Name: tenantID}
		if entry, ok := registry.Lookup(tenantID); ok {
			company = entry.Company()
		}
		handle, err = manager.Provision(ctx, company)
	}
	if err != nil {
		return err
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("Failed to close shared tenant store")
		}
	}()

	snap, err := cache.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local cache: %w", err)
	}
	facade := service.NewDataFacade(service.FixedSource(handle), service.NewValidator(), nil)
	if _, err := facade.Restore(ctx, snap); err != nil {
		return fmt.Errorf("failed to restore local cache: %w", err)
	}
	return nil
}
