package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/reimbursement-workflow/internal"
	"github.com/frahmantamala/reimbursement-workflow/internal/auth"
	authPostgres "github.com/frahmantamala/reimbursement-workflow/internal/auth/postgres"
	"github.com/frahmantamala/reimbursement-workflow/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/reimbursement-workflow/internal/dashboard/postgres"
	"github.com/frahmantamala/reimbursement-workflow/internal/policy"
	policyPostgres "github.com/frahmantamala/reimbursement-workflow/internal/policy/postgres"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	requestPostgres "github.com/frahmantamala/reimbursement-workflow/internal/request/postgres"
	"github.com/frahmantamala/reimbursement-workflow/internal/storage"
	"github.com/frahmantamala/reimbursement-workflow/internal/transport/rest"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
	userPostgres "github.com/frahmantamala/reimbursement-workflow/internal/user/postgres"
	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupServices(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up services: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

func setupServices(deps *Dependencies) error {
	lg := deps.Logger

	receiptStore, err := storage.NewMinioReceiptStore(deps.Config.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize receipt store: %w", err)
	}

	ctx, cancel := internal.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := receiptStore.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure receipt bucket: %w", err)
	}

	hasher := auth.NewCredentialHasher(deps.Config.Security.BCryptCost)
	tokenGen := auth.NewJWTTokenGenerator(deps.Config.Security.JWTSecret, deps.Config.Security.AccessTokenDuration)

	userService := user.NewService(userPostgres.NewUserRepository(deps.GormDB), hasher, lg)
	authService := auth.NewService(authPostgres.NewAuthRepository(deps.GormDB), tokenGen, lg)
	requestService := request.NewService(requestPostgres.NewRequestRepository(deps.GormDB), userService, receiptStore, lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(deps.GormDB), lg)
	policyService := policy.NewService(policyPostgres.NewPolicyRepository(deps.GormDB), lg)

	// one-time idempotent startup seeding
	if err := userService.EnsureMasterAdmin(deps.Config.Security.MasterAdminPassword); err != nil {
		return fmt.Errorf("failed to seed master admin: %w", err)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Request:   request.NewHandler(requestService),
		User:      user.NewHandler(userService),
		Policy:    policy.NewHandler(policyService),
	}, deps.Config.Server.AllowedOrigins, lg)

	return nil
}

// initDB initializes the database connection pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	if cfg.ConnMaxLifetime > 0 {
		dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
