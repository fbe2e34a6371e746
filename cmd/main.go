package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/facades"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/migrations"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	LockNamespace string
	LockTTL       time.Duration
	LockWait      time.Duration
	LockAutoRenew bool

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	ReconcileInterval time.Duration
	ReconcileWorkers  int
}

// postgresDSN returns the connection string shared by sqlx and the migrator.
func (c config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title gw-deposit-ledger API
// @version 1.0.0
// @description Deposit requests, admin approval and the wallet ledger
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Lock config
	cfg.LockNamespace = getEnv("LOCK_NAMESPACE", "app")
	lockTTL, err := getInt("LOCK_TTL_MS", "10000")
	if err != nil {
		return
	}
	if lockTTL <= 0 {
		err = fmt.Errorf("LOCK_TTL_MS: must be positive, got %d", lockTTL)
		return
	}
	cfg.LockTTL = time.Duration(lockTTL) * time.Millisecond
	lockWait, err := getInt("LOCK_WAIT_MS", "10000")
	if err != nil {
		return
	}
	if lockWait < 0 {
		err = fmt.Errorf("LOCK_WAIT_MS: must not be negative, got %d", lockWait)
		return
	}
	cfg.LockWait = time.Duration(lockWait) * time.Millisecond
	if cfg.LockAutoRenew, err = strconv.ParseBool(getEnv("LOCK_AUTO_RENEW", "false")); err != nil {
		err = fmt.Errorf("LOCK_AUTO_RENEW: %w", err)
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "60")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Reconciliation config
	interval, err := getInt("RECONCILE_INTERVAL_SECOND", "300")
	if err != nil {
		return
	}
	cfg.ReconcileInterval = time.Duration(interval) * time.Second
	if cfg.ReconcileWorkers, err = getInt("RECONCILE_WORKERS", "4"); err != nil {
		return
	}

	return
}

type depositService interface {
	handlers.DepositCreator
	handlers.DepositCanceller
	handlers.DepositRejecter
}

type walletService interface {
	handlers.WalletGetter
	handlers.WalletOpener
}

// app groups the services the HTTP layer calls.
type app struct {
	deposits   depositService
	approvals  handlers.DepositApprover
	wallets    walletService
	reconciler handlers.Reconciler
	locks      handlers.LockInspector
}

// newRouter wires handlers and middlewares. Every route needs a valid token,
// /admin routes additionally need the admin role.
func newRouter(a app, tokens *jwt.JWT) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))

		r.Post("/deposits", handlers.NewCreateDepositHandler(a.deposits, tokens))
		r.Post("/deposits/{id}/cancel", handlers.NewCancelDepositHandler(a.deposits, tokens))
		r.Get("/wallet", handlers.NewGetWalletHandler(a.wallets, tokens))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RoleMiddleware(tokens, jwt.RoleAdmin))

			r.Post("/deposits/{id}/approve", handlers.NewApproveDepositHandler(a.approvals, tokens))
			r.Post("/deposits/{id}/reject", handlers.NewRejectDepositHandler(a.deposits, tokens))
			r.Post("/wallets", handlers.NewCreateWalletHandler(a.wallets))
			r.Post("/reconciliation", handlers.NewReconcileHandler(a.reconciler))
			r.Get("/locks/{id}", handlers.NewGetLockHandler(a.locks))
			r.Delete("/locks/{id}", handlers.NewForceReleaseLockHandler(a.locks))
		})
	})

	return r
}

// runReconciler runs a reconciliation pass every interval until ctx is done. A non-positive interval disables it.
func runReconciler(ctx context.Context, svc handlers.Reconciler, interval time.Duration) {
	rlog := logger.Named("reconciler")
	if interval <= 0 {
		rlog.Info("Reconciliation disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := svc.Run(ctx)
			if err != nil {
				rlog.Errorw("reconciliation failed", "error", err)
				continue
			}
			if !report.Clean() {
				rlog.Warnw("reconciliation found problems",
					"orphaned_approvals", report.OrphanedApprovals,
					"mismatches", len(report.Mismatches),
				)
			}
		}
	}
}

// run initializes the logger, database, Redis, Kafka writer, services and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := cfg.postgresDSN()
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	if err := migrations.Run(dsn); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer is optional
	var writer facades.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer = &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		}
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	events := facades.NewLedgerEventsKafkaFacade(writer)
	defer events.Close()

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	lockRepo := repositories.NewLockRepository(rdb)
	walletRepo := repositories.NewWalletRepository(db)
	depositRepo := repositories.NewDepositRequestRepository(db)
	txRepo := repositories.NewWalletTransactionRepository(db)

	// Initialize services
	policy := services.LockPolicy{TTL: cfg.LockTTL, MaxWait: cfg.LockWait}
	locks := services.NewLockService(lockRepo,
		services.WithLockNamespace(cfg.LockNamespace),
		services.WithLockRenewal(cfg.LockAutoRenew),
	)
	ledger := services.NewLedgerService(walletRepo, txRepo)
	reconciler := services.NewReconciliationService(depositRepo, walletRepo, txRepo, locks, policy, cfg.ReconcileWorkers)

	a := app{
		deposits:   services.NewDepositService(tokens, depositRepo, walletRepo, locks, services.DefaultDepositLimits(), policy),
		approvals:  services.NewApprovalService(tokens, depositRepo, walletRepo, locks, ledger, events, policy),
		wallets:    services.NewWalletService(tokens, walletRepo, walletRepo),
		reconciler: reconciler,
		locks:      locks,
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(a, tokens),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go runReconciler(ctxShutdown, reconciler, cfg.ReconcileInterval)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
