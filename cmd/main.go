package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/users-service/docs"
	"github.com/sbilibin2017/users-service/internal/config"
	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/middlewares"
	"github.com/sbilibin2017/users-service/internal/migrations"
	"github.com/sbilibin2017/users-service/internal/repositories"
	"github.com/sbilibin2017/users-service/internal/routes"
	"github.com/sbilibin2017/users-service/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Commands.
const (
	commandServe      = "serve"
	commandRecreateDB = "recreate-db"
	commandSeedDB     = "seed-db"
)

// @title users-service API
// @version 1.0.0
// @description Microservice for managing user records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, command := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, command); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and the command.
// The command defaults to serve.
func parseFlags() (configPath, command string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-c config.env] [%s|%s|%s]\n",
			os.Args[0], commandServe, commandRecreateDB, commandSeedDB)
		flag.PrintDefaults()
	}
	flag.Parse()

	command = commandServe
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}
	return *c, command
}

// run initializes the logger and the user store, then executes the command.
func run(ctx context.Context, cfg *config.Config, command string) error {
	switch command {
	case commandServe, commandRecreateDB, commandSeedDB:
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if err := logger.Initialize(cfg.LogLevel, cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("Logger initialized", "level", cfg.LogLevel, "profile", cfg.Profile)

	if cfg.UsesMemoryStore() {
		if command != commandServe {
			return fmt.Errorf("%s needs a postgres DATABASE_URL", command)
		}
		logger.Log.Warn("Using the in-memory user store, data is lost on exit")
		repo := repositories.NewUserMemoryRepository()
		svc := services.NewUserService(repo, repo, nil)
		return serve(ctx, cfg, routes.NewRouter(svc))
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if command == commandRecreateDB {
		if err := migrations.Reset(ctx, db.DB); err != nil {
			return err
		}
		logger.Log.Info("Database recreated")
		return nil
	}

	if err := migrations.Up(ctx, db.DB); err != nil {
		return err
	}

	kafkaWriter := newKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	svc := services.NewUserService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
		kafkaWriter,
	)

	if command == commandSeedDB {
		inserted, err := svc.Seed(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Log.Infow("Database seeded", "inserted", inserted)
		return nil
	}

	return serve(ctx, cfg, routes.NewRouter(svc, middlewares.TxMiddleware(db)))
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg *config.Config) services.KafkaWriter {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	logger.Log.Infow("Publishing user events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// serve runs the HTTP server until ctx is cancelled or a termination signal arrives.
func serve(ctx context.Context, cfg *config.Config, r *chi.Mux) error {
	docs.SwaggerInfo.Host = cfg.Addr()
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
