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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/jpfonseca/watchlog/internal/handlers"
	"github.com/jpfonseca/watchlog/internal/logger"
	"github.com/jpfonseca/watchlog/internal/mail"
	"github.com/jpfonseca/watchlog/internal/middlewares"
	"github.com/jpfonseca/watchlog/internal/models"
	"github.com/jpfonseca/watchlog/internal/repositories"
	"github.com/jpfonseca/watchlog/internal/services"
	"github.com/jpfonseca/watchlog/internal/tokens"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jpfonseca/watchlog/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title watchlog API
// @version 1.0.0
// @description Backend for tracking watched and watchlisted movies and series, with ratings and comments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		frontendURL,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		frontendURL,
		jwtSecret, jwtExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, SMTP, and token configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	frontendURL string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "watchlog")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "watchlog.interactions")

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "localhost")
	smtpPort = getEnv("SMTP_PORT", "587")
	smtpUser = getEnv("SMTP_USER", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpFrom = getEnv("SMTP_FROM", "noreply@watchlog.local")

	// Frontend base URL embedded in password-reset links
	frontendURL = getEnv("FRONTEND_URL", "http://localhost:8080")

	// Token config; sessions and reset tokens share the 1-hour lifetime
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	frontendURL string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for interaction events; nil disables publishing
	var kafkaWriter *kafka.Writer
	if kafkaBroker != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}

	tokenExp := time.Duration(jwtExpSecond) * time.Second

	// Initialize token service and mailer
	jwt := tokens.New(jwtSecretKey, tokenExp)
	mailer := mail.New(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionRepo := repositories.NewSessionCacheRepository(rdb, tokenExp)

	movieCatalogReadRepo := repositories.NewCatalogReadRepository(db, models.MediaKindMovie)
	movieCatalogWriteRepo := repositories.NewCatalogWriteRepository(db, models.MediaKindMovie)
	movieWatchReadRepo := repositories.NewWatchReadRepository(db, models.MediaKindMovie)
	movieWatchWriteRepo := repositories.NewWatchWriteRepository(db, models.MediaKindMovie)

	seriesCatalogReadRepo := repositories.NewCatalogReadRepository(db, models.MediaKindSeries)
	seriesCatalogWriteRepo := repositories.NewCatalogWriteRepository(db, models.MediaKindSeries)
	seriesWatchReadRepo := repositories.NewWatchReadRepository(db, models.MediaKindSeries)
	seriesWatchWriteRepo := repositories.NewWatchWriteRepository(db, models.MediaKindSeries)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, jwt, mailer, frontendURL)
	movieCatalogService := services.NewCatalogService(movieCatalogWriteRepo)
	seriesCatalogService := services.NewCatalogService(seriesCatalogWriteRepo)

	var eventWriter services.KafkaWriter
	if kafkaWriter != nil {
		eventWriter = kafkaWriter
	}
	movieWatchService := services.NewWatchService(models.MediaKindMovie, movieWatchWriteRepo, movieWatchReadRepo, movieCatalogReadRepo, eventWriter)
	seriesWatchService := services.NewWatchService(models.MediaKindSeries, seriesWatchWriteRepo, seriesWatchReadRepo, seriesCatalogReadRepo, eventWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/utilizadores", handlers.NewRegisterHandler(authService))
	r.Post("/forgot/recuperar-password", handlers.NewForgotPasswordHandler(authService))
	r.Post("/recover/redefinir-password/{token}", handlers.NewResetPasswordHandler(authService))

	// Protected routes with session middleware
	authMiddleware := middlewares.AuthMiddleware(jwt, sessionRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/utilizador/{id}", handlers.NewGetProfileHandler(authService))
		r.Put("/utilizador/{id}", handlers.NewUpdateProfileHandler(authService))

		// Movies
		r.Get("/utilizador-filme/status/{id_utilizador}/{id_media}", handlers.NewStatusHandler(movieWatchService))
		r.Post("/utilizador-filme/adicionar", handlers.NewAddWatchHandler(movieWatchService))
		r.Put("/utilizador-filme/update", handlers.NewReviewHandler(movieWatchService))
		r.Get("/utilizador-filme/aver/{id_utilizador}", handlers.NewWatchlistHandler(movieWatchService, models.MediaKindMovie))
		r.Get("/utilizador-filme/visto/{id_utilizador}", handlers.NewWatchedHandler(movieWatchService, models.MediaKindMovie))
		r.Put("/utilizador-filme/{id}", handlers.NewUpdateEntryHandler(movieWatchService))
		r.Delete("/utilizador-filme/eliminar/{id}", handlers.NewDeleteEntryHandler(movieWatchService))
		r.Get("/filme/comentarios/{id_media}", handlers.NewCommentsHandler(movieWatchService))
		r.Post("/filmes/adicionar", handlers.NewSaveMediaHandler(movieCatalogService))

		// Series
		r.Get("/utilizador-serie/status/{id_utilizador}/{id_media}", handlers.NewStatusHandler(seriesWatchService))
		r.Post("/utilizador-serie/adicionar", handlers.NewAddWatchHandler(seriesWatchService))
		r.Put("/utilizador-serie/update", handlers.NewReviewHandler(seriesWatchService))
		r.Get("/utilizador-serie/aver/{id_utilizador}", handlers.NewWatchlistHandler(seriesWatchService, models.MediaKindSeries))
		r.Get("/utilizador-serie/visto/{id_utilizador}", handlers.NewWatchedHandler(seriesWatchService, models.MediaKindSeries))
		r.Put("/utilizador-serie/{id}", handlers.NewUpdateEntryHandler(seriesWatchService))
		r.Delete("/utilizador-serie/eliminar/{id}", handlers.NewDeleteEntryHandler(seriesWatchService))
		r.Get("/serie/comentarios/{id_media}", handlers.NewCommentsHandler(seriesWatchService))
		r.Post("/series/adicionar", handlers.NewSaveMediaHandler(seriesCatalogService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
