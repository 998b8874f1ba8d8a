package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"couple-wellness-backend/internal/config"
	"couple-wellness-backend/internal/handlers"
	"couple-wellness-backend/internal/middleware"
	"couple-wellness-backend/internal/repository"
	"couple-wellness-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Connect to database
	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		log.Info().Msg("Database schema applied")
	}

	loc := cfg.App.Location()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	emotionRepo := repository.NewEmotionRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	testRepo := repository.NewInfertilityRepository(db)
	counselRepo := repository.NewCounselRepository(db)

	// Realtime delivery
	bus := newEventBus(ctx, cfg.Redis)
	defer bus.Close()

	wsHub := services.NewWSHub()
	if err := bus.Start(ctx, wsHub.Deliver); err != nil {
		log.Fatal().Err(err).Msg("Failed to start event bus")
	}

	notifier := services.NewSpouseNotifier(bus, newPusher(cfg.APNs))

	// Initialize services
	memberService := services.NewMemberService(memberRepo, cfg.JWT.Secret, cfg.JWT.ExpDays)
	coupleService := services.NewCoupleService(coupleRepo, memberRepo, notifier)
	missionService := services.NewMissionService(coupleService, emotionRepo, loc)
	interestService := services.NewInterestService(interestRepo)
	emotionService := services.NewEmotionService(emotionRepo)
	emotionService.OnCreated(interestService.RecordFromEmotionStep())
	emotionService.OnCompleted(services.NotifySpouseStep(coupleService, notifier))
	infertilityService := services.NewInfertilityService(testRepo)
	counselService := services.NewCounselService(counselRepo)
	exportService := services.NewExportService(
		newObjectStore(ctx, cfg.AWS),
		memberRepo,
		emotionRepo,
		interestRepo,
		testRepo,
		counselRepo,
	)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	routes := handlers.Routes{
		Members:     handlers.NewMemberHandler(memberService),
		Couples:     handlers.NewCoupleHandler(coupleService),
		Missions:    handlers.NewMissionHandler(missionService, loc),
		Emotions:    handlers.NewEmotionHandler(emotionService),
		Interests:   handlers.NewInterestHandler(interestService),
		Infertility: handlers.NewInfertilityHandler(infertilityService),
		Counsels:    handlers.NewCounselHandler(counselService),
		Exports:     handlers.NewExportHandler(exportService),
	}
	r.Route("/api/v1", func(r chi.Router) {
		routes.Mount(r, middleware.AuthMiddleware(memberService))
	})

	// WebSocket route
	wsHandler := handlers.NewWebSocketHandler(wsHub, bus, memberService, coupleService)
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Str("timezone", loc.String()).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	stop()

	log.Info().Msg("Server exited")
}

// newEventBus uses Redis when an address is configured and falls back to in-process delivery
func newEventBus(ctx context.Context, cfg config.RedisConfig) services.EventBus {
	if cfg.Addr == "" {
		log.Info().Msg("Redis not configured, using in-process event bus")
		return services.NewLocalBus()
	}

	bus, err := services.NewRedisBus(ctx, cfg.Addr, cfg.Password, cfg.DB, cfg.Channel)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis")
	}
	log.Info().Str("addr", cfg.Addr).Str("channel", cfg.Channel).Msg("Redis event bus connected")
	return bus
}

func newPusher(cfg config.APNsConfig) services.Pusher {
	if cfg.KeyPath == "" {
		log.Info().Msg("APNs not configured, push notifications disabled")
		return services.NoopPusher{}
	}

	pusher, err := services.NewAPNsPusher(cfg.KeyPath, cfg.KeyID, cfg.TeamID, cfg.Topic, cfg.Production)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create APNs client")
	}
	return pusher
}

// newObjectStore returns nil when no bucket is configured, which disables exports
func newObjectStore(ctx context.Context, cfg config.AWSConfig) services.ObjectStore {
	if cfg.S3Bucket == "" {
		log.Info().Msg("S3 bucket not configured, exports disabled")
		return nil
	}

	store, err := services.NewS3Store(ctx, cfg.Region, cfg.S3Bucket, cfg.AccessKey, cfg.SecretKey, cfg.Endpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create S3 client")
	}
	return store
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
