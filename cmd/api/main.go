package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/renovation-marketplace/internal/db"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/ai"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/oauth"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/renovation-marketplace/internal/logger"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
	"github.com/BruksfildServices01/renovation-marketplace/internal/routes"
	"github.com/BruksfildServices01/renovation-marketplace/internal/timezone"
)

const tokenTTL = 7 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.AppEnv,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Warn("sentry disabled", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	timezone.SetDefault(cfg.Timezone)

	db := dbpkg.NewDB(cfg.DBUrl, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// Redis: OAuth state and cross-instance realtime
	// --------------------------------------------------
	var (
		rdb    *redis.Client
		states oauth.StateStore = oauth.NewMemoryStateStore()
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer rdb.Close()
		states = oauth.NewRedisStateStore(rdb)
	}

	hub := realtime.NewHub(log)
	broadcaster := realtime.NewBroadcaster(hub, rdb, log)
	go broadcaster.Run(ctx)

	// --------------------------------------------------
	// Object storage
	// --------------------------------------------------
	var store storage.Storage
	if cfg.S3.Endpoint != "" || cfg.S3.AccessKey != "" {
		store = storage.NewS3Storage(cfg.S3)
	} else {
		log.Warn("S3 not configured, objects are kept in memory")
		store = storage.NewMemory("http://localhost:" + cfg.ServerPort + "/storage")
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)
	defer auditDispatcher.Close()

	providers := oauth.Registry{}
	if cfg.OAuth.GoogleClientID != "" {
		g := oauth.NewGoogle(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, cfg.OAuth.RedirectURL)
		providers[g.Name()] = g
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Log:         log,
		Tokens:      identity.NewTokens(cfg.JWTSecret, tokenTTL),
		Audit:       auditDispatcher,
		AuditLog:    auditLogger,
		Hub:         hub,
		Broadcaster: broadcaster,
		Storage:     store,
		AI:          ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL),
		OAuth:       providers,
		OAuthStates: states,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
