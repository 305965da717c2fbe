package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	pgRepo "stock-admin/internal/infra/adapter/persistence/postgres"
	"stock-admin/internal/infra/db"
	"stock-admin/internal/infra/notifier"
	"stock-admin/internal/observability/logging"
	"stock-admin/internal/observability/tracing"
	"stock-admin/internal/resilience/circuitbreaker"
	"stock-admin/pkg/config"

	anUC "stock-admin/internal/usecase/articlename"
	contentUC "stock-admin/internal/usecase/content"
	supUC "stock-admin/internal/usecase/supervisor"

	hhttp "stock-admin/internal/handler/http"
	harticlename "stock-admin/internal/handler/http/articlename"
	hauth "stock-admin/internal/handler/http/auth"
	hcontent "stock-admin/internal/handler/http/content"
	"stock-admin/internal/handler/http/middleware"
	"stock-admin/internal/handler/http/requestid"
	hsupervisor "stock-admin/internal/handler/http/supervisor"
	authservice "stock-admin/internal/service/auth"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

func main() {
	config.MustLoadDotEnv(config.DefaultDotEnvPath)
	logger := initLogger()

	secret := validateCredentials(logger)

	shutdownTracing := tracing.Init(tracing.ConfigFromEnv())

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	notif := initNotifier(logger)
	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, notif, secret, version)

	if err := runServer(logger, handler, version); err != nil {
		logger.Error("server failed", slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if n, ok := notif.(*notifier.Async); ok {
		if err := n.Shutdown(ctx); err != nil {
			logger.Warn("pending notifications dropped", slog.Any("error", err))
		}
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}

// initLogger builds the JSON logger from LOG_LEVEL / LOG_FORMAT and installs it as default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger(logging.ConfigFromEnv())
	slog.SetDefault(logger)
	return logger
}

// validateCredentials refuses to start without a strong JWT secret and a
// valid super administrator account. Optional accounts that fail validation
// are disabled and the server keeps running.
func validateCredentials(logger *slog.Logger) []byte {
	secret, err := hauth.ValidateJWTSecret()
	if err != nil {
		logger.Error("JWT secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := hauth.ValidateSuperAdminCredentials(); err != nil {
		logger.Error("super admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	hauth.ValidateOptionalAccounts(logger)
	return secret
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	ctx := context.Background()
	database, err := db.Open(ctx, os.Getenv("DATABASE_URL"), db.ConnectionConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initNotifier returns the audit notifier. Without any webhook URL the
// no-op notifier is used.
func initNotifier(logger *slog.Logger) notifier.Notifier {
	timeout := config.GetEnvDuration("NOTIFY_TIMEOUT", 10*time.Second)
	if err := config.ValidateDurationRange(timeout, time.Second, time.Minute); err != nil {
		logger.Error("invalid NOTIFY_TIMEOUT", slog.Any("error", err))
		os.Exit(1)
	}

	var targets []notifier.Notifier
	if url := os.Getenv("SLACK_WEBHOOK_URL"); url != "" {
		targets = append(targets, notifier.NewSlackNotifier(notifier.WebhookConfig{WebhookURL: url, Timeout: timeout}))
	}
	if url := os.Getenv("DISCORD_WEBHOOK_URL"); url != "" {
		targets = append(targets, notifier.NewDiscordNotifier(notifier.WebhookConfig{WebhookURL: url, Timeout: timeout}))
	}

	if len(targets) == 0 {
		logger.Info("audit notifications disabled")
		return notifier.NewNoOpNotifier()
	}
	logger.Info("audit notifications enabled", slog.Int("targets", len(targets)))
	return notifier.NewAsync(logger, targets...)
}

// setupServer wires repositories, use cases and routes and returns the
// handler wrapped in the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, notif notifier.Notifier, secret []byte, version string) http.Handler {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	articleNames := pgRepo.NewArticleNameRepo(breaker)
	supervisors := pgRepo.NewSupervisorRepo(breaker)

	seeder := &anUC.Seeder{
		Repo:     articleNames,
		Samples:  db.SampleArticleNames,
		Notifier: notif,
		Logger:   logger,
	}
	contentSvc := &contentUC.Service{
		ArticleNames: articleNames,
		Seeder:       seeder,
		Notifier:     notif,
		BackRoute:    config.GetEnvString("ADMIN_BACK_ROUTE", "/admin"),
		Logger:       logger,
	}

	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if proxyConfig.Enabled {
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		logger.Info("rate limiting: using RemoteAddr, proxy headers ignored")
	}

	// レート制限: 認証エンドポイントは1分間に5リクエストまで
	tokenLimiter := hhttp.NewRateLimiter(5, time.Minute, middleware.NewIPExtractor(proxyConfig))
	authProvider := hauth.NewMultiUserAuthProvider(hauth.AccountsFromEnv(), hauth.MinPasswordLength, hauth.WeakPasswords())
	authService := authservice.NewAuthService(authProvider)
	tokenTTL := config.GetEnvDuration("JWT_TTL", hauth.DefaultTokenTTL)
	if err := config.ValidatePositiveDuration(tokenTTL); err != nil {
		logger.Warn("invalid JWT_TTL, using default", slog.Any("error", err))
		tokenTTL = hauth.DefaultTokenTTL
	}

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", tokenLimiter.Limit(hauth.TokenHandler(authService, secret, tokenTTL)))

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hcontent.Register(mux, contentSvc)
	harticlename.Register(mux, anUC.Service{Repo: articleNames})
	hsupervisor.Register(mux, supUC.Service{Repo: supervisors})

	return applyMiddleware(logger, mux, secret)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Logging → Recovery → Metrics → CORS → Body Limit → Authz
func applyMiddleware(logger *slog.Logger, handler http.Handler, secret []byte) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}

	chain := hauth.Authz(secret)(handler)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	if corsConfig != nil {
		corsConfig.Logger = logger
		chain = middleware.CORS(*corsConfig)(chain)
		logger.Info("CORS enabled",
			slog.Any("allowed_origins", corsConfig.AllowedOrigins),
			slog.Any("allowed_methods", corsConfig.AllowedMethods))
	} else {
		logger.Info("CORS disabled")
	}
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer serves until SIGINT/SIGTERM and then shuts down gracefully.
func runServer(logger *slog.Logger, handler http.Handler, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})
	return g.Wait()
}
