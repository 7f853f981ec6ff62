package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/secureride/booking-service/internal/config"
	"github.com/secureride/booking-service/internal/handler"
	"github.com/secureride/booking-service/internal/repository"
	"github.com/secureride/booking-service/internal/service"
	"github.com/secureride/booking-service/internal/utils"
	"github.com/secureride/booking-service/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

// Handlers groups the HTTP handlers wired by the app.
type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Payment *handler.PaymentHandler
	Admin   *handler.AdminHandler
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry.Duration,
		cfg.JWT.RefreshTokenExpiry.Duration,
	)

	blacklistService := service.NewTokenBlacklistService(infra.Redis())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	auditService := service.NewAuditService(repos.Audit, infra.Logger())

	authService := service.NewAuthService(
		repos.User,
		repos.Token,
		repos.Verification,
		jwtManager,
		blacklistService,
		auditService,
		cfg.Security.BCryptCost,
		cfg.JWT.RefreshTokenExpiry.Duration,
		cfg.Verification.TokenExpiry.Duration,
	)

	bookingService := service.NewBookingService(repos.Booking, cfg.Stripe.Currency)
	paymentService := service.NewPaymentService(repos.Booking, infra.PaymentGateway(), auditService, infra.Logger(), cfg.Stripe.Currency)

	cookies := handler.CookieOptions{
		Domain: cfg.Cookie.Domain,
		Secure: cfg.CookieSecure(),
	}

	handlers := Handlers{
		Auth:    handler.NewAuthHandler(authService, cookies),
		Booking: handler.NewBookingHandler(bookingService),
		Payment: handler.NewPaymentHandler(paymentService),
		Admin:   handler.NewAdminHandler(auditService),
	}

	router := gin.Default()
	router.Use(otelgin.Middleware("booking-service"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, handlers, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	handlers Handlers,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	limited := func() gin.HandlerFunc {
		return handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey)
	}

	api := router.Group("/api/v1")

	// Public endpoints; everything else requires a valid access token and
	// passes the prefix role policy.
	auth := api.Group("/auth")
	{
		auth.POST("/register", limited(), handlers.Auth.Register)
		auth.POST("/verify-email", limited(), handlers.Auth.VerifyEmail)
		auth.POST("/resend-verification", limited(), handlers.Auth.ResendVerification)
		auth.POST("/login", limited(), handlers.Auth.Login)
		auth.POST("/refresh", handlers.Auth.Refresh)
		auth.POST("/logout", handler.AuthMiddleware(authService), handlers.Auth.Logout)
		auth.GET("/me", handler.AuthMiddleware(authService), handlers.Auth.GetMe)
	}

	authorized := api.Group("")
	authorized.Use(handler.AuthMiddleware(authService), handler.RoleGuard())
	{
		bookings := authorized.Group("/bookings")
		{
			bookings.POST("", handlers.Booking.Create)
			bookings.GET("", handlers.Booking.List)
			bookings.GET("/:id", handlers.Booking.Get)
		}

		payments := authorized.Group("/payments")
		{
			payments.POST("/create-intent", handlers.Payment.CreateIntent)
		}

		staff := authorized.Group("/staff")
		{
			staff.GET("/bookings", handlers.Booking.ListAll)
		}

		admin := authorized.Group("/admin")
		{
			admin.GET("/audit-logs", handlers.Admin.AuditLogs)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
