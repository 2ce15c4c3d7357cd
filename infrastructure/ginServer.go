package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/controller"
	"ohppos.io/application/middlewares"
	"ohppos.io/application/usecases/payments"
	"ohppos.io/infrastructure/env"
	"ohppos.io/infrastructure/ipresolver"
	"ohppos.io/infrastructure/logger"
	middleware "ohppos.io/infrastructure/middleware"
	payment_types "ohppos.io/infrastructure/payments/types"
	"ohppos.io/infrastructure/ratelimit"
	webRoutev1 "ohppos.io/infrastructure/routes/ginRouter/web/v1"
)

type ginServer struct {
	config    *env.Config
	processor payment_types.PaymentProcessor
	store     ratelimit.CounterStore
}

// NewRouter binds the HTTP surface. It performs no I/O so tests can drive it directly.
func NewRouter(config *env.Config, processor payment_types.PaymentProcessor, store ratelimit.CounterStore) *gin.Engine {
	server := gin.New()
	server.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		apperrors.FatalServerError(ctx, fmt.Errorf("panic: %v", recovered))
	}))
	server.Use(middleware.RequestIDMiddleware())
	server.Use(middleware.NoCacheMiddleware())
	server.Use(logger.RequestLogger(func(ctx *gin.Context) string {
		return ipresolver.FromRequest(ctx.Request)
	}))
	server.Use(cors.New(corsConfig(config.CORSAllowedOrigins)))
	server.Use(middleware.AppContextMiddleware())

	webRoutev1.MiscRouter(server, config.Mode, ratelimit.TokenBucketPerIP(config.HealthRatePerSecond))

	gate := &middleware.AdmissionGate{
		Authenticator: middlewares.NewAPIKeyAuthenticator(config.APIKey, config.APIKeys),
		Limiter:       ratelimit.NewFixedWindowLimiter(store, config.RateLimitPerMinute, ratelimit.DEFAULT_WINDOW),
	}
	paymentController := &controller.PaymentController{
		Service: payments.NewPaymentService(payments.Settings{
			Mode:                config.Mode,
			LocationID:          config.Credentials.LocationID,
			TerminalID:          config.Credentials.TerminalID,
			SimulateCard:        config.SimulateCard,
			SimulatedCardNumber: config.SimulatedCardNumber,
		}, processor),
	}

	api := server.Group("/api", gate.Handlers()...)
	{
		webRoutev1.PaymentRouter(api, paymentController)
		webRoutev1.TerminalRouter(api, paymentController)
	}

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL.Path))
	})
	return server
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", constants.API_KEY_HEADER, constants.DEVICE_KEY_HEADER,
			constants.IDEMPOTENCY_KEY_HEADER, constants.REQUEST_ID_HEADER},
		ExposeHeaders: []string{"Content-Length", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset",
			"Retry-After", constants.REQUEST_ID_HEADER},
		MaxAge: 12 * time.Hour,
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *ginServer) Start() error {
	gin.SetMode(s.config.GinMode)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.config.Port),
		Handler:           NewRouter(s.config, s.processor, s.store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", s.config.Port), logger.LoggerOptions{
			Key:  "mode",
			Data: s.config.Mode,
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
