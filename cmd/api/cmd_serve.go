package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meshguard_api/internal/adapter/http/routes"
	"meshguard_api/internal/config"
	"meshguard_api/internal/domain/pricing"
	"meshguard_api/internal/infrastructure/documents"
	"meshguard_api/internal/infrastructure/notifications"
	"meshguard_api/internal/infrastructure/payments"
	"meshguard_api/internal/infrastructure/ratelimit"
	"meshguard_api/internal/infrastructure/scheduler"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// meshguard serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	cfg, st, err := bootStores(ctx)
	if err != nil {
		return err
	}
	defer st.close()
	gin.SetMode(cfg.GinMode)

	tokens, err := newTokenIssuer(cfg)
	if err != nil {
		return err
	}

	gateway, err := payments.NewMercadoPagoGateway(payments.Config{
		AccessToken:    cfg.MercadoPagoAccessToken,
		Mock:           cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.MercadoPagoTestPayer,
	})
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	jobs := scheduler.New(clock, 0)
	notifier := notifications.NewLogNotifier()

	deps := routes.Dependencies{
		Auth:        usecase.NewAuthUseCase(st.users, newPasswordHasher(), tokens),
		Quotes:      usecase.NewQuoteUseCase(st.quotes, st.users, pricing.NewCalculator(pricing.DefaultTable(), pricing.DefaultUnitPrice), notifier, documents.NewQuotePDFGenerator()),
		Payments:    usecase.NewPaymentUseCase(st.payments, st.quotes, gateway, jobs, notifier, cfg.PaymentConfirmationDelay),
		ServiceArea: usecase.NewServiceAreaUseCase(nil),
		Contact:     usecase.NewContactUseCase(st.contacts, notifier),
		Admin:       usecase.NewAdminUseCase(st.users, st.quotes, st.payments),
		Tokens:      tokens,
		AuthLimiter: newLimiter(ctx, cfg, clock),
		CORSOrigins: cfg.ClientURLs,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[boot] listening on :%s (swagger at /swagger/index.html)", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Printf("[boot] shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[boot] http shutdown failed err=%v", err)
	}
	// Pending confirmations are dropped; those payments stay initiated.
	if err := jobs.Shutdown(shutdownCtx); err != nil {
		log.Printf("[boot] scheduler shutdown failed err=%v", err)
	}
	return nil
}

// newLimiter prefers redis so several instances share one budget.
func newLimiter(ctx context.Context, cfg config.Config, clock clockwork.Clock) ratelimit.Limiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	if cfg.RedisAddr != "" {
		log.Printf("[boot] rate limiter=redis addr=%s", cfg.RedisAddr)
		return ratelimit.NewRedisLimiter(ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword), cfg.RateLimitPerMinute, time.Minute)
	}
	mem := ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute, clock)
	go mem.RunSweeper(ctx)
	return mem
}
