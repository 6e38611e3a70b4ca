package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackit-be/internal/config"
	"trackit-be/internal/controllers"
	"trackit-be/internal/logger"
	"trackit-be/internal/mailer"
	"trackit-be/internal/routes"
	"trackit-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	if err := run(cfg, zl); err != nil {
		zl.Error("server stopped with error", zap.Error(err))
		_ = zl.Sync()
		os.Exit(1)
	}
	zl.Info("server stopped")
	_ = zl.Sync()
}

// run serves until SIGINT/SIGTERM or until the listener or mail queue fails.
func run(cfg *config.Config, zl *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.Mail.Configured() {
		zl.Warn("MAIL_CREDENTIALS not set; login confirmations will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// Synchronous delivery by default; MAIL_ASYNC moves it to background workers
	var confirmations mailer.Mailer = mailer.NewSender(cfg.Mail, zl)
	if cfg.Mail.Async {
		queue := mailer.NewQueue(confirmations, cfg.Mail, zl)
		g.Go(func() error { return queue.Run(ctx) })
		confirmations = queue
		zl.Info("mail queue enabled",
			zap.Int("workers", cfg.Mail.Workers),
			zap.Int("capacity", cfg.Mail.QueueSize),
			zap.Int("max_retries", cfg.Mail.MaxRetries),
		)
	}

	// Initialize services
	authService := service.NewAuthService(confirmations, cfg.Mail.Async, zl)
	scanService := service.NewScanService(zl)
	attendanceService := service.NewAttendanceService(cfg.QRCode.RotateEvery)

	// Initialize controllers
	router := routes.Setup(cfg, zl, routes.Controllers{
		Auth:   controllers.NewAuthController(authService),
		Scan:   controllers.NewScanController(scanService),
		QRCode: controllers.NewQRCodeController(attendanceService, cfg.QRCode.ImageSize),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		zl.Info("server starting", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
