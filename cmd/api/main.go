package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	auditStore "github.com/MrJamesThe3rd/freightdesk/internal/audit/store"
	"github.com/MrJamesThe3rd/freightdesk/internal/config"
	"github.com/MrJamesThe3rd/freightdesk/internal/database"
	apiHttp "github.com/MrJamesThe3rd/freightdesk/internal/http"
	invoicingHandler "github.com/MrJamesThe3rd/freightdesk/internal/http/invoicing"
	loadHandler "github.com/MrJamesThe3rd/freightdesk/internal/http/load"
	verificationHandler "github.com/MrJamesThe3rd/freightdesk/internal/http/verification"
	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	invoicingStore "github.com/MrJamesThe3rd/freightdesk/internal/invoicing/store"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	loadStore "github.com/MrJamesThe3rd/freightdesk/internal/load/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("AUTH_JWT_SECRET is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	loads := loadStore.New(db)
	invoices := invoicingStore.New(db)

	var (
		loadService      = load.NewService(loads)
		invoicingService = invoicing.NewService(
			invoices, invoices, loads, auditStore.New(db),
			invoicing.Config{
				PaymentTerms: cfg.Billing.PaymentTerms,
				DueDays:      cfg.Billing.DueDays,
				AuditTimeout: cfg.Audit.Timeout,
			},
		)
	)

	router := apiHttp.New(
		apiHttp.Options{
			JWTSecret:      []byte(cfg.Auth.JWTSecret),
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		loadHandler.NewHandler(loadService),
		invoicingHandler.NewHandler(invoicingService, loadService),
		verificationHandler.NewHandler(),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	// Audit appends outlive their requests.
	invoicingService.Wait()
}
