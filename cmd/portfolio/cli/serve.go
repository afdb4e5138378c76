package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edutalks/portfolio-api/internal/config"
	"github.com/edutalks/portfolio-api/internal/handler"
	"github.com/edutalks/portfolio-api/internal/server"
	"github.com/edutalks/portfolio-api/internal/service"
	"github.com/edutalks/portfolio-api/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Portfolio API server",
		Long:  "Start the HTTP server that exposes the contact, newsletter, jobs, and team endpoints.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 5000, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")

	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))

	return cmd
}

func runServe() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)

	st, err := store.Open(cfg.DB.Driver, cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	logger.Info("store ready", "driver", st.Driver())

	hasAdmin, err := st.HasAnyAdmin(context.Background())
	if err != nil {
		logger.Warn("failed to check for admin", "error", err)
	}
	if !hasAdmin {
		logger.Warn("no admin account found - run: portfolio db setup, or: portfolio admin create")
	}

	authSvc := service.NewAuthService(st, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)
	logger.Info("auth ready", "token_ttl", authSvc.TokenTTL())

	mailer := service.NewSMTPMailer(service.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		From:      cfg.SMTP.From,
		Recipient: cfg.Contact.Recipient,
	})
	newsletter := service.NewNewsletter()

	srvCfg := server.Config{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     cfg.Server.CORSOrigins,
		EnvStatus: handler.EnvStatus{
			HasDBHost:    cfg.DB.Host != "" || cfg.DB.DSN != "",
			HasDBUser:    cfg.DB.User != "" || cfg.DB.DSN != "",
			HasDBPass:    cfg.DB.Password != "" || cfg.DB.DSN != "",
			HasDBName:    cfg.DB.Name != "" || cfg.DB.DSN != "",
			HasJWTSecret: cfg.Auth.JWTSecret != "",
		},
	}

	srv := server.New(srvCfg, st, authSvc, mailer, newsletter, logger)

	fmt.Printf("→ Portfolio API\n")
	fmt.Printf("→ Listening on http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("→ Health:  http://%s:%d/api/health\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("→ OpenAPI: http://%s:%d/openapi.json\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println()

	return srv.ListenAndServe()
}

// newLogger builds the process-wide structured logger.
func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
