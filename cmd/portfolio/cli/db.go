package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edutalks/portfolio-api/internal/config"
	"github.com/edutalks/portfolio-api/internal/service"
	"github.com/edutalks/portfolio-api/internal/store"
)

// Default credential seeded by `db setup` when no admin exists yet. Operators
// are expected to replace it with `admin create` before going live.
const (
	seedAdminEmail    = "admin@gmail.com"
	seedAdminPassword = "Admin@123"
	seedAdminName     = "Admin User"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "db",
		Aliases: []string{"database"},
		Short:   "Manage the database",
		Long:    "Create the schema, seed the default admin account, and check connectivity.",
	}

	cmd.AddCommand(newDBSetupCmd())
	cmd.AddCommand(newDBPingCmd())

	return cmd
}

// ---------- db setup ----------

func newDBSetupCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create tables and seed the default admin",
		Long: `Create the admins, jobs, and team_members tables if they are missing and
seed an admin account unless one with the same email already exists.
Safe to run repeatedly; the second run is a no-op.`,
		Example: `  portfolio db setup
  portfolio db setup --email admin@example.com --password s3cret --name "Jane Admin"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBSetup(email, password, name)
		},
	}

	cmd.Flags().StringVar(&email, "email", seedAdminEmail, "Seed admin email")
	cmd.Flags().StringVar(&password, "password", seedAdminPassword, "Seed admin password")
	cmd.Flags().StringVar(&name, "name", seedAdminName, "Seed admin display name")

	return cmd
}

func runDBSetup(email, password, name string) error {
	cfg := config.Load()

	st, err := store.Open(cfg.DB.Driver, cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	fmt.Println("Tables verified/created")

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := st.SeedAdmin(ctx, email, hash, name)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		fmt.Printf("Admin account created: %s\n", email)
	} else {
		fmt.Printf("Admin account already exists: %s\n", email)
	}

	fmt.Println("Database setup completed")
	return nil
}

// ---------- db ping ----------

func newDBPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			st, err := store.Open(cfg.DB.Driver, cfg.DatabaseDSN())
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := st.Ping(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			fmt.Printf("%s database reachable\n", st.Driver())
			return nil
		},
	}
}
