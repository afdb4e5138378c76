package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edutalks/portfolio-api/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Initialize a default configuration file or display the current effective configuration.",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// ---------- config init ----------

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default portfolio.yaml configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config file")

	return cmd
}

const defaultConfigFile = `# Portfolio API configuration
# Every key can also be set via environment variables with the PORTFOLIO_
# prefix, e.g. PORTFOLIO_AUTH_JWT_SECRET, PORTFOLIO_DB_HOST.

server:
  host: 0.0.0.0
  port: 5000
  cors_origins:
    - "*"

db:
  driver: mysql   # mysql, postgres, or sqlite
  host: localhost
  user: ""
  password: ""
  name: portfolio
  # Or a full DSN instead of the quad above:
  # dsn: "user:pass@tcp(localhost:3306)/portfolio"

auth:
  jwt_secret: ""  # REQUIRED; the server refuses to start without it
  jwt_expiry: 24h

smtp:
  host: smtp.gmail.com
  port: 587
  username: ""
  password: ""
  from: ""

contact:
  recipient: ""   # where contact-form submissions are delivered

log:
  level: info     # debug, info, warn, error
`

func runConfigInit(force bool) error {
	const path = "portfolio.yaml"

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigFile), 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

// ---------- config show ----------

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load().Redacted()

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			cmd.OutOrStdout().Write(out)
			return nil
		},
	}
}
