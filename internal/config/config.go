// Package config loads runtime configuration from the environment (with the
// PORTFOLIO_ prefix) layered over an optional portfolio.yaml file. Viper does
// the merging; this package applies defaults and validates the result.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Auth    AuthConfig    `yaml:"auth"`
	SMTP    SMTPConfig    `yaml:"smtp"`
	Contact ContactConfig `yaml:"contact"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DBConfig selects and addresses the relational store. Either a full DSN or
// the MySQL host/user/password/name quad may be given; the quad is composed
// into a DSN when dsn is empty.
type DBConfig struct {
	Driver   string `yaml:"driver"` // mysql, postgres, or sqlite
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// AuthConfig controls token signing.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	JWTExpiry time.Duration `yaml:"jwt_expiry"`
}

// SMTPConfig controls outbound email.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// ContactConfig controls where contact-form submissions are delivered.
type ContactConfig struct {
	Recipient string `yaml:"recipient"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads the effective configuration from viper, which the CLI has
// already pointed at the environment and any config file.
func Load() *Config {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.cors_origins", []string{"*"})
	viper.SetDefault("db.driver", "mysql")
	viper.SetDefault("auth.jwt_expiry", "24h")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("log.level", "info")

	return &Config{
		Server: ServerConfig{
			Host:        viper.GetString("server.host"),
			Port:        viper.GetInt("server.port"),
			CORSOrigins: viper.GetStringSlice("server.cors_origins"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("db.driver"),
			DSN:      viper.GetString("db.dsn"),
			Host:     viper.GetString("db.host"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Name:     viper.GetString("db.name"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
			JWTExpiry: viper.GetDuration("auth.jwt_expiry"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
		},
		Contact: ContactConfig{
			Recipient: viper.GetString("contact.recipient"),
		},
		Log: LogConfig{
			Level: viper.GetString("log.level"),
		},
	}
}

// Validate rejects configurations the server must not start with. The JWT
// secret in particular has no fallback: running with a default signing key
// would make every token forgeable.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (set PORTFOLIO_AUTH_JWT_SECRET); refusing to start without a signing key")
	}
	switch c.DB.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db.driver %q (expected mysql, postgres, or sqlite)", c.DB.Driver)
	}
	if c.Auth.JWTExpiry <= 0 {
		return errors.New("auth.jwt_expiry must be positive")
	}
	return nil
}

// DatabaseDSN returns the configured DSN, composing the MySQL form from the
// host/user/password/name quad when no explicit DSN is set.
func (c *Config) DatabaseDSN() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	if c.DB.Driver == "mysql" && c.DB.Host != "" {
		return fmt.Sprintf("%s:%s@tcp(%s)/%s", c.DB.User, c.DB.Password, c.DB.Host, c.DB.Name)
	}
	return ""
}

// Redacted returns a copy safe for display: secrets are masked, presence is
// still visible.
func (c *Config) Redacted() Config {
	out := *c
	if out.DB.Password != "" {
		out.DB.Password = "********"
	}
	if out.DB.DSN != "" {
		out.DB.DSN = "********"
	}
	if out.Auth.JWTSecret != "" {
		out.Auth.JWTSecret = "********"
	}
	if out.SMTP.Password != "" {
		out.SMTP.Password = "********"
	}
	return out
}
