package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig       `yaml:"server"`
	Database  DatabaseConfig     `yaml:"database"`
	Email     EmailConfig        `yaml:"email"`
	Token     TokenConfig        `yaml:"token"`
	Pricing   PricingConfig      `yaml:"pricing"`
	Payments  CollaboratorConfig `yaml:"payments"`
	Esign     EsignConfig        `yaml:"esign"`
	Calendar  CollaboratorConfig `yaml:"calendar"`
	Log       LogConfig          `yaml:"log"`
	Metrics   MetricsConfig      `yaml:"metrics"`
	Scheduler SchedulerConfig    `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	ReadTimeout     int    `yaml:"read_timeout_seconds"`
	WriteTimeout    int    `yaml:"write_timeout_seconds"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_seconds"`
	// PublicBaseURL is the externally reachable base URL used when building
	// quote acceptance links embedded in customer emails.
	PublicBaseURL string `yaml:"public_base_url"`
	// StaffKey guards the staff routes. Full credential management lives in
	// the identity layer in front of this service.
	StaffKey string `yaml:"staff_key"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// EmailConfig contains SendGrid settings
type EmailConfig struct {
	APIKey   string `yaml:"api_key"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

// TokenConfig contains acceptance token settings
type TokenConfig struct {
	Secret     string `yaml:"secret"`
	ExpiryDays int    `yaml:"expiry_days"`
}

// PricingConfig contains pricing engine settings
type PricingConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// DebounceMillis is the quiet window after the last quote edit before a
	// recalculation is issued.
	DebounceMillis int `yaml:"debounce_millis"`
}

// CollaboratorConfig contains settings for a generic external collaborator
type CollaboratorConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// EsignConfig contains e-signature provider settings
type EsignConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	// SigningBaseURL is the provider-hosted page where a recipient signs a
	// document; the document ID is appended to it.
	SigningBaseURL string `yaml:"signing_base_url"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	// InServer runs the sync jobs inside the API server process. Leave it
	// off when the cronjob binary is deployed, or the collaborators get
	// polled twice.
	InServer              bool   `yaml:"in_server"`
	SyncPaymentStatuses   string `yaml:"sync_payment_statuses"`
	SyncAgreementStatuses string `yaml:"sync_agreement_statuses"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.From = val
	}

	// Token
	if val := os.Getenv("ACCEPTANCE_TOKEN_SECRET"); val != "" {
		c.Token.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("PUBLIC_BASE_URL"); val != "" {
		c.Server.PublicBaseURL = val
	}
	if val := os.Getenv("STAFF_KEY"); val != "" {
		c.Server.StaffKey = val
	}

	// Collaborators
	if val := os.Getenv("PRICING_ENGINE_URL"); val != "" {
		c.Pricing.URL = val
	}
	if val := os.Getenv("PAYMENTS_URL"); val != "" {
		c.Payments.URL = val
	}
	if val := os.Getenv("ESIGN_URL"); val != "" {
		c.Esign.URL = val
	}
	if val := os.Getenv("CALENDAR_URL"); val != "" {
		c.Calendar.URL = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.PublicBaseURL == "" {
		return fmt.Errorf("public base URL is required")
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Token validation
	if c.Token.Secret == "" {
		return fmt.Errorf("acceptance token secret is required")
	}
	if len(c.Token.Secret) < 32 {
		return fmt.Errorf("acceptance token secret must be at least 32 characters")
	}

	// Collaborator validation
	if c.Pricing.URL == "" {
		return fmt.Errorf("pricing engine URL is required")
	}
	if c.Payments.URL == "" {
		return fmt.Errorf("payment processor URL is required")
	}
	if c.Esign.URL == "" {
		return fmt.Errorf("e-signature provider URL is required")
	}
	if c.Calendar.URL == "" {
		return fmt.Errorf("calendar backend URL is required")
	}

	// Defaults
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Token.ExpiryDays == 0 {
		c.Token.ExpiryDays = 30
	}
	if c.Pricing.TimeoutSeconds == 0 {
		c.Pricing.TimeoutSeconds = 10
	}
	if c.Pricing.DebounceMillis == 0 {
		c.Pricing.DebounceMillis = 500
	}
	if c.Payments.TimeoutSeconds == 0 {
		c.Payments.TimeoutSeconds = 10
	}
	if c.Esign.TimeoutSeconds == 0 {
		c.Esign.TimeoutSeconds = 10
	}
	if c.Calendar.TimeoutSeconds == 0 {
		c.Calendar.TimeoutSeconds = 10
	}
	if c.Esign.SigningBaseURL == "" {
		c.Esign.SigningBaseURL = c.Esign.URL + "/sign"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	// Scheduler defaults
	if c.Scheduler.SyncPaymentStatuses == "" {
		c.Scheduler.SyncPaymentStatuses = "0 */5 * * * *" // every 5 minutes
	}
	if c.Scheduler.SyncAgreementStatuses == "" {
		c.Scheduler.SyncAgreementStatuses = "0 */10 * * * *" // every 10 minutes
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
