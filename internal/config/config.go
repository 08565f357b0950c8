package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the ETL run
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Source database (MySQL) configuration
	SourceHost     string `mapstructure:"MYSQL_HOST"`
	SourcePort     string `mapstructure:"MYSQL_PORT"`
	SourceUser     string `mapstructure:"MYSQL_USER"`
	SourcePassword string `mapstructure:"MYSQL_PASSWORD"`
	SourceName     string `mapstructure:"MYSQL_DATABASE"`

	// Sink database (PostgreSQL) configuration
	SinkURL      string `mapstructure:"PG_URL"`
	SinkHost     string `mapstructure:"PG_HOST"`
	SinkPort     string `mapstructure:"PG_PORT"`
	SinkUser     string `mapstructure:"PG_USER"`
	SinkPassword string `mapstructure:"PG_PASSWORD"`
	SinkName     string `mapstructure:"PG_DATABASE"`
	SinkSSLMode  string `mapstructure:"PG_SSL_MODE"`

	// Report output
	OutputDir string `mapstructure:"OUTPUT_DIR"`

	// Delivery statuses that count toward summaries
	Statuses []string `mapstructure:"MESSAGE_STATUSES"`

	// Optional extraction window, RFC 3339. Empty means unbounded.
	WindowStart string `mapstructure:"WINDOW_START"`
	WindowEnd   string `mapstructure:"WINDOW_END"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.SinkURL == "" {
		config.SinkURL = buildSinkURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Source defaults
	viper.SetDefault("MYSQL_HOST", "localhost")
	viper.SetDefault("MYSQL_PORT", "3306")
	viper.SetDefault("MYSQL_USER", "root")
	viper.SetDefault("MYSQL_PASSWORD", "")
	viper.SetDefault("MYSQL_DATABASE", "messages")

	// Sink defaults
	viper.SetDefault("PG_HOST", "localhost")
	viper.SetDefault("PG_PORT", "5432")
	viper.SetDefault("PG_USER", "postgres")
	viper.SetDefault("PG_PASSWORD", "postgres")
	viper.SetDefault("PG_DATABASE", "message_summaries")
	viper.SetDefault("PG_SSL_MODE", "disable")

	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("MESSAGE_STATUSES", []string{"delivered", "read"})

	viper.SetDefault("WINDOW_START", "")
	viper.SetDefault("WINDOW_END", "")
}

// SourceDSN returns the MySQL DSN for the source database.
// parseTime is required so created_at scans into time.Time.
func (c *Config) SourceDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.SourceUser,
		c.SourcePassword,
		c.SourceHost,
		c.SourcePort,
		c.SourceName,
	)
}

func buildSinkURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.SinkUser,
		config.SinkPassword,
		config.SinkHost,
		config.SinkPort,
		config.SinkName,
		config.SinkSSLMode,
	)
}

// Window parses the optional extraction window bounds. A nil bound means
// unbounded on that side.
func (c *Config) Window() (start, end *time.Time, err error) {
	if c.WindowStart != "" {
		t, err := time.Parse(time.RFC3339, c.WindowStart)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid WINDOW_START: %w", err)
		}
		start = &t
	}
	if c.WindowEnd != "" {
		t, err := time.Parse(time.RFC3339, c.WindowEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid WINDOW_END: %w", err)
		}
		end = &t
	}
	return start, end, nil
}

func validate(config *Config) error {
	if config.SourceName == "" {
		return fmt.Errorf("source database name is required")
	}
	if config.SinkName == "" && config.SinkURL == "" {
		return fmt.Errorf("sink database name is required")
	}
	if len(config.Statuses) == 0 {
		return fmt.Errorf("at least one message status is required")
	}
	start, end, err := config.Window()
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("WINDOW_END must not precede WINDOW_START")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
