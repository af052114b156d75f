package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig configures the HTTP/WebSocket listener.
type ServerConfig struct {
	HTTPAddress     string        `mapstructure:"http_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// DatabaseConfig configures the optional match archive. When disabled the
// server keeps no record of finished matches.
type DatabaseConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	MaxConns       int32         `mapstructure:"max_conns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// AIConfig allows overriding pieces of the built-in difficulty profiles.
type AIConfig struct {
	Seed      int64                      `mapstructure:"seed"` // 0 = time-seeded
	Overrides map[string]ProfileOverride `mapstructure:"overrides"`
}

// ProfileOverride adjusts a single difficulty level. Zero values leave the
// built-in profile untouched.
type ProfileOverride struct {
	ThinkingTime  time.Duration `mapstructure:"thinking_time"`
	MistakeChance float64       `mapstructure:"mistake_chance"`
}

// Load reads configuration from the given file with environment overrides
// (DUEL_ prefix). A missing file is fine; defaults carry the server.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.http_address", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("ai.seed", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix("DUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return nil, fmt.Errorf("database enabled but no url configured")
	}
	return &cfg, nil
}
