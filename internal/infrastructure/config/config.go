package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "slidebridge/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Slide       sharedConfig.SlideConfig       `mapstructure:"slide"`
	ConnectWise sharedConfig.ConnectWiseConfig `mapstructure:"connectwise"`
	Sync        sharedConfig.SyncConfig        `mapstructure:"sync"`
	Notify      sharedConfig.NotifyConfig      `mapstructure:"notify"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("SLIDEBRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional when every required value comes from the
		// environment; only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults; sqlite keeps local deployments self-contained,
	// mysql is the production driver
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./slidebridge.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "slidebridge")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Slide API defaults
	viper.SetDefault("slide.base_url", "https://api.slide.tech")
	viper.SetDefault("slide.api_key", "")

	// ConnectWise API defaults (must be configured)
	viper.SetDefault("connectwise.base_url", "")
	viper.SetDefault("connectwise.company_id", "")
	viper.SetDefault("connectwise.public_key", "")
	viper.SetDefault("connectwise.private_key", "")
	viper.SetDefault("connectwise.client_id", "")

	// Sync defaults
	viper.SetDefault("sync.ingest_interval_minutes", 5)
	viper.SetDefault("sync.reconcile_interval_minutes", 5)
	viper.SetDefault("sync.reconcile_concurrency", 5)
	viper.SetDefault("sync.remote_timeout_seconds", 30)
	viper.SetDefault("sync.directory_cache_ttl_minutes", 10)

	// Drift notification defaults (disabled until SMTP is configured)
	viper.SetDefault("notify.enabled", false)
	viper.SetDefault("notify.smtp_port", 587)

	// Rate limiting defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.limit", 60)
	viper.SetDefault("rate_limit.window_seconds", 60)
}
