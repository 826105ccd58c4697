// Package config provides configuration management for the keiba engine.
package config

// Config represents the complete engine configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Staking StakingConfig `mapstructure:"staking" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig represents prediction-engine configuration
type EngineConfig struct {
	EVFloor             float64 `mapstructure:"ev_floor" validate:"required,gt=0"`
	CacheTTLSeconds     int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheSweepSeconds   int     `mapstructure:"cache_sweep_seconds" validate:"required,gt=0"`
	RateLimitPerSecond  float64 `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	RateLimitBurst      int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

// StakingConfig represents stake sizing and budget configuration
type StakingConfig struct {
	KellyFraction    float64 `mapstructure:"kelly_fraction" validate:"required,gt=0,lte=1"`
	RiskLevel        string  `mapstructure:"risk_level" validate:"required,risklevel"`
	RiskMode         string  `mapstructure:"risk_mode" validate:"required,riskmode"`
	UseKelly         bool    `mapstructure:"use_kelly"`
	DynamicUnitPrice bool    `mapstructure:"dynamic_unit_price"`
}

// SessionConfig represents bankroll session configuration
type SessionConfig struct {
	InitialBankroll      float64 `mapstructure:"initial_bankroll" validate:"required,gt=0"`
	MaxConsecutiveLosses int     `mapstructure:"max_consecutive_losses" validate:"required,gt=0"`
	MaxDrawdown          float64 `mapstructure:"max_drawdown" validate:"required,gt=0,lt=1"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
