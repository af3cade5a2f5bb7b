package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Cleanup  CleanupConfig  `mapstructure:"cleanup"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type StorageConfig struct {
	Provider  string `mapstructure:"provider"` // local | s3
	BasePath  string `mapstructure:"base_path"`
	BaseURL   string `mapstructure:"base_url"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	CDNDomain string `mapstructure:"cdn_domain"`
}

type AuthConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminUser     string        `mapstructure:"admin_user"`
	AdminPassword string        `mapstructure:"admin_password"`
}

type PricingConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CleanupConfig struct {
	Spec string `mapstructure:"spec"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // development | production
}

// Load reads configuration from environment variables (MDF_ prefix, dots as
// underscores) layered over an optional yaml file and built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "4000")
	v.SetDefault("database.dsn", "host=localhost user=mdf password=mdf dbname=mdf_store port=5432 sslmode=disable")
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.base_path", "./uploads")
	v.SetDefault("storage.base_url", "/uploads")
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "mdf-gestor-secret-change-in-production")
	v.SetDefault("auth.token_ttl", 8*time.Hour)
	v.SetDefault("pricing.timeout", 15*time.Second)
	v.SetDefault("cleanup.spec", "0 3 * * *")
	v.SetDefault("log.mode", "development")

	v.SetEnvPrefix("MDF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
