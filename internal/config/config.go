package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the server. Values come from
// environment variables, with an optional config.yaml next to the binary
// for local development.
type Config struct {
	Addr          string
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
	AdminPassword string
	PageSize      int
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "inventory-redis:6379")
	v.SetDefault("jwt_secret", "super-secret-key")
	v.SetDefault("admin_password", "Admin@123456")
	v.SetDefault("page_size", 6)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := Config{
		Addr:          v.GetString("addr"),
		DatabaseURL:   v.GetString("database_url"),
		RedisAddr:     v.GetString("redis_addr"),
		JWTSecret:     v.GetString("jwt_secret"),
		AdminPassword: v.GetString("admin_password"),
		PageSize:      v.GetInt("page_size"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be greater than zero")
	}

	return cfg, nil
}
