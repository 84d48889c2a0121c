package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the application.
type Config struct {
	AppPort     string
	SecretKey   string
	DatabaseURL string
	RabbitMQURL string
	ViewsDir    string
}

// Load reads configuration from environment variables via Viper.
// SECRET_KEY is required; an empty DATABASE_URL selects the local SQLite
// fallback and an empty RABBITMQ_URL disables event publishing.
func Load() (Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("VIEWS_DIR", "./views")
	viper.AutomaticEnv()

	cfg := Config{
		AppPort:     viper.GetString("APP_PORT"),
		SecretKey:   viper.GetString("SECRET_KEY"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		ViewsDir:    viper.GetString("VIEWS_DIR"),
	}

	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY is required")
	}

	return cfg, nil
}
