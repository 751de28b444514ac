package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type App struct {
	Port               string `env:"API_PORT" env-default:"8080"`
	DBConnectionString string `env:"DB_CONNECTION_URL" env-required:"true"`
	SessionCookieName  string `env:"SESSION_COOKIE_NAME" env-default:"session_token"`
}

func NewAppConfig() (App, error) {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return App{}, fmt.Errorf("read config from environment: %w", err)
	}

	return cfg, nil
}
