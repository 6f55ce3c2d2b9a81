package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	WeatherAPIKey string
	Port          string
}

func LoadConfig() (*Config, error) {
	// .env необязателен: на хостинге переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
		Port:          os.Getenv("PORT"),
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "10000"
	}
	return cfg, nil
}
