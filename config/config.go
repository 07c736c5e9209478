package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	Dsn        string `env:"DSN" envDefault:"postgres://localhost:5432/bartrekker"`
	JwtSecret  string `env:"JWT_SECRET"`
	JwtExpires string `env:"JWT_EXPIRES"`
	LogFile    string `env:"LOG_FILE" envDefault:"./logs/admin_api.log"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		logrus.Warnf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		logrus.Warnf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
