package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

type HTTPConfig struct {
	Port string `env:"PORT" envDefault:"5000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB" envDefault:"carDoctorDb"`
}

type AuthConfig struct {
	// AccessTokenSecret signs session tokens; without it every login and
	// every protected route is broken, so Load refuses to proceed.
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`
	CookieSecure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	// ProtectWrites extends authentication to order create/update/delete.
	// The default mirrors the historical behavior where only the order
	// list required a session.
	ProtectWrites bool `env:"AUTH_PROTECT_WRITES" envDefault:"false"`
}

type CORSConfig struct {
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
}

type Config struct {
	Common CommonConfig
	HTTP   HTTPConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	CORS   CORSConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Mongo.URI == "" {
		return Config{}, fmt.Errorf("mongo uri is empty: set MONGO_URI")
	}
	if cfg.Auth.AccessTokenSecret == "" {
		return Config{}, fmt.Errorf("token secret is empty: set ACCESS_TOKEN_SECRET")
	}
	return cfg, nil
}
