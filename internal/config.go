package internal

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

const (
	defaultRunAddress  = "localhost:8080"
	defaultDatabaseURI = "host=localhost port=5432 user=postgres password=postgres database=sellerwallet sslmode=disable"
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	JWTSecret   string `env:"JWT_SECRET"`
}

// NewConfig reads flags first and lets environment variables override
// them, so a containerized deploy wins over baked-in defaults.
func NewConfig() (*Config, error) {
	c := new(Config)

	flag.StringVar(&c.RunAddress, "a", defaultRunAddress, "address to listen on")
	flag.StringVar(&c.DatabaseURI, "d", defaultDatabaseURI, "postgres connection string")
	flag.StringVar(&c.JWTSecret, "s", "secret", "key used to verify auth tokens")
	flag.Parse()

	err := env.Parse(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
