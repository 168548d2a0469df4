// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read once per process (when present), then struct
// fields annotated with `env` tags are parsed from the environment.
//
// # Usage
//
//	type Config struct {
//		ServerURL string `env:"ARANGODB_URL" envDefault:"http://localhost:8529"`
//		Password  string `env:"ARANGODB_PASSWORD,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot run without.
package config
