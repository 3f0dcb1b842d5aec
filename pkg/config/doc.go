// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (if present), then struct
// fields are populated from their `env` tags. Helpers that panic on failure
// are provided for configuration that is required at startup.
//
//	type StoreConfig struct {
//	    URL string `env:"MONGODB_URL,required"`
//	}
//
//	var cfg StoreConfig
//	config.MustLoad(&cfg)
package config
