package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the service.
type Config struct {
	Port     string // HTTP port (default: 8085)
	Env      string // "production" switches logging to JSON
	MongoURI string // optional; empty means flat-file storage
	MongoDB  string // database name (default: inventory)
	DataDir  string // flat-file directory (default: data)
}

// LoadConfig reads a .env file if present, then the environment. MONGO_URI
// is optional on purpose: without it the service runs entirely on flat
// files.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		Env:      os.Getenv("APP_ENV"),
		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  os.Getenv("MONGO_DB"),
		DataDir:  os.Getenv("DATA_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8085"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "inventory"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return cfg
}
