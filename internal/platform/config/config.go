// Package config loads process configuration from the environment.
// A .env file is read when present so local development does not need
// exported variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server needs.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// Database connection settings. InstanceConnectionName takes
	// precedence over Host/Port when set (Cloud SQL unix socket).
	DBUser                 string
	DBPassword             string
	DBHost                 string
	DBPort                 string
	DBName                 string
	InstanceConnectionName string

	// JWTSecret signs and verifies bearer tokens. Must be set in
	// production; never hard-code it in source.
	JWTSecret string

	// RunMigrations enables GORM AutoMigrate at startup.
	RunMigrations bool
}

// Load reads the optional .env file and builds a Config from the
// environment, applying development defaults.
func Load() *Config {
	// Missing .env is fine; real deployments export variables directly.
	_ = godotenv.Load()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DBUser:                 getEnv("DB_USER", "root"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "3306"),
		DBName:                 getEnv("DB_NAME", "brand_site"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RunMigrations:          os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// DSN builds the MySQL connection string from the database settings.
func (c *Config) DSN() string {
	if c.InstanceConnectionName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			c.DBUser, c.DBPassword, c.InstanceConnectionName, c.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
