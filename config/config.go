// Package config provides runtime configuration for the Joya Jewelry backend.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds all configuration knobs, loaded from environment variables.
// A .env file, if present, is loaded by main before this is processed.
type App struct {
	// Mongo
	MongoURI string `envconfig:"MONGODB_URI"` // full URI override; wins over DB_USER/DB_PASS/DB_HOST
	DBUser   string `envconfig:"DB_USER"`
	DBPass   string `envconfig:"DB_PASS"`
	DBHost   string `envconfig:"DB_HOST" default:"cluster0.mongodb.net"`
	DBName   string `envconfig:"DB_NAME" default:"JoyaJewelry"`

	// Network
	Port string `envconfig:"PORT" default:"5000"`

	// Timeouts (seconds)
	DBTimeoutS       int `envconfig:"DB_TIMEOUT_S" default:"5"`
	ConnectTimeoutS  int `envconfig:"CONNECT_TIMEOUT_S" default:"10"`
	ShutdownTimeoutS int `envconfig:"SHUTDOWN_TIMEOUT_S" default:"15"`
}

// Load collects configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// URI returns the MongoDB connection string. An explicit MONGODB_URI takes
// precedence; otherwise the Atlas-style URI is assembled from DB_USER,
// DB_PASS and DB_HOST the way the deployment has always supplied them.
func (c App) URI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.DBUser, c.DBPass, c.DBHost)
}

// DBTimeout is the per-request database operation timeout.
func (c App) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutS) * time.Second
}

// ConnectTimeout bounds the initial connect + ping at startup.
func (c App) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutS) * time.Second
}

// ShutdownTimeout bounds graceful HTTP shutdown.
func (c App) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutS) * time.Second
}
