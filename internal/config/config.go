// Package config loads application settings from environment variables
// using envconfig.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	AppEnv string `envconfig:"APP_ENV" default:"production"`

	// DBDriver selects the storage backend: "sqlite" or "postgres".
	// DatabasePath feeds the sqlite driver, DatabaseDSN the postgres one.
	DBDriver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"community.db"`
	DatabaseDSN  string `envconfig:"DATABASE_DSN"`

	// Karma awarded to a content author per like received.
	KarmaPostLike    int `envconfig:"KARMA_POST_LIKE" default:"5"`
	KarmaCommentLike int `envconfig:"KARMA_COMMENT_LIKE" default:"1"`

	LeaderboardWindow time.Duration `envconfig:"LEADERBOARD_WINDOW" default:"24h"`
	LeaderboardLimit  int           `envconfig:"LEADERBOARD_LIMIT" default:"5"`
}

// Load returns the application configuration
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
