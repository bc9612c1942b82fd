// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package config reads the process environment into a typed [Config] with
// caarlos0/env. Required keys fail startup; COMMENTS_* keys tune listing
// limits, the flattening depth guard, the thread aggregate TTL and the
// Cache-Control policy of comment listings.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded once in main and passed down by value or pointer; nothing
// mutates it afterwards.
type Config struct {
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath overrides the embedded SQL migrations with a directory.
	MigrationPath string `env:"MIGRATION_PATH"`

	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Tokens are issued by the account service; this API only verifies them.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"modhub.app"`

	// Cross-Origin Resource Sharing. Suffix matches, e.g. "modhub.app".
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"modhub.app"`

	Comments CommentsConfig `envPrefix:"COMMENTS_"`
}

// CommentsConfig tunes the threaded comment engine.
type CommentsConfig struct {
	// DefaultPerPage applies when per_page is missing or <= 0.
	DefaultPerPage int `env:"DEFAULT_PER_PAGE" envDefault:"15"`

	// MaxPerPage caps the number of top-level threads on a page.
	MaxPerPage int `env:"MAX_PER_PAGE" envDefault:"100"`

	// MaxDepth bounds the flattening walk.
	MaxDepth int `env:"MAX_DEPTH" envDefault:"64"`

	// AggregateTTL is the lifetime of a cached thread like total. Zero keeps it until invalidated.
	AggregateTTL time.Duration `env:"AGGREGATE_TTL" envDefault:"24h"`

	// CacheMaxAge and CacheStaleWhileRevalidate drive the Cache-Control header.
	CacheMaxAge               time.Duration `env:"CACHE_MAX_AGE" envDefault:"60s"`
	CacheStaleWhileRevalidate time.Duration `env:"CACHE_SWR"     envDefault:"300s"`

	// AllowedTypes lists the content item types that accept comments.
	AllowedTypes []string `env:"ALLOWED_TYPES" envSeparator:"," envDefault:"mod,post"`
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values that would make the comment engine misbehave.
func (c *Config) validate() error {
	if c.Comments.DefaultPerPage <= 0 {
		return fmt.Errorf("config: COMMENTS_DEFAULT_PER_PAGE must be > 0")
	}
	if c.Comments.MaxPerPage < c.Comments.DefaultPerPage {
		return fmt.Errorf("config: COMMENTS_MAX_PER_PAGE must be >= COMMENTS_DEFAULT_PER_PAGE")
	}
	if c.Comments.MaxDepth <= 0 {
		return fmt.Errorf("config: COMMENTS_MAX_DEPTH must be > 0")
	}
	return nil
}

// IsDevelopment relaxes CORS to any origin.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginSuffixes exposes the CORS allow-list to the middleware.
func (c *Config) OriginSuffixes() []string {
	return c.AllowedOrigins
}
