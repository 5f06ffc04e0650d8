package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !isKnownLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	return nil
}

func (a *AnalyticsConfig) validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"signal_scan_limit", a.SignalScanLimit},
		{"mention_scan_limit", a.MentionScanLimit},
		{"sentiment_scan_limit", a.SentimentScanLimit},
		{"tag_scan_limit", a.TagScanLimit},
	}
	for _, l := range limits {
		if l.value <= 0 {
			return fmt.Errorf("%s must be > 0 (got %d)", l.name, l.value)
		}
	}
	return nil
}

func isKnownLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
