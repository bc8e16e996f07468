package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}

	if err := c.Tracing.validate(); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	return nil
}

func (a *ActivityConfig) validate() error {
	if a.DefaultListLimit <= 0 {
		return fmt.Errorf("default_list_limit must be > 0 (got %d)", a.DefaultListLimit)
	}
	if a.MaxListLimit < a.DefaultListLimit {
		return fmt.Errorf("max_list_limit (%d) must be >= default_list_limit (%d)", a.MaxListLimit, a.DefaultListLimit)
	}
	if a.RecentDefaultLimit <= 0 {
		return fmt.Errorf("recent_default_limit must be > 0 (got %d)", a.RecentDefaultLimit)
	}
	if a.RecentMaxLimit < a.RecentDefaultLimit {
		return fmt.Errorf("recent_max_limit (%d) must be >= recent_default_limit (%d)", a.RecentMaxLimit, a.RecentDefaultLimit)
	}
	if a.MaxRetentionDays <= 0 {
		return fmt.Errorf("max_retention_days must be > 0 (got %d)", a.MaxRetentionDays)
	}
	if a.RetentionDays < 0 || a.RetentionDays > a.MaxRetentionDays {
		return fmt.Errorf("retention_days must be in [0, %d] (got %d)", a.MaxRetentionDays, a.RetentionDays)
	}
	if a.PruneStatementTimeout < 0 {
		return errors.New("prune_statement_timeout must be >= 0")
	}
	return nil
}

func (t *TracingConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if t.ServiceName == "" {
		return errors.New("service_name is required when tracing is enabled")
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		return fmt.Errorf("sample_ratio must be in [0, 1] (got %v)", t.SampleRatio)
	}
	return nil
}
