package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0 (got %v)", c.LLM.Timeout)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	return nil
}

func (d *DashboardConfig) validate() error {
	if d.WeeklyFocusLimit <= 0 {
		return fmt.Errorf("weekly_focus_limit must be > 0 (got %d)", d.WeeklyFocusLimit)
	}
	if d.IdleAfterDays <= 0 {
		return fmt.Errorf("idle_after_days must be > 0 (got %d)", d.IdleAfterDays)
	}
	if d.IdleMinPriority < 1 || d.IdleMinPriority > 5 {
		return fmt.Errorf("idle_min_priority must be in [1,5] (got %d)", d.IdleMinPriority)
	}
	if d.IdleLimit <= 0 {
		return fmt.Errorf("idle_limit must be > 0 (got %d)", d.IdleLimit)
	}
	return nil
}
