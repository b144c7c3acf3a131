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

	if err := c.Notes.validate(); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	if err := c.Tags.validate(); err != nil {
		return fmt.Errorf("tags: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (n *NotesConfig) validate() error {
	n.DefaultColor = strings.TrimSpace(n.DefaultColor)
	if n.DefaultColor == "" {
		return fmt.Errorf("default_color must not be empty")
	}
	if n.MaxPageLimit < 1 {
		return fmt.Errorf("max_page_limit must be >= 1 (got %d)", n.MaxPageLimit)
	}
	if n.DefaultPageLimit < 1 || n.DefaultPageLimit > n.MaxPageLimit {
		return fmt.Errorf("default_page_limit must be in [1, %d] (got %d)", n.MaxPageLimit, n.DefaultPageLimit)
	}
	if n.MaxTitleLength < 1 {
		return fmt.Errorf("max_title_length must be >= 1 (got %d)", n.MaxTitleLength)
	}
	if n.MaxBodyLength < 1 {
		return fmt.Errorf("max_body_length must be >= 1 (got %d)", n.MaxBodyLength)
	}
	return nil
}

func (t *TagsConfig) validate() error {
	if t.MaxNameLength < 1 {
		return fmt.Errorf("max_name_length must be >= 1 (got %d)", t.MaxNameLength)
	}
	if t.MaxTagsPerOwner < 1 {
		return fmt.Errorf("max_tags_per_owner must be >= 1 (got %d)", t.MaxTagsPerOwner)
	}
	return nil
}
