package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// Config holds the connection settings for the GitHub REST API.
type Config struct {
	// BaseURL is the API root. It must be absolute and end in a slash.
	// Default: https://api.github.com/
	BaseURL string

	// UserAgent is sent on every request. GitHub rejects requests without one.
	// Default: Issue Fetcher
	UserAgent string
}

// DefaultConfig returns the public GitHub API configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   domain.DefaultGitHubBaseURL,
		UserAgent: domain.DefaultUserAgent,
	}
}

// ConfigFromSettings builds a Config from application settings.
// Empty fields keep their defaults.
func ConfigFromSettings(s domain.GitHubSettings) Config {
	cfg := DefaultConfig()
	if v := strings.TrimSpace(s.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(s.UserAgent); v != "" {
		cfg.UserAgent = v
	}
	return cfg
}

// parseBaseURL validates BaseURL and returns it with a trailing slash.
func (c Config) parseBaseURL() (*url.URL, error) {
	u, err := domain.ParseBaseURL(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("github: %w", err)
	}
	return u, nil
}
