package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driven"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyGitHubBaseURL   = "github.base_url"
	KeyGitHubUserAgent = "github.user_agent"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// EnvPrefix prefixes environment variables that override stored settings.
const EnvPrefix = "ISSUE_FETCHER_"

// SettingsService manages application settings.
// Values resolve in order: environment, config store, defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// configStore may be nil, in which case only environment and defaults apply.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// WithEnv replaces the environment lookup. Useful for testing.
func (s *SettingsService) WithEnv(lookup func(string) (string, bool)) *SettingsService {
	s.lookupEnv = lookup
	return s
}

// EnvKey returns the environment variable that overrides key,
// e.g. github.base_url -> ISSUE_FETCHER_GITHUB_BASE_URL.
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Get retrieves current application settings.
// Invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		GitHub: domain.GitHubSettings{
			BaseURL:   s.getString(KeyGitHubBaseURL, defaults.GitHub.BaseURL),
			UserAgent: s.getString(KeyGitHubUserAgent, defaults.GitHub.UserAgent),
		},
		Log: domain.LogSettings{
			Level:  domain.LogLevel(strings.ToLower(s.getString(KeyLogLevel, defaults.Log.Level.String()))),
			Format: domain.LogFormat(strings.ToLower(s.getString(KeyLogFormat, defaults.Log.Format.String()))),
		},
	}

	if base, err := domain.ParseBaseURL(settings.GitHub.BaseURL); err == nil {
		settings.GitHub.BaseURL = base.String()
	} else {
		settings.GitHub.BaseURL = defaults.GitHub.BaseURL
	}
	if !settings.Log.Level.IsValid() {
		settings.Log.Level = defaults.Log.Level
	}
	if !settings.Log.Format.IsValid() {
		settings.Log.Format = defaults.Log.Format
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyGitHubBaseURL:
		base, err := domain.ParseBaseURL(value)
		if err != nil {
			return err
		}
		value = base.String()
	case KeyGitHubUserAgent:
		if value == "" {
			return fmt.Errorf("%w: user agent cannot be empty", domain.ErrInvalidInput)
		}
	case KeyLogLevel:
		value = strings.ToLower(value)
		if !domain.LogLevel(value).IsValid() {
			return fmt.Errorf("%w: log level %q (valid: %v)", domain.ErrInvalidInput, value, domain.AllLogLevels())
		}
	case KeyLogFormat:
		value = strings.ToLower(value)
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("%w: log format %q (valid: %v)", domain.ErrInvalidInput, value, domain.AllLogFormats())
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, value)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyGitHubBaseURL, KeyGitHubUserAgent, KeyLogLevel, KeyLogFormat}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config store location, or empty when there is none.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if s.lookupEnv != nil {
		if v, ok := s.lookupEnv(EnvKey(key)); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if s.configStore != nil {
		if v := s.configStore.GetString(key); v != "" {
			return v
		}
	}
	return defaultVal
}
