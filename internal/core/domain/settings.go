package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const unknownDescription = "Unknown"

const (
	// DefaultGitHubBaseURL is the public GitHub REST API root.
	DefaultGitHubBaseURL = "https://api.github.com/"

	// DefaultUserAgent identifies the fetcher to the issue API.
	DefaultUserAgent = "Issue Fetcher"
)

// LogLevel is the minimum severity written by the logger.
type LogLevel string

// Available log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the log level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// LogFormat selects the log line encoding.
type LogFormat string

// Available log formats.
const (
	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON LogFormat = "json"

	// LogFormatText writes logfmt-style key=value lines.
	LogFormatText LogFormat = "text"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	return f == LogFormatJSON || f == LogFormatText
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f LogFormat) Description() string {
	switch f {
	case LogFormatJSON:
		return "JSON (one object per line)"
	case LogFormatText:
		return "Text (key=value)"
	default:
		return unknownDescription
	}
}

// GitHubSettings configures the issue API client.
type GitHubSettings struct {
	// BaseURL is the API root. Must end with a slash.
	BaseURL string `json:"base_url"`

	// UserAgent is sent on every request.
	UserAgent string `json:"user_agent"`
}

// LogSettings configures structured logging.
type LogSettings struct {
	Level  LogLevel  `json:"level"`
	Format LogFormat `json:"format"`
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	GitHub GitHubSettings `json:"github"`
	Log    LogSettings    `json:"log"`
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		GitHub: GitHubSettings{
			BaseURL:   DefaultGitHubBaseURL,
			UserAgent: DefaultUserAgent,
		},
		Log: LogSettings{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
		},
	}
}

// AllLogLevels returns all valid log levels.
func AllLogLevels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// AllLogFormats returns all valid log formats.
func AllLogFormats() []LogFormat {
	return []LogFormat{LogFormatJSON, LogFormatText}
}

// ParseBaseURL checks that raw is an absolute http(s) URL and returns it
// with the trailing slash the API client resolves paths against.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrInvalidInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q must be an absolute http(s) URL", ErrInvalidInput, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
