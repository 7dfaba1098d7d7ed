package mcp

import (
	"context"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
)

// mockIssueService is a mock implementation of driving.IssueService.
type mockIssueService struct {
	resp  *domain.IssueResponse
	err   error
	calls []domain.IssueRequest
}

var _ driving.IssueService = (*mockIssueService)(nil)

func (m *mockIssueService) Fetch(_ context.Context, req domain.IssueRequest) (*domain.IssueResponse, error) {
	m.calls = append(m.calls, req)
	return m.resp, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) Path() string { return "" }

func foundABug() *domain.IssueResponse {
	return &domain.IssueResponse{
		ETag:  `"abc123"`,
		Issue: &domain.Issue{Number: 1, Title: "Found a bug", State: "open"},
	}
}
