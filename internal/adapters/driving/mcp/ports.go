package mcp

import (
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Issues fetches issues.
	Issues driving.IssueService

	// Settings exposes the effective configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Issues == nil {
		return ErrMissingIssueService
	}
	return nil
}
