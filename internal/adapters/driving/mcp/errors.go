// Package mcp provides an MCP (Model Context Protocol) server adapter for the issue fetcher.
// It lets AI assistants fetch GitHub issues through the same service the Lambda handler uses.
package mcp

import "errors"

// ErrMissingIssueService is returned when the issue service is not provided.
var ErrMissingIssueService = errors.New("mcp: issue service is required")
