package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// FetchIssueInput is the input schema for the fetch_issue tool.
type FetchIssueInput struct {
	Owner       string `json:"owner" jsonschema:"the account or organisation that owns the repository"`
	Repo        string `json:"repo" jsonschema:"the repository name"`
	IssueNumber uint64 `json:"issue_number" jsonschema:"the issue number within the repository"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_issue",
		Description: "Fetch a single GitHub issue and its ETag from the public REST API",
	}, s.handleFetchIssue)
}

// handleFetchIssue handles the fetch_issue tool invocation.
// The issue shape belongs to GitHub, so the result is returned as JSON text
// with no declared output schema.
func (s *Server) handleFetchIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchIssueInput,
) (*mcp.CallToolResult, any, error) {
	req := domain.IssueRequest{
		Owner:       strings.TrimSpace(input.Owner),
		Repo:        strings.TrimSpace(input.Repo),
		IssueNumber: input.IssueNumber,
	}
	if req.Owner == "" || req.Repo == "" {
		return nil, nil, fmt.Errorf("%w: owner and repo are required", domain.ErrInvalidInput)
	}

	ctx = logger.WithRequestID(ctx, uuid.NewString())
	resp, err := s.ports.Issues.Fetch(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling issue: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
