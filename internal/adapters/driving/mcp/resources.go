package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

const (
	// issueScheme addresses issues as github://{owner}/{repo}/issues/{number}.
	issueScheme = "github://"

	// settingsURI is the static resource describing the effective settings.
	settingsURI = "issue-fetcher://settings"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: issueScheme + "{owner}/{repo}/issues/{number}",
		Name:        "issue",
		Description: "A GitHub issue with its ETag",
		MIMEType:    "application/json",
	}, s.handleIssueResource)

	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         settingsURI,
			Name:        "settings",
			Description: "Effective issue fetcher configuration",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}
}

// handleIssueResource fetches the issue named by the resource URI.
func (s *Server) handleIssueResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	issueReq, ok := parseIssueURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resp, err := s.ports.Issues.Fetch(ctx, issueReq)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, err
	}

	return jsonResource(req.Params.URI, resp)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return jsonResource(req.Params.URI, settings)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// parseIssueURI extracts the request from a URI like github://octocat/Hello-World/issues/1.
func parseIssueURI(uri string) (domain.IssueRequest, bool) {
	if !strings.HasPrefix(uri, issueScheme) {
		return domain.IssueRequest{}, false
	}

	parts := strings.Split(strings.TrimPrefix(uri, issueScheme), "/")
	if len(parts) != 4 || parts[0] == "" || parts[1] == "" || parts[2] != "issues" {
		return domain.IssueRequest{}, false
	}

	number, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return domain.IssueRequest{}, false
	}

	return domain.IssueRequest{Owner: parts[0], Repo: parts[1], IssueNumber: number}, true
}
