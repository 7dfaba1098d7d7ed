package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driven"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IssueSource = (*Client)(nil)

// Client fetches single issues from the GitHub REST API without authentication.
// A Client is safe for concurrent use and may be reused across invocations;
// it keeps no per-request state.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client.
// If httpClient is nil, a default http.Client is used.
func NewClient(httpClient *http.Client, cfg Config) (*Client, error) {
	base, err := cfg.parseBaseURL()
	if err != nil {
		return nil, err
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = base
	client.UserAgent = cfg.UserAgent

	return &Client{gh: client}, nil
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// GetIssue fetches owner/repo#number with a single GET.
// The status is checked first, then the ETag, then the body is decoded.
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number uint64) (*domain.IssueResponse, error) {
	log := logger.FromContext(ctx)

	req, err := c.gh.NewRequest(http.MethodGet, issuePath(owner, repo, number), nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.KindNetwork, fmt.Errorf("build request: %w", err))
	}
	log.Debug("github request", "method", req.Method, "url", req.URL.String())

	// Exactly one request per call, even after GitHub has reported a limit.
	ctx = context.WithValue(ctx, gh.BypassRateLimitCheck, true)

	resp, err := c.gh.BareDo(ctx, req)
	logRate(log, resp)

	var body []byte
	var accepted *gh.AcceptedError
	switch {
	case errors.As(err, &accepted):
		// 202 is a success; go-github has already drained the body.
		body = accepted.Raw
	case err != nil:
		return nil, wrapError(resp, err)
	default:
		defer resp.Body.Close()
	}

	etag, err := readETag(resp.Header)
	if err != nil {
		return nil, err
	}

	if body == nil {
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, domain.NewFetchError(domain.KindDeserialize, fmt.Errorf("read body: %w", err))
		}
	}

	issue, err := decodeIssue(body)
	if err != nil {
		return nil, err
	}

	return &domain.IssueResponse{ETag: etag, Issue: issue}, nil
}

// issuePath returns the API path for an issue, relative to the base URL.
func issuePath(owner, repo string, number uint64) string {
	return fmt.Sprintf("repos/%v/%v/issues/%d", owner, repo, number)
}
