package driven

import (
	"context"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// IssueSource retrieves issues from a remote issue tracker.
// Implementations make exactly one outbound request per call and never retry.
type IssueSource interface {
	// GetIssue fetches owner/repo#number.
	// Failures are reported as *domain.FetchError.
	GetIssue(ctx context.Context, owner, repo string, number uint64) (*domain.IssueResponse, error)
}
