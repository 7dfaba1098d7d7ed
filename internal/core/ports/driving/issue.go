package driving

import (
	"context"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// IssueService fetches a single issue together with its ETag.
type IssueService interface {
	// Fetch retrieves the issue identified by req.
	// On failure the error carries a *domain.FetchError describing the branch.
	Fetch(ctx context.Context, req domain.IssueRequest) (*domain.IssueResponse, error)
}
