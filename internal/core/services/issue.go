package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driven"
	"github.com/custodia-labs/issue-fetcher/internal/core/ports/driving"
	"github.com/custodia-labs/issue-fetcher/internal/logger"
)

// Ensure IssueService implements the interface.
var _ driving.IssueService = (*IssueService)(nil)

// IssueService fetches one issue per call from an IssueSource.
// It holds no mutable state and is safe for concurrent use.
type IssueService struct {
	source driven.IssueSource
}

// NewIssueService creates a new issue service.
func NewIssueService(source driven.IssueSource) *IssueService {
	return &IssueService{source: source}
}

// Fetch retrieves the requested issue and its ETag.
// The request and the response are logged in full; no redaction is applied.
func (s *IssueService) Fetch(ctx context.Context, req domain.IssueRequest) (*domain.IssueResponse, error) {
	log := logger.FromContext(ctx)
	log.Info("event payload",
		"owner", req.Owner,
		"repo", req.Repo,
		"issue_number", req.IssueNumber,
	)

	if s.source == nil {
		return nil, domain.ErrNotImplemented
	}

	resp, err := s.source.GetIssue(ctx, req.Owner, req.Repo, req.IssueNumber)
	if err == nil {
		err = checkComplete(resp)
	}
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			log.Error(err.Error(), "kind", fetchErr.Kind.String(), "status", fetchErr.StatusCode)
		} else {
			log.Error(err.Error(), "kind", domain.KindOf(err).String())
		}
		return nil, err
	}

	log.Info("response", "etag", resp.ETag, "issue", resp.Issue)
	return resp, nil
}

// checkComplete rejects responses missing either half of the result.
func checkComplete(resp *domain.IssueResponse) error {
	switch {
	case resp == nil || resp.Issue == nil:
		return domain.NewFetchError(domain.KindDeserialize, errors.New("empty issue"))
	case resp.ETag == "":
		return domain.NewFetchError(domain.KindMissingETag, nil)
	default:
		return nil
	}
}
