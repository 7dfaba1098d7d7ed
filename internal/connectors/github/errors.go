package github

import (
	"errors"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// wrapError converts go-github errors to domain fetch errors.
// Anything that came back with an HTTP response is a status failure;
// everything else never reached the API.
func wrapError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	// Check for GitHub error response
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return domain.NewStatusError(statusOf(ghErr.Response, resp), ghErr.Message, err)
	}

	// Check for primary rate limit error
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return domain.NewStatusError(statusOf(rateLimitErr.Response, resp), rateLimitErr.Message, err)
	}

	// Check for secondary rate limit error
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return domain.NewStatusError(statusOf(abuseErr.Response, resp), abuseErr.Message, err)
	}

	if code := statusOf(nil, resp); code != 0 && (code < 200 || code > 299) {
		return domain.NewStatusError(code, http.StatusText(code), err)
	}

	return domain.NewFetchError(domain.KindNetwork, err)
}

// statusOf returns the status code of the first non-nil response.
func statusOf(r *http.Response, resp *gh.Response) int {
	if r != nil {
		return r.StatusCode
	}
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	return 0
}
