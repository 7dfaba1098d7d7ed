package github

import (
	"log/slog"

	gh "github.com/google/go-github/v80/github"
)

// logRate records the rate limit GitHub reported for the request.
// Unauthenticated callers get 60 requests per hour per IP; nothing is
// throttled here, the numbers are for diagnosis only.
func logRate(log *slog.Logger, resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	if resp.Rate.Limit == 0 {
		return
	}

	log.Debug("github rate limit",
		"status", resp.StatusCode,
		"limit", resp.Rate.Limit,
		"remaining", resp.Rate.Remaining,
		"used", resp.Rate.Used,
		"reset", resp.Rate.Reset.Time,
		"resource", resp.Rate.Resource,
	)
}
