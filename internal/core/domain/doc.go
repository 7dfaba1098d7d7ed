// Package domain defines the core business entities for the issue fetcher.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - IssueRequest: the invocation payload (owner, repo, issue number)
//   - Issue: the issue record as returned by the remote API
//   - IssueResponse: an issue paired with its ETag
//   - FetchError: the terminal failure branches of a fetch
//   - AppSettings: resolved configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
