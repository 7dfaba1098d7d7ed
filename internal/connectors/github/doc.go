// Package github implements the issue source for the GitHub REST API.
//
// The client issues one unauthenticated GET per call:
//
//	GET {base_url}repos/{owner}/{repo}/issues/{number}
//	User-Agent: Issue Fetcher
//
// and returns the issue together with the response's ETag header. The issue
// body is checked against the required fields of the issue schema and then
// passed through unchanged in [domain.Issue.Raw].
//
// # Failure Order
//
// Each call ends in exactly one of these branches, checked in order:
//
//  1. No HTTP response (DNS, TLS, connection reset, cancelled context):
//     [domain.KindNetwork].
//  2. Status outside 2xx: [domain.KindStatus], carrying the status code and
//     the message GitHub put in the error body.
//  3. ETag absent or empty: [domain.KindMissingETag]. The body is not read.
//     An "ETag:" header with an empty value counts as missing even though it
//     is readable, since an empty validator cannot be sent back in
//     If-None-Match.
//  4. ETag contains bytes outside visible ASCII: [domain.KindUnreadableETag].
//  5. Body is not a JSON issue object: [domain.KindDeserialize], wrapping the
//     decoder error so its text reaches the caller.
//
// # Rate Limiting
//
// Unauthenticated requests are limited to 60 per hour per source IP.
// The client does not throttle, wait or retry. Rate headers are logged at
// debug level and a 403 or 429 surfaces as a status failure.
//
// # Configuration
//
// [Config] selects the API root and User-Agent. Pointing BaseURL at a GitHub
// Enterprise Server ("https://ghe.example.com/api/v3/") or a local stub works
// the same way as the public API.
package github
