package github

import (
	"net/http"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// HeaderETag is the response header carrying the issue's cache validator.
const HeaderETag = "ETag"

// readETag returns the first ETag header value verbatim.
// An absent or empty header is missing; a value with bytes outside
// visible ASCII (tab allowed) is unreadable.
func readETag(h http.Header) (string, error) {
	values := h.Values(HeaderETag)
	if len(values) == 0 || values[0] == "" {
		return "", domain.NewFetchError(domain.KindMissingETag, nil)
	}

	etag := values[0]
	for i := 0; i < len(etag); i++ {
		if !isVisibleASCII(etag[i]) {
			return "", domain.NewFetchError(domain.KindUnreadableETag, nil)
		}
	}
	return etag, nil
}

func isVisibleASCII(b byte) bool {
	return b == '\t' || (b >= 0x20 && b < 0x7f)
}
