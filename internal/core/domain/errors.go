package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Fetch Errors.

	// ErrNetwork indicates the request never produced an HTTP response.
	ErrNetwork = errors.New("issue request failed")

	// ErrFetchFailed indicates the API answered with a non-success status.
	ErrFetchFailed = errors.New("failed to fetch issue")

	// ErrETagMissing indicates a success response carried no ETag header.
	ErrETagMissing = errors.New("ETag header is missing in the response")

	// ErrETagUnreadable indicates the ETag header is not a plain visible-ASCII string.
	ErrETagUnreadable = errors.New("failed to convert ETag header to string")

	// ErrDeserialize indicates the response body is not a valid issue.
	ErrDeserialize = errors.New("failed to deserialize issue from response")
)

// FetchErrorKind enumerates the terminal failure branches of an issue fetch.
type FetchErrorKind int

// Fetch failure kinds.
const (
	// KindUnknown is reported for errors that did not come from a fetch.
	KindUnknown FetchErrorKind = iota
	KindNetwork
	KindStatus
	KindMissingETag
	KindUnreadableETag
	KindDeserialize
)

// String returns the kind name used in logs.
func (k FetchErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindMissingETag:
		return "missing_etag"
	case KindUnreadableETag:
		return "unreadable_etag"
	case KindDeserialize:
		return "deserialize"
	default:
		return "unknown"
	}
}

// sentinel returns the package-level error matched by errors.Is for this kind.
func (k FetchErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindStatus:
		return ErrFetchFailed
	case KindMissingETag:
		return ErrETagMissing
	case KindUnreadableETag:
		return ErrETagUnreadable
	case KindDeserialize:
		return ErrDeserialize
	default:
		return nil
	}
}

// FetchError describes why an issue fetch produced no response.
type FetchError struct {
	// Kind is the failure branch.
	Kind FetchErrorKind

	// StatusCode is the HTTP status for KindStatus, zero otherwise.
	StatusCode int

	// Message is the API's error message for KindStatus, if it sent one.
	Message string

	// Err is the underlying cause (transport or decoder error), if any.
	Err error
}

// NewFetchError creates a FetchError of the given kind wrapping cause.
func NewFetchError(kind FetchErrorKind, cause error) *FetchError {
	return &FetchError{Kind: kind, Err: cause}
}

// NewStatusError creates a KindStatus FetchError.
func NewStatusError(statusCode int, message string, cause error) *FetchError {
	return &FetchError{
		Kind:       KindStatus,
		StatusCode: statusCode,
		Message:    message,
		Err:        cause,
	}
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		msg := fmt.Sprintf("%s: status %d", ErrFetchFailed, e.StatusCode)
		if e.Message != "" {
			msg += ": " + e.Message
		}
		return msg
	case KindMissingETag, KindUnreadableETag:
		return e.Kind.sentinel().Error()
	case KindNetwork, KindDeserialize:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
		}
		return e.Kind.sentinel().Error()
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "issue fetch failed"
	}
}

// Unwrap exposes both the kind's sentinel and the underlying cause.
func (e *FetchError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the fetch failure kind carried by err, or KindUnknown.
func KindOf(err error) FetchErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return KindUnknown
}

// IsNotFound checks if the error is a 404 from the issue API.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind == KindStatus && fetchErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsStatusError checks if the API answered the fetch with a non-success status.
func IsStatusError(err error) bool {
	return KindOf(err) == KindStatus
}
