package header

import "github.com/ghettovoice/httphdr/internal/errorutil"

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidHeaderName is returned when a header name fails validation.
	ErrInvalidHeaderName Error = "invalid header name"
	// ErrInvalidHeaderValue is returned when a header value fails validation.
	ErrInvalidHeaderValue Error = "invalid header value"
	// ErrUnsupportedOperation is returned by every mutator of a read-only collection.
	ErrUnsupportedOperation Error = "unsupported operation"
	// ErrDateParse is returned when a header value is not an HTTP date.
	ErrDateParse Error = "malformed date"
)
