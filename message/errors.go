package message

import (
	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Error represents a message error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrNumberFormat is returned by strict numeric accessors when the header is absent
	// or its value is not a base-10 integer.
	ErrNumberFormat Error = "malformed number"
	// ErrInvalidVersion is returned when a protocol version string is malformed.
	ErrInvalidVersion = types.ErrInvalidProtoVersion

	ErrInvalidHeaderName    = header.ErrInvalidHeaderName
	ErrInvalidHeaderValue   = header.ErrInvalidHeaderValue
	ErrUnsupportedOperation = header.ErrUnsupportedOperation
	ErrDateParse            = header.ErrDateParse
)

func newNumberFormatError(args ...any) error {
	return errorutil.NewWrapperError(ErrNumberFormat, args...) //errtrace:skip
}
