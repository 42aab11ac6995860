package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/errorutil"
)

func newInvalidNameError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHeaderName, args...) //errtrace:skip
}

func newInvalidValueError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHeaderValue, args...) //errtrace:skip
}

// ValidateName checks that name is a non-empty header name made of ASCII characters
// other than whitespace, line breaks and the separators ',', ':', ';', '='.
// It returns an error wrapping [ErrInvalidHeaderName] otherwise.
func ValidateName[T constraints.Byteseq](name T) error {
	if len(name) == 0 {
		return errtrace.Wrap(newInvalidNameError("empty name"))
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c > 127 {
			return errtrace.Wrap(newInvalidNameError("non-ASCII character in %q", string(name)))
		}
		switch c {
		case '\t', '\n', '\v', '\f', '\r', ' ', ',', ':', ';', '=':
			return errtrace.Wrap(newInvalidNameError("prohibited character %q in %q", c, string(name)))
		}
	}
	return nil
}

// Value scanner states.
const (
	valStateText = iota
	valStateCR
	valStateLF
)

// ValidateValue checks that value contains no VT or FF characters and that every line break
// is a CRLF (or a bare LF) followed by SP or HT, i.e. an obs-fold continuation.
// It returns an error wrapping [ErrInvalidHeaderValue] otherwise.
func ValidateValue[T constraints.Byteseq](value T) error {
	state := valStateText
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\v' || c == '\f' {
			return errtrace.Wrap(newInvalidValueError("prohibited character %q in %q", c, string(value)))
		}

		switch state {
		case valStateText:
			switch c {
			case '\r':
				state = valStateCR
			case '\n':
				state = valStateLF
			}
		case valStateCR:
			if c != '\n' {
				return errtrace.Wrap(newInvalidValueError("only LF allowed after CR in %q", string(value)))
			}
			state = valStateLF
		case valStateLF:
			if c != ' ' && c != '\t' {
				return errtrace.Wrap(newInvalidValueError("only SP or HT allowed after LF in %q", string(value)))
			}
			state = valStateText
		}
	}
	if state != valStateText {
		return errtrace.Wrap(newInvalidValueError("value must not end with CR or LF: %q", string(value)))
	}
	return nil
}
