package message

import (
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// Header returns the first value of the named header.
func Header(m Message, name string) (string, bool) {
	return m.Headers().Get(name)
}

// HeaderOr returns the first value of the named header or def if there is no such header.
func HeaderOr(m Message, name, def string) string {
	if v, ok := m.Headers().Get(name); ok {
		return v
	}
	return def
}

// SetHeader replaces all values of the named header with value.
func SetHeader(m Message, name string, value any) error {
	return errtrace.Wrap(m.Headers().Set(name, value))
}

// AddHeader appends value to the named header.
func AddHeader(m Message, name string, value any) error {
	return errtrace.Wrap(m.Headers().Add(name, value))
}

// RemoveHeader removes all values of the named header.
func RemoveHeader(m Message, name string) error {
	return errtrace.Wrap(m.Headers().Remove(name))
}

// ClearHeaders removes all headers of the message.
func ClearHeaders(m Message) error {
	return errtrace.Wrap(m.Headers().Clear())
}

// IntHeader parses the first value of the named header as a base-10 int.
// It returns an error wrapping [ErrNumberFormat] if the header is absent or malformed.
func IntHeader(m Message, name string) (int, error) {
	v, ok := m.Headers().Get(name)
	if !ok {
		return 0, errtrace.Wrap(newNumberFormatError("header %q not found", name))
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errtrace.Wrap(newNumberFormatError("%s: %q", name, v))
	}
	return n, nil
}

// IntHeaderOr is like [IntHeader] but returns def instead of an error.
func IntHeaderOr(m Message, name string, def int) int {
	n, err := IntHeader(m, name)
	if err != nil {
		return def
	}
	return n
}

// SetIntHeader replaces all values of the named header with n.
func SetIntHeader(m Message, name string, n int) error {
	return errtrace.Wrap(m.Headers().Set(name, n))
}

// AddIntHeader appends n to the named header.
func AddIntHeader(m Message, name string, n int) error {
	return errtrace.Wrap(m.Headers().Add(name, n))
}

// DateHeader parses the first value of the named header as an HTTP date.
// It returns an error wrapping [ErrDateParse] if the header is absent or malformed.
func DateHeader(m Message, name string) (time.Time, error) {
	v, ok := m.Headers().Get(name)
	if !ok {
		return time.Time{}, errtrace.Wrap(errorutil.NewWrapperError(ErrDateParse, "header %q not found", name))
	}
	return errtrace.Wrap2(header.ParseDate(v))
}

// DateHeaderOr is like [DateHeader] but returns def instead of an error.
func DateHeaderOr(m Message, name string, def time.Time) time.Time {
	t, err := DateHeader(m, name)
	if err != nil {
		return def
	}
	return t
}

// SetDateHeader replaces all values of the named header with t formatted as an HTTP date.
// A zero t removes the header.
func SetDateHeader(m Message, name string, t time.Time) error {
	if t.IsZero() {
		return errtrace.Wrap(m.Headers().Remove(name))
	}
	return errtrace.Wrap(m.Headers().Set(name, t))
}

// AddDateHeader appends t formatted as an HTTP date to the named header.
func AddDateHeader(m Message, name string, t time.Time) error {
	return errtrace.Wrap(m.Headers().Add(name, t))
}

// Date returns the value of the Date header.
func Date(m Message) (time.Time, error) {
	return errtrace.Wrap2(DateHeader(m, header.Date))
}

// DateOr returns the value of the Date header or def if it is absent or malformed.
func DateOr(m Message, def time.Time) time.Time {
	return DateHeaderOr(m, header.Date, def)
}

// SetDate sets the Date header. A zero t removes it.
func SetDate(m Message, t time.Time) error {
	return errtrace.Wrap(SetDateHeader(m, header.Date, t))
}

// Host returns the value of the Host header.
func Host(m Message) (string, bool) {
	return m.Headers().Get(header.Host)
}

// HostOr returns the value of the Host header or def if there is no such header.
func HostOr(m Message, def string) string {
	return HeaderOr(m, header.Host, def)
}

// SetHost sets the Host header.
func SetHost(m Message, host string) error {
	return errtrace.Wrap(m.Headers().Set(header.Host, host))
}
