package header

import (
	"net/http"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// TimeFormat is the HTTP date layout of RFC 2616 Section 3.3.1 (RFC 1123 form in GMT).
const TimeFormat = http.TimeFormat

// FormatDate formats t as an HTTP date, e.g. "Tue, 15 Nov 1994 08:12:31 GMT".
// It is safe for concurrent use.
func FormatDate(t time.Time) string { return t.UTC().Format(TimeFormat) }

// ParseDate parses an HTTP date in any of the three formats allowed by RFC 2616:
// RFC 1123, RFC 850 and ANSI C asctime. It is safe for concurrent use.
func ParseDate(s string) (time.Time, error) {
	t, err := http.ParseTime(s)
	if err != nil {
		return time.Time{}, errtrace.Wrap(errorutil.NewWrapperError(ErrDateParse, "%q", s))
	}
	return t, nil
}
