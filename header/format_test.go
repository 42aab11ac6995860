package header_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ghettovoice/httphdr/header"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	date := time.Date(1994, 11, 15, 8, 12, 31, 0, time.UTC)

	cases := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{"string", "text", "text", false},
		{"bytes", []byte("text"), "text", false},
		{"int", -12, "-12", false},
		{"int8", int8(8), "8", false},
		{"int16", int16(16), "16", false},
		{"int32", int32(32), "32", false},
		{"int64", int64(1) << 40, "1099511627776", false},
		{"uint", uint(7), "7", false},
		{"uint8", uint8(255), "255", false},
		{"uint32", uint32(32), "32", false},
		{"uint64", uint64(64), "64", false},
		{"float32", float32(0.5), "0.5", false},
		{"float64", 2.25, "2.25", false},
		{"bool", false, "false", false},
		{"time", date, "Tue, 15 Nov 1994 08:12:31 GMT", false},
		{"time ptr", &date, "Tue, 15 Nov 1994 08:12:31 GMT", false},
		{"stringer", stringer("s"), "s", false},
		{"struct", struct{ A int }{1}, "{1}", false},
		{"nil", nil, "", true},
		{"nil time ptr", (*time.Time)(nil), "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.FormatValue(c.in)
			if c.wantErr {
				if !errors.Is(err, header.ErrInvalidHeaderValue) {
					t.Errorf("FormatValue(%v) error = %v, want %v", c.in, err, header.ErrInvalidHeaderValue)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatValue(%v) error = %v, want nil", c.in, err)
			}
			if got != c.want {
				t.Errorf("FormatValue(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
