package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"token", "X-Custom-Header", nil},
		{"well-known", header.ContentType, nil},
		{"punctuation", "X-Foo!#$%&'*+.^_`|~", nil},
		{"empty", "", header.ErrInvalidHeaderName},
		{"space", "Foo Bar", header.ErrInvalidHeaderName},
		{"colon", "Foo:Bar", header.ErrInvalidHeaderName},
		{"comma", "Foo,Bar", header.ErrInvalidHeaderName},
		{"semicolon", "Foo;Bar", header.ErrInvalidHeaderName},
		{"equals", "Foo=Bar", header.ErrInvalidHeaderName},
		{"tab", "Foo\tBar", header.ErrInvalidHeaderName},
		{"crlf", "Foo\r\n", header.ErrInvalidHeaderName},
		{"vt", "Foo\vBar", header.ErrInvalidHeaderName},
		{"ff", "Foo\fBar", header.ErrInvalidHeaderName},
		{"non-ascii", "Fo\xc3\xb6", header.ErrInvalidHeaderName},
		{"byte 128", "Foo\x80", header.ErrInvalidHeaderName},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := header.ValidateName(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("ValidateName(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err := header.ValidateName([]byte(c.in)); (err == nil) != (c.wantErr == nil) {
				t.Errorf("ValidateName([]byte(%q)) error = %v, want %v", c.in, err, c.wantErr)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", nil},
		{"plain", "text/html; charset=utf-8", nil},
		{"crlf fold space", "line1\r\n line2", nil},
		{"crlf fold tab", "line1\r\n\tline2", nil},
		{"lf fold", "line1\n line2", nil},
		{"many folds", "a\r\n b\r\n\tc", nil},
		{"bare cr", "line1\rline2", header.ErrInvalidHeaderValue},
		{"cr cr", "line1\r\r\n line2", header.ErrInvalidHeaderValue},
		{"trailing lf", "line1\n", header.ErrInvalidHeaderValue},
		{"trailing cr", "line1\r", header.ErrInvalidHeaderValue},
		{"trailing crlf", "line1\r\n", header.ErrInvalidHeaderValue},
		{"no fold", "line1\r\nline2", header.ErrInvalidHeaderValue},
		{"vt", "line\x0b1", header.ErrInvalidHeaderValue},
		{"ff", "line\f1", header.ErrInvalidHeaderValue},
		{"vt in fold", "line1\r\n\x0bline2", header.ErrInvalidHeaderValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := header.ValidateValue(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("ValidateValue(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
		})
	}
}
