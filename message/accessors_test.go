package message_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/message"
)

func TestHeaderAccessors(t *testing.T) {
	t.Parallel()

	req := newRequest(t, message.HTTP11, message.MethodGet, "X-Trace", "a")

	if v, ok := message.Header(req, "x-trace"); v != "a" || !ok {
		t.Errorf("Header() = (%q, %v), want (%q, true)", v, ok, "a")
	}
	if got := message.HeaderOr(req, "X-Absent", "def"); got != "def" {
		t.Errorf("HeaderOr() = %q, want %q", got, "def")
	}
	if err := message.AddHeader(req, "X-Trace", 2); err != nil {
		t.Fatalf("AddHeader() error = %v, want nil", err)
	}
	if diff := cmp.Diff(req.Headers().Values("X-Trace"), []string{"a", "2"}); diff != "" {
		t.Errorf("X-Trace values unexpected (-got +want):\n%v", diff)
	}
	if err := message.SetHeader(req, "X-TRACE", "b"); err != nil {
		t.Fatalf("SetHeader() error = %v, want nil", err)
	}
	if diff := cmp.Diff(req.Headers().Values("X-Trace"), []string{"b"}); diff != "" {
		t.Errorf("X-Trace values unexpected (-got +want):\n%v", diff)
	}
	if err := message.SetHeader(req, "X Trace", "b"); !errors.Is(err, message.ErrInvalidHeaderName) {
		t.Errorf("SetHeader() error = %v, want %v", err, message.ErrInvalidHeaderName)
	}
	if err := message.RemoveHeader(req, "x-trace"); err != nil {
		t.Fatalf("RemoveHeader() error = %v, want nil", err)
	}
	if req.Headers().Has("X-Trace") {
		t.Error("X-Trace is still present")
	}

	message.AddHeader(req, "A", "1") //nolint:errcheck
	if err := message.ClearHeaders(req); err != nil {
		t.Fatalf("ClearHeaders() error = %v, want nil", err)
	}
	if !req.Headers().IsEmpty() {
		t.Error("headers are not empty after ClearHeaders")
	}
}

func TestIntHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		kv      []string
		want    int
		wantErr error
	}{
		{"valid", []string{"Max-Forwards", "70"}, 70, nil},
		{"negative", []string{"Max-Forwards", "-1"}, -1, nil},
		{"first value", []string{"Max-Forwards", "1", "Max-Forwards", "x"}, 1, nil},
		{"absent", nil, 0, message.ErrNumberFormat},
		{"malformed", []string{"Max-Forwards", "seventy"}, 0, message.ErrNumberFormat},
		{"spaces", []string{"Max-Forwards", " 70"}, 0, message.ErrNumberFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := newRequest(t, message.HTTP11, message.MethodOptions, c.kv...)
			got, err := message.IntHeader(req, header.MaxForwards)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("IntHeader() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("IntHeader() = %d, want %d", got, c.want)
			}

			wantOr := c.want
			if c.wantErr != nil {
				wantOr = 10
			}
			if got := message.IntHeaderOr(req, header.MaxForwards, 10); got != wantOr {
				t.Errorf("IntHeaderOr() = %d, want %d", got, wantOr)
			}
		})
	}
}

func TestSetIntHeader(t *testing.T) {
	t.Parallel()

	res := newResponse(t, message.RTSP10, message.StatusOK, "CSeq", "1")
	if err := message.SetIntHeader(res, header.CSeq, 2); err != nil {
		t.Fatalf("SetIntHeader() error = %v, want nil", err)
	}
	if err := message.AddIntHeader(res, header.CSeq, 3); err != nil {
		t.Fatalf("AddIntHeader() error = %v, want nil", err)
	}
	if diff := cmp.Diff(res.Headers().Values(header.CSeq), []string{"2", "3"}); diff != "" {
		t.Errorf("CSeq values unexpected (-got +want):\n%v", diff)
	}
}

func TestDateHeader(t *testing.T) {
	t.Parallel()

	date := time.Date(1994, 11, 15, 8, 12, 31, 0, time.UTC)
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		kv      []string
		want    time.Time
		wantErr error
	}{
		{"rfc1123", []string{"Last-Modified", "Tue, 15 Nov 1994 08:12:31 GMT"}, date, nil},
		{"asctime", []string{"Last-Modified", "Tue Nov 15 08:12:31 1994"}, date, nil},
		{"absent", nil, time.Time{}, message.ErrDateParse},
		{"malformed", []string{"Last-Modified", "1994-11-15"}, time.Time{}, message.ErrDateParse},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res := newResponse(t, message.HTTP11, message.StatusOK, c.kv...)
			got, err := message.DateHeader(res, header.LastModified)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("DateHeader() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if !got.Equal(c.want) {
				t.Errorf("DateHeader() = %v, want %v", got, c.want)
			}

			wantOr := c.want
			if c.wantErr != nil {
				wantOr = def
			}
			if got := message.DateHeaderOr(res, header.LastModified, def); !got.Equal(wantOr) {
				t.Errorf("DateHeaderOr() = %v, want %v", got, wantOr)
			}
		})
	}
}

func TestSetDate(t *testing.T) {
	t.Parallel()

	res := message.NewResponse(message.HTTP11, message.StatusOK)
	date := time.Date(2010, 11, 14, 2, 29, 0, 0, time.FixedZone("MSK", 3*60*60))

	if err := message.SetDate(res, date); err != nil {
		t.Fatalf("SetDate() error = %v, want nil", err)
	}
	if v, _ := res.Headers().Get(header.Date); v != "Sat, 13 Nov 2010 23:29:00 GMT" {
		t.Errorf("Date = %q, want %q", v, "Sat, 13 Nov 2010 23:29:00 GMT")
	}
	got, err := message.Date(res)
	if err != nil {
		t.Fatalf("Date() error = %v, want nil", err)
	}
	if !got.Equal(date) {
		t.Errorf("Date() = %v, want %v", got, date)
	}
	if got := message.DateOr(res, time.Time{}); !got.Equal(date) {
		t.Errorf("DateOr() = %v, want %v", got, date)
	}

	if err := message.AddDateHeader(res, header.Expires, date); err != nil {
		t.Fatalf("AddDateHeader() error = %v, want nil", err)
	}
	if err := message.SetDateHeader(res, header.Expires, time.Time{}); err != nil {
		t.Fatalf("SetDateHeader() error = %v, want nil", err)
	}
	if res.Headers().Has(header.Expires) {
		t.Error("Expires is still present after setting a zero time")
	}

	if err := message.SetDate(res, time.Time{}); err != nil {
		t.Fatalf("SetDate() error = %v, want nil", err)
	}
	if _, err := message.Date(res); !errors.Is(err, message.ErrDateParse) {
		t.Errorf("Date() error = %v, want %v", err, message.ErrDateParse)
	}
}

func TestHost(t *testing.T) {
	t.Parallel()

	req := message.NewRequest(message.HTTP11, message.MethodGet, "/")
	if _, ok := message.Host(req); ok {
		t.Error("Host() ok = true, want false")
	}
	if got := message.HostOr(req, "localhost"); got != "localhost" {
		t.Errorf("HostOr() = %q, want %q", got, "localhost")
	}
	if err := message.SetHost(req, "example.com:8080"); err != nil {
		t.Fatalf("SetHost() error = %v, want nil", err)
	}
	if v, ok := message.Host(req); v != "example.com:8080" || !ok {
		t.Errorf("Host() = (%q, %v), want (%q, true)", v, ok, "example.com:8080")
	}
	if err := message.SetHost(req, "bad\nhost"); !errors.Is(err, message.ErrInvalidHeaderValue) {
		t.Errorf("SetHost() error = %v, want %v", err, message.ErrInvalidHeaderValue)
	}
}
