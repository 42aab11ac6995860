package log_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/log"
)

func TestMaskHeaders(t *testing.T) {
	t.Parallel()

	hdrs := header.New()
	hdrs.Add(header.Host, "example.com")        //nolint:errcheck
	hdrs.Add("authorization", "Bearer token")   //nolint:errcheck
	hdrs.Add(header.Cookie, "session=12345678") //nolint:errcheck

	masked := log.MaskHeaders(hdrs)
	want := "Host: example.com\r\nauthorization: ******\r\nCookie: ******\r\n"
	if diff := cmp.Diff(masked.Render(), want); diff != "" {
		t.Errorf("MaskHeaders() unexpected result (-got +want):\n%v", diff)
	}
	if v, _ := hdrs.Get(header.Authorization); v != "Bearer token" {
		t.Errorf("original Authorization = %q, want it untouched", v)
	}

	plain := header.New()
	plain.Add(header.Accept, "*/*") //nolint:errcheck
	if got := log.MaskHeaders(plain); got != plain {
		t.Error("MaskHeaders() copied a collection without secrets")
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{"": true, "def": true, "dev": true, "noop": true, "json": false} {
		logger, ok := log.ByName(name)
		if ok != want || (logger != nil) != want {
			t.Errorf("ByName(%q) = (%v, %v), want ok = %v", name, logger, ok, want)
		}
	}

	log.Noop.Info("dropped", "hdrs", header.Empty())
}
