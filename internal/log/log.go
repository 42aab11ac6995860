// Package log provides the loggers used by the examples and tools of this module.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/constraints"
)

// Header values replaced with a mask in log records.
var maskedHeaders = []string{
	header.Authorization,
	header.ProxyAuthorization,
	header.Cookie,
	header.SetCookie,
}

const mask = "******"

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	maskSecrets,
)

// maskSecrets masks credential headers anywhere in the attribute value,
// including headers nested in a logged message.
func maskSecrets(_ []string, attr slog.Attr) (slog.Value, bool) {
	return maskValue(attr.Value)
}

func maskValue(v slog.Value) (slog.Value, bool) {
	if v.Kind() == slog.KindLogValuer {
		if hdrs, ok := v.LogValuer().(*header.Headers); ok {
			masked := MaskHeaders(hdrs)
			return masked.LogValue(), masked != hdrs
		}
		v = v.Resolve()
	}
	if v.Kind() != slog.KindGroup {
		return v, false
	}

	attrs := v.Group()
	out := make([]slog.Attr, len(attrs))
	var changed bool
	for i, a := range attrs {
		if a.Value.Kind() == slog.KindString && isMasked(a.Key) {
			out[i] = slog.String(a.Key, mask)
			changed = true
			continue
		}
		nv, ok := maskValue(a.Value)
		out[i] = slog.Attr{Key: a.Key, Value: nv}
		changed = changed || ok
	}
	if !changed {
		return v, false
	}
	return slog.GroupValue(out...), true
}

func isMasked(name string) bool {
	for _, n := range maskedHeaders {
		if header.Eq(n, name) {
			return true
		}
	}
	return false
}

// MaskHeaders returns a copy of hdrs with credential header values replaced with a mask.
// The original collection is returned as is when it contains nothing to mask.
func MaskHeaders(hdrs *header.Headers) *header.Headers {
	if !slices.ContainsFunc(maskedHeaders, hdrs.Has) {
		return hdrs
	}

	masked := header.New()
	for name, val := range hdrs.All() {
		if isMasked(name.String()) {
			val = mask
		}
		// values were validated when they entered hdrs
		masked.Add(name.String(), val) //nolint:errcheck
	}
	return masked
}

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ByName returns the logger registered under the given name: "def", "dev" or "noop".
func ByName(name string) (*slog.Logger, bool) {
	switch name {
	case "", "def":
		return Def, true
	case "dev":
		return Dev, true
	case "noop":
		return Noop, true
	default:
		return nil, false
	}
}

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
