package message

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
)

// IsKeepAlive reports whether the connection of the message stays open after it.
//
// "Connection: close" always closes the connection. Otherwise versions that default
// to keep-alive (HTTP/1.1, RTSP/1.0) keep the connection, and versions that default to
// close (HTTP/1.0) keep it only with "Connection: keep-alive".
func IsKeepAlive(m Message) bool {
	conn, ok := m.Headers().Get(header.Connection)
	if ok && header.Eq(conn, header.ValueClose) {
		return false
	}
	if m.ProtoVersion().IsKeepAliveDefault() {
		return true
	}
	return ok && header.Eq(conn, header.ValueKeepAlive)
}

// SetKeepAlive updates the Connection header so that [IsKeepAlive] reports keepAlive.
// The header is removed when the version default already gives the wanted behavior.
func SetKeepAlive(m Message, keepAlive bool) error {
	hdrs := m.Headers()
	if m.ProtoVersion().IsKeepAliveDefault() {
		if keepAlive {
			return errtrace.Wrap(hdrs.Remove(header.Connection))
		}
		return errtrace.Wrap(hdrs.Set(header.Connection, header.ValueClose))
	}
	if keepAlive {
		return errtrace.Wrap(hdrs.Set(header.Connection, header.ValueKeepAlive))
	}
	return errtrace.Wrap(hdrs.Remove(header.Connection))
}

// ContentLength returns the body length of the message.
//
// The Content-Length header is parsed as a base-10 integer. Without it, the legacy
// WebSocket handshake (Hixie-76) implies the length: 8 for a GET request with both
// Sec-WebSocket-Key1 and Sec-WebSocket-Key2, 16 for a 101 response with both
// Sec-WebSocket-Origin and Sec-WebSocket-Location.
// Otherwise, or if the value is malformed, it returns an error wrapping [ErrNumberFormat].
func ContentLength(m Message) (int64, error) {
	if v, ok := m.Headers().Get(header.ContentLength); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errtrace.Wrap(newNumberFormatError("%s: %q", header.ContentLength, v))
		}
		return n, nil
	}
	if n, ok := webSocketContentLength(m); ok {
		return n, nil
	}
	return 0, errtrace.Wrap(newNumberFormatError("header %q not found", header.ContentLength))
}

// ContentLengthOr is like [ContentLength] but returns def instead of an error.
func ContentLengthOr(m Message, def int64) int64 {
	n, err := ContentLength(m)
	if err != nil {
		return def
	}
	return n
}

func webSocketContentLength(m Message) (int64, bool) {
	hdrs := m.Headers()
	switch m := m.(type) {
	case RequestMessage:
		if m.Method().Equal(MethodGet) &&
			hdrs.Has(header.SecWebSocketKey1) &&
			hdrs.Has(header.SecWebSocketKey2) {
			return 8, true
		}
	case ResponseMessage:
		if m.Status() == StatusSwitchingProtocols &&
			hdrs.Has(header.SecWebSocketOrigin) &&
			hdrs.Has(header.SecWebSocketLocation) {
			return 16, true
		}
	}
	return 0, false
}

// SetContentLength sets the Content-Length header.
func SetContentLength(m Message, n int64) error {
	return errtrace.Wrap(m.Headers().Set(header.ContentLength, n))
}

// IsContentLengthSet reports whether the message has the Content-Length header.
func IsContentLengthSet(m Message) bool {
	return m.Headers().Has(header.ContentLength)
}

// Is100ContinueExpected reports whether the message is a request of version 1.1 or later
// with any Expect header equal to "100-continue" ignoring case.
func Is100ContinueExpected(m Message) bool {
	if _, ok := m.(RequestMessage); !ok {
		return false
	}
	if m.ProtoVersion().Compare(HTTP11) < 0 {
		return false
	}
	return m.Headers().HasValue(header.Expect, header.ValueContinue, true)
}

// Set100ContinueExpected replaces all Expect headers with a single "100-continue"
// if set is true, or removes them otherwise.
func Set100ContinueExpected(m Message, set bool) error {
	if set {
		return errtrace.Wrap(m.Headers().Set(header.Expect, header.ValueContinue))
	}
	return errtrace.Wrap(m.Headers().Remove(header.Expect))
}

// IsTransferEncodingChunked reports whether any Transfer-Encoding value is "chunked" ignoring case.
func IsTransferEncodingChunked(m Message) bool {
	return m.Headers().HasValue(header.TransferEncoding, header.ValueChunked, true)
}

// SetTransferEncodingChunked appends "chunked" to Transfer-Encoding and removes Content-Length.
func SetTransferEncodingChunked(m Message) error {
	hdrs := m.Headers()
	if err := hdrs.Add(header.TransferEncoding, header.ValueChunked); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(hdrs.Remove(header.ContentLength))
}

// RemoveTransferEncodingChunked removes the "chunked" values of Transfer-Encoding.
// The header is removed entirely if no other values remain.
func RemoveTransferEncodingChunked(m Message) error {
	hdrs := m.Headers()
	vals := hdrs.Values(header.TransferEncoding)
	if len(vals) == 0 {
		return nil
	}

	rest := make([]any, 0, len(vals))
	for _, v := range vals {
		if !header.Eq(v, header.ValueChunked) {
			rest = append(rest, v)
		}
	}
	if len(rest) == 0 {
		return errtrace.Wrap(hdrs.Remove(header.TransferEncoding))
	}
	return errtrace.Wrap(hdrs.SetValues(header.TransferEncoding, rest...))
}
