package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errtrace.Wrap(errors.New("write failed"))
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errtrace.Wrap(errors.New("write failed"))
	}
	return n, nil
}

type stringWriterTo string

func (s stringWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), errtrace.Wrap(err)
}

type failingWriterTo struct{}

func (failingWriterTo) WriteTo(io.Writer) (int64, error) {
	return 0, errtrace.Wrap(errors.New("encode error"))
}

func TestCountingWriter_Write(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	n, err := cw.Write([]byte("Host"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes written, got %d", n)
	}
	n, err = cw.Write([]byte(": example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 13 {
		t.Errorf("expected 13 bytes written, got %d", n)
	}
	if num, _ := cw.Result(); num != 17 {
		t.Errorf("expected count 17, got %d", num)
	}
	if buf.String() != "Host: example.com" {
		t.Errorf("expected 'Host: example.com', got %q", buf.String())
	}
}

func TestCountingWriter_WriteString(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	n, err := cw.WriteString("\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes written, got %d", n)
	}
	if num, _ := cw.Result(); num != 2 {
		t.Errorf("expected count 2, got %d", num)
	}
}

func TestCountingWriter_Copy(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	cw.Copy(stringWriterTo("Content-Length")).Copy(stringWriterTo(": 42"))
	num, err := cw.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 18 {
		t.Errorf("expected 18 bytes written, got %d", num)
	}
	if buf.String() != "Content-Length: 42" {
		t.Errorf("expected 'Content-Length: 42', got %q", buf.String())
	}
}

func TestCountingWriter_CopyErrorStopsChain(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	cw.Copy(stringWriterTo("a")).Copy(failingWriterTo{}).Copy(stringWriterTo("b"))
	num, err := cw.Result()
	if err == nil {
		t.Fatal("expected error from chain")
	}
	if num != 1 {
		t.Errorf("expected 1 byte written before error, got %d", num)
	}
	if buf.String() != "a" {
		t.Errorf("expected 'a', got %q", buf.String())
	}
}

func TestCountingWriter_ErrorPropagation(t *testing.T) {
	t.Parallel()

	ew := &errorWriter{failAfter: 5}
	cw := ioutil.GetCountingWriter(ew)
	defer ioutil.FreeCountingWriter(cw)

	if _, err := cw.WriteString("Allow"); err != nil {
		t.Fatalf("unexpected error on first write: %v", err)
	}
	if n, err := cw.WriteString(": GET"); err == nil {
		t.Fatal("expected error on second write")
	} else if n != 0 {
		t.Errorf("expected 0 bytes written on error, got %d", n)
	}
	// the error sticks
	if _, err := cw.Write([]byte("x")); err == nil {
		t.Fatal("expected cached error")
	}
	num, err := cw.Result()
	if err == nil {
		t.Error("cw.Result() error = nil, want error")
	}
	if num != 5 {
		t.Errorf("expected count 5, got %d", num)
	}
}

func TestCountingWriter_Pool(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(&errorWriter{failAfter: 0})
	cw.WriteString("Date") //nolint:errcheck
	if num, err := cw.Result(); num != 0 || err == nil {
		t.Errorf("cw.Result() = (%d, %v), want (0, error)", num, err)
	}
	ioutil.FreeCountingWriter(cw)

	buf := &bytes.Buffer{}
	cw = ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)
	if num, err := cw.Result(); num != 0 || err != nil {
		t.Errorf("reused cw.Result() = (%d, %v), want (0, nil)", num, err)
	}
	cw.WriteString("Date") //nolint:errcheck
	if num, err := cw.Result(); num != 4 || err != nil {
		t.Errorf("cw.Result() = (%d, %v), want (4, nil)", num, err)
	}
	if buf.String() != "Date" {
		t.Errorf("expected 'Date', got %q", buf.String())
	}
}
