package message

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Message is the minimal view of an HTTP or RTSP message needed by the header semantics of this package.
type Message interface {
	// Headers returns the mutable header collection of the message.
	Headers() *header.Headers
	// ProtoVersion returns the protocol version of the message.
	ProtoVersion() Version
}

// RequestMessage is a request [Message].
type RequestMessage interface {
	Message
	Method() Method
}

// ResponseMessage is a response [Message].
type ResponseMessage interface {
	Message
	Status() Status
}

// Method is a request method.
// See [types.RequestMethod].
type Method = types.RequestMethod

// Request method constants.
const (
	MethodConnect = types.RequestMethodConnect
	MethodDelete  = types.RequestMethodDelete
	MethodGet     = types.RequestMethodGet
	MethodHead    = types.RequestMethodHead
	MethodOptions = types.RequestMethodOptions
	MethodPatch   = types.RequestMethodPatch
	MethodPost    = types.RequestMethodPost
	MethodPut     = types.RequestMethodPut
	MethodTrace   = types.RequestMethodTrace

	MethodAnnounce     = types.RequestMethodAnnounce
	MethodDescribe     = types.RequestMethodDescribe
	MethodGetParameter = types.RequestMethodGetParameter
	MethodPause        = types.RequestMethodPause
	MethodPlay         = types.RequestMethodPlay
	MethodRecord       = types.RequestMethodRecord
	MethodRedirect     = types.RequestMethodRedirect
	MethodSetParameter = types.RequestMethodSetParameter
	MethodSetup        = types.RequestMethodSetup
	MethodTeardown     = types.RequestMethodTeardown
)

// Status is a response status code.
// See [types.ResponseStatus].
type Status = types.ResponseStatus

// Reason is a response reason phrase.
// See [types.ResponseReason].
type Reason = types.ResponseReason

// Frequently used status codes.
// See [types.ResponseStatus] for the complete list.
const (
	StatusContinue            = types.ResponseStatusContinue
	StatusSwitchingProtocols  = types.ResponseStatusSwitchingProtocols
	StatusOK                  = types.ResponseStatusOK
	StatusNoContent           = types.ResponseStatusNoContent
	StatusMovedPermanently    = types.ResponseStatusMovedPermanently
	StatusNotModified         = types.ResponseStatusNotModified
	StatusBadRequest          = types.ResponseStatusBadRequest
	StatusNotFound            = types.ResponseStatusNotFound
	StatusLengthRequired      = types.ResponseStatusLengthRequired
	StatusExpectationFailed   = types.ResponseStatusExpectationFailed
	StatusSessionNotFound     = types.ResponseStatusSessionNotFound
	StatusInternalServerError = types.ResponseStatusInternalServerError
	StatusVersionNotSupported = types.ResponseStatusVersionNotSupported
)

// Request is a request message head: the request line and the headers.
type Request struct {
	method  Method
	uri     string
	version Version
	headers *header.Headers
}

// NewRequest creates a request with an empty mutable header collection.
func NewRequest(version Version, method Method, uri string) *Request {
	return &Request{
		method:  method,
		uri:     uri,
		version: version,
		headers: header.New(),
	}
}

// Method returns the request method.
func (req *Request) Method() Method {
	if req == nil {
		return ""
	}
	return req.method
}

// URI returns the request target.
func (req *Request) URI() string {
	if req == nil {
		return ""
	}
	return req.uri
}

// ProtoVersion returns the protocol version of the request.
func (req *Request) ProtoVersion() Version {
	if req == nil {
		return Version{}
	}
	return req.version
}

// Headers returns the request headers.
// A nil request returns the read-only [header.Empty] collection.
func (req *Request) Headers() *header.Headers {
	if req == nil {
		return header.Empty()
	}
	return req.headers
}

// WriteTo writes the request line followed by the headers and the empty line to w.
func (req *Request) WriteTo(w io.Writer) (int64, error) {
	if req == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(req.startLine())
	cw.WriteString("\r\n")
	cw.Copy(req.headers)
	cw.WriteString("\r\n")
	return errtrace.Wrap2(cw.Result())
}

func (req *Request) startLine() string {
	return string(req.method) + " " + req.uri + " " + req.version.String()
}

// Render returns the wire form of the request head.
func (req *Request) Render() string {
	if req == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	req.WriteTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the request line.
func (req *Request) String() string {
	if req == nil {
		return "<nil>"
	}
	return req.startLine()
}

// Format implements [fmt.Formatter] for custom formatting.
func (req *Request) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			req.WriteTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, req.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(req.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(req.String()))
		return
	default:
		type hideMethods Request
		type Request hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Request)(req))
		return
	}
}

// LogValue implements [slog.LogValuer] for structured logging.
func (req *Request) LogValue() slog.Value {
	if req == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("method", string(req.method)),
		slog.String("uri", req.uri),
		slog.Any("version", req.version),
		slog.Any("headers", req.headers),
	)
}

// Clone returns a deep copy of the request.
func (req *Request) Clone() *Request {
	if req == nil {
		return nil
	}
	req2 := *req
	req2.headers = req.headers.Clone()
	return &req2
}

// Response is a response message head: the status line and the headers.
type Response struct {
	status  Status
	reason  Reason
	version Version
	headers *header.Headers
}

// NewResponse creates a response with the standard reason phrase of status
// and an empty mutable header collection.
func NewResponse(version Version, status Status) *Response {
	return &Response{
		status:  status,
		reason:  status.Reason(),
		version: version,
		headers: header.New(),
	}
}

// Status returns the response status code.
func (res *Response) Status() Status {
	if res == nil {
		return 0
	}
	return res.status
}

// Reason returns the reason phrase.
func (res *Response) Reason() Reason {
	if res == nil {
		return ""
	}
	return res.reason
}

// SetReason replaces the reason phrase.
func (res *Response) SetReason(reason Reason) {
	if res == nil {
		return
	}
	res.reason = reason
}

// ProtoVersion returns the protocol version of the response.
func (res *Response) ProtoVersion() Version {
	if res == nil {
		return Version{}
	}
	return res.version
}

// Headers returns the response headers.
// A nil response returns the read-only [header.Empty] collection.
func (res *Response) Headers() *header.Headers {
	if res == nil {
		return header.Empty()
	}
	return res.headers
}

// WriteTo writes the status line followed by the headers and the empty line to w.
func (res *Response) WriteTo(w io.Writer) (int64, error) {
	if res == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(res.startLine())
	cw.WriteString("\r\n")
	cw.Copy(res.headers)
	cw.WriteString("\r\n")
	return errtrace.Wrap2(cw.Result())
}

func (res *Response) startLine() string {
	return res.version.String() + " " + strconv.FormatUint(uint64(res.status), 10) + " " + string(res.reason)
}

// Render returns the wire form of the response head.
func (res *Response) Render() string {
	if res == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	res.WriteTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the status line.
func (res *Response) String() string {
	if res == nil {
		return "<nil>"
	}
	return res.startLine()
}

// Format implements [fmt.Formatter] for custom formatting.
func (res *Response) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			res.WriteTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, res.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(res.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(res.String()))
		return
	default:
		type hideMethods Response
		type Response hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Response)(res))
		return
	}
}

// LogValue implements [slog.LogValuer] for structured logging.
func (res *Response) LogValue() slog.Value {
	if res == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Any("status", uint(res.status)),
		slog.String("reason", string(res.reason)),
		slog.Any("version", res.version),
		slog.Any("headers", res.headers),
	)
}

// Clone returns a deep copy of the response.
func (res *Response) Clone() *Response {
	if res == nil {
		return nil
	}
	res2 := *res
	res2.headers = res.headers.Clone()
	return &res2
}
