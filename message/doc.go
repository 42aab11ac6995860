// Package message implements the protocol semantics carried by HTTP and RTSP headers:
// connection keep-alive, body length, 100-continue and chunked transfer coding,
// plus typed accessors for integer, date and host headers.
//
// All functions work on the [Message] interface, so they apply to [Request] and [Response]
// of this package as well as to any message type of the caller that exposes its headers
// and protocol version. Rules that depend on the message role (100-continue, legacy
// WebSocket body lengths) check for [RequestMessage] or [ResponseMessage].
//
//	req := message.NewRequest(message.HTTP10, message.MethodGet, "/")
//	message.SetKeepAlive(req, true) // adds "Connection: keep-alive"
//	message.IsKeepAlive(req)        // true
package message

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/msgmock/message.go -package=msgmock . Message,RequestMessage,ResponseMessage
