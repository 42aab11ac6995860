package message

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/types"
)

// Version is a protocol version of a message.
// See [types.ProtoVersion].
type Version = types.ProtoVersion

// Predefined protocol versions.
var (
	HTTP10 = types.HTTP10
	HTTP11 = types.HTTP11
	RTSP10 = types.RTSP10
)

// ParseVersion parses a protocol version in the form NAME/MAJOR.MINOR, e.g. "HTTP/1.1".
// The protocol name is upper-cased. HTTP versions before 1.1 default to close,
// all other versions default to keep-alive.
func ParseVersion[T constraints.Byteseq](s T) (Version, error) {
	return errtrace.Wrap2(types.ParseProtoVersion(s))
}
