package types

import "github.com/ghettovoice/httphdr/internal/util"

// HTTP request methods.
const (
	RequestMethodConnect RequestMethod = "CONNECT"
	RequestMethodDelete  RequestMethod = "DELETE"
	RequestMethodGet     RequestMethod = "GET"
	RequestMethodHead    RequestMethod = "HEAD"
	RequestMethodOptions RequestMethod = "OPTIONS"
	RequestMethodPatch   RequestMethod = "PATCH"
	RequestMethodPost    RequestMethod = "POST"
	RequestMethodPut     RequestMethod = "PUT"
	RequestMethodTrace   RequestMethod = "TRACE"
)

// RTSP request methods (RFC 2326 Section 10).
const (
	RequestMethodAnnounce     RequestMethod = "ANNOUNCE"
	RequestMethodDescribe     RequestMethod = "DESCRIBE"
	RequestMethodGetParameter RequestMethod = "GET_PARAMETER"
	RequestMethodPause        RequestMethod = "PAUSE"
	RequestMethodPlay         RequestMethod = "PLAY"
	RequestMethodRecord       RequestMethod = "RECORD"
	RequestMethodRedirect     RequestMethod = "REDIRECT"
	RequestMethodSetParameter RequestMethod = "SET_PARAMETER"
	RequestMethodSetup        RequestMethod = "SETUP"
	RequestMethodTeardown     RequestMethod = "TEARDOWN"
)

// RequestMethod is a request method token. Methods are case-sensitive.
type RequestMethod string

func (m RequestMethod) ToUpper() RequestMethod { return util.UCase(m) }

func (m RequestMethod) IsValid() bool {
	if m == "" {
		return false
	}
	for i := 0; i < len(m); i++ {
		c := m[i]
		if c <= ' ' || c >= 0x7f || c == '/' || c == ':' {
			return false
		}
	}
	return true
}

func (m RequestMethod) Equal(val any) bool {
	var other RequestMethod
	switch v := val.(type) {
	case RequestMethod:
		other = v
	case *RequestMethod:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return m == other
}
