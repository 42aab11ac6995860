package header

// Standard HTTP header names.
const (
	Accept                        = "Accept"
	AcceptCharset                 = "Accept-Charset"
	AcceptEncoding                = "Accept-Encoding"
	AcceptLanguage                = "Accept-Language"
	AcceptRanges                  = "Accept-Ranges"
	AcceptPatch                   = "Accept-Patch"
	AccessControlAllowCredentials = "Access-Control-Allow-Credentials"
	AccessControlAllowHeaders     = "Access-Control-Allow-Headers"
	AccessControlAllowMethods     = "Access-Control-Allow-Methods"
	AccessControlAllowOrigin      = "Access-Control-Allow-Origin"
	AccessControlExposeHeaders    = "Access-Control-Expose-Headers"
	AccessControlMaxAge           = "Access-Control-Max-Age"
	AccessControlRequestHeaders   = "Access-Control-Request-Headers"
	AccessControlRequestMethod    = "Access-Control-Request-Method"
	Age                           = "Age"
	Allow                         = "Allow"
	Authorization                 = "Authorization"
	CacheControl                  = "Cache-Control"
	Connection                    = "Connection"
	ContentBase                   = "Content-Base"
	ContentEncoding               = "Content-Encoding"
	ContentLanguage               = "Content-Language"
	ContentLength                 = "Content-Length"
	ContentLocation               = "Content-Location"
	ContentTransferEncoding       = "Content-Transfer-Encoding"
	ContentMD5                    = "Content-MD5"
	ContentRange                  = "Content-Range"
	ContentType                   = "Content-Type"
	Cookie                        = "Cookie"
	Date                          = "Date"
	ETag                          = "ETag"
	Expect                        = "Expect"
	Expires                       = "Expires"
	From                          = "From"
	Host                          = "Host"
	IfMatch                       = "If-Match"
	IfModifiedSince               = "If-Modified-Since"
	IfNoneMatch                   = "If-None-Match"
	IfRange                       = "If-Range"
	IfUnmodifiedSince             = "If-Unmodified-Since"
	LastModified                  = "Last-Modified"
	Location                      = "Location"
	MaxForwards                   = "Max-Forwards"
	Origin                        = "Origin"
	Pragma                        = "Pragma"
	ProxyAuthenticate             = "Proxy-Authenticate"
	ProxyAuthorization            = "Proxy-Authorization"
	Range                         = "Range"
	Referer                       = "Referer"
	RetryAfter                    = "Retry-After"
	SecWebSocketKey1              = "Sec-WebSocket-Key1"
	SecWebSocketKey2              = "Sec-WebSocket-Key2"
	SecWebSocketLocation          = "Sec-WebSocket-Location"
	SecWebSocketOrigin            = "Sec-WebSocket-Origin"
	SecWebSocketProtocol          = "Sec-WebSocket-Protocol"
	SecWebSocketVersion           = "Sec-WebSocket-Version"
	SecWebSocketKey               = "Sec-WebSocket-Key"
	SecWebSocketAccept            = "Sec-WebSocket-Accept"
	Server                        = "Server"
	SetCookie                     = "Set-Cookie"
	SetCookie2                    = "Set-Cookie2"
	TE                            = "TE"
	Trailer                       = "Trailer"
	TransferEncoding              = "Transfer-Encoding"
	Upgrade                       = "Upgrade"
	UserAgent                     = "User-Agent"
	Vary                          = "Vary"
	Via                           = "Via"
	Warning                       = "Warning"
	WebSocketLocation             = "WebSocket-Location"
	WebSocketOrigin               = "WebSocket-Origin"
	WebSocketProtocol             = "WebSocket-Protocol"
	WWWAuthenticate               = "WWW-Authenticate"
)

// RTSP header names not shared with HTTP (RFC 2326 Section 12).
const (
	Bandwidth    = "Bandwidth"
	Blocksize    = "Blocksize"
	Conference   = "Conference"
	CSeq         = "CSeq"
	KeyMgmt      = "KeyMgmt"
	ProxyRequire = "Proxy-Require"
	Public       = "Public"
	Require      = "Require"
	RTPInfo      = "RTP-Info"
	Scale        = "Scale"
	Session      = "Session"
	Speed        = "Speed"
	Timestamp    = "Timestamp"
	Transport    = "Transport"
	Unsupported  = "Unsupported"
)

var knownNames = [...]string{
	Accept, AcceptCharset, AcceptEncoding, AcceptLanguage, AcceptRanges, AcceptPatch,
	AccessControlAllowCredentials, AccessControlAllowHeaders, AccessControlAllowMethods,
	AccessControlAllowOrigin, AccessControlExposeHeaders, AccessControlMaxAge,
	AccessControlRequestHeaders, AccessControlRequestMethod,
	Age, Allow, Authorization, CacheControl, Connection,
	ContentBase, ContentEncoding, ContentLanguage, ContentLength, ContentLocation,
	ContentTransferEncoding, ContentMD5, ContentRange, ContentType,
	Cookie, Date, ETag, Expect, Expires, From, Host,
	IfMatch, IfModifiedSince, IfNoneMatch, IfRange, IfUnmodifiedSince,
	LastModified, Location, MaxForwards, Origin, Pragma,
	ProxyAuthenticate, ProxyAuthorization, Range, Referer, RetryAfter,
	SecWebSocketKey1, SecWebSocketKey2, SecWebSocketLocation, SecWebSocketOrigin,
	SecWebSocketProtocol, SecWebSocketVersion, SecWebSocketKey, SecWebSocketAccept,
	Server, SetCookie, SetCookie2, TE, Trailer, TransferEncoding, Upgrade, UserAgent,
	Vary, Via, Warning, WebSocketLocation, WebSocketOrigin, WebSocketProtocol, WWWAuthenticate,

	Bandwidth, Blocksize, Conference, CSeq, KeyMgmt, ProxyRequire, Public, Require,
	RTPInfo, Scale, Session, Speed, Timestamp, Transport, Unsupported,
}

// knownTokens is built once at init and never mutated afterwards.
var knownTokens = func() map[int32][]Name {
	m := make(map[int32][]Name, len(knownNames))
	for _, s := range knownNames {
		n := MustName(s)
		m[n.hash] = append(m[n.hash], n)
	}
	return m
}()

// Intern returns a token for the header name s without validating it.
// Well-known names spelled exactly as in the catalog share one precomputed token,
// any other spelling gets a fresh one. The casing of s is always kept.
func Intern(s string) Name {
	return intern(s, Hash(s))
}

func intern(s string, hash int32) Name {
	for _, n := range knownTokens[hash] {
		if n.str == s {
			return n
		}
	}
	return Name{str: s, raw: []byte(s), hash: hash}
}

// Known returns the shared token of a well-known header name, matching s ignoring case.
func Known(s string) (Name, bool) {
	h := Hash(s)
	for _, n := range knownTokens[h] {
		if Eq(n.str, s) {
			return n, true
		}
	}
	return Name{}, false
}
