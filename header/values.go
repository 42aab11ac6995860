package header

// Well-known HTTP header values.
const (
	ValueApplicationXWWWFormURLEncoded = "application/x-www-form-urlencoded"
	ValueBase64                        = "base64"
	ValueBinary                        = "binary"
	ValueBoundary                      = "boundary"
	ValueBytes                         = "bytes"
	ValueCharset                       = "charset"
	ValueChunked                       = "chunked"
	ValueClose                         = "close"
	ValueCompress                      = "compress"
	ValueContinue                      = "100-continue"
	ValueDeflate                       = "deflate"
	ValueGzip                          = "gzip"
	ValueIdentity                      = "identity"
	ValueKeepAlive                     = "keep-alive"
	ValueMaxAge                        = "max-age"
	ValueMaxStale                      = "max-stale"
	ValueMinFresh                      = "min-fresh"
	ValueMultipartFormData             = "multipart/form-data"
	ValueMustRevalidate                = "must-revalidate"
	ValueNoCache                       = "no-cache"
	ValueNoStore                       = "no-store"
	ValueNoTransform                   = "no-transform"
	ValueNone                          = "none"
	ValueOnlyIfCached                  = "only-if-cached"
	ValuePrivate                       = "private"
	ValueProxyRevalidate               = "proxy-revalidate"
	ValuePublic                        = "public"
	ValueQuotedPrintable               = "quoted-printable"
	ValueSMaxAge                       = "s-maxage"
	ValueTrailers                      = "trailers"
	ValueUpgrade                       = "Upgrade"
	ValueWebSocket                     = "WebSocket"
)

// Well-known RTSP header values and Transport parameters.
const (
	ValueAppend      = "append"
	ValueAVP         = "AVP"
	ValueClientPort  = "client_port"
	ValueClock       = "clock"
	ValueDestination = "destination"
	ValueInterleaved = "interleaved"
	ValueLayers      = "layers"
	ValueMode        = "mode"
	ValueMulticast   = "multicast"
	ValuePort        = "port"
	ValueRTP         = "RTP"
	ValueRTPTime     = "rtptime"
	ValueSeq         = "seq"
	ValueServerPort  = "server_port"
	ValueSSRC        = "ssrc"
	ValueTCP         = "TCP"
	ValueTime        = "time"
	ValueTimeout     = "timeout"
	ValueTTL         = "ttl"
	ValueUDP         = "UDP"
	ValueUnicast     = "unicast"
	ValueURL         = "url"
)
