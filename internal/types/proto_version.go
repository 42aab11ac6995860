package types

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// ErrInvalidProtoVersion is returned when a protocol version string is malformed.
const ErrInvalidProtoVersion errorutil.Error = "invalid protocol version"

// ProtoVersion describes a text protocol version such as HTTP/1.1 or RTSP/1.0.
type ProtoVersion struct {
	Proto string `json:"proto"`
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	// KeepAliveDefault reports whether connections are persistent
	// when no Connection header says otherwise.
	KeepAliveDefault bool `json:"keep_alive_default"`
}

var (
	HTTP10 = ProtoVersion{Proto: "HTTP", Major: 1, Minor: 0}
	HTTP11 = ProtoVersion{Proto: "HTTP", Major: 1, Minor: 1, KeepAliveDefault: true}
	RTSP10 = ProtoVersion{Proto: "RTSP", Major: 1, Minor: 0, KeepAliveDefault: true}
)

// ParseProtoVersion parses the version from the given input s (string or []byte)
// in the form NAME/MAJOR.MINOR. The protocol name is upper-cased.
// HTTP versions below 1.1 default to close, any other version defaults to keep-alive.
func ParseProtoVersion[T constraints.Byteseq](s T) (ProtoVersion, error) {
	str := util.TrimSP(string(s))
	if str == "" {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidProtoVersion, "empty input"))
	}

	proto, num, ok := strings.Cut(str, "/")
	if !ok || proto == "" || strings.ContainsAny(proto, " \t") {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidProtoVersion, "%q", str))
	}
	majStr, minStr, ok := strings.Cut(num, ".")
	if !ok {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidProtoVersion, "%q", str))
	}
	major, err := parseVersionNum(majStr)
	if err != nil {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidProtoVersion, "%q: %v", str, err))
	}
	minor, err := parseVersionNum(minStr)
	if err != nil {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidProtoVersion, "%q: %v", str, err))
	}

	v := ProtoVersion{Proto: util.UCase(proto), Major: major, Minor: minor}
	v.KeepAliveDefault = v.Proto != "HTTP" || v.Compare(HTTP11) >= 0
	return v, nil
}

func parseVersionNum(s string) (int, error) {
	if s == "" {
		return 0, errtrace.Wrap(errorutil.Error("empty version number"))
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errtrace.Wrap(errorutil.Errorf("unexpected character %q in version number", s[i]))
		}
	}
	return errtrace.Wrap2(strconv.Atoi(s))
}

func (v ProtoVersion) String() string {
	return v.Proto + "/" + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

func (v ProtoVersion) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, v.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(v.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, v.String())
			return
		}

		type hideMethods ProtoVersion
		type ProtoVersion hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ProtoVersion(v))
		return
	}
}

// IsKeepAliveDefault reports whether connections of this version are persistent by default.
func (v ProtoVersion) IsKeepAliveDefault() bool { return v.KeepAliveDefault }

// Compare orders versions by major and minor number, then by protocol name.
func (v ProtoVersion) Compare(other ProtoVersion) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return strings.Compare(util.UCase(v.Proto), util.UCase(other.Proto))
}

func (v ProtoVersion) Equal(val any) bool {
	var other ProtoVersion
	switch o := val.(type) {
	case ProtoVersion:
		other = o
	case *ProtoVersion:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return util.EqFold(v.Proto, other.Proto) &&
		v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.KeepAliveDefault == other.KeepAliveDefault
}

func (v ProtoVersion) IsValid() bool { return v.Proto != "" && v.Major >= 0 && v.Minor >= 0 }

func (v ProtoVersion) IsZero() bool { return v == ProtoVersion{} }

// LogValue implements [slog.LogValuer].
func (v ProtoVersion) LogValue() slog.Value { return slog.StringValue(v.String()) }
