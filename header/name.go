package header

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"
)

// Name is an immutable header name token.
// It keeps the name bytes and the case-insensitive hash computed once at construction,
// so lookups and wire encoding never rescan or re-validate the name.
//
// Names are plain values and may be copied and shared between goroutines.
type Name struct {
	str  string
	raw  []byte
	hash int32
}

// NewName validates s and returns a new token for it.
func NewName(s string) (Name, error) {
	if err := ValidateName(s); err != nil {
		return Name{}, errtrace.Wrap(err)
	}
	return newName(s), nil
}

// MustName is like [NewName] but panics if s is not a valid header name.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func newName(s string) Name {
	return Name{str: s, raw: []byte(s), hash: Hash(s)}
}

func (n Name) String() string { return n.str }

// Hash returns the precomputed case-insensitive hash of the name.
func (n Name) Hash() int32 { return n.hash }

func (n Name) Len() int { return len(n.raw) }

func (n Name) IsZero() bool { return n.str == "" }

func (n Name) IsValid() bool { return ValidateName(n.str) == nil }

// Equal reports whether the name is equal to val ignoring ASCII case.
// val may be a [Name], *[Name], string or []byte.
func (n Name) Equal(val any) bool {
	switch v := val.(type) {
	case Name:
		return n.hash == v.hash && Eq(n.str, v.str)
	case *Name:
		if v == nil {
			return false
		}
		return n.hash == v.hash && Eq(n.str, v.str)
	case string:
		return Eq(n.str, v)
	case []byte:
		return Eq(n.str, v)
	default:
		return false
	}
}

// WriteTo writes the name bytes to w as they are.
// The name was validated when the token was built.
func (n Name) WriteTo(w io.Writer) (int64, error) {
	num, err := w.Write(n.raw)
	return int64(num), errtrace.Wrap(err)
}

// AppendTo appends the name bytes to b.
func (n Name) AppendTo(b []byte) []byte { return append(b, n.raw...) }

// LogValue implements [slog.LogValuer].
func (n Name) LogValue() slog.Value { return slog.StringValue(n.str) }

// match is the lookup fast path: the hash of name is computed by the caller once.
func (n Name) match(hash int32, name string) bool {
	return n.hash == hash && Eq(n.str, name)
}
