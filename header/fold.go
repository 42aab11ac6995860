package header

import (
	"math"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Eq reports whether header names a and b are equal ignoring ASCII case.
// Bytes outside of 'A'-'Z' are compared as is.
func Eq[T1, T2 constraints.Byteseq](a T1, b T2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if c1, c2 := a[i], b[i]; c1 != c2 && foldASCII(c1) != foldASCII(c2) {
			return false
		}
	}
	return true
}

// Hash returns a non-negative case-insensitive hash of the header name.
// Names equal by [Eq] always have equal hashes.
//
// Each byte is folded to lower case and accumulated as h = h*31 + c
// with 32-bit wrap-around, then the sign is dropped.
func Hash[T constraints.Byteseq](name T) int32 {
	var h int32
	for i := 0; i < len(name); i++ {
		h = h*31 + int32(foldASCII(name[i]))
	}
	switch {
	case h == math.MinInt32:
		return math.MaxInt32
	case h < 0:
		return -h
	default:
		return h
	}
}
