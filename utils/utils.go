package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Formatting
///////////////////////////////////////////////////////////////////////////////

// Itoa formats n in base 10 using a fixed stack buffer.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Hex Encoding — Fingerprint Rendering
///////////////////////////////////////////////////////////////////////////////

const hexDigits = "0123456789abcdef"

// AppendHex appends the lowercase hex form of src to dst.
//
//go:nosplit
//go:inline
func AppendHex(dst, src []byte) []byte {
	for _, c := range src {
		dst = append(dst, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return dst
}

///////////////////////////////////////////////////////////////////////////////
// Hash & Mixers
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Used to spread a user seed across both PCG words.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics Output — Direct fd 2 Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg to stderr with a raw write(2); no formatting and
// no heap traffic. Short writes and errors are ignored.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = syscall.Write(2, unsafe.Slice(unsafe.StringData(msg), len(msg)))
}
