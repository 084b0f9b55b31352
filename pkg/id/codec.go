package id

import (
	"errors"
	"fmt"
)

// encodedLen is the length of the canonical textual form: the smallest digit
// count covering 128 bits, since 36^24 < 2^128 < 36^25.
const encodedLen = 25

// alphabet is the canonical lowercase base-36 digit set.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ErrParse reports a malformed textual representation.
var ErrParse = errors.New("id: invalid string representation")

// digitValues maps an ASCII byte to its base-36 value, case-insensitively;
// 0xff marks invalid bytes.
var digitValues [256]byte

func init() {
	for i := range digitValues {
		digitValues[i] = 0xff
	}
	for v, c := range []byte(alphabet) {
		digitValues[c] = byte(v)
	}
	for v, c := range []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		digitValues[c] = byte(10 + v)
	}
}

// encodeBase36 expands 16 big-endian bytes into 25 lowercase base-36 digits.
// The input is folded in 32-bit chunks, each multiply-accumulated across the
// digit buffer with 64-bit carries, so no intermediate exceeds a word.
func encodeBase36(src []byte) []byte {
	out := make([]byte, encodedLen)
	for i := 0; i < 16; i += 4 {
		carry := uint64(src[i])<<24 | uint64(src[i+1])<<16 | uint64(src[i+2])<<8 | uint64(src[i+3])
		// out = out * 2^32 + chunk
		for j := encodedLen - 1; j >= 0; j-- {
			carry += uint64(out[j]) << 32
			out[j] = byte(carry % 36)
			carry /= 36
		}
	}
	for j, d := range out {
		out[j] = alphabet[d]
	}
	return out
}

// decodeBase36 converts 25 base-36 digit values (not ASCII) into 16
// big-endian bytes. The digits are folded MSB-first in five-digit groups,
// each multiply-accumulated across the byte buffer with 64-bit carries. It
// reports false when the value exceeds 2^128-1, which leftover carry from the
// most significant group signals.
func decodeBase36(digits []byte) ([16]byte, bool) {
	const groupBase = 36 * 36 * 36 * 36 * 36
	var out [16]byte
	for g := 0; g < encodedLen; g += 5 {
		group := uint64(0)
		for _, d := range digits[g : g+5] {
			group = group*36 + uint64(d)
		}
		// out = out * 36^5 + group
		carry := group
		for i := 15; i >= 0; i-- {
			carry += uint64(out[i]) * groupBase
			out[i] = byte(carry)
			carry >>= 8
		}
		if carry != 0 {
			return out, false
		}
	}
	return out, true
}

// Parse decodes the 25-character base-36 textual form, accepting any mix of
// upper- and lowercase digits. It returns ErrParse on any other length,
// non-digit byte, or a magnitude beyond 128 bits.
func Parse(s string) (ID, error) {
	if len(s) != encodedLen {
		return ID{}, fmt.Errorf("%w: %d characters, want %d", ErrParse, len(s), encodedLen)
	}
	var digits [encodedLen]byte
	for j := 0; j < encodedLen; j++ {
		d := digitValues[s[j]]
		if d == 0xff {
			return ID{}, fmt.Errorf("%w: invalid digit %q at position %d", ErrParse, s[j], j)
		}
		digits[j] = d
	}
	b, ok := decodeBase36(digits[:])
	if !ok {
		return ID{}, fmt.Errorf("%w: value exceeds 128 bits", ErrParse)
	}
	return ID(b), nil
}
