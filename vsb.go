package vsb

import (
	"github.com/calebcase/vsb/control"
)

// MaxLen is the maximum encoded length of a 64 bit value.
const MaxLen = 10

// PutUint64 encodes v into dst and returns the number of bytes written.
func PutUint64(dst []byte, v uint64) int {
	if v <= uint64(control.Last.Mask) {
		dst[0] = byte(v)

		return 1
	}

	// base is the smallest value that needs extra+1 bytes.
	base := uint64(1) << control.PayloadBits
	extra := 1

	for extra < MaxLen-1 {
		next := base + uint64(1)<<(control.PayloadBits*(extra+1))
		if v < next {
			break
		}

		base = next
		extra++
	}

	v -= base

	n := 0
	for ; n < extra; n++ {
		dst[n] = control.ContinuationBit | byte(v)&control.More.Mask
		v >>= control.PayloadBits
	}

	dst[n] = byte(v) & control.Last.Mask

	return n + 1
}

// Uint64 decodes a value from the start of src and returns it with the
// number of bytes consumed.
func Uint64(src []byte) (v uint64, n int) {
	b := src[0]
	v = uint64(control.Last.Payload(b))
	n = 1

	for shift := uint(control.PayloadBits); control.More.Match(b); shift += control.PayloadBits {
		b = src[n]
		n++

		v += uint64(control.Last.Payload(b))<<shift + uint64(1)<<shift
	}

	return v, n
}

// PutInt64 encodes v into dst and returns the number of bytes written.
func PutInt64(dst []byte, v int64) int {
	return PutUint64(dst, fold(v))
}

// Int64 decodes a signed value from the start of src and returns it with the
// number of bytes consumed.
func Int64(src []byte) (v int64, n int) {
	u, n := Uint64(src)

	return unfold(u), n
}

// Len returns the number of bytes PutUint64 writes for v.
func Len(v uint64) int {
	if v <= uint64(control.Last.Mask) {
		return 1
	}

	base := uint64(1) << control.PayloadBits
	n := 2

	for n < MaxLen {
		base += uint64(1) << (control.PayloadBits * n)
		if v < base {
			break
		}

		n++
	}

	return n
}

// LenInt returns the number of bytes PutInt64 writes for v.
func LenInt(v int64) int {
	return Len(fold(v))
}

// AppendUint64 appends the encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [MaxLen]byte

	n := PutUint64(buf[:], v)

	return append(dst, buf[:n]...)
}

// AppendInt64 appends the signed encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	var buf [MaxLen]byte

	n := PutInt64(buf[:], v)

	return append(dst, buf[:n]...)
}

// fold maps a signed value into the unsigned layout: the low 6 bits stay in
// place, the rest moves up one bit and bit 6 holds the sign.
func fold(v int64) uint64 {
	var sign uint64
	if v < 0 {
		v = -(v + 1)
		sign = uint64(control.SignFlag)
	}

	u := uint64(v)
	low := uint64(1)<<control.SignedPayloadBits - 1

	return u&low | (u&^low)<<1 | sign
}

// unfold reverses fold.
func unfold(u uint64) int64 {
	low := uint64(1)<<control.SignedPayloadBits - 1
	m := u&low | (u&^(low|uint64(control.SignFlag)))>>1

	if u&uint64(control.SignFlag) != 0 {
		return -int64(m) - 1
	}

	return int64(m)
}
