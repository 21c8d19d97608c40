package integer

import (
	"errors"
	"io"
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/vsb"
	"github.com/calebcase/vsb/control"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is an integer in folded form. For signed values the integer is
// -(Value)-1 when Negative is set and Value otherwise.
type Block struct {
	Value    uint64
	Negative bool
}

// FromUint64 returns the block for an unsigned value.
func FromUint64(v uint64) Block {
	return Block{Value: v}
}

// FromInt64 returns the block for a signed value.
func FromInt64(v int64) Block {
	if v < 0 {
		return Block{
			Value:    uint64(-(v + 1)),
			Negative: true,
		}
	}

	return Block{Value: uint64(v)}
}

// Uint64 returns the unsigned value of the block.
func (b Block) Uint64() (uint64, error) {
	if b.Negative {
		return 0, Error.New("negative value: -%d-1", b.Value)
	}

	return b.Value, nil
}

// Int64 returns the signed value of the block.
func (b Block) Int64() (int64, error) {
	if b.Value > math.MaxInt64 {
		return 0, Error.New("value out of range: %d", b.Value)
	}

	if b.Negative {
		return -int64(b.Value) - 1, nil
	}

	return int64(b.Value), nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the signed layout.
func (b Block) MarshalBinary() (data []byte, err error) {
	v, err := b.Int64()
	if err != nil {
		return nil, err
	}

	return vsb.AppendInt64(nil, v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the signed
// layout. The data must hold exactly one value.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	size, err := scan(data)
	if err != nil {
		return err
	}

	if size != len(data) {
		return Error.New("trailing data: size=%d len=%d", size, len(data))
	}

	err = overflow(data)
	if err != nil {
		return err
	}

	v, _ := vsb.Int64(data)
	*b = FromInt64(v)

	return nil
}

// scan returns the length of the value at the start of data without
// decoding it.
func scan(data []byte) (size int, err error) {
	for i, c := range data {
		if i >= vsb.MaxLen {
			return 0, Error.New("value too long: max=%d", vsb.MaxLen)
		}

		if control.Last.Match(c) {
			return i + 1, nil
		}
	}

	return 0, Error.Wrap(io.ErrUnexpectedEOF)
}

// overflow returns an error if the complete value in data does not fit in 64
// bits. Only MaxLen byte values can overflow and when they do the decoded
// result wraps below the range of MaxLen byte values.
func overflow(data []byte) error {
	if len(data) < vsb.MaxLen {
		return nil
	}

	u, _ := vsb.Uint64(data)
	if data[vsb.MaxLen-1] != 0 || vsb.Len(u) != vsb.MaxLen {
		return Error.New("value overflows 64 bits")
	}

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	r      io.ByteReader
	buf    [vsb.MaxLen]byte
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, r io.ByteReader) *Decoder {
	return &Decoder{
		schema: schema,
		r:      r,
	}
}

// Decode reads one value into b and returns the number of bytes consumed.
// It returns io.EOF if the reader is exhausted before the first byte.
func (d *Decoder) Decode(b *Block) (n int, err error) {
	for {
		if n >= vsb.MaxLen {
			return n, Error.New("value too long: max=%d", vsb.MaxLen)
		}

		c, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, io.EOF
				}

				err = io.ErrUnexpectedEOF
			}

			return n, Error.Wrap(err)
		}

		d.buf[n] = c
		n++

		if control.Last.Match(c) {
			break
		}
	}

	err = overflow(d.buf[:n])
	if err != nil {
		return n, err
	}

	if d.schema.Signed {
		v, _ := vsb.Int64(d.buf[:n])
		*b = FromInt64(v)
	} else {
		v, _ := vsb.Uint64(d.buf[:n])
		*b = FromUint64(v)
	}

	return n, nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	w      io.Writer
	buf    [vsb.MaxLen]byte
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, w io.Writer) *Encoder {
	return &Encoder{
		schema: schema,
		w:      w,
	}
}

// Encode writes b to the writer and returns the number of bytes written.
func (e *Encoder) Encode(b *Block) (n int, err error) {
	defer Error.WrapP(&err)

	if e.schema.Signed {
		v, err := b.Int64()
		if err != nil {
			return 0, err
		}

		n = vsb.PutInt64(e.buf[:], v)
	} else {
		v, err := b.Uint64()
		if err != nil {
			return 0, err
		}

		n = vsb.PutUint64(e.buf[:], v)
	}

	return e.w.Write(e.buf[:n])
}
