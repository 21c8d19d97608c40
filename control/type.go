package control

// Type is the kind of an encoded byte.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// Payload returns the data bits of b.
func (t Type) Payload(b byte) byte {
	return b & t.Mask
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Bit layout.
const (
	ContinuationBit   byte = 0b_1000_0000
	SignFlag          byte = 0b_0100_0000
	SignedPayloadMask byte = 0b_0011_1111

	PayloadBits       = 7
	SignedPayloadBits = 6
)

var (
	Unknown = Type{}
	More    = Type{0b_1000_0000, 0b_0111_1111, "m"}
	Last    = Type{0b_0000_0000, 0b_0111_1111, "l"}

	Types = types{
		More,
		Last,
	}
)
