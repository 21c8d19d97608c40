package control

import (
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("control")

// Field is a single encoded value within a buffer.
type Field struct {
	Offset int
	Bytes  []byte
	Types  []Type

	// Negative is the sign flag of the first byte. It is only set when the
	// buffer was described with the signed layout.
	Negative bool
}

// Abbr returns the type abbreviations of the field's bytes joined with
// commas.
func (f Field) Abbr() string {
	s := ""

	for i, t := range f.Types {
		if i > 0 {
			s += ","
		}

		s += t.Abbr
	}

	return s
}

// Describe splits data into fields. It returns an error if data ends in the
// middle of a value or a value is longer than maxLen bytes.
func Describe(data []byte, signed bool, maxLen int) (fields []Field, err error) {
	start := 0

	for start < len(data) {
		f := Field{
			Offset: start,
		}

		if signed {
			f.Negative = data[start]&SignFlag != 0
		}

		i := start
		for {
			if i >= len(data) {
				return fields, Error.New(
					"truncated value: offset=%d size=%d",
					start,
					len(data)-start,
				)
			}

			if i-start >= maxLen {
				return fields, Error.New(
					"value too long: offset=%d max=%d",
					start,
					maxLen,
				)
			}

			t, _ := Types.Match(data[i])
			f.Types = append(f.Types, t)
			i++

			if t == Last {
				break
			}
		}

		f.Bytes = data[start:i]
		fields = append(fields, f)
		start = i
	}

	return fields, nil
}
