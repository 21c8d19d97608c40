// Package vsb implements the variable size byte integer encoding.
//
// Values are stored least significant group first. Every byte carries a
// continuation bit (the high bit) followed by 7 payload bits. Unlike LEB128
// each additional byte extends the addressable range instead of re-encoding
// from zero, so every value has exactly one encoding.
//
// Unsigned
//
//  | Bytes | Layout                                  | Value                              |
//  |-------|-----------------------------------------|------------------------------------|
//  | 1     | 0aaa aaaa                               | a                                  |
//  | 2     | 1aaa aaaa 0bbb bbbb                     | 128 + a + b*128                    |
//  | 3     | 1aaa aaaa 1bbb bbbb 0ccc cccc           | 16512 + a + b*128 + c*16384        |
//  | N     | 1aaa aaaa 1bbb bbbb ... 0nnn nnnn       | sum(2^7i, i=1..N-1) + payloads     |
//
// Signed
//
// The first byte gives up bit 6 as the sign flag and only carries 6 payload
// bits:
//
//  | Bytes | Layout                                  | Value                              |
//  |-------|-----------------------------------------|------------------------------------|
//  | 1     | 0saa aaaa                               | a                                  |
//  | 2     | 1saa aaaa 0bbb bbbb                     | 64 + a + b*64                      |
//  | 3     | 1saa aaaa 1bbb bbbb 0ccc cccc           | 8256 + a + b*64 + c*8192           |
//
// When s is set the result is -(value)-1.
//
// The Put functions do not check the length of dst. Callers must provide at
// least MaxLen bytes (or Len(v) bytes when the value is known).
package vsb
