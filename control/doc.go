// Package control describes the bytes of a variable size byte sequence.
//
// Every byte is either a More byte (continuation bit set, another byte
// follows) or a Last byte (continuation bit clear, the value ends here). The
// remaining 7 bits are payload.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type |                          |
//  |---|---------------------------||------|--------------------------|
//  | 1 |                           || More | 2^7 = 128 payload values |
//  | 0 |                           || Last | 2^7 = 128 payload values |
//  |---|---------------------------||------|--------------------------|
//
// In the signed layout the first byte of a value reserves bit 1 (0x40) as the
// sign flag and carries 6 payload bits:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---|-----------------------|
//  | c | s |                       |
//  |---|---|-----------------------|
//
// Describe splits a buffer of back to back encodings into fields so that the
// layout of each value can be inspected.
package control
