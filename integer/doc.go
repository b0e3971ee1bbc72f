// Package integer provides an immutable arbitrary precision signed integer
// with the byte and string encodings of a C# style BigInteger.
//
// Byte Encoding
//
// The canonical wire format is little-endian two's complement using the
// fewest bytes that can hold the value and its sign. The most significant bit
// of the last byte is always the sign bit. Positive values whose natural top
// byte has that bit set carry an extra zero byte so they are not misread as
// negative:
//
//  |        Value | Bytes (little-endian)    | Hex (big-endian) |
//  |--------------|--------------------------|------------------|
//  |            0 | 00                       | 0x00             |
//  |          127 | 7f                       | 0x7f             |
//  |          128 | 80 00                    | 0x0080           |
//  |          256 | 00 01                    | 0x0100           |
//  |           -1 | ff                       | 0xff             |
//  |         -128 | 80                       | 0x80             |
//  |         -129 | 7f ff                    | 0xff7f           |
//  |         -256 | 00 ff                    | 0xff00           |
//  |         -257 | ff fe                    | 0xfeff           |
//  |     -1000000 | c0 bd f0                 | 0xf0bdc0         |
//  |   4293967296 | c0 bd f0 ff 00           | 0x00fff0bdc0     |
//  |--------------|--------------------------|------------------|
//
// Text Encoding
//
// Base 16 text is always big-endian and is written with a "0x" prefix. When
// parsing, the prefix is optional and the same sign bit rule applies: "fb" is
// -5 while "00fb" is 251. A single hex digit is read as an unsigned value.
//
// Base 10 and base 2 text are the usual signed digit strings.
//
// Parsing is lenient. Characters that can't belong to a number in the
// requested base are dropped before the digits are read (see Sanitize), so
// "1,000,000" parses as one million. An empty result is zero.
//
// Native Numbers
//
// Conversions from and to float64 are limited to the safe integer range
// [MinSafeInteger, MaxSafeInteger] where every integer has an exact float64
// representation. Values outside of it produce an UnsafeError instead of
// silently losing precision.
package integer
