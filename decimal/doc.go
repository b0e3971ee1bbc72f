// Package decimal provides a fixed point base 10 number with 8 fractional
// digits.
//
// The equation for a Fixed8 number is:
//
//  number = value * 10 ^ -8
//
// Where value is the unscaled integer held by the Fixed8. For example:
//
//  1.23456789 = 123456789 * 10^-8
//
// The smallest step (value 1) is a Satoshi.
//
// Encoding
//
// The hex form is the little-endian two's complement encoding of value (see
// package integer). Non-negative values are padded on the right with zeros up
// to 8 bytes (16 hex characters); negative values are left as is.
//
//  | Number     | Value      | Hex              | Big-Endian Hex     |
//  |------------|------------|------------------|--------------------|
//  | 0          | 0          | 0000000000000000 | 0x0000000000000000 |
//  | 0.00000001 | 1          | 0100000000000000 | 0x0000000000000001 |
//  | 1          | 100000000  | 00e1f50500000000 | 0x0000000005f5e100 |
//  | -1         | -100000000 | 001f0afa         | 0xfa0a1f00         |
//  |------------|------------|------------------|--------------------|
//
// Range
//
// MaxValue and MinValue hold the safe integer bounds as values, so every
// Fixed8 between them converts to a float64 count of satoshis exactly.
// Larger values can still be built from an integer.Int but Number will refuse
// them.
package decimal
