// Package integer provides an arbitrary precision signed base 10 integer.
//
// An Int is stored as a sign and a magnitude. The magnitude is a sequence of
// decimal digits, least significant digit first:
//
//  -1230 = negative, [0 2 3 1]
//
// Canonical Form
//
// Every Int returned by this package is canonical:
//
//  1. The most significant digit is never zero.
//  2. Zero is the empty digit sequence and is never negative.
//  3. Every digit is between 0 and 9.
//
// The zero value of Int is the number zero and is ready to use.
//
// Arithmetic
//
// Add, Sub and Mul never fail. Quo, Rem and QuoRem fail with
// ErrDivisionByZero when the divisor is zero. Division truncates toward zero
// and the remainder takes the sign of the dividend, matching Go's native
// integer operators:
//
//   7 /  2 =  3    7 %  2 =  1
//  -7 /  2 = -3   -7 %  2 = -1
//   7 / -2 = -3    7 % -2 =  1
//  -7 / -2 =  3   -7 % -2 = -1
//
// Multiplication is the schoolbook digit convolution. Division produces one
// quotient digit per dividend digit by binary searching the digit 0-9.
//
// Storage
//
// Operations never write to the digits of an existing Int. Methods with
// pointer receivers (Set, SetString, Inc, Dec and the decoders) replace the
// receiver's digits with newly allocated storage, so copies of an Int are
// always independent.
//
// Encoding
//
// Text is the grammar:
//
//  ["+" | "-"] digit+
//
// Leading zeros are accepted and dropped. The empty string is zero.
//
// Binary is the magnitude encoded big-endian with a trailing sign bit (aka
// zigzag):
//
//  | magnitude ... | sign |
//
//   0 = 0b0000_0000
//  +1 = 0b0000_0010
//  -1 = 0b0000_0011
package integer
