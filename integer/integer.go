package integer

import "math"

// Int is a signed integer number.
type Int struct {
	digits   []byte
	negative bool
}

// New returns the Int with value v.
func New(v int64) Int {
	if v >= 0 {
		return NewUint64(uint64(v))
	}

	// Note: -math.MinInt64 overflows int64, but the two's complement
	// reinterpretation is exact in uint64.
	var abs uint64
	if v == math.MinInt64 {
		abs = uint64(v)
	} else {
		abs = uint64(-v)
	}

	x := NewUint64(abs)
	x.negative = true

	return x
}

// NewUint64 returns the Int with value v.
func NewUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}

	var buf [20]byte

	n := 0
	for ; v > 0; n++ {
		buf[n] = byte(v % 10)
		v /= 10
	}

	digits := make([]byte, n)
	copy(digits, buf[:n])

	return Int{digits: digits}
}

// Len returns the number of decimal digits in the magnitude of x. Zero has
// no digits.
func (x Int) Len() int {
	return len(x.digits)
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return len(x.digits) == 0
}

// NonZero reports whether x is not zero.
func (x Int) NonZero() bool {
	return len(x.digits) != 0
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.negative:
		return -1
	}

	return 1
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return x.negative
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}

	return Int{
		digits:   x.digits,
		negative: !x.negative,
	}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{digits: x.digits}
}

// Digits returns the decimal digits of |x|, most significant first. Zero has
// no digits.
func (x Int) Digits() []byte {
	ds := make([]byte, len(x.digits))
	for i, d := range x.digits {
		ds[len(ds)-1-i] = d
	}

	return ds
}

// Int64 returns x as an int64. The second result is false if x does not fit.
func (x Int) Int64() (int64, bool) {
	if len(x.digits) > 19 {
		return 0, false
	}

	var u uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		u = u*10 + uint64(x.digits[i])
	}

	if x.negative {
		if u > 1<<63 {
			return 0, false
		}

		return -int64(u), true
	}

	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// Set sets z to a copy of x.
func (z *Int) Set(x Int) {
	z.digits = clone(x.digits)
	z.negative = x.negative
}

// norm returns x in canonical form.
func (x Int) norm() Int {
	x.digits = trim(x.digits)
	if len(x.digits) == 0 {
		x.negative = false
	}

	return x
}

// trim drops the zeros at the most significant end of ds.
func trim(ds []byte) []byte {
	i := len(ds)
	for i > 0 && ds[i-1] == 0 {
		i--
	}

	if i == 0 {
		return nil
	}

	return ds[:i]
}

func clone(ds []byte) []byte {
	if len(ds) == 0 {
		return nil
	}

	c := make([]byte, len(ds))
	copy(c, ds)

	return c
}
