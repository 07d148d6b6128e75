package integer

import (
	"math/big"
)

// Big returns x as a big.Int.
func (x Int) Big() *big.Int {
	i := new(big.Int)
	if x.IsZero() {
		return i
	}

	// The digits are canonical so SetString cannot fail.
	i.SetString(string(x.text()), 10)
	if x.negative {
		i.Neg(i)
	}

	return i
}

// NewBig returns the Int with the value of i.
func NewBig(i *big.Int) Int {
	text := i.Append(nil, 10)

	x := Int{}
	if len(text) > 0 && text[0] == '-' {
		x.negative = true
		text = text[1:]
	}

	x.digits = make([]byte, len(text))
	for j, c := range text {
		x.digits[len(text)-1-j] = c - '0'
	}

	return x.norm()
}

// text returns the digits of |x| as ASCII, most significant first.
func (x Int) text() []byte {
	ds := x.Digits()
	for i := range ds {
		ds[i] += '0'
	}

	return ds
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	i := x.Abs().Big()

	i.Lsh(i, 1)
	if x.negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (z *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	x := NewBig(i)
	if negative && x.IsZero() {
		return Error.New("negative zero: %08b", data)
	}

	x.negative = negative
	*z = x

	return nil
}
