package integer

// divDigits returns the magnitude a / b truncated toward zero.
func divDigits(a, b []byte) (q []byte, err error) {
	if len(b) == 0 {
		return nil, ErrDivisionByZero.New("%s / 0", Int{digits: a})
	}

	if lessDigits(a, b) {
		return nil, nil
	}

	q = make([]byte, len(a))

	var rem []byte
	for i := len(a) - 1; i >= 0; i-- {
		rem = shiftIn(rem, a[i])

		d, prod := quoDigit(rem, b)

		q[i] = d
		rem = subDigits(rem, prod)
	}

	return trim(q), nil
}

// shiftIn returns rem*10 + d.
func shiftIn(rem []byte, d byte) []byte {
	z := make([]byte, len(rem)+1)
	z[0] = d
	copy(z[1:], rem)

	return trim(z)
}

// quoDigit returns the largest digit d with b*d <= rem along with b*d.
func quoDigit(rem, b []byte) (d byte, prod []byte) {
	lo, hi := 0, 9
	for lo <= hi {
		mid := (lo + hi) / 2

		p := mulDigits(b, []byte{byte(mid)})
		if cmpDigits(p, rem) <= 0 {
			d, prod = byte(mid), p
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return d, prod
}

// Quo returns x / y truncated toward zero. It fails with ErrDivisionByZero
// if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	q, err := divDigits(x.digits, y.digits)
	if err != nil {
		return Int{}, err
	}

	return Int{
		digits:   q,
		negative: x.negative != y.negative,
	}.norm(), nil
}

// Rem returns x - (x/y)*y, which has the sign of x. It fails with
// ErrDivisionByZero if y is zero.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)

	return r, err
}

// QuoRem returns x / y and x - (x/y)*y.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	q, err = x.Quo(y)
	if err != nil {
		return Int{}, Int{}, err
	}

	return q, x.Sub(q.Mul(y)), nil
}
