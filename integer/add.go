package integer

// addDigits returns the magnitude a + b.
func addDigits(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	z := make([]byte, 0, len(a)+1)

	var carry byte
	for i := 0; i < len(a); i++ {
		sum := a[i] + carry
		if i < len(b) {
			sum += b[i]
		}

		z = append(z, sum%10)
		carry = sum / 10
	}

	if carry > 0 {
		z = append(z, carry)
	}

	return trim(z)
}

// subDigits returns the magnitude a - b. The caller must ensure |b| <= |a|.
func subDigits(a, b []byte) []byte {
	z := clone(a)

	for i := 0; i < len(b); i++ {
		if z[i] < b[i] {
			borrow(z, i)
		}

		z[i] -= b[i]
	}

	return trim(z)
}

// borrow takes 10 from the digits above position i and adds it to z[i].
// The nearest nonzero digit above i is decremented and every zero between
// becomes 9.
func borrow(z []byte, i int) {
	j := i + 1
	for z[j] == 0 {
		z[j] = 9
		j++
	}

	z[j]--
	z[i] += 10
}

// add returns the sum of the signed magnitudes.
func add(aNeg bool, a []byte, bNeg bool, b []byte) Int {
	if aNeg == bNeg {
		return Int{
			digits:   addDigits(a, b),
			negative: aNeg,
		}.norm()
	}

	if lessDigits(a, b) {
		return Int{
			digits:   subDigits(b, a),
			negative: bNeg,
		}.norm()
	}

	return Int{
		digits:   subDigits(a, b),
		negative: aNeg,
	}.norm()
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return add(x.negative, x.digits, y.negative, y.digits)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return add(x.negative, x.digits, !y.negative, y.digits)
}

var one = Int{digits: []byte{1}}

// Inc increments z by one.
func (z *Int) Inc() {
	*z = z.Add(one)
}

// Dec decrements z by one.
func (z *Int) Dec() {
	*z = z.Sub(one)
}
