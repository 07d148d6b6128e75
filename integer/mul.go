package integer

// mulDigits returns the magnitude a * b.
func mulDigits(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	// Note: two extra digits of slack so the carry drain never runs off
	// the end of the buffer.
	z := make([]byte, len(a)+len(b)+2)

	for i, ad := range a {
		var carry byte
		for j := 0; j < len(b) || carry != 0; j++ {
			// At most 9 + 9*9 + 9 = 99, so a byte is enough.
			cur := z[i+j] + carry
			if j < len(b) {
				cur += ad * b[j]
			}

			z[i+j] = cur % 10
			carry = cur / 10
		}
	}

	return trim(z)
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return Int{
		digits:   mulDigits(x.digits, y.digits),
		negative: x.negative != y.negative,
	}.norm()
}
