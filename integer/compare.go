package integer

// cmpDigits compares the magnitudes a and b, both canonical, and returns -1,
// 0 or +1.
func cmpDigits(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

func lessDigits(a, b []byte) bool {
	return cmpDigits(a, b) < 0
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x Int) CmpAbs(y Int) int {
	return cmpDigits(x.digits, y.digits)
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.negative && !y.negative:
		return -1
	case !x.negative && y.negative:
		return 1
	case x.negative:
		return cmpDigits(y.digits, x.digits)
	}

	return cmpDigits(x.digits, y.digits)
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessEq reports whether x <= y.
func (x Int) LessEq(y Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterEq reports whether x >= y.
func (x Int) GreaterEq(y Int) bool { return x.Cmp(y) >= 0 }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// NotEqual reports whether x != y.
func (x Int) NotEqual(y Int) bool { return x.Cmp(y) != 0 }
