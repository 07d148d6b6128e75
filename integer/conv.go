package integer

import (
	"fmt"
	"strings"
)

// Parse returns the Int represented by s. The empty string is zero.
func Parse(s string) (x Int, err error) {
	if s == "" {
		return Int{}, nil
	}

	i := 0
	switch s[0] {
	case '-':
		x.negative = true
		i++
	case '+':
		i++
	}

	if i == len(s) {
		return Int{}, ErrInvalidFormat.New("sign without digits: %q", s)
	}

	for i < len(s)-1 && s[i] == '0' {
		i++
	}

	digits := make([]byte, len(s)-i)
	for j := len(s) - 1; j >= i; j-- {
		c := s[j]
		if c < '0' || c > '9' {
			return Int{}, ErrInvalidFormat.New("invalid character %q at offset %d in %q", c, j, s)
		}

		digits[len(s)-1-j] = c - '0'
	}

	x.digits = digits

	return x.norm(), nil
}

// MustParse is like Parse but panics if s is not a decimal integer. It is
// intended for constants and tests.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// SetString sets z to the value of s. On error z is unchanged.
func (z *Int) SetString(s string) (err error) {
	x, err := Parse(s)
	if err != nil {
		return err
	}

	*z = x

	return nil
}

// String returns the canonical decimal representation of x.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(len(x.digits) + 1)

	if x.negative {
		sb.WriteByte('-')
	}

	for i := len(x.digits) - 1; i >= 0; i-- {
		sb.WriteByte('0' + x.digits[i])
	}

	return sb.String()
}

// Format implements fmt.Formatter. It accepts the verbs v, s and d and the
// '+' flag; width and padding flags are applied as for strings.
func (x Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
	default:
		fmt.Fprintf(s, "%%!%c(integer.Int=%s)", verb, x.String())
		return
	}

	text := x.String()
	if s.Flag('+') && !x.negative {
		text = "+" + text
	}

	width, ok := s.Width()
	if !ok || width <= len(text) {
		fmt.Fprint(s, text)
		return
	}

	pad := strings.Repeat(" ", width-len(text))
	switch {
	case s.Flag('-'):
		fmt.Fprint(s, text+pad)
	case s.Flag('0'):
		sign := ""
		if text[0] == '-' || text[0] == '+' {
			sign, text = text[:1], text[1:]
		}

		fmt.Fprint(s, sign+strings.Repeat("0", len(pad))+text)
	default:
		fmt.Fprint(s, pad+text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) (err error) {
	return z.SetString(string(text))
}

// Scan implements fmt.Scanner. It reads one space delimited token and parses
// it, so the verbs v, d and s are all accepted.
func (z *Int) Scan(state fmt.ScanState, verb rune) (err error) {
	switch verb {
	case 'v', 'd', 's':
	default:
		return Error.New("invalid verb %%%c for integer.Int", verb)
	}

	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}

	if len(tok) == 0 {
		return Error.New("expected integer")
	}

	return z.SetString(string(tok))
}
