package integer

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// genInt generates integers with up to a few dozen digits and either sign.
func genInt() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.NumString(),
	).Map(func(vs []interface{}) Int {
		x := MustParse(vs[1].(string))
		if vs[0].(bool) {
			return x.Neg()
		}

		return x
	})
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 60

	properties := gopter.NewProperties(parameters)

	properties.Property("round trip", prop.ForAll(
		func(neg bool, s string) bool {
			if s == "" {
				return true
			}

			text := "+" + s
			if neg {
				text = "-" + s
			}

			x, err := Parse(text)
			if err != nil {
				return false
			}

			want, ok := new(big.Int).SetString(text, 10)
			if !ok {
				return false
			}

			return x.String() == want.String() && MustParse(x.String()).Equal(x)
		},
		gen.Bool(),
		gen.NumString(),
	))

	properties.Property("addition commutes", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genInt(),
		genInt(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b Int) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		genInt(),
		genInt(),
	))

	properties.Property("additive inverse", prop.ForAll(
		func(a Int) bool {
			z := a.Add(a.Neg())

			return z.Equal(MustParse("0")) && !z.IsNegative() && z.IsZero()
		},
		genInt(),
	))

	properties.Property("subtraction undoes addition", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Sub(b).Equal(a)
		},
		genInt(),
		genInt(),
	))

	properties.Property("multiplication distributes", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		genInt(),
		genInt(),
		genInt(),
	))

	properties.Property("division identity", prop.ForAll(
		func(a, b Int) bool {
			if b.IsZero() {
				return true
			}

			q, r, err := a.QuoRem(b)
			if err != nil {
				return false
			}

			// |r| < |b| and r takes the sign of a.
			if r.CmpAbs(b) >= 0 || (r.NonZero() && r.IsNegative() != a.IsNegative()) {
				return false
			}

			return q.Mul(b).Add(r).Equal(a)
		},
		genInt(),
		genInt(),
	))

	properties.Property("division by zero", prop.ForAll(
		func(a Int) bool {
			_, qerr := a.Quo(Int{})
			_, rerr := a.Rem(Int{})

			return ErrDivisionByZero.Has(qerr) && ErrDivisionByZero.Has(rerr)
		},
		genInt(),
	))

	properties.Property("ordering is total", prop.ForAll(
		func(a, b Int) bool {
			n := 0
			if a.Less(b) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			if a.Greater(b) {
				n++
			}

			return n == 1
		},
		genInt(),
		genInt(),
	))

	properties.Property("canonical", prop.ForAll(
		func(a, b Int) bool {
			for _, x := range []Int{a.Add(b), a.Sub(b), a.Mul(b)} {
				if !canonical(x) {
					return false
				}
			}

			if b.IsZero() {
				return true
			}

			q, r, err := a.QuoRem(b)

			return err == nil && canonical(q) && canonical(r)
		},
		genInt(),
		genInt(),
	))

	properties.TestingRun(t)
}

func canonical(x Int) bool {
	if len(x.digits) == 0 {
		return !x.negative
	}

	for _, d := range x.digits {
		if d > 9 {
			return false
		}
	}

	return x.digits[len(x.digits)-1] != 0
}

func randomDecimal(rng *rand.Rand) string {
	n := rng.Intn(60)
	if n == 0 {
		return "0"
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = '0' + byte(rng.Intn(10))
	}

	if rng.Intn(2) == 0 {
		return "-" + string(b)
	}

	return string(b)
}

func TestBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		xs, ys := randomDecimal(rng), randomDecimal(rng)

		t.Run(fmt.Sprintf("[%d]%s,%s", i, xs, ys), func(t *testing.T) {
			bx, ok := new(big.Int).SetString(xs, 10)
			require.True(t, ok)
			by, ok := new(big.Int).SetString(ys, 10)
			require.True(t, ok)

			x, y := MustParse(xs), MustParse(ys)

			require.Equal(t, bx.String(), x.String())
			require.Zero(t, bx.Cmp(x.Big()))
			require.True(t, NewBig(bx).Equal(x))

			require.Equal(t, new(big.Int).Add(bx, by).String(), x.Add(y).String())
			require.Equal(t, new(big.Int).Sub(bx, by).String(), x.Sub(y).String())
			require.Equal(t, new(big.Int).Mul(bx, by).String(), x.Mul(y).String())
			require.Equal(t, bx.Cmp(by), x.Cmp(y))
			require.Equal(t, bx.CmpAbs(by), x.CmpAbs(y))

			if by.Sign() == 0 {
				return
			}

			q, r, err := x.QuoRem(y)
			require.NoError(t, err)
			require.Equal(t, new(big.Int).Quo(bx, by).String(), q.String())
			require.Equal(t, new(big.Int).Rem(bx, by).String(), r.String())

			data, err := x.MarshalBinary()
			require.NoError(t, err)

			var z Int
			require.NoError(t, z.UnmarshalBinary(data))
			require.True(t, z.Equal(x))
		})
	}
}
