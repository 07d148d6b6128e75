package calc

// Number is the arithmetic an operand type must provide.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Rem(T) (T, error)
	Neg() T
}

// Calculator evaluates expressions over T.
type Calculator[T Number[T]] struct {
	parse  func(string) (T, error)
	unary  map[string]func(a T) T
	binary map[string]func(a, b T) (T, error)
}

// New returns a calculator that reads operands with parse.
func New[T Number[T]](parse func(string) (T, error)) *Calculator[T] {
	return &Calculator[T]{
		parse: parse,
		unary: map[string]func(a T) T{
			"+": func(a T) T { return a },
			"-": func(a T) T { return a.Neg() },
		},
		binary: map[string]func(a, b T) (T, error){
			"+": func(a, b T) (T, error) { return a.Add(b), nil },
			"-": func(a, b T) (T, error) { return a.Sub(b), nil },
			"*": func(a, b T) (T, error) { return a.Mul(b), nil },
			"/": func(a, b T) (T, error) { return a.Quo(b) },
			"%": func(a, b T) (T, error) { return a.Rem(b) },
		},
	}
}

// Eval evaluates the infix expression expr. Errors from the operand type
// (e.g. division by zero) are returned unchanged.
func (c *Calculator[T]) Eval(expr string) (result T, err error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return result, err
	}

	postfix, err := Postfix(tokens)
	if err != nil {
		return result, err
	}

	return c.EvalPostfix(postfix)
}

// EvalPostfix reduces postfix tokens to a single value.
func (c *Calculator[T]) EvalPostfix(tokens []Token) (result T, err error) {
	var values []T

	for _, t := range tokens {
		switch t.Kind {
		case Operand:
			v, err := c.parse(t.Text)
			if err != nil {
				return result, err
			}

			values = append(values, v)
		case UnaryOperator:
			fn, ok := c.unary[t.Text]
			if !ok {
				return result, ErrInvalidExpr.New("unsupported unary operator %q", t.Text)
			}

			if len(values) < 1 {
				return result, ErrInvalidExpr.New("missing operand for unary %q", t.Text)
			}

			values[len(values)-1] = fn(values[len(values)-1])
		case BinaryOperator:
			fn, ok := c.binary[t.Text]
			if !ok {
				return result, ErrInvalidExpr.New("unsupported binary operator %q", t.Text)
			}

			n := len(values)
			if n < 2 {
				return result, ErrInvalidExpr.New("missing operand for %q", t.Text)
			}

			v, err := fn(values[n-2], values[n-1])
			if err != nil {
				return result, err
			}

			values = append(values[:n-2], v)
		case Bracket:
			return result, ErrInvalidExpr.New("bracket in postfix expression")
		default:
			return result, Error.New("unknown token kind: %v", t.Kind)
		}
	}

	if len(values) != 1 {
		return result, ErrInvalidExpr.New("expected 1 value, found %d", len(values))
	}

	return values[0], nil
}
