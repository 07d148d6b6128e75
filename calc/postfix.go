package calc

// Postfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. The result contains no brackets.
func Postfix(tokens []Token) (postfix []Token, err error) {
	postfix = make([]Token, 0, len(tokens))

	var ops stack

	for _, t := range tokens {
		switch t.Kind {
		case Operand:
			postfix = append(postfix, t)
		case UnaryOperator:
			// Unary operators bind tightest and associate to the
			// right, so nothing on the stack is ever released by one.
			ops.push(t)
		case BinaryOperator:
			for !ops.empty() {
				top := ops.top()
				if top.Kind == Bracket || top.Priority() < t.Priority() {
					break
				}

				postfix = append(postfix, ops.pop())
			}

			ops.push(t)
		case Bracket:
			if t.Text == "(" {
				ops.push(t)

				continue
			}

			for {
				if ops.empty() {
					return nil, ErrInvalidExpr.New("unmatched %q", ")")
				}

				top := ops.pop()
				if top.Kind == Bracket {
					break
				}

				postfix = append(postfix, top)
			}
		default:
			return nil, Error.New("unknown token kind: %v", t.Kind)
		}
	}

	for !ops.empty() {
		top := ops.pop()
		if top.Kind == Bracket {
			return nil, ErrInvalidExpr.New("unmatched %q", "(")
		}

		postfix = append(postfix, top)
	}

	return postfix, nil
}

type stack []Token

func (s *stack) push(t Token) {
	*s = append(*s, t)
}

func (s *stack) top() Token {
	return (*s)[len(*s)-1]
}

func (s *stack) pop() Token {
	t := s.top()
	*s = (*s)[:len(*s)-1]

	return t
}

func (s *stack) empty() bool {
	return len(*s) == 0
}
