package calc

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind is the kind of a token.
type Kind int

// Token Kinds
const (
	Operand Kind = iota
	UnaryOperator
	BinaryOperator
	Bracket
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "operand"
	case UnaryOperator:
		return "unary"
	case BinaryOperator:
		return "binary"
	case Bracket:
		return "bracket"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single element of an expression.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return t.Text
}

// priorities of the binary operators. It is never written after init.
var priorities = map[string]int{
	"+": 1,
	"-": 1,
	"%": 1,
	"*": 2,
	"/": 2,
}

const maxPriority = 2

// IsOperator reports whether s is a binary operator.
func IsOperator(s string) bool {
	_, ok := priorities[s]

	return ok
}

// Priority returns the binding strength of an operator token. Operands and
// brackets have no priority.
func (t Token) Priority() int {
	switch t.Kind {
	case UnaryOperator:
		return maxPriority + 1
	case BinaryOperator:
		return priorities[t.Text]
	case Operand, Bracket:
		return 0
	}

	return 0
}

// Tokenize splits expr into tokens.
func Tokenize(expr string) (tokens []Token, err error) {
	unary := true

	for i := 0; i < len(expr); i++ {
		c := expr[i]

		switch {
		case unicode.IsSpace(rune(c)):
			continue
		case IsOperator(string(c)):
			if !unary {
				tokens = append(tokens, Token{Kind: BinaryOperator, Text: string(c)})
			} else if c == '+' || c == '-' {
				tokens = append(tokens, Token{Kind: UnaryOperator, Text: string(c)})
			} else {
				return nil, ErrInvalidExpr.New("missing operand before %q at offset %d", c, i)
			}

			unary = true
		case c == '(':
			tokens = append(tokens, Token{Kind: Bracket, Text: "("})
			unary = true
		case c == ')':
			tokens = append(tokens, Token{Kind: Bracket, Text: ")"})
			unary = false
		case isDigit(c):
			j := i + 1
			for j < len(expr) && isDigit(expr[j]) {
				j++
			}

			tokens = append(tokens, Token{Kind: Operand, Text: expr[i:j]})
			i = j - 1
			unary = false
		default:
			return nil, ErrInvalidExpr.New("unexpected %q at offset %d", c, i)
		}
	}

	return tokens, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Join returns the tokens separated by spaces.
func Join(tokens []Token) string {
	ss := make([]string, len(tokens))
	for i, t := range tokens {
		ss[i] = t.Text
	}

	return strings.Join(ss, " ")
}
