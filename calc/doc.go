// Package calc evaluates infix arithmetic expressions over any number type.
//
// Evaluation runs in three steps:
//
//  1. Tokenize splits the text into tokens.
//  2. Postfix reorders the tokens into postfix (reverse Polish) order.
//  3. Calculator.EvalPostfix reduces the postfix tokens with a value stack.
//
// Grammar
//
// Operands are runs of decimal digits. Whitespace between tokens is ignored.
//
//  | Operator | Kind   | Priority |
//  |----------|--------|----------|
//  | + -      | unary  | 3        |
//  | * /      | binary | 2        |
//  | + - %    | binary | 1        |
//  |----------|--------|----------|
//
// A + or - is unary at the start of the expression, after another operator
// and after an opening bracket. Binary operators associate to the left and
// unary operators to the right, so
//
//  1 - 2 - 3 = (1 - 2) - 3
//  - - 3     = -(-3)
//
// Brackets group as usual and must balance.
package calc
