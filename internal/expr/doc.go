// Package expr evaluates flat infix arithmetic expressions.
//
// An expression is a sequence of non-negative integer literals separated by
// the binary operators + - * and /, for example "12 + 7 * 3". There are no
// parentheses and no negative literals; negative values only arise from
// subtraction.
//
// # Evaluation
//
// Evaluate runs a two-stack shunting-yard pass over the text. Multiplication
// and division bind tighter than addition and subtraction, and operators of
// equal precedence associate to the left, so "10 - 3 - 2" is 5 and
// "2 + 3 * 4" is 14.
//
// Division by a value closer to zero than 1e-9 is not an error: it yields
// DivisionSentinel. Generated questions never divide by zero, so the sentinel
// only shows up for hand-written input.
//
// Structurally invalid text returns a *MalformedExpressionError that matches
// ErrMalformedExpression under errors.Is.
package expr
