package expr

import (
	"errors"
	"fmt"
)

// ErrMalformedExpression is matched by every *MalformedExpressionError.
var ErrMalformedExpression = errors.New("malformed expression")

// MalformedExpressionError reports where and why an expression could not be
// evaluated.
type MalformedExpressionError struct {
	Expr   string
	Offset int // byte offset into Expr
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression %q at offset %d: %s", e.Expr, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedExpression.
func (e *MalformedExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

func malformed(expr string, offset int, format string, args ...any) error {
	return &MalformedExpressionError{
		Expr:   expr,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}
