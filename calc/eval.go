package calc

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Eval for x / 0.
var ErrDivisionByZero = errors.New("division by zero")

// EvalError reports an evaluation failure and where it happened.
type EvalError struct {
	Node Node
	Err  error
}

func (e *EvalError) Error() string {
	pos := e.Node.Pos()
	if b, ok := e.Node.(*Binary); ok {
		pos = b.OpAt
	}
	return fmt.Sprintf("%v: %v", pos, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Eval computes the value of n.
func Eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Negate:
		v, err := Eval(n.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *Binary:
		lhs, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case Add:
			return lhs + rhs, nil
		case Sub:
			return lhs - rhs, nil
		case Mul:
			return lhs * rhs, nil
		case Div:
			if rhs == 0 {
				return 0, &EvalError{Node: n, Err: ErrDivisionByZero}
			}
			return lhs / rhs, nil
		}
		return 0, &EvalError{Node: n, Err: fmt.Errorf("unknown operator %q", byte(n.Op))}
	default:
		return 0, fmt.Errorf("calc: unknown node type %T", n)
	}
}
