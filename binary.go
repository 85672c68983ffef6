package coreparse

import "github.com/coregx/coreparse/span"

// Token matches m followed by any amount of whitespace, keeping m's value.
func Token[T any](m Matcher[T]) Matcher[T] {
	return Left(m, Whitespace())
}

// BinaryOperator matches an alternating list
//
//	operand (op operand)*
//
// and folds it left to right: for "a + b - c" the value is
// fold(fold(a, +, b), -, c).
//
// An operator that is not followed by an operand ends the list before that
// operator. If fold returns an error, BinaryOperator fails with Expected at
// the start of the list.
func BinaryOperator[T, O any](operand Matcher[T], op Matcher[O], fold func(lhs T, op O, rhs T) (T, error)) Matcher[T] {
	list := Match2(operand, Repeat(Match2(op, operand), Unbounded()))
	return Map(list, func(_ span.Position, v Pair[T, []Pair[O, T]]) (T, error) {
		acc := v.First
		for _, next := range v.Second {
			var err error
			acc, err = fold(acc, next.First, next.Second)
			if err != nil {
				return acc, err
			}
		}
		return acc, nil
	})
}
