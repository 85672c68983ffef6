// Package calc implements an arithmetic expression language on top of the
// coreparse combinators.
//
// Grammar:
//
//	expression     = additive
//	additive       = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = term (("*" | "/") term)*
//	term           = number | "-" term | "(" expression ")"
//
// Numbers follow the JSON number syntax without a sign. Whitespace is allowed
// around every token. Binary operators are left associative.
package calc

import (
	"strconv"

	"github.com/coregx/coreparse/span"
)

// Op is a binary operator.
type Op byte

// Binary operators
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func (op Op) String() string {
	return string(rune(op))
}

// Node is an expression tree node: *Number, *Negate or *Binary.
type Node interface {
	// Pos is the source position the node starts at.
	Pos() span.Position
	// String renders the node as an S-expression.
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value float64
	At    span.Position
}

func (n *Number) Pos() span.Position { return n.At }

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Negate is a prefix minus.
type Negate struct {
	Operand Node
	At      span.Position
}

func (n *Negate) Pos() span.Position { return n.At }

func (n *Negate) String() string {
	return "(- " + n.Operand.String() + ")"
}

// Binary is an infix operation. OpAt is the position of the operator itself.
type Binary struct {
	Op          Op
	Left, Right Node
	OpAt        span.Position
}

func (n *Binary) Pos() span.Position { return n.Left.Pos() }

func (n *Binary) String() string {
	return "(" + n.Op.String() + " " + n.Left.String() + " " + n.Right.String() + ")"
}

// TreeNode is a plain-data form of a Node, suitable for serialization.
type TreeNode struct {
	Op    string     `yaml:"op"`
	Value *float64   `yaml:"value,omitempty"`
	At    string     `yaml:"at"`
	Args  []TreeNode `yaml:"args,omitempty"`
}

// Tree converts n to its plain-data form. Numbers have Op "number", prefix
// minus has Op "neg", binary nodes carry their operator.
func Tree(n Node) TreeNode {
	switch n := n.(type) {
	case *Number:
		v := n.Value
		return TreeNode{Op: "number", Value: &v, At: n.At.String()}
	case *Negate:
		return TreeNode{Op: "neg", At: n.At.String(), Args: []TreeNode{Tree(n.Operand)}}
	case *Binary:
		return TreeNode{
			Op:   n.Op.String(),
			At:   n.OpAt.String(),
			Args: []TreeNode{Tree(n.Left), Tree(n.Right)},
		}
	default:
		return TreeNode{Op: "unknown"}
	}
}
