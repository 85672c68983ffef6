package calc

import (
	"strconv"

	"github.com/coregx/coreparse"
	"github.com/coregx/coreparse/span"
)

// Parser parses calc expressions. It is immutable once built and safe for
// concurrent use.
type Parser struct {
	expression coreparse.Matcher[Node]
	complete   coreparse.Matcher[Node]
}

type opToken struct {
	op Op
	at span.Position
}

func symbol(s string) coreparse.Matcher[string] {
	return coreparse.Token(coreparse.Str(s))
}

func operator(chars string) coreparse.Matcher[opToken] {
	return coreparse.Token(coreparse.Map(coreparse.OneOf(chars), func(pos span.Position, r rune) (opToken, error) {
		return opToken{op: Op(r), at: pos}, nil
	}))
}

func fold(lhs Node, op opToken, rhs Node) (Node, error) {
	return &Binary{Op: op.op, Left: lhs, Right: rhs, OpAt: op.at}, nil
}

// NewParser builds the grammar.
func NewParser() *Parser {
	var expression, term coreparse.Matcher[Node]

	number := coreparse.Token(coreparse.Map(coreparse.NumberText(), func(pos span.Position, s span.Str) (Node, error) {
		v, err := strconv.ParseFloat(s.S, 64)
		if err != nil {
			return nil, coreparse.MapErrorf("number %s out of range", s.S)
		}
		return &Number{Value: v, At: pos}, nil
	}))

	negate := coreparse.Map(
		coreparse.Right(symbol("-"), coreparse.Lazy(func() coreparse.Matcher[Node] { return term })),
		func(pos span.Position, operand Node) (Node, error) {
			return &Negate{Operand: operand, At: pos}, nil
		},
	)

	group := coreparse.Surrounded(
		symbol("("),
		coreparse.Lazy(func() coreparse.Matcher[Node] { return expression }),
		symbol(")"),
	)

	term = coreparse.Any3(number, negate, group)
	multiplicative := coreparse.BinaryOperator(term, operator("*/"), fold)
	expression = coreparse.BinaryOperator(multiplicative, operator("+-"), fold)

	return &Parser{
		expression: expression,
		complete:   coreparse.Right(coreparse.Whitespace(), coreparse.Complete(expression)),
	}
}

// Expression returns the expression matcher, for embedding calc expressions
// in a larger grammar. It consumes trailing whitespace but not leading
// whitespace, and does not require the input to end.
func (p *Parser) Expression() coreparse.Matcher[Node] {
	return p.expression
}

// Parse parses s as a single expression. Leading and trailing whitespace is
// allowed; anything else left over fails with "expected end of input".
//
// The returned error is a *coreparse.Error.
func (p *Parser) Parse(s string) (Node, error) {
	m, err := p.complete.Apply(span.New(s))
	if err != nil {
		return nil, err
	}
	return m.Value, nil
}
