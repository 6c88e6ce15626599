package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse means the text is not a well-formed arithmetic expression.
	ErrParse = errors.New("malformed expression")
	// ErrDivisionByZero means some division had a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow means a float result is not finite or an integer grew too large.
	ErrOverflow = errors.New("numeric overflow")
)

// Evaluate computes the buffer text and returns the result as display text.
// The display glyph 'x' is read as multiplication. The text itself is not modified.
func Evaluate(text string) (string, error) {
	v, err := EvaluateValue(text)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// EvaluateValue is Evaluate without the result formatting.
func EvaluateValue(text string) (Number, error) {
	toks, err := Tokenize(strings.ReplaceAll(text, string(OpMul), "*"))
	if err != nil {
		return Number{}, err
	}
	p := &parser{toks: toks}
	if p.peek().Kind == TokEOF {
		return Number{}, fmt.Errorf("%w: empty expression", ErrParse)
	}
	v, err := p.expr()
	if err != nil {
		return Number{}, err
	}
	if t := p.peek(); t.Kind != TokEOF {
		return Number{}, fmt.Errorf("%w: unexpected %s at %d", ErrParse, t.Kind, t.Pos)
	}
	return v, nil
}

// parser is a recursive-descent evaluator over a token slice:
//
//	expr  = term { ("+" | "-") term }
//	term  = unary { ("*" | "/") unary }
//	unary = ("+" | "-") unary | number
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (Number, error) {
	return p.binary(p.term, TokPlus, TokMinus)
}

func (p *parser) term() (Number, error) {
	return p.binary(p.unary, TokStar, TokSlash)
}

// binary folds operand { (a|b) operand } left to right.
func (p *parser) binary(operand func() (Number, error), a, b TokenKind) (Number, error) {
	left, err := operand()
	if err != nil {
		return Number{}, err
	}
	for {
		op := p.peek()
		if op.Kind != a && op.Kind != b {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return Number{}, err
		}
		if left, err = apply(op, left, right); err != nil {
			return Number{}, err
		}
	}
}

func (p *parser) unary() (Number, error) {
	t := p.next()
	switch t.Kind {
	case TokNumber:
		return parseNumber(t)
	case TokPlus:
		return p.unary()
	case TokMinus:
		v, err := p.unary()
		if err != nil {
			return Number{}, err
		}
		return v.neg(), nil
	default:
		return Number{}, fmt.Errorf("%w: expected number, got %s at %d", ErrParse, t.Kind, t.Pos)
	}
}
