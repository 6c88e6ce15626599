package calc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxIntBits bounds exact integers to about 4300 decimal digits.
const maxIntBits = 14284

// Number is an evaluation value. Integer literals and the sums, differences,
// products and exact quotients of integers stay exact; a decimal point or an
// inexact division turns the value into a float64.
type Number struct {
	i *big.Int // nil for floats
	f float64
}

// IntNumber returns the exact integer v.
func IntNumber(v int64) Number {
	return Number{i: big.NewInt(v)}
}

// FloatNumber returns the float v.
func FloatNumber(v float64) Number {
	return Number{f: v}
}

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool {
	return n.i != nil
}

// Float64 returns n as a float64. Integers too large for float64 are an
// ErrOverflow.
func (n Number) Float64() (float64, error) {
	if n.i == nil {
		return n.f, nil
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: integer too large for a float", ErrOverflow)
	}
	return f, nil
}

// String renders n the way it is written back into the buffer.
func (n Number) String() string {
	if n.i != nil {
		return n.i.String()
	}
	return FormatResult(n.f)
}

func (n Number) isZero() bool {
	if n.i != nil {
		return n.i.Sign() == 0
	}
	return n.f == 0
}

func (n Number) neg() Number {
	if n.i != nil {
		return Number{i: new(big.Int).Neg(n.i)}
	}
	return Number{f: -n.f}
}

// parseNumber converts a number token. Literals without a decimal point are
// exact integers.
func parseNumber(t Token) (Number, error) {
	if !strings.Contains(t.Text, ".") {
		i, ok := new(big.Int).SetString(t.Text, 10)
		if !ok {
			return Number{}, fmt.Errorf("%w: number %q at %d", ErrParse, t.Text, t.Pos)
		}
		return checkInt(i, t)
	}
	f, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		// ParseFloat only fails here on out-of-range literals.
		return Number{}, fmt.Errorf("%w: number %q at %d", ErrOverflow, t.Text, t.Pos)
	}
	return Number{f: f}, nil
}

// apply computes a op b. op is the operator token, used for error positions.
func apply(op Token, a, b Number) (Number, error) {
	if op.Kind == TokSlash && b.isZero() {
		return Number{}, fmt.Errorf("%w at %d", ErrDivisionByZero, op.Pos)
	}
	if a.IsInt() && b.IsInt() {
		return applyInt(op, a.i, b.i)
	}
	x, err := a.Float64()
	if err != nil {
		return Number{}, err
	}
	y, err := b.Float64()
	if err != nil {
		return Number{}, err
	}
	var v float64
	switch op.Kind {
	case TokPlus:
		v = x + y
	case TokMinus:
		v = x - y
	case TokStar:
		v = x * y
	case TokSlash:
		v = x / y
	default:
		return Number{}, fmt.Errorf("%w: unexpected %s at %d", ErrParse, op.Kind, op.Pos)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Number{}, fmt.Errorf("%w at %d", ErrOverflow, op.Pos)
	}
	return Number{f: v}, nil
}

func applyInt(op Token, x, y *big.Int) (Number, error) {
	z := new(big.Int)
	switch op.Kind {
	case TokPlus:
		z.Add(x, y)
	case TokMinus:
		z.Sub(x, y)
	case TokStar:
		z.Mul(x, y)
	case TokSlash:
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		if r.Sign() != 0 {
			f, _ := new(big.Rat).SetFrac(x, y).Float64()
			if math.IsInf(f, 0) {
				return Number{}, fmt.Errorf("%w at %d", ErrOverflow, op.Pos)
			}
			return Number{f: f}, nil
		}
		z = q
	default:
		return Number{}, fmt.Errorf("%w: unexpected %s at %d", ErrParse, op.Kind, op.Pos)
	}
	return checkInt(z, op)
}

func checkInt(z *big.Int, at Token) (Number, error) {
	if z.BitLen() > maxIntBits {
		return Number{}, fmt.Errorf("%w at %d", ErrOverflow, at.Pos)
	}
	return Number{i: z}, nil
}
