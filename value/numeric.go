package value

import (
	"math"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// NotNumberError reports that a value was required to be numeric.
type NotNumberError struct{ Got Value }

func (e *NotNumberError) Error() string {
	return "not a number: " + Stringify(e.Got, true)
}

// numKind classifies a numeric Value for promotion purposes: 0 for Int,
// 1 for BigInt, 2 for Float, -1 for a non-number.
func numKind(v Value) int {
	switch v.(type) {
	case Int:
		return 0
	case *BigInt:
		return 1
	case Float:
		return 2
	default:
		return -1
	}
}

const (
	minInt32 = -(1 << 31)
	maxInt32 = (1 << 31) - 1
)

// demote returns x as Int if it fits in 32 bits, else as *BigInt.
func demote(x *big.Int) Value {
	if x.IsInt64() {
		i := x.Int64()
		if i >= minInt32 && i <= maxInt32 {
			return Int(i)
		}
	}
	return NewBigInt(new(big.Int).Set(x))
}

func toBig(v Value) *big.Int {
	switch n := v.(type) {
	case Int:
		return big.NewInt(int64(n))
	case *BigInt:
		return n.Big()
	default:
		panic("toBig: not an integral value")
	}
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case Int:
		return float64(n)
	case *BigInt:
		f, _ := new(big.Float).SetInt(n.Big()).Float64()
		return f
	case Float:
		return float64(n)
	default:
		panic("toFloat: not a number")
	}
}

type binOp struct {
	ints  func(a, b int64) (int64, bool) // returns (result, fits-in-Int), Int being 32 bits
	bigs  func(a, b *big.Int) *big.Int
	float func(a, b float64) float64
}

func apply(op binOp, a, b Value) (Value, error) {
	ka, kb := numKind(a), numKind(b)
	if ka < 0 {
		return nil, errors.WithStack(&NotNumberError{Got: a})
	}
	if kb < 0 {
		return nil, errors.WithStack(&NotNumberError{Got: b})
	}
	if ka == 0 && kb == 0 {
		ia, ib := int64(a.(Int)), int64(b.(Int))
		if r, ok := op.ints(ia, ib); ok {
			return Int(r), nil
		}
		return demote(op.bigs(big.NewInt(ia), big.NewInt(ib))), nil
	}
	if ka == 2 || kb == 2 {
		return Float(op.float(toFloat(a), toFloat(b))), nil
	}
	return demote(op.bigs(toBig(a), toBig(b))), nil
}

// Add implements the numeric tower's promotion rule for +.
func Add(a, b Value) (Value, error) {
	return apply(binOp{
		ints: func(x, y int64) (int64, bool) {
			r := x + y
			return r, r >= minInt32 && r <= maxInt32
		},
		bigs:  func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) },
		float: func(x, y float64) float64 { return x + y },
	}, a, b)
}

// Subtract implements the numeric tower's promotion rule for -.
func Subtract(a, b Value) (Value, error) {
	return apply(binOp{
		ints: func(x, y int64) (int64, bool) {
			r := x - y
			return r, r >= minInt32 && r <= maxInt32
		},
		bigs:  func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) },
		float: func(x, y float64) float64 { return x - y },
	}, a, b)
}

// Multiply implements the numeric tower's promotion rule for *.
func Multiply(a, b Value) (Value, error) {
	return apply(binOp{
		ints: func(x, y int64) (int64, bool) {
			r := x * y
			if x != 0 && r/x != y {
				return 0, false
			}
			return r, r >= minInt32 && r <= maxInt32
		},
		bigs:  func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) },
		float: func(x, y float64) float64 { return x * y },
	}, a, b)
}

// Compare returns -1, 0 or +1 for a<b, a==b, a>b. NaN behavior is
// unspecified, per the numeric tower's contract.
func Compare(a, b Value) (int, error) {
	ka, kb := numKind(a), numKind(b)
	if ka < 0 {
		return 0, errors.WithStack(&NotNumberError{Got: a})
	}
	if kb < 0 {
		return 0, errors.WithStack(&NotNumberError{Got: b})
	}
	if ka == 0 && kb == 0 {
		x, y := a.(Int), b.(Int)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if ka == 2 || kb == 2 {
		x, y := toFloat(a), toFloat(b)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return toBig(a).Cmp(toBig(b)), nil
}

// ParseNumber tries Int, then BigInt, then Float, in that order, the
// order the reader uses to decide whether a token is a number at all.
func ParseNumber(tok string) (Value, bool) {
	if i, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return Int(i), true
	}
	if bi, ok := new(big.Int).SetString(tok, 10); ok {
		return demote(bi), true
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil && !math.IsInf(f, 0) {
		return Float(f), true
	}
	return nil, false
}
