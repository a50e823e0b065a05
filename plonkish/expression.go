package plonkish

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Expression is a polynomial over column queries and constants. Gates install
// expressions that must vanish on every row where their selector is enabled.
//
// Expressions are built once at configure time and evaluated many times
// against an assignment, so they are immutable values.
type Expression interface {
	// evalAt evaluates the expression at the given absolute row, reading
	// cell values through get.
	evalAt(row int, get func(col Advice, row int) fr.Element) fr.Element
}

type constExpr struct {
	value fr.Element
}

func (e constExpr) evalAt(int, func(Advice, int) fr.Element) fr.Element {
	return e.value
}

type queryExpr struct {
	col Advice
	rot Rotation
}

func (e queryExpr) evalAt(row int, get func(Advice, int) fr.Element) fr.Element {
	return get(e.col, row+int(e.rot))
}

type sumExpr struct{ a, b Expression }

func (e sumExpr) evalAt(row int, get func(Advice, int) fr.Element) fr.Element {
	va, vb := e.a.evalAt(row, get), e.b.evalAt(row, get)
	var out fr.Element
	out.Add(&va, &vb)
	return out
}

type prodExpr struct{ a, b Expression }

func (e prodExpr) evalAt(row int, get func(Advice, int) fr.Element) fr.Element {
	va, vb := e.a.evalAt(row, get), e.b.evalAt(row, get)
	var out fr.Element
	out.Mul(&va, &vb)
	return out
}

type negExpr struct{ e Expression }

func (e negExpr) evalAt(row int, get func(Advice, int) fr.Element) fr.Element {
	v := e.e.evalAt(row, get)
	var out fr.Element
	out.Neg(&v)
	return out
}

// Constant returns an expression with a fixed value.
func Constant(v fr.Element) Expression {
	return constExpr{value: v}
}

// ConstantUint64 returns an expression with a fixed small value.
func ConstantUint64(v uint64) Expression {
	return constExpr{value: fr.NewElement(v)}
}

// Add returns a + b.
func Add(a, b Expression) Expression {
	return sumExpr{a: a, b: b}
}

// Sub returns a - b.
func Sub(a, b Expression) Expression {
	return sumExpr{a: a, b: negExpr{e: b}}
}

// Mul returns a * b.
func Mul(a, b Expression) Expression {
	return prodExpr{a: a, b: b}
}

// Neg returns -a.
func Neg(a Expression) Expression {
	return negExpr{e: a}
}

// maxRotation returns the largest row offset the expression queries, used to
// know how many trailing rows of the table a gate may read past its own row.
func maxRotation(e Expression) int {
	switch x := e.(type) {
	case queryExpr:
		return int(x.rot)
	case sumExpr:
		return max(maxRotation(x.a), maxRotation(x.b))
	case prodExpr:
		return max(maxRotation(x.a), maxRotation(x.b))
	case negExpr:
		return maxRotation(x.e)
	default:
		return 0
	}
}
