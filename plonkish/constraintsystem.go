package plonkish

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// PermutationFunc applies a fixed-width permutation to state in place. It is
// the external primitive wrapped by permutation gates; the constraint layer
// never reimplements it.
type PermutationFunc func(state []fr.Element) error

// gate is a named set of vanishing polynomials bound to one selector.
type gate struct {
	name     string
	selector Selector
	polys    []Expression
}

// permGate ties a block of state columns at the current row to the same
// columns at the next row through an external permutation.
type permGate struct {
	name     string
	selector Selector
	state    []Advice
	f        PermutationFunc
}

// ConstraintSystem collects the shape of a circuit: columns, selectors and
// gates. It is populated once during configure and is read-only afterwards.
// The zero value is ready to use.
type ConstraintSystem struct {
	numAdvice    int
	numInstance  int
	numSelectors int

	adviceEquality   map[int]bool
	instanceEquality map[int]bool

	gates     []gate
	permGates []permGate
}

// AdviceColumn allocates a new private witness column.
func (cs *ConstraintSystem) AdviceColumn() Advice {
	col := Advice{index: cs.numAdvice}
	cs.numAdvice++
	return col
}

// InstanceColumn allocates a new public input column.
func (cs *ConstraintSystem) InstanceColumn() Instance {
	col := Instance{index: cs.numInstance}
	cs.numInstance++
	return col
}

// Selector allocates a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	sel := Selector{index: cs.numSelectors}
	cs.numSelectors++
	return sel
}

// EnableEquality marks a column as usable in copy constraints. Copying into
// or out of a column that was not enabled is a configure-time bug surfaced at
// synthesis.
func (cs *ConstraintSystem) EnableEquality(col Column) {
	switch c := col.(type) {
	case Advice:
		if cs.adviceEquality == nil {
			cs.adviceEquality = make(map[int]bool)
		}
		cs.adviceEquality[c.index] = true
	case Instance:
		if cs.instanceEquality == nil {
			cs.instanceEquality = make(map[int]bool)
		}
		cs.instanceEquality[c.index] = true
	}
}

// CreateGate installs a named gate: on every row where sel is enabled, each
// of the given polynomials must evaluate to zero.
func (cs *ConstraintSystem) CreateGate(name string, sel Selector, polys ...Expression) {
	cs.gates = append(cs.gates, gate{name: name, selector: sel, polys: polys})
}

// CreatePermutationGate installs a gate enforcing, on every row where sel is
// enabled, that the state columns at the next row hold the image of the state
// columns at the current row under f.
func (cs *ConstraintSystem) CreatePermutationGate(name string, sel Selector, state []Advice, f PermutationFunc) {
	cols := make([]Advice, len(state))
	copy(cols, state)
	cs.permGates = append(cs.permGates, permGate{name: name, selector: sel, state: cols, f: f})
}

func (cs *ConstraintSystem) adviceEqualityEnabled(col Advice) bool {
	return cs.adviceEquality[col.index]
}

func (cs *ConstraintSystem) instanceEqualityEnabled(col Instance) bool {
	return cs.instanceEquality[col.index]
}
