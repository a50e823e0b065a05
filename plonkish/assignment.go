package plonkish

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type adviceCell struct {
	value    fr.Element
	assigned bool
}

type copyConstraint struct {
	a, b Cell
}

type instanceBinding struct {
	cell   Cell
	column Instance
	row    int
}

// Assignment is the witness table for one synthesis pass: a row-by-column
// grid of advice cells, the set of enabled selector rows, the copy
// constraints declared between cells, and the bindings of cells to public
// input rows.
//
// Cells are write-once. Copy constraints are declarative equalities recorded
// here and resolved by the checker, never write-through references.
type Assignment struct {
	rows int

	advice    [][]adviceCell // [column][row]
	selectors [][]bool       // [selector][row]

	copies   []copyConstraint
	instance []instanceBinding
}

// NewAssignment returns an empty table with the given number of rows, shaped
// for the columns and selectors declared in cs.
func NewAssignment(rows int, cs *ConstraintSystem) *Assignment {
	advice := make([][]adviceCell, cs.numAdvice)
	for i := range advice {
		advice[i] = make([]adviceCell, rows)
	}
	selectors := make([][]bool, cs.numSelectors)
	for i := range selectors {
		selectors[i] = make([]bool, rows)
	}
	return &Assignment{
		rows:      rows,
		advice:    advice,
		selectors: selectors,
	}
}

// Rows returns the number of rows in the table.
func (asg *Assignment) Rows() int { return asg.rows }

// Advice returns the value at (col, row) and whether it was assigned.
// Unassigned cells read as zero, matching the padding a real prover applies.
func (asg *Assignment) Advice(col Advice, row int) (fr.Element, bool) {
	if col.index >= len(asg.advice) || row < 0 || row >= asg.rows {
		return fr.Element{}, false
	}
	c := asg.advice[col.index][row]
	return c.value, c.assigned
}

func (asg *Assignment) assignAdvice(col Advice, row int, v fr.Element) error {
	if col.index >= len(asg.advice) {
		return fmt.Errorf("%w: advice %d", ErrColumnOutOfRange, col.index)
	}
	if row < 0 || row >= asg.rows {
		return fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, asg.rows)
	}
	cell := &asg.advice[col.index][row]
	if cell.assigned {
		return fmt.Errorf("%w: advice %d row %d", ErrCellAssigned, col.index, row)
	}
	cell.value = v
	cell.assigned = true
	return nil
}

func (asg *Assignment) enableSelector(sel Selector, row int) error {
	if sel.index >= len(asg.selectors) {
		return fmt.Errorf("%w: selector %d", ErrColumnOutOfRange, sel.index)
	}
	if row < 0 || row >= asg.rows {
		return fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, asg.rows)
	}
	asg.selectors[sel.index][row] = true
	return nil
}

func (asg *Assignment) constrainEqual(a, b Cell) {
	asg.copies = append(asg.copies, copyConstraint{a: a, b: b})
}

func (asg *Assignment) bindInstance(cell Cell, col Instance, row int) {
	asg.instance = append(asg.instance, instanceBinding{cell: cell, column: col, row: row})
}
