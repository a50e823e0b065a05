package plonkish

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Layouter hands out regions of the table to gadgets during one synthesis
// pass. Regions are packed one after another in the order they are requested,
// so an identical sequence of requests always yields an identical layout.
type Layouter struct {
	cs      *ConstraintSystem
	asg     *Assignment
	nextRow int
}

// NewLayouter returns a layouter writing into asg, for a circuit shaped by cs.
func NewLayouter(cs *ConstraintSystem, asg *Assignment) *Layouter {
	return &Layouter{cs: cs, asg: asg}
}

// AssignRegion opens a contiguous block of rows, runs fn against it and
// reserves every row the closure touched. The name only appears in errors.
func (ly *Layouter) AssignRegion(name string, fn func(r *Region) error) error {
	region := &Region{ly: ly, start: ly.nextRow}
	if err := fn(region); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	ly.nextRow += region.height
	return nil
}

// ConstrainInstance binds an internal cell to the instance column at the
// given row: the witness is only satisfying if both hold the same value.
func (ly *Layouter) ConstrainInstance(cell Cell, col Instance, row int) error {
	if !ly.cs.instanceEqualityEnabled(col) {
		return fmt.Errorf("%w: instance %d", ErrEqualityNotEnabled, col.index)
	}
	if !ly.cs.adviceEqualityEnabled(cell.Column) {
		return fmt.Errorf("%w: advice %d", ErrEqualityNotEnabled, cell.Column.index)
	}
	if row < 0 {
		return fmt.Errorf("%w: instance row %d", ErrRowOutOfRange, row)
	}
	ly.asg.bindInstance(cell, col, row)
	return nil
}

// Region is a block of rows with local addressing, the unit a single gadget
// step is laid out in.
type Region struct {
	ly     *Layouter
	start  int
	height int
}

func (r *Region) touch(offset int) {
	if offset+1 > r.height {
		r.height = offset + 1
	}
}

// AssignAdvice writes v into the cell at (col, offset) within the region.
func (r *Region) AssignAdvice(col Advice, offset int, v fr.Element) (AssignedCell, error) {
	if offset < 0 {
		return AssignedCell{}, fmt.Errorf("%w: offset %d", ErrRowOutOfRange, offset)
	}
	row := r.start + offset
	if err := r.ly.asg.assignAdvice(col, row, v); err != nil {
		return AssignedCell{}, err
	}
	r.touch(offset)
	return AssignedCell{cell: Cell{Column: col, Row: row}, value: v}, nil
}

// CopyAdvice writes the value of src into (col, offset) and records a copy
// constraint between the new cell and src, so the two must agree for the
// witness to be valid.
func (r *Region) CopyAdvice(src AssignedCell, col Advice, offset int) (AssignedCell, error) {
	if !r.ly.cs.adviceEqualityEnabled(src.cell.Column) {
		return AssignedCell{}, fmt.Errorf("%w: advice %d", ErrEqualityNotEnabled, src.cell.Column.index)
	}
	if !r.ly.cs.adviceEqualityEnabled(col) {
		return AssignedCell{}, fmt.Errorf("%w: advice %d", ErrEqualityNotEnabled, col.index)
	}
	dst, err := r.AssignAdvice(col, offset, src.value)
	if err != nil {
		return AssignedCell{}, err
	}
	r.ly.asg.constrainEqual(src.cell, dst.cell)
	return dst, nil
}

// EnableSelector turns a gate on at the given region row.
func (r *Region) EnableSelector(sel Selector, offset int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset %d", ErrRowOutOfRange, offset)
	}
	if err := r.ly.asg.enableSelector(sel, r.start+offset); err != nil {
		return err
	}
	r.touch(offset)
	return nil
}
