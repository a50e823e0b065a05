package plonkish

import "errors"

var (
	// ErrCellAssigned is returned when a cell that already holds a value is
	// written again. The table is write-once; a double write is always a
	// gadget composition bug.
	ErrCellAssigned = errors.New("cell already assigned")
	// ErrRowOutOfRange is returned when an assignment lands outside the
	// 2^k rows the prover was run with.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrColumnOutOfRange is returned when a column handle does not belong
	// to the constraint system the assignment was built for.
	ErrColumnOutOfRange = errors.New("column out of range")
	// ErrEqualityNotEnabled is returned when a copy constraint involves a
	// column for which equality was not enabled at configure time.
	ErrEqualityNotEnabled = errors.New("equality not enabled on column")
	// ErrInvalidShape is returned by gadget configuration when the declared
	// columns cannot host the gadget.
	ErrInvalidShape = errors.New("invalid gadget shape")
	// ErrNotSatisfied is returned by MockProver.Verify when at least one
	// constraint does not hold under the assignment.
	ErrNotSatisfied = errors.New("constraint system not satisfied")
)
