package plonkish

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Cell is the coordinate of one advice cell in the table.
type Cell struct {
	Column Advice
	Row    int
}

// AssignedCell is a cell together with the value written into it. Cells are
// write-once: once produced, an AssignedCell never changes and can be copied
// into other regions through copy constraints.
type AssignedCell struct {
	cell  Cell
	value fr.Element
}

// Cell returns the coordinate of the cell.
func (a AssignedCell) Cell() Cell { return a.cell }

// Value returns the value written into the cell.
func (a AssignedCell) Value() fr.Element { return a.value }
