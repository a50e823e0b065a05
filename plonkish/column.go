package plonkish

// Rotation addresses a row relative to the one a gate is evaluated at.
type Rotation int

const (
	// RotationCur queries the row the gate is evaluated at.
	RotationCur Rotation = 0
	// RotationNext queries the row immediately below.
	RotationNext Rotation = 1
)

// Advice is a column of prover-supplied witness cells. Advice columns are
// allocated once from a ConstraintSystem during configure and are immutable
// handles afterwards.
type Advice struct {
	index int
}

// Index returns the position of the column in the advice region of the table.
func (c Advice) Index() int { return c.index }

// Query returns an expression reading this column at the given rotation.
func (c Advice) Query(rot Rotation) Expression {
	return queryExpr{col: c, rot: rot}
}

// Instance is a column of public inputs. The verifier learns the values of
// instance cells, in row order.
type Instance struct {
	index int
}

// Index returns the position of the column in the instance region of the table.
func (c Instance) Index() int { return c.index }

// Selector is a per-row flag enabling a gate on the rows where it is set.
type Selector struct {
	index int
}

// Column is implemented by Advice and Instance columns, the two column kinds
// that can take part in copy constraints.
type Column interface {
	isColumn()
}

func (Advice) isColumn()   {}
func (Instance) isColumn() {}
