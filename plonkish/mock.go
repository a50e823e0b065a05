package plonkish

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/logger"
)

// Failure describes one constraint the assignment does not satisfy.
type Failure struct {
	// Gate is the name of the failing gate, or a description for copy and
	// instance failures.
	Gate string
	// Row is the absolute table row the failure occurred at, or -1 when the
	// failure is not row-local.
	Row int
}

func (f Failure) String() string {
	if f.Row < 0 {
		return f.Gate
	}
	return fmt.Sprintf("%s at row %d", f.Gate, f.Row)
}

// MockProver runs a circuit against a concrete witness and public input
// vector and checks every constraint directly, without producing a proof.
// It is the satisfiability harness the tests in this module are built on.
type MockProver struct {
	cs       *ConstraintSystem
	asg      *Assignment
	instance [][]fr.Element

	failures []Failure
}

// Run configures the circuit, synthesizes it into a table of 2^k rows and
// returns a prover ready to verify. Configuration runs against a
// witness-erased clone, as backend preprocessing would, so a Configure that
// peeks at witness values is caught here. instance holds one value vector per
// instance column, in allocation order.
func Run[C any](k int, circuit Circuit[C], instance [][]fr.Element) (*MockProver, error) {
	cs := &ConstraintSystem{}
	cfg, err := circuit.WithoutWitnesses().Configure(cs)
	if err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}
	if len(instance) != cs.numInstance {
		return nil, fmt.Errorf("expected %d instance columns, got %d", cs.numInstance, len(instance))
	}
	asg := NewAssignment(1<<k, cs)
	if err := circuit.Synthesize(cfg, NewLayouter(cs, asg)); err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return &MockProver{cs: cs, asg: asg, instance: instance}, nil
}

// Assignment returns the witness table produced by the synthesis pass.
func (p *MockProver) Assignment() *Assignment { return p.asg }

// Failures returns the failures found by the last Verify call.
func (p *MockProver) Failures() []Failure { return p.failures }

// Verify checks every gate row, permutation gate row, copy constraint and
// instance binding. It returns nil iff the assignment satisfies the circuit.
func (p *MockProver) Verify() error {
	p.failures = p.failures[:0]
	p.verifyGates()
	p.verifyPermutationGates()
	p.verifyCopies()
	p.verifyInstance()
	if len(p.failures) == 0 {
		return nil
	}
	log := logger.Logger()
	for _, f := range p.failures {
		log.Debug().Str("failure", f.String()).Msg("unsatisfied constraint")
	}
	return fmt.Errorf("%w: %d failures, first: %s", ErrNotSatisfied, len(p.failures), p.failures[0])
}

func (p *MockProver) get(col Advice, row int) fr.Element {
	v, _ := p.asg.Advice(col, row)
	return v
}

func (p *MockProver) verifyGates() {
	for _, g := range p.cs.gates {
		reach := 0
		for _, poly := range g.polys {
			reach = max(reach, maxRotation(poly))
		}
		for row := 0; row < p.asg.rows; row++ {
			if !p.asg.selectors[g.selector.index][row] {
				continue
			}
			// a gate reading past the end of the table fails closed
			if row+reach >= p.asg.rows {
				p.failures = append(p.failures, Failure{Gate: g.name, Row: row})
				continue
			}
			for _, poly := range g.polys {
				if v := poly.evalAt(row, p.get); !v.IsZero() {
					p.failures = append(p.failures, Failure{Gate: g.name, Row: row})
				}
			}
		}
	}
}

func (p *MockProver) verifyPermutationGates() {
	for _, g := range p.cs.permGates {
		for row := 0; row < p.asg.rows; row++ {
			if !p.asg.selectors[g.selector.index][row] {
				continue
			}
			if row+1 >= p.asg.rows {
				p.failures = append(p.failures, Failure{Gate: g.name, Row: row})
				continue
			}
			state := make([]fr.Element, len(g.state))
			for i, col := range g.state {
				state[i] = p.get(col, row)
			}
			if err := g.f(state); err != nil {
				p.failures = append(p.failures, Failure{Gate: g.name, Row: row})
				continue
			}
			for i, col := range g.state {
				if next := p.get(col, row+1); !next.Equal(&state[i]) {
					p.failures = append(p.failures, Failure{Gate: g.name, Row: row})
					break
				}
			}
		}
	}
}

func (p *MockProver) verifyCopies() {
	for _, c := range p.asg.copies {
		va := p.get(c.a.Column, c.a.Row)
		vb := p.get(c.b.Column, c.b.Row)
		if !va.Equal(&vb) {
			p.failures = append(p.failures, Failure{
				Gate: fmt.Sprintf("copy advice %d row %d != advice %d row %d",
					c.a.Column.index, c.a.Row, c.b.Column.index, c.b.Row),
				Row: -1,
			})
		}
	}
}

func (p *MockProver) verifyInstance() {
	for _, b := range p.asg.instance {
		if b.column.index >= len(p.instance) || b.row >= len(p.instance[b.column.index]) {
			p.failures = append(p.failures, Failure{
				Gate: fmt.Sprintf("instance %d row %d out of range", b.column.index, b.row),
				Row:  -1,
			})
			continue
		}
		want := p.instance[b.column.index][b.row]
		got := p.get(b.cell.Column, b.cell.Row)
		if !got.Equal(&want) {
			p.failures = append(p.failures, Failure{
				Gate: fmt.Sprintf("instance %d row %d", b.column.index, b.row),
				Row:  -1,
			})
		}
	}
}
