package plonkish

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	qt "github.com/frankban/quicktest"
)

// mulCircuit proves c = a * b against a public product: a and b are loaded on
// one row, the product on the same row third column, bound to instance row 0.
type mulCircuit struct {
	a, b fr.Element
}

type mulConfig struct {
	advice   [3]Advice
	instance Instance
	sel      Selector
}

func (c *mulCircuit) WithoutWitnesses() Circuit[mulConfig] {
	return &mulCircuit{}
}

func (c *mulCircuit) Configure(meta *ConstraintSystem) (mulConfig, error) {
	cfg := mulConfig{
		advice:   [3]Advice{meta.AdviceColumn(), meta.AdviceColumn(), meta.AdviceColumn()},
		instance: meta.InstanceColumn(),
		sel:      meta.Selector(),
	}
	for _, col := range cfg.advice {
		meta.EnableEquality(col)
	}
	meta.EnableEquality(cfg.instance)

	a := cfg.advice[0].Query(RotationCur)
	b := cfg.advice[1].Query(RotationCur)
	out := cfg.advice[2].Query(RotationCur)
	meta.CreateGate("mul", cfg.sel, Sub(Mul(a, b), out))
	return cfg, nil
}

func (c *mulCircuit) Synthesize(cfg mulConfig, ly *Layouter) error {
	var product AssignedCell
	err := ly.AssignRegion("mul", func(r *Region) error {
		if _, err := r.AssignAdvice(cfg.advice[0], 0, c.a); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(cfg.advice[1], 0, c.b); err != nil {
			return err
		}
		var out fr.Element
		out.Mul(&c.a, &c.b)
		var err error
		product, err = r.AssignAdvice(cfg.advice[2], 0, out)
		if err != nil {
			return err
		}
		return r.EnableSelector(cfg.sel, 0)
	})
	if err != nil {
		return err
	}
	return ly.ConstrainInstance(product.Cell(), cfg.instance, 0)
}

func TestMockProverSatisfied(t *testing.T) {
	c := qt.New(t)

	circuit := &mulCircuit{a: fr.NewElement(6), b: fr.NewElement(7)}
	prover, err := Run[mulConfig](4, circuit, [][]fr.Element{{fr.NewElement(42)}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.IsNil)
}

func TestMockProverInstanceMismatch(t *testing.T) {
	c := qt.New(t)

	circuit := &mulCircuit{a: fr.NewElement(6), b: fr.NewElement(7)}
	prover, err := Run[mulConfig](4, circuit, [][]fr.Element{{fr.NewElement(41)}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.ErrorIs, ErrNotSatisfied)
	c.Assert(prover.Failures(), qt.HasLen, 1)
}

func TestMockProverWrongInstanceColumns(t *testing.T) {
	c := qt.New(t)

	circuit := &mulCircuit{a: fr.NewElement(2), b: fr.NewElement(3)}
	_, err := Run[mulConfig](4, circuit, nil)
	c.Assert(err, qt.IsNotNil)
}

// brokenGateCircuit enables the mul gate on a row whose product cell is
// deliberately wrong: the assignment must be rejected even though no copy or
// instance constraint is violated.
type brokenGateCircuit struct {
	mulCircuit
}

func (c *brokenGateCircuit) WithoutWitnesses() Circuit[mulConfig] {
	return &brokenGateCircuit{}
}

func (c *brokenGateCircuit) Synthesize(cfg mulConfig, ly *Layouter) error {
	return ly.AssignRegion("broken", func(r *Region) error {
		if _, err := r.AssignAdvice(cfg.advice[0], 0, c.a); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(cfg.advice[1], 0, c.b); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(cfg.advice[2], 0, fr.NewElement(1)); err != nil {
			return err
		}
		return r.EnableSelector(cfg.sel, 0)
	})
}

func TestMockProverGateFailure(t *testing.T) {
	c := qt.New(t)

	circuit := &brokenGateCircuit{mulCircuit{a: fr.NewElement(6), b: fr.NewElement(7)}}
	prover, err := Run[mulConfig](4, circuit, [][]fr.Element{{}})
	c.Assert(err, qt.IsNil)

	err = prover.Verify()
	c.Assert(err, qt.ErrorIs, ErrNotSatisfied)
	c.Assert(prover.Failures()[0].Gate, qt.Equals, "mul")
	c.Assert(prover.Failures()[0].Row, qt.Equals, 0)
}

// doubleWriteCircuit assigns the same cell twice, which must surface as an
// assignment error during synthesis.
type doubleWriteCircuit struct {
	mulCircuit
}

func (c *doubleWriteCircuit) WithoutWitnesses() Circuit[mulConfig] {
	return &doubleWriteCircuit{}
}

func (c *doubleWriteCircuit) Synthesize(cfg mulConfig, ly *Layouter) error {
	return ly.AssignRegion("double write", func(r *Region) error {
		if _, err := r.AssignAdvice(cfg.advice[0], 0, c.a); err != nil {
			return err
		}
		_, err := r.AssignAdvice(cfg.advice[0], 0, c.b)
		return err
	})
}

func TestAssignmentWriteOnce(t *testing.T) {
	c := qt.New(t)

	_, err := Run[mulConfig](4, &doubleWriteCircuit{}, [][]fr.Element{{}})
	c.Assert(err, qt.ErrorIs, ErrCellAssigned)
}

// tallCircuit writes one cell per row for four rows, so it cannot fit in a
// 2^1-row table.
type tallCircuit struct {
	mulCircuit
}

func (c *tallCircuit) WithoutWitnesses() Circuit[mulConfig] {
	return &tallCircuit{}
}

func (c *tallCircuit) Synthesize(cfg mulConfig, ly *Layouter) error {
	return ly.AssignRegion("tall", func(r *Region) error {
		for offset := 0; offset < 4; offset++ {
			if _, err := r.AssignAdvice(cfg.advice[0], offset, fr.NewElement(uint64(offset))); err != nil {
				return err
			}
		}
		return nil
	})
}

func TestRegionRowOutOfRange(t *testing.T) {
	c := qt.New(t)

	_, err := Run[mulConfig](1, &tallCircuit{}, [][]fr.Element{{}})
	c.Assert(err, qt.ErrorIs, ErrRowOutOfRange)

	_, err = Run[mulConfig](2, &tallCircuit{}, [][]fr.Element{{}})
	c.Assert(err, qt.IsNil)
}

// TestLayoutIsWitnessIndependent checks the backend contract: synthesis must
// lay out the same assigned cells and selector rows for any witness,
// including the erased clone used for shape analysis.
func TestLayoutIsWitnessIndependent(t *testing.T) {
	c := qt.New(t)

	witnessed := &mulCircuit{a: fr.NewElement(6), b: fr.NewElement(7)}
	other := &mulCircuit{a: fr.NewElement(1000), b: fr.NewElement(2000)}

	runs := []struct {
		circuit Circuit[mulConfig]
		product uint64
	}{
		{witnessed, 42},
		{other, 2000000},
		{witnessed.WithoutWitnesses(), 0},
	}
	provers := make([]*MockProver, len(runs))
	for i, run := range runs {
		var err error
		provers[i], err = Run[mulConfig](4, run.circuit, [][]fr.Element{{fr.NewElement(run.product)}})
		c.Assert(err, qt.IsNil)
		c.Assert(provers[i].Verify(), qt.IsNil)
	}

	base := provers[0].Assignment()
	for _, p := range provers[1:] {
		asg := p.Assignment()
		for col := range base.advice {
			for row := 0; row < base.rows; row++ {
				c.Assert(asg.advice[col][row].assigned, qt.Equals, base.advice[col][row].assigned)
			}
		}
		for sel := range base.selectors {
			for row := 0; row < base.rows; row++ {
				c.Assert(asg.selectors[sel][row], qt.Equals, base.selectors[sel][row])
			}
		}
	}
}

func TestLayouterPacksRegionsDeterministically(t *testing.T) {
	c := qt.New(t)

	circuit := &mulCircuit{a: fr.NewElement(3), b: fr.NewElement(5)}
	instance := [][]fr.Element{{fr.NewElement(15)}}

	first, err := Run[mulConfig](4, circuit, instance)
	c.Assert(err, qt.IsNil)
	second, err := Run[mulConfig](4, circuit, instance)
	c.Assert(err, qt.IsNil)

	cfg := mulConfig{advice: [3]Advice{{0}, {1}, {2}}}
	for _, col := range cfg.advice {
		for row := 0; row < first.Assignment().Rows(); row++ {
			va, oka := first.Assignment().Advice(col, row)
			vb, okb := second.Assignment().Advice(col, row)
			c.Assert(oka, qt.Equals, okb)
			c.Assert(va.Equal(&vb), qt.IsTrue)
		}
	}
	c.Assert(first.Verify(), qt.IsNil)
	c.Assert(second.Verify(), qt.IsNil)
}
