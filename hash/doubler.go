package hash

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// DoublerConfig configures the linear placeholder hash, digest = 2·input.
// It is not a hash in any meaningful sense; it exists so the surrounding
// machinery can be tested with a single-input gadget of trivial cost.
type DoublerConfig struct {
	Advice   [2]plonkish.Advice
	Selector plonkish.Selector
}

// ConfigureDoubler installs the 2·a − b gate over the two advice columns.
func ConfigureDoubler(meta *plonkish.ConstraintSystem, advice [2]plonkish.Advice) DoublerConfig {
	cfg := DoublerConfig{
		Advice:   advice,
		Selector: meta.Selector(),
	}
	for _, col := range advice {
		meta.EnableEquality(col)
	}

	a := advice[0].Query(plonkish.RotationCur)
	b := advice[1].Query(plonkish.RotationCur)
	meta.CreateGate("doubler", cfg.Selector,
		plonkish.Sub(plonkish.Mul(plonkish.ConstantUint64(2), a), b))
	return cfg
}

// Construct returns a gadget using this configuration.
func (cfg DoublerConfig) Construct() Gadget {
	return &doubler{cfg: cfg}
}

type doubler struct {
	cfg DoublerConfig
}

func (d *doubler) InputLen() int { return 1 }

func (d *doubler) Hash(ly *plonkish.Layouter, inputs ...plonkish.AssignedCell) (plonkish.AssignedCell, error) {
	if len(inputs) != 1 {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: expected 1, got %d", ErrArity, len(inputs))
	}
	var digest plonkish.AssignedCell
	err := ly.AssignRegion("doubler", func(r *plonkish.Region) error {
		if _, err := r.CopyAdvice(inputs[0], d.cfg.Advice[0], 0); err != nil {
			return err
		}
		var out fr.Element
		in := inputs[0].Value()
		out.Double(&in)
		var err error
		digest, err = r.AssignAdvice(d.cfg.Advice[1], 0, out)
		if err != nil {
			return err
		}
		return r.EnableSelector(d.cfg.Selector, 0)
	})
	return digest, err
}
