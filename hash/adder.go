package hash

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// AdderConfig configures the additive placeholder hash, digest = left + right.
// Like the doubler it carries no cryptographic weight; it is the cheapest
// two-input gadget the Merkle verifier can be exercised with.
type AdderConfig struct {
	Advice   [3]plonkish.Advice
	Selector plonkish.Selector
}

// ConfigureAdder installs the a + b − c gate over the three advice columns.
func ConfigureAdder(meta *plonkish.ConstraintSystem, advice [3]plonkish.Advice) AdderConfig {
	cfg := AdderConfig{
		Advice:   advice,
		Selector: meta.Selector(),
	}
	for _, col := range advice {
		meta.EnableEquality(col)
	}

	a := advice[0].Query(plonkish.RotationCur)
	b := advice[1].Query(plonkish.RotationCur)
	out := advice[2].Query(plonkish.RotationCur)
	meta.CreateGate("adder", cfg.Selector, plonkish.Sub(plonkish.Add(a, b), out))
	return cfg
}

// Construct returns a gadget using this configuration.
func (cfg AdderConfig) Construct() Gadget {
	return &adder{cfg: cfg}
}

type adder struct {
	cfg AdderConfig
}

func (a *adder) InputLen() int { return 2 }

func (a *adder) Hash(ly *plonkish.Layouter, inputs ...plonkish.AssignedCell) (plonkish.AssignedCell, error) {
	if len(inputs) != 2 {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: expected 2, got %d", ErrArity, len(inputs))
	}
	var digest plonkish.AssignedCell
	err := ly.AssignRegion("adder", func(r *plonkish.Region) error {
		if _, err := r.CopyAdvice(inputs[0], a.cfg.Advice[0], 0); err != nil {
			return err
		}
		if _, err := r.CopyAdvice(inputs[1], a.cfg.Advice[1], 0); err != nil {
			return err
		}
		var out fr.Element
		left, right := inputs[0].Value(), inputs[1].Value()
		out.Add(&left, &right)
		var err error
		digest, err = r.AssignAdvice(a.cfg.Advice[2], 0, out)
		if err != nil {
			return err
		}
		return r.EnableSelector(a.cfg.Selector, 0)
	})
	return digest, err
}
