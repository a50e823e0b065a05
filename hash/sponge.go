package hash

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"

	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// SpongeConfig configures the Poseidon2 sponge gadget: inputLen elements are
// absorbed into the rate slots of a width-3 state, the remaining slots are
// zero-constrained, one permutation is applied and state slot 0 becomes the
// digest.
type SpongeConfig struct {
	State    [SpongeWidth]plonkish.Advice
	Selector plonkish.Selector

	inputLen int
	perm     *poseidon2.Permutation
}

// ConfigureSponge installs the permutation gate and the padding gate over the
// state columns. inputLen must satisfy 1 ≤ inputLen ≤ SpongeRate; anything
// else is a shape error.
func ConfigureSponge(meta *plonkish.ConstraintSystem, state [SpongeWidth]plonkish.Advice,
	inputLen int) (SpongeConfig, error) {
	if inputLen < 1 || inputLen > SpongeRate {
		return SpongeConfig{}, fmt.Errorf("%w: sponge input length %d, rate %d",
			plonkish.ErrInvalidShape, inputLen, SpongeRate)
	}
	cfg := SpongeConfig{
		State:    state,
		Selector: meta.Selector(),
		inputLen: inputLen,
		perm:     NewSpongePermutation(),
	}
	for _, col := range state {
		meta.EnableEquality(col)
	}

	meta.CreatePermutationGate("sponge permutation", cfg.Selector, state[:], cfg.perm.Permutation)

	// unused rate slots and the capacity slot must be zero on absorb rows,
	// otherwise the digest would depend on values the inputs never committed
	pads := make([]plonkish.Expression, 0, SpongeWidth-inputLen)
	for i := inputLen; i < SpongeWidth; i++ {
		pads = append(pads, state[i].Query(plonkish.RotationCur))
	}
	meta.CreateGate("sponge padding", cfg.Selector, pads...)
	return cfg, nil
}

// Construct returns a gadget using this configuration.
func (cfg SpongeConfig) Construct() Gadget {
	return &sponge{cfg: cfg}
}

type sponge struct {
	cfg SpongeConfig
}

func (s *sponge) InputLen() int { return s.cfg.inputLen }

func (s *sponge) Hash(ly *plonkish.Layouter, inputs ...plonkish.AssignedCell) (plonkish.AssignedCell, error) {
	if len(inputs) != s.cfg.inputLen {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: expected %d, got %d",
			ErrArity, s.cfg.inputLen, len(inputs))
	}
	var digest plonkish.AssignedCell
	err := ly.AssignRegion("sponge", func(r *plonkish.Region) error {
		state := make([]fr.Element, SpongeWidth)
		for i, in := range inputs {
			if _, err := r.CopyAdvice(in, s.cfg.State[i], 0); err != nil {
				return err
			}
			state[i] = in.Value()
		}
		for i := len(inputs); i < SpongeWidth; i++ {
			if _, err := r.AssignAdvice(s.cfg.State[i], 0, fr.Element{}); err != nil {
				return err
			}
		}
		if err := r.EnableSelector(s.cfg.Selector, 0); err != nil {
			return err
		}

		if err := s.cfg.perm.Permutation(state); err != nil {
			return fmt.Errorf("poseidon2 permutation: %w", err)
		}
		for i := SpongeWidth - 1; i > 0; i-- {
			if _, err := r.AssignAdvice(s.cfg.State[i], 1, state[i]); err != nil {
				return err
			}
		}
		var err error
		digest, err = r.AssignAdvice(s.cfg.State[0], 1, state[0])
		return err
	})
	return digest, err
}
