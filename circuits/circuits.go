// Package circuits assembles the gadgets of this module into complete
// provable statements: a preimage circuit (a public digest is the hash of
// private inputs) and a Merkle membership circuit (a public leaf belongs to a
// tree with a public root). Both are parameterized by the hash gadget.
package circuits

import (
	"fmt"

	"github.com/vocdoni/plonkish-primitives/hash"
	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// Hasher selects the hash gadget a circuit is built with.
type Hasher int

const (
	// HashDoubler is the single-input linear placeholder, digest = 2·input.
	HashDoubler Hasher = iota
	// HashAdder is the two-input additive placeholder, digest = left + right.
	HashAdder
	// HashSponge is the Poseidon2 sponge.
	HashSponge
)

// Arity returns the number of inputs the gadget consumes per hash.
func (h Hasher) Arity() int {
	if h == HashDoubler {
		return 1
	}
	return 2
}

func (h Hasher) String() string {
	switch h {
	case HashDoubler:
		return "doubler"
	case HashAdder:
		return "adder"
	case HashSponge:
		return "sponge"
	default:
		return fmt.Sprintf("hasher(%d)", int(h))
	}
}

// configure builds the selected gadget's configuration over a shared set of
// three advice columns, so every hasher variant fits the same table layout.
func (h Hasher) configure(meta *plonkish.ConstraintSystem, advice [3]plonkish.Advice,
	inputLen int) (hash.Config, error) {
	switch h {
	case HashDoubler:
		if inputLen != 1 {
			return nil, fmt.Errorf("%w: doubler takes 1 input, got %d", plonkish.ErrInvalidShape, inputLen)
		}
		return hash.ConfigureDoubler(meta, [2]plonkish.Advice{advice[0], advice[1]}), nil
	case HashAdder:
		if inputLen != 2 {
			return nil, fmt.Errorf("%w: adder takes 2 inputs, got %d", plonkish.ErrInvalidShape, inputLen)
		}
		return hash.ConfigureAdder(meta, advice), nil
	case HashSponge:
		return hash.ConfigureSponge(meta, advice, inputLen)
	default:
		return nil, fmt.Errorf("%w: unknown hasher %d", plonkish.ErrInvalidShape, int(h))
	}
}
