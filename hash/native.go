package hash

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
)

// Sponge shape shared by the native reference, the plonkish gadget and the
// gnark companion verifier. Changing one side without the others breaks
// digest compatibility.
const (
	SpongeWidth         = 3
	SpongeRate          = 2
	SpongeFullRounds    = 8
	SpongePartialRounds = 56
)

// NewSpongePermutation returns the Poseidon2 permutation the sponge gadget
// wraps. The permutation is the external primitive; this module only absorbs
// into it and reads the digest out.
func NewSpongePermutation() *poseidon2.Permutation {
	return poseidon2.NewPermutation(SpongeWidth, SpongeFullRounds, SpongePartialRounds)
}

var nativePerm = NewSpongePermutation()

// SpongeDigest is the native counterpart of the sponge gadget: it loads up to
// SpongeRate inputs into a zero state, applies one permutation and returns
// state slot 0. A circuit digest and this value always agree.
func SpongeDigest(inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) == 0 || len(inputs) > SpongeRate {
		return fr.Element{}, fmt.Errorf("%w: expected 1..%d, got %d", ErrArity, SpongeRate, len(inputs))
	}
	state := make([]fr.Element, SpongeWidth)
	copy(state, inputs)
	if err := nativePerm.Permutation(state); err != nil {
		return fr.Element{}, err
	}
	return state[0], nil
}
