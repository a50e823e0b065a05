// Package tree provides the production-backend twin of the plonkish Merkle
// membership circuit: the same path statement written against the gnark
// frontend, using the same Poseidon2 sponge, so proofs over real backends and
// the plonkish mock checker can be cross-validated on identical fixtures.
package tree

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/permutation/poseidon2"

	"github.com/vocdoni/plonkish-primitives/hash"
)

// spongeDigest absorbs two operands into a zero state, applies one Poseidon2
// permutation and returns state slot 0, mirroring hash.SpongeDigest.
func spongeDigest(api frontend.API, left, right frontend.Variable) (frontend.Variable, error) {
	perm, err := poseidon2.NewPoseidon2FromParameters(api,
		hash.SpongeWidth, hash.SpongeFullRounds, hash.SpongePartialRounds)
	if err != nil {
		return nil, err
	}
	state := []frontend.Variable{left, right, 0}
	if err := perm.Permutation(state); err != nil {
		return nil, err
	}
	return state[0], nil
}

// CheckPath recomputes the root of a binary Merkle tree from a leaf, the
// ordered sibling path and the per-layer direction bits, and asserts it
// equals root. A bit of 0 keeps the running digest as the left operand; each
// bit is constrained to be boolean.
func CheckPath(api frontend.API, leaf, root frontend.Variable, siblings, bits []frontend.Variable) error {
	if len(siblings) != len(bits) {
		return fmt.Errorf("%d siblings, %d direction bits", len(siblings), len(bits))
	}
	digest := leaf
	for i := range siblings {
		api.AssertIsBoolean(bits[i])
		left := api.Select(bits[i], siblings[i], digest)
		right := api.Select(bits[i], digest, siblings[i])
		var err error
		if digest, err = spongeDigest(api, left, right); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	api.AssertIsEqual(digest, root)
	return nil
}
