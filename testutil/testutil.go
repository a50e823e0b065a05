// Package testutil builds the native-side fixtures the circuit tests verify
// against: reference folds for every hash gadget and a pebble-backed binary
// Merkle tree that yields (root, siblings, direction bits) path fixtures.
package testutil

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/hash"
)

// NodeFunc combines two child digests into a parent digest.
type NodeFunc func(left, right fr.Element) fr.Element

// AdderNode is the native counterpart of the additive placeholder gadget.
func AdderNode(left, right fr.Element) fr.Element {
	var out fr.Element
	out.Add(&left, &right)
	return out
}

// DoublerNode is the native counterpart of the linear placeholder gadget; it
// takes one input, so the right operand is ignored.
func DoublerNode(left, _ fr.Element) fr.Element {
	var out fr.Element
	out.Double(&left)
	return out
}

// SpongeNode is the native counterpart of the Poseidon2 sponge gadget.
func SpongeNode(left, right fr.Element) fr.Element {
	out, err := hash.SpongeDigest(left, right)
	if err != nil {
		panic(err) // two inputs always fit the rate
	}
	return out
}

// FoldPath recomputes a Merkle root from a leaf, walking the path bottom-up:
// at layer i the running digest pairs with siblings[i], ordered by bits[i]
// (0 keeps the digest on the left).
func FoldPath(node NodeFunc, leaf fr.Element, siblings, bits []fr.Element) fr.Element {
	digest := leaf
	for i := range siblings {
		left, right := digest, siblings[i]
		if !bits[i].IsZero() {
			left, right = right, left
		}
		digest = node(left, right)
	}
	return digest
}

// RandomElements returns n uniformly random field elements.
func RandomElements(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		if _, err := out[i].SetRandom(); err != nil {
			panic(err)
		}
	}
	return out
}

// RandomBits returns n random direction bits as field elements in {0, 1}.
func RandomBits(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		var v fr.Element
		if _, err := v.SetRandom(); err != nil {
			panic(err)
		}
		if v.Bits()[0]&1 == 1 {
			out[i].SetOne()
		}
	}
	return out
}
