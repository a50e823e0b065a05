// Package hash provides the in-circuit hash gadgets used by the Merkle path
// verifier: two trivial placeholder hashes that exist only to exercise the
// surrounding circuitry, and a sponge built on the Poseidon2 permutation.
//
// Every gadget follows the same contract: a Configure function declares its
// columns and gates once per circuit and returns a config, Construct turns a
// config into a gadget, and Hash copies already committed input cells into
// the gadget's own region and returns the digest cell.
package hash

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// ErrArity is returned when Hash receives a number of inputs different from
// the gadget's input length.
var ErrArity = errors.New("wrong number of hash inputs")

// Gadget hashes committed cells inside the circuit.
type Gadget interface {
	// InputLen returns the number of input cells Hash expects.
	InputLen() int
	// Hash allocates fresh cells, copy-constrains the inputs into them,
	// enables the gadget's gates and returns the digest cell.
	Hash(ly *plonkish.Layouter, inputs ...plonkish.AssignedCell) (plonkish.AssignedCell, error)
}

// Config is an immutable gadget configuration, produced once per circuit and
// shared by every gadget instance built from it.
type Config interface {
	Construct() Gadget
}

// LoadPrivate commits a private witness value into a fresh cell of col.
func LoadPrivate(ly *plonkish.Layouter, col plonkish.Advice, v fr.Element) (plonkish.AssignedCell, error) {
	var cell plonkish.AssignedCell
	err := ly.AssignRegion("load private", func(r *plonkish.Region) error {
		var err error
		cell, err = r.AssignAdvice(col, 0, v)
		return err
	})
	return cell, err
}

// ExposePublic ties a committed cell to the instance column at the given row.
func ExposePublic(ly *plonkish.Layouter, cell plonkish.AssignedCell, col plonkish.Instance, row int) error {
	return ly.ConstrainInstance(cell.Cell(), col, row)
}
