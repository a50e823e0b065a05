// Package merkle provides the in-circuit Merkle path verifier: starting from
// a committed leaf, it folds one hash per tree layer, conditionally swapping
// the operand order according to a per-layer direction bit.
package merkle

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/hash"
	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// ErrPathShape is returned when the sibling list and the direction bit list
// have different lengths.
var ErrPathShape = errors.New("siblings and direction bits length mismatch")

// Config holds the verifier's columns, selectors and the nested hash gadget
// configuration. It is produced once per circuit by Configure.
type Config struct {
	Advice   [3]plonkish.Advice
	Instance plonkish.Instance

	BoolSelector plonkish.Selector
	SwapSelector plonkish.Selector

	Hash hash.Config
}

// Configure installs the boolean and swap gates over the given columns and
// stores the hash gadget configuration to be used on every layer. The hash
// gadget itself must already be configured by the caller, so several gadgets
// can share one column set.
func Configure(meta *plonkish.ConstraintSystem, advice [3]plonkish.Advice,
	instance plonkish.Instance, hcfg hash.Config) Config {
	cfg := Config{
		Advice:       advice,
		Instance:     instance,
		BoolSelector: meta.Selector(),
		SwapSelector: meta.Selector(),
		Hash:         hcfg,
	}
	for _, col := range advice {
		meta.EnableEquality(col)
	}
	meta.EnableEquality(instance)

	a := advice[0].Query(plonkish.RotationCur)
	b := advice[1].Query(plonkish.RotationCur)
	bit := advice[2].Query(plonkish.RotationCur)
	l := advice[0].Query(plonkish.RotationNext)
	r := advice[1].Query(plonkish.RotationNext)

	// bit must be 0 or 1
	meta.CreateGate("bool", cfg.BoolSelector,
		plonkish.Mul(bit, plonkish.Sub(plonkish.ConstantUint64(1), bit)))

	// single-polynomial if/else: bit=0 forces l=a, r=b; bit=1 forces l=b, r=a
	meta.CreateGate("swap", cfg.SwapSelector,
		plonkish.Sub(
			plonkish.Sub(
				plonkish.Mul(bit, plonkish.Mul(plonkish.ConstantUint64(2), plonkish.Sub(b, a))),
				plonkish.Sub(l, a)),
			plonkish.Sub(b, r)))
	return cfg
}

// Chip verifies Merkle paths against one Config.
type Chip struct {
	cfg Config
}

// New constructs a chip from a configuration.
func New(cfg Config) *Chip {
	return &Chip{cfg: cfg}
}

// LoadPrivate commits a private witness value into a fresh cell.
func (ch *Chip) LoadPrivate(ly *plonkish.Layouter, v fr.Element) (plonkish.AssignedCell, error) {
	return hash.LoadPrivate(ly, ch.cfg.Advice[0], v)
}

// ExposePublic ties a committed cell to the instance column at the given row.
func (ch *Chip) ExposePublic(ly *plonkish.Layouter, cell plonkish.AssignedCell, row int) error {
	return ly.ConstrainInstance(cell.Cell(), ch.cfg.Instance, row)
}

// proveLayer lays out one tree layer: the running digest, the sibling and the
// direction bit on one row under the boolean and swap gates, the resolved
// (left, right) pair on the next, then one hash gadget call on the pair.
func (ch *Chip) proveLayer(ly *plonkish.Layouter, digest plonkish.AssignedCell,
	sibling, bit fr.Element) (plonkish.AssignedCell, error) {
	var left, right plonkish.AssignedCell
	err := ly.AssignRegion("merkle layer", func(r *plonkish.Region) error {
		if _, err := r.CopyAdvice(digest, ch.cfg.Advice[0], 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(ch.cfg.Advice[1], 0, sibling); err != nil {
			return err
		}
		if _, err := r.AssignAdvice(ch.cfg.Advice[2], 0, bit); err != nil {
			return err
		}
		if err := r.EnableSelector(ch.cfg.BoolSelector, 0); err != nil {
			return err
		}
		if err := r.EnableSelector(ch.cfg.SwapSelector, 0); err != nil {
			return err
		}

		// the conditional lives here, at witness time; the swap gate holds
		// the assignment to the same ordering
		l, rv := digest.Value(), sibling
		if !bit.IsZero() {
			l, rv = rv, l
		}
		var err error
		if left, err = r.AssignAdvice(ch.cfg.Advice[0], 1, l); err != nil {
			return err
		}
		right, err = r.AssignAdvice(ch.cfg.Advice[1], 1, rv)
		return err
	})
	if err != nil {
		return plonkish.AssignedCell{}, err
	}

	gadget := ch.cfg.Hash.Construct()
	if gadget.InputLen() == 1 {
		return gadget.Hash(ly, left)
	}
	return gadget.Hash(ly, left, right)
}

// ProvePath folds the whole path, layer by layer, threading each layer's
// digest into the next layer's first slot through a copy constraint. An empty
// path returns the leaf cell itself.
func (ch *Chip) ProvePath(ly *plonkish.Layouter, leaf plonkish.AssignedCell,
	siblings, bits []fr.Element) (plonkish.AssignedCell, error) {
	if len(siblings) != len(bits) {
		return plonkish.AssignedCell{}, fmt.Errorf("%w: %d siblings, %d bits",
			ErrPathShape, len(siblings), len(bits))
	}
	digest := leaf
	for i := range siblings {
		var err error
		digest, err = ch.proveLayer(ly, digest, siblings[i], bits[i])
		if err != nil {
			return plonkish.AssignedCell{}, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return digest, nil
}
