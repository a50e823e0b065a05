package circuits

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/merkle"
	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// Instance rows of a MembershipCircuit.
const (
	MembershipLeafRow = 0
	MembershipRootRow = 1
)

// MembershipConfig is the configuration of a MembershipCircuit.
type MembershipConfig struct {
	Merkle merkle.Config
}

// MembershipCircuit proves that the public leaf at instance row 0 is a member
// of a Merkle tree whose root is the public value at instance row 1, without
// revealing the sibling path or the direction bits.
type MembershipCircuit struct {
	Hasher   Hasher
	Leaf     fr.Element
	Siblings []fr.Element
	Bits     []fr.Element
}

// WithoutWitnesses returns a shape-only clone: same hasher and path depth,
// all values erased.
func (c *MembershipCircuit) WithoutWitnesses() plonkish.Circuit[MembershipConfig] {
	return &MembershipCircuit{
		Hasher:   c.Hasher,
		Siblings: make([]fr.Element, len(c.Siblings)),
		Bits:     make([]fr.Element, len(c.Bits)),
	}
}

// Configure declares three advice columns shared between the path verifier
// and the hash gadget, one instance column, and both gadgets over them.
func (c *MembershipCircuit) Configure(meta *plonkish.ConstraintSystem) (MembershipConfig, error) {
	advice := [3]plonkish.Advice{meta.AdviceColumn(), meta.AdviceColumn(), meta.AdviceColumn()}
	instance := meta.InstanceColumn()
	hcfg, err := c.Hasher.configure(meta, advice, c.Hasher.Arity())
	if err != nil {
		return MembershipConfig{}, err
	}
	return MembershipConfig{Merkle: merkle.Configure(meta, advice, instance, hcfg)}, nil
}

// Synthesize commits the leaf, folds the path and exposes leaf and root.
func (c *MembershipCircuit) Synthesize(cfg MembershipConfig, ly *plonkish.Layouter) error {
	chip := merkle.New(cfg.Merkle)
	leaf, err := chip.LoadPrivate(ly, c.Leaf)
	if err != nil {
		return err
	}
	if err := chip.ExposePublic(ly, leaf, MembershipLeafRow); err != nil {
		return err
	}
	root, err := chip.ProvePath(ly, leaf, c.Siblings, c.Bits)
	if err != nil {
		return err
	}
	return chip.ExposePublic(ly, root, MembershipRootRow)
}
