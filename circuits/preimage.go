package circuits

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/plonkish-primitives/hash"
	"github.com/vocdoni/plonkish-primitives/plonkish"
)

// PreimageConfig is the configuration of a PreimageCircuit.
type PreimageConfig struct {
	Advice   [3]plonkish.Advice
	Instance plonkish.Instance
	Hash     hash.Config
}

// PreimageCircuit proves that the public digest at instance row 0 is the
// chosen hash of the private inputs.
type PreimageCircuit struct {
	Hasher Hasher
	Inputs []fr.Element
}

// WithoutWitnesses returns a shape-only clone: same hasher, same number of
// inputs, all values erased.
func (c *PreimageCircuit) WithoutWitnesses() plonkish.Circuit[PreimageConfig] {
	return &PreimageCircuit{Hasher: c.Hasher, Inputs: make([]fr.Element, len(c.Inputs))}
}

// Configure declares three advice columns, one instance column and the
// selected hash gadget over them.
func (c *PreimageCircuit) Configure(meta *plonkish.ConstraintSystem) (PreimageConfig, error) {
	advice := [3]plonkish.Advice{meta.AdviceColumn(), meta.AdviceColumn(), meta.AdviceColumn()}
	instance := meta.InstanceColumn()
	meta.EnableEquality(instance)
	hcfg, err := c.Hasher.configure(meta, advice, len(c.Inputs))
	if err != nil {
		return PreimageConfig{}, err
	}
	return PreimageConfig{Advice: advice, Instance: instance, Hash: hcfg}, nil
}

// Synthesize commits the inputs, hashes them and exposes the digest.
func (c *PreimageCircuit) Synthesize(cfg PreimageConfig, ly *plonkish.Layouter) error {
	cells := make([]plonkish.AssignedCell, len(c.Inputs))
	for i, v := range c.Inputs {
		var err error
		if cells[i], err = hash.LoadPrivate(ly, cfg.Advice[0], v); err != nil {
			return err
		}
	}
	digest, err := cfg.Hash.Construct().Hash(ly, cells...)
	if err != nil {
		return err
	}
	return hash.ExposePublic(ly, digest, cfg.Instance, 0)
}
