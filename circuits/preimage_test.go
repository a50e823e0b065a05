package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/plonkish-primitives/hash"
	"github.com/vocdoni/plonkish-primitives/plonkish"
)

func TestDoublerPreimage(t *testing.T) {
	c := qt.New(t)

	circuit := &PreimageCircuit{Hasher: HashDoubler, Inputs: []fr.Element{fr.NewElement(2)}}

	prover, err := plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{fr.NewElement(4)}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.IsNil)

	prover, err = plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{fr.NewElement(5)}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.ErrorIs, plonkish.ErrNotSatisfied)
}

func TestAdderPreimage(t *testing.T) {
	c := qt.New(t)

	a, b := fr.NewElement(1234), fr.NewElement(5678)
	var digest fr.Element
	digest.Add(&a, &b)

	circuit := &PreimageCircuit{Hasher: HashAdder, Inputs: []fr.Element{a, b}}
	prover, err := plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{digest}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.IsNil)
}

func TestSpongePreimage(t *testing.T) {
	c := qt.New(t)

	var a, b fr.Element
	_, err := a.SetRandom()
	c.Assert(err, qt.IsNil)
	_, err = b.SetRandom()
	c.Assert(err, qt.IsNil)

	digest, err := hash.SpongeDigest(a, b)
	c.Assert(err, qt.IsNil)

	circuit := &PreimageCircuit{Hasher: HashSponge, Inputs: []fr.Element{a, b}}
	prover, err := plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{digest}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.IsNil)

	// a wrong digest must be rejected
	var wrong fr.Element
	wrong.Add(&digest, &a)
	prover, err = plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{wrong}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.ErrorIs, plonkish.ErrNotSatisfied)
}

func TestSpongePreimageSingleInput(t *testing.T) {
	c := qt.New(t)

	var a fr.Element
	_, err := a.SetRandom()
	c.Assert(err, qt.IsNil)

	digest, err := hash.SpongeDigest(a)
	c.Assert(err, qt.IsNil)

	circuit := &PreimageCircuit{Hasher: HashSponge, Inputs: []fr.Element{a}}
	prover, err := plonkish.Run[PreimageConfig](4, circuit, [][]fr.Element{{digest}})
	c.Assert(err, qt.IsNil)
	c.Assert(prover.Verify(), qt.IsNil)
}

func TestPreimageShapeErrors(t *testing.T) {
	c := qt.New(t)

	// a doubler cannot take two inputs, an adder cannot take one
	_, err := plonkish.Run[PreimageConfig](4, &PreimageCircuit{Hasher: HashDoubler, Inputs: make([]fr.Element, 2)},
		[][]fr.Element{{}})
	c.Assert(err, qt.ErrorIs, plonkish.ErrInvalidShape)

	_, err = plonkish.Run[PreimageConfig](4, &PreimageCircuit{Hasher: HashAdder, Inputs: make([]fr.Element, 1)},
		[][]fr.Element{{}})
	c.Assert(err, qt.ErrorIs, plonkish.ErrInvalidShape)

	_, err = plonkish.Run[PreimageConfig](4, &PreimageCircuit{Hasher: HashSponge, Inputs: make([]fr.Element, 3)},
		[][]fr.Element{{}})
	c.Assert(err, qt.ErrorIs, plonkish.ErrInvalidShape)
}
