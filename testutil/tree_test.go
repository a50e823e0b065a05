package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	qt "github.com/frankban/quicktest"
)

func TestTreeProofs(t *testing.T) {
	c := qt.New(t)

	leaves := RandomElements(8)
	tr, err := NewTree(t.TempDir(), leaves, SpongeNode)
	c.Assert(err, qt.IsNil)
	defer func() { c.Assert(tr.Close(), qt.IsNil) }()

	c.Assert(tr.Depth(), qt.Equals, 3)
	root := tr.Root()
	for i, leaf := range leaves {
		siblings, bits, err := tr.Proof(i)
		c.Assert(err, qt.IsNil)
		c.Assert(siblings, qt.HasLen, 3)

		got := FoldPath(SpongeNode, leaf, siblings, bits)
		c.Assert(got.Equal(&root), qt.IsTrue)
	}
}

func TestTreePadsToPowerOfTwo(t *testing.T) {
	c := qt.New(t)

	leaves := RandomElements(5)
	tr, err := NewTree(t.TempDir(), leaves, AdderNode)
	c.Assert(err, qt.IsNil)
	defer func() { c.Assert(tr.Close(), qt.IsNil) }()

	c.Assert(tr.Depth(), qt.Equals, 3)

	// padded leaves read back as zero
	padded, err := tr.Leaf(7)
	c.Assert(err, qt.IsNil)
	c.Assert(padded.IsZero(), qt.IsTrue)

	// an additive tree root is just the sum of all leaves
	var sum fr.Element
	for _, leaf := range leaves {
		sum.Add(&sum, &leaf)
	}
	root := tr.Root()
	c.Assert(root.Equal(&sum), qt.IsTrue)
}

func TestNewTreeBadStorePath(t *testing.T) {
	c := qt.New(t)

	// a regular file cannot host the node store
	file := filepath.Join(t.TempDir(), "not-a-dir")
	c.Assert(os.WriteFile(file, []byte("x"), 0o600), qt.IsNil)

	_, err := NewTree(file, RandomElements(2), AdderNode)
	c.Assert(err, qt.IsNotNil)
}

// TestTreeCloseReleasesStore reopens the same directory after Close: a leaked
// handle would still hold the pebble lock and make the second open fail.
func TestTreeCloseReleasesStore(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	tr, err := NewTree(dir, RandomElements(2), AdderNode)
	c.Assert(err, qt.IsNil)
	c.Assert(tr.Close(), qt.IsNil)

	reopened, err := NewTree(dir, RandomElements(2), AdderNode)
	c.Assert(err, qt.IsNil)
	c.Assert(reopened.Close(), qt.IsNil)
}

func TestTreeIndexOutOfRange(t *testing.T) {
	c := qt.New(t)

	tr, err := NewTree(t.TempDir(), RandomElements(4), SpongeNode)
	c.Assert(err, qt.IsNil)
	defer func() { c.Assert(tr.Close(), qt.IsNil) }()

	_, _, err = tr.Proof(4)
	c.Assert(err, qt.IsNotNil)
	_, _, err = tr.Proof(-1)
	c.Assert(err, qt.IsNotNil)
}
