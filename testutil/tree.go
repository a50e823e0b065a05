package testutil

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/pebbledb"
)

// Tree is a fixed-depth binary Merkle tree over a pebble node store, built
// once from a list of leaves. It produces the (siblings, direction bits)
// fixtures the circuit tests consume.
type Tree struct {
	database db.Database
	node     NodeFunc
	depth    int
	nLeaves  int
	root     fr.Element
}

func nodeKey(level, index int) []byte {
	return []byte(fmt.Sprintf("node/%d/%d", level, index))
}

// NewTree builds a tree from the given leaves with the given node hash,
// storing every node in a pebble database under dir. The leaf count is padded
// with zero leaves up to the next power of two.
func NewTree(dir string, leaves []fr.Element, node NodeFunc) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("tree needs at least one leaf")
	}
	database, err := pebbledb.New(db.Options{Path: dir})
	if err != nil {
		return nil, fmt.Errorf("open node store: %w", err)
	}

	width := 1
	depth := 0
	for width < len(leaves) {
		width *= 2
		depth++
	}
	padded := make([]fr.Element, width)
	copy(padded, leaves)

	tx := database.WriteTx()

	level := padded
	for l := 0; ; l++ {
		for i, v := range level {
			if err := tx.Set(nodeKey(l, i), v.Marshal()); err != nil {
				tx.Discard()
				database.Close()
				return nil, fmt.Errorf("store node: %w", err)
			}
		}
		if len(level) == 1 {
			break
		}
		next := make([]fr.Element, len(level)/2)
		for i := range next {
			next[i] = node(level[2*i], level[2*i+1])
		}
		level = next
	}
	if err := tx.Commit(); err != nil {
		database.Close()
		return nil, fmt.Errorf("commit node store: %w", err)
	}

	return &Tree{
		database: database,
		node:     node,
		depth:    depth,
		nLeaves:  width,
		root:     level[0],
	}, nil
}

// Close releases the node store.
func (t *Tree) Close() error {
	return t.database.Close()
}

// Root returns the tree root.
func (t *Tree) Root() fr.Element {
	return t.root
}

// Depth returns the number of layers between a leaf and the root.
func (t *Tree) Depth() int {
	return t.depth
}

func (t *Tree) getNode(level, index int) (fr.Element, error) {
	var v fr.Element
	raw, err := t.database.Get(nodeKey(level, index))
	if err != nil {
		return v, fmt.Errorf("read node (%d,%d): %w", level, index, err)
	}
	if err := v.SetBytesCanonical(raw); err != nil {
		return v, fmt.Errorf("decode node (%d,%d): %w", level, index, err)
	}
	return v, nil
}

// Proof returns the sibling path and direction bits for the given leaf index,
// bottom layer first. A bit of 0 means the running digest is the left operand
// at that layer.
func (t *Tree) Proof(index int) (siblings, bits []fr.Element, err error) {
	if index < 0 || index >= t.nLeaves {
		return nil, nil, fmt.Errorf("leaf index %d out of range", index)
	}
	siblings = make([]fr.Element, t.depth)
	bits = make([]fr.Element, t.depth)
	for l := 0; l < t.depth; l++ {
		if siblings[l], err = t.getNode(l, index^1); err != nil {
			return nil, nil, err
		}
		if index&1 == 1 {
			bits[l].SetOne()
		}
		index >>= 1
	}
	return siblings, bits, nil
}

// Leaf returns the (possibly zero-padded) leaf at the given index.
func (t *Tree) Leaf(index int) (fr.Element, error) {
	return t.getNode(0, index)
}
