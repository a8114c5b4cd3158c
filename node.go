package rtree

import "fmt"

// Branch pairs a bounding rectangle with what it bounds. In an internal node
// Child is the subtree, in a leaf node ID is the record id.
type Branch struct {
	Rect  Rect
	Child *Node
	ID    int
}

// Node is a node in an R-Tree. Nodes at level 0 are leaves holding record
// branches, nodes at higher levels hold branches leading to more nodes.
//
// The occupied branches are always branches[:len(branches)], so the count of
// a node is the length of its branch slice.
type Node struct {
	cfg      *Config
	level    int
	branches []Branch
}

// newNode allocates an empty node with an uninitialised level. The caller
// must assign the level before adding branches.
func newNode(cfg *Config) *Node {
	n := &Node{cfg: cfg, branches: make([]Branch, 0, cfg.slots())}
	n.init()
	return n
}

// init clears every branch and resets the level to the uninitialised state.
func (n *Node) init() {
	for i := range n.branches {
		n.branches[i] = Branch{}
	}
	n.branches = n.branches[:0]
	n.level = -1
}

// free clears a node that has been removed from the tree, so that any stale
// link to it is obvious.
func (n *Node) free() {
	n.init()
	n.branches = nil
}

// Level is the distance of the node from the leaves. Leaves are at level 0.
func (n *Node) Level() int { return n.level }

// IsLeaf reports whether the node holds record branches.
func (n *Node) IsLeaf() bool { return n.level == 0 }

// Count is the number of occupied branches.
func (n *Node) Count() int { return len(n.branches) }

// Branch returns the i'th occupied branch.
func (n *Node) Branch(i int) Branch { return n.branches[i] }

// Cover returns the smallest rectangle containing every branch of the node,
// or the undefined rectangle if the node is empty.
func (n *Node) Cover() Rect { return n.cover() }

func (n *Node) capacity() int {
	return n.cfg.maxKids(n.level)
}

func (n *Node) cover() Rect {
	r := Undefined()
	for _, b := range n.branches {
		r = combine(r, b.Rect)
	}
	return r
}

// addBranch adds b to the node. If the node is already full it is split, and
// the newly created sibling is returned. Otherwise the returned node is nil.
func (n *Node) addBranch(b Branch) *Node {
	if len(n.branches) < n.capacity() {
		n.branches = append(n.branches, b)
		return nil
	}
	return n.split(b)
}

// disconnectBranch removes the i'th branch. The last branch takes its slot.
func (n *Node) disconnectBranch(i int) {
	if i < 0 || i >= len(n.branches) {
		panic(fmt.Sprintf("disconnect of unoccupied branch %d (count %d)", i, len(n.branches)))
	}
	last := len(n.branches) - 1
	n.branches[i] = n.branches[last]
	n.branches[last] = Branch{}
	n.branches = n.branches[:last]
}
