// Package rtree implements an in-memory R-Tree over axis-aligned rectangles
// identified by integer record ids.
//
// The engine functions (NewIndex, Insert, Delete and Search) operate on a
// root node owned by the caller, and return the new root whenever it may have
// changed. RTree wraps a root for callers that would rather not track it.
//
// Placement and split decisions are driven by the volume of the sphere that
// circumscribes a rectangle rather than the rectangle's own area. Splits use
// a linear seed pick followed by a greedy assignment of the remaining
// branches. Deletes reinsert the contents of nodes left under their minimum
// fill.
//
// Trees are not safe for concurrent mutation. Concurrent searches are safe
// while no insert or delete is running.
package rtree

// NewIndex creates the root of an empty tree: a single leaf with no
// branches. The configuration is fixed for every node of the tree.
func NewIndex(cfg Config) *Node {
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	c := cfg
	n := newNode(&c)
	n.level = 0
	return n
}

// RTree is an R-Tree that keeps track of its own root.
type RTree struct {
	root *Node
	size int
}

// New creates an empty RTree with the given configuration.
func New(cfg Config) (*RTree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RTree{root: NewIndex(cfg)}, nil
}

// Root returns the current root node of the tree.
func (t *RTree) Root() *Node { return t.root }

// Config returns the configuration the tree was created with.
func (t *RTree) Config() Config { return *t.root.cfg }

// Height is the level of the root node. A tree holding only a leaf has
// height 0.
func (t *RTree) Height() int { return t.root.level }

// Len is the number of records in the tree.
func (t *RTree) Len() int { return t.size }

// Insert adds a record to the tree. It reports whether the tree grew taller.
func (t *RTree) Insert(r Rect, id int) bool {
	var grew bool
	t.root, grew = Insert(t.root, r, id)
	t.size++
	return grew
}

// Delete removes a record from the tree. The rectangle must overlap the one
// the record was inserted with. It reports whether the record was found.
func (t *RTree) Delete(r Rect, id int) bool {
	var found bool
	t.root, found = Delete(t.root, r, id)
	if found {
		t.size--
	}
	return found
}

// Search calls visit with the id of every record overlapping q, until visit
// returns false. It returns the number of records visited.
func (t *RTree) Search(q Rect, visit func(id int) bool) int {
	return Search(t.root, q, visit)
}

// Walk calls fn for every node in the tree in depth first pre-order, along
// with the rectangle of the branch leading to it (the undefined rectangle
// for the root). Children are not visited if fn returns false.
func (t *RTree) Walk(fn func(n *Node, bound Rect) bool) {
	var recurse func(*Node, Rect)
	recurse = func(n *Node, bound Rect) {
		if !fn(n, bound) || n.level == 0 {
			return
		}
		for _, b := range n.branches {
			recurse(b.Child, b.Rect)
		}
	}
	recurse(t.root, Undefined())
}
