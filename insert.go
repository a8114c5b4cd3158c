package rtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Insert adds a record with the given rectangle to the tree rooted at root.
// The rectangle must be valid. The returned node is the root of the tree
// after the insertion, and grew reports whether the root was split (in which
// case the tree is one level taller).
func Insert(root *Node, r Rect, id int) (newRoot *Node, grew bool) {
	if !r.Valid() {
		panic(fmt.Sprintf("insert of invalid rect %v", r))
	}
	return insertBranch(Branch{Rect: r, ID: id}, root, 0)
}

// InsertAtLevel adds b to a node at the given level of the tree rooted at
// root. At level 0, b is a record and must have a nil Child. Above that, b
// must hold a subtree whose root is one level below the target level.
func InsertAtLevel(root *Node, b Branch, level int) (newRoot *Node, grew bool) {
	if !b.Rect.Valid() {
		panic(fmt.Sprintf("insert of invalid rect %v", b.Rect))
	}
	switch {
	case level == 0 && b.Child != nil:
		panic("insert of subtree at the leaf level")
	case level > 0 && b.Child == nil:
		panic(fmt.Sprintf("insert of record at level %d", level))
	case level > 0 && b.Child.level != level-1:
		panic(fmt.Sprintf("insert of level %d subtree at level %d", b.Child.level, level))
	}
	return insertBranch(b, root, level)
}

// insertBranch adds b to a node at the given level of the tree, which is 0
// for records and higher for subtrees being reinserted after a delete.
func insertBranch(b Branch, root *Node, level int) (*Node, bool) {
	if root == nil {
		panic("insert into nil root")
	}
	if level < 0 || level > root.level {
		panic(fmt.Sprintf("insert level %d out of range [0, %d]", level, root.level))
	}

	sibling := insert(b, root, level)
	if sibling == nil {
		return root, false
	}

	newRoot := newNode(root.cfg)
	newRoot.level = root.level + 1
	newRoot.addBranch(Branch{Rect: root.cover(), Child: root})
	newRoot.addBranch(Branch{Rect: sibling.cover(), Child: sibling})
	if debugEnabled() {
		Log.WithFields(logrus.Fields{
			"op": "insert", "height": newRoot.level,
		}).Debug("root split, tree grew")
	}
	return newRoot, true
}

// insert descends from n to the target level and adds b there. Splits are
// propagated back up: if n itself had to split, the new sibling is returned.
func insert(b Branch, n *Node, level int) *Node {
	switch {
	case n.level > level:
		i := pickBranch(b.Rect, n)
		child := &n.branches[i]
		split := insert(b, child.Child, level)
		if split == nil {
			child.Rect = combine(b.Rect, child.Rect)
			return nil
		}
		child.Rect = child.Child.cover()
		return n.addBranch(Branch{Rect: split.cover(), Child: split})
	case n.level == level:
		return n.addBranch(b)
	default:
		panic(fmt.Sprintf("descended past insert level %d to node at level %d", level, n.level))
	}
}

// pickBranch chooses the branch of n that would need the least enlargement
// of its spherical volume to accommodate r. Ties go to the branch with the
// smaller volume.
func pickBranch(r Rect, n *Node) int {
	if len(n.branches) == 0 {
		panic(fmt.Sprintf("pick branch from empty node at level %d", n.level))
	}
	var (
		best     int
		bestIncr float64
		bestArea float64
	)
	for i, b := range n.branches {
		area := sphericalVolume(b.Rect)
		incr := enlargement(b.Rect, r)
		if i == 0 || incr < bestIncr || (incr == bestIncr && area < bestArea) {
			best, bestIncr, bestArea = i, incr, area
		}
	}
	return best
}
