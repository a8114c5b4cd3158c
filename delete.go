package rtree

import "github.com/sirupsen/logrus"

// Delete removes the record with the given id from the tree rooted at root.
// The rectangle must overlap the one the record was inserted with, since
// only overlapping subtrees are searched for it.
//
// The returned node is the root of the tree after the deletion. The returned
// bool is true if the record was found and removed, and false if it was not
// in the tree (in which case the tree is unchanged).
func Delete(root *Node, r Rect, id int) (newRoot *Node, found bool) {
	if root == nil {
		panic("delete from nil root")
	}

	var reinsert []*Node
	if !remove(r, id, root, &reinsert) {
		return root, false
	}

	// Nodes were appended as the recursion unwound, so the deepest come
	// first. Each is reinserted at its own level.
	for _, n := range reinsert {
		if debugEnabled() {
			Log.WithFields(logrus.Fields{
				"op": "delete", "level": n.level, "count": n.Count(),
			}).Debug("reinserting branches of underfull node")
		}
		for _, b := range n.branches {
			root, _ = insertBranch(b, root, n.level)
		}
		n.free()
	}

	for root.level > 0 && root.Count() == 1 {
		child := root.branches[0].Child
		if debugEnabled() {
			Log.WithFields(logrus.Fields{
				"op": "delete", "height": child.level,
			}).Debug("collapsing single child root")
		}
		root.free()
		root = child
	}
	return root, true
}

// remove deletes the record from the subtree rooted at n. Children left with
// too few branches are detached from n and appended to reinsert.
func remove(r Rect, id int, n *Node, reinsert *[]*Node) bool {
	if n.level < 0 {
		panic("delete from uninitialised node")
	}
	if n.level == 0 {
		for i, b := range n.branches {
			if b.ID == id {
				n.disconnectBranch(i)
				return true
			}
		}
		return false
	}

	for i := range n.branches {
		b := &n.branches[i]
		if !overlap(r, b.Rect) {
			continue
		}
		if !remove(r, id, b.Child, reinsert) {
			continue
		}
		child := b.Child
		if child.Count() >= child.cfg.minFill(child.level) {
			b.Rect = child.cover()
		} else {
			if debugEnabled() {
				Log.WithFields(logrus.Fields{
					"op": "delete", "level": child.level, "count": child.Count(),
				}).Debugf("detaching node below minimum fill %d", child.cfg.minFill(child.level))
			}
			*reinsert = append(*reinsert, child)
			n.disconnectBranch(i)
		}
		return true
	}
	return false
}
