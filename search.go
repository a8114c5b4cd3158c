package rtree

// Search looks for any records in the tree rooted at root whose rectangles
// overlap with q. The visit callback is called with the record id of each
// one found, and may return false to stop the search early. A nil callback
// just counts. The number of records found before stopping is returned.
func Search(root *Node, q Rect, visit func(id int) bool) int {
	if root == nil {
		panic("search of nil node")
	}
	hits, _ := search(root, q, visit)
	return hits
}

func search(n *Node, q Rect, visit func(id int) bool) (hits int, stopped bool) {
	if n.level < 0 {
		panic("search of uninitialised node")
	}
	for _, b := range n.branches {
		if !overlap(b.Rect, q) {
			continue
		}
		if n.level > 0 {
			h, stop := search(b.Child, q, visit)
			hits += h
			if stop {
				return hits, true
			}
			continue
		}
		hits++
		if visit != nil && !visit(b.ID) {
			return hits, true
		}
	}
	return hits, false
}
