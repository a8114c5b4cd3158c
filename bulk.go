package rtree

import "sort"

// InsertItem is an item that can be inserted for bulk loading.
type InsertItem struct {
	Rect Rect
	ID   int
}

// BulkLoad creates a new RTree holding all of the items. It only reorders
// the items so that spatially close ones are adjacent, then inserts them one
// at a time with Insert. The resulting tree is an ordinary dynamic tree and
// obeys the same invariants as one built by calling Insert directly.
func BulkLoad(cfg Config, inserts []InsertItem) (*RTree, error) {
	tr, err := New(cfg)
	if err != nil {
		return nil, err
	}
	items := make([]InsertItem, len(inserts))
	copy(items, inserts)
	spatialOrder(items)
	for _, item := range items {
		tr.Insert(item.Rect, item.ID)
	}
	return tr, nil
}

// spatialOrder sorts the items by the centre of their rectangles along the
// widest axis, then recursively orders each half the same way.
func spatialOrder(items []InsertItem) {
	if len(items) <= 2 {
		return
	}

	bound := Undefined()
	for _, item := range items {
		bound = combine(bound, item.Rect)
	}
	axis := 0
	for d := 1; d < Dims; d++ {
		if bound.Max(d)-bound.Min(d) > bound.Max(axis)-bound.Min(axis) {
			axis = d
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Rect, items[j].Rect
		return ri.Min(axis)+ri.Max(axis) < rj.Min(axis)+rj.Max(axis)
	})

	split := len(items) / 2
	spatialOrder(items[:split])
	spatialOrder(items[split:])
}
