// Package records holds the rectangles of the records stored in an R-Tree,
// keyed by record id. The tree itself only keeps ids, so the table is what
// supplies the exact rectangle when a record is deleted.
package records

import (
	"fmt"

	"github.com/peterstace/rtree/v2"
)

// DefaultCapacity is the number of distinct ids a table accepts by default.
const DefaultCapacity = 1<<20 + 1

type record struct {
	rect rtree.Rect
	live bool
}

// Table maps record ids in [0, capacity) to rectangles.
type Table struct {
	capacity int
	recs     []record
	live     int
}

// NewTable creates an empty table accepting ids below capacity.
func NewTable(capacity int) *Table {
	return &Table{capacity: capacity}
}

func (t *Table) check(id int) error {
	if id < 0 || id >= t.capacity {
		return fmt.Errorf("record id %d out of range [0, %d)", id, t.capacity)
	}
	return nil
}

// Put stores the rectangle for id and marks it live. The previous rectangle
// is returned if id was already live.
func (t *Table) Put(id int, r rtree.Rect) (prev rtree.Rect, replaced bool, err error) {
	if err := t.check(id); err != nil {
		return rtree.Rect{}, false, err
	}
	if id >= len(t.recs) {
		grown := make([]record, id+1, max(id+1, 2*len(t.recs)))
		copy(grown, t.recs)
		t.recs = grown
	}
	rec := &t.recs[id]
	prev, replaced = rec.rect, rec.live
	if !replaced {
		t.live++
	}
	rec.rect, rec.live = r, true
	return prev, replaced, nil
}

// Get returns the rectangle of a live record.
func (t *Table) Get(id int) (rtree.Rect, bool) {
	if id < 0 || id >= len(t.recs) || !t.recs[id].live {
		return rtree.Rect{}, false
	}
	return t.recs[id].rect, true
}

// Remove marks the record as no longer live and returns its rectangle.
// Nothing happens if the record is not live.
func (t *Table) Remove(id int) (rtree.Rect, bool) {
	r, ok := t.Get(id)
	if !ok {
		return rtree.Rect{}, false
	}
	t.recs[id] = record{}
	t.live--
	return r, true
}

// Live is the number of live records.
func (t *Table) Live() int { return t.live }
