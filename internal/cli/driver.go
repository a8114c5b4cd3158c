// Package cli runs command files against an R-Tree.
//
// Each line of input is one command:
//
//	+ <id> <x> <y>   insert the point (x, y) as record id
//	- <id>           erase record id, ignored if it is not live
//	? <x> <y> <d>    find the records within distance d of (x, y)
//
// Every search writes one line of output: the number of records found,
// followed by the id of the farthest one if any were found.
//
// Inserting an id that is already live replaces its earlier point, so each
// id is in the tree at most once.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/peterstace/rtree/v2"
	"github.com/peterstace/rtree/v2/internal/records"
)

const epsilon = 0.00001

const (
	cmdInsert = "+"
	cmdErase  = "-"
	cmdSearch = "?"
)

// Driver applies commands to a tree, keeping the rectangles of the records
// in a side table.
type Driver struct {
	tree    *rtree.RTree
	records *records.Table
	log     logrus.FieldLogger
}

// NewDriver creates a Driver over the given tree and record table.
func NewDriver(tree *rtree.RTree, recs *records.Table, log logrus.FieldLogger) *Driver {
	return &Driver{tree: tree, records: recs, log: log}
}

// Tree returns the tree the driver is applying commands to.
func (d *Driver) Tree() *rtree.RTree { return d.tree }

// Run executes every command read from in, writing search results to out.
// Blank lines are skipped. It stops at the first malformed command.
func (d *Driver) Run(in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := d.Exec(scanner.Text(), w); err != nil {
			w.Flush()
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return w.Flush()
}

// Exec executes a single command line.
func (d *Driver) Exec(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args, err := parseFloats(fields[1:])
	if err != nil {
		return err
	}
	switch fields[0] {
	case cmdInsert:
		if len(args) != 3 {
			return fmt.Errorf("usage: %s <id> <x> <y>", cmdInsert)
		}
		id, err := parseID(fields[1])
		if err != nil {
			return err
		}
		return d.insert(id, args[1], args[2])
	case cmdErase:
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <id>", cmdErase)
		}
		id, err := parseID(fields[1])
		if err != nil {
			return err
		}
		d.erase(id)
		return nil
	case cmdSearch:
		if len(args) != 3 {
			return fmt.Errorf("usage: %s <x> <y> <d>", cmdSearch)
		}
		res := d.Search(args[0], args[1], args[2])
		_, err := fmt.Fprintln(out, res)
		return err
	default:
		return fmt.Errorf("invalid command %q", fields[0])
	}
}

func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad argument %q: %w", f, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseID(field string) (int, error) {
	id, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad record id %q: %w", field, err)
	}
	return id, nil
}

func (d *Driver) insert(id int, x, y float64) error {
	r := rtree.PointRect([rtree.Dims]float64{x, y})
	prev, replaced, err := d.records.Put(id, r)
	if err != nil {
		return err
	}
	if replaced {
		d.log.WithField("id", id).Debug("replacing live record")
		d.tree.Delete(prev, id)
	}
	d.tree.Insert(r, id)
	return nil
}

func (d *Driver) erase(id int) {
	r, ok := d.records.Remove(id)
	if !ok {
		d.log.WithField("id", id).Debug("erase of record that is not live")
		return
	}
	if !d.tree.Delete(r, id) {
		d.log.WithField("id", id).Warn("live record missing from tree")
	}
}

// SearchResult is the outcome of a circular search.
type SearchResult struct {
	// Hits is the number of live records within the circle.
	Hits int
	// Farthest is the id of the hit farthest from the centre, with ties
	// going to the smallest id. It is -1 when there are no hits.
	Farthest int
}

func (r SearchResult) String() string {
	if r.Hits == 0 {
		return strconv.Itoa(r.Hits)
	}
	return fmt.Sprintf("%d %d", r.Hits, r.Farthest)
}

// Search finds the records within distance radius of (cx, cy). The tree is
// searched with the bounding square of the circle, and the candidates are
// then filtered by their distance from the centre.
func (d *Driver) Search(cx, cy, radius float64) SearchResult {
	q := rtree.NewRect(
		[rtree.Dims]float64{cx - radius, cy - radius},
		[rtree.Dims]float64{cx + radius, cy + radius},
	)
	res := SearchResult{Farthest: -1}
	maxDist := -1.0
	candidates := d.tree.Search(q, func(id int) bool {
		r, ok := d.records.Get(id)
		if !ok {
			return true
		}
		x, y := r.Min(0), r.Min(1)
		dist := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		cmp := dist - radius*radius
		if cmp >= 0 && math.Abs(cmp) >= epsilon {
			return true
		}
		switch {
		case dist > maxDist:
			res.Farthest, maxDist = id, dist
		case math.Abs(dist-maxDist) < epsilon:
			res.Farthest = min(res.Farthest, id)
			maxDist = dist
		}
		res.Hits++
		return true
	})
	d.log.WithFields(logrus.Fields{
		"candidates": candidates, "hits": res.Hits,
	}).Debug("search")
	return res
}
