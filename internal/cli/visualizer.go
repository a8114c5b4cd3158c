package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/peterstace/rtree/v2"
)

var (
	levelColors = []*color.Color{
		color.New(color.FgGreen),
		color.New(color.FgCyan),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
	}
	rectColor = color.New(color.Faint)
)

// Visualizer prints the structure of a tree, one line per branch, indented
// by depth.
type Visualizer struct {
	Tree *rtree.RTree
}

// Visualize writes the tree to w.
func (v *Visualizer) Visualize(w io.Writer) error {
	var err error
	depth := make(map[*rtree.Node]int)
	v.Tree.Walk(func(n *rtree.Node, _ rtree.Rect) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("\t", depth[n])
		c := levelColors[n.Level()%len(levelColors)]
		if _, err = c.Fprintf(w, "%snode level=%d count=%d\n", indent, n.Level(), n.Count()); err != nil {
			return false
		}
		for i := 0; i < n.Count(); i++ {
			b := n.Branch(i)
			label := fmt.Sprintf("branch %d", i)
			if n.IsLeaf() {
				label = c.Sprintf("id %d", b.ID)
			} else {
				depth[b.Child] = depth[n] + 1
			}
			if _, err = fmt.Fprintf(w, "%s\t%s %s\n", indent, label, rectColor.Sprint(formatRect(b.Rect))); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

func formatRect(r rtree.Rect) string {
	mins := make([]string, rtree.Dims)
	maxs := make([]string, rtree.Dims)
	for i := 0; i < rtree.Dims; i++ {
		mins[i] = fmt.Sprint(r.Min(i))
		maxs[i] = fmt.Sprint(r.Max(i))
	}
	return fmt.Sprintf("(%s)-(%s)", strings.Join(mins, ","), strings.Join(maxs, ","))
}
