package rtree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// partition tracks the assignment of a full node's branches, plus the one
// that overflowed it, into two groups.
type partition struct {
	buf     []Branch
	cover   Rect // of all of buf
	minFill int

	group []int // -1 until assigned
	count [2]int
	rect  [2]Rect
	area  [2]float64
}

// split divides the branches of the full node n, plus b, between n and a new
// sibling at the same level. The sibling is returned.
func (n *Node) split(b Branch) *Node {
	level := n.level
	p := collect(n, b)
	p.pickSeeds()
	p.pigeonhole()

	sibling := newNode(n.cfg)
	sibling.level = level
	n.level = level
	p.load(n, sibling)

	if n.Count()+sibling.Count() != len(p.buf) {
		panic(fmt.Sprintf("split lost branches: %d + %d != %d", n.Count(), sibling.Count(), len(p.buf)))
	}
	if debugEnabled() {
		Log.WithFields(logrus.Fields{
			"op": "split", "level": level, "left": n.Count(), "right": sibling.Count(),
		}).Debug("split node")
	}
	return sibling
}

// collect copies the branches of a full node and the extra branch into a
// scratch buffer, then clears the node.
func collect(n *Node, b Branch) *partition {
	if len(n.branches) != n.capacity() {
		panic(fmt.Sprintf("split of node that is not full: %d of %d", len(n.branches), n.capacity()))
	}
	buf := make([]Branch, 0, len(n.branches)+1)
	buf = append(buf, n.branches...)
	buf = append(buf, b)

	p := &partition{
		buf:     buf,
		cover:   Undefined(),
		minFill: n.cfg.minFill(n.level),
		group:   make([]int, len(buf)),
	}
	for i := range buf {
		p.cover = combine(p.cover, buf[i].Rect)
		p.group[i] = -1
	}
	n.init()
	return p
}

// classify puts branch i into group g.
func (p *partition) classify(i, g int) {
	if p.group[i] != -1 {
		panic(fmt.Sprintf("branch %d already in group %d", i, p.group[i]))
	}
	p.group[i] = g
	if p.count[g] == 0 {
		p.rect[g] = p.buf[i].Rect
	} else {
		p.rect[g] = combine(p.buf[i].Rect, p.rect[g])
	}
	p.area[g] = sphericalVolume(p.rect[g])
	p.count[g]++
}

// pickSeeds chooses the first member of each group. For each axis it finds
// the branch with the greatest minimum and the branch with the least maximum,
// and normalises their separation by the width of the whole set on that
// axis. The pair on the most separated axis become the seeds.
func (p *partition) pickSeeds() {
	var greatestLower, leastUpper [Dims]int
	var width [Dims]float64
	for d := 0; d < Dims; d++ {
		for i := 1; i < len(p.buf); i++ {
			r := p.buf[i].Rect
			if r[d] > p.buf[greatestLower[d]].Rect[d] {
				greatestLower[d] = i
			}
			if r[Dims+d] < p.buf[leastUpper[d]].Rect[Dims+d] {
				leastUpper[d] = i
			}
		}
		width[d] = p.cover[Dims+d] - p.cover[d]
	}

	var seed0, seed1 int
	var bestSep float64
	for d := 0; d < Dims; d++ {
		w := width[d]
		if w == 0 {
			w = 1
		}
		low := p.buf[leastUpper[d]].Rect
		high := p.buf[greatestLower[d]].Rect
		sep := (high[d] - low[Dims+d]) / w
		if d == 0 || sep > bestSep {
			seed0, seed1 = leastUpper[d], greatestLower[d]
			bestSep = sep
		}
	}

	// When the seeds coincide the groups start empty and pigeonhole does all
	// of the assignment.
	if seed0 != seed1 {
		p.classify(seed0, 0)
		p.classify(seed1, 1)
	}
}

// pigeonhole assigns every remaining branch to the group whose spherical
// volume grows least. Once a group is so large that the other could only just
// reach the minimum fill, everything left goes to the other group.
func (p *partition) pigeonhole() {
	total := len(p.buf)
	for i := range p.buf {
		if p.group[i] != -1 {
			continue
		}
		if p.count[0] >= total-p.minFill {
			p.classify(i, 1)
			continue
		}
		if p.count[1] >= total-p.minFill {
			p.classify(i, 0)
			continue
		}

		var increase [2]float64
		for g := 0; g < 2; g++ {
			grown := p.buf[i].Rect
			if p.count[g] > 0 {
				grown = combine(grown, p.rect[g])
			}
			increase[g] = sphericalVolume(grown) - p.area[g]
		}

		switch {
		case increase[0] < increase[1]:
			p.classify(i, 0)
		case increase[1] < increase[0]:
			p.classify(i, 1)
		case p.area[0] < p.area[1]:
			p.classify(i, 0)
		case p.area[1] < p.area[0]:
			p.classify(i, 1)
		case p.count[0] < p.count[1]:
			p.classify(i, 0)
		default:
			p.classify(i, 1)
		}
	}
	if p.count[0]+p.count[1] != total {
		panic(fmt.Sprintf("pigeonhole assigned %d of %d branches", p.count[0]+p.count[1], total))
	}
}

// load moves the buffered branches into their group's node.
func (p *partition) load(n, sibling *Node) {
	for i, b := range p.buf {
		var dst *Node
		switch p.group[i] {
		case 0:
			dst = n
		case 1:
			dst = sibling
		default:
			panic(fmt.Sprintf("branch %d was never assigned a group", i))
		}
		if dst.addBranch(b) != nil {
			panic("group exceeded node capacity")
		}
	}
}
