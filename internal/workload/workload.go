// Package workload generates random command files for the cli driver. Points
// are placed at random latitude and longitude coordinates.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/go-faker/faker/v4"
)

// Mix is the relative weight of each kind of command.
type Mix struct {
	Insert, Erase, Search int
}

// DefaultMix favours inserts so that the tree grows over the workload.
var DefaultMix = Mix{Insert: 6, Erase: 2, Search: 2}

// Generator writes random commands. Erases always target a live record, and
// search radii are up to MaxRadius degrees.
type Generator struct {
	Mix       Mix
	MaxRadius float64

	rnd    *rand.Rand
	live   []int
	nextID int
}

// NewGenerator creates a Generator that makes its choices from seed. The
// coordinates come from faker and are not covered by the seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Mix:       DefaultMix,
		MaxRadius: 10,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// Generate writes n commands to w.
func (g *Generator) Generate(w io.Writer, n int) error {
	total := g.Mix.Insert + g.Mix.Erase + g.Mix.Search
	if total <= 0 {
		return fmt.Errorf("command mix %+v has no weight", g.Mix)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		var err error
		switch pick := g.rnd.Intn(total); {
		case pick < g.Mix.Insert || len(g.live) == 0 && pick < g.Mix.Insert+g.Mix.Erase:
			err = g.insert(bw)
		case pick < g.Mix.Insert+g.Mix.Erase:
			err = g.erase(bw)
		default:
			err = g.search(bw)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (g *Generator) insert(w io.Writer) error {
	id := g.nextID
	g.nextID++
	g.live = append(g.live, id)
	_, err := fmt.Fprintf(w, "+ %d %.6f %.6f\n", id, faker.Longitude(), faker.Latitude())
	return err
}

func (g *Generator) erase(w io.Writer) error {
	i := g.rnd.Intn(len(g.live))
	id := g.live[i]
	g.live[i] = g.live[len(g.live)-1]
	g.live = g.live[:len(g.live)-1]
	_, err := fmt.Fprintf(w, "- %d\n", id)
	return err
}

func (g *Generator) search(w io.Writer) error {
	radius := g.rnd.Float64() * g.MaxRadius
	_, err := fmt.Fprintf(w, "? %.6f %.6f %.6f\n", faker.Longitude(), faker.Latitude(), radius)
	return err
}
