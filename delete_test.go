package rtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnderflowReinsertion(t *testing.T) {
	rt := newTestTree(t, 4, 4)
	live := make(map[int]Rect)
	for i := 0; i < 5; i++ {
		live[i] = pt(float64(i), float64(i))
		rt.Insert(live[i], i)
	}
	require.Equal(t, 1, rt.Height())

	// Five entries split into leaves of two and three, so one leaf is at
	// exactly the minimum fill.
	var thin *Node
	for i := 0; i < rt.Root().Count(); i++ {
		if child := rt.Root().Branch(i).Child; child.Count() == rt.Config().MinLeafFill() {
			thin = child
		}
	}
	require.NotNil(t, thin)
	victim := thin.Branch(0).ID
	survivor := thin.Branch(1).ID

	require.True(t, rt.Delete(live[victim], victim))
	delete(live, victim)
	checkInvariants(t, rt, live)

	rt.Walk(func(n *Node, _ Rect) bool {
		assert.False(t, n == thin, "under filled node still in tree")
		return true
	})
	ids, _ := searchIDs(rt, live[survivor])
	assert.Contains(t, ids, survivor)

	// Both leaves merged back into one, so the single child root collapsed.
	assert.Equal(t, 0, rt.Height())
	assert.Equal(t, 4, rt.Root().Count())
}

func TestUnderflowReinsertionDeepTree(t *testing.T) {
	rt := newTestTree(t, 3, 3)
	rnd := rand.New(rand.NewSource(1))
	live := make(map[int]Rect)
	for i := 0; i < 300; i++ {
		live[i] = randomBox(rnd, 1, 0.05)
		rt.Insert(live[i], i)
	}
	require.GreaterOrEqual(t, rt.Height(), 3)

	for i := 0; i < 300; i += 3 {
		require.True(t, rt.Delete(live[i], i))
		delete(live, i)
	}
	checkInvariants(t, rt, live)
	for id, r := range live {
		ids, _ := searchIDs(rt, r)
		require.Contains(t, ids, id)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	rt := newTestTree(t, 4, 6)
	live := make(map[int]Rect)
	for i := 0; i < 100; i++ {
		live[i] = randomBox(rnd, 0.9, 0.1)
		rt.Insert(live[i], i)
	}

	queries := make([]Rect, 20)
	before := make([][]int, len(queries))
	for i := range queries {
		queries[i] = randomBox(rnd, 0.5, 0.5)
		before[i], _ = searchIDs(rt, queries[i])
	}

	extra := randomBox(rnd, 0.9, 0.1)
	rt.Insert(extra, 1000)
	require.True(t, rt.Delete(extra, 1000))
	checkInvariants(t, rt, live)

	for i, q := range queries {
		after, n := searchIDs(rt, q)
		assert.Equal(t, before[i], after)
		assert.Equal(t, len(before[i]), n)
	}
}

func TestDeleteNotFound(t *testing.T) {
	rt := newTestTree(t, 4, 4)
	for i := 0; i < 20; i++ {
		rt.Insert(pt(float64(i), 0), i)
	}

	t.Run("unknown id", func(t *testing.T) {
		assert.False(t, rt.Delete(pt(3, 0), 99))
	})
	t.Run("rect does not overlap record", func(t *testing.T) {
		assert.False(t, rt.Delete(pt(50, 50), 3))
		ids, _ := searchIDs(rt, pt(3, 0))
		assert.Equal(t, []int{3}, ids)
	})
	t.Run("empty tree", func(t *testing.T) {
		root := NewIndex(DefaultConfig())
		newRoot, found := Delete(root, pt(0, 0), 0)
		assert.False(t, found)
		assert.Same(t, root, newRoot)
	})
	assert.Equal(t, 20, rt.Len())
}
