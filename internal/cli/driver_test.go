package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/rtree/v2"
	"github.com/peterstace/rtree/v2/internal/records"
)

func newTestDriver(t *testing.T) (*Driver, *test.Hook) {
	t.Helper()
	cfg, err := rtree.NewConfig(4, 4)
	require.NoError(t, err)
	tree, err := rtree.New(cfg)
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewDriver(tree, records.NewTable(records.DefaultCapacity), logger), hook
}

func run(t *testing.T, d *Driver, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, d.Run(strings.NewReader(input), &out))
	return out.String()
}

func TestPointScenario(t *testing.T) {
	d, _ := newTestDriver(t)
	out := run(t, d, strings.Join([]string{
		"+ 0 0 0",
		"+ 1 10 10",
		"+ 2 5 5",
		"+ 3 5 6",
		"+ 4 100 100",
		"? 5 5 2",
		"- 3",
		"? 5 5 2",
		"? 50 50 1",
		"",
	}, "\n"))
	assert.Equal(t, "2 3\n1 2\n0\n", out)
	assert.Equal(t, 4, d.Tree().Len())
}

func TestSearchFiltersByDistance(t *testing.T) {
	d, _ := newTestDriver(t)
	// (7,7) is inside the bounding square of the circle but not the circle.
	run(t, d, "+ 0 7 7\n+ 1 5 7\n+ 2 3 5\n+ 3 5 5\n")

	res := d.Search(5, 5, 2)
	assert.Equal(t, SearchResult{Hits: 3, Farthest: 1}, res)
}

func TestEraseNotLive(t *testing.T) {
	d, hook := newTestDriver(t)
	out := run(t, d, "+ 1 1 1\n- 2\n- 1\n- 1\n? 1 1 1\n")
	assert.Equal(t, "0\n", out)
	assert.Zero(t, d.Tree().Len())

	var skipped int
	for _, e := range hook.AllEntries() {
		if e.Message == "erase of record that is not live" {
			skipped++
		}
	}
	assert.Equal(t, 2, skipped)
}

func TestReinsertReplaces(t *testing.T) {
	d, _ := newTestDriver(t)
	out := run(t, d, "+ 1 1 1\n+ 1 9 9\n? 1 1 1\n? 9 9 1\n")
	assert.Equal(t, "0\n1 1\n", out)
	assert.Equal(t, 1, d.Tree().Len())
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name, input, want string
	}{
		{"unknown command", "+ 1 1 1\n* 1\n", "line 2: invalid command"},
		{"insert arity", "+ 1 1\n", "line 1: usage: +"},
		{"erase arity", "- 1 2\n", "line 1: usage: -"},
		{"search arity", "? 1 2\n", "line 1: usage: ?"},
		{"bad number", "? 1 two 3\n", "line 1: bad argument"},
		{"bad id", "+ 1.5 1 1\n", "line 1: bad record id"},
		{"id out of range", "+ -4 1 1\n", "line 1: record id -4 out of range"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newTestDriver(t)
			err := d.Run(strings.NewReader(tc.input), &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestVisualize(t *testing.T) {
	color.NoColor = true
	d, _ := newTestDriver(t)
	run(t, d, "+ 0 0 0\n+ 1 1 1\n+ 2 2 2\n+ 3 3 3\n+ 4 4 4\n")

	var buf bytes.Buffer
	require.NoError(t, (&Visualizer{Tree: d.Tree()}).Visualize(&buf))
	want := strings.Join([]string{
		"node level=1 count=2",
		"\tbranch 0 (0,0)-(2,2)",
		"\tbranch 1 (3,3)-(4,4)",
		"\tnode level=0 count=3",
		"\t\tid 0 (0,0)-(0,0)",
		"\t\tid 1 (1,1)-(1,1)",
		"\t\tid 2 (2,2)-(2,2)",
		"\tnode level=0 count=2",
		"\t\tid 3 (3,3)-(3,3)",
		"\t\tid 4 (4,4)-(4,4)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
