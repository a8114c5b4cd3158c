package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/rtree/v2"
	"github.com/peterstace/rtree/v2/internal/cli"
	"github.com/peterstace/rtree/v2/internal/records"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	g := NewGenerator(1)
	require.NoError(t, g.Generate(&buf, 500))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 500)

	live := make(map[string]bool)
	var searches int
	for _, line := range lines {
		fields := strings.Fields(line)
		switch fields[0] {
		case "+":
			require.Len(t, fields, 4)
			assert.False(t, live[fields[1]], "id %s reused", fields[1])
			live[fields[1]] = true
		case "-":
			require.Len(t, fields, 2)
			assert.True(t, live[fields[1]], "erase of id %s that is not live", fields[1])
			delete(live, fields[1])
		case "?":
			require.Len(t, fields, 4)
			searches++
		default:
			t.Fatalf("unexpected command %q", line)
		}
	}
	assert.Positive(t, searches)
}

func TestGeneratedWorkloadRuns(t *testing.T) {
	var buf bytes.Buffer
	g := NewGenerator(2)
	g.Mix = Mix{Insert: 5, Erase: 4, Search: 1}
	require.NoError(t, g.Generate(&buf, 2000))
	want := len(g.live)

	tree, err := rtree.New(rtree.DefaultConfig())
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	d := cli.NewDriver(tree, records.NewTable(records.DefaultCapacity), logger)
	require.NoError(t, d.Run(&buf, &bytes.Buffer{}))
	assert.Equal(t, want, tree.Len())
}

func TestGenerateEmptyMix(t *testing.T) {
	g := NewGenerator(3)
	g.Mix = Mix{}
	assert.Error(t, g.Generate(&bytes.Buffer{}, 1))
}
