package drivers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/drivers"
)

type symbol string

func nodesOf(l drivers.List[string, string]) []string {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = r.Node
	}
	return out
}

func TestAddDisjointStaysSeparate(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 3), "a1")
	tr.Add("t", "lsp1", bitrange.New(4, 7), "a2")

	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(0, 3))))
	assert.Equal(t, []string{"a2"}, nodesOf(tr.Get("t", bitrange.New(4, 7))))
}

func TestAddOverwritesSplitsExisting(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 9), "a1")
	tr.Add("t", "lsp1", bitrange.New(3, 5), "a2")

	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(0, 2))))
	assert.Equal(t, []string{"a2"}, nodesOf(tr.Get("t", bitrange.New(3, 5))))
	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(6, 9))))
}

func TestMergeUnionsDrivers(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Merge("t", "lsp0", bitrange.New(0, 9), "a1")
	tr.Merge("t", "lsp1", bitrange.New(3, 5), "a2")

	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(0, 2))))
	assert.ElementsMatch(t, []string{"a1", "a2"}, nodesOf(tr.Get("t", bitrange.New(3, 5))))
	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(6, 9))))
}

// TestDriverOverlapScenario covers a partial-overlap worked example:
// t[3:2] = a[1:0]; t[2:0] = a[2:0]; both blocking, in one region, yields
// three stored intervals with bit 2 owned by the second assignment.
func TestDriverOverlapScenario(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "a[1:0]", bitrange.New(2, 3), "assign1")
	tr.Add("t", "a[2:0]", bitrange.New(0, 2), "assign2")

	assert.Equal(t, []string{"assign1"}, nodesOf(tr.Get("t", bitrange.New(3, 3))))
	assert.Equal(t, []string{"assign2"}, nodesOf(tr.Get("t", bitrange.New(2, 2))))
	assert.Equal(t, []string{"assign2"}, nodesOf(tr.Get("t", bitrange.New(0, 1))))
}

// TestResidualMiddleRangeDriven covers a query whose middle sub-range is
// locally driven: the residual must be the two flanks either side of it,
// not the whole query.
func TestResidualMiddleRangeDriven(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "mid", bitrange.New(3, 6), "assign1")

	residual := tr.Residual("t", bitrange.New(0, 9))
	require.Len(t, residual, 2)
	assert.Equal(t, bitrange.New(0, 3), residual[0])
	assert.Equal(t, bitrange.New(6, 9), residual[1])
}

func TestGetExactContainmentBothDirections(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 7), "a1")

	// query contains stored interval
	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(0, 7))))
	// stored interval contains query
	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(2, 4))))
}

func TestGetPartialOverlapNotContainedReturnsNothing(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 3), "a1")
	tr.Add("t", "lsp1", bitrange.New(4, 7), "a2")

	// query [2,5] partially overlaps both but contains/is-contained-by
	// neither, so neither contributes.
	assert.Empty(t, tr.Get("t", bitrange.New(2, 5)))
}

func TestGetUnknownSymbolReturnsNil(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	assert.Nil(t, tr.Get("missing", bitrange.New(0, 3)))
}

func TestCloneIsIndependent(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 3), "a1")

	clone := tr.Clone()
	clone.Add("t", "lsp1", bitrange.New(0, 3), "a2")

	assert.Equal(t, []string{"a1"}, nodesOf(tr.Get("t", bitrange.New(0, 3))), "original must be unaffected by mutations on the clone")
	assert.Equal(t, []string{"a2"}, nodesOf(clone.Get("t", bitrange.New(0, 3))))
}

func TestForEachSymbolVisitsDrivenIntervals(t *testing.T) {
	tr := drivers.New[symbol, string, string]()
	tr.Add("t", "lsp0", bitrange.New(0, 3), "a1")
	tr.Add("u", "lsp1", bitrange.New(0, 1), "a2")

	seen := map[symbol][]bitrange.Range{}
	tr.ForEachSymbol(func(sym symbol, intervals []drivers.IntervalEntry[string, string]) {
		for _, iv := range intervals {
			seen[sym] = append(seen[sym], iv.Range)
		}
	})

	require.Contains(t, seen, symbol("t"))
	require.Contains(t, seen, symbol("u"))
	assert.Equal(t, []bitrange.Range{bitrange.New(0, 3)}, seen["t"])
	assert.Equal(t, []bitrange.Range{bitrange.New(0, 1)}, seen["u"])
}
