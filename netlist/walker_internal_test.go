package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jameshanlon/netlistgraph/hdlast"
)

func TestDetermineEdgeKind(t *testing.T) {
	clk := &hdlast.ValueSymbol{Name: "clk", Width: 1}
	data := &hdlast.ValueSymbol{Name: "data", Width: 1}
	clkRef := &hdlast.NamedValueExpr{Symbol: clk}
	dataRef := &hdlast.NamedValueExpr{Symbol: data}

	cases := []struct {
		name  string
		block *hdlast.ProceduralBlock
		want  hdlast.EdgeKind
	}{
		{
			name:  "no timing control",
			block: &hdlast.ProceduralBlock{},
			want:  hdlast.EdgeNone,
		},
		{
			name:  "single signal with explicit edge",
			block: &hdlast.ProceduralBlock{Timing: &hdlast.SignalEventControl{Signal: clkRef, Edge: hdlast.EdgePos}},
			want:  hdlast.EdgePos,
		},
		{
			name:  "single signal with no edge",
			block: &hdlast.ProceduralBlock{Timing: &hdlast.SignalEventControl{Signal: clkRef, Edge: hdlast.EdgeNone}},
			want:  hdlast.EdgeNone,
		},
		{
			name: "event list where every event carries an edge",
			block: &hdlast.ProceduralBlock{Timing: &hdlast.EventListControl{Events: []*hdlast.SignalEventControl{
				{Signal: clkRef, Edge: hdlast.EdgePos},
				{Signal: dataRef, Edge: hdlast.EdgeNeg},
			}}},
			want: hdlast.EdgeNeg,
		},
		{
			// `@(posedge clk or data)`: one event-less signal makes the
			// whole list combinational, not clocked.
			name: "event list with one edge-less event",
			block: &hdlast.ProceduralBlock{Timing: &hdlast.EventListControl{Events: []*hdlast.SignalEventControl{
				{Signal: clkRef, Edge: hdlast.EdgePos},
				{Signal: dataRef, Edge: hdlast.EdgeNone},
			}}},
			want: hdlast.EdgeNone,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, determineEdgeKind(c.block))
		})
	}
}
