package dot_test

import (
	"bytes"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-meshgraph/internal/dot"
	"github.com/askiada/go-meshgraph/internal/store"
)

func TestWriteDirected(t *testing.T) {
	t.Parallel()

	st := store.NewOrderedStore[string, string]()
	gra := graph.NewWithStore(graph.StringHash, st, graph.Directed())

	require.NoError(t, gra.AddVertex("start"))
	require.NoError(t, gra.AddVertex("meshblocks/raw", graph.VertexAttribute(dot.XLabel, "2s")))
	require.NoError(t, gra.AddVertex("end", graph.VertexAttribute("shape", "box")))
	require.NoError(t, gra.AddEdge("start", "meshblocks/raw"))
	require.NoError(t, gra.AddEdge("meshblocks/raw", "end", graph.EdgeAttribute("color", "#ff0000")))

	order, err := st.ListVertices()
	require.NoError(t, err)

	var buf bytes.Buffer

	err = dot.Write(&buf, gra, order, dot.GraphAttribute("rankdir", "LR"))
	require.NoError(t, err)

	want := `strict digraph {
	rankdir="LR";
	"start" [ weight=0 ];
	"start" -> "meshblocks/raw" [ weight=0 ];
	"meshblocks/raw" [ label=<meshblocks/raw <BR /> <FONT POINT-SIZE="12">2s</FONT>>, weight=0 ];
	"meshblocks/raw" -> "end" [ color="#ff0000", weight=0 ];
	"end" [ shape="box", weight=0 ];
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteUndirectedOnce(t *testing.T) {
	t.Parallel()

	st := store.NewOrderedStore[string, string]()
	gra := graph.NewWithStore(graph.StringHash, st)

	for _, v := range []string{"B", "A", `C"1`} {
		require.NoError(t, gra.AddVertex(v))
	}

	require.NoError(t, gra.AddEdge("A", "B"))
	require.NoError(t, gra.AddEdge(`C"1`, "B"))

	order, err := st.ListVertices()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, gra, order))

	want := `strict graph {
	"B" [ weight=0 ];
	"B" -- "A" [ weight=0 ];
	"B" -- "C\"1" [ weight=0 ];
	"A" [ weight=0 ];
	"C\"1" [ weight=0 ];
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteOrderMismatch(t *testing.T) {
	t.Parallel()

	gra := graph.New(graph.StringHash)
	require.NoError(t, gra.AddVertex("A"))
	require.NoError(t, gra.AddVertex("B"))

	var buf bytes.Buffer
	assert.Error(t, dot.Write(&buf, gra, []string{"A"}))
	assert.Error(t, dot.Write(&buf, gra, []string{"A", "C"}))
}
