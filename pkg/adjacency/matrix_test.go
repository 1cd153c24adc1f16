package adjacency_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-meshgraph/pkg/adjacency"
)

func TestMatrixWriteCSV(t *testing.T) {
	t.Parallel()

	matrix, err := adjacency.Compute(grid(t), adjacency.Options{Strategy: adjacency.Contiguity})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteCSV(&buf, "CD_SETOR"))

	want := strings.Join([]string{
		"CD_SETOR,A,B,C,D",
		"A,0,1,1,1",
		"B,1,0,1,1",
		"C,1,1,0,1",
		"D,1,1,1,0",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestMatrixWriteCSVDistance(t *testing.T) {
	t.Parallel()

	set := newSet(t,
		unit{"A", box(0, 0, 1, 1)},
		unit{"B", box(2, 0, 3, 1)},
	)

	matrix, err := adjacency.Compute(set, adjacency.Options{Strategy: adjacency.Distance, Threshold: math.Inf(1)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteCSV(&buf, "id"))

	assert.Equal(t, "id,A,B\nA,0,0.5\nB,0.5,0\n", buf.String())
}

func TestMatrixWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	matrix, err := adjacency.Compute(newSet(t), adjacency.Options{Strategy: adjacency.Contiguity})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteCSV(&buf, "id"))
	assert.Equal(t, "id\n", buf.String())
}
