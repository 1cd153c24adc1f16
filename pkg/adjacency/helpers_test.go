package adjacency_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-meshgraph/pkg/geometry"
)

type unit struct {
	id   string
	geom orb.Geometry
}

func box(minX, minY, maxX, maxY float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}}
}

func newSet(t *testing.T, units ...unit) *geometry.Set {
	t.Helper()

	set := geometry.NewSet()
	for _, u := range units {
		require.NoError(t, set.Add(u.id, u.geom))
	}

	return set
}

// grid returns the 2x2 grid of unit squares A B on the bottom row and C D on the top row.
func grid(t *testing.T) *geometry.Set {
	t.Helper()

	return newSet(t,
		unit{"A", box(0, 0, 1, 1)},
		unit{"B", box(1, 0, 2, 1)},
		unit{"C", box(0, 1, 1, 2)},
		unit{"D", box(1, 1, 2, 2)},
	)
}

func dense(m interface {
	Len() int
	At(i, j int) float64
},
) [][]float64 {
	res := make([][]float64, m.Len())
	for i := range res {
		res[i] = make([]float64, m.Len())
		for j := range res[i] {
			res[i][j] = m.At(i, j)
		}
	}

	return res
}
