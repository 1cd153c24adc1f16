package adjacency

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/mat"

	"github.com/askiada/go-meshgraph/pkg/geometry"
)

// inverseDistance weighs each pair of units by 1/d, d being the planar distance between their
// area weighted centroids. Pairs further apart than threshold, or with coincident centroids,
// weigh 0.
func inverseDistance(set *geometry.Set, threshold float64) *mat.SymDense {
	n := set.Len()
	weights := mat.NewSymDense(n, nil)

	centroids := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		_, geom := set.At(i)
		centroids[i] = centroid(geom)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := planar.Distance(centroids[i], centroids[j])
			if d == 0 || d > threshold {
				continue
			}

			weights.SetSym(i, j, 1/d)
		}
	}

	return weights
}

// centroid returns the area weighted centroid of geom, or the length weighted centroid of its
// rings when geom has no area.
func centroid(geom orb.MultiPolygon) orb.Point {
	point, area := planar.CentroidArea(geom)
	if area != 0 {
		return point
	}

	var boundary orb.MultiLineString

	for _, poly := range geom {
		for _, ring := range poly {
			boundary = append(boundary, orb.LineString(ring))
		}
	}

	point, _ = planar.CentroidArea(boundary)

	return point
}
