package adjacency

import (
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"

	"github.com/askiada/go-meshgraph/pkg/geometry"
)

// queen marks two units as neighbours when any segment of one boundary touches any segment of
// the other. Candidate pairs come from a sweep over the bounding boxes sorted by their west edge.
func queen(set *geometry.Set) *mat.SymDense {
	n := set.Len()
	weights := mat.NewSymDense(n, nil)

	bounds := make([]orb.Bound, n)
	byMinX := make([]int, n)

	for i := 0; i < n; i++ {
		_, geom := set.At(i)
		bounds[i] = geom.Bound()
		byMinX[i] = i
	}

	sort.SliceStable(byMinX, func(a, b int) bool {
		return bounds[byMinX[a]].Min.X() < bounds[byMinX[b]].Min.X()
	})

	for a, i := range byMinX {
		for _, j := range byMinX[a+1:] {
			if bounds[j].Min.X() > bounds[i].Max.X() {
				break
			}

			if !bounds[i].Intersects(bounds[j]) {
				continue
			}

			_, gi := set.At(i)
			_, gj := set.At(j)

			if touches(gi, gj, bounds[j]) {
				weights.SetSym(i, j, 1)
			}
		}
	}

	return weights
}

// touches reports whether a boundary segment of a meets a boundary segment of b. boundB is the
// bound of b and skips the segments of a that cannot reach it.
func touches(a, b orb.MultiPolygon, boundB orb.Bound) bool {
	for _, polyA := range a {
		for _, ringA := range polyA {
			for k := 0; k+1 < len(ringA); k++ {
				p1, p2 := ringA[k], ringA[k+1]
				if !segmentBound(p1, p2).Intersects(boundB) {
					continue
				}

				if segmentTouchesMulti(p1, p2, b) {
					return true
				}
			}
		}
	}

	return false
}

func segmentTouchesMulti(p1, p2 orb.Point, b orb.MultiPolygon) bool {
	for _, polyB := range b {
		for _, ringB := range polyB {
			for k := 0; k+1 < len(ringB); k++ {
				if segmentsIntersect(p1, p2, ringB[k], ringB[k+1]) {
					return true
				}
			}
		}
	}

	return false
}

func segmentBound(p, q orb.Point) orb.Bound {
	return orb.Bound{Min: p, Max: p}.Extend(q)
}

// segmentsIntersect reports whether the closed segments p1p2 and q1q2 share at least one point.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}

	switch {
	case o1 == 0 && onSegment(p1, q1, p2):
		return true
	case o2 == 0 && onSegment(p1, q2, p2):
		return true
	case o3 == 0 && onSegment(q1, p1, q2):
		return true
	case o4 == 0 && onSegment(q1, p2, q2):
		return true
	}

	return false
}

// orientation returns 0 when p, q and r are collinear, 1 when they turn clockwise and -1
// otherwise.
func orientation(p, q, r orb.Point) int {
	val := (q.Y()-p.Y())*(r.X()-q.X()) - (q.X()-p.X())*(r.Y()-q.Y())

	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether q lies within the bounding box of segment pr. Callers check that the
// three points are collinear.
func onSegment(p, q, r orb.Point) bool {
	return q.X() <= max(p.X(), r.X()) && q.X() >= min(p.X(), r.X()) &&
		q.Y() <= max(p.Y(), r.Y()) && q.Y() >= min(p.Y(), r.Y())
}
