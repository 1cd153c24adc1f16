package geometry

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	ErrEmptyID       = errors.New("unit identifier must be set")
	ErrDuplicateID   = errors.New("duplicate unit identifier")
	ErrNotPolygon    = errors.New("geometry is not a polygon")
	ErrEmptyGeometry = errors.New("geometry is empty")
)

// Set is an ordered collection of polygon geometries keyed by unit identifier.
// The iteration order is the insertion order. Geometries are copied on insertion and must not be
// modified through the values returned by Get or At.
type Set struct {
	index map[string]int
	ids   []string
	geoms []orb.MultiPolygon
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		index: make(map[string]int),
	}
}

// Add appends a unit to the set.
func (s *Set) Add(id string, geom orb.Geometry) error {
	if id == "" {
		return ErrEmptyID
	}

	if _, ok := s.index[id]; ok {
		return errors.Wrapf(ErrDuplicateID, "id %q", id)
	}

	multi, err := toMultiPolygon(geom)
	if err != nil {
		return errors.Wrapf(err, "id %q", id)
	}

	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.geoms = append(s.geoms, multi)

	return nil
}

// Get returns the geometry of the unit id.
func (s *Set) Get(id string) (orb.MultiPolygon, bool) {
	idx, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return s.geoms[idx], true
}

// At returns the unit at position i.
func (s *Set) At(i int) (string, orb.MultiPolygon) {
	return s.ids[i], s.geoms[i]
}

// IDs returns the unit identifiers in insertion order.
func (s *Set) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)

	return ids
}

// Len returns the number of units.
func (s *Set) Len() int {
	return len(s.ids)
}

func toMultiPolygon(geom orb.Geometry) (orb.MultiPolygon, error) {
	var multi orb.MultiPolygon

	switch g := geom.(type) {
	case orb.Polygon:
		multi = orb.MultiPolygon{g.Clone()}
	case orb.MultiPolygon:
		multi = g.Clone()
	case nil:
		return nil, ErrEmptyGeometry
	default:
		return nil, errors.Wrapf(ErrNotPolygon, "got %s", g.GeoJSONType())
	}

	for _, poly := range multi {
		if len(poly) > 0 && len(poly[0]) > 0 {
			return multi, nil
		}
	}

	return nil, ErrEmptyGeometry
}
