package geometry

import (
	"os"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func loadShapefile(path, idCol string) (*Set, error) {
	// the reader hides a missing attribute table behind an empty field list
	_, err := os.Stat(attributeTable(path))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open attribute table of %s", path)
	}

	reader, err := shp.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open shapefile %s", path)
	}
	defer reader.Close()

	field := -1

	for i, f := range reader.Fields() {
		if strings.EqualFold(f.String(), idCol) {
			field = i

			break
		}
	}

	if field < 0 {
		return nil, errors.Wrapf(ErrMissingIDColumn, "%s has no %s attribute", path, idCol)
	}

	set := NewSet()

	for reader.Next() {
		row, shape := reader.Shape()

		geom, err := shapeToMultiPolygon(shape)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", row)
		}

		err = set.Add(strings.Trim(reader.ReadAttribute(row, field), " \x00"), geom)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", row)
		}
	}

	if err := reader.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read shapefile %s", path)
	}

	return set, nil
}

// attributeTable returns the .dbf path the shapefile reader opens for path.
func attributeTable(path string) string {
	return path[:len(path)-len("shp")] + "dbf"
}

func shapeToMultiPolygon(shape shp.Shape) (orb.MultiPolygon, error) {
	switch s := shape.(type) {
	case *shp.Polygon:
		return ringsToMultiPolygon(s.Parts, s.Points), nil
	case *shp.PolygonZ:
		return ringsToMultiPolygon(s.Parts, s.Points), nil
	case *shp.PolygonM:
		return ringsToMultiPolygon(s.Parts, s.Points), nil
	case *shp.Null, nil:
		return nil, ErrEmptyGeometry
	default:
		return nil, errors.Wrapf(ErrNotPolygon, "shape %T", shape)
	}
}

// ringsToMultiPolygon splits the points into rings. Clockwise rings start a new polygon,
// counter-clockwise rings are holes of the polygon before them.
func ringsToMultiPolygon(parts []int32, points []shp.Point) orb.MultiPolygon {
	var multi orb.MultiPolygon

	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}

		ring := make(orb.Ring, 0, end-start)
		for _, pt := range points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}

		if len(multi) == 0 || ring.Orientation() != orb.CCW {
			multi = append(multi, orb.Polygon{ring})

			continue
		}

		last := len(multi) - 1
		multi[last] = append(multi[last], ring)
	}

	return multi
}
