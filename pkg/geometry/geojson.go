package geometry

import (
	"os"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

func loadGeoJSON(path, idCol string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode feature collection %s", path)
	}

	set := NewSet()

	for i, feature := range fc.Features {
		raw, ok := feature.Properties[idCol]
		if !ok {
			return nil, errors.Wrapf(ErrMissingIDColumn, "feature %d has no %s property", i, idCol)
		}

		err := set.Add(formatID(raw), feature.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
	}

	return set, nil
}
