package geometry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMissingIDColumn   = errors.New("identifier column not found")
	ErrUnsupportedFormat = errors.New("unsupported geometry format")
	ErrNotFound          = errors.New("geometry file not found")
)

// Extensions lists the geometry file extensions Find looks for, by priority.
var Extensions = []string{".shp", ".geojson", ".json"}

// Load reads the geometry file at path into a set, using the attribute idCol as the unit identifier.
func Load(path, idCol string) (*Set, error) {
	if idCol == "" {
		return nil, ErrMissingIDColumn
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return loadShapefile(path, idCol)
	case ".geojson", ".json":
		return loadGeoJSON(path, idCol)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "file %s", path)
	}
}

// Find returns the first geometry file named stem in dir.
func Find(dir, stem string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, stem+ext)

		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Wrapf(ErrNotFound, "%s in %s", stem, dir)
}

func formatID(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
