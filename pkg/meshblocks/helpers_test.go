package meshblocks_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name    string
	content string
}

func zipBytes(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer

	wrt := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := wrt.Create(e.name)
		require.NoError(t, err)

		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}

	require.NoError(t, wrt.Close())

	return buf.Bytes()
}

// fakeDownloader serves the same payload for every url.
type fakeDownloader struct {
	fs      afero.Fs
	payload []byte
	err     error
	calls   []string
}

func (d *fakeDownloader) Download(_ context.Context, url, dest string) error {
	d.calls = append(d.calls, url)

	if d.err != nil {
		return d.err
	}

	return afero.WriteFile(d.fs, dest, d.payload, 0o644)
}

const gridGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"CD_SETOR": "A"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
    {"type": "Feature", "properties": {"CD_SETOR": "B"},
     "geometry": {"type": "Polygon", "coordinates": [[[1,0],[2,0],[2,1],[1,1],[1,0]]]}},
    {"type": "Feature", "properties": {"CD_SETOR": "C"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,1],[1,1],[1,2],[0,2],[0,1]]]}},
    {"type": "Feature", "properties": {"CD_SETOR": "D"},
     "geometry": {"type": "Polygon", "coordinates": [[[1,1],[2,1],[2,2],[1,2],[1,1]]]}}
  ]
}`
