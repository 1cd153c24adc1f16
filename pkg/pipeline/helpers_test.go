package pipeline_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

const gridGeoJSON = `{"type": "FeatureCollection", "features": [
 {"type": "Feature", "properties": {"CD_SETOR": "A"}, "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
 {"type": "Feature", "properties": {"CD_SETOR": "B"}, "geometry": {"type": "Polygon", "coordinates": [[[1,0],[2,0],[2,1],[1,1],[1,0]]]}},
 {"type": "Feature", "properties": {"CD_SETOR": "C"}, "geometry": {"type": "Polygon", "coordinates": [[[0,1],[1,1],[1,2],[0,2],[0,1]]]}},
 {"type": "Feature", "properties": {"CD_SETOR": "D"}, "geometry": {"type": "Polygon", "coordinates": [[[1,1],[2,1],[2,2],[1,2],[1,1]]]}}
]}`

func gridZip(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	wrt := zip.NewWriter(&buf)
	w, err := wrt.Create("BR_setores/BR_setores.geojson")
	require.NoError(t, err)

	_, err = w.Write([]byte(gridGeoJSON))
	require.NoError(t, err)
	require.NoError(t, wrt.Close())

	return buf.Bytes()
}

type fakeDownloader struct {
	fs      afero.Fs
	payload []byte
	err     error
	calls   int
}

func (d *fakeDownloader) Download(_ context.Context, _, dest string) error {
	d.calls++

	if d.err != nil {
		return d.err
	}

	return afero.WriteFile(d.fs, dest, d.payload, 0o644)
}

func switches(t *testing.T, kinds ...model.StageKind) config.SwitchSet {
	t.Helper()

	sws := make([]config.Switch, 0, len(kinds))
	for _, kind := range kinds {
		sws = append(sws, config.Switch{Kind: kind, Enabled: true})
	}

	set, err := config.NewSwitchSet(sws...)
	require.NoError(t, err)

	return set
}

func configuration(typeAdj string) config.Configuration {
	return config.Configuration{
		Global: config.Scope{
			"aggregation_level": cty.StringVal("setor"),
			"filename":          cty.StringVal("setores.zip"),
			"threshold":         cty.NumberIntVal(0),
		},
		Domains: map[string]config.Scope{
			"meshblocks": {
				"url_data": cty.StringVal("https://example.org/BR_setores.zip"),
				"type_adj": cty.StringVal(typeAdj),
				"id_col":   cty.StringVal("CD_SETOR"),
			},
		},
	}
}
