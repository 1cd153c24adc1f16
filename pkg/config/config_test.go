package config_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

var processedSchema = config.Schema{"aggregation_level", "filename", "type_adj", "id_col", "threshold"}

func TestResolveDomainOverridesGlobal(t *testing.T) {
	t.Parallel()

	cfg := config.Configuration{
		Global:  config.Scope{"type_adj": cty.StringVal("QUEEN"), "id_col": cty.StringVal("CD_SETOR")},
		Domains: map[string]config.Scope{"meshblocks": {"type_adj": cty.StringVal("INVD")}},
	}

	params := config.Resolve(processedSchema, cfg, "meshblocks")

	var typeAdj, idCol string
	require.NoError(t, params.String("type_adj", &typeAdj))
	require.NoError(t, params.String("id_col", &idCol))
	assert.Equal(t, "INVD", typeAdj)
	assert.Equal(t, "CD_SETOR", idCol)
}

func TestResolveOtherDomainIgnored(t *testing.T) {
	t.Parallel()

	cfg := config.Configuration{
		Global:  config.Scope{"type_adj": cty.StringVal("QUEEN")},
		Domains: map[string]config.Scope{"census": {"type_adj": cty.StringVal("INVD")}},
	}

	params := config.Resolve(processedSchema, cfg, "meshblocks")

	assert.True(t, params["type_adj"].RawEquals(cty.StringVal("QUEEN")))
}

func TestResolveDropsFalsyValues(t *testing.T) {
	t.Parallel()

	tcs := map[string]cty.Value{
		"zero":         cty.NumberIntVal(0),
		"empty string": cty.StringVal(""),
		"false":        cty.False,
		"null":         cty.NullVal(cty.String),
		"empty list":   cty.ListValEmpty(cty.String),
	}

	for name, val := range tcs {
		val := val
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Configuration{Global: config.Scope{"threshold": val}}
			params := config.Resolve(processedSchema, cfg, "meshblocks")

			_, ok := params["threshold"]
			assert.False(t, ok)
			assert.Empty(t, params.Names())
		})
	}
}

func TestResolveFalsyDomainKeepsGlobal(t *testing.T) {
	t.Parallel()

	cfg := config.Configuration{
		Global:  config.Scope{"id_col": cty.StringVal("CD_SETOR")},
		Domains: map[string]config.Scope{"meshblocks": {"id_col": cty.StringVal("")}},
	}

	params := config.Resolve(processedSchema, cfg, "meshblocks")

	var idCol string
	require.NoError(t, params.String("id_col", &idCol))
	assert.Equal(t, "CD_SETOR", idCol)
}

func TestResolveIgnoresUndeclaredNames(t *testing.T) {
	t.Parallel()

	cfg := config.Configuration{
		Global: config.Scope{"url_data": cty.StringVal("http://example.org"), "filename": cty.StringVal("a.zip")},
	}

	params := config.Resolve(processedSchema, cfg, "meshblocks")

	assert.Equal(t, []string{"filename"}, params.Names())
}

func TestResolveMissingScopes(t *testing.T) {
	t.Parallel()

	params := config.Resolve(processedSchema, config.Configuration{}, "meshblocks")

	assert.Empty(t, params)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	global := config.Scope{"a": cty.StringVal("global"), "b": cty.StringVal("global")}
	domain := config.Scope{"b": cty.StringVal("domain"), "c": cty.StringVal("domain")}

	got := config.Merge(global, domain)

	assert.Equal(t, []string{"a", "b", "c"}, got.Names())
	assert.Equal(t, "global", got["a"].AsString())
	assert.Equal(t, "domain", got["b"].AsString())
	assert.Equal(t, "global", global["b"].AsString())
}

func TestParamsFloat(t *testing.T) {
	t.Parallel()

	params := config.Params{
		"number": cty.NumberFloatVal(2.5),
		"string": cty.StringVal("10"),
		"inf":    cty.StringVal("inf"),
		"bad":    cty.StringVal("far"),
		"list":   cty.ListVal([]cty.Value{cty.StringVal("a")}),
	}

	var got float64
	require.NoError(t, params.Float("number", &got))
	assert.InDelta(t, 2.5, got, 1e-12)

	require.NoError(t, params.Float("string", &got))
	assert.InDelta(t, 10.0, got, 1e-12)

	require.NoError(t, params.Float("inf", &got))
	assert.True(t, math.IsInf(got, 1))

	got = 7
	require.NoError(t, params.Float("missing", &got))
	assert.InDelta(t, 7.0, got, 1e-12)

	err := params.Float("bad", &got)
	assert.True(t, model.IsConfigurationError(err))

	err = params.Float("list", &got)
	assert.True(t, model.IsConfigurationError(err))
}

func TestParamsStringAndBool(t *testing.T) {
	t.Parallel()

	params := config.Params{
		"level":  cty.NumberIntVal(3),
		"export": cty.StringVal("true"),
		"list":   cty.ListVal([]cty.Value{cty.StringVal("a")}),
	}

	var level string
	require.NoError(t, params.String("level", &level))
	assert.Equal(t, "3", level)

	var export bool
	require.NoError(t, params.Bool("export", &export))
	assert.True(t, export)

	err := params.String("list", &level)
	assert.True(t, model.IsConfigurationError(err))
}
