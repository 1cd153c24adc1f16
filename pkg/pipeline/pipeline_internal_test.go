package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

type recorder struct {
	ran []model.StageKind
}

type fakeStage struct {
	kind model.StageKind
	rec  *recorder
	err  error
	run  func(ctx context.Context) error
}

func (s *fakeStage) Run(ctx context.Context) error {
	s.rec.ran = append(s.rec.ran, s.kind)

	if s.run != nil {
		return s.run(ctx)
	}

	return s.err
}

func fakeLookup(rec *recorder, errs map[model.StageKind]error, params map[model.StageKind]*config.Params) lookupFunc {
	return func(_ model.Domain, kind model.StageKind) (stageEntry, error) {
		return stageEntry{
			schema: config.Schema{"name"},
			build: func(p config.Params, _ stageEnv) (Stage, error) {
				if dst, ok := params[kind]; ok {
					*dst = p
				}

				return &fakeStage{kind: kind, rec: rec, err: errs[kind]}, nil
			},
		}, nil
	}
}

type hookRecorder struct {
	calls []string
}

func (h *hookRecorder) New() error {
	h.calls = append(h.calls, "new")

	return nil
}

func (h *hookRecorder) PrepareStage(parent, stage *model.StageInfo) error {
	h.calls = append(h.calls, "prepare "+parent.Name+" "+stage.Name)

	return nil
}

func (h *hookRecorder) AfterStage(stage *model.StageInfo, _ time.Duration) error {
	h.calls = append(h.calls, "after "+stage.Name)

	return nil
}

func (h *hookRecorder) Finish() error {
	h.calls = append(h.calls, "finish")

	return nil
}

func TestRunOrderAndHooks(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	hooks := &hookRecorder{}

	pipe, err := New(Config{Domain: "test"}, hooks)
	require.NoError(t, err)

	pipe.lookup = fakeLookup(rec, nil, nil)

	sws := config.SwitchSet{
		{Kind: model.StageProcessed, Enabled: true},
		{Kind: model.StageRaw, Enabled: true},
	}

	require.NoError(t, pipe.Build(sws, config.Configuration{}))
	require.NoError(t, pipe.Run(context.Background()))

	assert.Equal(t, []model.StageKind{model.StageProcessed, model.StageRaw}, rec.ran)
	assert.Equal(t, []string{
		"new",
		"prepare start test/processed",
		"prepare test/processed test/raw",
		"after test/processed",
		"after test/raw",
		"finish",
	}, hooks.calls)
	assert.Equal(t, model.StateDone, pipe.State())
}

func TestRunStopsOnFirstError(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	hooks := &hookRecorder{}

	pipe, err := New(Config{Domain: "test"}, hooks)
	require.NoError(t, err)

	pipe.lookup = fakeLookup(rec, map[model.StageKind]error{model.StageRaw: assert.AnError}, nil)

	sws := config.SwitchSet{
		{Kind: model.StageRaw, Enabled: true},
		{Kind: model.StageProcessed, Enabled: true},
	}

	require.NoError(t, pipe.Build(sws, config.Configuration{}))

	err = pipe.Run(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.EqualError(t, err, "stage test/raw: "+assert.AnError.Error())

	assert.Equal(t, []model.StageKind{model.StageRaw}, rec.ran)
	assert.NotContains(t, hooks.calls, "finish")
	assert.Equal(t, model.StateFailed, pipe.State())
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	pipe, err := New(Config{Domain: "test"})
	require.NoError(t, err)

	pipe.lookup = fakeLookup(rec, nil, nil)

	require.NoError(t, pipe.Build(config.SwitchSet{{Kind: model.StageRaw, Enabled: true}}, config.Configuration{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pipe.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.ran)
	assert.Equal(t, model.StateFailed, pipe.State())
}

func TestBuildResolvesParameters(t *testing.T) {
	t.Parallel()

	var rawParams, processedParams config.Params

	pipe, err := New(Config{Domain: "test"})
	require.NoError(t, err)

	pipe.lookup = fakeLookup(&recorder{}, nil, map[model.StageKind]*config.Params{
		model.StageRaw:       &rawParams,
		model.StageProcessed: &processedParams,
	})

	cfg := config.Configuration{
		Global: config.Scope{"name": cty.StringVal("global"), "ignored": cty.StringVal("x")},
		Domains: map[string]config.Scope{
			"test":  {"name": cty.StringVal("domain")},
			"other": {"name": cty.StringVal("other")},
		},
	}

	sws := config.SwitchSet{
		{Kind: model.StageRaw, Enabled: true},
		{Kind: model.StageProcessed, Enabled: false},
	}

	require.NoError(t, pipe.Build(sws, cfg))

	assert.Equal(t, config.Params{"name": cty.StringVal("domain")}, rawParams)
	assert.Nil(t, processedParams)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	entry, err := lookup(model.DomainMeshblocks, model.StageProcessed)
	require.NoError(t, err)
	assert.True(t, entry.schema.Has("type_adj"))
	assert.False(t, entry.schema.Has("url_data"))

	_, err = lookup(model.DomainMeshblocks, "interim")
	assert.True(t, model.IsConfigurationError(err))

	schema, err := Schema(model.DomainMeshblocks, model.StageRaw)
	require.NoError(t, err)
	assert.Equal(t, config.Schema{"url_data", "filename", "aggregation_level"}, schema)
}
