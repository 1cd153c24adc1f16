package pipeline

import (
	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/meshblocks"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// stageEntry is the schema and constructor of one stage type.
type stageEntry struct {
	schema config.Schema
	build  func(params config.Params, env stageEnv) (Stage, error)
}

// stageEnv is what a constructor gets besides its parameters.
type stageEnv struct {
	workspace meshblocks.Workspace
	deps      meshblocks.Deps
}

// lookupFunc finds the stage type of a domain and kind.
type lookupFunc func(domain model.Domain, kind model.StageKind) (stageEntry, error)

// lookup is the closed registry of stage types.
func lookup(domain model.Domain, kind model.StageKind) (stageEntry, error) {
	switch domain {
	case model.DomainMeshblocks:
		switch kind {
		case model.StageRaw:
			return stageEntry{schema: meshblocks.RawSchema, build: buildMeshblocksRaw}, nil
		case model.StageProcessed:
			return stageEntry{schema: meshblocks.ProcessedSchema, build: buildMeshblocksProcessed}, nil
		}

		return stageEntry{}, model.NewConfigurationError("switches", kind.String(), "unknown stage kind for domain "+domain.String())
	default:
		return stageEntry{}, model.NewConfigurationError("domain", domain.String(), "unknown domain")
	}
}

// Schema returns the option names of the stage kind of a domain.
func Schema(domain model.Domain, kind model.StageKind) (config.Schema, error) {
	entry, err := lookup(domain, kind)
	if err != nil {
		return nil, err
	}

	return entry.schema, nil
}

func buildMeshblocksRaw(params config.Params, env stageEnv) (Stage, error) {
	opts, err := meshblocks.DecodeRawOptions(params)
	if err != nil {
		return nil, err
	}

	return meshblocks.NewRaw(env.workspace, opts, env.deps), nil
}

func buildMeshblocksProcessed(params config.Params, env stageEnv) (Stage, error) {
	opts, err := meshblocks.DecodeProcessedOptions(params)
	if err != nil {
		return nil, err
	}

	return meshblocks.NewProcessed(env.workspace, opts, env.deps)
}
