package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/internal/archive"
	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/internal/fsutil"
	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/meshblocks"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// DefaultDataDir is the data directory used when Config.DataDir is empty.
const DefaultDataDir = "data"

// Stage is one step of a pipeline.
type Stage interface {
	Run(ctx context.Context) error
}

// Config configures a pipeline. Nil collaborators default to the operating system file system,
// the HTTP downloader and the zip extractor.
type Config struct {
	Domain     model.Domain
	DataDir    string
	Logger     logger.Logger
	Files      meshblocks.Files
	Downloader meshblocks.Downloader
	Extractor  meshblocks.Extractor
}

type builtStage struct {
	info  *model.StageInfo
	stage Stage
}

// Pipeline runs the stages of one domain sequentially.
type Pipeline struct {
	domain model.Domain
	env    stageEnv
	opts   []model.PipelineOption
	log    logger.Logger
	lookup lookupFunc

	state  model.State
	stages []builtStage
	runID  string
}

// New creates a new pipeline.
func New(cfg Config, opts ...model.PipelineOption) (*Pipeline, error) {
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.NewNoopLogger()
	}

	osFiles := fsutil.NewOS()

	if cfg.Files == nil {
		cfg.Files = osFiles
	}

	if cfg.Downloader == nil {
		cfg.Downloader = fetch.New(osFiles.Fs(), fetch.WithLogger(cfg.Logger))
	}

	if cfg.Extractor == nil {
		cfg.Extractor = archive.NewZip(osFiles.Fs())
	}

	log := cfg.Logger.With(zap.String("domain", cfg.Domain.String()))

	pipe := &Pipeline{
		domain: cfg.Domain,
		env: stageEnv{
			workspace: meshblocks.Workspace{DataDir: cfg.DataDir, Domain: cfg.Domain},
			deps: meshblocks.Deps{
				Files:      cfg.Files,
				Downloader: cfg.Downloader,
				Extractor:  cfg.Extractor,
				Logger:     log,
			},
		},
		opts:   opts,
		log:    log,
		lookup: lookup,
		state:  model.StateIdle,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// State returns the lifecycle state of the pipeline.
func (p *Pipeline) State() model.State {
	return p.state
}

// RunID returns the identifier of the last run, empty before Run.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Stages returns the built stages in execution order.
func (p *Pipeline) Stages() []model.StageInfo {
	res := make([]model.StageInfo, 0, len(p.stages))
	for _, s := range p.stages {
		res = append(res, *s.info)
	}

	return res
}

// Build creates the stages enabled by switches, in declaration order. It leaves the pipeline Idle
// when any stage cannot be created.
func (p *Pipeline) Build(switches config.SwitchSet, cfg config.Configuration) error {
	if p.state != model.StateIdle {
		return errors.Wrapf(ErrAlreadyBuilt, "state %s", p.state)
	}

	err := switches.Validate()
	if err != nil {
		return err
	}

	stages := make([]builtStage, 0, len(switches))

	for _, kind := range switches.Enabled() {
		entry, err := p.lookup(p.domain, kind)
		if err != nil {
			return err
		}

		params := config.Resolve(entry.schema, cfg, p.domain.String())

		stage, err := entry.build(params, p.env)
		if err != nil {
			return errors.Wrapf(err, "unable to build stage %s", model.StageName(p.domain, kind))
		}

		info := &model.StageInfo{
			Domain: p.domain,
			Kind:   kind,
			Name:   model.StageName(p.domain, kind),
			Params: params.Names(),
		}

		p.log.Debug("stage built", zap.String("stage", info.Name), zap.Strings("params", info.Params))

		stages = append(stages, builtStage{info: info, stage: stage})
	}

	parent := model.StartStage

	for _, s := range stages {
		for _, opt := range p.opts {
			err := opt.PrepareStage(parent, s.info)
			if err != nil {
				return errors.Wrapf(err, "unable to prepare stage %s", s.info.Name)
			}
		}

		parent = s.info
	}

	p.stages = stages
	p.state = model.StateBuilt

	return nil
}

// Run executes the built stages in order and stops on the first error.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.state != model.StateBuilt {
		return errors.Wrapf(ErrNotBuilt, "state %s", p.state)
	}

	p.state = model.StateRunning
	p.runID = uuid.NewString()

	log := p.log.With(zap.String("run_id", p.runID))
	start := time.Now()

	log.Info("pipeline started", zap.Int("stages", len(p.stages)))

	for _, s := range p.stages {
		err := p.runStage(ctx, log, s)
		if err != nil {
			p.state = model.StateFailed
			log.Error("pipeline failed", zap.String("stage", s.info.Name), zap.Error(err))

			return err
		}
	}

	err := p.finishRun()
	if err != nil {
		p.state = model.StateFailed

		return err
	}

	p.state = model.StateDone
	log.Info("pipeline done", zap.Duration("elapsed", time.Since(start)))

	return nil
}

func (p *Pipeline) runStage(ctx context.Context, log logger.Logger, s builtStage) error {
	err := ctx.Err()
	if err != nil {
		return &model.StageError{Err: errors.Wrap(err, "pipeline interrupted"), Domain: s.info.Domain, Kind: s.info.Kind}
	}

	log.Info("running stage", zap.String("stage", s.info.Name))

	start := time.Now()

	err = s.stage.Run(ctx)
	if err != nil {
		return &model.StageError{Err: err, Domain: s.info.Domain, Kind: s.info.Kind}
	}

	elapsed := time.Since(start)

	log.Info("stage done", zap.String("stage", s.info.Name), zap.Duration("elapsed", elapsed))

	for _, opt := range p.opts {
		err := opt.AfterStage(s.info, elapsed)
		if err != nil {
			return errors.Wrapf(err, "unable to complete stage %s", s.info.Name)
		}
	}

	return nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
