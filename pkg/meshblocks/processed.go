package meshblocks

import (
	"context"
	"io"
	"math"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/pkg/adjacency"
	"github.com/askiada/go-meshgraph/pkg/geometry"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Processed computes and persists the adjacency matrix of the raw geometries.
type Processed struct {
	opts ProcessedOptions
	ws   Workspace
	deps Deps
	log  logger.Logger

	geometries *geometry.Set
}

// NewProcessed creates the processed stage. It fails when type_adj is set to an unknown strategy.
func NewProcessed(ws Workspace, opts ProcessedOptions, deps Deps) (*Processed, error) {
	if opts.TypeAdj != "" {
		_, err := adjacency.ParseStrategy(opts.TypeAdj)
		if err != nil {
			return nil, err
		}
	}

	return &Processed{
		opts: opts,
		ws:   ws,
		deps: deps,
		log:  deps.logger(model.StageProcessed),
	}, nil
}

// Dir returns the output directory of the stage.
func (p *Processed) Dir() string {
	return p.ws.Dir(model.StageProcessed, p.opts.AggregationLevel)
}

// Geometries returns the meshblocks of the raw directory. They are read on the first call only.
func (p *Processed) Geometries() (*geometry.Set, error) {
	if p.geometries != nil {
		return p.geometries, nil
	}

	rawDir := p.ws.Dir(model.StageRaw, p.opts.AggregationLevel)

	path, err := geometry.Find(rawDir, stem(filepath.Base(p.opts.Filename)))
	if err != nil {
		return nil, model.NewIOError("find", rawDir, err)
	}

	set, err := geometry.Load(path, p.opts.IDCol)

	switch {
	case errors.Is(err, geometry.ErrMissingIDColumn):
		return nil, model.NewConfigurationError(OptIDCol, p.opts.IDCol, "column not found in "+path)
	case err != nil:
		return nil, model.NewIOError("read", path, err)
	}

	p.log.Debug("geometries loaded", zap.String("path", path), zap.Int("units", set.Len()))
	p.geometries = set

	return set, nil
}

// Run writes <STRATEGY>.csv, and <STRATEGY>.dot when the graph export is enabled.
func (p *Processed) Run(_ context.Context) error {
	err := p.opts.Validate()
	if err != nil {
		return err
	}

	adjOpts := p.opts.adjacencyOptions()

	err = adjOpts.Validate()
	if err != nil {
		return err
	}

	dir := p.Dir()
	log := p.log.With(zap.String("dir", dir), zap.Stringer("strategy", adjOpts.Strategy))

	log.Info("generating processed data")

	if math.IsInf(adjOpts.Threshold, 1) && adjOpts.Strategy == adjacency.Distance {
		log.Warn("no distance cutoff, every pair of units will be connected")
	}

	err = p.deps.Files.MkdirAll(dir)
	if err != nil {
		return err
	}

	set, err := p.Geometries()
	if err != nil {
		return err
	}

	log.Info("generating adjacency matrix", zap.String("aggregation_level", p.opts.AggregationLevel), zap.Int("units", set.Len()))

	matrix, err := adjacency.Compute(set, adjOpts)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(dir, adjOpts.Strategy.String()+".csv")

	err = p.write(csvPath, func(w io.Writer) error {
		return matrix.WriteCSV(w, p.opts.IDCol)
	})
	if err != nil {
		return err
	}

	if p.opts.ExportGraph {
		gra, err := matrix.Graph()
		if err != nil {
			return errors.Wrap(err, "unable to build neighbour graph")
		}

		err = p.write(filepath.Join(dir, adjOpts.Strategy.String()+".dot"), gra.WriteDOT)
		if err != nil {
			return err
		}
	}

	log.Info("adjacency matrix written", zap.String("path", csvPath), zap.Int("links", matrix.Links()))

	return nil
}

func (p *Processed) write(path string, fn func(io.Writer) error) error {
	file, err := p.deps.Files.Create(path)
	if err != nil {
		return err
	}

	err = fn(file)
	if err != nil {
		file.Close()

		return model.NewIOError("write", path, err)
	}

	return model.NewIOError("close", path, file.Close())
}
