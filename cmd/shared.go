package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/askiada/go-meshgraph/internal/archive"
	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/internal/fsutil"
	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// buildPipeline loads the configuration file and builds the pipeline of the configured domain.
func buildPipeline(s settings, log logger.Logger, fs afero.Fs, downloader *fetch.Downloader, opts ...model.PipelineOption) (*pipeline.Pipeline, *config.File, error) {
	file, err := config.LoadFile(s.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	pipe, err := pipeline.New(pipeline.Config{
		Domain:     s.Domain,
		DataDir:    s.DataDir,
		Logger:     log,
		Files:      fsutil.New(fs),
		Downloader: downloader,
		Extractor:  archive.NewZip(fs),
	}, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create pipeline")
	}

	err = pipe.Build(file.Switches, file.Configuration)
	if err != nil {
		return nil, nil, err
	}

	return pipe, file, nil
}
