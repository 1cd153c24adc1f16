package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/drawer"
	"github.com/askiada/go-meshgraph/pkg/pipeline/measure"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// NewRunCommand returns the command running the pipeline of a domain.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline",
		Long:  "Run the stages enabled by the switches of the configuration file, in order, and stop on the first failure.",
		RunE:  run,
		Args:  cobra.NoArgs,
	}

	addRunFlags(cmd.Flags())
	cmd.PreRun = bindFlagsFunc(append(commonFlags, drawFileFlag, downloadRetriesFlag)...)

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	s := readSettings()

	log, err := logger.NewLogger(s.LogFormat, s.LogLevel)
	if err != nil {
		return model.NewConfigurationError("log", "", err.Error())
	}

	defer func() {
		_ = log.Sync()
	}()

	osFs := afero.NewOsFs()
	msr := measure.NewDefaultMeasure()

	opts := []model.PipelineOption{measure.PipelineMeasure(msr)}
	if drawFile := viper.GetString(drawFileFlag); drawFile != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(osFs, drawFile), msr))
	}

	downloader := fetch.New(osFs, fetch.WithRetries(viper.GetInt(downloadRetriesFlag)), fetch.WithLogger(log))

	pipe, _, err := buildPipeline(s, log, osFs, downloader, opts...)
	if err != nil {
		log.Error("unable to build pipeline", zap.Error(err))

		return err
	}

	err = pipe.Run(cmd.Context())
	if err != nil {
		return errors.Wrapf(err, "run %s", pipe.RunID())
	}

	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)
		log.Debug("stage duration",
			zap.String("stage", name),
			zap.Duration("avg", mt.AVGDuration()),
			zap.Duration("total", mt.GetTotalDuration()),
		)
	}

	return nil
}
