package meshblocks

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-meshgraph/pkg/adjacency"
	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Option names shared by the stages.
const (
	OptURLData          = "url_data"
	OptFilename         = "filename"
	OptAggregationLevel = "aggregation_level"
	OptTypeAdj          = "type_adj"
	OptIDCol            = "id_col"
	OptThreshold        = "threshold"
	OptExportGraph      = "export_graph"
)

var (
	// RawSchema lists the options of the raw stage.
	RawSchema = config.Schema{OptURLData, OptFilename, OptAggregationLevel}
	// ProcessedSchema lists the options of the processed stage.
	ProcessedSchema = config.Schema{OptAggregationLevel, OptFilename, OptTypeAdj, OptIDCol, OptThreshold, OptExportGraph}
)

// RawOptions configures the raw stage. Empty fields were not configured.
type RawOptions struct {
	URLData          string
	Filename         string
	AggregationLevel string
}

// DecodeRawOptions reads the raw options from resolved parameters.
func DecodeRawOptions(params config.Params) (RawOptions, error) {
	var opts RawOptions

	err := decodeStrings(params, []stringOption{
		{OptURLData, &opts.URLData},
		{OptFilename, &opts.Filename},
		{OptAggregationLevel, &opts.AggregationLevel},
	})
	if err != nil {
		return opts, errors.Wrap(err, "unable to decode raw options")
	}

	return opts, nil
}

// Validate reports the first option the stage needs but that is not configured.
func (o RawOptions) Validate() error {
	return required(
		OptURLData, o.URLData,
		OptFilename, o.Filename,
		OptAggregationLevel, o.AggregationLevel,
	)
}

// ProcessedOptions configures the processed stage.
type ProcessedOptions struct {
	AggregationLevel string
	Filename         string
	TypeAdj          string
	IDCol            string
	// Threshold is 0 when not configured.
	Threshold   float64
	ExportGraph bool
}

// DecodeProcessedOptions reads the processed options from resolved parameters. A type_adj that is
// set but names no known strategy is rejected here, before any stage runs.
func DecodeProcessedOptions(params config.Params) (ProcessedOptions, error) {
	var opts ProcessedOptions

	err := decodeStrings(params, []stringOption{
		{OptAggregationLevel, &opts.AggregationLevel},
		{OptFilename, &opts.Filename},
		{OptTypeAdj, &opts.TypeAdj},
		{OptIDCol, &opts.IDCol},
	})
	if err != nil {
		return opts, errors.Wrap(err, "unable to decode processed options")
	}

	err = params.Float(OptThreshold, &opts.Threshold)
	if err != nil {
		return opts, errors.Wrap(err, "unable to decode processed options")
	}

	err = params.Bool(OptExportGraph, &opts.ExportGraph)
	if err != nil {
		return opts, errors.Wrap(err, "unable to decode processed options")
	}

	if opts.TypeAdj != "" {
		_, err = adjacency.ParseStrategy(opts.TypeAdj)
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// Validate reports the first option the stage needs but that is not configured, or an unknown
// strategy.
func (o ProcessedOptions) Validate() error {
	err := required(
		OptAggregationLevel, o.AggregationLevel,
		OptFilename, o.Filename,
		OptTypeAdj, o.TypeAdj,
		OptIDCol, o.IDCol,
	)
	if err != nil {
		return err
	}

	_, err = adjacency.ParseStrategy(o.TypeAdj)

	return err
}

// adjacencyOptions must only be called once Validate succeeded.
func (o ProcessedOptions) adjacencyOptions() adjacency.Options {
	strategy, _ := adjacency.ParseStrategy(o.TypeAdj)

	return adjacency.Options{Strategy: strategy, Threshold: o.Threshold}
}

type stringOption struct {
	name string
	dst  *string
}

func decodeStrings(params config.Params, opts []stringOption) error {
	for _, opt := range opts {
		err := params.String(opt.name, opt.dst)
		if err != nil {
			return err
		}
	}

	return nil
}

// required takes name/value pairs.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return model.MissingParam(pairs[i])
		}
	}

	return nil
}

// stem returns filename up to its first dot.
func stem(filename string) string {
	name, _, _ := strings.Cut(filename, ".")

	return name
}

// extension returns filename from its first dot, "" when there is none.
func extension(filename string) string {
	idx := strings.Index(filename, ".")
	if idx < 0 {
		return ""
	}

	return filename[idx:]
}
