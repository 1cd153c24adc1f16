package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/pkg/config"
	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline"
)

// NewValidateCommand returns the command checking a configuration file without running it.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Build the pipeline of the configuration file without running it and print the stages
in execution order with the parameters resolved for each of them, the options each stage
leaves unset and the configured parameters no enabled stage reads.`,
		RunE: validate,
		Args: cobra.NoArgs,
	}

	addCommonFlags(cmd.Flags())
	cmd.PreRun = bindFlagsFunc(commonFlags...)

	return cmd
}

func validate(cmd *cobra.Command, _ []string) error {
	s := readSettings()

	osFs := afero.NewOsFs()
	log := logger.NewNoopLogger()

	pipe, file, err := buildPipeline(s, log, osFs, fetch.New(osFs))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	schemas := make([]config.Schema, 0, len(pipe.Stages()))

	for _, stage := range pipe.Stages() {
		schema, err := pipeline.Schema(stage.Domain, stage.Kind)
		if err != nil {
			return err
		}

		schemas = append(schemas, schema)

		var unset []string

		for _, name := range schema {
			if !slices.Contains(stage.Params, name) {
				unset = append(unset, name)
			}
		}

		line := stage.Name + ": " + strings.Join(stage.Params, ", ")
		if len(unset) > 0 {
			line += " (not set: " + strings.Join(unset, ", ") + ")"
		}

		err = writeLine(out, line)
		if err != nil {
			return err
		}
	}

	unused := unusedParams(file.Configuration, s.Domain.String(), schemas)
	if len(unused) > 0 {
		return writeLine(out, "unused: "+strings.Join(unused, ", "))
	}

	return nil
}

// unusedParams returns the parameters of the global and domain scopes that none of the schemas
// recognises, sorted.
func unusedParams(cfg config.Configuration, domain string, schemas []config.Schema) []string {
	var unused []string

	scope := config.Merge(cfg.Global, cfg.Scope(domain))

	for _, name := range scope.Names() {
		known := false

		for _, schema := range schemas {
			if schema.Has(name) {
				known = true

				break
			}
		}

		if !known {
			unused = append(unused, name)
		}
	}

	return unused
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)

	return err
}
