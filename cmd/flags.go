package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/askiada/go-meshgraph/cmd/util"
	"github.com/askiada/go-meshgraph/internal/fetch"
	"github.com/askiada/go-meshgraph/pkg/pipeline"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

const (
	configFlag          = "config"
	dataDirFlag         = "data-dir"
	domainFlag          = "domain"
	logLevelFlag        = "log-level"
	logFormatFlag       = "log-format"
	drawFileFlag        = "draw-file"
	downloadRetriesFlag = "download-retries"

	defaultConfigFile = "pipeline.hcl"
)

// commonFlags are the flags of every command loading a pipeline configuration.
var commonFlags = []string{configFlag, dataDirFlag, domainFlag, logLevelFlag, logFormatFlag}

func addCommonFlags(flags *pflag.FlagSet) {
	flags.String(configFlag, defaultConfigFile, "path of the HCL pipeline configuration")
	flags.String(dataDirFlag, pipeline.DefaultDataDir, "root directory of the working directories")
	flags.String(domainFlag, model.DomainMeshblocks.String(), "data domain to run")
	flags.String(logLevelFlag, "info", "log level: 'none', 'debug', 'info', 'warn' or 'error'")
	flags.String(logFormatFlag, "text", "log format: 'text' or 'json'")
}

func addRunFlags(flags *pflag.FlagSet) {
	addCommonFlags(flags)
	flags.String(drawFileFlag, "", "write the Graphviz rendering of the run, with the stage durations, to this file")
	flags.Int(downloadRetriesFlag, fetch.DefaultRetries, "transport retries of the download")
}

// bindFlagsFunc binds the named flags of a command to viper and to their MESHGRAPH_ environment
// variables.
func bindFlagsFunc(names ...string) func(*cobra.Command, []string) {
	return func(command *cobra.Command, _ []string) {
		flags := command.Flags()

		for _, name := range names {
			util.MustBindPFlag(name, flags.Lookup(name))
			util.MustBindEnv(name)
		}
	}
}

// settings are the values shared by the commands, read from viper once the flags are bound.
type settings struct {
	ConfigFile string
	DataDir    string
	Domain     model.Domain
	LogLevel   string
	LogFormat  string
}

func readSettings() settings {
	return settings{
		ConfigFile: viper.GetString(configFlag),
		DataDir:    viper.GetString(dataDirFlag),
		Domain:     model.Domain(viper.GetString(domainFlag)),
		LogLevel:   viper.GetString(logLevelFlag),
		LogFormat:  viper.GetString(logFormatFlag),
	}
}
