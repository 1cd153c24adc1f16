package cmd

import "github.com/askiada/go-meshgraph/pkg/pipeline/model"

const (
	exitFailure       = 1
	exitConfiguration = 2
)

// ExitCode returns the process exit code for the error returned by a command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case model.IsConfigurationError(err):
		return exitConfiguration
	default:
		return exitFailure
	}
}
