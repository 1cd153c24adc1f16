package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConfigurationError reports an invalid or missing configuration value: an unknown adjacency
// strategy, an unknown domain/stage combination, a malformed switch set or a parameter a stage
// needs but that resolved to nothing. It is fatal to the pipeline run.
type ConfigurationError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder

	b.WriteString("configuration error")

	if e.Param != "" {
		b.WriteString(": ")
		b.WriteString(e.Param)

		if e.Value != "" {
			fmt.Fprintf(&b, "=%q", e.Value)
		}
	}

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

// NewConfigurationError creates a configuration error for a parameter.
func NewConfigurationError(param, value, reason string) *ConfigurationError {
	return &ConfigurationError{Param: param, Value: value, Reason: reason}
}

// MissingParam reports a parameter that resolved to nothing while a stage needed it.
func MissingParam(param string) *ConfigurationError {
	return &ConfigurationError{Param: param, Reason: "not configured"}
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError

	return errors.As(err, &cfgErr)
}

// IOError is returned by the file, download and archive collaborators.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err as an IOError, it returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &IOError{Op: op, Path: path, Err: err}
}

// StageError attaches the failing stage to the error it returned.
type StageError struct {
	Err    error
	Domain Domain
	Kind   StageKind
}

func (e *StageError) Error() string {
	return "stage " + StageName(e.Domain, e.Kind) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Cause returns the error returned by the stage.
func (e *StageError) Cause() error {
	return e.Err
}
