// Package pipeline runs the stages of a data domain in a fixed order.
//
// A pipeline is created for one domain with New, built from a switch set and a configuration with
// Build, then executed with Run:
//
//	Idle --Build--> Built --Run--> Running --> Done
//	                                       \-> Failed
//
// Build walks the enabled switches in declaration order. For each of them it looks up the stage
// implementation of the domain, resolves the stage parameters from the global and domain scopes of
// the configuration and creates the stage. An unknown domain or stage kind, or a stage that
// rejects its parameters, is a model.ConfigurationError and nothing runs.
//
// Run executes the stages one after the other and stops on the first error, which is returned as a
// model.StageError naming the stage. Stages that already ran are not rolled back.
//
// Pipeline options (see the measure and drawer packages) are notified when stages are built and
// when they complete.
package pipeline
