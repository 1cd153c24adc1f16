// Package model provides the data structures shared by the pipeline packages.
// It defines the data domains and stage kinds the orchestrator knows about, the lifecycle states
// of a pipeline, the hooks a pipeline option can implement and the error taxonomy returned by
// stages and by the adjacency engine.
package model
