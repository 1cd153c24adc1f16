package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStageOption

	// Finish runs after every stage of the pipeline completed successfully.
	Finish() error
}

// pipelineStageOption defines the interface for stage options at the pipeline level.
type pipelineStageOption interface {
	// PrepareStage runs when the stage is built, parentStage is the stage that runs just before it.
	PrepareStage(parentStage, stage *StageInfo) error
	// AfterStage runs once the stage returned without error.
	AfterStage(stage *StageInfo, duration time.Duration) error
}
