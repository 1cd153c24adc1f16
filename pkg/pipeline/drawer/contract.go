package drawer

import (
	"github.com/askiada/go-meshgraph/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStage adds a stage to the pipeline drawer.
	AddStage(stageName string) error
	// AddLink adds a link between a stage and the stage that runs after it.
	AddLink(parentStageName, childStageName string) error
	// Draw writes the pipeline graph.
	Draw() error
	// AddMeasure annotates the stages with their durations.
	AddMeasure(measure measure.Measure) error
}
