package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

var ErrUnknownStage = errors.New("stage has no metric")

type pipelineMeasure struct {
	Measure
	startTime time.Time
}

func (pm *pipelineMeasure) New() error {
	pm.startTime = time.Now()
	pm.AddMetric(model.StartStage.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStage(_, stage *model.StageInfo) error {
	pm.AddMetric(stage.Name)

	return nil
}

func (pm *pipelineMeasure) AfterStage(stage *model.StageInfo, duration time.Duration) error {
	mt := pm.GetMetric(stage.Name)
	if mt == nil {
		return errors.Wrapf(ErrUnknownStage, "stage %s", stage.Name)
	}

	mt.AddDuration(duration)
	mt.SetTotalDuration(time.Since(pm.startTime))

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	pm.AddMetric(model.EndStage.Name).SetTotalDuration(time.Since(pm.startTime))

	return nil
}

// PipelineMeasure records the duration of every stage into measure. The total duration of a stage
// is the time elapsed since the pipeline was created until the stage completed.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{Measure: measure}
}
