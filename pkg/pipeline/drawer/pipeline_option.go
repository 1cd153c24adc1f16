package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-meshgraph/pkg/pipeline/measure"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m    measure.Measure
	last *model.StageInfo
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}

	err = pd.AddStage(model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end stage to drawer")
	}

	pd.last = model.StartStage

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}

	err = pd.AddLink(parentStage.Name, stage.Name)
	if err != nil {
		return err
	}

	pd.last = stage

	return nil
}

func (pd *pipelineDrawer) AfterStage(_ *model.StageInfo, _ time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.AddLink(pd.last.Name, model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link end stage")
	}

	if pd.m != nil {
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the stage chain once the pipeline completes. When measure is set, it must
// also be registered as a pipeline option before the drawer so that its metrics are complete.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
