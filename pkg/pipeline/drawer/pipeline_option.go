package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/measure"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	msr       measure.Measure
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddTask(model.StartTask.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start task to drawer")
	}
	err = pd.AddTask(model.EndTask.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end task to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareTask(parent, task *model.TaskInfo) error {
	err := pd.AddTask(task.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parent.Name, task.Name)
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) OnTaskDone(task *model.TaskInfo, elapsed time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.LinkLeaves(model.EndTask.Name)
	if err != nil {
		return errors.Wrap(err, "unable to close task graph")
	}

	err = pd.SetTotalTime(model.EndTask.Name, pd.startTime)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if pd.msr != nil {
		err = pd.AddMeasure(pd.msr)
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

// PipelineDrawer draws the task graph once the run finishes. msr may be nil;
// when set, the drawn tasks are labelled and coloured by run duration.
func PipelineDrawer(drw Drawer, msr measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drw, msr, time.Now()}
}
