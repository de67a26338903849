package measure

import (
	"time"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	return nil
}

func (pm *pipelineMeasure) PrepareTask(parent, task *model.TaskInfo) error {
	pm.AddMetric(task.Name)

	return nil
}

func (pm *pipelineMeasure) OnTaskDone(task *model.TaskInfo, elapsed time.Duration) error {
	pm.GetMetric(task.Name).AddDuration(elapsed)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records the run duration of every task into msr.
func PipelineMeasure(msr Measure) model.PipelineOption {
	return &pipelineMeasure{msr}
}
