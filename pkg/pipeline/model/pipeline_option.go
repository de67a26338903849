package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareTask runs when a task is registered. For root tasks the
	// parent is StartTask.
	PrepareTask(parent, task *TaskInfo) error
	// OnTaskDone runs after a task's computation returned successfully.
	OnTaskDone(task *TaskInfo, elapsed time.Duration) error
	// Finish runs after every task of a run completed.
	Finish() error
}
