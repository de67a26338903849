package model

type TaskType string

const (
	// RootTaskType is a task without a dependency.
	RootTaskType TaskType = "root"
	// TransformTaskType is a task consuming the output of another task.
	TransformTaskType TaskType = "task"
)

// TaskInfo describes a registered task.
type TaskInfo struct {
	Type TaskType
	Name string
	// Index is the registration order of the task, starting at 0.
	Index int
}

// StartTask and EndTask are pseudo tasks used by options to mark the
// boundaries of the pipeline graph. They are never executed.
var (
	StartTask = &TaskInfo{Name: "start"}
	EndTask   = &TaskInfo{Name: "end"}
)
