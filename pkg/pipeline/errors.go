package pipeline

import "github.com/pkg/errors"

// Configuration errors returned at registration time.
var (
	ErrPipelineMustBeSet = errors.New("p must be set")
	ErrInputMustBeSet    = errors.New("input must be set")
	ErrTaskFnMustBeSet   = errors.New("task function must be set")
	ErrTaskAlreadyExists = errors.New("task name already registered")
	ErrUnknownDependency = errors.New("dependency is not registered")
	ErrDependencyCycle   = errors.New("dependency would create a cycle")
)

// Result table errors.
var (
	ErrResultsMustBeSet = errors.New("results must be set")
	ErrTaskMustBeSet    = errors.New("task must be set")
	ErrResultNotFound   = errors.New("no result for task")
	ErrResultType       = errors.New("result has unexpected type")
)
