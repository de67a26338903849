package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

// Task is an opaque typed handle for a registered task. O is the type of the
// value the task produces.
type Task[O any] struct {
	info *model.TaskInfo
}

// Name returns the unique name the task was registered under.
func (t *Task[O]) Name() string {
	return t.info.Name
}

// AddRootTask registers a task without a dependency. rootFn runs once per
// pipeline run and produces the value downstream tasks consume.
func AddRootTask[O any](p *Pipeline, name string, rootFn func(ctx context.Context) (O, error)) (*Task[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}
	if rootFn == nil {
		return nil, ErrTaskFnMustBeSet
	}

	info := &model.TaskInfo{
		Type: model.RootTaskType,
		Name: name,
	}
	err := p.register(info, nil, func(ctx context.Context, _ any) (any, error) {
		return rootFn(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &Task[O]{info: info}, nil
}

// AddTask registers a task depending on input, a handle previously returned
// by a registration call on the same pipeline. taskFn receives the recorded
// output of the input task.
func AddTask[I any, O any](p *Pipeline, name string, input *Task[I], taskFn func(ctx context.Context, input I) (O, error)) (*Task[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}
	if taskFn == nil {
		return nil, ErrTaskFnMustBeSet
	}

	info := &model.TaskInfo{
		Type: model.TransformTaskType,
		Name: name,
	}
	err := p.register(info, input.info, func(ctx context.Context, in any) (any, error) {
		var typed I
		if in != nil {
			var ok bool
			typed, ok = in.(I)
			if !ok {
				return nil, errors.Wrapf(ErrResultType, "input of task %q", name)
			}
		}

		return taskFn(ctx, typed)
	})
	if err != nil {
		return nil, err
	}

	return &Task[O]{info: info}, nil
}
