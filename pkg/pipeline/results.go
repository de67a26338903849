package pipeline

import "github.com/pkg/errors"

// Results is the result table of one pipeline run: a mapping from task
// identity to the value the task produced. Entries are written once per task
// and never mutated afterwards.
type Results struct {
	values map[string]any
}

// Len returns the number of task results in the table.
func (r *Results) Len() int {
	return len(r.values)
}

// Has reports whether the table contains a result for the given task name.
func (r *Results) Has(name string) bool {
	_, ok := r.values[name]

	return ok
}

// Value returns the recorded output of the given task.
func Value[O any](res *Results, task *Task[O]) (O, error) {
	var out O

	if res == nil {
		return out, ErrResultsMustBeSet
	}
	if task == nil {
		return out, ErrTaskMustBeSet
	}

	value, ok := res.values[task.info.Name]
	if !ok {
		return out, errors.Wrapf(ErrResultNotFound, "task %q", task.info.Name)
	}
	if value == nil {
		return out, nil
	}

	typed, ok := value.(O)
	if !ok {
		return out, errors.Wrapf(ErrResultType, "task %q", task.info.Name)
	}

	return typed, nil
}
