package pipeline_test

import (
	"sync"
	"time"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

// recordingOption captures every hook invocation for assertions.
type recordingOption struct {
	mu        sync.Mutex
	created   bool
	prepared  [][2]string
	done      []string
	finished  int
	newErr    error
	prepErr   error
	doneErr   error
	finishErr error
}

func (r *recordingOption) New() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = true

	return r.newErr
}

func (r *recordingOption) PrepareTask(parent, task *model.TaskInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prepared = append(r.prepared, [2]string{parent.Name, task.Name})

	return r.prepErr
}

func (r *recordingOption) OnTaskDone(task *model.TaskInfo, elapsed time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = append(r.done, task.Name)

	return r.doneErr
}

func (r *recordingOption) Finish() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++

	return r.finishErr
}

var _ model.PipelineOption = (*recordingOption)(nil)
