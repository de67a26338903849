package pipeline

import (
	"context"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/mypham14/hacker-news-pipeline/internal/store"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

// Pipeline owns a set of registered tasks and their dependency edges.
type Pipeline struct {
	opts   []model.PipelineOption
	store  store.CustomStore[string, string]
	graph  graph.Graph[string, string]
	tasks  []*taskState
	byName map[string]*taskState
}

// taskState is the untyped registration record behind a Task handle.
type taskState struct {
	info *model.TaskInfo
	// dep is the descriptor of the task whose output this task consumes,
	// nil for root tasks.
	dep *model.TaskInfo
	run func(ctx context.Context, input any) (any, error)
}

// New creates a new pipeline.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	st := store.NewMemoryStore[string, string]()
	pipe := &Pipeline{
		opts:   opts,
		store:  st,
		graph:  graph.NewWithStore(graph.StringHash, graph.Store[string, string](st), graph.Directed()),
		byName: make(map[string]*taskState),
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// register records a task and its optional dependency edge. On failure
// nothing is registered.
func (p *Pipeline) register(info *model.TaskInfo, dep *model.TaskInfo, runFn func(ctx context.Context, input any) (any, error)) error {
	parent := model.StartTask
	if dep != nil {
		depState, ok := p.byName[dep.Name]
		if !ok || depState.info != dep {
			return errors.Wrapf(ErrUnknownDependency, "task %q depends on %q", info.Name, dep.Name)
		}
		parent = dep
	}

	info.Index = len(p.tasks)

	err := p.graph.AddVertex(info.Name)
	if err != nil {
		if errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrapf(ErrTaskAlreadyExists, "task %q", info.Name)
		}

		return errors.Wrapf(err, "unable to add task %q", info.Name)
	}

	if dep != nil {
		// Unreachable through handles, which only point at previously
		// registered tasks. Kept as an engine guard for graphs built
		// with more than one dependency per task.
		cycle, err := p.store.CreatesCycle(dep.Name, info.Name)
		if err == nil && cycle {
			err = ErrDependencyCycle
		}
		if err == nil {
			err = p.graph.AddEdge(dep.Name, info.Name)
		}
		if err != nil {
			_ = p.graph.RemoveVertex(info.Name)

			return errors.Wrapf(err, "unable to link task %q to %q", info.Name, dep.Name)
		}
	}

	for _, opt := range p.opts {
		err := opt.PrepareTask(parent, info)
		if err != nil {
			if dep != nil {
				_ = p.graph.RemoveEdge(dep.Name, info.Name)
			}
			_ = p.graph.RemoveVertex(info.Name)

			return errors.Wrap(err, "unable to run prepare task function")
		}
	}

	state := &taskState{info: info, dep: dep, run: runFn}
	p.tasks = append(p.tasks, state)
	p.byName[info.Name] = state

	return nil
}

// Run executes every registered task exactly once and returns the result
// table of the run.
//
// Tasks run sequentially in a deterministic dependency-respecting order: the
// topological order of the dependency graph, ties broken by registration
// order. The first task error aborts the run and is returned wrapped with
// the task name; no result table is returned in that case.
//
// Run may be called again on the same pipeline. Each call re-executes every
// task against a fresh result table.
func (p *Pipeline) Run(ctx context.Context) (*Results, error) {
	order, err := graph.StableTopologicalSort(p.graph, func(a, b string) bool {
		return p.byName[a].info.Index < p.byName[b].info.Index
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to order tasks")
	}

	res := &Results{values: make(map[string]any, len(order))}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "task %q", name)
		}

		state := p.byName[name]

		var input any
		if state.dep != nil {
			input = res.values[state.dep.Name]
		}

		start := time.Now()
		output, err := state.run(ctx, input)
		if err != nil {
			return nil, errors.Wrapf(err, "task %q", name)
		}
		elapsed := time.Since(start)

		res.values[name] = output

		for _, opt := range p.opts {
			err := opt.OnTaskDone(state.info, elapsed)
			if err != nil {
				return nil, errors.Wrap(err, "unable to run task done function")
			}
		}
	}

	err = p.finishRun()
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

// TaskCount returns the number of registered tasks.
func (p *Pipeline) TaskCount() int {
	return len(p.tasks)
}
