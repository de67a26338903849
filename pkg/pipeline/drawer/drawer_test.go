package drawer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/drawer"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/measure"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/model"
)

func TestSVGDrawerDraw(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "graph.dot")
	drw := drawer.NewSVGDrawer(fileName)

	require.NoError(t, drw.AddTask("first task"))
	require.NoError(t, drw.AddTask("second task"))
	require.NoError(t, drw.AddLink("first task", "second task"))
	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	assert.Contains(t, string(content), "strict digraph")
	assert.Contains(t, string(content), `"first task" -> "second task"`)
}

func TestSVGDrawerDuplicateTask(t *testing.T) {
	t.Parallel()

	drw := drawer.NewSVGDrawer(filepath.Join(t.TempDir(), "graph.dot"))

	require.NoError(t, drw.AddTask("first task"))
	assert.Error(t, drw.AddTask("first task"))
}

func TestSVGDrawerLinkLeaves(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "graph.dot")
	drw := drawer.NewSVGDrawer(fileName)

	require.NoError(t, drw.AddTask("end"))
	require.NoError(t, drw.AddTask("first task"))
	require.NoError(t, drw.AddTask("second task"))
	require.NoError(t, drw.AddLink("first task", "second task"))
	require.NoError(t, drw.LinkLeaves("end"))
	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"second task" -> "end"`)
	assert.NotContains(t, string(content), `"first task" -> "end"`)
}

func TestSVGDrawerAddMeasure(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "graph.dot")
	drw := drawer.NewSVGDrawer(fileName)

	require.NoError(t, drw.AddTask("fast task"))
	require.NoError(t, drw.AddTask("slow task"))
	require.NoError(t, drw.AddLink("fast task", "slow task"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("fast task").AddDuration(time.Millisecond)
	msr.AddMetric("slow task").AddDuration(time.Second)

	require.NoError(t, drw.AddMeasure(msr))
	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	assert.Contains(t, string(content), "fillcolor")
	assert.Contains(t, string(content), "xlabel")
	// the slowest task is coloured pure red on the blue to red scale
	assert.Contains(t, strings.ToLower(string(content)), "#f00000")
}

func TestPipelineDrawerOption(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "graph.dot")
	drw := drawer.NewSVGDrawer(fileName)
	opt := drawer.PipelineDrawer(drw, nil)

	require.NoError(t, opt.New())

	root := &model.TaskInfo{Type: model.RootTaskType, Name: "root task"}
	next := &model.TaskInfo{Type: model.TransformTaskType, Name: "next task"}
	require.NoError(t, opt.PrepareTask(model.StartTask, root))
	require.NoError(t, opt.PrepareTask(root, next))
	require.NoError(t, opt.OnTaskDone(next, time.Second))
	require.NoError(t, opt.Finish())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"start" -> "root task"`)
	assert.Contains(t, string(content), `"root task" -> "next task"`)
	assert.Contains(t, string(content), `"next task" -> "end"`)
}
