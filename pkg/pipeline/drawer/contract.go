package drawer

import (
	"time"

	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing a task graph.
type Drawer interface {
	// AddTask adds a task vertex to the graph.
	AddTask(name string) error
	// AddLink adds a link between a parent and a child task.
	AddLink(parentName, childName string) error
	// LinkLeaves links every task without outgoing links to the given
	// terminal vertex.
	LinkLeaves(to string) error
	// SetTotalTime labels the given vertex with the time elapsed since
	// startTime.
	SetTotalTime(name string, startTime time.Time) error
	// AddMeasure labels and colours the task vertices from the measured
	// run durations.
	AddMeasure(msr measure.Measure) error
	// Draw writes the graph to its output file.
	Draw() error
}
