// Package drawer renders the task graph of a pipeline to a Graphviz file.
package drawer

import (
	"io"
	"os"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"

	"github.com/mypham14/hacker-news-pipeline/internal/store"
	"github.com/mypham14/hacker-news-pipeline/pkg/pipeline/measure"
)

// SVGDrawer writes the task graph to a DOT file suitable for rendering with
// Graphviz, e.g. `dot -Tsvg`.
type SVGDrawer struct {
	store    store.CustomStore[string, string]
	graph    graph.Graph[string, string]
	fileName string
}

// NewSVGDrawer creates a drawer writing to the given file.
func NewSVGDrawer(fileName string) *SVGDrawer {
	st := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		store:    st,
		graph:    graph.NewWithStore(graph.StringHash, graph.Store[string, string](st), graph.Directed()),
		fileName: fileName,
	}
}

// AddTask adds a task vertex to the graph.
func (d *SVGDrawer) AddTask(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between a parent and a child task.
func (d *SVGDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// LinkLeaves links every vertex without outgoing edges to the given terminal
// vertex.
func (d *SVGDrawer) LinkLeaves(to string) error {
	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		if vertex == to || len(adjacencies) > 0 {
			continue
		}
		err := d.graph.AddEdge(vertex, to)
		if err != nil {
			return errors.Wrapf(err, "unable to add edge from %s to %s", vertex, to)
		}
	}

	return nil
}

// SetTotalTime labels the given vertex with the time elapsed since startTime.
func (d *SVGDrawer) SetTotalTime(name string, startTime time.Time) error {
	if _, _, err := d.graph.VertexWithProperties(name); err != nil {
		return errors.Wrapf(err, "unable to get vertex %s", name)
	}

	d.store.UpdateVertex(name, func(props *graph.VertexProperties) {
		if props.Attributes == nil {
			props.Attributes = make(map[string]string)
		}
		props.Attributes["xlabel"] = time.Since(startTime).String()
	})

	return nil
}

const maxRGB = 240

// AddMeasure labels every measured task vertex with its average run duration
// and colours it on a blue to red scale, red being the slowest task.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var minAvg, maxAvg time.Duration
	first := true

	for _, metric := range metrics {
		avg := metric.AVGDuration()
		if first || avg < minAvg {
			minAvg = avg
		}
		if first || avg > maxAvg {
			maxAvg = avg
		}
		first = false
	}

	for name, metric := range metrics {
		if metric.Runs() == 0 {
			continue
		}

		avg := metric.AVGDuration()

		fraction := 1.0
		if maxAvg > minAvg {
			fraction = float64(avg-minAvg) / float64(maxAvg-minAvg)
		}

		red := uint8(maxRGB * fraction)
		blue := uint8(maxRGB - maxRGB*fraction)

		fillColor, err := colors.RGB(red, 0, blue)
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		hex := fillColor.ToHEX().String()
		d.store.UpdateVertex(name, func(props *graph.VertexProperties) {
			if props.Attributes == nil {
				props.Attributes = make(map[string]string)
			}
			props.Attributes["xlabel"] = avg.String()
			props.Attributes["style"] = "filled"
			props.Attributes["fillcolor"] = hex
			props.Attributes["fontcolor"] = "white"
		})
	}

	return nil
}

// Draw writes the graph to the drawer's output file.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render graph to %s", d.fileName)
	}

	return nil
}

const dotTemplate = `strict {{.GraphType}} {
{{- range $s := .Statements}}
	"{{.Source}}"{{if .Target}} {{$.EdgeOperator}} "{{.Target}}"{{end}} [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}weight={{.Weight}} ];
{{- end}}
}
`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source     string
	Target     string
	Attributes map[string]string
	Weight     int
}

func dot(gra graph.Graph[string, string], wrt io.Writer) error {
	desc, err := generateDOT(gra)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT(gra graph.Graph[string, string]) (description, error) {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrapf(err, "unable to get vertex %s", vertex)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:     vertex,
			Attributes: sourceProperties.Attributes,
			Weight:     sourceProperties.Weight,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:     vertex,
				Target:     adjacency,
				Attributes: edge.Properties.Attributes,
				Weight:     edge.Properties.Weight,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
