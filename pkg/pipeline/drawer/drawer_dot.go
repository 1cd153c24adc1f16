package drawer

import (
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/askiada/go-meshgraph/internal/dot"
	"github.com/askiada/go-meshgraph/internal/store"
	"github.com/askiada/go-meshgraph/pkg/pipeline/measure"
)

// DOTDrawer writes the pipeline graph in the Graphviz DOT language.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	store    *store.OrderedStore[string, string]
	fs       afero.Fs
	fileName string
}

// NewDOTDrawer creates a drawer writing fileName on fs.
func NewDOTDrawer(fs afero.Fs, fileName string) *DOTDrawer {
	st := store.NewOrderedStore[string, string]()

	return &DOTDrawer{
		fileName: fileName,
		fs:       fs,
		store:    st,
		graph:    graph.NewWithStore(graph.StringHash, st, graph.Directed()),
	}
}

// AddStage adds a stage to the pipeline graph.
func (d *DOTDrawer) AddStage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and child stages.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := d.fs.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}

	order, err := d.store.ListVertices()
	if err != nil {
		file.Close()

		return errors.Wrap(err, "unable to list stages")
	}

	err = dot.Write(file, d.graph, order, dot.GraphAttribute("rankdir", "LR"))
	if err != nil {
		file.Close()

		return errors.Wrapf(err, "unable to create dot file %s", d.fileName)
	}

	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "unable to close file %s", d.fileName)
	}

	return nil
}

// AddMeasure labels every stage with its duration and colours it from blue for the fastest stage
// to red for the slowest. The end stage is labelled with the total duration of the pipeline.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	var minValue, maxValue time.Duration

	for _, mt := range msr.AllMetrics() {
		avg := mt.AVGDuration()
		if avg == 0 {
			continue
		}

		if minValue == 0 || avg < minValue {
			minValue = avg
		}

		if avg > maxValue {
			maxValue = avg
		}
	}

	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)
		if _, _, err := d.store.Vertex(name); err != nil {
			continue
		}

		options := make([]func(*graph.VertexProperties), 0, 2)

		if avg := mt.AVGDuration(); avg != 0 {
			colour, err := dot.Gradient(float64(avg), float64(minValue), float64(maxValue))
			if err != nil {
				return err
			}

			options = append(options,
				graph.VertexAttribute(dot.XLabel, avg.String()),
				graph.VertexAttribute("color", colour),
			)
		} else if total := mt.GetTotalDuration(); total > 0 {
			options = append(options, graph.VertexAttribute(dot.XLabel, "total: "+total.String()))
		}

		err := d.store.UpdateVertex(name, options...)
		if err != nil {
			return errors.Wrap(err, "unable to update vertex")
		}
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
