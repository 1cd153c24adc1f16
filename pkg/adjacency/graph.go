package adjacency

import (
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-meshgraph/internal/dot"
	"github.com/askiada/go-meshgraph/internal/store"
)

// NeighbourGraph is the undirected graph of the non zero weights of a matrix.
type NeighbourGraph struct {
	graph.Graph[string, string]
	store *store.OrderedStore[string, string]
}

// Graph builds the neighbour graph of the matrix. Vertices follow the matrix order. Under the
// Distance strategy edges are labelled with their weight. Edges are coloured from blue for the
// weakest weight to red for the strongest.
func (m *Matrix) Graph() (*NeighbourGraph, error) {
	st := store.NewOrderedStore[string, string]()
	gra := graph.NewWithStore(graph.StringHash, st)

	for _, label := range m.labels {
		err := gra.AddVertex(label)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add vertex %s", label)
		}
	}

	minWeight, maxWeight := m.weightRange()

	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			weight := m.weights.At(i, j)
			if weight == 0 {
				continue
			}

			colour, err := dot.Gradient(weight, minWeight, maxWeight)
			if err != nil {
				return nil, err
			}

			options := []func(*graph.EdgeProperties){graph.EdgeAttribute("color", colour)}
			if m.strategy == Distance {
				options = append(options, graph.EdgeAttribute("label", strconv.FormatFloat(weight, 'g', 4, 64)))
			}

			err = gra.AddEdge(m.labels[i], m.labels[j], options...)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to add edge from %s to %s", m.labels[i], m.labels[j])
			}
		}
	}

	return &NeighbourGraph{Graph: gra, store: st}, nil
}

// WriteDOT renders the graph in the DOT language.
func (g *NeighbourGraph) WriteDOT(w io.Writer) error {
	order, err := g.store.ListVertices()
	if err != nil {
		return errors.Wrap(err, "unable to list vertices")
	}

	err = dot.Write(w, g.Graph, order, dot.GraphAttribute("overlap", "false"))
	if err != nil {
		return errors.Wrap(err, "unable to render neighbour graph")
	}

	return nil
}

func (m *Matrix) weightRange() (float64, float64) {
	minWeight, maxWeight := 0.0, 0.0

	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			weight := m.weights.At(i, j)
			if weight == 0 {
				continue
			}

			if minWeight == 0 || weight < minWeight {
				minWeight = weight
			}

			if weight > maxWeight {
				maxWeight = weight
			}
		}
	}

	return minWeight, maxWeight
}
