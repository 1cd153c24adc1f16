// Package dot renders dominikbraun/graph graphs in the Graphviz DOT language.
// Unlike graph/draw, vertices and edges are written in a caller supplied order so the output is
// stable between runs.
package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// XLabel is the vertex attribute rendered as a second line under the vertex name.
const XLabel = "xlabel"

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
{{- range $k, $v := .Attributes}}
	{{$k}}="{{$v}}";
{{- end}}
{{- range $s := .Statements}}
	"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.SourceWeight}} ]{{end}};
{{- end}}
}
`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

// Option customises the rendered graph.
type Option func(*description)

// GraphAttribute sets a graph level attribute such as rankdir.
func GraphAttribute(key, value string) Option {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// Write renders gra to wrt. order lists the vertices in the order they must appear, it is
// typically the result of ListVertices on an ordered store. An undirected edge is written once,
// from the vertex that comes first in order.
func Write[K comparable, T any](wrt io.Writer, gra graph.Graph[K, T], order []K, options ...Option) error {
	desc, err := generate(gra, order, options...)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

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

func generate[K comparable, T any](gra graph.Graph[K, T], order []K, options ...Option) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	directed := gra.Traits().IsDirected
	if directed {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	if len(order) != len(adjacencyMap) {
		return desc, errors.Errorf("order lists %d vertices, graph has %d", len(order), len(adjacencyMap))
	}

	position := make(map[K]int, len(order))
	for i, vertex := range order {
		position[vertex] = i
	}

	for _, vertex := range order {
		adjacencies, ok := adjacencyMap[vertex]
		if !ok {
			return desc, errors.Wrapf(graph.ErrVertexNotFound, "vertex %v", vertex)
		}

		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		name := escape(fmt.Sprint(vertex))
		attributes := make(map[string]string, len(sourceProperties.Attributes))
		htmlAttributes := make(map[string]string)

		for k, v := range sourceProperties.Attributes {
			if k == XLabel {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, html(fmt.Sprint(vertex)), html(v))

				continue
			}

			attributes[k] = escape(v)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           name,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: attributes,
			HTMLAttributes:   htmlAttributes,
		})

		targets := make([]K, 0, len(adjacencies))
		for target := range adjacencies {
			if !directed && position[target] < position[vertex] {
				continue
			}

			targets = append(targets, target)
		}

		sort.Slice(targets, func(i, j int) bool {
			return position[targets[i]] < position[targets[j]]
		})

		for _, target := range targets {
			edge := adjacencies[target]
			edgeAttributes := make(map[string]string, len(edge.Properties.Attributes))

			for k, v := range edge.Properties.Attributes {
				edgeAttributes[k] = escape(v)
			}

			desc.Statements = append(desc.Statements, statement{
				Source:         name,
				Target:         escape(fmt.Sprint(target)),
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edgeAttributes,
			})
		}
	}

	return desc, nil
}

var (
	quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	htmlReplacer  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

func escape(s string) string {
	return quoteReplacer.Replace(s)
}

func html(s string) string {
	return htmlReplacer.Replace(s)
}
