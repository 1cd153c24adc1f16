package adjacency

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a square spatial weights matrix labelled by unit identifiers.
type Matrix struct {
	strategy Strategy
	labels   []string
	// weights is nil for an empty set, gonum does not allow zero sized matrices.
	weights *mat.SymDense
}

// Strategy returns the strategy the matrix was computed with.
func (m *Matrix) Strategy() Strategy {
	return m.strategy
}

// Len returns the number of units.
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Labels returns the unit identifiers, in row order.
func (m *Matrix) Labels() []string {
	labels := make([]string, len(m.labels))
	copy(labels, m.labels)

	return labels
}

// At returns the weight between the units at rows i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.weights.At(i, j)
}

// Neighbours returns the rows with a non zero weight in row i.
func (m *Matrix) Neighbours(i int) []int {
	var res []int

	for j := 0; j < m.Len(); j++ {
		if m.weights.At(i, j) != 0 {
			res = append(res, j)
		}
	}

	return res
}

// Links returns the number of unordered pairs with a non zero weight.
func (m *Matrix) Links() int {
	count := 0

	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			if m.weights.At(i, j) != 0 {
				count++
			}
		}
	}

	return count
}

// WriteCSV writes the matrix as CSV. The header holds indexName followed by the labels, then
// every row starts with its label.
func (m *Matrix) WriteCSV(w io.Writer, indexName string) error {
	wrt := csv.NewWriter(w)

	header := make([]string, 0, m.Len()+1)
	header = append(header, indexName)
	header = append(header, m.labels...)

	err := wrt.Write(header)
	if err != nil {
		return errors.Wrap(err, "unable to write header")
	}

	row := make([]string, m.Len()+1)

	for i, label := range m.labels {
		row[0] = label

		for j := 0; j < m.Len(); j++ {
			row[j+1] = strconv.FormatFloat(m.weights.At(i, j), 'g', -1, 64)
		}

		err = wrt.Write(row)
		if err != nil {
			return errors.Wrapf(err, "unable to write row %s", label)
		}
	}

	wrt.Flush()

	err = wrt.Error()
	if err != nil {
		return errors.Wrap(err, "unable to flush csv")
	}

	return nil
}
