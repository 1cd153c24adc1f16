package adjacency

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/askiada/go-meshgraph/pkg/geometry"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Options configures Compute.
type Options struct {
	Strategy Strategy
	// Threshold is the maximum centroid distance of two neighbours under the Distance strategy.
	// It must be strictly positive, math.Inf(1) connects every pair.
	Threshold float64
}

// Validate checks the options before any computation.
func (o Options) Validate() error {
	switch o.Strategy {
	case Contiguity:
		return nil
	case Distance:
		if math.IsNaN(o.Threshold) || o.Threshold <= 0 {
			value := ""
			if o.Threshold != 0 {
				value = strconv.FormatFloat(o.Threshold, 'g', -1, 64)
			}

			return model.NewConfigurationError("threshold", value, "must be a positive distance, use \"inf\" for no cutoff")
		}

		return nil
	default:
		return unknownStrategy(string(o.Strategy))
	}
}

// Compute builds the weights matrix of set. Rows and columns follow the order of set.
func Compute(set *geometry.Set, opts Options) (*Matrix, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	var weights *mat.SymDense

	if set.Len() > 0 {
		switch opts.Strategy {
		case Contiguity:
			weights = queen(set)
		case Distance:
			weights = inverseDistance(set, opts.Threshold)
		}
	}

	return &Matrix{
		strategy: opts.Strategy,
		labels:   set.IDs(),
		weights:  weights,
	}, nil
}
