package adjacency

import (
	"strings"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Strategy selects the neighbour relation used to build a matrix.
type Strategy string

const (
	// Contiguity is the queen contiguity rule.
	Contiguity Strategy = "QUEEN"
	// Distance is inverse distance weighting bounded by a threshold.
	Distance Strategy = "INVD"
)

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return []Strategy{Contiguity, Distance}
}

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	return string(s)
}

// Valid reports whether s is a supported strategy.
func (s Strategy) Valid() bool {
	return s == Contiguity || s == Distance
}

// ParseStrategy parses a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	strategy := Strategy(strings.ToUpper(strings.TrimSpace(name)))
	if !strategy.Valid() {
		return "", unknownStrategy(name)
	}

	return strategy, nil
}

func unknownStrategy(name string) *model.ConfigurationError {
	names := make([]string, 0, len(Strategies()))
	for _, s := range Strategies() {
		names = append(names, s.String())
	}

	return model.NewConfigurationError("type_adj", name, "unknown adjacency strategy, expected "+strings.Join(names, " or "))
}
