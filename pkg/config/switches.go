package config

import (
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Switch enables or disables one stage kind.
type Switch struct {
	Kind    model.StageKind
	Enabled bool
}

// SwitchSet is the ordered list of stage switches. Its order is the execution order of the
// pipeline.
type SwitchSet []Switch

// NewSwitchSet creates a validated switch set.
func NewSwitchSet(switches ...Switch) (SwitchSet, error) {
	set := SwitchSet(switches)

	err := set.Validate()
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks every kind is known and declared once.
func (s SwitchSet) Validate() error {
	seen := make(map[model.StageKind]struct{}, len(s))

	for _, sw := range s {
		switch sw.Kind {
		case model.StageRaw, model.StageProcessed:
		default:
			return model.NewConfigurationError("switches", sw.Kind.String(), "unknown stage kind")
		}

		if _, ok := seen[sw.Kind]; ok {
			return model.NewConfigurationError("switches", sw.Kind.String(), "declared more than once")
		}

		seen[sw.Kind] = struct{}{}
	}

	return nil
}

// Enabled returns the enabled stage kinds in declaration order.
func (s SwitchSet) Enabled() []model.StageKind {
	kinds := make([]model.StageKind, 0, len(s))

	for _, sw := range s {
		if sw.Enabled {
			kinds = append(kinds, sw.Kind)
		}
	}

	return kinds
}
