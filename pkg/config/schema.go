package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Schema enumerates the option names a stage type recognises.
type Schema []string

// Has reports whether name is part of the schema.
func (s Schema) Has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}

	return false
}

// Params holds the resolved parameters of one stage.
type Params Scope

// Names returns the resolved parameter names, sorted.
func (p Params) Names() []string {
	return Scope(p).Names()
}

// String decodes the parameter name into dst. dst is left untouched when the parameter is not set.
func (p Params) String(name string, dst *string) error {
	val, ok := p[name]
	if !ok || val.IsNull() {
		return nil
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return model.NewConfigurationError(name, "", "must be a string")
	}

	return decode(name, val, dst)
}

// Bool decodes the parameter name into dst. dst is left untouched when the parameter is not set.
func (p Params) Bool(name string, dst *bool) error {
	val, ok := p[name]
	if !ok || val.IsNull() {
		return nil
	}

	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return model.NewConfigurationError(name, "", "must be a bool")
	}

	return decode(name, val, dst)
}

// Float decodes the parameter name into dst. Strings are parsed as numbers so that "inf" can be
// used for an unbounded value. dst is left untouched when the parameter is not set.
func (p Params) Float(name string, dst *float64) error {
	val, ok := p[name]
	if !ok || val.IsNull() {
		return nil
	}

	switch val.Type() {
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		*dst = f

		return nil
	case cty.String:
		raw := strings.TrimSpace(val.AsString())

		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return model.NewConfigurationError(name, raw, "must be a number")
		}

		*dst = f

		return nil
	default:
		return model.NewConfigurationError(name, "", "must be a number")
	}
}

func decode(name string, val cty.Value, dst interface{}) error {
	err := gocty.FromCtyValue(val, dst)
	if err != nil {
		return errors.Wrap(model.NewConfigurationError(name, "", err.Error()), "unable to decode parameter")
	}

	return nil
}
