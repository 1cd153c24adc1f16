package config

import (
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// GlobalScope is the name of the scope that applies to every stage.
const GlobalScope = "global"

// Scope maps parameter names to values within one configuration scope.
type Scope map[string]cty.Value

// Configuration is the two level configuration: the global scope and one scope per data domain.
type Configuration struct {
	Global  Scope
	Domains map[string]Scope
}

// Scope returns the scope called name, GlobalScope included. It returns nil when the scope is not
// configured.
func (c Configuration) Scope(name string) Scope {
	if name == GlobalScope {
		return c.Global
	}

	return c.Domains[name]
}

// Merge returns a new scope holding global overridden by domain.
func Merge(global, domain Scope) Scope {
	out := make(Scope, len(global)+len(domain))
	for name, val := range global {
		out[name] = val
	}

	for name, val := range domain {
		out[name] = val
	}

	return out
}

// Resolve returns the parameters of a stage declaring schema, for the given domain.
// Falsy values are dropped from each scope before the merge, so an empty domain value never hides
// a global one.
func Resolve(schema Schema, cfg Configuration, domain string) Params {
	global := cfg.Global.filter(schema)
	specific := cfg.Domains[domain].filter(schema)

	return Params(Merge(global, specific))
}

func (s Scope) filter(schema Schema) Scope {
	out := make(Scope)

	for _, name := range schema {
		val, ok := s[name]
		if !ok || !truthy(val) {
			continue
		}

		out[name] = val
	}

	return out
}

// Names returns the parameter names of the scope, sorted.
func (s Scope) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func truthy(val cty.Value) bool {
	if val.IsNull() || !val.IsKnown() {
		return false
	}

	ty := val.Type()

	switch {
	case ty == cty.String:
		return val.AsString() != ""
	case ty == cty.Number:
		return val.AsBigFloat().Sign() != 0
	case ty == cty.Bool:
		return val.True()
	case ty.IsCollectionType() || ty.IsTupleType():
		return val.LengthInt() > 0
	case ty.IsObjectType():
		return len(ty.AttributeTypes()) > 0
	}

	return true
}
