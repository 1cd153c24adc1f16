package config

import (
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// File is a loaded pipeline configuration file.
type File struct {
	Switches      SwitchSet
	Configuration Configuration
}

// fileRoot is used to decode the top-level blocks of a configuration file.
type fileRoot struct {
	Switches *bodyBlock    `hcl:"switches,block"`
	Global   *bodyBlock    `hcl:"global,block"`
	Scopes   []*scopeBlock `hcl:"scope,block"`
}

type bodyBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type scopeBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// LoadFile reads and parses the HCL configuration file at path.
func LoadFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read configuration file %s", path)
	}

	return Parse(src, path)
}

// Parse parses an HCL configuration. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()

	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &model.ConfigurationError{Reason: diags.Error()}
	}

	var root fileRoot

	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, &model.ConfigurationError{Reason: diags.Error()}
	}

	if root.Switches == nil {
		return nil, model.NewConfigurationError("switches", "", "block is required")
	}

	switches, err := decodeSwitches(root.Switches.Body)
	if err != nil {
		return nil, err
	}

	cfg := Configuration{
		Global:  Scope{},
		Domains: make(map[string]Scope, len(root.Scopes)),
	}

	if root.Global != nil {
		cfg.Global, err = decodeScope(root.Global.Body)
		if err != nil {
			return nil, errors.Wrap(err, "unable to decode global scope")
		}
	}

	for _, block := range root.Scopes {
		if block.Name == GlobalScope {
			return nil, model.NewConfigurationError("scope", block.Name, "use the global block instead")
		}

		if _, ok := cfg.Domains[block.Name]; ok {
			return nil, model.NewConfigurationError("scope", block.Name, "declared more than once")
		}

		scope, err := decodeScope(block.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decode scope %s", block.Name)
		}

		cfg.Domains[block.Name] = scope
	}

	return &File{Switches: switches, Configuration: cfg}, nil
}

func decodeScope(body hcl.Body) (Scope, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, &model.ConfigurationError{Reason: diags.Error()}
	}

	scope := make(Scope, len(attrs))

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, model.NewConfigurationError(name, "", diags.Error())
		}

		scope[name] = val
	}

	return scope, nil
}

// decodeSwitches keeps the order in which the switches are written in the file.
func decodeSwitches(body hcl.Body) (SwitchSet, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, &model.ConfigurationError{Param: "switches", Reason: diags.Error()}
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	switches := make([]Switch, 0, len(ordered))

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, model.NewConfigurationError("switches", attr.Name, diags.Error())
		}

		if val.IsNull() || !val.Type().Equals(cty.Bool) {
			return nil, model.NewConfigurationError("switches", attr.Name, "must be a bool")
		}

		switches = append(switches, Switch{Kind: model.StageKind(attr.Name), Enabled: val.True()})
	}

	return NewSwitchSet(switches...)
}
