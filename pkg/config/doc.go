// Package config resolves the construction parameters of pipeline stages.
//
// A configuration has two levels: the global scope, which applies to every stage, and one scope
// per data domain, which only applies to the stages of that domain. Each stage type declares the
// option names it recognises through an explicit Schema; Resolve looks every name up in the global
// scope, then in the domain scope, and the domain value wins when both are set.
//
// Values that are empty are treated as not configured and are dropped from the result: null,
// the empty string, the number zero, false and empty collections. A meaningful zero, such as a
// distance threshold of 0, is therefore indistinguishable from an absent value. Stages fall back
// to their own defaults for dropped names and fail later, when they actually need the value.
//
// The configuration is read from an HCL file holding a switches block, an optional global block
// and any number of scope blocks labelled with a domain name.
package config
