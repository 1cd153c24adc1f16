package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrAlreadyBuilt = errors.New("pipeline is already built")
	ErrNotBuilt     = errors.New("pipeline must be built before running")
)
