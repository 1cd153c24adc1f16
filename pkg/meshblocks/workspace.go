package meshblocks

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Workspace locates the working directories of a domain under the data directory.
type Workspace struct {
	DataDir string
	Domain  model.Domain
}

// Dir returns <data>/<state>/<domain>/<aggregationLevel>.
func (w Workspace) Dir(state model.StageKind, aggregationLevel string) string {
	return filepath.Join(w.DataDir, state.String(), w.Domain.String(), aggregationLevel)
}

// Deps holds the collaborators of the stages.
type Deps struct {
	Files      Files
	Downloader Downloader
	Extractor  Extractor
	Logger     logger.Logger
}

func (d Deps) logger(kind model.StageKind) logger.Logger {
	if d.Logger == nil {
		return logger.NewNoopLogger()
	}

	return d.Logger.With(zap.String("stage", kind.String()))
}
