package meshblocks

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-meshgraph/pkg/logger"
	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

var ErrNameCollision = errors.New("two files would get the same name")

// Raw downloads and unpacks the meshblock geometries.
type Raw struct {
	opts RawOptions
	ws   Workspace
	deps Deps
	log  logger.Logger
}

// NewRaw creates the raw stage.
func NewRaw(ws Workspace, opts RawOptions, deps Deps) *Raw {
	return &Raw{
		opts: opts,
		ws:   ws,
		deps: deps,
		log:  deps.logger(model.StageRaw),
	}
}

// Dir returns the working directory of the stage.
func (r *Raw) Dir() string {
	return r.ws.Dir(model.StageRaw, r.opts.AggregationLevel)
}

// Run populates the working directory. It does nothing but log a warning when the directory
// already holds files.
func (r *Raw) Run(ctx context.Context) error {
	err := r.opts.Validate()
	if err != nil {
		return err
	}

	dir := r.Dir()
	log := r.log.With(zap.String("dir", dir))

	log.Info("generating raw data")

	err = r.deps.Files.MkdirAll(dir)
	if err != nil {
		return err
	}

	existing, err := r.deps.Files.List(dir)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		log.Warn("non empty directory, the raw stage only runs on empty directories", zap.Int("files", len(existing)))

		return nil
	}

	archive := filepath.Join(dir, filepath.Base(r.opts.Filename))

	log.Info("downloading meshblock data", zap.String("url", r.opts.URLData))

	err = r.deps.Downloader.Download(ctx, r.opts.URLData, archive)
	if err != nil {
		return err
	}

	log.Info("unzipping meshblock data", zap.String("archive", archive))

	err = r.deps.Extractor.Extract(archive, dir)
	if err != nil {
		return err
	}

	log.Info("renaming meshblock files")

	err = r.rename(dir)
	if err != nil {
		return err
	}

	log.Info("removing zip files")

	return r.removeArchives(dir)
}

// rename gives every extracted file the stem of the archive name, keeping the file extension.
func (r *Raw) rename(dir string) error {
	infos, err := r.deps.Files.List(dir)
	if err != nil {
		return err
	}

	target := stem(filepath.Base(r.opts.Filename))
	renames := make(map[string]string, len(infos))
	taken := make(map[string]string, len(infos))

	for _, info := range infos {
		if !info.Mode().IsRegular() || isZip(info.Name()) {
			continue
		}

		newName := target + extension(info.Name())
		if other, ok := taken[newName]; ok {
			return model.NewIOError("rename", filepath.Join(dir, info.Name()),
				errors.Wrapf(ErrNameCollision, "%s and %s both map to %s", other, info.Name(), newName))
		}

		taken[newName] = info.Name()
		renames[info.Name()] = newName
	}

	for _, info := range infos {
		newName, ok := renames[info.Name()]
		if !ok || newName == info.Name() {
			continue
		}

		err = r.deps.Files.Rename(filepath.Join(dir, info.Name()), filepath.Join(dir, newName))
		if err != nil {
			return err
		}

		r.log.Debug("renamed file", zap.String("from", info.Name()), zap.String("to", newName))
	}

	return nil
}

func (r *Raw) removeArchives(dir string) error {
	infos, err := r.deps.Files.List(dir)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if !info.Mode().IsRegular() || !isZip(info.Name()) {
			continue
		}

		err = r.deps.Files.Remove(filepath.Join(dir, info.Name()))
		if err != nil {
			return err
		}
	}

	return nil
}

func isZip(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}
