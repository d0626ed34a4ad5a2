package assets

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"station_lookup_backend/platform/apperr"
)

// FSStore reads assets from an fs.FS rooted at the asset directory.
type FSStore struct {
	fsys fs.FS
}

// NewDirStore creates a store over a local directory.
func NewDirStore(dir string) *FSStore {
	return &FSStore{fsys: os.DirFS(dir)}
}

// NewFSStore creates a store over an arbitrary file system (embed.FS, fstest.MapFS).
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Read returns the full contents of the named asset.
func (s *FSStore) Read(ctx context.Context, name string) (string, error) {
	const op = "assets.FSStore.Read"
	if err := checkName(op, name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(op, name)
		}
		return "", apperr.Wrap(apperr.KindInternal, "failed to read asset", err).WithOp(op)
	}
	return string(data), nil
}
