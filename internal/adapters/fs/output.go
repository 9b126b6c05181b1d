package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.BuildOutput  = (*Output)(nil)
	_ ports.OutputOpener = (*Opener)(nil)
)

// Output exposes a build output directory as an asset store and a sink for
// generated runtime modules.
type Output struct {
	dir string
	mu  sync.Mutex
}

// NewOutput creates an Output rooted at dir.
func NewOutput(dir string) *Output {
	return &Output{dir: filepath.Clean(dir)}
}

// Dir returns the output directory.
func (o *Output) Dir() string {
	return o.dir
}

// Has reports whether the asset exists as a regular file in the output directory.
func (o *Output) Has(name string) bool {
	path, ok := o.resolve(name)
	if !ok {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Update replaces the content of an existing asset with the result of fn.
// The file is left untouched when fn returns identical content.
func (o *Output) Update(name string, fn func(content []byte) ([]byte, error)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	path, ok := o.resolve(name)
	if !ok {
		return zerr.With(domain.ErrAssetNotFound, "asset", name)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is confined to the output directory
	if errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(domain.ErrAssetNotFound, "asset", name)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "asset", name)
	}

	updated, err := fn(content)
	if err != nil {
		return err
	}
	if bytes.Equal(content, updated) {
		return nil
	}

	return o.write(name, path, updated)
}

// AddRuntimeModule writes module to <chunk>/<module name>.js below the output directory.
func (o *Output) AddRuntimeModule(chunk domain.ChunkID, module *domain.RuntimeModule) error {
	if module == nil {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	name := filepath.Join(string(chunk), filepath.FromSlash(module.Name)+".js")
	path, ok := o.resolve(name)
	if !ok {
		return zerr.With(domain.ErrAssetWriteFailed, "asset", name)
	}

	return o.write(name, path, []byte(module.Source))
}

func (o *Output) write(name, path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAssetWriteFailed.Error()), "asset", name)
	}
	//nolint:gosec // path is confined to the output directory
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAssetWriteFailed.Error()), "asset", name)
	}
	return nil
}

// resolve maps an asset name to a path, rejecting names that escape the output directory.
func (o *Output) resolve(name string) (string, bool) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", false
	}
	return filepath.Join(o.dir, local), true
}

// Opener implements ports.OutputOpener for directories on disk.
type Opener struct{}

// Open returns the build output rooted at dir. The directory must exist.
func (Opener) Open(dir string) (ports.BuildOutput, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrAssetReadFailed, "path", dir)
	}
	return NewOutput(dir), nil
}
