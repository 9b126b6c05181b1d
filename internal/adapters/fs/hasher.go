package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of optimizer inputs.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher. Files matching ignores are left out of
// directory digests.
func NewHasher(walker *Walker, ignores ...string) *Hasher {
	return &Hasher{walker: walker, ignores: ignores}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInputHash computes one digest over the given files and directories.
// The order of paths does not matter. A missing path contributes a marker
// instead of failing, so removing an input changes the digest.
func (h *Hasher) ComputeInputHash(paths ...string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	hasher := xxhash.New()
	for _, path := range sorted {
		if path == "" {
			continue
		}
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})

		if err := h.hashPath(path, hasher); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashPath(path string, hasher *xxhash.Digest) error {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		_, _ = hasher.WriteString("<missing>")
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat input"), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(path, hasher)
	}

	for file := range h.walker.WalkFiles(path, h.ignores) {
		rel, err := filepath.Rel(path, file)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve input path"), "path", file)
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})
		if err := h.hashFile(file, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, hasher *xxhash.Digest) error {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(hasher, "%016x", sum)
	return nil
}
