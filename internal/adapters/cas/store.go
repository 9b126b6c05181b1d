// Package cas persists finalized usage reports, addressed by share key and
// deduplicated by their content fingerprint.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.UsageReportStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.UsageReport
}

// NewStore creates a new UsageReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.UsageReport),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// save writes the cache to disk. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	tmpName := tmp.Name()

	if err := writeTemp(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmpName)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

func writeTemp(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(domain.FilePerm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Get retrieves the last report for a share key.
func (s *Store) Get(shareKey string) (*domain.UsageReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.cache[shareKey]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// Put stores the reports of one pass. The file is rewritten only when at least
// one report's fingerprint differs from the stored one.
func (s *Store) Put(reports ...domain.UsageReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, report := range reports {
		prev, ok := s.cache[report.ShareKey]
		if ok && prev.Fingerprint == report.Fingerprint && report.Fingerprint != "" {
			continue
		}
		s.cache[report.ShareKey] = report
		changed = true
	}

	if !changed {
		return nil
	}
	return s.save()
}
