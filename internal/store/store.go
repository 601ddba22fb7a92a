// Package store owns the on-disk career data: a single JSON document with
// in-memory caching, atomic writes, a one-generation backup and restore.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/career-vault/internal/model"
)

// Store defines the career data persistence interface.
type Store interface {
	// Load returns the current store, from cache when the on-disk file
	// has not changed. A missing file yields an empty store, not an error.
	Load() (*model.CareerStore, error)

	// Save validates and atomically persists the store.
	Save(s *model.CareerStore) error

	// RestoreFromBackup copies the backup over the canonical file and
	// reloads. The only recovery path for a corrupt canonical file.
	RestoreFromBackup() (*model.CareerStore, error)
}

// Options configure a FileStore.
type Options struct {
	// Path of the canonical JSON document. The backup lives at Path+".bak"
	// and the transient write target at Path+".tmp".
	Path string

	// BackupEnabled copies the canonical file aside before every save.
	BackupEnabled bool

	// CacheEnabled keeps the last loaded store in memory, invalidated by
	// on-disk modification time.
	CacheEnabled bool

	// CacheTTL, when non-zero, additionally expires the cache by age.
	CacheTTL time.Duration

	// Validate holds the range rules applied on load and save. The Now
	// field is refreshed on every operation.
	Validate model.ValidateOptions

	// DefaultContact seeds the empty store synthesized for a missing file.
	DefaultContact model.ContactInfo

	Logger *zap.Logger
}

// FileStore implements Store over a single JSON file.
type FileStore struct {
	path          string
	backupEnabled bool
	cacheEnabled  bool
	cacheTTL      time.Duration
	validate      model.ValidateOptions
	contact       model.ContactInfo
	log           *zap.Logger
	now           func() time.Time

	mu         sync.Mutex
	cache      *model.CareerStore
	cacheMTime time.Time
	cacheAt    time.Time
}

// New creates a FileStore for the given options. The parent directory is
// created if missing.
func New(opts Options) (*FileStore, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{
		path:          opts.Path,
		backupEnabled: opts.BackupEnabled,
		cacheEnabled:  opts.CacheEnabled,
		cacheTTL:      opts.CacheTTL,
		validate:      opts.Validate,
		contact:       opts.DefaultContact,
		log:           opts.Logger,
		now:           time.Now,
	}
	if s.validate.MinYear == 0 {
		s.validate = model.DefaultValidateOptions(time.Now())
	}
	return s, nil
}

// Path returns the canonical file path.
func (s *FileStore) Path() string { return s.path }

// BackupPath returns the path of the single-generation backup.
func (s *FileStore) BackupPath() string { return s.path + ".bak" }

// HasBackup reports whether a backup file exists.
func (s *FileStore) HasBackup() bool {
	_, err := os.Stat(s.BackupPath())
	return err == nil
}

// InvalidateCache drops the cached snapshot, forcing the next Load to
// read from disk.
func (s *FileStore) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
}

func (s *FileStore) invalidateLocked() {
	s.cache = nil
	s.cacheMTime = time.Time{}
	s.cacheAt = time.Time{}
}

func (s *FileStore) validateOpts() model.ValidateOptions {
	v := s.validate
	v.Now = s.now()
	return v
}

// Load implements Store.
func (s *FileStore) Load() (*model.CareerStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *FileStore) loadLocked() (*model.CareerStore, error) {
	fi, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Info("no career data file, starting empty", zap.String("path", s.path))
		return model.NewEmptyStore(s.contact, s.now()), nil
	}
	if err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: fmt.Errorf("stat: %w", err)}
	}

	if s.cacheEnabled && s.cache != nil && fi.ModTime().Equal(s.cacheMTime) {
		if s.cacheTTL == 0 || s.now().Sub(s.cacheAt) <= s.cacheTTL {
			return s.cache, nil
		}
		// TTL expired, fall through to a fresh read.
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: fmt.Errorf("read: %w", err)}
	}

	cs, fieldPath, err := s.decode(data)
	if err != nil {
		s.log.Warn("career data failed validation on load",
			zap.String("path", s.path), zap.String("field", fieldPath), zap.Error(err))
		return nil, &CorruptStoreError{Path: s.path, FieldPath: fieldPath, Err: err}
	}

	if s.cacheEnabled {
		s.cache = cs
		s.cacheMTime = fi.ModTime()
		s.cacheAt = s.now()
	}
	return cs, nil
}

// decode parses and validates raw store bytes. Returns the failing field
// path alongside any error.
func (s *FileStore) decode(data []byte) (*model.CareerStore, string, error) {
	fieldPath, err := checkDocument(data)
	if err != nil {
		return nil, fieldPath, err
	}
	var cs model.CareerStore
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, "", fmt.Errorf("parse: %w", err)
	}
	if err := cs.Validate(s.validateOpts()); err != nil {
		var sv *model.SchemaViolation
		if errors.As(err, &sv) {
			return nil, sv.Field, err
		}
		return nil, "", err
	}
	return &cs, "", nil
}

// Save implements Store. The sequence is: validate, back up the current
// file, write a temp file, verify it round-trips, then rename over the
// canonical path so a reader never observes a half-written file.
func (s *FileStore) Save(cs *model.CareerStore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs.LastUpdated = s.now()
	if err := cs.Validate(s.validateOpts()); err != nil {
		// The caller may be handing back the cached snapshot, mutated.
		// Drop it so the next Load re-reads the last good on-disk state.
		s.invalidateLocked()
		return err
	}

	if s.backupEnabled {
		if _, err := os.Stat(s.path); err == nil {
			if err := copyFile(s.path, s.BackupPath()); err != nil {
				s.invalidateLocked()
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	data, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		s.invalidateLocked()
		return fmt.Errorf("serialize career data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.invalidateLocked()
		return fmt.Errorf("write temp file: %w", err)
	}

	// Round-trip check: the temp file must parse and validate before it
	// is allowed to replace the canonical file.
	written, err := os.ReadFile(tmp)
	if err == nil {
		_, _, err = s.decode(written)
	}
	if err != nil {
		os.Remove(tmp)
		s.invalidateLocked()
		return &WriteVerificationFailed{Path: tmp, Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		s.invalidateLocked()
		return fmt.Errorf("commit career data: %w", err)
	}

	if s.cacheEnabled {
		if fi, err := os.Stat(s.path); err == nil {
			s.cache = cs
			s.cacheMTime = fi.ModTime()
			s.cacheAt = s.now()
		} else {
			s.invalidateLocked()
		}
	}

	s.log.Info("career data saved",
		zap.String("path", s.path),
		zap.Int("jobs", len(cs.Jobs)),
		zap.Int("skills", len(cs.Skills)))
	return nil
}

// RestoreFromBackup implements Store.
func (s *FileStore) RestoreFromBackup() (*model.CareerStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bak := s.BackupPath()
	if _, err := os.Stat(bak); err != nil {
		return nil, fmt.Errorf("no backup file at %s", bak)
	}
	if err := copyFile(bak, s.path); err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}
	s.invalidateLocked()
	s.log.Info("restored career data from backup", zap.String("backup", bak))
	return s.loadLocked()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
