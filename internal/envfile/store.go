package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// DefaultFilename is the name Docker Compose looks for
const DefaultFilename = ".env"

// Confirmer asks whether an existing file at path may be overwritten
type Confirmer func(path string) (bool, error)

// Store reads and writes one env file
type Store struct {
	fs       afero.Fs
	dir      string
	filename string
}

// NewStore returns a Store for dir/.env on the given file system.
// An empty dir means the current directory.
func NewStore(fsys afero.Fs, dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{fs: fsys, dir: dir, filename: DefaultFilename}
}

// WithFilename overrides the file name
func (s *Store) WithFilename(name string) *Store {
	if name != "" {
		s.filename = name
	}
	return s
}

// Path returns the target path, absolute when it can be resolved
func (s *Store) Path() string {
	p := filepath.Join(s.dir, s.filename)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Exists reports whether the file is already present
func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.Path())
}

// Write writes content to the file. An existing file is only replaced
// when confirm approves; the returned bool reports whether content was
// written.
func (s *Store) Write(content string, confirm Confirmer) (bool, error) {
	path := s.Path()

	exists, err := s.Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}

	if exists {
		if confirm == nil {
			return false, ErrNoConfirmer
		}
		ok, err := confirm(path)
		if err != nil {
			return false, fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// Read returns the raw pairs from the file
func (s *Store) Read() (map[string]string, error) {
	path := s.Path()
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return pairs, nil
}

// Load reads the file and applies defaults to missing keys
func (s *Store) Load() (Values, error) {
	pairs, err := s.Read()
	if err != nil {
		return Values{}, err
	}
	return FromMap(pairs), nil
}
