package agent

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const fileMode = 0600

// Store reads and writes agent descriptor files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a store over the given catalog directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("catalog directory required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "error accessing catalog directory: %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("not a directory: %s", dir)
	}
	return &Store{dir: dir}, nil
}

// List returns the descriptor file paths in the catalog, sorted by name.
func (s *Store) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "error listing catalog directory: %s", s.dir)
	}
	sort.Strings(files)
	log.Debugf("found %d descriptor files in %s", len(files), s.dir)
	return files, nil
}

// Load reads a single descriptor.
func (s *Store) Load(path string) (Agent, error) {
	return Load(path)
}

// Load reads a single descriptor file.
func Load(path string) (Agent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading descriptor: %s", path)
	}
	var a Agent
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, errors.Wrapf(err, "error parsing descriptor: %s", path)
	}
	return a, nil
}

// Save writes a descriptor back, 2-space indented with a trailing
// newline and non-ASCII text left unescaped.
func (s *Store) Save(path string, a Agent) error {
	if a == nil {
		return errors.New("agent required")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return errors.Wrapf(err, "error encoding descriptor: %s", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), fileMode); err != nil {
		return errors.Wrapf(err, "error writing descriptor: %s", path)
	}
	return nil
}
