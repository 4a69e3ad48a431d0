package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is the detector-dimension lookup capability. Both the authoritative
// file-backed store and the public placeholder store implement it; which one
// is used is decided explicitly by configuration.
type Store interface {
	// Diode returns the record for a germanium diode by detector id.
	Diode(id string) (*DiodeRecord, error)

	// Setup returns the test-stand record (cryostat, holders, sources,
	// shielding) for a detector id.
	Setup(id string) (*SetupRecord, error)
}

// FileStore reads authoritative records from a metadata tree on disk with
// the layout <root>/diodes/<id>.yaml and <root>/cryostat/<id>.yaml.
type FileStore struct {
	root string
}

// NewFileStore opens a metadata tree. A missing or unreadable root is
// reported to the caller, who decides whether placeholder fallback is
// permitted.
func NewFileStore(root string) (*FileStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("metadata root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("metadata root %s is not a directory", root)
	}
	return &FileStore{root: root}, nil
}

// Diode implements Store.
func (s *FileStore) Diode(id string) (*DiodeRecord, error) {
	var rec DiodeRecord
	if err := s.read(filepath.Join("diodes", id+".yaml"), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Setup implements Store.
func (s *FileStore) Setup(id string) (*SetupRecord, error) {
	var rec SetupRecord
	if err := s.read(filepath.Join("cryostat", id+".yaml"), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *FileStore) read(rel string, out any) error {
	path := filepath.Join(s.root, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading record %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding record %s: %w", path, err)
	}
	return nil
}
