package metadata

import (
	"embed"
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed dummy/diodes/*.yaml dummy/cryostat/*.yaml
var dummyFS embed.FS

// PublicStore serves placeholder records bundled with the library. For a
// requested id it borrows the nearest reference record — the one whose name
// is the id's prefix letter followed by "99000A" — deep-copies it and
// renames it to the requested id, so the caller sees a complete record with
// stand-in dimensions.
type PublicStore struct{}

// NewPublicStore creates the placeholder store.
func NewPublicStore() *PublicStore { return &PublicStore{} }

// Diode implements Store.
func (s *PublicStore) Diode(id string) (*DiodeRecord, error) {
	if len(id) < 3 {
		return nil, fmt.Errorf("%w: detector id %q too short", ErrConfiguration, id)
	}
	var ref DiodeRecord
	if err := s.load("dummy/diodes/"+referenceID(id)+".yaml", &ref); err != nil {
		return nil, err
	}

	var rec DiodeRecord
	if err := copier.CopyWithOption(&rec, &ref, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copying placeholder record: %w", err)
	}
	rec.Name = id
	if order, err := strconv.Atoi(id[1:3]); err == nil {
		rec.Production.Order = order
	}
	rec.Production.Slice = "A"
	return &rec, nil
}

// Setup implements Store.
func (s *PublicStore) Setup(id string) (*SetupRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty detector id", ErrConfiguration)
	}
	var ref SetupRecord
	if err := s.load("dummy/cryostat/"+referenceID(id)+".yaml", &ref); err != nil {
		return nil, err
	}

	var rec SetupRecord
	if err := copier.CopyWithOption(&rec, &ref, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copying placeholder record: %w", err)
	}
	rec.Name = id
	return &rec, nil
}

func (s *PublicStore) load(path string, out any) error {
	data, err := dummyFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: no placeholder record at %s", ErrConfiguration, path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding placeholder record %s: %w", path, err)
	}
	return nil
}

func referenceID(id string) string {
	return string(id[0]) + "99000A"
}
