package models

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// catalogFile is the YAML structure of the building catalog
type catalogFile struct {
	Buildings []BuildingSpec `yaml:"buildings"`
}

// DefaultCatalog returns the built-in building catalog in roster order
func DefaultCatalog() ([]BuildingSpec, error) {
	return DecodeCatalog(bytes.NewReader(catalogYAML))
}

// DecodeCatalog parses and validates a YAML catalog. Ids must be 0..n-1 in
// order so that a building's id is its roster index.
func DecodeCatalog(r io.Reader) ([]BuildingSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw catalogFile
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(raw.Buildings) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidSpec)
	}

	seen := make(map[string]bool, len(raw.Buildings))
	for i, spec := range raw.Buildings {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if spec.ID != i {
			return nil, fmt.Errorf("%w: %s has id %d at position %d", ErrInvalidSpec, spec.Name, spec.ID, i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: duplicate building %s", ErrInvalidSpec, spec.Name)
		}
		seen[spec.Name] = true
	}

	return raw.Buildings, nil
}
