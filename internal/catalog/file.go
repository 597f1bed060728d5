package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/oud-emporium/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog import.
type File struct {
	Products []model.Product `yaml:"products"`
}

// LoadFile reads and validates a YAML catalog file.
func LoadFile(path string) ([]model.Product, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses a YAML catalog document and validates it as a whole.
func Decode(r io.Reader) ([]model.Product, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if _, err := New(file.Products); err != nil {
		return nil, err
	}

	return file.Products, nil
}
