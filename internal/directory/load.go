package directory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solware/solware-id/internal/domain"
)

//go:embed directory.yaml
var embeddedDirectory []byte

// File is the on-disk form of a directory deployment.
type File struct {
	Default  string           `yaml:"default"`
	Profiles []domain.Profile `yaml:"profiles"`
}

// Config is a loaded directory plus its fallback slug.
type Config struct {
	Store       *Store
	DefaultSlug string
}

// Load parses a YAML directory document and builds its Store. Unknown keys
// are rejected so typos in deployment files surface at startup.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty directory document", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("parse directory: %w", err)
	}
	if len(f.Profiles) == 0 {
		return nil, fmt.Errorf("%w: directory has no profiles", domain.ErrInvalidInput)
	}

	store, err := New(f.Profiles)
	if err != nil {
		return nil, err
	}

	def := f.Default
	if def == "" {
		def = f.Profiles[0].Slug
	}
	if _, ok := store.FindBySlug(def); !ok {
		return nil, fmt.Errorf("%w: default slug %q is not in the directory", domain.ErrInvalidInput, def)
	}

	return &Config{Store: store, DefaultSlug: def}, nil
}

// LoadFile reads a directory document from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open directory file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the directory embedded in the binary.
func Default() (*Config, error) {
	return Load(bytes.NewReader(embeddedDirectory))
}
