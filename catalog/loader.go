package catalog

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/smarty/hpmpack/contracts"
)

type entry struct {
	Path     string                    `yaml:"path"`
	Manifest contracts.PackageManifest `yaml:"manifest"`
}

// Loader reads a catalog file: a YAML (or JSON) list of path/manifest pairs.
type Loader struct {
	storage contracts.FileReader
}

func NewLoader(storage contracts.FileReader) *Loader {
	return &Loader{storage: storage}
}

func (this *Loader) Load(path string) ([]contracts.Document, error) {
	raw, err := this.storage.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (documents []contracts.Document, err error) {
	var entries []entry
	err = yaml.UnmarshalWithOptions(raw, &entries, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCatalog, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, item := range entries {
		if item.Path == "" {
			return nil, fmt.Errorf("%w (item %d)", ErrBlankCatalogPath, i)
		}
		if item.Manifest.Drivers == nil {
			item.Manifest.Drivers = []contracts.Driver{}
		}
		documents = append(documents, contracts.Document{Path: item.Path, Record: item.Manifest})
	}
	return documents, nil
}

var (
	ErrMalformedCatalog = errors.New("catalog file could not be parsed")
	ErrEmptyCatalog     = errors.New("catalog file lists no manifests")
	ErrBlankCatalogPath = errors.New("catalog path should not be blank")
)
