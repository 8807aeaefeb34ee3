package facts

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"skinatlas/pkg/platform/sentinel"
)

//go:embed data/facts.yaml
var embeddedDataset []byte

// Source yields fact entries in their authoritative order.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// Load reads every entry from src and builds the store.
func Load(ctx context.Context, src Source) (*Store, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("load facts: %w", ErrEmptyDataset)
	}
	return New(entries), nil
}

type dataset struct {
	Countries []Entry `yaml:"countries"`
}

// ParseYAML decodes the dataset document format. Duplicate countries are
// allowed because the document is a sequence, not a mapping.
func ParseYAML(data []byte) ([]Entry, error) {
	var doc dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w: %w", ErrMalformedDataset, err)
	}
	for i, e := range doc.Countries {
		if e.Country == "" {
			return nil, fmt.Errorf("decode dataset: %w: entry %d has no country", ErrMalformedDataset, i)
		}
	}
	return doc.Countries, nil
}

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]Entry, error) {
	return ParseYAML(embeddedDataset)
}

// FileSource reads a dataset document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read dataset %s: %w: %w", s.Path, sentinel.ErrNotFound, err)
		}
		return nil, fmt.Errorf("read dataset %s: %w", s.Path, err)
	}
	return ParseYAML(data)
}
