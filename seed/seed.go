// Package seed builds the startup catalog from configuration.
//
// Items come from, in order of preference: a YAML catalog file, items listed
// inline in the configuration, or the built-in example catalog. A catalog file
// looks like:
//
//	items:
//	  - name: Book 1
//	    category: Music
//	    price: 201
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/bookstall"
)

// Config holds configuration for the startup catalog.
type Config struct {
	Items []bookstall.Item `mapstructure:"items"`
	File  string           `mapstructure:"file"`
}

// File is the on-disk layout of a catalog file.
type File struct {
	Items []bookstall.Item `yaml:"items"`
}

// DefaultItems returns the built-in example catalog.
func DefaultItems() []bookstall.Item {
	return []bookstall.Item{
		{Name: "Book 1", Category: "Music", Price: 201},
		{Name: "Book 2", Category: "StandUp", Price: 200},
		{Name: "Book 3", Category: "Dance", Price: 222},
		{Name: "Book 4", Category: "Music", Price: 300},
		{Name: "Book 5", Category: "Music", Price: 400},
	}
}

// LoadFile reads catalog items from a YAML file.
func LoadFile(path string) ([]bookstall.Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted config file
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return f.Items, nil
}

// Load builds the catalog described by cfg. Every item is validated and all
// invalid items are reported together.
func Load(cfg Config) (*bookstall.Catalog, error) {
	items, err := source(cfg)
	if err != nil {
		return nil, err
	}

	var errs []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("load catalog: %w", errors.Join(errs...))
	}

	return bookstall.NewCatalog(items...), nil
}

func source(cfg Config) ([]bookstall.Item, error) {
	switch {
	case cfg.File != "":
		return LoadFile(cfg.File)
	case len(cfg.Items) > 0:
		return cfg.Items, nil
	default:
		return DefaultItems(), nil
	}
}

// Encode writes items in the catalog file layout.
func Encode(items []bookstall.Item) ([]byte, error) {
	data, err := yaml.Marshal(File{Items: items})
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
