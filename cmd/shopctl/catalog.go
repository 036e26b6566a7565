package main

import (
	"io"
	"strings"

	"shopbot/internal/domain/entity"
	"shopbot/internal/errors"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

type catalogEntry struct {
	Name        string `yaml:"name"`
	Price       int64  `yaml:"price"`
	Description string `yaml:"description"`
	Instruction string `yaml:"instruction"`
	Available   *bool  `yaml:"available"`
}

// loadCatalog decodes a catalog file. Products default to available.
func loadCatalog(r io.Reader) ([]*entity.Product, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}

		return nil, errors.Wrap(err, "failed to decode catalog")
	}

	seen := make(map[string]struct{}, len(file.Products))
	products := make([]*entity.Product, 0, len(file.Products))
	for i, entry := range file.Products {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errors.Errorf("product %d: name is required", i+1)
		}
		if entry.Price < 0 {
			return nil, errors.Errorf("product %q: price must not be negative", name)
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, errors.Errorf("product %q is listed twice", name)
		}
		seen[key] = struct{}{}

		available := true
		if entry.Available != nil {
			available = *entry.Available
		}
		products = append(products, &entity.Product{
			Name:        name,
			Price:       entry.Price,
			Description: strings.TrimSpace(entry.Description),
			Instruction: strings.TrimSpace(entry.Instruction),
			Available:   available,
		})
	}

	return products, nil
}
