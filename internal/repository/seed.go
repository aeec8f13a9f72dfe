package repository

import (
	"fmt"
	"os"

	"github.com/guttosm/box-service/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document describing the catalog of one or more sites.
//
//	sites:
//	  - id: S1
//	    models:
//	      - model_id: CUBE-M
//	        name: Cube medium
//	        frente_mm: 600
//	        profundo_mm: 400
//	        alto_mm: 300
//	        stock: 5
//	    products:
//	      - code: P-1
//	        length_mm: 300
//	        width_mm: 200
//	        height_mm: 150
type Seed struct {
	Sites []SeedSite `yaml:"sites"`
}

// SeedSite holds the models, stock and products of one site.
type SeedSite struct {
	ID       string          `yaml:"id"`
	Models   []SeedModel     `yaml:"models"`
	Products []model.Product `yaml:"products"`
}

// SeedModel is a box model with its available unit count. Inactive models
// are stored but never returned as compatible.
type SeedModel struct {
	model.BoxModel `yaml:",inline"`
	Stock          int   `yaml:"stock"`
	Active         *bool `yaml:"active,omitempty"`
}

// IsActive reports whether the model is active; models are active unless stated otherwise.
func (m SeedModel) IsActive() bool {
	return m.Active == nil || *m.Active
}

// LoadSeed reads and parses a YAML catalog seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed parses a YAML catalog seed and checks it for duplicate ids.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) validate() error {
	sites := make(map[string]bool, len(s.Sites))
	for _, site := range s.Sites {
		if site.ID == "" {
			return fmt.Errorf("seed: site without id")
		}
		if sites[site.ID] {
			return fmt.Errorf("seed: duplicate site %q", site.ID)
		}
		sites[site.ID] = true

		models := make(map[string]bool, len(site.Models))
		for _, m := range site.Models {
			if m.ModelID == "" {
				return fmt.Errorf("seed: site %q has a model without model_id", site.ID)
			}
			if models[m.ModelID] {
				return fmt.Errorf("seed: site %q duplicate model %q", site.ID, m.ModelID)
			}
			models[m.ModelID] = true
		}
	}
	return nil
}
