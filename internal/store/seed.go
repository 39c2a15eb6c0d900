package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"likes-cli/internal/categories"

	"gopkg.in/yaml.v3"
)

// seedDoc is the mapping form of a seed file:
//
//	categories:
//	  - Юмор
//	  - Еда
type seedDoc struct {
	Categories []string `yaml:"categories"`
}

// ParseSeed decodes category titles from YAML (JSON is accepted as a YAML subset).
// Both a bare sequence and a {categories: [...]} mapping are supported.
func ParseSeed(b []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: seed file is empty", categories.ErrInvalidInput)
	}

	var titles []string
	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		if err := node.Content[0].Decode(&titles); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc seedDoc
		if err := node.Content[0].Decode(&doc); err != nil {
			return nil, err
		}
		titles = doc.Categories
	default:
		return nil, fmt.Errorf("%w: seed file must be a list or a {categories: [...]} mapping", categories.ErrInvalidInput)
	}
	return titles, nil
}

// LoadSeedFile reads titles from path. Order and exact strings are preserved.
func LoadSeedFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	titles, err := ParseSeed(b)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return titles, nil
}

// ResolveSeedTitles picks the category titles for a session:
// 1) explicit path (flag), 2) config seedFile, 3) built-in defaults.
func ResolveSeedTitles(explicit string, cfg *GlobalConfig) ([]string, error) {
	path := strings.TrimSpace(explicit)
	if path == "" && cfg != nil {
		path = strings.TrimSpace(cfg.SeedFile)
		if path != "" && !filepath.IsAbs(path) {
			dir, err := ConfigDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, path)
		}
	}
	if path == "" {
		return categories.DefaultTitles(), nil
	}
	return LoadSeedFile(path)
}
