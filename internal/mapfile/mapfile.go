// Package mapfile loads occupancy-grid maps for the covpath command.
//
// A map file is YAML or JSON with a name and a grid of cell codes
// (0 free, 1 obstacle, 2 start):
//
//	name: two-rooms
//	grid:
//	  - [2, 0, 0]
//	  - [0, 1, 0]
package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/covpath/grid"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("mapfile: unsupported format (must be .yaml, .yml or .json)")
	// ErrNoGrid is returned when a map file has no grid rows.
	ErrNoGrid = errors.New("mapfile: map has no grid")
)

// Map is one decoded map file.
type Map struct {
	Name string  `yaml:"name" json:"name"`
	Grid [][]int `yaml:"grid" json:"grid"`
}

// Load reads and decodes the map at path, choosing the decoder by extension.
// A missing name defaults to the file's base name without extension.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var m *Map
	switch ext {
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	case ".json":
		m, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ParseYAML decodes a YAML map document.
func ParseYAML(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mapfile: parse YAML: %w", err)
	}
	return checked(&m)
}

// ParseJSON decodes a JSON map document.
func ParseJSON(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mapfile: parse JSON: %w", err)
	}
	return checked(&m)
}

func checked(m *Map) (*Map, error) {
	if len(m.Grid) == 0 {
		return nil, ErrNoGrid
	}
	return m, nil
}

// Build validates the cell codes and returns the grid.
func (m *Map) Build() (*grid.Grid, error) {
	g, err := grid.New(m.Grid)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", m.Name, err)
	}
	return g, nil
}
