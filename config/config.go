// Package config loads a map description (grid rows plus hierarchy
// parameters) from YAML and turns it into a grid and hierarchical map.
//
// Example document:
//
//	cluster_size: 10
//	max_level: 2
//	tile: octile
//	unit_cost: 100
//	log_level: info
//	rows:
//	  - "....#..."
//	  - "....#..."
//
// Rows use '.' for open cells, '#' for blocked cells and '1'-'9' for open
// cells carrying a value.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hierpath/grid"
	"github.com/katalvlaran/hierpath/hpa"
)

// Sentinel errors returned by Validate.
var (
	// ErrNoRows indicates a document without grid rows.
	ErrNoRows = errors.New("config: rows are required")

	// ErrBadLogLevel indicates an unknown log_level.
	ErrBadLogLevel = errors.New("config: unknown log level")
)

// Map is the YAML form of a hierarchical map.
type Map struct {
	// ClusterSize is the side of a level-1 cluster in cells.
	ClusterSize int `yaml:"cluster_size"`

	// MaxLevel is the highest abstraction level.
	MaxLevel int `yaml:"max_level"`

	// Tile is the movement model: tile, octile or octile_unicost.
	Tile string `yaml:"tile"`

	// UnitCost is the cost of one straight step.
	UnitCost int `yaml:"unit_cost"`

	// StrictGroups fails the build on cluster groups without entrances.
	StrictGroups bool `yaml:"strict_groups"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Rows is the grid, one string per row.
	Rows []string `yaml:"rows"`
}

// Default returns the defaults shared with hpa.DefaultOptions and
// grid.DefaultOptions. Rows are left empty.
func Default() Map {
	ho := hpa.DefaultOptions()
	gopts := grid.DefaultOptions()
	return Map{
		ClusterSize: ho.ClusterSize,
		MaxLevel:    ho.MaxLevel,
		Tile:        gopts.Tile.String(),
		UnitCost:    gopts.UnitCost,
		LogLevel:    "info",
	}
}

// Parse decodes a YAML document over Default and validates it.
func Parse(data []byte) (Map, error) {
	m := Default()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Map{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// Load reads and parses the file at path.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every field without building anything.
func (m Map) Validate() error {
	if err := hpa.CheckLevels(m.ClusterSize, m.MaxLevel); err != nil {
		return err
	}
	if _, err := grid.ParseTileType(m.Tile); err != nil {
		return err
	}
	if m.UnitCost < 1 {
		return fmt.Errorf("%w: %d", grid.ErrBadUnitCost, m.UnitCost)
	}
	if _, err := m.level(); err != nil {
		return err
	}
	if len(m.Rows) == 0 {
		return ErrNoRows
	}
	return nil
}

// Grid builds the grid described by Rows, Tile and UnitCost.
func (m Map) Grid() (*grid.Grid, error) {
	tile, err := grid.ParseTileType(m.Tile)
	if err != nil {
		return nil, err
	}
	opts := grid.DefaultOptions()
	opts.Tile = tile
	opts.UnitCost = m.UnitCost
	return grid.FromStrings(m.Rows, opts)
}

// Logger returns a production zap logger at LogLevel.
func (m Map) Logger() (*zap.Logger, error) {
	level, err := m.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Options returns the hpa options described by m. Invalid values panic in
// the option constructors; call Validate first.
func (m Map) Options() []hpa.Option {
	opts := []hpa.Option{
		hpa.WithClusterSize(m.ClusterSize),
		hpa.WithMaxLevel(m.MaxLevel),
	}
	if m.StrictGroups {
		opts = append(opts, hpa.WithStrictGroups())
	}
	return opts
}

// Build validates m, builds its grid and the hierarchy over it. extra options
// are applied after the configured ones, so a caller-supplied logger or
// metrics win.
func (m Map) Build(extra ...hpa.Option) (*hpa.Map, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g, err := m.Grid()
	if err != nil {
		return nil, err
	}
	return hpa.Build(g, append(m.Options(), extra...)...)
}

func (m Map) level() (zapcore.Level, error) {
	if m.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(m.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrBadLogLevel, m.LogLevel)
	}
	return level, nil
}
