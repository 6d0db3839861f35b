package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hierpath/config"
	"github.com/katalvlaran/hierpath/grid"
	"github.com/katalvlaran/hierpath/hpa"
)

const doc = `
cluster_size: 2
max_level: 2
tile: octile
unit_cost: 10
log_level: debug
rows:
  - "...."
  - ".#.."
  - "...."
  - "...."
`

func TestParse(t *testing.T) {
	m, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	want := config.Map{
		ClusterSize: 2,
		MaxLevel:    2,
		Tile:        "octile",
		UnitCost:    10,
		LogLevel:    "debug",
		Rows:        []string{"....", ".#..", "....", "...."},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Defaults(t *testing.T) {
	m, err := config.Parse([]byte("rows: [\"..\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, m.ClusterSize)
	assert.Equal(t, 2, m.MaxLevel)
	assert.Equal(t, "tile", m.Tile)
	assert.Equal(t, 100, m.UnitCost)
	assert.Equal(t, "info", m.LogLevel)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"ClusterSize", "cluster_size: 0\nrows: [\"..\"]", hpa.ErrBadClusterSize},
		{"MaxLevel", "max_level: -1\nrows: [\"..\"]", hpa.ErrBadMaxLevel},
		{"MaxLevelOverflow", "cluster_size: 10\nmax_level: 64\nrows: [\"..\"]", hpa.ErrBadMaxLevel},
		{"Tile", "tile: hex\nrows: [\"..\"]", grid.ErrBadTile},
		{"UnitCost", "unit_cost: 0\nrows: [\"..\"]", grid.ErrBadUnitCost},
		{"LogLevel", "log_level: loud\nrows: [\"..\"]", config.ErrBadLogLevel},
		{"NoRows", "cluster_size: 4", config.ErrNoRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte("rows: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	m, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.ClusterSize)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMap_Grid(t *testing.T) {
	m, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	g, err := m.Grid()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, grid.Octile, g.Tile)
	assert.Equal(t, 10, g.UnitCost)
	assert.False(t, g.Passable(1, 1))

	m.Rows = []string{"..", "?."}
	_, err = m.Grid()
	assert.ErrorIs(t, err, grid.ErrBadRune)
}

func TestMap_Build(t *testing.T) {
	m, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics := hpa.NewMetrics(reg)
	hm, err := m.Build(hpa.WithMetrics(metrics))
	require.NoError(t, err)
	assert.Equal(t, 2, hm.ClusterSize())
	assert.Equal(t, 2, hm.MaxLevel())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.EmptyGroups))

	p, err := hm.FindPath(grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, grid.Position{X: 3, Y: 3}, p.Positions[len(p.Positions)-1])

	m.StrictGroups = true
	_, err = m.Build()
	assert.ErrorIs(t, err, hpa.ErrEmptyGroup)

	m.Rows = nil
	_, err = m.Build()
	assert.ErrorIs(t, err, config.ErrNoRows)
}

func TestMap_Logger(t *testing.T) {
	m := config.Default()
	m.LogLevel = "warn"
	l, err := m.Logger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	m.LogLevel = "nope"
	_, err = m.Logger()
	assert.ErrorIs(t, err, config.ErrBadLogLevel)
}
