package cluster

import (
	"fmt"

	"github.com/katalvlaran/hierpath/grid"
)

// Decompose tiles g with clusters of clusterSize×clusterSize cells (clusters
// on the right and bottom edges are truncated) and detects the entrances on
// every shared border.
//
// Behavior:
//  1. Clusters are produced row-major; Cluster.ID equals its slice index.
//  2. For every border between two neighbouring clusters, the facing cell
//     pairs that are both open form maximal runs.
//  3. A run shorter than MaxEntranceWidth yields one entrance at its middle;
//     a longer run yields two, one at each end.
//  4. Each entrance carries the border level from DetermineLevel.
//
// EntrancePoints are left empty: abstract nodes do not exist yet.
//
// Complexity: O(W + H) per cluster row/column border, O(W×H) overall.
func Decompose(g *grid.Grid, clusterSize, maxLevel int) ([]Cluster, []Entrance, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if clusterSize < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadClusterSize, clusterSize)
	}
	if maxLevel < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadMaxLevel, maxLevel)
	}

	cols := (g.Width + clusterSize - 1) / clusterSize
	rows := (g.Height + clusterSize - 1) / clusterSize
	clusters := make([]Cluster, 0, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0, y0 := cx*clusterSize, cy*clusterSize
			clusters = append(clusters, Cluster{
				ID:       len(clusters),
				Origin:   grid.Position{X: x0, Y: y0},
				Width:    min(clusterSize, g.Width-x0),
				Height:   min(clusterSize, g.Height-y0),
				ClusterX: cx,
				ClusterY: cy,
			})
		}
	}

	d := &detector{g: g, maxLevel: maxLevel}
	for i := range clusters {
		c := &clusters[i]
		if c.ClusterX > 0 {
			left := &clusters[i-1]
			d.vertical(left, c)
		}
		if c.ClusterY > 0 {
			above := &clusters[i-cols]
			d.horizontal(above, c)
		}
	}

	return clusters, d.entrances, nil
}

// DetermineLevel returns the largest level l ≤ maxLevel for which a border
// at cluster index idx is also a border of the level-l cluster grid, i.e.
// idx is divisible by 2^(l-1).
func DetermineLevel(idx, maxLevel int) int {
	level := 1
	for idx > 0 && idx%2 == 0 && level < maxLevel {
		idx /= 2
		level++
	}
	return level
}

// detector accumulates entrances while scanning borders.
type detector struct {
	g         *grid.Grid
	maxLevel  int
	entrances []Entrance
}

// vertical scans the border between left and right (left.ClusterX+1 == right.ClusterX).
func (d *detector) vertical(left, right *Cluster) {
	x1 := left.Origin.X + left.Width - 1
	x2 := right.Origin.X
	level := DetermineLevel(right.ClusterX, d.maxLevel)
	d.scan(right.Origin.Y, right.Height, func(y int) (grid.Position, grid.Position) {
		return grid.Position{X: x1, Y: y}, grid.Position{X: x2, Y: y}
	}, left.ID, right.ID, Vertical, level)
}

// horizontal scans the border between above and below (above.ClusterY+1 == below.ClusterY).
func (d *detector) horizontal(above, below *Cluster) {
	y1 := above.Origin.Y + above.Height - 1
	y2 := below.Origin.Y
	level := DetermineLevel(below.ClusterY, d.maxLevel)
	d.scan(below.Origin.X, below.Width, func(x int) (grid.Position, grid.Position) {
		return grid.Position{X: x, Y: y1}, grid.Position{X: x, Y: y2}
	}, above.ID, below.ID, Horizontal, level)
}

// scan walks n border offsets starting at from, splitting them into runs of
// open facing pairs.
func (d *detector) scan(from, n int, pair func(int) (grid.Position, grid.Position),
	ca, cb int, o Orientation, level int) {
	open := func(i int) bool {
		a, b := pair(i)
		return d.g.Passable(a.X, a.Y) && d.g.Passable(b.X, b.Y)
	}
	for i := from; i < from+n; {
		if !open(i) {
			i++
			continue
		}
		start := i
		for i < from+n && open(i) {
			i++
		}
		end := i - 1
		if run := end - start + 1; run < MaxEntranceWidth {
			d.add(pair, start+(run-1)/2, ca, cb, o, level)
		} else {
			d.add(pair, start, ca, cb, o, level)
			d.add(pair, end, ca, cb, o, level)
		}
	}
}

func (d *detector) add(pair func(int) (grid.Position, grid.Position), i, ca, cb int, o Orientation, level int) {
	a, b := pair(i)
	d.entrances = append(d.entrances, Entrance{
		ID:          len(d.entrances),
		A:           a,
		B:           b,
		ClusterA:    ca,
		ClusterB:    cb,
		Orientation: o,
		Level:       level,
	})
}
