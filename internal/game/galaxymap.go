package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GalaxyMap is a fixed-size grid of tokens. Cells are stored row-major, which
// is also the order of the flattened string serialization. Out-of-bounds reads
// return the empty token and out-of-bounds writes are ignored, so adjacency
// probes can walk off the edge of the map safely.
type GalaxyMap struct {
	ColumnCount int
	RowCount    int
	cells       []Token
}

// NewGalaxyMap returns an empty map of the given dimensions.
func NewGalaxyMap(columnCount, rowCount int) *GalaxyMap {
	return &GalaxyMap{
		ColumnCount: columnCount,
		RowCount:    rowCount,
		cells:       make([]Token, columnCount*rowCount),
	}
}

func (g *GalaxyMap) inBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.RowCount && c.Column >= 0 && c.Column < g.ColumnCount
}

func (g *GalaxyMap) index(c Coordinate) int {
	return c.Row*g.ColumnCount + c.Column
}

// Get returns the token at c, or the empty token when c is off the map.
func (g *GalaxyMap) Get(c Coordinate) Token {
	if !g.inBounds(c) {
		return Empty
	}
	return g.cells[g.index(c)]
}

// Set places a token at c. Writes to off-map coordinates are dropped.
func (g *GalaxyMap) Set(c Coordinate, t Token) {
	if g.inBounds(c) {
		g.cells[g.index(c)] = t
	}
}

// Clone returns a fully independent deep copy.
func (g *GalaxyMap) Clone() *GalaxyMap {
	result := NewGalaxyMap(g.ColumnCount, g.RowCount)
	copy(result.cells, g.cells)
	return result
}

// MarkedUp returns a copy of the map with marker tokens overlaid at the given
// coordinate options, numbered 1..n in presentation order. The receiver is
// left untouched; the markup exists only for display.
func (g *GalaxyMap) MarkedUp(coordinateOptions []Coordinate) *GalaxyMap {
	result := g.Clone()
	for i, c := range coordinateOptions {
		result.Set(c, MarkerToken(i+1))
	}
	return result
}

// Flatten renders the cells as a single string over the token alphabet, one
// character per cell in row-major order.
func (g *GalaxyMap) Flatten() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, t := range g.cells {
		b.WriteString(t.String())
	}
	return b.String()
}

type galaxyMapJSON struct {
	ColumnCount int    `json:"columnCount"`
	RowCount    int    `json:"rowCount"`
	Map         string `json:"map"`
}

func (g *GalaxyMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(galaxyMapJSON{
		ColumnCount: g.ColumnCount,
		RowCount:    g.RowCount,
		Map:         g.Flatten(),
	})
}

func (g *GalaxyMap) UnmarshalJSON(data []byte) error {
	var raw galaxyMapJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Map) != raw.ColumnCount*raw.RowCount {
		return fmt.Errorf("galaxy map: %d cells serialized for %dx%d map",
			len(raw.Map), raw.ColumnCount, raw.RowCount)
	}
	decoded := NewGalaxyMap(raw.ColumnCount, raw.RowCount)
	for i := 0; i < len(raw.Map); i++ {
		t, err := ParseToken(raw.Map[i : i+1])
		if err != nil {
			return fmt.Errorf("galaxy map cell %d: %w", i, err)
		}
		decoded.cells[i] = t
	}
	*g = *decoded
	return nil
}
