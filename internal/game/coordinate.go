package game

import "fmt"

// Coordinate addresses one cell of the galaxy map. Rows and columns are
// zero-based; the textual form is a row digit followed by a column letter,
// so row 0 / column 0 prints as "1A".
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Adjacent returns the four cardinally adjacent coordinates. Off-map
// coordinates are included; GalaxyMap reads treat them as empty.
func (c Coordinate) Adjacent() [4]Coordinate {
	return [4]Coordinate{
		{Row: c.Row - 1, Column: c.Column},
		{Row: c.Row + 1, Column: c.Column},
		{Row: c.Row, Column: c.Column - 1},
		{Row: c.Row, Column: c.Column + 1},
	}
}

func (c Coordinate) String() string {
	return string([]byte{byte('1' + c.Row), byte('A' + c.Column)})
}

// ParseCoordinate reverses Coordinate.String.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("coordinate %q: want digit followed by letter", s)
	}
	row := int(s[0]) - '1'
	column := int(s[1]) - 'A'
	if row < 0 || row > 8 || column < 0 || column > 25 {
		return Coordinate{}, fmt.Errorf("coordinate %q: out of range", s)
	}
	return Coordinate{Row: row, Column: column}, nil
}
