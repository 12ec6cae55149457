package game

// Dealer owns the stack of unplayed coordinates. It is the only authoritative
// source of drawable coordinates in a game; a coordinate dealt once is never
// dealt again.
type Dealer struct {
	Unplayed []Coordinate `json:"unplayedCoordinateStack"`
}

// NewDealer wraps an ordered (already shuffled) coordinate stack. Deals pop
// from the end.
func NewDealer(coordinateStack []Coordinate) Dealer {
	return Dealer{Unplayed: coordinateStack}
}

// Deal pops one coordinate. The second return is false when the stack is
// exhausted; that is not an error, callers check.
func (d *Dealer) Deal() (Coordinate, bool) {
	if len(d.Unplayed) == 0 {
		return Coordinate{}, false
	}
	c := d.Unplayed[len(d.Unplayed)-1]
	d.Unplayed = d.Unplayed[:len(d.Unplayed)-1]
	return c, true
}

// DealMany pops up to count coordinates, returning fewer if the stack runs
// out.
func (d *Dealer) DealMany(count int) []Coordinate {
	var result []Coordinate
	for i := 0; i < count; i++ {
		c, ok := d.Deal()
		if !ok {
			break
		}
		result = append(result, c)
	}
	return result
}

// Filter irrevocably discards every stacked coordinate rejected by keep.
// Used when a company becomes safe: coordinates that would force two safe
// companies to merge are removed from circulation entirely.
func (d *Dealer) Filter(keep func(Coordinate) bool) {
	kept := d.Unplayed[:0]
	for _, c := range d.Unplayed {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	d.Unplayed = kept
}
