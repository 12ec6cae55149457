package game

// Player is the in-game ledger record of one player. Names are a series-level
// concern; the model only knows indices.
type Player struct {
	Index             int          `json:"index"`
	Cash              int          `json:"cash"`
	CoordinateOptions []Coordinate `json:"coordinateOptions"`
	Shares            []int        `json:"shares"`
}

// NewPlayer returns a player with starting cash, an initial hand of
// coordinate options and zero shares in every company.
func NewPlayer(index, cash, companyCount int, coordinateOptions []Coordinate) Player {
	return Player{
		Index:             index,
		Cash:              cash,
		CoordinateOptions: coordinateOptions,
		Shares:            make([]int, companyCount),
	}
}
