package session

import (
	"sort"

	"github.com/example/starlanes/internal/game"
)

// companyNames is the fixed roster of shipping companies on the deluxe map;
// the basic map uses the first five.
var companyNames = []string{
	"ALTAIR STARWAYS",
	"BETELGEUSE, LTD.",
	"CAPELLA FREIGHT CO",
	"DENEBOLA SHIPPERS",
	"ERIDANI EXPEDITERS",
	"FOMALHAUT FEDERATED",
	"GALAXY BROS. DIRECT",
	"HAMALI HAULERS",
	"INTERSTELLAR LINES",
	"JETSON EXPRESS INC.",
}

// PlayerDef defines a series participant: a display name and whether the
// engine supplies their input. Invariant throughout the series.
type PlayerDef struct {
	Name       string `json:"name"`
	IsComputer bool   `json:"isComputer"`
}

// TitleCard carries what the title screen shows.
type TitleCard struct {
	Version string
}

// CompanyView is the front-end representation of a company.
type CompanyView struct {
	Name              string
	Monogram          string
	ShareValue        int
	Size              int
	OutstandingShares int
	IsSafe            bool
}

// NewCompanyView builds the display form of a company.
func NewCompanyView(company game.Company) CompanyView {
	name := companyNames[company.Index]
	return CompanyView{
		Name:              name,
		Monogram:          name[:1],
		ShareValue:        company.ShareValue,
		Size:              company.TokenCount,
		OutstandingShares: company.OutstandingShares,
		IsSafe:            company.IsSafe,
	}
}

// GalaxyMapView is the front-end representation of the map: a grid of
// one-character cell names indexed [column][row].
type GalaxyMapView struct {
	ColumnCount int
	RowCount    int
	Map         [][]string
}

// NewGalaxyMapView transforms a galaxy map for display.
func NewGalaxyMapView(m *game.GalaxyMap) GalaxyMapView {
	grid := make([][]string, m.ColumnCount)
	for column := range grid {
		grid[column] = make([]string, m.RowCount)
		for row := range grid[column] {
			grid[column][row] = m.Get(game.Coordinate{Row: row, Column: column}).String()
		}
	}
	return GalaxyMapView{ColumnCount: m.ColumnCount, RowCount: m.RowCount, Map: grid}
}

// PlayerView is the front-end representation of a player mid-game.
type PlayerView struct {
	Name     string
	NetWorth int
	// ActiveCompanyShares correlates with the ranking's active company list.
	ActiveCompanyShares []int
}

// PlayerRankingView lists the active companies alphabetically and the
// players in descending net worth order. Equal net worths keep player
// definition order.
type PlayerRankingView struct {
	ActiveCompanies []CompanyView
	RankedPlayers   []PlayerView
}

// NewPlayerRankingView builds the ranking display for the current game.
func NewPlayerRankingView(g *Game, s *Series) PlayerRankingView {
	active := g.Model.ActiveCompanies()
	companies := make([]CompanyView, len(active))
	for i, c := range active {
		companies[i] = NewCompanyView(c)
	}

	netWorths := g.Model.NetWorths()
	order := make([]int, len(netWorths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return netWorths[order[i]] > netWorths[order[j]]
	})

	players := make([]PlayerView, len(order))
	for rank, playerIndex := range order {
		shares := make([]int, len(active))
		for i, c := range active {
			shares[i] = g.Model.Players[playerIndex].Shares[c.Index]
		}
		players[rank] = PlayerView{
			Name:                s.PlayerDefs[playerIndex].Name,
			NetWorth:            netWorths[playerIndex],
			ActiveCompanyShares: shares,
		}
	}
	return PlayerRankingView{ActiveCompanies: companies, RankedPlayers: players}
}

// LeaderboardEntry is one row of the series leaderboard display.
type LeaderboardEntry struct {
	Name     string
	GamesWon int
}

// AnnouncementKind discriminates Announcement.
type AnnouncementKind int

const (
	// AnnouncementNewCompany reports a founded company.
	AnnouncementNewCompany AnnouncementKind = iota
	// AnnouncementMerger reports one defunct company folding into a
	// survivor. A multi-way merge produces one announcement per defunct
	// company.
	AnnouncementMerger
	// AnnouncementDividends reports the turn's dividend payment. This is the
	// only announcement that is individualized rather than broadcast.
	AnnouncementDividends
	// AnnouncementSafeCompany reports a company growing beyond merger reach.
	AnnouncementSafeCompany
	// AnnouncementDestroyedCompany reports a company wiped out by a black
	// hole.
	AnnouncementDestroyedCompany
)

// Announcement is a front-end event notification. Which fields are set
// depends on Kind.
type Announcement struct {
	Kind           AnnouncementKind
	Company        CompanyView
	DefunctCompany CompanyView
	PlayerName     string
	Bonus          int
	Dividends      int
}

// IsSpecial reports whether the announcement is out of the ordinary; a plain
// dividend report is not.
func (a Announcement) IsSpecial() bool {
	return a.Kind != AnnouncementDividends
}
