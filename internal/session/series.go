package session

import (
	"encoding/json"
	"sort"

	"github.com/example/starlanes/internal/game"
)

// Series is the persistable container of everything invariant across the
// games of one sitting: configuration, rules, roster and the running
// leaderboard.
type Series struct {
	GameConfig  game.GameConfig `json:"gameConfig"`
	HouseRules  game.HouseRules `json:"houseRules"`
	PlayerDefs  []PlayerDef     `json:"playerDefs"`
	Leaderboard Leaderboard     `json:"leaderboard"`
}

// Game is the persistable container of one in-progress game.
type Game struct {
	Model          *game.GameModel      `json:"model"`
	LaggardMonitor *game.LaggardMonitor `json:"laggardMonitor"`
	// CompaniesDeclaredSafe prevents announcing the same company safe twice.
	CompaniesDeclaredSafe []bool `json:"companiesDeclaredSafe"`
	// PlayerIndex cursors through PlayerOrder; it is not a player identity.
	PlayerIndex int   `json:"playerIndex"`
	PlayerOrder []int `json:"playerOrder"`
}

// CurrentPlayerIndex resolves the turn cursor through the (possibly
// shuffled) player order.
func (g *Game) CurrentPlayerIndex() int {
	return g.PlayerOrder[g.PlayerIndex]
}

// Leaderboard tallies games won per player across the series.
type Leaderboard struct {
	GamesWonByPlayerName map[string]int `json:"gamesWonByPlayerName"`
}

// NewLeaderboard starts every rostered player at zero wins.
func NewLeaderboard(playerDefs []PlayerDef) Leaderboard {
	gamesWon := make(map[string]int, len(playerDefs))
	for _, def := range playerDefs {
		gamesWon[def.Name] = 0
	}
	return Leaderboard{GamesWonByPlayerName: gamesWon}
}

// GameEnded credits the winner with one game.
func (l *Leaderboard) GameEnded(winningPlayerName string) {
	l.GamesWonByPlayerName[winningPlayerName]++
}

// Entries returns the leaderboard ranked by games won, ties broken
// alphabetically.
func (l *Leaderboard) Entries() []LeaderboardEntry {
	result := make([]LeaderboardEntry, 0, len(l.GamesWonByPlayerName))
	for name, gamesWon := range l.GamesWonByPlayerName {
		result = append(result, LeaderboardEntry{Name: name, GamesWon: gamesWon})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].GamesWon == result[j].GamesWon {
			return result[i].Name < result[j].Name
		}
		return result[i].GamesWon > result[j].GamesWon
	})
	return result
}

// PersistedSession is the on-disk session format. Game is nil when the
// session was saved between games.
type PersistedSession struct {
	Version string  `json:"version"`
	Series  *Series `json:"series"`
	Game    *Game   `json:"game,omitempty"`
}

// DecodePersistedSession parses a previously encoded session blob. A nil
// result with a nil error never happens; decode failures surface as errors
// and the caller treats them the same as no session.
func DecodePersistedSession(data []byte) (*PersistedSession, error) {
	var session PersistedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Encode serializes the session for persistence.
func (s *PersistedSession) Encode() ([]byte, error) {
	return json.Marshal(s)
}
