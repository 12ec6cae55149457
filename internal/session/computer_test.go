package session

import (
	"testing"

	"github.com/example/starlanes/internal/game"
)

type nullOutput struct{}

func (nullOutput) Newline()         {}
func (nullOutput) Println(s string) {}
func (nullOutput) Print(s string)   {}

// flatModel builds a model with no celestials and a row-major deal order, so
// tests control the map contents directly.
func flatModel(playerCount int) *game.GameModel {
	cfg := game.BasicConfig()
	cfg.StarCount = 0
	cfg.BlackHoleCount = 0
	stack := make([]game.Coordinate, 0, cfg.MapColumnCount*cfg.MapRowCount)
	for row := 0; row < cfg.MapRowCount; row++ {
		for column := 0; column < cfg.MapColumnCount; column++ {
			stack = append(stack, game.Coordinate{Row: row, Column: column})
		}
	}
	return game.NewGameModel(cfg, game.DefaultHouseRules(), make([]bool, playerCount), stack)
}

func TestComputerAlwaysAnswersYes(t *testing.T) {
	c := NewComputerInput()
	if got := c.ReadYesNo(nullOutput{}); got != "Y" {
		t.Fatalf("ReadYesNo() = %q", got)
	}
}

func TestComputerReadIntFallsBackToMin(t *testing.T) {
	c := NewComputerInput()
	if got := c.ReadInt(nullOutput{}, 2, 9); got != 2 {
		t.Fatalf("empty queue ReadInt = %d, want 2", got)
	}
}

func TestSelectPurchaseCompanyPrefersOwnershipLead(t *testing.T) {
	active := []game.Company{
		{Index: 0, TokenCount: 2, ShareValue: 500, OutstandingShares: 10},
		{Index: 1, TokenCount: 2, ShareValue: 600, OutstandingShares: 10},
	}
	shares := []int{1, 8, 0, 0, 0}
	// Cheapest at 500 is not under two thirds of 600; invest in the lead.
	if got := selectPurchaseCompany(shares, active); got != 1 {
		t.Fatalf("selectPurchaseCompany = %d, want 1", got)
	}
}

func TestSelectPurchaseCompanyBuysCheap(t *testing.T) {
	active := []game.Company{
		{Index: 0, TokenCount: 2, ShareValue: 100, OutstandingShares: 10},
		{Index: 1, TokenCount: 9, ShareValue: 900, OutstandingShares: 10},
	}
	shares := []int{0, 8, 0, 0, 0}
	if got := selectPurchaseCompany(shares, active); got != 0 {
		t.Fatalf("selectPurchaseCompany = %d, want 0", got)
	}
}

func TestSelectPurchaseCompanyWithNoActiveCompanies(t *testing.T) {
	if got := selectPurchaseCompany([]int{0, 0}, nil); got != -1 {
		t.Fatalf("selectPurchaseCompany = %d, want -1", got)
	}
}

func TestDecideSharePurchaseGoesAllIn(t *testing.T) {
	m := flatModel(2)
	m.Companies[0] = game.Company{Index: 0, TokenCount: 3, ShareValue: 100, OutstandingShares: 5}
	m.Companies[2] = game.Company{Index: 2, TokenCount: 3, ShareValue: 5000, OutstandingShares: 5}
	m.Companies[3] = game.Company{Index: 3, TokenCount: 3, ShareValue: 300, OutstandingShares: 5}
	m.Players[0].Cash = 600

	c := NewComputerInput()
	c.DecideSharePurchase(0, m)

	// Company 0 is the pick; after going all in nothing else is affordable,
	// so exactly one prompt's worth of answers is queued.
	if got := c.ReadInt(nullOutput{}, 0, 6); got != 6 {
		t.Fatalf("first queued purchase = %d, want 6", got)
	}
	if got := c.ReadInt(nullOutput{}, 0, 0); got != 0 {
		t.Fatalf("queue should be drained, got %d", got)
	}
}

func TestDecideCoordinateSelectionFoundsCompany(t *testing.T) {
	m := flatModel(2)
	m.GalaxyMap.Set(game.Coordinate{Row: 0, Column: 1}, game.Star)

	// First option is a lone outpost; second founds a company next to the
	// star and pays founder shares.
	options := []game.Coordinate{
		{Row: 8, Column: 11},
		{Row: 0, Column: 0},
	}
	c := NewComputerInput()
	c.DecideCoordinateSelection(0, options, m)
	if got := c.ReadInt(nullOutput{}, 1, len(options)); got != 2 {
		t.Fatalf("coordinate pick = %d, want 2", got)
	}
}
