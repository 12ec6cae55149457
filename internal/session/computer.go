package session

import (
	"strconv"

	"github.com/example/starlanes/internal/game"
)

// ComputerInput answers the game's questions for a computer player. The
// orchestrator calls the Decide methods ahead of a prompt; the decisions are
// queued as integers and drained by subsequent ReadInt calls.
type ComputerInput struct {
	queued []int
}

// NewComputerInput builds an empty computer input.
func NewComputerInput() *ComputerInput {
	return &ComputerInput{}
}

// ReadYesNo always answers yes. Calling the game when leading, conceding
// when hopeless and playing another game are all correct for an optimizing
// player.
func (c *ComputerInput) ReadYesNo(output Output) string {
	output.Println("Y")
	return "Y"
}

// ReadInt dequeues the next decided value, falling back to min when nothing
// is queued.
func (c *ComputerInput) ReadInt(output Output, min, max int) int {
	result := min
	if len(c.queued) > 0 {
		result = c.queued[0]
		c.queued = c.queued[1:]
	}
	output.Println(strconv.Itoa(result))
	return result
}

// DecideCoordinateSelection evaluates every coordinate option by brute
// force: clone the game, play the option, pay dividends and score the
// player's share of total net worth. The best option's 1-based position is
// queued for the next ReadInt.
func (c *ComputerInput) DecideCoordinateSelection(playerIndex int, coordinateOptions []game.Coordinate, model *game.GameModel) {
	best, bestScore := 0, -1.0
	for i, coordinate := range coordinateOptions {
		test := model.Clone()
		test.Play(coordinate)
		test.CalculateDividends()
		total := 0.0
		netWorths := test.NetWorths()
		for _, w := range netWorths {
			total += float64(w)
		}
		score := float64(netWorths[playerIndex]) / total
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	c.queued = []int{best + 1}
}

// DecideSharePurchase picks one company and goes all in. The pick is the
// company the player holds the greatest ownership lead in, unless the
// cheapest active company costs less than two thirds as much, in which case
// buy cheap. One purchase count per affordable active company is queued, in
// active-company order.
func (c *ComputerInput) DecideSharePurchase(playerIndex int, model *game.GameModel) {
	active := model.ActiveCompanies()
	player := model.Players[playerIndex]
	selected := selectPurchaseCompany(player.Shares, active)

	cash := player.Cash
	var queued []int
	for _, company := range active {
		if cash < company.ShareValue {
			continue
		}
		amount := 0
		if company.Index == selected {
			amount = cash / company.ShareValue
		}
		queued = append(queued, amount)
		cash -= amount * company.ShareValue
	}
	c.queued = queued
}

// selectPurchaseCompany returns the index of the company to invest in, or -1
// when no company is active.
func selectPurchaseCompany(shares []int, active []game.Company) int {
	if len(active) == 0 {
		return -1
	}
	cheapest := active[0]
	greatestOwnership := active[0]
	greatestOwnershipPct := 0.0
	for _, company := range active {
		if company.ShareValue < cheapest.ShareValue {
			cheapest = company
		}
		if company.OutstandingShares == 0 {
			continue
		}
		pct := float64(shares[company.Index]) / float64(company.OutstandingShares)
		if pct > greatestOwnershipPct {
			greatestOwnership = company
			greatestOwnershipPct = pct
		}
	}
	if cheapest.ShareValue < greatestOwnership.ShareValue*2/3 {
		return cheapest.Index
	}
	return greatestOwnership.Index
}
