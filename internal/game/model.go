package game

import (
	"errors"
	"math/rand"
	"sort"
)

// Share purchase validation errors.
var (
	ErrInvalidPurchaseOrder = errors.New("purchase order does not match active companies or holds a negative count")
	ErrUnaffordablePurchase = errors.New("purchase order exceeds player cash")
)

// GameModel is the master data repository of one game: the galaxy map, the
// coordinate dealer and the company and player ledgers. Every mutation keeps
// token occupancy, share ledgers and company valuations mutually consistent.
// Each game in a series gets a fresh model.
type GameModel struct {
	// GameConfig and HouseRules are invariant throughout the series.
	GameConfig GameConfig `json:"gameConfig"`
	HouseRules HouseRules `json:"houseRules"`

	// CurrentPlayerIndex is controlled by the orchestrator via Select. With
	// randomized player order it does not increment sequentially.
	CurrentPlayerIndex   int          `json:"currentPlayerIndex"`
	GalaxyMap            *GalaxyMap   `json:"galaxyMap"`
	BlackHoleCoordinates []Coordinate `json:"blackHoleCoordinates"`
	Players              []Player     `json:"players"`
	// Companies holds all companies, active or not, indexed by identity.
	Companies []Company `json:"companies"`
	Dealer    Dealer    `json:"dealer"`
	// AllCoordinates enumerates every map cell, used by the full-map scans.
	AllCoordinates []Coordinate `json:"allCoordinates"`
}

// NewGameModel builds the model for one game. isComputer correlates with the
// player array. fixedCoordinateStack overrides the shuffled deal order for
// tests and deterministic setups; pass nil for a normal game.
func NewGameModel(gameConfig GameConfig, houseRules HouseRules, isComputer []bool, fixedCoordinateStack []Coordinate) *GameModel {
	columnCount, rowCount := gameConfig.MapColumnCount, gameConfig.MapRowCount

	allCoordinates := make([]Coordinate, 0, columnCount*rowCount)
	for i := 0; i < columnCount*rowCount; i++ {
		allCoordinates = append(allCoordinates, Coordinate{Row: i / columnCount, Column: i % columnCount})
	}

	stack := fixedCoordinateStack
	if stack == nil {
		stack = make([]Coordinate, len(allCoordinates))
		copy(stack, allCoordinates)
		rand.Shuffle(len(stack), func(i, j int) { stack[i], stack[j] = stack[j], stack[i] })
	}
	dealer := NewDealer(stack)

	players := make([]Player, len(isComputer))
	for i := range players {
		cash := houseRules.HumanInitialCash
		if isComputer[i] {
			cash = houseRules.ComputerInitialCash
		}
		players[i] = NewPlayer(i, cash, gameConfig.ShippingCompanyCount,
			dealer.DealMany(houseRules.PlayerCoordinateOptionCount))
	}

	companies := make([]Company, gameConfig.ShippingCompanyCount)
	for i := range companies {
		companies[i] = NewCompany(i)
	}

	m := &GameModel{
		GameConfig:     gameConfig,
		HouseRules:     houseRules,
		GalaxyMap:      NewGalaxyMap(columnCount, rowCount),
		Players:        players,
		Companies:      companies,
		Dealer:         dealer,
		AllCoordinates: allCoordinates,
	}

	m.BlackHoleCoordinates = m.Dealer.DealMany(gameConfig.BlackHoleCount)
	for _, c := range m.Dealer.DealMany(gameConfig.StarCount) {
		m.GalaxyMap.Set(c, Star)
	}
	for _, c := range m.BlackHoleCoordinates {
		m.GalaxyMap.Set(c, BlackHole)
	}
	return m
}

// Clone returns a fully independent deep copy, used for speculative play
// evaluation and display markup. Single-threaded use; a structural copy
// suffices.
func (m *GameModel) Clone() *GameModel {
	result := *m
	result.GalaxyMap = m.GalaxyMap.Clone()
	result.BlackHoleCoordinates = append([]Coordinate(nil), m.BlackHoleCoordinates...)
	result.Companies = append([]Company(nil), m.Companies...)
	result.Players = make([]Player, len(m.Players))
	for i, p := range m.Players {
		p.CoordinateOptions = append([]Coordinate(nil), p.CoordinateOptions...)
		p.Shares = append([]int(nil), p.Shares...)
		result.Players[i] = p
	}
	result.Dealer = NewDealer(append([]Coordinate(nil), m.Dealer.Unplayed...))
	return &result
}

// ActiveCompanies returns the companies on the map, in index (alphabetical)
// order.
func (m *GameModel) ActiveCompanies() []Company {
	var result []Company
	for _, c := range m.Companies {
		if c.IsActive() {
			result = append(result, c)
		}
	}
	return result
}

// NetWorths returns each player's cash plus market value of holdings,
// correlated with the player array.
func (m *GameModel) NetWorths() []int {
	result := make([]int, len(m.Players))
	for i, p := range m.Players {
		worth := p.Cash
		for _, c := range m.Companies {
			worth += p.Shares[c.Index] * c.ShareValue
		}
		result[i] = worth
	}
	return result
}

// Select records the player whose turn it is. The orchestrator owns turn
// order and notifies the model when it changes.
func (m *GameModel) Select(playerIndex int) {
	m.CurrentPlayerIndex = playerIndex
}

// leadingPlayerIndex is the player with strictly maximal net worth; exact
// ties resolve to the lowest player index.
func (m *GameModel) leadingPlayerIndex() int {
	worths := m.NetWorths()
	leader := 0
	for i, w := range worths {
		if w > worths[leader] {
			leader = i
		}
	}
	return leader
}

// CanPlayerCallGame reports whether the current player may call the game.
// The player must lead on net worth, and either every active company is safe
// (with at least one active) or some company has reached the end-game token
// count.
func (m *GameModel) CanPlayerCallGame() bool {
	active := m.ActiveCompanies()
	maxTokenCount := 0
	allSafe := len(active) > 0
	for _, c := range active {
		if c.TokenCount > maxTokenCount {
			maxTokenCount = c.TokenCount
		}
		if !c.IsSafe {
			allSafe = false
		}
	}
	callable := allSafe || maxTokenCount >= m.GameConfig.EndGameTokenCount
	return callable && m.leadingPlayerIndex() == m.CurrentPlayerIndex
}

// isPlayable reports whether playing c is legal: a coordinate is illegal only
// when it would force two or more safe companies to merge.
func (m *GameModel) isPlayable(c Coordinate) bool {
	seen := make(map[int]bool)
	distinct, safe := 0, 0
	for _, a := range c.Adjacent() {
		id, ok := m.GalaxyMap.Get(a).CompanyID()
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		distinct++
		if m.Companies[id].IsSafe {
			safe++
		}
	}
	return distinct < 2 || distinct > safe
}

// PlayerCoordinateOptions refreshes and returns the current player's hand:
// the dealer stack and the hand are re-filtered for playability, the hand is
// topped up from the dealer and sorted by column then row, and the refreshed
// hand is persisted on the player record. The result can be empty.
func (m *GameModel) PlayerCoordinateOptions() []Coordinate {
	m.Dealer.Filter(m.isPlayable)

	player := &m.Players[m.CurrentPlayerIndex]
	options := player.CoordinateOptions[:0]
	for _, c := range player.CoordinateOptions {
		if m.isPlayable(c) {
			options = append(options, c)
		}
	}
	options = append(options, m.Dealer.DealMany(m.HouseRules.PlayerCoordinateOptionCount-len(options))...)
	sort.Slice(options, func(i, j int) bool {
		if options[i].Column == options[j].Column {
			return options[i].Row < options[j].Row
		}
		return options[i].Column < options[j].Column
	})
	player.CoordinateOptions = options
	return options
}

// adjacentCompanyIDs returns the distinct company ids adjacent to c, in
// ascending id order.
func (m *GameModel) adjacentCompanyIDs(c Coordinate) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, a := range c.Adjacent() {
		if id, ok := m.GalaxyMap.Get(a).CompanyID(); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// convertOutposts flood-converts the outpost at start, and every outpost
// reachable through outpost-to-outpost adjacency, into companyID tokens.
// Iterative with an explicit work stack.
func (m *GameModel) convertOutposts(start Coordinate, companyID int) {
	work := []Coordinate{start}
	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]
		m.GalaxyMap.Set(c, CompanyToken(companyID))
		for _, a := range c.Adjacent() {
			if m.GalaxyMap.Get(a) == Outpost {
				work = append(work, a)
			}
		}
	}
}

// firstInactiveCompany returns the lowest-indexed company slot not on the
// map, used when founding.
func (m *GameModel) firstInactiveCompany() (int, bool) {
	for _, c := range m.Companies {
		if !c.IsActive() {
			return c.Index, true
		}
	}
	return 0, false
}

// Play resolves the central state transition of the game: the current player
// occupies coordinate. Returns an ordered outcome list holding exactly one of
// new-outpost / new-company / company-expanded / companies-merged, plus a
// companies-destroyed record when the black-hole pass wiped anything.
//
// The coordinate is assumed playable; illegal coordinates are filtered out of
// hands and never offered.
func (m *GameModel) Play(coordinate Coordinate) []PlayResult {
	player := &m.Players[m.CurrentPlayerIndex]
	hand := player.CoordinateOptions[:0]
	for _, c := range player.CoordinateOptions {
		if c != coordinate {
			hand = append(hand, c)
		}
	}
	player.CoordinateOptions = hand

	// Evaluate the neighborhood before placing the provisional outpost.
	adjacentIDs := m.adjacentCompanyIDs(coordinate)
	nextToStarOrOutpost := false
	for _, a := range coordinate.Adjacent() {
		if t := m.GalaxyMap.Get(a); t == Star || t == Outpost {
			nextToStarOrOutpost = true
			break
		}
	}

	m.GalaxyMap.Set(coordinate, Outpost)

	result := PlayResult{Outcome: OutcomeNewOutpost}
	foundedID := -1
	survivorID := -1
	var mergeReports []MergeReport
	var remainderSharePlayers []int

	switch {
	case len(adjacentIDs) == 0:
		if nextToStarOrOutpost {
			if id, ok := m.firstInactiveCompany(); ok {
				foundedID = id
				m.convertOutposts(coordinate, id)
			}
		}

	case len(adjacentIDs) == 1:
		m.convertOutposts(coordinate, adjacentIDs[0])
		result = PlayResult{Outcome: OutcomeCompanyExpanded, Company: m.Companies[adjacentIDs[0]]}

	default: // 2-4 distinct companies: a merge.
		ranked := append([]int(nil), adjacentIDs...)
		sort.SliceStable(ranked, func(i, j int) bool {
			ci, cj := m.Companies[ranked[i]], m.Companies[ranked[j]]
			if ci.TokenCount != cj.TokenCount {
				return ci.TokenCount > cj.TokenCount
			}
			return ci.Index < cj.Index
		})
		// The survivor may be safe; safe companies are only ever immune to
		// dissolution, not to absorbing others.
		survivorID = ranked[0]
		var defunctIDs []int
		for _, id := range ranked[1:] {
			if !m.Companies[id].IsSafe {
				defunctIDs = append(defunctIDs, id)
			}
		}
		mergeReports, remainderSharePlayers = m.mergeCompanies(survivorID, defunctIDs)
		m.convertOutposts(coordinate, survivorID)
	}

	destroyedIDs := m.updateBlackHoles()
	m.updateCompanyStats()

	switch {
	case foundedID >= 0:
		// Founder bonus is granted after the black-hole pass, so a company
		// founded into a black hole still leaves the founder holding shares
		// of a dead company, matching the table rules.
		m.Players[m.CurrentPlayerIndex].Shares[foundedID] = m.HouseRules.FounderShareBonus
		m.Companies[foundedID].OutstandingShares = m.HouseRules.FounderShareBonus
		result = PlayResult{Outcome: OutcomeNewCompany, Company: m.Companies[foundedID]}

	case survivorID >= 0:
		// Odd defunct shares from the 2:1 split cash out at the survivor's
		// post-merge value, after all defunct companies are folded in.
		for _, playerIndex := range remainderSharePlayers {
			m.Players[playerIndex].Cash += m.Companies[survivorID].ShareValue
		}
		result = PlayResult{Outcome: OutcomeCompaniesMerged, MergeReports: mergeReports}
	}

	results := []PlayResult{result}
	if len(destroyedIDs) > 0 {
		results = append(results, PlayResult{Outcome: OutcomeCompaniesDestroyed, DestroyedCompanyIDs: destroyedIDs})
	}
	return results
}

// mergeCompanies folds each defunct company into the survivor: map tokens
// convert, holders get one survivor share per two defunct shares plus a cash
// bonus proportional to their stake. Players left with an odd share are
// returned for the post-merge remainder payout.
func (m *GameModel) mergeCompanies(survivorID int, defunctIDs []int) ([]MergeReport, []int) {
	var reports []MergeReport
	var remainderSharePlayers []int
	for _, defunctID := range defunctIDs {
		for _, c := range m.AllCoordinates {
			if m.GalaxyMap.Get(c) == CompanyToken(defunctID) {
				m.GalaxyMap.Set(c, CompanyToken(survivorID))
			}
		}

		// Snapshot before the loop drains it.
		defunctOutstandingShares := m.Companies[defunctID].OutstandingShares
		bonusesPaid := make([]int, len(m.Players))
		for i := range m.Players {
			bonus := 0
			if defunctOutstandingShares > 0 {
				bonus = m.Players[i].Shares[defunctID] *
					m.Companies[defunctID].ShareValue *
					m.HouseRules.MergeBonusShareValueMultiple /
					defunctOutstandingShares
			}
			bonusesPaid[i] = bonus

			mergedShareCount := m.Players[i].Shares[defunctID]
			m.Players[i].Shares[survivorID] += mergedShareCount / 2
			m.Companies[survivorID].OutstandingShares += mergedShareCount / 2
			m.Companies[defunctID].OutstandingShares -= mergedShareCount
			if mergedShareCount&1 != 0 {
				remainderSharePlayers = append(remainderSharePlayers, i)
			}
			m.Players[i].Shares[defunctID] = 0
			m.Players[i].Cash += bonus
		}

		reports = append(reports, MergeReport{
			MergePlayerIndex: m.CurrentPlayerIndex,
			SurvivingCompany: m.Companies[survivorID],
			DefunctCompany:   m.Companies[defunctID],
			BonusesPaid:      bonusesPaid,
		})
	}
	return reports, remainderSharePlayers
}

// updateBlackHoles destroys stars and outposts adjacent to a black hole and
// wipes out any company adjacent to one: ledger zeroed, every holding zeroed,
// every map cell turned to destroyed. Adjacency is evaluated against the map
// as it stood before the pass. Returns the wiped company ids.
func (m *GameModel) updateBlackHoles() []int {
	next := m.GalaxyMap.Clone()
	var destroyedIDs []int
	wiped := make(map[int]bool)
	for _, blackHole := range m.BlackHoleCoordinates {
		for _, a := range blackHole.Adjacent() {
			if t := m.GalaxyMap.Get(a); t == Star || t == Outpost {
				next.Set(a, Destroyed)
			}
		}
		for _, a := range blackHole.Adjacent() {
			id, ok := m.GalaxyMap.Get(a).CompanyID()
			if !ok || wiped[id] {
				continue
			}
			wiped[id] = true

			m.Companies[id].TokenCount = 0
			m.Companies[id].ShareValue = 0
			m.Companies[id].IsSafe = false
			m.Companies[id].OutstandingShares = 0
			for i := range m.Players {
				m.Players[i].Shares[id] = 0
			}
			for _, c := range m.AllCoordinates {
				if cellID, ok := next.Get(c).CompanyID(); ok && cellID == id {
					next.Set(c, Destroyed)
				}
			}
			destroyedIDs = append(destroyedIDs, id)
		}
	}
	m.GalaxyMap = next
	return destroyedIDs
}

// updateCompanyStats recomputes every company's derived ledger fields from
// the map: token count, share value and safety. A star touching several cells
// of the same company counts once.
func (m *GameModel) updateCompanyStats() {
	for i := range m.Companies {
		token := CompanyToken(i)
		tokenCount := 0
		adjacentStars := make(map[Coordinate]bool)
		for _, c := range m.AllCoordinates {
			if m.GalaxyMap.Get(c) != token {
				continue
			}
			tokenCount++
			for _, a := range c.Adjacent() {
				if m.GalaxyMap.Get(a) == Star {
					adjacentStars[a] = true
				}
			}
		}
		m.Companies[i].TokenCount = tokenCount
		m.Companies[i].ShareValue = len(adjacentStars)*m.HouseRules.ShareValueAdjacentStar +
			tokenCount*m.HouseRules.ShareValueAdjacentToken
		m.Companies[i].IsSafe = tokenCount >= m.GameConfig.SafeTokenCount
	}
}

// CalculateDividends pays the current player their periodic dividend: the
// floor of holdings value times the dividend percent. Returns the amount for
// reporting.
func (m *GameModel) CalculateDividends() int {
	player := &m.Players[m.CurrentPlayerIndex]
	total := 0
	for _, c := range m.Companies {
		total += player.Shares[c.Index] * c.ShareValue
	}
	dividends := total * m.HouseRules.DividendPercent / 100
	player.Cash += dividends
	return dividends
}

// PurchaseShares fulfills a purchase order for the current player. The order
// correlates with the active-company list. Orders that do not match, hold
// negative counts or exceed the player's cash are rejected without touching
// any ledger.
func (m *GameModel) PurchaseShares(purchaseOrder []int) error {
	active := m.ActiveCompanies()
	if len(purchaseOrder) != len(active) {
		return ErrInvalidPurchaseOrder
	}
	totalCost := 0
	for i, count := range purchaseOrder {
		if count < 0 {
			return ErrInvalidPurchaseOrder
		}
		totalCost += count * active[i].ShareValue
	}
	player := &m.Players[m.CurrentPlayerIndex]
	if totalCost > player.Cash {
		return ErrUnaffordablePurchase
	}
	for i, count := range purchaseOrder {
		player.Cash -= count * active[i].ShareValue
		player.Shares[active[i].Index] += count
		m.Companies[active[i].Index].OutstandingShares += count
	}
	return nil
}

// HasPlayableTiles reports whether any player still holds coordinate
// options. When false the game cannot continue and the orchestrator calls it.
func (m *GameModel) HasPlayableTiles() bool {
	for _, p := range m.Players {
		if len(p.CoordinateOptions) > 0 {
			return true
		}
	}
	return false
}
