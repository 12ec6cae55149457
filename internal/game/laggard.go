package game

// LaggardMonitor decides when a player has fallen so far behind that offering
// concession is a kindness. It waits for a merge and a minimum round count
// before offering anything, since the trailing player may jump ahead on the
// first merge.
type LaggardMonitor struct {
	PlayerCount            int         `json:"playerCount"`
	HumanPlayerCount       int         `json:"humanPlayerCount"`
	IsComputer             []bool      `json:"isComputer"`
	MinConcessionRound     int         `json:"minConcessionRound"`
	NetWorthRatios         [][]float64 `json:"netWorthRatios"`
	RoundCount             int         `json:"roundCount"`
	HasMergeOccurred       bool        `json:"hasMergeOccurred"`
	LastActiveCompanyCount int         `json:"lastActiveCompanyCount"`
}

// NewLaggardMonitor builds the monitor for one game. isComputer correlates
// with the player array. The minimum concession round scales with map area
// per player; two players evaluate to 30 on the basic map and 40 on the
// deluxe map.
func NewLaggardMonitor(gameConfig GameConfig, isComputer []bool) *LaggardMonitor {
	humanCount := 0
	for _, computer := range isComputer {
		if !computer {
			humanCount++
		}
	}
	return &LaggardMonitor{
		PlayerCount:        len(isComputer),
		HumanPlayerCount:   humanCount,
		IsComputer:         append([]bool(nil), isComputer...),
		MinConcessionRound: int(float64(gameConfig.MapColumnCount*gameConfig.MapRowCount)/(1.8*float64(len(isComputer))) + 0.5),
	}
}

// EndRound records the round's net worth ratios and merge activity. A merge
// registers as any drop in the active company count; a merge and a founding
// in the same round cancel out, which is acceptable for a heuristic.
func (l *LaggardMonitor) EndRound(model *GameModel) {
	activeCompanyCount := len(model.ActiveCompanies())
	if activeCompanyCount < l.LastActiveCompanyCount {
		l.HasMergeOccurred = true
	}
	l.LastActiveCompanyCount = activeCompanyCount
	l.RoundCount++

	netWorths := model.NetWorths()
	maxWorth := 0
	for _, w := range netWorths {
		if w > maxWorth {
			maxWorth = w
		}
	}
	ratios := make([]float64, len(netWorths))
	for i, w := range netWorths {
		if maxWorth > 0 {
			ratios[i] = float64(w) / float64(maxWorth)
		}
	}
	l.NetWorthRatios = append(l.NetWorthRatios, ratios)
}

// IsPlayerLagging reports whether the player's share of the leading net worth
// has been non-increasing over the last three rounds and is low enough to
// qualify for a concession offer. Only meaningful for head-to-head games or
// games with a single human.
func (l *LaggardMonitor) IsPlayerLagging(playerIndex int) bool {
	if (l.PlayerCount != 2 && l.HumanPlayerCount != 1) ||
		l.RoundCount < l.MinConcessionRound ||
		!l.HasMergeOccurred ||
		len(l.NetWorthRatios) < 3 {
		return false
	}
	last := l.NetWorthRatios[len(l.NetWorthRatios)-1][playerIndex]
	secondLast := l.NetWorthRatios[len(l.NetWorthRatios)-2][playerIndex]
	thirdLast := l.NetWorthRatios[len(l.NetWorthRatios)-3][playerIndex]
	qualifies := last <= secondLast && secondLast <= thirdLast &&
		(secondLast <= 0.4 || thirdLast <= 0.5)

	if l.HumanPlayerCount == 1 && l.PlayerCount > 2 {
		// Only the human (any rank) or a second-place computer chasing a
		// leading human gets the offer; trailing computers play on.
		if !l.IsComputer[playerIndex] {
			return qualifies
		}
		latest := l.NetWorthRatios[len(l.NetWorthRatios)-1]
		first, second := 0, -1
		for i := 1; i < l.PlayerCount; i++ {
			if latest[i] > latest[first] {
				second = first
				first = i
			} else if second < 0 || latest[i] > latest[second] {
				second = i
			}
		}
		if !l.IsComputer[first] && second == playerIndex {
			return qualifies
		}
		return false
	}
	return qualifies
}
