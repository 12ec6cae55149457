package game

import (
	"errors"
	"testing"
)

// testModel builds a model on an empty map with no stars or black holes
// dealt, so tests can lay out exact scenarios by hand.
func testModel(t *testing.T, columnCount, rowCount, playerCount int) *GameModel {
	t.Helper()
	cfg := GameConfig{
		MapColumnCount:       columnCount,
		MapRowCount:          rowCount,
		StarCount:            0,
		BlackHoleCount:       0,
		ShippingCompanyCount: 5,
		SafeTokenCount:       11,
		EndGameTokenCount:    41,
	}
	isComputer := make([]bool, playerCount)
	stack := make([]Coordinate, 0, columnCount*rowCount)
	for i := 0; i < columnCount*rowCount; i++ {
		stack = append(stack, Coordinate{Row: i / columnCount, Column: i % columnCount})
	}
	return NewGameModel(cfg, DefaultHouseRules(), isComputer, stack)
}

func at(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestPlayInEmptySpaceFormsOutpost(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.Players[0].CoordinateOptions = []Coordinate{at("5E")}

	results := m.Play(at("5E"))
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Outcome != OutcomeNewOutpost {
		t.Fatalf("outcome = %v, want new outpost", results[0].Outcome)
	}
	if got := m.GalaxyMap.Get(at("5E")); got != Outpost {
		t.Fatalf("cell = %q, want outpost", got)
	}
	if len(m.Players[0].CoordinateOptions) != 0 {
		t.Fatalf("played coordinate not removed from hand: %v", m.Players[0].CoordinateOptions)
	}
}

func TestPlayNextToStarFoundsCompany(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5D"), Star)

	results := m.Play(at("5E"))
	if results[0].Outcome != OutcomeNewCompany {
		t.Fatalf("outcome = %v, want new company", results[0].Outcome)
	}
	company := results[0].Company
	if company.Index != 0 {
		t.Fatalf("founded company index = %d, want 0", company.Index)
	}
	if company.TokenCount != 1 {
		t.Fatalf("token count = %d, want 1", company.TokenCount)
	}
	// One token next to one star: 500 + 100.
	if company.ShareValue != 600 {
		t.Fatalf("share value = %d, want 600", company.ShareValue)
	}
	if got := m.Players[0].Shares[0]; got != 5 {
		t.Fatalf("founder shares = %d, want 5", got)
	}
	if got := m.Companies[0].OutstandingShares; got != 5 {
		t.Fatalf("outstanding shares = %d, want 5", got)
	}
}

func TestFoundingConvertsConnectedOutposts(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5D"), Outpost)
	m.GalaxyMap.Set(at("5C"), Outpost)

	results := m.Play(at("5E"))
	if results[0].Outcome != OutcomeNewCompany {
		t.Fatalf("outcome = %v, want new company", results[0].Outcome)
	}
	for _, cell := range []string{"5C", "5D", "5E"} {
		if got := m.GalaxyMap.Get(at(cell)); got != CompanyToken(0) {
			t.Fatalf("cell %s = %q, want company token", cell, got)
		}
	}
	if got := m.Companies[0].TokenCount; got != 3 {
		t.Fatalf("token count = %d, want 3", got)
	}
}

func TestPlayNextToCompanyExpandsIt(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5D"), CompanyToken(1))
	m.GalaxyMap.Set(at("4D"), CompanyToken(1))
	m.updateCompanyStats()

	results := m.Play(at("5E"))
	if results[0].Outcome != OutcomeCompanyExpanded {
		t.Fatalf("outcome = %v, want expansion", results[0].Outcome)
	}
	if got := results[0].Company.Index; got != 1 {
		t.Fatalf("expanded company = %d, want 1", got)
	}
	if got := m.Companies[1].TokenCount; got != 3 {
		t.Fatalf("token count = %d, want 3", got)
	}
}

func TestMergeFoldsSmallerIntoLarger(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	// Company 1 holds three cells, company 0 holds two. 5E sits between.
	for _, cell := range []string{"5B", "5C", "5D"} {
		m.GalaxyMap.Set(at(cell), CompanyToken(1))
	}
	for _, cell := range []string{"5F", "5G"} {
		m.GalaxyMap.Set(at(cell), CompanyToken(0))
	}
	m.updateCompanyStats()

	// Player 0 holds five shares of the soon-defunct company 0, player 1
	// holds two.
	m.Players[0].Shares[0] = 5
	m.Players[1].Shares[0] = 2
	m.Companies[0].OutstandingShares = 7
	cash0, cash1 := m.Players[0].Cash, m.Players[1].Cash
	defunctValue := m.Companies[0].ShareValue

	results := m.Play(at("5E"))
	if results[0].Outcome != OutcomeCompaniesMerged {
		t.Fatalf("outcome = %v, want merge", results[0].Outcome)
	}
	reports := results[0].MergeReports
	if len(reports) != 1 {
		t.Fatalf("got %d merge reports, want 1", len(reports))
	}
	if reports[0].SurvivingCompany.Index != 1 || reports[0].DefunctCompany.Index != 0 {
		t.Fatalf("merge direction: survivor %d defunct %d, want 1 and 0",
			reports[0].SurvivingCompany.Index, reports[0].DefunctCompany.Index)
	}

	// Survivor absorbed both cells of company 0 plus the played coordinate.
	if got := m.Companies[1].TokenCount; got != 6 {
		t.Fatalf("survivor token count = %d, want 6", got)
	}
	if m.Companies[0].IsActive() {
		t.Fatalf("defunct company still active")
	}

	// 2:1 share conversion.
	if got := m.Players[0].Shares[1]; got != 2 {
		t.Fatalf("player 0 survivor shares = %d, want 2", got)
	}
	if got := m.Players[1].Shares[1]; got != 1 {
		t.Fatalf("player 1 survivor shares = %d, want 1", got)
	}
	if m.Players[0].Shares[0] != 0 || m.Players[1].Shares[0] != 0 {
		t.Fatalf("defunct shares not zeroed")
	}

	// Bonus is shares * defunct value * multiple / outstanding. Player 0
	// held an odd count, so the leftover share cashes out at the survivor's
	// post-merge value; player 1 held an even count and gets bonus only.
	survivorValue := m.Companies[1].ShareValue
	wantBonus0 := 5 * defunctValue * 10 / 7
	wantBonus1 := 2 * defunctValue * 10 / 7
	if got := m.Players[0].Cash - cash0; got != wantBonus0+survivorValue {
		t.Fatalf("player 0 merge proceeds = %d, want %d", got, wantBonus0+survivorValue)
	}
	if got := m.Players[1].Cash - cash1; got != wantBonus1 {
		t.Fatalf("player 1 merge proceeds = %d, want %d", got, wantBonus1)
	}
	if got := reports[0].BonusesPaid[0]; got != wantBonus0 {
		t.Fatalf("reported bonus = %d, want %d", got, wantBonus0)
	}
}

func TestMergeSparesSafeCompanies(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	// Company 0 is the biggest and safe, company 1 is smaller but also safe,
	// company 2 is a one-cell startup. The merge must fold only company 2.
	for _, cell := range []string{"1A", "1B", "2A", "2B", "3A", "3B", "4A", "4B", "5A", "5B", "6A", "6B"} {
		m.GalaxyMap.Set(at(cell), CompanyToken(1))
	}
	for _, cell := range []string{"7A", "7B", "7C", "7D", "7E", "7F", "7G", "7H", "7I", "7J", "7K", "7L", "8L"} {
		m.GalaxyMap.Set(at(cell), CompanyToken(0))
	}
	m.GalaxyMap.Set(at("6D"), CompanyToken(2))
	m.updateCompanyStats()
	if !m.Companies[0].IsSafe || !m.Companies[1].IsSafe || m.Companies[2].IsSafe {
		t.Fatalf("setup: safety flags wrong (sizes %d, %d, %d)",
			m.Companies[0].TokenCount, m.Companies[1].TokenCount, m.Companies[2].TokenCount)
	}

	// 6C touches company 1 through 6B, company 0 through 7C and company 2
	// through 6D.
	results := m.Play(at("6C"))
	if results[0].Outcome != OutcomeCompaniesMerged {
		t.Fatalf("outcome = %v, want merge", results[0].Outcome)
	}
	reports := results[0].MergeReports
	if len(reports) != 1 || reports[0].DefunctCompany.Index != 2 {
		t.Fatalf("merge reports = %+v, want only company 2 folded", reports)
	}
	if reports[0].SurvivingCompany.Index != 0 {
		t.Fatalf("survivor = %d, want 0", reports[0].SurvivingCompany.Index)
	}
	if !m.Companies[1].IsActive() {
		t.Fatalf("safe company was dissolved in a merge")
	}
	if m.Companies[2].IsActive() {
		t.Fatalf("unsafe company survived the merge")
	}
	if got := m.GalaxyMap.Get(at("6D")); got != CompanyToken(0) {
		t.Fatalf("folded cell = %q, want survivor token", got)
	}
}

func TestBlackHoleDestroysAdjacentCompany(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.BlackHoleCoordinates = []Coordinate{at("5F")}
	m.GalaxyMap.Set(at("5F"), BlackHole)
	m.GalaxyMap.Set(at("5C"), CompanyToken(2))
	m.GalaxyMap.Set(at("5D"), CompanyToken(2))
	m.updateCompanyStats()
	m.Players[0].Shares[2] = 4
	m.Companies[2].OutstandingShares = 4

	// Expanding company 2 onto 5E puts it next to the black hole.
	results := m.Play(at("5E"))
	if len(results) != 2 {
		t.Fatalf("got %d results, want expansion plus destruction", len(results))
	}
	if results[1].Outcome != OutcomeCompaniesDestroyed {
		t.Fatalf("second outcome = %v, want destruction", results[1].Outcome)
	}
	if got := results[1].DestroyedCompanyIDs; len(got) != 1 || got[0] != 2 {
		t.Fatalf("destroyed ids = %v, want [2]", got)
	}
	for _, cell := range []string{"5C", "5D", "5E"} {
		if got := m.GalaxyMap.Get(at(cell)); got != Destroyed {
			t.Fatalf("cell %s = %q, want destroyed", cell, got)
		}
	}
	if m.Companies[2].IsActive() || m.Companies[2].OutstandingShares != 0 {
		t.Fatalf("destroyed company ledger not cleared: %+v", m.Companies[2])
	}
	if got := m.Players[0].Shares[2]; got != 0 {
		t.Fatalf("holdings in destroyed company = %d, want 0", got)
	}
}

func TestBlackHoleDestroysAdjacentStarAndOutpost(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.BlackHoleCoordinates = []Coordinate{at("3C")}
	m.GalaxyMap.Set(at("3C"), BlackHole)
	m.GalaxyMap.Set(at("2C"), Star)

	// Playing an outpost next to the black hole destroys it immediately,
	// along with the star.
	results := m.Play(at("3D"))
	if results[0].Outcome != OutcomeNewOutpost {
		t.Fatalf("outcome = %v, want new outpost", results[0].Outcome)
	}
	if got := m.GalaxyMap.Get(at("3D")); got != Destroyed {
		t.Fatalf("outpost next to black hole = %q, want destroyed", got)
	}
	if got := m.GalaxyMap.Get(at("2C")); got != Destroyed {
		t.Fatalf("star next to black hole = %q, want destroyed", got)
	}
}

func TestCalculateDividends(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5C"), CompanyToken(0))
	m.GalaxyMap.Set(at("5B"), Star)
	m.updateCompanyStats()
	m.Players[0].Shares[0] = 10
	cash := m.Players[0].Cash

	// Holdings are 10 shares at 600; five percent of 6000.
	got := m.CalculateDividends()
	if got != 300 {
		t.Fatalf("dividends = %d, want 300", got)
	}
	if m.Players[0].Cash != cash+300 {
		t.Fatalf("cash = %d, want %d", m.Players[0].Cash, cash+300)
	}
}

func TestPurchaseSharesValidation(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5C"), CompanyToken(0))
	m.updateCompanyStats()

	if err := m.PurchaseShares([]int{1, 1}); !errors.Is(err, ErrInvalidPurchaseOrder) {
		t.Fatalf("mismatched order: err = %v, want invalid", err)
	}
	if err := m.PurchaseShares([]int{-1}); !errors.Is(err, ErrInvalidPurchaseOrder) {
		t.Fatalf("negative count: err = %v, want invalid", err)
	}
	if err := m.PurchaseShares([]int{1000000}); !errors.Is(err, ErrUnaffordablePurchase) {
		t.Fatalf("huge order: err = %v, want unaffordable", err)
	}
	if got := m.Players[0].Cash; got != DefaultHouseRules().HumanInitialCash {
		t.Fatalf("rejected orders touched cash: %d", got)
	}

	shareValue := m.Companies[0].ShareValue
	if err := m.PurchaseShares([]int{3}); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
	if got := m.Players[0].Shares[0]; got != 3 {
		t.Fatalf("shares = %d, want 3", got)
	}
	if got := m.Players[0].Cash; got != DefaultHouseRules().HumanInitialCash-3*shareValue {
		t.Fatalf("cash = %d after buying 3 at %d", got, shareValue)
	}
	if got := m.Companies[0].OutstandingShares; got != 3 {
		t.Fatalf("outstanding = %d, want 3", got)
	}
}

func TestCanPlayerCallGame(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	if m.CanPlayerCallGame() {
		t.Fatalf("callable with no active companies")
	}

	m.GalaxyMap.Set(at("5C"), CompanyToken(0))
	m.updateCompanyStats()
	m.Companies[0].TokenCount = 41
	m.Players[0].Shares[0] = 1
	m.Select(0)
	if !m.CanPlayerCallGame() {
		t.Fatalf("leading player cannot call with a 41-token company")
	}

	// The trailing player cannot call.
	m.Select(1)
	if m.CanPlayerCallGame() {
		t.Fatalf("trailing player allowed to call")
	}
}

func TestCallGameTieGoesToLowestIndex(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5C"), CompanyToken(0))
	m.updateCompanyStats()
	m.Companies[0].TokenCount = 41
	// Equal net worths: player 0 wins the tie.
	m.Select(0)
	if !m.CanPlayerCallGame() {
		t.Fatalf("player 0 should lead on an exact tie")
	}
	m.Select(1)
	if m.CanPlayerCallGame() {
		t.Fatalf("player 1 should not lead on an exact tie")
	}
}

func TestIsPlayableBetweenSafeCompanies(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5D"), CompanyToken(0))
	m.GalaxyMap.Set(at("5F"), CompanyToken(1))
	m.updateCompanyStats()

	if !m.isPlayable(at("5E")) {
		t.Fatalf("merge of two unsafe companies should be playable")
	}
	m.Companies[0].IsSafe = true
	if !m.isPlayable(at("5E")) {
		t.Fatalf("merge with one safe company should be playable")
	}
	m.Companies[1].IsSafe = true
	if m.isPlayable(at("5E")) {
		t.Fatalf("merge of two safe companies should be unplayable")
	}
}

func TestPlayerCoordinateOptionsFilterAndRefill(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5D"), CompanyToken(0))
	m.GalaxyMap.Set(at("5F"), CompanyToken(1))
	m.updateCompanyStats()
	m.Companies[0].IsSafe = true
	m.Companies[1].IsSafe = true

	m.Dealer = NewDealer([]Coordinate{at("1A"), at("2B")})
	m.Players[0].CoordinateOptions = []Coordinate{at("5E"), at("9L"), at("1B")}
	m.Select(0)

	options := m.PlayerCoordinateOptions()
	// 5E is gone, replaced from the dealer, and the result is sorted by
	// column then row.
	want := []Coordinate{at("1A"), at("1B"), at("2B"), at("9L")}
	if len(options) != len(want) {
		t.Fatalf("options = %v, want %v", options, want)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Fatalf("options[%d] = %v, want %v", i, options[i], want[i])
		}
	}
	// The refreshed hand is persisted.
	if len(m.Players[0].CoordinateOptions) != len(want) {
		t.Fatalf("hand not persisted: %v", m.Players[0].CoordinateOptions)
	}
}

func TestHasPlayableTiles(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	if !m.HasPlayableTiles() {
		t.Fatalf("fresh game should have playable tiles")
	}
	m.Players[0].CoordinateOptions = nil
	m.Players[1].CoordinateOptions = nil
	if m.HasPlayableTiles() {
		t.Fatalf("no hands left, still reports playable tiles")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := testModel(t, 12, 9, 2)
	m.GalaxyMap.Set(at("5C"), CompanyToken(0))
	m.updateCompanyStats()
	m.Players[0].Shares[0] = 3

	clone := m.Clone()
	clone.GalaxyMap.Set(at("5C"), Empty)
	clone.Players[0].Shares[0] = 99
	clone.Players[0].CoordinateOptions[0] = at("9A")
	clone.Companies[0].TokenCount = 7

	if m.GalaxyMap.Get(at("5C")) != CompanyToken(0) {
		t.Fatalf("clone shares map storage")
	}
	if m.Players[0].Shares[0] != 3 {
		t.Fatalf("clone shares player ledgers")
	}
	if m.Companies[0].TokenCount == 7 {
		t.Fatalf("clone shares company ledgers")
	}
}

func TestNewGameModelDealsHandsAndCelestials(t *testing.T) {
	cfg := BasicConfig()
	isComputer := []bool{false, true}
	m := NewGameModel(cfg, DefaultHouseRules(), isComputer, nil)

	for i, p := range m.Players {
		if len(p.CoordinateOptions) != 5 {
			t.Fatalf("player %d hand = %d options, want 5", i, len(p.CoordinateOptions))
		}
		if len(p.Shares) != cfg.ShippingCompanyCount {
			t.Fatalf("player %d shares len = %d", i, len(p.Shares))
		}
	}
	if len(m.BlackHoleCoordinates) != cfg.BlackHoleCount {
		t.Fatalf("black holes = %d, want %d", len(m.BlackHoleCoordinates), cfg.BlackHoleCount)
	}

	stars, holes := 0, 0
	for _, c := range m.AllCoordinates {
		switch m.GalaxyMap.Get(c) {
		case Star:
			stars++
		case BlackHole:
			holes++
		}
	}
	if stars != cfg.StarCount {
		t.Fatalf("stars on map = %d, want %d", stars, cfg.StarCount)
	}
	if holes != cfg.BlackHoleCount {
		t.Fatalf("black holes on map = %d, want %d", holes, cfg.BlackHoleCount)
	}

	dealt := len(m.Players)*5 + cfg.StarCount + cfg.BlackHoleCount
	if got := len(m.Dealer.Unplayed); got != cfg.MapColumnCount*cfg.MapRowCount-dealt {
		t.Fatalf("dealer stack = %d coordinates", got)
	}
}
