package session

import (
	"log"
	"math/rand"

	"github.com/example/starlanes/internal/game"
)

// engineVersion is compared against persisted sessions; bump it only when
// the persisted format changes.
const engineVersion = "1.1"

// Player count limits for a series.
const (
	MinPlayerCount = 2
	MaxPlayerCount = 4
)

// Orchestrator runs the series and its games as an explicit state machine.
// The host calls Step repeatedly until IsGameOver reports true; every Step
// performs one state's work, including any front-end round trips that state
// needs.
type Orchestrator struct {
	frontEnd FrontEnd
	state    State
	agents   playerAgents
	series   *Series
	game     *Game
	err      error
}

// NewOrchestrator builds the state machine around a front end.
func NewOrchestrator(frontEnd FrontEnd) *Orchestrator {
	return &Orchestrator{frontEnd: frontEnd, state: StateDisplayTitle}
}

// State reports the current state, mainly for hosts that display progress.
func (o *Orchestrator) State() State {
	return o.state
}

// IsGameOver reports whether the session is finished: a game ended and the
// player declined to continue the series.
func (o *Orchestrator) IsGameOver() bool {
	return o.state == StateGameOver
}

// Run steps the state machine to completion.
func (o *Orchestrator) Run() {
	for !o.IsGameOver() {
		o.Step()
	}
}

// Step executes one iteration of the state machine.
func (o *Orchestrator) Step() {
	switch o.state {

	case StateDisplayTitle:
		o.frontEnd.ShowTitle(TitleCard{Version: engineVersion})
		o.state = StateRetrievePersistedSession

	case StateRetrievePersistedSession:
		o.retrievePersistedSession()

	case StateConfigureSeries:
		o.configureSeries()

	case StateStartGame:
		o.startGame()

	case StateStartRound:
		o.game.PlayerIndex = 0
		o.state = StateStartTurn

	case StateStartTurn:
		o.game.Model.Select(o.game.CurrentPlayerIndex())
		o.frontEnd.ShowTurnStart(o.series.PlayerDefs[o.game.CurrentPlayerIndex()])
		o.state = StateCheckEarlyGameEnd

	case StateCheckEarlyGameEnd:
		o.checkEarlyGameEnd()

	case StateSelectCoordinate:
		o.selectCoordinate()

	case StateCalculateDividends:
		o.agents[o.game.CurrentPlayerIndex()].Announce(Announcement{
			Kind:      AnnouncementDividends,
			Dividends: o.game.Model.CalculateDividends(),
		})
		o.state = StatePurchaseShares

	case StatePurchaseShares:
		o.purchaseShares()

	case StateEndTurn:
		o.game.PlayerIndex++
		if o.game.PlayerIndex == len(o.series.PlayerDefs) {
			o.state = StateEndRound
		} else {
			o.state = StateStartTurn
		}
		o.persist(o.game)

	case StateEndRound:
		o.game.LaggardMonitor.EndRound(o.game.Model)
		if o.game.Model.HasPlayableTiles() {
			o.state = StateStartRound
		} else {
			o.endGame(game.EndOfGameReason{Reason: game.ReasonNoMorePlayableCoordinates})
		}

	case StateError:
		o.frontEnd.ShowError(o.err)
		o.state = StateGameOver

	case StateEndGame, StateGameOver:
		// EndGame transitions inline from the states that detect the end;
		// GameOver is terminal.
	}
}

func (o *Orchestrator) retrievePersistedSession() {
	data := o.frontEnd.RetrievePersistedSession()
	if data == nil {
		o.state = StateConfigureSeries
		return
	}
	persisted, err := DecodePersistedSession(data)
	if err != nil || persisted.Version != engineVersion || persisted.Series == nil {
		if err != nil {
			log.Printf("discarding unreadable persisted session: %v", err)
		}
		o.state = StateConfigureSeries
		return
	}

	o.series = persisted.Series
	if persisted.Game != nil {
		o.game = persisted.Game
		o.frontEnd.ShowGalaxyMap(NewGalaxyMapView(o.game.Model.GalaxyMap))
		o.frontEnd.ShowConfig(o.series.GameConfig, o.series.HouseRules)
		o.frontEnd.ShowPlayerRanking(NewPlayerRankingView(o.game, o.series))
		if o.frontEnd.AskResumeSession(o.frontEnd.Input(), true) {
			if o.game.PlayerIndex == len(o.series.PlayerDefs) {
				o.state = StateEndRound
			} else {
				o.state = StateStartTurn
			}
		} else {
			o.state = StateConfigureSeries
		}
	} else {
		o.frontEnd.ShowConfig(o.series.GameConfig, o.series.HouseRules)
		o.frontEnd.ShowLeaderboard(o.series.Leaderboard.Entries())
		if o.frontEnd.AskResumeSession(o.frontEnd.Input(), false) {
			o.state = StateStartGame
		} else {
			o.state = StateConfigureSeries
		}
	}

	if o.state != StateConfigureSeries {
		o.agents = o.buildAgents(o.series.PlayerDefs)
	}
}

func (o *Orchestrator) configureSeries() {
	gameConfig, houseRules, playerDefs := o.frontEnd.ConfigureSeries(MinPlayerCount, MaxPlayerCount)

	if len(playerDefs) < MinPlayerCount || len(playerDefs) > MaxPlayerCount {
		o.fail(InvalidPlayerCountError{Min: MinPlayerCount, Max: MaxPlayerCount, Submitted: len(playerDefs)})
		return
	}
	names := make(map[string]bool, len(playerDefs))
	submitted := make([]string, len(playerDefs))
	for i, def := range playerDefs {
		names[def.Name] = true
		submitted[i] = def.Name
		if def.Name == "" {
			o.fail(EmptyPlayerNamesError{SubmittedNames: submitted[:i+1]})
			return
		}
	}
	if len(names) != len(playerDefs) {
		o.fail(NonuniquePlayerNamesError{SubmittedNames: submitted})
		return
	}

	o.series = &Series{
		GameConfig:  gameConfig,
		HouseRules:  houseRules,
		PlayerDefs:  playerDefs,
		Leaderboard: NewLeaderboard(playerDefs),
	}
	o.agents = o.buildAgents(playerDefs)
	o.state = StateStartGame
}

func (o *Orchestrator) buildAgents(playerDefs []PlayerDef) playerAgents {
	agents := make(playerAgents, len(playerDefs))
	for i, def := range playerDefs {
		var input Input
		if def.IsComputer {
			input = NewComputerInput()
		} else {
			input = o.frontEnd.Input()
		}
		agents[i] = NewPlayerAgent(def.Name, input)
	}
	return agents
}

func (o *Orchestrator) startGame() {
	fixedCoordinateStack, fixedPlayerOrder := o.frontEnd.ConfigureGame(o.series.GameConfig, o.series.HouseRules, o.series.PlayerDefs)

	isComputer := make([]bool, len(o.series.PlayerDefs))
	for i, def := range o.series.PlayerDefs {
		isComputer[i] = def.IsComputer
	}
	model := game.NewGameModel(o.series.GameConfig, o.series.HouseRules, isComputer, fixedCoordinateStack)

	playerOrder := fixedPlayerOrder
	if playerOrder == nil {
		playerOrder = make([]int, len(o.series.PlayerDefs))
		for i := range playerOrder {
			playerOrder[i] = i
		}
		if o.series.HouseRules.IsPlayerOrderRandom {
			rand.Shuffle(len(playerOrder), func(i, j int) {
				playerOrder[i], playerOrder[j] = playerOrder[j], playerOrder[i]
			})
		}
	}

	o.game = &Game{
		Model:                 model,
		LaggardMonitor:        game.NewLaggardMonitor(o.series.GameConfig, isComputer),
		CompaniesDeclaredSafe: make([]bool, o.series.GameConfig.ShippingCompanyCount),
		PlayerIndex:           0,
		PlayerOrder:           playerOrder,
	}
	o.agents.resetAnnouncements()
	o.state = StateStartRound
}

func (o *Orchestrator) checkEarlyGameEnd() {
	currentPlayer := o.game.CurrentPlayerIndex()
	switch {
	case o.game.Model.CanPlayerCallGame():
		if o.frontEnd.AskCallGame(o.agents[currentPlayer].Input, o.series.GameConfig.EndGameTokenCount) {
			o.endGame(game.EndOfGameReason{
				Reason:     game.ReasonPlayerCalledGame,
				PlayerName: o.series.PlayerDefs[currentPlayer].Name,
			})
			return
		}
	case o.game.LaggardMonitor.IsPlayerLagging(currentPlayer):
		if o.frontEnd.AskConcedeGame(o.agents[currentPlayer].Input, o.series.PlayerDefs[currentPlayer]) {
			o.endGame(game.EndOfGameReason{
				Reason:     game.ReasonPlayerConcededGame,
				PlayerName: o.series.PlayerDefs[currentPlayer].Name,
			})
			return
		}
	}
	o.state = StateSelectCoordinate
}

func (o *Orchestrator) selectCoordinate() {
	currentPlayer := o.game.CurrentPlayerIndex()
	coordinateOptions := o.game.Model.PlayerCoordinateOptions()
	if len(coordinateOptions) == 0 {
		o.state = StateCalculateDividends
		return
	}

	input := o.agents[currentPlayer].Input
	if computer, ok := input.(*ComputerInput); ok {
		computer.DecideCoordinateSelection(currentPlayer, coordinateOptions, o.game.Model)
	}

	o.frontEnd.ShowGalaxyMap(NewGalaxyMapView(o.game.Model.GalaxyMap.MarkedUp(coordinateOptions)))
	o.frontEnd.ShowAnnouncements(o.agents[currentPlayer].PublishAnnouncements())
	o.frontEnd.ShowPlayerRanking(NewPlayerRankingView(o.game, o.series))

	coordinate := o.frontEnd.AskCoordinate(input, o.series.PlayerDefs[currentPlayer], coordinateOptions)
	for _, result := range o.game.Model.Play(coordinate) {
		o.announcePlayResult(result, currentPlayer)
	}

	for _, company := range o.game.Model.ActiveCompanies() {
		if company.IsSafe && !o.game.CompaniesDeclaredSafe[company.Index] {
			o.agents.announce(Announcement{Kind: AnnouncementSafeCompany, Company: NewCompanyView(company)})
			o.game.CompaniesDeclaredSafe[company.Index] = true
		}
	}

	o.frontEnd.ShowGalaxyMap(NewGalaxyMapView(o.game.Model.GalaxyMap))
	o.frontEnd.ShowAnnouncements(o.agents[currentPlayer].PublishAnnouncements())
	o.frontEnd.ShowPlayerRanking(NewPlayerRankingView(o.game, o.series))
	o.state = StateCalculateDividends
}

func (o *Orchestrator) announcePlayResult(result game.PlayResult, currentPlayer int) {
	switch result.Outcome {
	case game.OutcomeNewCompany:
		o.agents.announce(Announcement{
			Kind:       AnnouncementNewCompany,
			Company:    NewCompanyView(result.Company),
			PlayerName: o.series.PlayerDefs[currentPlayer].Name,
		})
	case game.OutcomeCompaniesMerged:
		for _, report := range result.MergeReports {
			for i := range o.agents {
				o.agents[i].Announce(Announcement{
					Kind:           AnnouncementMerger,
					PlayerName:     o.series.PlayerDefs[report.MergePlayerIndex].Name,
					Company:        NewCompanyView(report.SurvivingCompany),
					DefunctCompany: NewCompanyView(report.DefunctCompany),
					Bonus:          report.BonusesPaid[i],
				})
			}
		}
	case game.OutcomeCompaniesDestroyed:
		for _, companyID := range result.DestroyedCompanyIDs {
			o.agents.announce(Announcement{
				Kind:    AnnouncementDestroyedCompany,
				Company: NewCompanyView(game.NewCompany(companyID)),
			})
		}
	}
}

func (o *Orchestrator) purchaseShares() {
	currentPlayer := o.game.CurrentPlayerIndex()
	input := o.agents[currentPlayer].Input
	if computer, ok := input.(*ComputerInput); ok {
		computer.DecideSharePurchase(currentPlayer, o.game.Model)
	}

	active := o.game.Model.ActiveCompanies()
	views := make([]CompanyView, len(active))
	for i, c := range active {
		views[i] = NewCompanyView(c)
	}
	o.frontEnd.ShowAnnouncements(o.agents[currentPlayer].PublishAnnouncements())
	o.frontEnd.ShowActiveCompanies(views)

	purchaseOrder := o.frontEnd.AskPurchaseOrder(input, views, o.game.Model.Players[currentPlayer].Cash)
	if err := o.game.Model.PurchaseShares(purchaseOrder); err != nil {
		log.Printf("rejecting purchase order %v: %v", purchaseOrder, err)
	}
	o.state = StateEndTurn
}

func (o *Orchestrator) endGame(reason game.EndOfGameReason) {
	ranking := NewPlayerRankingView(o.game, o.series)
	o.frontEnd.ShowEndOfGame(reason, ranking)

	o.series.Leaderboard.GameEnded(ranking.RankedPlayers[0].Name)
	o.frontEnd.ShowLeaderboard(o.series.Leaderboard.Entries())
	o.persist(nil)

	if o.frontEnd.AskPlayAnotherGame(o.frontEnd.Input()) {
		o.state = StateStartGame
	} else {
		o.state = StateGameOver
	}
}

func (o *Orchestrator) persist(g *Game) {
	session := &PersistedSession{Version: engineVersion, Series: o.series, Game: g}
	data, err := session.Encode()
	if err != nil {
		log.Printf("persisting session: %v", err)
		return
	}
	o.frontEnd.PersistSession(data)
}

func (o *Orchestrator) fail(err error) {
	o.err = err
	o.state = StateError
}
