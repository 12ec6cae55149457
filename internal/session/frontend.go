package session

import "github.com/example/starlanes/internal/game"

// FrontEnd is everything the orchestrator needs from a user interface. The
// console and the websocket server both implement it. Calls are synchronous;
// a front end that is asynchronous underneath blocks until its user answers.
type FrontEnd interface {
	// Input is the source that answers questions for the human player(s) at
	// this front end.
	Input() Input

	// ConfigureSeries gathers the configuration, rules and roster for a new
	// series. The orchestrator validates the roster afterward.
	ConfigureSeries(minPlayerCount, maxPlayerCount int) (game.GameConfig, game.HouseRules, []PlayerDef)

	// ConfigureGame lets the front end fix the coordinate deal order and the
	// player turn order, for deterministic setups. Both are normally nil, in
	// which case the game randomizes internally.
	ConfigureGame(gameConfig game.GameConfig, houseRules game.HouseRules, playerDefs []PlayerDef) (fixedCoordinateStack []game.Coordinate, fixedPlayerOrder []int)

	// RetrievePersistedSession returns the previously persisted session
	// blob, or nil when none exists. The blob is opaque to the front end.
	RetrievePersistedSession() []byte

	// PersistSession stores the session blob.
	PersistSession(data []byte)

	// AskResumeSession asks whether to resume the persisted series.
	// isResumingGame distinguishes mid-game saves from between-game saves.
	AskResumeSession(input Input, isResumingGame bool) bool

	// AskCallGame asks the leading player whether to end the game now and
	// win. endGameTokenCount is shown in the prompt.
	AskCallGame(input Input, endGameTokenCount int) bool

	// AskConcedeGame asks a hopelessly trailing player whether to concede.
	AskConcedeGame(input Input, playerDef PlayerDef) bool

	// AskPlayAnotherGame asks whether to continue the series.
	AskPlayAnotherGame(input Input) bool

	// AskCoordinate asks the player to pick one of their coordinate options.
	AskCoordinate(input Input, playerDef PlayerDef, coordinateOptions []game.Coordinate) game.Coordinate

	// AskPurchaseOrder collects share purchase counts. The result correlates
	// with activeCompanies; companies the player cannot afford come back as
	// zero.
	AskPurchaseOrder(input Input, activeCompanies []CompanyView, availableCash int) []int

	// ShowTitle presents the title card and instructions.
	ShowTitle(title TitleCard)

	// ShowTurnStart announces whose turn is starting.
	ShowTurnStart(playerDef PlayerDef)

	// ShowGalaxyMap presents the map.
	ShowGalaxyMap(galaxyMap GalaxyMapView)

	// ShowPlayerRanking presents players in descending net worth order.
	ShowPlayerRanking(ranking PlayerRankingView)

	// ShowActiveCompanies lists the active companies with prices and sizes.
	ShowActiveCompanies(companies []CompanyView)

	// ShowAnnouncements presents queued announcements.
	ShowAnnouncements(announcements []Announcement)

	// ShowConfig presents the configuration and house rules, shown before
	// the resume prompt as a reminder of any customizations.
	ShowConfig(gameConfig game.GameConfig, houseRules game.HouseRules)

	// ShowEndOfGame presents why the game ended and the final ranking.
	ShowEndOfGame(reason game.EndOfGameReason, ranking PlayerRankingView)

	// ShowLeaderboard presents the series leaderboard.
	ShowLeaderboard(entries []LeaderboardEntry)

	// ShowError presents a fatal configuration error.
	ShowError(err error)
}
