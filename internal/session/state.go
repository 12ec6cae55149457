package session

// State identifies where the orchestrator is in its game loop. The host
// drives the loop by calling Step until the state reaches StateGameOver.
type State int

const (
	// StateDisplayTitle shows the title card and instructions.
	StateDisplayTitle State = iota
	// StateRetrievePersistedSession loads a previously saved series, if any,
	// and offers to resume it.
	StateRetrievePersistedSession
	// StateConfigureSeries gathers the game configuration, house rules and
	// player roster for a new series.
	StateConfigureSeries
	// StateStartGame builds a fresh game for the series.
	StateStartGame
	// StateStartRound resets the turn cursor for a new round.
	StateStartRound
	// StateStartTurn selects the next player.
	StateStartTurn
	// StateCheckEarlyGameEnd offers the call-game or concede-game option when
	// one applies.
	StateCheckEarlyGameEnd
	// StateSelectCoordinate presents the map and resolves the played
	// coordinate.
	StateSelectCoordinate
	// StateCalculateDividends pays and announces the turn's dividend.
	StateCalculateDividends
	// StatePurchaseShares offers shares in the active companies.
	StatePurchaseShares
	// StateEndTurn advances the turn cursor and persists the session.
	StateEndTurn
	// StateEndRound runs end-of-round bookkeeping and checks for exhaustion.
	StateEndRound
	// StateEndGame announces the result, updates the leaderboard and offers
	// another game.
	StateEndGame
	// StateError presents a fatal configuration error.
	StateError
	// StateGameOver is terminal: a game finished and the player declined to
	// continue the series.
	StateGameOver
)

var stateNames = map[State]string{
	StateDisplayTitle:             "displayTitle",
	StateRetrievePersistedSession: "retrievePersistedSession",
	StateConfigureSeries:          "configureSeries",
	StateStartGame:                "startGame",
	StateStartRound:               "startRound",
	StateStartTurn:                "startTurn",
	StateCheckEarlyGameEnd:        "checkEarlyGameEnd",
	StateSelectCoordinate:         "selectCoordinate",
	StateCalculateDividends:       "calculateDividends",
	StatePurchaseShares:           "purchaseShares",
	StateEndTurn:                  "endTurn",
	StateEndRound:                 "endRound",
	StateEndGame:                  "endGame",
	StateError:                    "error",
	StateGameOver:                 "gameOver",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
