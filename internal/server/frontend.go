package server

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/example/starlanes/internal/game"
	"github.com/example/starlanes/internal/session"
	"github.com/example/starlanes/internal/store"
)

// wsFrontEnd adapts one websocket connection to session.FrontEnd. Display
// calls become outbound frames; input calls send a prompt frame and block
// until the read loop delivers the client's answer.
type wsFrontEnd struct {
	conn     *websocket.Conn
	writeMu  sync.Mutex
	answers  chan Message
	closedCh chan struct{}
	closeOne sync.Once

	sessions   store.SessionStore
	sessionKey string

	humanInput session.Input
	output     session.Output
}

func newWSFrontEnd(conn *websocket.Conn, sessions store.SessionStore, sessionKey string) *wsFrontEnd {
	f := &wsFrontEnd{
		conn:       conn,
		answers:    make(chan Message),
		closedCh:   make(chan struct{}),
		sessions:   sessions,
		sessionKey: sessionKey,
	}
	f.humanInput = &wsInput{fe: f}
	f.output = &wsOutput{fe: f}
	return f
}

// readLoop pumps client frames to the answers channel until the connection
// drops.
func (f *wsFrontEnd) readLoop() {
	defer f.markClosed()
	for {
		var msg Message
		if err := f.conn.ReadJSON(&msg); err != nil {
			log.Println("read:", err)
			return
		}
		select {
		case f.answers <- msg:
		case <-f.closedCh:
			return
		}
	}
}

func (f *wsFrontEnd) markClosed() {
	f.closeOne.Do(func() { close(f.closedCh) })
}

func (f *wsFrontEnd) isClosed() bool {
	select {
	case <-f.closedCh:
		return true
	default:
		return false
	}
}

func (f *wsFrontEnd) send(frameType string, payload interface{}) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()
	if err := f.conn.WriteJSON(WSOut{Type: frameType, Payload: payload}); err != nil {
		f.markClosed()
	}
}

// await blocks for the next frame of the wanted type, discarding anything
// else the client sends out of turn.
func (f *wsFrontEnd) await(frameType string) (json.RawMessage, bool) {
	for {
		select {
		case msg := <-f.answers:
			if msg.Type == frameType {
				return msg.Payload, true
			}
		case <-f.closedCh:
			return nil, false
		}
	}
}

// wsOutput forwards echo text to the client so computer answers show up in
// the transcript.
type wsOutput struct {
	fe *wsFrontEnd
}

func (o *wsOutput) Newline()         { o.fe.send("console", "") }
func (o *wsOutput) Println(s string) { o.fe.send("console", s) }
func (o *wsOutput) Print(s string)   { o.fe.send("console", s) }

// wsInput is the connected guest's session.Input: every read waits for an
// answer frame, re-prompting on invalid values.
type wsInput struct {
	fe *wsFrontEnd
}

func (i *wsInput) ReadYesNo(output session.Output) string {
	for {
		payload, ok := i.fe.await("answer")
		if !ok {
			return "N"
		}
		switch strings.ToUpper(strings.TrimSpace(decodeAnswer(payload))) {
		case "Y":
			return "Y"
		case "N":
			return "N"
		}
		i.fe.send("invalidInput", map[string]string{"expected": "Y or N"})
	}
}

func (i *wsInput) ReadInt(output session.Output, min, max int) int {
	for {
		payload, ok := i.fe.await("answer")
		if !ok {
			return min
		}
		value, err := strconv.Atoi(strings.TrimSpace(decodeAnswer(payload)))
		if err == nil && value >= min && value <= max {
			return value
		}
		i.fe.send("invalidInput", map[string]int{"min": min, "max": max})
	}
}

func decodeAnswer(payload json.RawMessage) string {
	var data struct {
		Value string `json:"value"`
	}
	json.Unmarshal(payload, &data)
	return data.Value
}

func (f *wsFrontEnd) Input() session.Input {
	return f.humanInput
}

// ConfigureSeries sends the configuration request, including the field
// tables so the client can render its own form, and waits for the filled-in
// series.
func (f *wsFrontEnd) ConfigureSeries(minPlayerCount, maxPlayerCount int) (game.GameConfig, game.HouseRules, []session.PlayerDef) {
	type fieldInfo struct {
		Label string `json:"label"`
		Min   int    `json:"min"`
		Max   int    `json:"max"`
	}
	configFields := []fieldInfo{}
	for _, field := range game.ConfigFields() {
		configFields = append(configFields, fieldInfo{Label: field.Label, Min: field.Min, Max: field.Max})
	}
	ruleFields := []fieldInfo{}
	for _, field := range game.RuleFields() {
		ruleFields = append(ruleFields, fieldInfo{Label: field.Label, Min: field.Min, Max: field.Max})
	}
	f.send("configureSeries", map[string]interface{}{
		"minPlayerCount": minPlayerCount,
		"maxPlayerCount": maxPlayerCount,
		"configFields":   configFields,
		"ruleFields":     ruleFields,
	})

	gameConfig := game.BasicConfig()
	houseRules := game.DefaultHouseRules()
	var playerDefs []session.PlayerDef

	payload, ok := f.await("seriesConfig")
	if !ok {
		return gameConfig, houseRules, nil
	}
	var data struct {
		GameConfig *game.GameConfig    `json:"gameConfig"`
		HouseRules *game.HouseRules    `json:"houseRules"`
		PlayerDefs []session.PlayerDef `json:"playerDefs"`
	}
	if err := json.Unmarshal(payload, &data); err != nil {
		log.Println("bad series config:", err)
		return gameConfig, houseRules, nil
	}
	if data.GameConfig != nil {
		gameConfig = *data.GameConfig
		clampConfig(&gameConfig)
	}
	if data.HouseRules != nil {
		houseRules = *data.HouseRules
		clampRules(&houseRules)
	}
	playerDefs = data.PlayerDefs
	return gameConfig, houseRules, playerDefs
}

// clampConfig forces every custom value into its legal range, the same
// ranges the console wizard enforces at the prompt.
func clampConfig(cfg *game.GameConfig) {
	for _, field := range game.ConfigFields() {
		value := field.Get(cfg)
		if value < field.Min {
			field.Set(cfg, field.Min)
		} else if value > field.Max {
			field.Set(cfg, field.Max)
		}
	}
}

func clampRules(rules *game.HouseRules) {
	for _, field := range game.RuleFields() {
		value := field.Get(rules)
		if value < field.Min {
			field.Set(rules, field.Min)
		} else if value > field.Max {
			field.Set(rules, field.Max)
		}
	}
}

// ConfigureGame leaves the deal and the player order to the game.
func (f *wsFrontEnd) ConfigureGame(gameConfig game.GameConfig, houseRules game.HouseRules, playerDefs []session.PlayerDef) ([]game.Coordinate, []int) {
	return nil, nil
}

func (f *wsFrontEnd) RetrievePersistedSession() []byte {
	data, err := f.sessions.Load(context.Background(), f.sessionKey)
	if err != nil {
		if err != store.ErrNoSession {
			log.Println("load session:", err)
		}
		return nil
	}
	return data
}

func (f *wsFrontEnd) PersistSession(data []byte) {
	if err := f.sessions.Save(context.Background(), f.sessionKey, data); err != nil {
		log.Println("save session:", err)
	}
}

func (f *wsFrontEnd) AskResumeSession(input session.Input, isResumingGame bool) bool {
	f.send("resumePrompt", map[string]bool{"isResumingGame": isResumingGame})
	return input.ReadYesNo(f.output) == "Y"
}

func (f *wsFrontEnd) AskCallGame(input session.Input, endGameTokenCount int) bool {
	f.send("callGamePrompt", map[string]int{"endGameTokenCount": endGameTokenCount})
	return input.ReadYesNo(f.output) == "Y"
}

func (f *wsFrontEnd) AskConcedeGame(input session.Input, playerDef session.PlayerDef) bool {
	f.send("concedePrompt", map[string]string{"player": playerDef.Name})
	return input.ReadYesNo(f.output) == "Y"
}

func (f *wsFrontEnd) AskPlayAnotherGame(input session.Input) bool {
	f.send("playAnotherPrompt", nil)
	return input.ReadYesNo(f.output) == "Y"
}

func (f *wsFrontEnd) AskCoordinate(input session.Input, playerDef session.PlayerDef, coordinateOptions []game.Coordinate) game.Coordinate {
	options := make([]string, len(coordinateOptions))
	for i, c := range coordinateOptions {
		options[i] = c.String()
	}
	f.send("coordinatePrompt", map[string]interface{}{
		"player":  playerDef.Name,
		"options": options,
	})
	selection := input.ReadInt(f.output, 1, len(coordinateOptions))
	return coordinateOptions[selection-1]
}

func (f *wsFrontEnd) AskPurchaseOrder(input session.Input, activeCompanies []session.CompanyView, availableCash int) []int {
	cash := availableCash
	result := make([]int, len(activeCompanies))
	for i, company := range activeCompanies {
		if cash < company.ShareValue {
			continue
		}
		maxAmount := cash / company.ShareValue
		f.send("purchasePrompt", map[string]interface{}{
			"company":    company.Name,
			"shareValue": company.ShareValue,
			"maxAmount":  maxAmount,
			"cash":       cash,
		})
		result[i] = input.ReadInt(f.output, 0, maxAmount)
		cash -= result[i] * company.ShareValue
	}
	return result
}

func (f *wsFrontEnd) ShowTitle(title session.TitleCard) {
	f.send("title", map[string]string{"version": title.Version})
}

func (f *wsFrontEnd) ShowTurnStart(playerDef session.PlayerDef) {
	f.send("turnStart", map[string]interface{}{"player": playerDef.Name, "isComputer": playerDef.IsComputer})
}

func (f *wsFrontEnd) ShowGalaxyMap(galaxyMap session.GalaxyMapView) {
	f.send("galaxyMap", galaxyMap)
}

func (f *wsFrontEnd) ShowPlayerRanking(ranking session.PlayerRankingView) {
	f.send("playerRanking", ranking)
}

func (f *wsFrontEnd) ShowActiveCompanies(companies []session.CompanyView) {
	f.send("activeCompanies", companies)
}

func (f *wsFrontEnd) ShowAnnouncements(announcements []session.Announcement) {
	if len(announcements) == 0 {
		return
	}
	f.send("announcements", announcements)
}

func (f *wsFrontEnd) ShowConfig(gameConfig game.GameConfig, houseRules game.HouseRules) {
	f.send("config", map[string]interface{}{"gameConfig": gameConfig, "houseRules": houseRules})
}

func (f *wsFrontEnd) ShowEndOfGame(reason game.EndOfGameReason, ranking session.PlayerRankingView) {
	f.send("endOfGame", map[string]interface{}{"reason": reason, "ranking": ranking})
}

func (f *wsFrontEnd) ShowLeaderboard(entries []session.LeaderboardEntry) {
	f.send("leaderboard", entries)
}

func (f *wsFrontEnd) ShowError(err error) {
	f.send("fatalError", map[string]string{"message": err.Error()})
}
