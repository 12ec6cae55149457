package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/starlanes/internal/game"
	"github.com/example/starlanes/internal/session"
)

const maxPlayerNameLength = 10

// orderDelay paces the player-order reveal. Tests shorten it.
var orderDelay = 3 * time.Second

// ConfigureSeries walks the setup wizard: preset or custom configuration,
// optional house rules and the player roster.
func (f *FrontEnd) ConfigureSeries(minPlayerCount, maxPlayerCount int) (game.GameConfig, game.HouseRules, []session.PlayerDef) {
	gameConfig := game.BasicConfig()
	houseRules := game.DefaultHouseRules()

	f.output.Println("GAME CONFIGURATION:")
	f.output.Println("  1) CLASSIC GAME  - 5 COMPANIES, 12 X 9 MAP")
	f.output.Println("  2) DELUXE GAME - 10 COMPANIES, 16 X 9 MAP")
	f.output.Print("  3) CUSTOM GAME - CONFIGURE COMPANY, MAP, HOUSE RULES AND MORE.\n\n")
	f.output.Print("SELECT GAME CONFIGURATION (1-3)")

	switch f.input.ReadInt(f.output, 1, 3) {
	case 1:
		// Defaults already set.
	case 2:
		gameConfig = game.DeluxeConfig()
	case 3:
		f.output.Newline()
		f.output.Print("CUSTOM GAME CONFIGURATION\n\n")
		for _, field := range game.ConfigFields() {
			f.output.Print(fmt.Sprintf("    ENTER %s (BASIC: %d; DELUXE: %d) (%d-%d)",
				field.Label, field.Basic, field.Deluxe, field.Min, field.Max))
			field.Set(&gameConfig, f.input.ReadInt(f.output, field.Min, field.Max))
			f.output.Newline()
		}
		f.output.Newline()

		f.output.Print("CONFIGURE HOUSE RULES (Y/N)")
		if f.input.ReadYesNo(f.output) == "Y" {
			f.output.Newline()
			f.output.Print("CUSTOM HOUSE RULES CONFIGURATION\n\n")
			for _, field := range game.RuleFields() {
				f.output.Print(fmt.Sprintf("    ENTER %s (DEFAULT: %d) (%d-%d)",
					field.Label, field.Default, field.Min, field.Max))
				field.Set(&houseRules, f.input.ReadInt(f.output, field.Min, field.Max))
				f.output.Newline()
			}
			f.output.Print("    ENTER RANDOMIZE PLAYER ORDER (Y/N)")
			houseRules.IsPlayerOrderRandom = f.input.ReadYesNo(f.output) == "Y"
			f.output.Newline()
			f.output.Newline()
		}
	}
	f.output.Newline()

	var playerDefs []session.PlayerDef
	playerDefs = f.readPlayerNames(playerDefs, true, 0, maxPlayerCount-1)
	humanMin := minPlayerCount
	if len(playerDefs) > 0 {
		humanMin = minPlayerCount - 1
	}
	playerDefs = f.readPlayerNames(playerDefs, false, humanMin, maxPlayerCount-len(playerDefs))
	f.output.Newline()
	return gameConfig, houseRules, playerDefs
}

// readPlayerNames collects names for one player type, rejecting names that
// are too long, already taken or empty.
func (f *FrontEnd) readPlayerNames(playerDefs []session.PlayerDef, isComputer bool, min, max int) []session.PlayerDef {
	playerType := "HUMAN"
	if isComputer {
		playerType = "COMPUTER"
	}

	playersToInput := min
	if min != max {
		f.output.Newline()
		f.output.Print(fmt.Sprintf("HOW MANY %s PLAYERS (%d-%d)", playerType, min, max))
		playersToInput = f.input.ReadInt(f.output, min, max)
		f.output.Newline()
	}

	for playersToInput > 0 {
		f.output.Print(fmt.Sprintf("ENTER PLAYER #%d (%s) NAME: ", len(playerDefs)+1, playerType))
		name, ok := f.lines.readLine()
		if !ok {
			break
		}
		name = strings.TrimSpace(name)
		switch {
		case len(name) > maxPlayerNameLength:
			f.output.Newline()
			f.output.Print(fmt.Sprintf("ERROR: MAXIMUM PLAYER NAME LENGTH IS %d CHARACTERS.\n\n", maxPlayerNameLength))
		case nameTaken(playerDefs, name):
			f.output.Newline()
			f.output.Print("ERROR: PLAYER NAME ALREADY USED.\n\n")
		case name != "":
			playerDefs = append(playerDefs, session.PlayerDef{Name: name, IsComputer: isComputer})
			playersToInput--
		}
	}
	return playerDefs
}

func nameTaken(playerDefs []session.PlayerDef, name string) bool {
	for _, def := range playerDefs {
		if def.Name == name {
			return true
		}
	}
	return false
}

// ConfigureGame reveals the randomized player order with a little drama. The
// coordinate stack is always left to the game to shuffle.
func (f *FrontEnd) ConfigureGame(gameConfig game.GameConfig, houseRules game.HouseRules, playerDefs []session.PlayerDef) ([]game.Coordinate, []int) {
	if !houseRules.IsPlayerOrderRandom {
		return nil, nil
	}
	playerOrder := shuffledOrder(len(playerDefs))

	f.output.Println("NOW I WILL DECIDE WHO GOES FIRST...")
	time.Sleep(orderDelay)
	f.output.Println("HMMMM,... LET ME SEE NOW.")
	time.Sleep(orderDelay)
	f.output.Println("OK. I'VE DECIDED....")
	f.output.Newline()
	positions := []string{"FIRST", "SECOND", "THIRD", "FOURTH"}
	for i := range playerDefs {
		f.output.Println(playerDefs[playerOrder[i]].Name + " GOES " + positions[i])
	}
	f.output.Newline()
	f.output.Print("PRESS RETURN TO CONTINUE")
	f.lines.readLine()
	return nil, playerOrder
}
