package console

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/example/starlanes/internal/game"
	"github.com/example/starlanes/internal/session"
	"github.com/example/starlanes/internal/store"
)

func testFrontEnd(t *testing.T, keyboard string) *FrontEnd {
	t.Helper()
	sessions := store.NewFileStore(filepath.Join(t.TempDir(), "session"))
	return New(strings.NewReader(keyboard), io.Discard, sessions, "console")
}

func TestConfigureSeriesClassicPreset(t *testing.T) {
	// Preset 1, one computer, one human.
	fe := testFrontEnd(t, "1\n1\nMEGA\n1\nANN\n")

	gameConfig, houseRules, playerDefs := fe.ConfigureSeries(2, 4)
	if gameConfig != game.BasicConfig() {
		t.Fatalf("gameConfig = %+v", gameConfig)
	}
	if houseRules != game.DefaultHouseRules() {
		t.Fatalf("houseRules = %+v", houseRules)
	}
	want := []session.PlayerDef{
		{Name: "MEGA", IsComputer: true},
		{Name: "ANN", IsComputer: false},
	}
	if len(playerDefs) != len(want) {
		t.Fatalf("playerDefs = %+v", playerDefs)
	}
	for i := range want {
		if playerDefs[i] != want[i] {
			t.Fatalf("playerDefs[%d] = %+v, want %+v", i, playerDefs[i], want[i])
		}
	}
}

func TestConfigureSeriesRejectsBadNames(t *testing.T) {
	// Too long, duplicate, then acceptable names.
	fe := testFrontEnd(t, "1\n1\nABSURDLYLONGNAME\nMEGA\n1\nMEGA\nANN\n")

	_, _, playerDefs := fe.ConfigureSeries(2, 4)
	if len(playerDefs) != 2 {
		t.Fatalf("playerDefs = %+v", playerDefs)
	}
	if playerDefs[0].Name != "MEGA" || playerDefs[1].Name != "ANN" {
		t.Fatalf("playerDefs = %+v", playerDefs)
	}
}

func TestConfigureSeriesDeluxePreset(t *testing.T) {
	// Input ends after the computer roster; the human prompts fall back to
	// their minimums and collect nobody.
	fe := testFrontEnd(t, "2\n2\nMEGA\nBYTE\n")

	gameConfig, _, playerDefs := fe.ConfigureSeries(2, 4)
	if gameConfig != game.DeluxeConfig() {
		t.Fatalf("gameConfig = %+v", gameConfig)
	}
	if len(playerDefs) != 2 || !playerDefs[0].IsComputer || !playerDefs[1].IsComputer {
		t.Fatalf("playerDefs = %+v", playerDefs)
	}
}

func TestConfigureGameRevealsRandomOrder(t *testing.T) {
	saved := orderDelay
	orderDelay = time.Duration(0)
	defer func() { orderDelay = saved }()

	fe := testFrontEnd(t, "\n")
	defs := []session.PlayerDef{{Name: "MEGA"}, {Name: "BYTE"}, {Name: "ANN"}}
	rules := game.DefaultHouseRules()

	stack, order := fe.ConfigureGame(game.BasicConfig(), rules, defs)
	if stack != nil {
		t.Fatalf("coordinate stack should be left to the game")
	}
	if len(order) != len(defs) {
		t.Fatalf("order = %v", order)
	}
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order %v is not a permutation", order)
		}
	}
}

func TestConfigureGameFixedOrder(t *testing.T) {
	fe := testFrontEnd(t, "")
	rules := game.DefaultHouseRules()
	rules.IsPlayerOrderRandom = false

	stack, order := fe.ConfigureGame(game.BasicConfig(), rules, []session.PlayerDef{{Name: "A"}, {Name: "B"}})
	if stack != nil || order != nil {
		t.Fatalf("fixed order should defer to the orchestrator, got %v, %v", stack, order)
	}
}
