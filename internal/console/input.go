package console

import (
	"fmt"

	"github.com/example/starlanes/internal/game"
	"github.com/example/starlanes/internal/session"
)

// AskCallGame offers the leading player the end of the game.
func (f *FrontEnd) AskCallGame(input session.Input, endGameTokenCount int) bool {
	f.output.Println("=================================================================")
	f.output.Println(fmt.Sprintf("ALL COMPANIES ARE SAFE OR ONE COMPANY HAS AT LEAST %d TOKENS,", endGameTokenCount))
	f.output.Println("MEANING THE GAME CAN END, IF YOU CHOOSE.")
	f.output.Println("=================================================================")
	f.output.Print("END GAME (Y/N) ")
	result := input.ReadYesNo(f.output) == "Y"
	f.output.Newline()
	return result
}

// AskConcedeGame offers a lagging player resignation.
func (f *FrontEnd) AskConcedeGame(input session.Input, playerDef session.PlayerDef) bool {
	f.output.Println("====================================")
	f.output.Println(playerDef.Name + ", YOU'RE LAGGING. YOU CAN NOW CHOOSE")
	f.output.Println("TO RESIGN AND CONCEDE DEFEAT.")
	f.output.Println("====================================")
	f.output.Print("END GAME (Y/N) ")
	result := input.ReadYesNo(f.output) == "Y"
	f.output.Newline()
	return result
}

// AskPlayAnotherGame asks whether to continue the series.
func (f *FrontEnd) AskPlayAnotherGame(input session.Input) bool {
	f.output.Print("PLAY ANOTHER GAME IN THIS SERIES (Y/N) ")
	result := input.ReadYesNo(f.output) == "Y"
	f.output.Newline()
	return result
}

// AskResumeSession asks whether to resume a saved game or series.
func (f *FrontEnd) AskResumeSession(input session.Input, isResumingGame bool) bool {
	what := "SERIES"
	if isResumingGame {
		what = "GAME"
	}
	f.output.Print("RESUME " + what + " (Y/N) ")
	result := input.ReadYesNo(f.output) == "Y"
	f.output.Newline()
	return result
}

// AskCoordinate presents the numbered coordinate options and returns the
// chosen one.
func (f *FrontEnd) AskCoordinate(input session.Input, playerDef session.PlayerDef, coordinateOptions []game.Coordinate) game.Coordinate {
	f.output.Println(playerDef.Name + ", YOUR CURRENT MOVES ARE:")
	f.output.Print("\t")
	for i, coordinate := range coordinateOptions {
		f.output.Print(fmt.Sprintf("%d: %s    ", i+1, coordinate))
	}
	f.output.Print("\n\n")
	f.output.Print("WHAT IS YOUR SELECTION ")
	selection := input.ReadInt(f.output, 1, len(coordinateOptions))
	f.output.Newline()
	return coordinateOptions[selection-1]
}

// AskPurchaseOrder prompts for a share count per affordable company. The
// returned order correlates with activeCompanies; unaffordable companies
// stay zero.
func (f *FrontEnd) AskPurchaseOrder(input session.Input, activeCompanies []session.CompanyView, availableCash int) []int {
	cash := availableCash
	result := make([]int, len(activeCompanies))
	for i, company := range activeCompanies {
		if cash < company.ShareValue {
			continue
		}
		maxAmount := cash / company.ShareValue
		f.output.Println("YOUR CURRENT CASH = " + money(cash))
		f.output.Println(fmt.Sprintf("BUY HOW MANY SHARES OF %s AT %s (UP TO %d)", company.Name, money(company.ShareValue), maxAmount))
		result[i] = input.ReadInt(f.output, 0, maxAmount)
		f.output.Newline()
		cash -= result[i] * company.ShareValue
	}
	return result
}
