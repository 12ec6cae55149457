package console

import (
	"fmt"
	"strings"

	"github.com/example/starlanes/internal/game"
	"github.com/example/starlanes/internal/session"
)

// ShowTitle prints the title card and optionally pages through the
// instructions.
func (f *FrontEnd) ShowTitle(title session.TitleCard) {
	const spacer = "     "
	f.output.Println(spacer + "* S T A R  L A N E S *")
	f.output.Newline()
	f.output.Println(spacer + "      THE GAME")
	f.output.Println(spacer + "         OF")
	f.output.Println(spacer + "INTERSTELLAR TRADING")
	f.output.Newline()
	f.output.Println(spacer + "    VERSION " + title.Version)
	f.output.Newline()
	f.output.Newline()
	f.output.Print("INSTRUCTIONS (Y/N)")

	if f.input.ReadYesNo(f.output) == "Y" {
		for _, page := range instructionPages {
			f.output.Print("\n\n\n")
			f.output.Print(strings.ToUpper(page) + "\n\n\n")
			f.output.Print("PRESS RETURN TO CONTINUE")
			f.lines.readLine()
		}
		f.output.Print("\n\n")
	}
	f.output.Newline()
}

// ShowTurnStart prints the turn banner.
func (f *FrontEnd) ShowTurnStart(playerDef session.PlayerDef) {
	f.output.Print("<-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=->\n\n")
	f.output.Print("   " + playerDef.Name + " STARTS TURN . . .\n\n")
}

// ShowGalaxyMap prints the map with a centered title bar, column letters and
// row numbers.
func (f *FrontEnd) ShowGalaxyMap(galaxyMap session.GalaxyMapView) {
	const spacer = "    "

	title := "MAP OF THE GALAXY"
	indent := len(spacer)*2 - 1
	f.output.Println(strings.Repeat(" ", indent+(galaxyMap.ColumnCount*5-len(title))/2) + title)
	f.output.Println(strings.Repeat(" ", indent) + strings.Repeat("*", galaxyMap.ColumnCount*5))

	header := spacer + " "
	for column := 0; column < galaxyMap.ColumnCount; column++ {
		header += spacer + string(rune('A'+column))
	}
	f.output.Println(header)

	for row := 0; row < galaxyMap.RowCount; row++ {
		line := spacer + fmt.Sprintf("%d", row+1)
		for column := 0; column < galaxyMap.ColumnCount; column++ {
			line += spacer + galaxyMap.Map[column][row]
		}
		f.output.Print(line + "\n\n")
	}
	f.output.Newline()
}

// ShowPlayerRanking prints the net worth table with a share column per
// active company.
func (f *FrontEnd) ShowPlayerRanking(ranking session.PlayerRankingView) {
	haveSafe := false

	f.output.Print("RANK   PLAYER    NET WORTH    ")
	for _, company := range ranking.ActiveCompanies {
		if company.IsSafe {
			f.output.Print(pad(company.Monogram+"*", 8))
			haveSafe = true
		} else {
			f.output.Print(pad(company.Monogram, 8))
		}
	}
	f.output.Newline()

	f.output.Print("----   ------    ---------   ")
	for range ranking.ActiveCompanies {
		f.output.Print("------  ")
	}
	f.output.Newline()

	for rank, player := range ranking.RankedPlayers {
		f.output.Print(" #" + pad(fmt.Sprintf("%d", rank+1), 5) + pad(player.Name, 10) + pad(money(player.NetWorth), 13))
		for _, share := range player.ActiveCompanyShares {
			f.output.Print(pad(fmt.Sprintf("%d", share), 8))
		}
		f.output.Newline()
	}
	f.output.Newline()

	if haveSafe {
		f.output.Print("* = safe\n\n")
	}
}

// ShowActiveCompanies prints the price list.
func (f *FrontEnd) ShowActiveCompanies(companies []session.CompanyView) {
	if len(companies) == 0 {
		return
	}
	f.output.Println("COMPANY             PRICE/SHARE  SIZE")
	f.output.Println("------------------- -----------  ----")
	for _, company := range companies {
		f.output.Println(pad(company.Name, 20) + pad(money(company.ShareValue), 14) + pad(fmt.Sprintf("%d", company.Size), 8))
	}
	f.output.Newline()
}

// ShowAnnouncements prints queued announcements, flagged as special when any
// is more than a dividend report.
func (f *FrontEnd) ShowAnnouncements(announcements []session.Announcement) {
	specialCount := 0
	for _, a := range announcements {
		if a.IsSpecial() {
			specialCount++
		}
	}
	if specialCount == 1 {
		f.output.Print("* * * SPECIAL ANNOUNCEMENT * * *\n\n")
	} else if specialCount > 1 {
		f.output.Print("* * * SPECIAL ANNOUNCEMENTS * * *\n\n")
	}

	for _, a := range announcements {
		switch a.Kind {
		case session.AnnouncementNewCompany:
			f.output.Println("A NEW SHIPPING COMPANY HAS BEEN FORMED BY " + a.PlayerName)
			f.output.Println("IT'S NAME IS " + a.Company.Name)

		case session.AnnouncementMerger:
			f.output.Println(a.DefunctCompany.Name + " HAS BEEN MERGED INTO " + a.Company.Name + " BY " + a.PlayerName)
			f.output.Println("YOU GET A BONUS OF " + money(a.Bonus))

		case session.AnnouncementDividends:
			f.output.Println("PERIODIC DIVIDENDS OF " + money(a.Dividends) + " HAVE BEEN PAID TO YOU.")

		case session.AnnouncementSafeCompany:
			f.output.Println(a.Company.Name + " IS NOW SAFE. IT CANNOT BE TAKEN OVER IN A MERGE.")

		case session.AnnouncementDestroyedCompany:
			f.output.Println(a.Company.Name + " HAS BEEN DESTROYED BY A BLACK HOLE !")
		}
		f.output.Println("")
	}
}

// ShowConfig prints custom configuration and house rules as a reminder
// before a resume prompt. Standard setups print nothing.
func (f *FrontEnd) ShowConfig(gameConfig game.GameConfig, houseRules game.HouseRules) {
	if gameConfig == game.BasicConfig() || gameConfig == game.DeluxeConfig() {
		return
	}
	f.output.Println("GAME CONFIGURATION")
	f.output.Println("------------------")
	f.output.Println(fmt.Sprintf("MAP COLUMN COUNT: %d", gameConfig.MapColumnCount))
	f.output.Println(fmt.Sprintf("MAP ROW COUNT: %d", gameConfig.MapRowCount))
	f.output.Println(fmt.Sprintf("STAR COUNT: %d", gameConfig.StarCount))
	f.output.Println(fmt.Sprintf("BLACK HOLE COUNT: %d", gameConfig.BlackHoleCount))
	f.output.Println(fmt.Sprintf("SHIPPING COMPANIES: %d", gameConfig.ShippingCompanyCount))
	f.output.Println(fmt.Sprintf("SAFE COMPANY SIZE: %d", gameConfig.SafeTokenCount))
	f.output.Println(fmt.Sprintf("MINIMUM COMPANY SIZE TO CALL GAME: %d", gameConfig.EndGameTokenCount))
	f.output.Println("")
	if houseRules == game.DefaultHouseRules() {
		return
	}
	f.output.Println("HOUSE RULES")
	f.output.Println("-----------")
	f.output.Println(fmt.Sprintf("INITIAL CASH (HUMAN): %d", houseRules.HumanInitialCash))
	f.output.Println(fmt.Sprintf("INITIAL CASH (COMPUTER): %d", houseRules.ComputerInitialCash))
	f.output.Println(fmt.Sprintf("COORDINATE OPTIONS: %d", houseRules.PlayerCoordinateOptionCount))
	f.output.Println(fmt.Sprintf("FOUNDER SHARE BONUS: %d", houseRules.FounderShareBonus))
	f.output.Println(fmt.Sprintf("ADJACENT STAR SHARE VALUE: %d", houseRules.ShareValueAdjacentStar))
	f.output.Println(fmt.Sprintf("ADJACENT TOKEN SHARE VALUE: %d", houseRules.ShareValueAdjacentToken))
	f.output.Println(fmt.Sprintf("DIVIDEND PERCENT: %d", houseRules.DividendPercent))
	f.output.Println(fmt.Sprintf("MERGE BONUS SHARE VALUE MULTIPLE: %d", houseRules.MergeBonusShareValueMultiple))
	f.output.Println("")
}

// ShowEndOfGame prints the end banner and the final scoreboard.
func (f *FrontEnd) ShowEndOfGame(reason game.EndOfGameReason, ranking session.PlayerRankingView) {
	var banner string
	switch reason.Reason {
	case game.ReasonPlayerCalledGame:
		banner = "\n***************************************************\n" +
			reason.PlayerName + " HAS ANNOUNCED THE END OF THE GAME" +
			"\n***************************************************\n"
	case game.ReasonPlayerConcededGame:
		banner = "\n***************************************************\n" +
			reason.PlayerName + " HAS CONCEDED DEFEAT" +
			"\n***************************************************\n"
	case game.ReasonNoMorePlayableCoordinates:
		banner = "ALL PLAYABLE COORDINATES HAVE BEEN USED. GAME IS OVER!"
	}
	f.output.Print(banner + "\n\n")
	f.output.Print("* * * FINAL SCOREBOARD * * *\n\n")
	f.ShowPlayerRanking(ranking)
}

// ShowLeaderboard prints the series standings.
func (f *FrontEnd) ShowLeaderboard(entries []session.LeaderboardEntry) {
	f.output.Print("* * * LEADERBOARD * * *\n\n")
	f.output.Println("RANK PLAYER                GAMES WON")
	f.output.Println("---- --------------------  ---------")
	for rank, entry := range entries {
		f.output.Println(pad(fmt.Sprintf("%d", rank+1), 6) + pad(entry.Name, 22) + pad(fmt.Sprintf("%d", entry.GamesWon), 8))
	}
	f.output.Newline()
}

// ShowError prints a fatal error message without terminating.
func (f *FrontEnd) ShowError(err error) {
	f.output.Newline()
	f.output.Println(" *** FATAL ERROR *** ")
	f.output.Println(strings.ToUpper(err.Error()))
}
