package game

// GameConfig holds the structural game parameters. Invariant for the life of
// a series.
type GameConfig struct {
	MapColumnCount       int `json:"mapColumnCount"`
	MapRowCount          int `json:"mapRowCount"`
	StarCount            int `json:"starCount"`
	BlackHoleCount       int `json:"blackHoleCount"`
	ShippingCompanyCount int `json:"shippingCompanyCount"`
	SafeTokenCount       int `json:"safeTokenCount"`
	EndGameTokenCount    int `json:"endGameTokenCount"`
}

// BasicConfig is the classic 5-company game.
func BasicConfig() GameConfig {
	return GameConfig{
		MapColumnCount:       12,
		MapRowCount:          9,
		StarCount:            8,
		BlackHoleCount:       2,
		ShippingCompanyCount: 5,
		SafeTokenCount:       11,
		EndGameTokenCount:    41,
	}
}

// DeluxeConfig is the larger 10-company game.
func DeluxeConfig() GameConfig {
	return GameConfig{
		MapColumnCount:       16,
		MapRowCount:          9,
		StarCount:            12,
		BlackHoleCount:       3,
		ShippingCompanyCount: 10,
		SafeTokenCount:       15,
		EndGameTokenCount:    55,
	}
}

// MinConfig and MaxConfig bound the custom-configuration wizard.
func MinConfig() GameConfig {
	return GameConfig{
		MapColumnCount:       7,
		MapRowCount:          5,
		StarCount:            0,
		BlackHoleCount:       0,
		ShippingCompanyCount: 5,
		SafeTokenCount:       5,
		EndGameTokenCount:    15,
	}
}

func MaxConfig() GameConfig {
	return GameConfig{
		MapColumnCount:       20,
		MapRowCount:          9,
		StarCount:            15,
		BlackHoleCount:       5,
		ShippingCompanyCount: 10,
		SafeTokenCount:       65,
		EndGameTokenCount:    180,
	}
}

// HouseRules holds the tunable economic parameters. Invariant for the life of
// a series.
type HouseRules struct {
	HumanInitialCash             int  `json:"humanInitialCash"`
	ComputerInitialCash          int  `json:"computerInitialCash"`
	PlayerCoordinateOptionCount  int  `json:"playerCoordinateOptionCount"`
	FounderShareBonus            int  `json:"founderShareBonus"`
	ShareValueAdjacentStar       int  `json:"shareValueAdjacentStar"`
	ShareValueAdjacentToken      int  `json:"shareValueAdjacentToken"`
	DividendPercent              int  `json:"dividendPercent"`
	MergeBonusShareValueMultiple int  `json:"mergeBonusShareValueMultiple"`
	IsPlayerOrderRandom          bool `json:"isPlayerOrderRandom"`
}

func DefaultHouseRules() HouseRules {
	return HouseRules{
		HumanInitialCash:             6000,
		ComputerInitialCash:          6000,
		PlayerCoordinateOptionCount:  5,
		FounderShareBonus:            5,
		ShareValueAdjacentStar:       500,
		ShareValueAdjacentToken:      100,
		DividendPercent:              5,
		MergeBonusShareValueMultiple: 10,
		IsPlayerOrderRandom:          true,
	}
}

// MinHouseRules and MaxHouseRules bound the custom-configuration wizard.
func MinHouseRules() HouseRules {
	return HouseRules{
		HumanInitialCash:             3000,
		ComputerInitialCash:          3000,
		PlayerCoordinateOptionCount:  3,
		FounderShareBonus:            0,
		ShareValueAdjacentStar:       200,
		ShareValueAdjacentToken:      10,
		DividendPercent:              5,
		MergeBonusShareValueMultiple: 1,
		IsPlayerOrderRandom:          true,
	}
}

func MaxHouseRules() HouseRules {
	return HouseRules{
		HumanInitialCash:             10000,
		ComputerInitialCash:          10000,
		PlayerCoordinateOptionCount:  9,
		FounderShareBonus:            10,
		ShareValueAdjacentStar:       1000,
		ShareValueAdjacentToken:      200,
		DividendPercent:              10,
		MergeBonusShareValueMultiple: 20,
		IsPlayerOrderRandom:          true,
	}
}

// ConfigField describes one configurable GameConfig parameter, with the
// preset and bound values the configuration wizard presents. An enumerated
// table instead of reflective field lookup.
type ConfigField struct {
	Label  string
	Basic  int
	Deluxe int
	Min    int
	Max    int
	Set    func(*GameConfig, int)
	Get    func(*GameConfig) int
}

// ConfigFields lists every wizard-configurable GameConfig parameter in
// presentation order.
func ConfigFields() []ConfigField {
	basic, deluxe, min, max := BasicConfig(), DeluxeConfig(), MinConfig(), MaxConfig()
	return []ConfigField{
		{"MAP COLUMN COUNT", basic.MapColumnCount, deluxe.MapColumnCount, min.MapColumnCount, max.MapColumnCount,
			func(c *GameConfig, v int) { c.MapColumnCount = v },
			func(c *GameConfig) int { return c.MapColumnCount }},
		{"MAP ROW COUNT", basic.MapRowCount, deluxe.MapRowCount, min.MapRowCount, max.MapRowCount,
			func(c *GameConfig, v int) { c.MapRowCount = v },
			func(c *GameConfig) int { return c.MapRowCount }},
		{"STAR COUNT", basic.StarCount, deluxe.StarCount, min.StarCount, max.StarCount,
			func(c *GameConfig, v int) { c.StarCount = v },
			func(c *GameConfig) int { return c.StarCount }},
		{"BLACK HOLE COUNT", basic.BlackHoleCount, deluxe.BlackHoleCount, min.BlackHoleCount, max.BlackHoleCount,
			func(c *GameConfig, v int) { c.BlackHoleCount = v },
			func(c *GameConfig) int { return c.BlackHoleCount }},
		{"SHIPPING COMPANIES", basic.ShippingCompanyCount, deluxe.ShippingCompanyCount, min.ShippingCompanyCount, max.ShippingCompanyCount,
			func(c *GameConfig, v int) { c.ShippingCompanyCount = v },
			func(c *GameConfig) int { return c.ShippingCompanyCount }},
		{"SAFE COMPANY SIZE", basic.SafeTokenCount, deluxe.SafeTokenCount, min.SafeTokenCount, max.SafeTokenCount,
			func(c *GameConfig, v int) { c.SafeTokenCount = v },
			func(c *GameConfig) int { return c.SafeTokenCount }},
		{"MINIMUM COMPANY SIZE TO CALL GAME", basic.EndGameTokenCount, deluxe.EndGameTokenCount, min.EndGameTokenCount, max.EndGameTokenCount,
			func(c *GameConfig, v int) { c.EndGameTokenCount = v },
			func(c *GameConfig) int { return c.EndGameTokenCount }},
	}
}

// RuleField describes one configurable HouseRules parameter.
type RuleField struct {
	Label   string
	Default int
	Min     int
	Max     int
	Set     func(*HouseRules, int)
	Get     func(*HouseRules) int
}

// RuleFields lists every wizard-configurable integer HouseRules parameter in
// presentation order. IsPlayerOrderRandom is a yes/no question the wizard
// handles separately.
func RuleFields() []RuleField {
	def, min, max := DefaultHouseRules(), MinHouseRules(), MaxHouseRules()
	return []RuleField{
		{"INITIAL CASH (HUMAN)", def.HumanInitialCash, min.HumanInitialCash, max.HumanInitialCash,
			func(r *HouseRules, v int) { r.HumanInitialCash = v },
			func(r *HouseRules) int { return r.HumanInitialCash }},
		{"INITIAL CASH (COMPUTER)", def.ComputerInitialCash, min.ComputerInitialCash, max.ComputerInitialCash,
			func(r *HouseRules, v int) { r.ComputerInitialCash = v },
			func(r *HouseRules) int { return r.ComputerInitialCash }},
		{"COORDINATE OPTIONS", def.PlayerCoordinateOptionCount, min.PlayerCoordinateOptionCount, max.PlayerCoordinateOptionCount,
			func(r *HouseRules, v int) { r.PlayerCoordinateOptionCount = v },
			func(r *HouseRules) int { return r.PlayerCoordinateOptionCount }},
		{"FOUNDER SHARE BONUS", def.FounderShareBonus, min.FounderShareBonus, max.FounderShareBonus,
			func(r *HouseRules, v int) { r.FounderShareBonus = v },
			func(r *HouseRules) int { return r.FounderShareBonus }},
		{"ADJACENT STAR SHARE VALUE", def.ShareValueAdjacentStar, min.ShareValueAdjacentStar, max.ShareValueAdjacentStar,
			func(r *HouseRules, v int) { r.ShareValueAdjacentStar = v },
			func(r *HouseRules) int { return r.ShareValueAdjacentStar }},
		{"ADJACENT TOKEN SHARE VALUE", def.ShareValueAdjacentToken, min.ShareValueAdjacentToken, max.ShareValueAdjacentToken,
			func(r *HouseRules, v int) { r.ShareValueAdjacentToken = v },
			func(r *HouseRules) int { return r.ShareValueAdjacentToken }},
		{"DIVIDEND PERCENT", def.DividendPercent, min.DividendPercent, max.DividendPercent,
			func(r *HouseRules, v int) { r.DividendPercent = v },
			func(r *HouseRules) int { return r.DividendPercent }},
		{"MERGE BONUS SHARE VALUE MULTIPLE", def.MergeBonusShareValueMultiple, min.MergeBonusShareValueMultiple, max.MergeBonusShareValueMultiple,
			func(r *HouseRules, v int) { r.MergeBonusShareValueMultiple = v },
			func(r *HouseRules) int { return r.MergeBonusShareValueMultiple }},
	}
}
