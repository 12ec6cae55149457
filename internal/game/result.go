package game

// PlayOutcome classifies the result of playing one coordinate.
type PlayOutcome int

const (
	// OutcomeNewOutpost: the coordinate became a plain outpost.
	OutcomeNewOutpost PlayOutcome = iota
	// OutcomeNewCompany: a new company was founded at the coordinate.
	OutcomeNewCompany
	// OutcomeCompanyExpanded: an existing company absorbed the coordinate.
	OutcomeCompanyExpanded
	// OutcomeCompaniesMerged: two or more companies merged.
	OutcomeCompaniesMerged
	// OutcomeCompaniesDestroyed: companies were wiped out by a black hole as
	// a side effect of the play. Always appended after one of the other
	// outcomes, never alone.
	OutcomeCompaniesDestroyed
)

// PlayResult is one record in the outcome list returned by GameModel.Play.
type PlayResult struct {
	Outcome PlayOutcome
	// Company is the founded or expanded company, ledger state as of the end
	// of the play.
	Company Company
	// MergeReports carries one entry per folded-in company for
	// OutcomeCompaniesMerged.
	MergeReports []MergeReport
	// DestroyedCompanyIDs lists companies wiped by the black-hole pass for
	// OutcomeCompaniesDestroyed.
	DestroyedCompanyIDs []int
}

// MergeReport describes one defunct company being folded into the survivor.
// A three- or four-way merge produces several reports.
type MergeReport struct {
	// MergePlayerIndex is the player whose play triggered the merge.
	MergePlayerIndex int
	// SurvivingCompany and DefunctCompany are ledger snapshots taken as the
	// fold-in completed; the defunct company's outstanding shares are already
	// zeroed, its share value still holds the pre-merge figure the bonuses
	// were computed from.
	SurvivingCompany Company
	DefunctCompany   Company
	// BonusesPaid correlates with the player array.
	BonusesPaid []int
}

// EndReason classifies why a game ended.
type EndReason int

const (
	// ReasonPlayerCalledGame: the leading player called the game.
	ReasonPlayerCalledGame EndReason = iota
	// ReasonPlayerConcededGame: a lagging player conceded.
	ReasonPlayerConcededGame
	// ReasonNoMorePlayableCoordinates: every hand ran dry.
	ReasonNoMorePlayableCoordinates
)

// EndOfGameReason pairs the reason with the acting player's name, when there
// is one.
type EndOfGameReason struct {
	Reason     EndReason
	PlayerName string
}
