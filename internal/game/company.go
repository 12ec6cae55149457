package game

// Company is the ledger record of one shipping company. The index doubles as
// the company identifier; display names live in the view layer.
type Company struct {
	TokenCount        int  `json:"tokenCount"`
	ShareValue        int  `json:"shareValue"`
	IsSafe            bool `json:"isSafe"`
	OutstandingShares int  `json:"outstandingShares"`
	Index             int  `json:"index"`
}

// NewCompany returns an inactive company with the given identity.
func NewCompany(index int) Company {
	return Company{Index: index}
}

// IsActive reports whether the company holds any cells on the map. When
// false, every other ledger field is zero.
func (c Company) IsActive() bool {
	return c.TokenCount > 0
}

// Monogram is the single-letter form of the company identity: 0 = "A",
// 1 = "B" and so on, matching the map token alphabet.
func (c Company) Monogram() string {
	return string(rune('A' + c.Index))
}
