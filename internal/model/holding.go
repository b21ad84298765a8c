package model

// AccountType classifies an account for tax purposes.
type AccountType string

// Account type values
const (
	AccountTaxable      AccountType = "taxable"
	AccountTaxSheltered AccountType = "tax-sheltered"
)

// Valid reports whether the account type is a known value.
func (t AccountType) Valid() bool {
	return t == AccountTaxable || t == AccountTaxSheltered
}

// AccountPosition is one account's stake in a symbol.
type AccountPosition struct {
	Shares      int64        `json:"shares"`
	Group       PaymentGroup `json:"group"`
	AccountType AccountType  `json:"accountType"`
	AccountName string       `json:"accountName"`
}

// SymbolPositions collects every account position held in one symbol.
type SymbolPositions struct {
	Symbol    string            `json:"symbol"`
	Positions []AccountPosition `json:"positions"`
}

// TotalShares sums the shares across all positions of the symbol.
func (s SymbolPositions) TotalShares() int64 {
	var total int64
	for _, p := range s.Positions {
		total += p.Shares
	}
	return total
}
