package model

// MonthlyBreakdown splits one calendar month's income into confirmed
// and estimated parts. Total is always Confirmed + Estimated.
type MonthlyBreakdown struct {
	Total     float64         `json:"total"`
	Confirmed float64         `json:"confirmed"`
	Estimated float64         `json:"estimated"`
	Payments  []DividendEvent `json:"payments"`
}

// GroupSummary aggregates one payment group's events on a single day.
type GroupSummary struct {
	Group        PaymentGroup    `json:"group"`
	Events       []DividendEvent `json:"events"`
	Total        float64         `json:"total"`
	HasEstimates bool            `json:"hasEstimates"`
}

// AccountSummary rolls one account up to shares, symbols held, and the
// flat-approximation monthly income.
type AccountSummary struct {
	AccountType            AccountType `json:"accountType"`
	TotalShares            int64       `json:"totalShares"`
	Symbols                []string    `json:"symbols"`
	EstimatedMonthlyIncome float64     `json:"estimatedMonthlyIncome"`
}

// TaxBucket is the projected income of one account class and the flat
// tax estimate over it.
type TaxBucket struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	AnnualIncome   float64 `json:"annualIncome"`
	EstimatedTaxes float64 `json:"estimatedTaxes"`
	AfterTaxIncome float64 `json:"afterTaxIncome"`
}

// TaxBreakdown is the taxable versus tax-sheltered split.
type TaxBreakdown struct {
	Taxable      TaxBucket `json:"taxable"`
	TaxSheltered TaxBucket `json:"taxSheltered"`
}
