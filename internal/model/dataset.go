package model

// Dataset is one immutable snapshot of the full reference data: the ETF
// registry, account positions, payment records, and the published
// calendar. A Dataset is never mutated after construction; refreshes
// build and publish a new one.
type Dataset struct {
	ETFs      []ETF
	Holdings  []SymbolPositions
	Confirmed []ConfirmedPayment
	Estimated []EstimatedPayment
	Schedule  []ScheduleEntry

	etfBySymbol      map[string]ETF
	holdingsBySymbol map[string]SymbolPositions
}

// NewDataset builds a snapshot and its symbol lookup indexes.
func NewDataset(
	etfs []ETF,
	holdings []SymbolPositions,
	confirmed []ConfirmedPayment,
	estimated []EstimatedPayment,
	schedule []ScheduleEntry,
) *Dataset {
	d := &Dataset{
		ETFs:      etfs,
		Holdings:  holdings,
		Confirmed: confirmed,
		Estimated: estimated,
		Schedule:  schedule,

		etfBySymbol:      make(map[string]ETF, len(etfs)),
		holdingsBySymbol: make(map[string]SymbolPositions, len(holdings)),
	}

	for _, e := range etfs {
		d.etfBySymbol[e.Symbol] = e
	}
	for _, h := range holdings {
		d.holdingsBySymbol[h.Symbol] = h
	}

	return d
}

// ETF looks up a registry entry by symbol.
func (d *Dataset) ETF(symbol string) (ETF, bool) {
	e, ok := d.etfBySymbol[symbol]
	return e, ok
}

// Positions looks up the account positions held in a symbol. The second
// return distinguishes "not held at all" from "held with zero shares".
func (d *Dataset) Positions(symbol string) ([]AccountPosition, bool) {
	h, ok := d.holdingsBySymbol[symbol]
	return h.Positions, ok
}

// TotalShares sums the shares held in a symbol across all accounts.
func (d *Dataset) TotalShares(symbol string) int64 {
	return d.holdingsBySymbol[symbol].TotalShares()
}
