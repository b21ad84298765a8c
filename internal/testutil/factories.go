package testutil

import (
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

// sortOrder hands out unique, increasing sort_order values so that rows
// built in sequence keep their insertion order.
var sortOrder atomic.Int64

func nextSortOrder() int64 {
	return sortOrder.Add(1)
}

// ETFBuilder provides a fluent interface for creating test registry entries.
//
// Example usage:
//
//	// Simple creation with defaults
//	etf := testutil.NewETF("ULTY").Build(t, db)
//
//	// Customized entry
//	etf := testutil.NewETF("MSTY").
//	    InGroup(model.GroupB).
//	    Established().
//	    Build(t, db)
type ETFBuilder struct {
	Symbol          string
	Name            string
	Group           model.PaymentGroup
	Frequency       model.Frequency
	UnderlyingAsset string
	ReferencePrice  decimal.Decimal
	NominalYield    decimal.Decimal
	IsEstablished   bool
}

// NewETF creates an ETFBuilder with sensible defaults.
func NewETF(symbol string) *ETFBuilder {
	return &ETFBuilder{
		Symbol:          symbol,
		Name:            symbol + " Option Income Strategy ETF",
		Group:           model.GroupA,
		Frequency:       model.FrequencyWeekly,
		UnderlyingAsset: symbol[:len(symbol)-1],
		ReferencePrice:  decimal.NewFromFloat(10.00),
		NominalYield:    decimal.NewFromFloat(0.60),
		IsEstablished:   false,
	}
}

// WithName sets a custom fund name.
func (b *ETFBuilder) WithName(name string) *ETFBuilder {
	b.Name = name
	return b
}

// InGroup assigns the payment group.
func (b *ETFBuilder) InGroup(group model.PaymentGroup) *ETFBuilder {
	b.Group = group
	return b
}

// Monthly marks the fund as a monthly payer.
func (b *ETFBuilder) Monthly() *ETFBuilder {
	b.Frequency = model.FrequencyMonthly
	return b
}

// WithUnderlying sets the underlying asset ticker.
func (b *ETFBuilder) WithUnderlying(asset string) *ETFBuilder {
	b.UnderlyingAsset = asset
	return b
}

// Established marks the fund as having a long distribution track record.
func (b *ETFBuilder) Established() *ETFBuilder {
	b.IsEstablished = true
	return b
}

// Build creates the registry entry in the database and returns it.
func (b *ETFBuilder) Build(t *testing.T, db *sql.DB) model.ETF {
	t.Helper()

	query := `
		INSERT INTO etf (symbol, name, payment_group, payment_frequency, underlying_asset, reference_price, nominal_yield, established, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.Symbol, b.Name, string(b.Group), string(b.Frequency),
		b.UnderlyingAsset, b.ReferencePrice.String(), b.NominalYield.String(),
		b.IsEstablished, nextSortOrder(),
	)
	if err != nil {
		t.Fatalf("Failed to create test ETF: %v", err)
	}

	return model.ETF{
		Symbol:          b.Symbol,
		Name:            b.Name,
		Group:           b.Group,
		Frequency:       b.Frequency,
		UnderlyingAsset: b.UnderlyingAsset,
		ReferencePrice:  b.ReferencePrice,
		NominalYield:    b.NominalYield,
		Established:     b.IsEstablished,
	}
}

// PositionBuilder provides a fluent interface for creating test account
// positions.
//
// Example usage:
//
//	testutil.NewPosition("ULTY", 600).Build(t, db)
//	testutil.NewPosition("MSTY", 150).
//	    InAccount("Roth IRA", model.AccountTaxSheltered).
//	    Build(t, db)
type PositionBuilder struct {
	ID          string
	Symbol      string
	Shares      int64
	Group       model.PaymentGroup
	AccountType model.AccountType
	AccountName string
}

// NewPosition creates a PositionBuilder with sensible defaults.
func NewPosition(symbol string, shares int64) *PositionBuilder {
	return &PositionBuilder{
		ID:          MakeID(),
		Symbol:      symbol,
		Shares:      shares,
		Group:       model.GroupA,
		AccountType: model.AccountTaxable,
		AccountName: "Brokerage Account",
	}
}

// InGroup assigns the payment group.
func (b *PositionBuilder) InGroup(group model.PaymentGroup) *PositionBuilder {
	b.Group = group
	return b
}

// InAccount sets the account name and type.
func (b *PositionBuilder) InAccount(name string, accountType model.AccountType) *PositionBuilder {
	b.AccountName = name
	b.AccountType = accountType
	return b
}

// Build creates the position in the database and returns it.
func (b *PositionBuilder) Build(t *testing.T, db *sql.DB) model.AccountPosition {
	t.Helper()

	query := `
		INSERT INTO holding (id, symbol, shares, payment_group, account_type, account_name, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Symbol, b.Shares, string(b.Group),
		string(b.AccountType), b.AccountName, nextSortOrder(),
	)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return model.AccountPosition{
		Shares:      b.Shares,
		Group:       b.Group,
		AccountType: b.AccountType,
		AccountName: b.AccountName,
	}
}

// PaymentBuilder provides a fluent interface for creating test payment
// records in either the confirmed or the estimated table.
//
// Example usage:
//
//	testutil.NewPayment("ULTY", "0.3405", "2025-06-06").Build(t, db)
//	testutil.NewPayment("ULTY", "0.3200", "2025-07-11").Estimated().Build(t, db)
type PaymentBuilder struct {
	ID          string
	Symbol      string
	PerShare    string
	ExDate      dates.Date
	PayDate     dates.Date
	Group       model.PaymentGroup
	IsEstimated bool
}

// NewPayment creates a PaymentBuilder for a confirmed record paying on
// the given date, with the ex-date one day earlier.
func NewPayment(symbol, perShare, payDate string) *PaymentBuilder {
	pay := dates.MustParse(payDate)
	return &PaymentBuilder{
		ID:       MakeID(),
		Symbol:   symbol,
		PerShare: perShare,
		ExDate:   pay.Add(-1),
		PayDate:  pay,
		Group:    model.GroupA,
	}
}

// InGroup assigns the payment group.
func (b *PaymentBuilder) InGroup(group model.PaymentGroup) *PaymentBuilder {
	b.Group = group
	return b
}

// WithExDate sets a custom ex-date.
func (b *PaymentBuilder) WithExDate(exDate string) *PaymentBuilder {
	b.ExDate = dates.MustParse(exDate)
	return b
}

// Estimated stores the record in the estimated table instead of the
// confirmed one.
func (b *PaymentBuilder) Estimated() *PaymentBuilder {
	b.IsEstimated = true
	return b
}

// Build creates the payment record in the database.
func (b *PaymentBuilder) Build(t *testing.T, db *sql.DB) {
	t.Helper()

	table := "confirmed_payment"
	if b.IsEstimated {
		table = "estimated_payment"
	}

	query := `
		INSERT INTO ` + table + ` (id, symbol, per_share, ex_date, pay_date, payment_group)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Symbol, b.PerShare,
		b.ExDate.String(), b.PayDate.String(), string(b.Group),
	)
	if err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}
}

// ScheduleEntryBuilder provides a fluent interface for creating test
// calendar entries.
//
// Example usage:
//
//	testutil.NewScheduleEntry("2025-07-10", model.GroupA).Build(t, db)
type ScheduleEntryBuilder struct {
	ID              string
	DeclarationDate dates.Date
	ExDate          dates.Date
	RecordDate      dates.Date
	PaymentDate     dates.Date
	Group           model.PaymentGroup
}

// NewScheduleEntry creates a ScheduleEntryBuilder for a payment on the
// given date, backdating the declaration chain by the usual offsets.
func NewScheduleEntry(paymentDate string, group model.PaymentGroup) *ScheduleEntryBuilder {
	pay := dates.MustParse(paymentDate)
	return &ScheduleEntryBuilder{
		ID:              MakeID(),
		DeclarationDate: pay.Add(-3),
		ExDate:          pay.Add(-2),
		RecordDate:      pay.Add(-2),
		PaymentDate:     pay,
		Group:           group,
	}
}

// Build creates the calendar entry in the database and returns it.
func (b *ScheduleEntryBuilder) Build(t *testing.T, db *sql.DB) model.ScheduleEntry {
	t.Helper()

	query := `
		INSERT INTO schedule_entry (id, declaration_date, ex_date, record_date, payment_date, payment_group)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.DeclarationDate.String(), b.ExDate.String(),
		b.RecordDate.String(), b.PaymentDate.String(), string(b.Group),
	)
	if err != nil {
		t.Fatalf("Failed to create test schedule entry: %v", err)
	}

	return model.ScheduleEntry{
		ID:              b.ID,
		DeclarationDate: b.DeclarationDate,
		ExDate:          b.ExDate,
		RecordDate:      b.RecordDate,
		PaymentDate:     b.PaymentDate,
		Group:           b.Group,
	}
}
