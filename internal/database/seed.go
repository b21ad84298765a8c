package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mphinance/yieldmax/internal/dates"
)

// seedETF is one ETF registry row. Prices and yields are kept as strings
// and stored verbatim; they are parsed into decimals on read.
type seedETF struct {
	symbol      string
	name        string
	group       string
	frequency   string
	underlying  string
	price       string
	yield       string
	established bool
}

type seedPosition struct {
	symbol      string
	shares      int64
	group       string
	accountType string
	accountName string
}

// seedPayment covers both confirmed and estimated rows; the two tables
// share a shape.
type seedPayment struct {
	symbol   string
	perShare string
	exDate   string
	payDate  string
	group    string
}

// seedSchedule rows come from the published payment calendar, which uses
// the short M/D/YY date form. Dates are normalized on insert.
type seedSchedule struct {
	declared string
	exDate   string
	record   string
	payDate  string
	group    string
}

var seedETFs = []seedETF{
	{"ULTY", "YieldMax TSLA Option Income Strategy ETF", "A", "weekly", "TSLA", "28.45", "58.7", true},
	{"OARK", "YieldMax ARKK Option Income Strategy ETF", "A", "weekly", "ARKK", "24.12", "52.3", true},
	{"NVDY", "YieldMax NVDA Option Income Strategy ETF", "A", "weekly", "NVDA", "31.78", "61.2", true},
	{"MSTY", "YieldMax MSTR Option Income Strategy ETF", "B", "weekly", "MSTR", "22.15", "64.2", true},
	{"CONY", "YieldMax COIN Option Income Strategy ETF", "B", "weekly", "COIN", "19.87", "55.8", false},
	{"AMZY", "YieldMax AMZN Option Income Strategy ETF", "B", "weekly", "AMZN", "26.34", "48.9", false},
	{"APLY", "YieldMax AAPL Option Income Strategy ETF", "C", "weekly", "AAPL", "25.67", "45.6", false},
	{"GOOY", "YieldMax GOOGL Option Income Strategy ETF", "C", "weekly", "GOOGL", "23.89", "42.1", false},
	{"NFLY", "YieldMax NFLX Option Income Strategy ETF", "C", "weekly", "NFLX", "21.45", "47.3", false},
	{"MSFY", "YieldMax MSFT Option Income Strategy ETF", "D", "weekly", "MSFT", "27.12", "44.8", false},
	{"PYPY", "YieldMax PYPL Option Income Strategy ETF", "D", "weekly", "PYPL", "18.93", "51.2", false},
	{"SPYY", "YieldMax SPY Option Income Strategy ETF", "D", "weekly", "SPY", "29.56", "38.7", false},
}

var seedPositions = []seedPosition{
	{"ULTY", 600, "A", "taxable", "Brokerage Account"},
	{"ULTY", 400, "A", "tax-sheltered", "Roth IRA"},
	{"MSTY", 500, "B", "taxable", "Brokerage Account"},
	{"MSTY", 300, "B", "tax-sheltered", "Traditional IRA"},
	{"NVDY", 300, "A", "taxable", "Brokerage Account"},
	{"NVDY", 200, "A", "tax-sheltered", "Roth IRA"},
	{"OARK", 450, "A", "taxable", "Brokerage Account"},
	{"OARK", 300, "A", "tax-sheltered", "Traditional IRA"},
	{"CONY", 400, "B", "taxable", "Brokerage Account"},
	{"CONY", 200, "B", "tax-sheltered", "Roth IRA"},
	{"AMZY", 250, "B", "taxable", "Brokerage Account"},
	{"AMZY", 150, "B", "tax-sheltered", "Traditional IRA"},
	{"APLY", 200, "C", "taxable", "Brokerage Account"},
	{"APLY", 100, "C", "tax-sheltered", "Roth IRA"},
	{"GOOY", 250, "C", "taxable", "Brokerage Account"},
	{"GOOY", 100, "C", "tax-sheltered", "Traditional IRA"},
	{"NFLY", 300, "C", "taxable", "Brokerage Account"},
	{"NFLY", 150, "C", "tax-sheltered", "Roth IRA"},
	{"MSFY", 150, "D", "taxable", "Brokerage Account"},
	{"MSFY", 100, "D", "tax-sheltered", "Traditional IRA"},
	{"PYPY", 350, "D", "taxable", "Brokerage Account"},
	{"PYPY", 150, "D", "tax-sheltered", "Roth IRA"},
	{"SPYY", 120, "D", "taxable", "Brokerage Account"},
	{"SPYY", 80, "D", "tax-sheltered", "Traditional IRA"},
}

// Confirmed distributions, verified against the funds' official
// announcements.
var seedConfirmed = []seedPayment{
	// January 2025
	{"ULTY", "0.5715", "2025-01-08", "2025-01-09", "A"},
	{"NVDY", "0.3906", "2025-01-08", "2025-01-09", "A"},
	{"OARK", "0.2810", "2025-01-08", "2025-01-09", "A"},
	{"MSTY", "0.3570", "2025-01-09", "2025-01-10", "B"},
	{"CONY", "0.2200", "2025-01-09", "2025-01-10", "B"},
	{"AMZY", "0.2600", "2025-01-09", "2025-01-10", "B"},
	{"ULTY", "0.3405", "2025-01-15", "2025-01-16", "A"},
	{"NVDY", "0.3906", "2025-01-15", "2025-01-16", "A"},
	{"OARK", "0.2810", "2025-01-15", "2025-01-16", "A"},
	// June 2025
	{"ULTY", "0.3250", "2025-06-04", "2025-06-05", "A"},
	{"NVDY", "0.3850", "2025-06-04", "2025-06-05", "A"},
	{"OARK", "0.2800", "2025-06-04", "2025-06-05", "A"},
	{"MSTY", "0.3825", "2025-06-05", "2025-06-06", "B"},
	{"CONY", "0.2200", "2025-06-05", "2025-06-06", "B"},
	{"AMZY", "0.2600", "2025-06-05", "2025-06-06", "B"},
	{"ULTY", "0.3405", "2025-06-11", "2025-06-12", "A"},
	{"NVDY", "0.3950", "2025-06-11", "2025-06-12", "A"},
	{"OARK", "0.2750", "2025-06-11", "2025-06-12", "A"},
	{"MSTY", "0.3700", "2025-06-12", "2025-06-13", "B"},
	{"CONY", "0.2250", "2025-06-12", "2025-06-13", "B"},
	{"AMZY", "0.2650", "2025-06-12", "2025-06-13", "B"},
	{"ULTY", "0.3180", "2025-06-18", "2025-06-19", "A"},
	{"NVDY", "0.3750", "2025-06-18", "2025-06-19", "A"},
	{"OARK", "0.2900", "2025-06-18", "2025-06-19", "A"},
	{"MSTY", "0.3650", "2025-06-19", "2025-06-20", "B"},
	{"CONY", "0.2200", "2025-06-19", "2025-06-20", "B"},
	{"AMZY", "0.2600", "2025-06-19", "2025-06-20", "B"},
	{"ULTY", "0.3300", "2025-06-25", "2025-06-26", "A"},
	{"NVDY", "0.3850", "2025-06-25", "2025-06-26", "A"},
	{"OARK", "0.2850", "2025-06-25", "2025-06-26", "A"},
	{"MSTY", "0.3750", "2025-06-26", "2025-06-27", "B"},
	{"CONY", "0.2300", "2025-06-26", "2025-06-27", "B"},
	{"AMZY", "0.2700", "2025-06-26", "2025-06-27", "B"},
}

// Estimated future distributions projected from the confirmed patterns.
var seedEstimated = []seedPayment{
	// July 2025, group A (Thursdays)
	{"ULTY", "0.3400", "2025-07-02", "2025-07-03", "A"},
	{"NVDY", "0.3900", "2025-07-02", "2025-07-03", "A"},
	{"OARK", "0.2800", "2025-07-02", "2025-07-03", "A"},
	{"ULTY", "0.3350", "2025-07-09", "2025-07-10", "A"},
	{"NVDY", "0.3850", "2025-07-09", "2025-07-10", "A"},
	{"OARK", "0.2750", "2025-07-09", "2025-07-10", "A"},
	{"ULTY", "0.3450", "2025-07-16", "2025-07-17", "A"},
	{"NVDY", "0.3950", "2025-07-16", "2025-07-17", "A"},
	{"OARK", "0.2900", "2025-07-16", "2025-07-17", "A"},
	{"ULTY", "0.3300", "2025-07-23", "2025-07-24", "A"},
	{"NVDY", "0.3800", "2025-07-23", "2025-07-24", "A"},
	{"OARK", "0.2850", "2025-07-23", "2025-07-24", "A"},
	{"ULTY", "0.3380", "2025-07-30", "2025-07-31", "A"},
	{"NVDY", "0.3900", "2025-07-30", "2025-07-31", "A"},
	{"OARK", "0.2800", "2025-07-30", "2025-07-31", "A"},
	// July 2025, group B (Fridays)
	{"MSTY", "0.3700", "2025-07-03", "2025-07-04", "B"},
	{"CONY", "0.2250", "2025-07-03", "2025-07-04", "B"},
	{"AMZY", "0.2650", "2025-07-03", "2025-07-04", "B"},
	{"MSTY", "0.3600", "2025-07-10", "2025-07-11", "B"},
	{"CONY", "0.2200", "2025-07-10", "2025-07-11", "B"},
	{"AMZY", "0.2600", "2025-07-10", "2025-07-11", "B"},
	{"MSTY", "0.3750", "2025-07-17", "2025-07-18", "B"},
	{"CONY", "0.2300", "2025-07-17", "2025-07-18", "B"},
	{"AMZY", "0.2700", "2025-07-17", "2025-07-18", "B"},
	{"MSTY", "0.3650", "2025-07-24", "2025-07-25", "B"},
	{"CONY", "0.2250", "2025-07-24", "2025-07-25", "B"},
	{"AMZY", "0.2650", "2025-07-24", "2025-07-25", "B"},
	{"MSTY", "0.3700", "2025-07-31", "2025-08-01", "B"},
	{"CONY", "0.2200", "2025-07-31", "2025-08-01", "B"},
	{"AMZY", "0.2600", "2025-07-31", "2025-08-01", "B"},
	// July 2025, group C (Mondays)
	{"APLY", "0.2400", "2025-07-06", "2025-07-07", "C"},
	{"GOOY", "0.2100", "2025-07-06", "2025-07-07", "C"},
	{"NFLY", "0.1900", "2025-07-06", "2025-07-07", "C"},
	{"APLY", "0.2350", "2025-07-13", "2025-07-14", "C"},
	{"GOOY", "0.2050", "2025-07-13", "2025-07-14", "C"},
	{"NFLY", "0.1850", "2025-07-13", "2025-07-14", "C"},
	{"APLY", "0.2450", "2025-07-20", "2025-07-21", "C"},
	{"GOOY", "0.2150", "2025-07-20", "2025-07-21", "C"},
	{"NFLY", "0.1950", "2025-07-20", "2025-07-21", "C"},
	{"APLY", "0.2400", "2025-07-27", "2025-07-28", "C"},
	{"GOOY", "0.2100", "2025-07-27", "2025-07-28", "C"},
	{"NFLY", "0.1900", "2025-07-27", "2025-07-28", "C"},
	// July 2025, group D (Tuesdays)
	{"MSFY", "0.2500", "2025-07-01", "2025-07-01", "D"},
	{"PYPY", "0.1800", "2025-07-01", "2025-07-01", "D"},
	{"SPYY", "0.2200", "2025-07-01", "2025-07-01", "D"},
	{"MSFY", "0.2450", "2025-07-08", "2025-07-08", "D"},
	{"PYPY", "0.1750", "2025-07-08", "2025-07-08", "D"},
	{"SPYY", "0.2150", "2025-07-08", "2025-07-08", "D"},
	{"MSFY", "0.2550", "2025-07-15", "2025-07-15", "D"},
	{"PYPY", "0.1850", "2025-07-15", "2025-07-15", "D"},
	{"SPYY", "0.2250", "2025-07-15", "2025-07-15", "D"},
	{"MSFY", "0.2500", "2025-07-22", "2025-07-22", "D"},
	{"PYPY", "0.1800", "2025-07-22", "2025-07-22", "D"},
	{"SPYY", "0.2200", "2025-07-22", "2025-07-22", "D"},
	{"MSFY", "0.2450", "2025-07-29", "2025-07-29", "D"},
	{"PYPY", "0.1750", "2025-07-29", "2025-07-29", "D"},
	{"SPYY", "0.2150", "2025-07-29", "2025-07-29", "D"},
}

// 2025 payment calendar as published, in its source M/D/YY form.
var seedScheduleEntries = []seedSchedule{
	{"1/2/25", "1/3/25", "1/3/25", "1/6/25", "B"},
	{"1/8/25", "1/9/25", "1/9/25", "1/10/25", "C"},
	{"1/15/25", "1/16/25", "1/16/25", "1/17/25", "D"},
	{"1/22/25", "1/23/25", "1/23/25", "1/24/25", "A"},
	{"1/29/25", "1/30/25", "1/30/25", "1/31/25", "B"},
	{"2/5/25", "2/6/25", "2/6/25", "2/7/25", "C"},
	{"2/12/25", "2/13/25", "2/13/25", "2/14/25", "D"},
	{"2/19/25", "2/20/25", "2/20/25", "2/21/25", "A"},
	{"2/26/25", "2/27/25", "2/27/25", "2/28/25", "B"},
	{"3/5/25", "3/6/25", "3/6/25", "3/7/25", "C"},
	{"3/12/25", "3/13/25", "3/13/25", "3/14/25", "D"},
	{"3/19/25", "3/20/25", "3/20/25", "3/21/25", "A"},
	{"3/26/25", "3/27/25", "3/27/25", "3/28/25", "B"},
	{"4/2/25", "4/3/25", "4/3/25", "4/4/25", "C"},
	{"4/9/25", "4/10/25", "4/10/25", "4/11/25", "D"},
	{"4/16/25", "4/17/25", "4/17/25", "4/21/25", "A"},
	{"4/23/25", "4/24/25", "4/24/25", "4/25/25", "B"},
	{"4/30/25", "5/1/25", "5/1/25", "5/2/25", "C"},
	{"5/7/25", "5/8/25", "5/8/25", "5/9/25", "D"},
	{"5/14/25", "5/15/25", "5/15/25", "5/16/25", "A"},
	{"5/21/25", "5/22/25", "5/22/25", "5/23/25", "B"},
	{"5/28/25", "5/29/25", "5/29/25", "5/30/25", "C"},
	{"6/4/25", "6/5/25", "6/5/25", "6/6/25", "D"},
	{"6/11/25", "6/12/25", "6/12/25", "6/13/25", "A"},
	{"6/18/25", "6/20/25", "6/20/25", "6/23/25", "B"},
	{"6/25/25", "6/26/25", "6/26/25", "6/27/25", "C"},
	{"7/2/25", "7/3/25", "7/3/25", "7/7/25", "D"},
	{"7/9/25", "7/10/25", "7/10/25", "7/11/25", "A"},
	{"7/16/25", "7/17/25", "7/17/25", "7/18/25", "B"},
	{"7/23/25", "7/24/25", "7/24/25", "7/25/25", "C"},
	{"7/30/25", "7/31/25", "7/31/25", "8/1/25", "D"},
	{"8/6/25", "8/7/25", "8/7/25", "8/8/25", "A"},
	{"8/13/25", "8/14/25", "8/14/25", "8/15/25", "B"},
	{"8/20/25", "8/21/25", "8/21/25", "8/22/25", "C"},
	{"8/27/25", "8/28/25", "8/28/25", "8/29/25", "D"},
	{"9/3/25", "9/4/25", "9/4/25", "9/5/25", "A"},
	{"9/10/25", "9/11/25", "9/11/25", "9/12/25", "B"},
	{"9/17/25", "9/18/25", "9/18/25", "9/19/25", "C"},
	{"9/24/25", "9/25/25", "9/25/25", "9/26/25", "D"},
	{"10/1/25", "10/2/25", "10/2/25", "10/3/25", "A"},
	{"10/8/25", "10/9/25", "10/9/25", "10/10/25", "B"},
	{"10/15/25", "10/16/25", "10/16/25", "10/17/25", "C"},
	{"10/22/25", "10/23/25", "10/23/25", "10/24/25", "D"},
	{"10/29/25", "10/30/25", "10/30/25", "10/31/25", "A"},
	{"11/5/25", "11/6/25", "11/6/25", "11/7/25", "B"},
	{"11/12/25", "11/13/25", "11/13/25", "11/14/25", "C"},
	{"11/19/25", "11/20/25", "11/20/25", "11/21/25", "D"},
	{"11/26/25", "11/28/25", "11/28/25", "12/1/25", "A"},
	{"12/3/25", "12/4/25", "12/4/25", "12/5/25", "B"},
	{"12/10/25", "12/11/25", "12/11/25", "12/12/25", "C"},
	{"12/17/25", "12/18/25", "12/18/25", "12/19/25", "D"},
	{"12/24/25", "12/26/25", "12/26/25", "12/29/25", "A"},
	{"12/31/25", "1/2/26", "1/2/26", "1/5/26", "B"},
}

// Seed populates the reference tables with the static dataset. It is
// idempotent: when the ETF registry is already populated, nothing is
// written. All dates are normalized to the canonical YYYY-MM-DD form on
// insert, including the M/D/YY schedule dates.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM etf").Scan(&count); err != nil {
		return fmt.Errorf("failed to check etf table: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for i, e := range seedETFs {
		_, err := tx.Exec(`
			INSERT INTO etf (symbol, name, payment_group, payment_frequency, underlying_asset, reference_price, nominal_yield, established, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.symbol, e.name, e.group, e.frequency, e.underlying, e.price, e.yield, e.established, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed etf %s: %w", e.symbol, err)
		}
	}

	for i, p := range seedPositions {
		_, err := tx.Exec(`
			INSERT INTO holding (id, symbol, shares, payment_group, account_type, account_name, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), p.symbol, p.shares, p.group, p.accountType, p.accountName, i,
		)
		if err != nil {
			return fmt.Errorf("failed to seed holding %s/%s: %w", p.symbol, p.accountName, err)
		}
	}

	if err := seedPayments(tx, "confirmed_payment", seedConfirmed); err != nil {
		return err
	}
	if err := seedPayments(tx, "estimated_payment", seedEstimated); err != nil {
		return err
	}

	for _, s := range seedScheduleEntries {
		declared, exDate, record, payDate, err := parseScheduleDates(s)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO schedule_entry (id, declaration_date, ex_date, record_date, payment_date, payment_group)
			VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), declared.String(), exDate.String(), record.String(), payDate.String(), s.group,
		)
		if err != nil {
			return fmt.Errorf("failed to seed schedule entry %s: %w", s.payDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

func seedPayments(tx *sql.Tx, table string, payments []seedPayment) error {
	for _, p := range payments {
		exDate, err := dates.Parse(p.exDate)
		if err != nil {
			return fmt.Errorf("failed to parse %s ex-date for %s: %w", table, p.symbol, err)
		}
		payDate, err := dates.Parse(p.payDate)
		if err != nil {
			return fmt.Errorf("failed to parse %s pay-date for %s: %w", table, p.symbol, err)
		}
		//nolint:gosec // table name is one of two compile-time constants
		_, err = tx.Exec(`
			INSERT INTO `+table+` (id, symbol, per_share, ex_date, pay_date, payment_group)
			VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), p.symbol, p.perShare, exDate.String(), payDate.String(), p.group,
		)
		if err != nil {
			return fmt.Errorf("failed to seed %s %s/%s: %w", table, p.symbol, p.payDate, err)
		}
	}
	return nil
}

func parseScheduleDates(s seedSchedule) (declared, exDate, record, payDate dates.Date, err error) {
	if declared, err = dates.Parse(s.declared); err != nil {
		return
	}
	if exDate, err = dates.Parse(s.exDate); err != nil {
		return
	}
	if record, err = dates.Parse(s.record); err != nil {
		return
	}
	payDate, err = dates.Parse(s.payDate)
	return
}
