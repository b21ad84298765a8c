package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetConfirmed returns all confirmed payment records, ascending by pay date.
func (r *PaymentRepository) GetConfirmed() ([]model.ConfirmedPayment, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, per_share, ex_date, pay_date, payment_group
		FROM confirmed_payment
		ORDER BY pay_date ASC, symbol ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmed_payment table: %w", err)
	}
	defer rows.Close()

	var payments []model.ConfirmedPayment
	for rows.Next() {
		var p model.ConfirmedPayment
		if err := scanPayment(rows, &p.ID, &p.Symbol, &p.PerShare, &p.ExDate, &p.PayDate, &p.Group); err != nil {
			return nil, fmt.Errorf("failed to scan confirmed_payment results: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confirmed_payment table: %w", err)
	}

	return payments, nil
}

// GetEstimated returns all estimated payment records, ascending by pay
// date. Lapsed projections are not filtered here; that is the projection
// engine's call, made against its evaluation instant.
func (r *PaymentRepository) GetEstimated() ([]model.EstimatedPayment, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, per_share, ex_date, pay_date, payment_group
		FROM estimated_payment
		ORDER BY pay_date ASC, symbol ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimated_payment table: %w", err)
	}
	defer rows.Close()

	var payments []model.EstimatedPayment
	for rows.Next() {
		var p model.EstimatedPayment
		if err := scanPayment(rows, &p.ID, &p.Symbol, &p.PerShare, &p.ExDate, &p.PayDate, &p.Group); err != nil {
			return nil, fmt.Errorf("failed to scan estimated_payment results: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estimated_payment table: %w", err)
	}

	return payments, nil
}

// scanPayment scans one row of either payment table; the two share a shape.
func scanPayment(rows *sql.Rows, id, symbol *string, perShare *decimal.Decimal, exDate, payDate *dates.Date, group *model.PaymentGroup) error {
	var perShareStr, exDateStr, payDateStr string

	if err := rows.Scan(id, symbol, &perShareStr, &exDateStr, &payDateStr, group); err != nil {
		return err
	}

	var err error
	if *perShare, err = decimal.NewFromString(perShareStr); err != nil {
		return fmt.Errorf("failed to parse per-share amount: %w", err)
	}
	if *exDate, err = dates.Parse(exDateStr); err != nil {
		return fmt.Errorf("failed to parse ex-date: %w", err)
	}
	if *payDate, err = dates.Parse(payDateStr); err != nil {
		return fmt.Errorf("failed to parse pay-date: %w", err)
	}

	return nil
}
