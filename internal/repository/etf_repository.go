package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mphinance/yieldmax/internal/model"
)

type ETFRepository struct {
	db *sql.DB
}

func NewETFRepository(db *sql.DB) *ETFRepository {
	return &ETFRepository{db: db}
}

// GetAll returns the full ETF registry in registry order.
func (r *ETFRepository) GetAll() ([]model.ETF, error) {
	query := `
		SELECT symbol, name, payment_group, payment_frequency, underlying_asset, reference_price, nominal_yield, established
		FROM etf
		ORDER BY sort_order ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query etf table: %w", err)
	}
	defer rows.Close()

	var etfs []model.ETF
	for rows.Next() {
		var e model.ETF
		var priceStr, yieldStr string

		err := rows.Scan(
			&e.Symbol,
			&e.Name,
			&e.Group,
			&e.Frequency,
			&e.UnderlyingAsset,
			&priceStr,
			&yieldStr,
			&e.Established,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan etf table results: %w", err)
		}

		e.ReferencePrice, err = decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reference price for %s: %w", e.Symbol, err)
		}

		e.NominalYield, err = decimal.NewFromString(yieldStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse nominal yield for %s: %w", e.Symbol, err)
		}

		etfs = append(etfs, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating etf table: %w", err)
	}

	return etfs, nil
}
