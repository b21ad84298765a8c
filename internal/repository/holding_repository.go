package repository

import (
	"database/sql"
	"fmt"

	"github.com/mphinance/yieldmax/internal/model"
)

type HoldingRepository struct {
	db *sql.DB
}

func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetAll returns all account positions grouped per symbol, with symbols
// in registry insertion order and positions in their stored order.
func (r *HoldingRepository) GetAll() ([]model.SymbolPositions, error) {
	query := `
		SELECT symbol, shares, payment_group, account_type, account_name
		FROM holding
		ORDER BY sort_order ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	var holdings []model.SymbolPositions
	index := make(map[string]int)

	for rows.Next() {
		var symbol string
		var p model.AccountPosition

		err := rows.Scan(
			&symbol,
			&p.Shares,
			&p.Group,
			&p.AccountType,
			&p.AccountName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		i, ok := index[symbol]
		if !ok {
			i = len(holdings)
			index[symbol] = i
			holdings = append(holdings, model.SymbolPositions{Symbol: symbol})
		}
		holdings[i].Positions = append(holdings[i].Positions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}
