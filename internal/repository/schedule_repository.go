package repository

import (
	"database/sql"
	"fmt"

	"github.com/mphinance/yieldmax/internal/dates"
	"github.com/mphinance/yieldmax/internal/model"
)

type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetAll returns the full payment calendar, ascending by payment date.
func (r *ScheduleRepository) GetAll() ([]model.ScheduleEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, declaration_date, ex_date, record_date, payment_date, payment_group
		FROM schedule_entry
		ORDER BY payment_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule_entry table: %w", err)
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		var e model.ScheduleEntry
		var declaredStr, exDateStr, recordStr, payDateStr string

		err := rows.Scan(&e.ID, &declaredStr, &exDateStr, &recordStr, &payDateStr, &e.Group)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule_entry results: %w", err)
		}

		if e.DeclarationDate, err = dates.Parse(declaredStr); err != nil {
			return nil, fmt.Errorf("failed to parse declaration date: %w", err)
		}
		if e.ExDate, err = dates.Parse(exDateStr); err != nil {
			return nil, fmt.Errorf("failed to parse ex-date: %w", err)
		}
		if e.RecordDate, err = dates.Parse(recordStr); err != nil {
			return nil, fmt.Errorf("failed to parse record date: %w", err)
		}
		if e.PaymentDate, err = dates.Parse(payDateStr); err != nil {
			return nil, fmt.Errorf("failed to parse payment date: %w", err)
		}

		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule_entry table: %w", err)
	}

	return entries, nil
}
