package service

import (
	"fmt"

	"github.com/mphinance/yieldmax/internal/apperrors"
	"github.com/mphinance/yieldmax/internal/config"
	"github.com/mphinance/yieldmax/internal/model"
)

// HoldingService answers holdings, account, and tax queries over the
// static positions registry.
//
// Income figures here use the flat average-per-share weekly dividend
// constant, not per-symbol averages derived from records. That is a
// documented approximation inherited from the dataset's definition;
// changing it would change every visible total.
type HoldingService struct {
	snapshots *SnapshotService
	cfg       config.ProjectionConfig
}

// NewHoldingService creates a new HoldingService with the provided dependencies.
func NewHoldingService(snapshots *SnapshotService, cfg config.ProjectionConfig) *HoldingService {
	return &HoldingService{
		snapshots: snapshots,
		cfg:       cfg,
	}
}

// Holdings returns all positions per symbol, in registry order.
func (s *HoldingService) Holdings() []model.SymbolPositions {
	return s.snapshots.Current().Holdings
}

// ByAccountType returns the positions of the given account type, keeping
// only symbols that have at least one matching position.
func (s *HoldingService) ByAccountType(accountType model.AccountType) ([]model.SymbolPositions, error) {
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, accountType)
	}

	filtered := make([]model.SymbolPositions, 0)
	for _, sp := range s.snapshots.Current().Holdings {
		var positions []model.AccountPosition
		for _, p := range sp.Positions {
			if p.AccountType == accountType {
				positions = append(positions, p)
			}
		}
		if len(positions) > 0 {
			filtered = append(filtered, model.SymbolPositions{Symbol: sp.Symbol, Positions: positions})
		}
	}
	return filtered, nil
}

// AccountSummary aggregates positions per account name: total shares,
// the distinct symbols held (in registry order), and the approximated
// monthly income of shares × avgWeeklyPerShare × 4.
func (s *HoldingService) AccountSummary() map[string]model.AccountSummary {
	accounts := make(map[string]model.AccountSummary)

	for _, sp := range s.snapshots.Current().Holdings {
		for _, p := range sp.Positions {
			summary := accounts[p.AccountName]
			summary.AccountType = p.AccountType
			summary.TotalShares += p.Shares
			if !containsSymbol(summary.Symbols, sp.Symbol) {
				summary.Symbols = append(summary.Symbols, sp.Symbol)
			}
			summary.EstimatedMonthlyIncome += float64(p.Shares) * s.cfg.AvgWeeklyPerShare * 4
			accounts[p.AccountName] = summary
		}
	}

	return accounts
}

// TaxBreakdown projects annual income per account-type bucket and
// applies the flat tax rate to the taxable side. Tax-sheltered income
// carries no immediate tax.
func (s *HoldingService) TaxBreakdown() model.TaxBreakdown {
	taxableMonthly := s.monthlyIncomeForType(model.AccountTaxable)
	shelteredMonthly := s.monthlyIncomeForType(model.AccountTaxSheltered)

	taxableAnnual := taxableMonthly * 12
	shelteredAnnual := shelteredMonthly * 12

	return model.TaxBreakdown{
		Taxable: model.TaxBucket{
			MonthlyIncome:  taxableMonthly,
			AnnualIncome:   taxableAnnual,
			EstimatedTaxes: taxableAnnual * s.cfg.FlatTaxRate,
			AfterTaxIncome: taxableAnnual * (1 - s.cfg.FlatTaxRate),
		},
		TaxSheltered: model.TaxBucket{
			MonthlyIncome:  shelteredMonthly,
			AnnualIncome:   shelteredAnnual,
			EstimatedTaxes: 0,
			AfterTaxIncome: shelteredAnnual,
		},
	}
}

func (s *HoldingService) monthlyIncomeForType(accountType model.AccountType) float64 {
	var monthly float64
	for _, sp := range s.snapshots.Current().Holdings {
		for _, p := range sp.Positions {
			if p.AccountType == accountType {
				monthly += float64(p.Shares) * s.cfg.AvgWeeklyPerShare * 4
			}
		}
	}
	return monthly
}

func containsSymbol(symbols []string, symbol string) bool {
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
