package usecase

import (
	"context"
	"time"

	"github.com/TypoMastr/bazarteuco/internal/domain"
	"github.com/TypoMastr/bazarteuco/internal/report"
)

const dayLayout = "2006-01-02"

// topProductCount matches the highlight slots on the dashboard.
const topProductCount = 3

type DashboardUC struct {
	Sales domain.SaleRepo
}

// DailyReport is the presentation view of one day: the scalar summary plus
// the highlight ranking (by quantity) and the detailed breakdown (by net
// value). Averages are derived here, never stored.
type DailyReport struct {
	Day              string              `json:"day"`
	TotalRevenue     float64             `json:"totalRevenue"`
	TransactionCount int                 `json:"transactionCount"`
	AverageTicket    float64             `json:"averageTicket"`
	TotalItems       int                 `json:"totalItems"`
	TopProducts      []report.ProductAgg `json:"topProducts"`
	Products         []report.ProductAgg `json:"products"`
}

// Daily builds the report for day (YYYY-MM-DD, empty means today). The full
// sale history is fetched once and folded in memory.
func (uc *DashboardUC) Daily(ctx context.Context, day string) (*DailyReport, error) {
	if day == "" {
		day = time.Now().Format(dayLayout)
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, domain.Validationf("day must be YYYY-MM-DD, got %q", day)
	}
	sales, err := uc.Sales.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := report.SelectDaily(sales, day)
	return &DailyReport{
		Day:              day,
		TotalRevenue:     sum.TotalRevenue,
		TransactionCount: sum.TransactionCount,
		AverageTicket:    sum.AverageTicket(),
		TotalItems:       sum.TotalItems(),
		TopProducts:      sum.TopByQuantity(topProductCount),
		Products:         sum.ByNetValue(),
	}, nil
}
