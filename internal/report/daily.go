// Package report aggregates raw sale records into daily summaries for the
// dashboard. Everything here is pure: inputs are never mutated and the same
// input always produces the same output.
package report

import (
	"sort"
	"strings"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

// ProductAgg accumulates one product's sold quantity and net revenue across
// a day. ProductID 0 is the bucket for line items whose product snapshot
// carried no id.
type ProductAgg struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	TotalValue  float64 `json:"totalValue"`
}

// AverageUnitPrice is TotalValue spread over Quantity. A bucket only exists
// once at least one item landed in it, so Quantity is always >= 1.
func (a ProductAgg) AverageUnitPrice() float64 {
	return a.TotalValue / float64(a.Quantity)
}

// DailySummary is the aggregate for one calendar day. Product buckets keep
// the order in which their product was first seen across the included sales.
type DailySummary struct {
	Day              string
	TotalRevenue     float64
	TransactionCount int

	buckets []ProductAgg
	index   map[uint]int
}

// SelectDaily folds sales into the summary for day (a YYYY-MM-DD string).
// A sale counts iff its creation date starts with day and it is not
// canceled. The comparison is a plain string prefix match: whatever
// timezone the caller applied when choosing day is taken as-is.
func SelectDaily(sales []domain.Sale, day string) DailySummary {
	s := DailySummary{Day: day, index: make(map[uint]int)}
	for _, sale := range sales {
		if sale.IsCanceled || !strings.HasPrefix(sale.CreationDate, day) {
			continue
		}
		s.TotalRevenue += sale.TotalAmount
		s.TransactionCount++
		for _, it := range sale.Items {
			pid := it.Product.ID
			i, ok := s.index[pid]
			if !ok {
				i = len(s.buckets)
				s.index[pid] = i
				s.buckets = append(s.buckets, ProductAgg{ProductID: pid, ProductName: it.Product.Name})
			}
			s.buckets[i].Quantity += it.Quantity
			s.buckets[i].TotalValue += it.NetItem
		}
	}
	return s
}

// PerProduct returns the product buckets in first-seen order.
func (s DailySummary) PerProduct() []ProductAgg {
	out := make([]ProductAgg, len(s.buckets))
	copy(out, s.buckets)
	return out
}

// Product looks up a single bucket by product id.
func (s DailySummary) Product(id uint) (ProductAgg, bool) {
	i, ok := s.index[id]
	if !ok {
		return ProductAgg{}, false
	}
	return s.buckets[i], true
}

// TopByQuantity ranks buckets by quantity descending and keeps at most n.
// Ties keep first-seen order, so the product that appeared earlier across
// the day's sales ranks first.
func (s DailySummary) TopByQuantity(n int) []ProductAgg {
	out := s.PerProduct()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ByNetValue returns all buckets ordered by net revenue descending, the
// ordering of the detailed report view.
func (s DailySummary) ByNetValue() []ProductAgg {
	out := s.PerProduct()
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })
	return out
}

// AverageTicket is revenue per transaction, 0 for an empty day.
func (s DailySummary) AverageTicket() float64 {
	if s.TransactionCount == 0 {
		return 0
	}
	return s.TotalRevenue / float64(s.TransactionCount)
}

// TotalItems is the total unit count sold across all buckets.
func (s DailySummary) TotalItems() int {
	n := 0
	for _, b := range s.buckets {
		n += b.Quantity
	}
	return n
}
