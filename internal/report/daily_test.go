package report

import (
	"math/rand"
	"testing"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

func mkSale(id, date string, total float64, canceled bool, items ...domain.SaleItem) domain.Sale {
	return domain.Sale{ID: id, CreationDate: date, TotalAmount: total, IsCanceled: canceled, Items: items}
}

func item(pid uint, name string, qty int, net float64) domain.SaleItem {
	return domain.SaleItem{Product: domain.ProductSnapshot{ID: pid, Name: name}, Quantity: qty, NetItem: net}
}

func TestSelectDailyFiltersByDayAndCancellation(t *testing.T) {
	sales := []domain.Sale{
		mkSale("s1", "2024-01-01T10:00:00Z", 100, false),
		mkSale("s2", "2024-01-01T11:00:00Z", 50, true),
		mkSale("s3", "2024-01-02T09:00:00Z", 30, false),
	}
	sum := SelectDaily(sales, "2024-01-01")
	if sum.TotalRevenue != 100 {
		t.Fatalf("revenue: got %v, want 100", sum.TotalRevenue)
	}
	if sum.TransactionCount != 1 {
		t.Fatalf("transactions: got %d, want 1", sum.TransactionCount)
	}
}

func TestSelectDailyPerProduct(t *testing.T) {
	sale := mkSale("s1", "2024-03-05T14:00:00Z", 35, false,
		item(1, "A", 2, 20),
		item(2, "B", 1, 15),
	)
	sum := SelectDaily([]domain.Sale{sale}, "2024-03-05")

	a, ok := sum.Product(1)
	if !ok || a.Quantity != 2 || a.TotalValue != 20 {
		t.Fatalf("bucket A: got %+v ok=%v", a, ok)
	}
	b, ok := sum.Product(2)
	if !ok || b.Quantity != 1 || b.TotalValue != 15 {
		t.Fatalf("bucket B: got %+v ok=%v", b, ok)
	}

	top := sum.TopByQuantity(1)
	if len(top) != 1 || top[0].ProductID != 1 {
		t.Fatalf("top by quantity: got %+v", top)
	}
	det := sum.ByNetValue()
	if det[0].ProductID != 1 {
		t.Fatalf("top by value: got %+v", det[0])
	}
}

func TestSelectDailyEmpty(t *testing.T) {
	sum := SelectDaily(nil, "2024-01-01")
	if sum.TotalRevenue != 0 || sum.TransactionCount != 0 || len(sum.PerProduct()) != 0 {
		t.Fatalf("unexpected: %+v", sum)
	}
	if sum.AverageTicket() != 0 {
		t.Fatalf("average ticket on empty day: got %v, want 0", sum.AverageTicket())
	}
	if sum.TotalItems() != 0 {
		t.Fatalf("total items: got %d", sum.TotalItems())
	}
}

func TestSelectDailyFallbackBucket(t *testing.T) {
	sale := mkSale("s1", "2024-01-01T08:00:00Z", 12, false,
		item(0, "sem cadastro", 3, 12),
	)
	sum := SelectDaily([]domain.Sale{sale}, "2024-01-01")
	b, ok := sum.Product(0)
	if !ok {
		t.Fatalf("fallback bucket missing")
	}
	if b.Quantity != 3 || b.TotalValue != 12 {
		t.Fatalf("fallback bucket: got %+v", b)
	}
}

func TestSelectDailyAccumulatesAcrossSales(t *testing.T) {
	sales := []domain.Sale{
		mkSale("s1", "2024-01-01T08:00:00Z", 30, false, item(7, "X", 2, 20), item(8, "Y", 1, 10)),
		mkSale("s2", "2024-01-01T09:00:00Z", 25, false, item(7, "X", 1, 10), item(7, "X", 1, 15)),
	}
	sum := SelectDaily(sales, "2024-01-01")
	x, _ := sum.Product(7)
	if x.Quantity != 4 || x.TotalValue != 45 {
		t.Fatalf("bucket X: got %+v", x)
	}
	if sum.TotalItems() != 5 {
		t.Fatalf("total items: got %d, want 5", sum.TotalItems())
	}
	if got := x.AverageUnitPrice(); got != 45.0/4 {
		t.Fatalf("avg unit price: got %v", got)
	}
}

func TestTopByQuantityStableOnTies(t *testing.T) {
	sales := []domain.Sale{
		mkSale("s1", "2024-01-01T08:00:00Z", 0, false, item(1, "first", 2, 5)),
		mkSale("s2", "2024-01-01T09:00:00Z", 0, false, item(2, "second", 2, 50)),
		mkSale("s3", "2024-01-01T10:00:00Z", 0, false, item(3, "third", 5, 1)),
	}
	sum := SelectDaily(sales, "2024-01-01")
	top := sum.TopByQuantity(3)
	if top[0].ProductID != 3 {
		t.Fatalf("rank 1: got %d, want 3", top[0].ProductID)
	}
	// products 1 and 2 tie on quantity; the first seen wins
	if top[1].ProductID != 1 || top[2].ProductID != 2 {
		t.Fatalf("tie order: got %d, %d", top[1].ProductID, top[2].ProductID)
	}
}

func TestSelectDailyIdempotent(t *testing.T) {
	sales := []domain.Sale{
		mkSale("s1", "2024-01-01T08:00:00Z", 30, false, item(1, "A", 2, 20), item(2, "B", 1, 10)),
		mkSale("s2", "2024-01-02T08:00:00Z", 99, false, item(1, "A", 1, 99)),
	}
	first := SelectDaily(sales, "2024-01-01")
	second := SelectDaily(sales, "2024-01-01")
	if first.TotalRevenue != second.TotalRevenue || first.TransactionCount != second.TransactionCount {
		t.Fatalf("summaries differ: %+v vs %+v", first, second)
	}
	fp, sp := first.PerProduct(), second.PerProduct()
	if len(fp) != len(sp) {
		t.Fatalf("bucket counts differ")
	}
	for i := range fp {
		if fp[i] != sp[i] {
			t.Fatalf("bucket %d differs: %+v vs %+v", i, fp[i], sp[i])
		}
	}
}

func TestSelectDailyDoesNotMutateInput(t *testing.T) {
	sales := []domain.Sale{
		mkSale("s1", "2024-01-01T08:00:00Z", 30, false, item(1, "A", 2, 20)),
	}
	SelectDaily(sales, "2024-01-01")
	if sales[0].Items[0].Quantity != 2 || sales[0].TotalAmount != 30 {
		t.Fatalf("input mutated: %+v", sales[0])
	}
}

func TestSelectDailyRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	days := []string{"2024-05-01", "2024-05-02", "2024-05-03"}

	var sales []domain.Sale
	for i := 0; i < 300; i++ {
		day := days[r.Intn(len(days))]
		s := mkSale("", day+"T10:30:00Z", float64(r.Intn(500)), r.Intn(4) == 0)
		for j := 0; j < 1+r.Intn(3); j++ {
			pid := uint(r.Intn(5))
			s.Items = append(s.Items, item(pid, "p", 1+r.Intn(3), float64(r.Intn(100))))
		}
		sales = append(sales, s)
	}

	for _, day := range days {
		sum := SelectDaily(sales, day)

		wantRevenue := 0.0
		wantCount := 0
		wantQty := map[uint]int{}
		wantVal := map[uint]float64{}
		for _, s := range sales {
			if s.IsCanceled || s.CreationDate[:10] != day {
				continue
			}
			wantRevenue += s.TotalAmount
			wantCount++
			for _, it := range s.Items {
				wantQty[it.Product.ID] += it.Quantity
				wantVal[it.Product.ID] += it.NetItem
			}
		}

		if sum.TotalRevenue != wantRevenue {
			t.Fatalf("day %s revenue: got %v, want %v", day, sum.TotalRevenue, wantRevenue)
		}
		if sum.TransactionCount != wantCount {
			t.Fatalf("day %s transactions: got %d, want %d", day, sum.TransactionCount, wantCount)
		}
		if len(sum.PerProduct()) != len(wantQty) {
			t.Fatalf("day %s buckets: got %d, want %d", day, len(sum.PerProduct()), len(wantQty))
		}
		for pid, q := range wantQty {
			b, ok := sum.Product(pid)
			if !ok || b.Quantity != q || b.TotalValue != wantVal[pid] {
				t.Fatalf("day %s product %d: got %+v, want qty=%d val=%v", day, pid, b, q, wantVal[pid])
			}
		}
	}
}
