package app

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/TypoMastr/bazarteuco/internal/domain"
)

const mockSaleCount = 60

// seedCatalog returns the demo catalog of the mocked inventory API.
func seedCatalog() ([]domain.Category, []domain.Product) {
	cats := []domain.Category{
		{ID: 1, Name: "Eletrônicos", ViewMode: "TEXT", Color: "#10b981"},
		{ID: 2, Name: "Roupas & Moda", ViewMode: "TEXT", Color: "#8b5cf6"},
		{ID: 3, Name: "Casa & Jardim", ViewMode: "TEXT", Color: "#f59e0b"},
		{ID: 4, Name: "Livraria", ViewMode: "TEXT", Color: "#3b82f6"},
	}
	prods := []domain.Product{
		{ID: 101, Name: "Fone de Ouvido Bluetooth Pro", SellValue: 299.99, MinimumStock: 15,
			CategoryID: 1, Category: &domain.CategoryRef{ID: 1, Description: "Eletrônicos"}},
		{ID: 102, Name: "Suporte de Celular (Alumínio)", SellValue: 29.99, MinimumStock: 45,
			CategoryID: 1, Category: &domain.CategoryRef{ID: 1, Description: "Eletrônicos"}},
		{ID: 103, Name: "Camiseta Algodão Premium", SellValue: 49.90, MinimumStock: 120,
			CategoryID: 2, Category: &domain.CategoryRef{ID: 2, Description: "Roupas & Moda"},
			HasVariant: true, Variants: []domain.Variant{
				{ID: uuid.NewString(), ProductID: 103, Name: "P - Branca", SKU: "TS-W-S", SellValue: 49.90},
				{ID: uuid.NewString(), ProductID: 103, Name: "M - Branca", SKU: "TS-W-M", SellValue: 49.90},
				{ID: uuid.NewString(), ProductID: 103, Name: "G - Branca", SKU: "TS-W-L", SellValue: 49.90},
				{ID: uuid.NewString(), ProductID: 103, Name: "M - Preta", SKU: "TS-B-M", SellValue: 49.90},
			}},
		{ID: 104, Name: "Calça Jeans Slim", SellValue: 119.90, MinimumStock: 20,
			CategoryID: 2, Category: &domain.CategoryRef{ID: 2, Description: "Roupas & Moda"}},
		{ID: 105, Name: "Vaso de Cerâmica Moderno", SellValue: 85.00, MinimumStock: 5,
			CategoryID: 3, Category: &domain.CategoryRef{ID: 3, Description: "Casa & Jardim"}},
		{ID: 106, Name: "O Futuro da IA (Capa Dura)", SellValue: 59.90, MinimumStock: 12,
			CategoryID: 4, Category: &domain.CategoryRef{ID: 4, Description: "Livraria"}},
	}
	return cats, prods
}

// generateSales fabricates a recent sale history: n sales spread over the
// last 10 days, a few of them canceled, each with 1-4 line items drawn from
// the catalog. Returned newest first.
func generateSales(products []domain.Product, n int) []domain.Sale {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	sales := make([]domain.Sale, 0, n)
	for i := 0; i < n; i++ {
		day := now.AddDate(0, 0, -r.Intn(10))
		stamp := time.Date(day.Year(), day.Month(), day.Day(),
			9+r.Intn(12), r.Intn(60), 0, 0, day.Location())

		itemCount := 1 + r.Intn(4)
		items := make([]domain.SaleItem, 0, itemCount)
		total := 0.0
		for j := 0; j < itemCount; j++ {
			p := products[r.Intn(len(products))]
			qty := 1 + r.Intn(2)
			net := p.SellValue * float64(qty)
			items = append(items, domain.SaleItem{
				Product:   domain.ProductSnapshot{ID: p.ID, Name: p.Name, SellValue: p.SellValue},
				Quantity:  qty,
				UsedPrice: p.SellValue,
				NetItem:   net,
			})
			total += net
		}

		sales = append(sales, domain.Sale{
			ID:               fmt.Sprintf("PED-%d", 202400+i),
			OrderName:        fmt.Sprintf("Pedido #%d", 202400+i),
			CreationDate:     stamp.Format(time.RFC3339),
			TotalAmount:      total,
			StatusNF:         "SUCCESS",
			IsCanceled:       r.Float64() > 0.95,
			UniqueIdentifier: uuid.NewString(),
			Customer: &domain.Customer{
				ID:          i,
				PersonType:  "FISICA",
				CpfCnpj:     "000.000.000-00",
				CompanyName: "Cliente Exemplo",
			},
			Items: items,
		})
	}

	sort.Slice(sales, func(i, j int) bool { return sales[i].CreationDate > sales[j].CreationDate })
	return sales
}
