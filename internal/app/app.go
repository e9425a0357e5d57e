package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/TypoMastr/bazarteuco/internal/adapters/httpserver"
	"github.com/TypoMastr/bazarteuco/internal/adapters/repo/memory"
	"github.com/TypoMastr/bazarteuco/internal/adapters/repo/postgres"
	"github.com/TypoMastr/bazarteuco/internal/domain"
	"github.com/TypoMastr/bazarteuco/internal/nav"
	"github.com/TypoMastr/bazarteuco/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	ProductUC   *usecase.ProductUC
	CategoryUC  *usecase.CategoryUC
	DashboardUC *usecase.DashboardUC
	AuthUC      *usecase.AuthUC
	Sales       domain.SaleRepo
	Navigator   *nav.Navigator
}

// New wires the console. With a nil db it runs against the in-memory mock
// gateway, seeded with the built-in demo catalog; kv is the injected
// credential store.
func New(db *gorm.DB, kv domain.KeyValue) (*App, error) {
	a := &App{DB: db}

	var (
		prodRepo domain.ProductRepo
		catRepo  domain.CategoryRepo
		saleRepo domain.SaleRepo
	)
	if db != nil {
		prodRepo = postgres.NewProductRepo(db)
		catRepo = postgres.NewCategoryRepo(db)
		saleRepo = postgres.NewSaleRepo(db)
	} else {
		cats, prods := seedCatalog()
		prodRepo = memory.NewProductRepo(prods)
		catRepo = memory.NewCategoryRepo(cats)
		saleRepo = memory.NewSaleRepo(generateSales(prods, mockSaleCount))
	}

	a.ProductUC = &usecase.ProductUC{Products: prodRepo, Categories: catRepo}
	a.CategoryUC = &usecase.CategoryUC{Categories: catRepo}
	a.DashboardUC = &usecase.DashboardUC{Sales: saleRepo}
	a.AuthUC = &usecase.AuthUC{Store: kv}
	a.Sales = saleRepo

	authed, err := a.AuthUC.Check()
	if err != nil {
		return nil, err
	}
	a.Navigator = nav.New(authed)

	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.CategoryUC, a.DashboardUC, a.AuthUC, a.Sales, a.Navigator)
}

// MigrateAndSeed prepares the postgres schema and, when the tables are
// still empty, loads the same demo catalog and sale history the mock
// gateway carries. Sales stay read-only afterwards.
func (a *App) MigrateAndSeed() error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.AutoMigrate(
		&domain.Category{}, &domain.Product{}, &domain.Variant{}, &domain.Sale{}, &domain.SaleItem{},
	); err != nil {
		return err
	}

	var count int64
	if err := a.DB.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		cats, prods := seedCatalog()
		for i := range cats {
			if err := a.DB.Create(&cats[i]).Error; err != nil {
				return err
			}
		}
		for i := range prods {
			if err := a.DB.Create(&prods[i]).Error; err != nil {
				return err
			}
		}
	}

	if err := a.DB.Model(&domain.Sale{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		_, prods := seedCatalog()
		for _, s := range generateSales(prods, mockSaleCount) {
			if err := a.DB.Create(&s).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
