package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/TypoMastr/bazarteuco/internal/usecase"
)

func writeReportCSV(w http.ResponseWriter, rep *usecase.DailyReport) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=vendas_%s.csv", rep.Day))
	fmt.Fprintln(w, "product_id,product_name,quantity,total_value,avg_unit_price")
	for _, a := range rep.Products {
		fmt.Fprintf(w, "%d,%s,%d,%.2f,%.2f\n",
			a.ProductID, strings.ReplaceAll(a.ProductName, ",", " "), a.Quantity, a.TotalValue, a.AverageUnitPrice())
	}
	fmt.Fprintf(w, "TOTAL,,%d,%.2f,\n", rep.TotalItems, rep.TotalRevenue)
}

func writeReportXLSX(w http.ResponseWriter, rep *usecase.DailyReport) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	_ = f.SetCellValue(sheet, "A1", "Dia")
	_ = f.SetCellValue(sheet, "B1", rep.Day)
	_ = f.SetCellValue(sheet, "A2", "Receita")
	_ = f.SetCellValue(sheet, "B2", rep.TotalRevenue)
	_ = f.SetCellValue(sheet, "A3", "Transações")
	_ = f.SetCellValue(sheet, "B3", rep.TransactionCount)
	_ = f.SetCellValue(sheet, "A4", "Ticket Médio")
	_ = f.SetCellValue(sheet, "B4", rep.AverageTicket)
	_ = f.SetCellValue(sheet, "A5", "Total Itens")
	_ = f.SetCellValue(sheet, "B5", rep.TotalItems)

	headers := []string{"Produto", "Quantidade", "Total", "Unit. Médio"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 7)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, a := range rep.Products {
		vals := []any{a.ProductName, a.Quantity, a.TotalValue, a.AverageUnitPrice()}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+8)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=vendas_%s.xlsx", rep.Day))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx export")
	}
}
