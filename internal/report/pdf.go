package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF renders the report as an A4 portrait table: title, date and time
// lines, a green header band, orange rows for low stock, red rows with white
// text for out of stock, and a totals row.
func RenderPDF(rep Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Inventory Report", false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "T", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Inventory Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(0, 5, "Date: "+rep.GeneratedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Time: "+rep.GeneratedAt.Format("15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{55, 35, 35, 25, 40}
	headers := []string{"Product Name", "Category", "Supplier", "Price (EGP)", "Stock Quantity"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(76, 175, 80)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rep.Rows {
		fill := false
		switch row.Status {
		case StatusOutOfStock:
			pdf.SetFillColor(255, 0, 0)
			pdf.SetTextColor(255, 255, 255)
			fill = true
		case StatusLowStock:
			pdf.SetFillColor(255, 165, 0)
			pdf.SetTextColor(0, 0, 0)
			fill = true
		default:
			pdf.SetTextColor(0, 0, 0)
		}

		cells := []string{
			row.Name,
			row.Category,
			row.Supplier,
			fmt.Sprintf("%.2f", row.Price),
			row.QuantityLabel,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, c, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total Stock Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(widths[3]+widths[4], 8, fmt.Sprintf("%.2f (EGP)", rep.TotalStockValue), "1", 1, "C", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(153, 153, 153)
	pdf.CellFormat(0, 5, "Inventory Management System - Report", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}
