package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Inventory Report"

// RenderExcel renders the report as a styled worksheet: merged title, date
// and time row, grey header band at row 4, the same low/out-of-stock row
// colouring as the PDF, and a merged dark-blue totals row.
func RenderExcel(rep Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 22},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F8FF"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheetName, "A1", "E1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A1", "Inventory Report")
	f.SetCellStyle(sheetName, "A1", "E1", titleStyle)

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A2", "Date: "+rep.GeneratedAt.Format("2006-01-02"))
	f.SetCellValue(sheetName, "B2", "Time: "+rep.GeneratedAt.Format("15:04:05"))
	f.SetCellStyle(sheetName, "A2", "B2", boldStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headers := []string{"Product Name", "Category", "Supplier", "Price (EGP)", "Stock Quantity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", "E4", headerStyle)

	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	lowStockStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFA500"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	outOfStockStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF0000"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, row := range rep.Rows {
		rowNum := i + 5
		values := []any{row.Name, row.Category, row.Supplier, row.Price, row.QuantityLabel}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheetName, cell, v)
		}

		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(5, rowNum)
		switch row.Status {
		case StatusOutOfStock:
			f.SetCellStyle(sheetName, first, last, outOfStockStyle)
		case StatusLowStock:
			f.SetCellStyle(sheetName, first, last, lowStockStyle)
		default:
			f.SetCellStyle(sheetName, first, last, centerStyle)
		}
	}

	totalRow := len(rep.Rows) + 6
	labelFirst, _ := excelize.CoordinatesToCellName(1, totalRow)
	labelLast, _ := excelize.CoordinatesToCellName(3, totalRow)
	valueFirst, _ := excelize.CoordinatesToCellName(4, totalRow)
	valueLast, _ := excelize.CoordinatesToCellName(5, totalRow)
	if err := f.MergeCell(sheetName, labelFirst, labelLast); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheetName, valueFirst, valueLast); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, labelFirst, "Total Stock Value =")
	f.SetCellValue(sheetName, valueFirst, fmt.Sprintf("%.2f (EGP)", rep.TotalStockValue))

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00008B"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	f.SetCellStyle(sheetName, labelFirst, valueLast, totalStyle)

	if err := f.SetColWidth(sheetName, "A", "E", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render Excel report: %w", err)
	}
	return buf.Bytes(), nil
}
