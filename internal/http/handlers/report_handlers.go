package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/karimhasan/inventory-manager/internal/report"
)

const excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportPDFReportHandler godoc
// @Summary Export the inventory report as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /reports/inventory.pdf [get]
func ExportPDFReportHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	rep := report.Build(products, time.Now())
	out, err := report.RenderPDF(rep)
	if err != nil {
		http.Error(w, "could not render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Inventory Report.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}

// ExportExcelReportHandler godoc
// @Summary Export the inventory report as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /reports/inventory.xlsx [get]
func ExportExcelReportHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	rep := report.Build(products, time.Now())
	out, err := report.RenderExcel(rep)
	if err != nil {
		http.Error(w, "could not render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", excelMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="Inventory Report.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}
