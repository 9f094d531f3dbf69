package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves transaction downloads as CSV and XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeader = []string{"Date", "Title", "Category", "Type", "Amount", "Description"}

// exportRecords builds the export rows, header first. Transactions
// without a category are rendered as "Uncategorized" and the type is
// capitalized.
func exportRecords(txs []models.Transaction) [][]string {
	records := make([][]string, 0, len(txs)+1)
	records = append(records, exportHeader)
	for i := range txs {
		t := &txs[i]
		category := "Uncategorized"
		if t.Category != nil {
			category = t.Category.Name
		}
		records = append(records, []string{
			t.Date.Format("2006-01-02"),
			t.Title,
			category,
			util.Capitalize(t.Type),
			t.Amount.StringFixed(2),
			t.Description,
		})
	}
	return records
}

func (h *ExportHandler) loadAll(c *gin.Context) ([]models.Transaction, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Preload("Category").
		Order("date DESC").
		Find(&txs).Error; err != nil {
		serverError(c, "could not load transactions")
		return nil, false
	}
	return txs, true
}

// ExportCSV streams all of the user's transactions, unfiltered, newest
// first.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, ok := h.loadAll(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="moneymap_transactions.csv"`)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()
	for _, record := range exportRecords(txs) {
		if err := writer.Write(record); err != nil {
			return
		}
	}
}

// ExportXLSX writes the same columns as the CSV export to a workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, ok := h.loadAll(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		serverError(c, "could not create worksheet")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for rowIdx, record := range exportRecords(txs) {
		for colIdx, value := range record {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, rowIdx+1)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 25)
	_ = f.SetColWidth(sheetName, "C", "C", 18)
	_ = f.SetColWidth(sheetName, "D", "D", 10)
	_ = f.SetColWidth(sheetName, "E", "E", 12)
	_ = f.SetColWidth(sheetName, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="moneymap_transactions.xlsx"`)

	if err := f.Write(c.Writer); err != nil {
		serverError(c, "could not write workbook")
	}
}
