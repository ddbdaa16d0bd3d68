package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetExpenses = "Expenses"
	sheetIncome   = "Income"
	sheetLedger   = "Ledger"
	sheetSummary  = "Summary"

	// excelize built-in number format 4: #,##0.00
	numFmtMoney = 4
)

// WriteXLSX writes a workbook: Expenses and Income sheets for the split
// layout or a Ledger sheet for the ledger layout, plus a Summary sheet.
func WriteXLSX(w io.Writer, rows []Row, layout Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	expenses, income, totals := Split(rows)

	var sheets []string
	if layout == LayoutLedger {
		sheets = []string{sheetLedger}
	} else {
		sheets = []string{sheetExpenses, sheetIncome}
	}
	sheets = append(sheets, sheetSummary)

	// NewFile starts with Sheet1; rename it to the first sheet.
	if err := f.SetSheetName("Sheet1", sheets[0]); err != nil {
		return fmt.Errorf("xlsx rename sheet: %w", err)
	}
	for _, s := range sheets[1:] {
		if _, err := f.NewSheet(s); err != nil {
			return fmt.Errorf("xlsx new sheet %s: %w", s, err)
		}
	}

	if layout == LayoutLedger {
		balance := 0.0
		data := make([][]any, 0, len(rows))
		for _, r := range rows {
			balance += r.Amount
			data = append(data, []any{r.Date, r.Description, r.Amount, balance})
		}
		if err := writeSheet(f, sheetLedger, []string{"Date", "Description", "Amount", "Balance"}, data, headerStyle, moneyStyle); err != nil {
			return err
		}
	} else {
		if err := writeSheet(f, sheetExpenses, []string{"Date", "Description", "Amount"}, toData(expenses), headerStyle, moneyStyle); err != nil {
			return err
		}
		if err := writeSheet(f, sheetIncome, []string{"Date", "Description", "Amount"}, toData(income), headerStyle, moneyStyle); err != nil {
			return err
		}
	}

	summary := [][]any{
		{"Total Income", totals.Income},
		{"Total Expenses", totals.Expenses},
		{"Net", totals.Net()},
	}
	if err := writeSheet(f, sheetSummary, []string{"Metric", "Value"}, summary, headerStyle, moneyStyle); err != nil {
		return err
	}

	idx, _ := f.GetSheetIndex(sheets[0])
	f.SetActiveSheet(idx)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func toData(rows []Row) [][]any {
	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.Date, r.Description, r.Amount})
	}
	return data
}

// writeSheet writes a header row and data rows. Numeric cells get the money style.
func writeSheet(f *excelize.File, sheet string, header []string, data [][]any, headerStyle, moneyStyle int) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("xlsx header %s: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	_ = f.SetCellStyle(sheet, "A1", last, headerStyle)

	for i, row := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("xlsx row %s: %w", sheet, err)
		}
		for col, v := range row {
			if _, ok := v.(float64); ok {
				c, _ := excelize.CoordinatesToCellName(col+1, i+2)
				_ = f.SetCellStyle(sheet, c, c, moneyStyle)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "D", 14)
	return nil
}
