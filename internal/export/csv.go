package export

import (
	"encoding/csv"
	"io"
)

// WriteSplitCSV writes an EXPENSES section, an INCOME section and the net.
// Expense amounts are always written negative.
func WriteSplitCSV(w io.Writer, rows []Row) error {
	expenses, income, totals := Split(rows)

	cw := csv.NewWriter(w)
	records := [][]string{{"EXPENSES:"}, {"Date", "Description", "Amount"}}
	for _, r := range expenses {
		records = append(records, []string{r.Date, r.Description, money(r.Amount)})
	}
	records = append(records, []string{"TOTAL EXPENSES:", money(-totals.Expenses)})
	if err := writeBlock(cw, w, records); err != nil {
		return err
	}

	records = [][]string{{"INCOME:"}, {"Date", "Description", "Amount"}}
	for _, r := range income {
		records = append(records, []string{r.Date, r.Description, money(r.Amount)})
	}
	records = append(records, []string{"TOTAL INCOME:", money(totals.Income)})
	if err := writeBlock(cw, w, records); err != nil {
		return err
	}

	return writeRecords(cw, [][]string{{"NET (Income - Expenses):", money(totals.Net())}})
}

// WriteLedgerCSV writes every row with a running balance and a summary.
func WriteLedgerCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"Date", "Description", "Amount", "Balance"}}
	balance := 0.0
	for _, r := range rows {
		balance += r.Amount
		records = append(records, []string{r.Date, r.Description, money(r.Amount), money(balance)})
	}
	if err := writeBlock(cw, w, records); err != nil {
		return err
	}

	_, _, totals := Split(rows)
	return writeRecords(cw, [][]string{
		{"SUMMARY"},
		{"Total Income", money(totals.Income)},
		{"Total Expenses", money(totals.Expenses)},
		{"Net Change", money(totals.Net())},
	})
}

// writeBlock writes records followed by an empty line.
func writeBlock(cw *csv.Writer, w io.Writer, records [][]string) error {
	if err := writeRecords(cw, records); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeRecords(cw *csv.Writer, records [][]string) error {
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
