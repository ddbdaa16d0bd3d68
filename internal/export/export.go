// Package export renders due reminders as spreadsheets: CSV or XLSX, either
// split into expenses and income or as one running-balance ledger.
package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"reminder-extractor/internal/model"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type Layout string

const (
	// LayoutSplit lists expenses (negative amounts) and income (positive
	// amounts) separately. Reminders without an amount are left out.
	LayoutSplit Layout = "split"
	// LayoutLedger lists every reminder by date with a running balance.
	LayoutLedger Layout = "ledger"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrUnknownLayout = errors.New("unknown export layout")
)

const dateLayout = "2006-01-02"

// ParseFormat accepts "csv" and "xlsx" in any case; empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseLayout accepts "split" and "ledger"; empty means split.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutSplit:
		return LayoutSplit, nil
	case LayoutLedger, "week", "weekly":
		return LayoutLedger, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Row is one line of an export.
type Row struct {
	Date        string
	Description string
	Amount      float64
}

// Totals summarises a set of rows. Expenses is a positive magnitude.
type Totals struct {
	Income   float64
	Expenses float64
}

func (t Totals) Net() float64 { return t.Income - t.Expenses }

// Rows converts reminders to rows ordered by due date, formatting dates in loc.
func Rows(reminders []model.Reminder, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}
	sorted := make([]model.Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Due, sorted[j].Due
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})

	rows := make([]Row, 0, len(sorted))
	for _, r := range sorted {
		row := Row{Description: r.Title}
		if r.Due != nil {
			row.Date = r.Due.In(loc).Format(dateLayout)
		}
		if r.Amount != nil {
			row.Amount = *r.Amount
		}
		rows = append(rows, row)
	}
	return rows
}

// Split partitions rows by amount sign and totals them.
func Split(rows []Row) (expenses, income []Row, totals Totals) {
	for _, r := range rows {
		switch {
		case r.Amount < 0:
			expenses = append(expenses, r)
			totals.Expenses += -r.Amount
		case r.Amount > 0:
			income = append(income, r)
			totals.Income += r.Amount
		}
	}
	return expenses, income, totals
}

// Write renders rows to w.
func Write(w io.Writer, rows []Row, format Format, layout Layout) error {
	switch format {
	case FormatCSV:
		if layout == LayoutLedger {
			return WriteLedgerCSV(w, rows)
		}
		return WriteSplitCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows, layout)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
