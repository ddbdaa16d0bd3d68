package usecase

import (
	"context"
	"fmt"

	"reminder-extractor/internal/export"
	"reminder-extractor/internal/reminder"
)

// Export writes the incomplete reminders of a list due in the window.
// Amounts are recovered from the "Amount:" line of the notes.
func (uc *implUseCase) Export(ctx context.Context, input reminder.ExportInput) (reminder.ExportOutput, error) {
	if input.Output == nil {
		return reminder.ExportOutput{}, reminder.ErrNoOutput
	}
	if uc.lister == nil {
		return reminder.ExportOutput{}, reminder.ErrExportNotSupport
	}
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return reminder.ExportOutput{}, err
	}
	layout, err := export.ParseLayout(input.Layout)
	if err != nil {
		return reminder.ExportOutput{}, err
	}

	from := input.From
	if from.IsZero() {
		from = uc.dateMath.StartOfDay(uc.cfg.Now())
	}
	to := input.To
	if to.IsZero() {
		days := input.Days
		if days <= 0 {
			days = DefaultExportDays
		}
		to = from.AddDate(0, 0, days)
	}
	if to.Before(from) {
		return reminder.ExportOutput{}, reminder.ErrInvalidWindow
	}

	list := uc.listName(input.ListName)
	out := reminder.ExportOutput{List: list}

	reminders, err := uc.lister.ListDue(ctx, list, from, to)
	if err != nil {
		return out, fmt.Errorf("list due reminders: %w", err)
	}
	for i := range reminders {
		if reminders[i].Amount != nil {
			continue
		}
		if v, ok := reminder.AmountFromNotes(reminders[i].Notes); ok {
			reminders[i].Amount = &v
		}
	}

	rows := export.Rows(reminders, uc.dateMath.Location())
	if err := export.Write(input.Output, rows, format, layout); err != nil {
		return out, fmt.Errorf("write export: %w", err)
	}

	expenses, income, totals := export.Split(rows)
	out.Count = len(rows)
	out.Expenses = len(expenses)
	out.Income = len(income)
	out.Net = totals.Net()

	uc.l.Infof(ctx, "Export: list=%s from=%s to=%s count=%d format=%s layout=%s",
		list, from.Format("2006-01-02"), to.Format("2006-01-02"), out.Count, format, layout)
	return out, nil
}
