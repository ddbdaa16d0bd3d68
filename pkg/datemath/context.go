package datemath

import "time"

// Context captures today and tomorrow for now in the parser timezone.
func (p *Parser) Context(now time.Time) DateContext {
	today := p.StartOfDay(now)
	return DateContext{
		Now:      today,
		Today:    today.Format(DateLayout),
		Tomorrow: today.AddDate(0, 0, 1).Format(DateLayout),
		Year:     today.Year(),
		Month:    int(today.Month()),
		Day:      today.Day(),
	}
}

// Net returns the NET-N due date: today plus days calendar days.
func (dc DateContext) Net(days int) string {
	return dc.Now.AddDate(0, 0, days).Format(DateLayout)
}
