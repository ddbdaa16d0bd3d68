package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used across the service.
const DateLayout = "2006-01-02"

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe        = regexp.MustCompile(`^(\d+) (day|days|week|weeks) ago$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "America/Chicago".
// An empty timezone means the process local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || strings.EqualFold(timezone, "local") {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves an absolute (YYYY-MM-DD) or relative expression to the start
// of that day: today, tomorrow, yesterday, "in N days|weeks|months",
// "N days|weeks ago", "next <weekday>".
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "today", "now":
		return p.StartOfDay(base), nil
	case "tomorrow":
		return p.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(base.AddDate(0, 0, -1)), nil
	}

	if d, err := time.ParseInLocation(DateLayout, expr, p.location); err == nil {
		return d, nil
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.shift(base, n, m[2]), nil
	}

	if m := agoRe.FindStringSubmatch(expr); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.shift(base, -n, m[2]), nil
	}

	if day, ok := strings.CutPrefix(expr, "next "); ok {
		target, known := weekdays[day]
		if !known {
			return time.Time{}, fmt.Errorf("unknown weekday: %q", day)
		}
		ahead := int(target - p.StartOfDay(base).Weekday())
		if ahead <= 0 {
			ahead += 7
		}
		return p.StartOfDay(base.AddDate(0, 0, ahead)), nil
	}

	return time.Time{}, fmt.Errorf("unrecognised date expression: %q", expr)
}

func (p *Parser) shift(base time.Time, n int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(base.AddDate(0, 0, 7*n))
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(base.AddDate(0, n, 0))
	default:
		return p.StartOfDay(base.AddDate(0, 0, n))
	}
}

// StartOfDay returns midnight of t's day in the parser timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last second of the day starting at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(24*time.Hour - time.Second)
}
