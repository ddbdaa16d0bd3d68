package datemath

import "time"

// DateContext pins "today" for one extraction in the parser's timezone.
// Prompts render relative phrases and NET terms as absolute dates from it.
type DateContext struct {
	Now      time.Time // start of today
	Today    string    // YYYY-MM-DD
	Tomorrow string
	Year     int
	Month    int
	Day      int
}
