package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// When AllDay is set, Date is used and StartTime/EndTime are ignored.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	AllDay      bool
	Date        string // YYYY-MM-DD, all-day events only
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string   // IANA name, e.g. "America/New_York"
	Recurrence  []string // RFC 5545 lines, e.g. "RRULE:FREQ=WEEKLY"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	AllDay      bool
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Calendar is one entry of the user's calendar list.
type Calendar struct {
	ID      string
	Summary string
}
