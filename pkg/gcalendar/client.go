package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client authorised by ts.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListCalendars returns every calendar on the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	var out []Calendar
	err := c.service.CalendarList.List().Context(ctx).Pages(ctx, func(page *calendar.CalendarList) error {
		for _, item := range page.Items {
			out = append(out, Calendar{ID: item.Id, Summary: item.Summary})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	return out, nil
}

// CreateCalendar creates a secondary calendar and returns its id.
func (c *Client) CreateCalendar(ctx context.Context, summary, timezone string) (string, error) {
	created, err := c.service.Calendars.Insert(&calendar.Calendar{
		Summary:  summary,
		TimeZone: timezone,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar: %w", err)
	}
	return created.Id, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Recurrence:  req.Recurrence,
	}

	if req.AllDay {
		day, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid all-day date %q: %w", req.Date, err)
		}
		event.Start = &calendar.EventDateTime{Date: req.Date, TimeZone: req.Timezone}
		// The end date of an all-day event is exclusive.
		event.End = &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(dateLayout), TimeZone: req.Timezone}
	} else {
		event.Start = &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339), TimeZone: req.Timezone}
		event.End = &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339), TimeZone: req.Timezone}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := toEvent(created)
	return &out, nil
}

// ListEvents returns single (expanded) events between TimeMin and TimeMax
// ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var out []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			out = append(out, toEvent(item))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return out, nil
}

func toEvent(e *calendar.Event) Event {
	out := Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
	}
	if e.Start != nil {
		out.StartTime, out.AllDay = parseEventTime(e.Start)
	}
	if e.End != nil {
		out.EndTime, _ = parseEventTime(e.End)
	}
	return out
}

func parseEventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t, false
	}
	loc := time.UTC
	if dt.TimeZone != "" {
		if l, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = l
		}
	}
	t, _ := time.ParseInLocation(dateLayout, dt.Date, loc)
	return t, true
}
