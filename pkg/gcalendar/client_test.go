package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reminder-extractor/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCreateEvent(t *testing.T) {
	t.Run("all day with recurrence", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/cal-1/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &got)
			w.Write([]byte(`{"id":"event-1","htmlLink":"https://calendar.google.com/e1","start":{"date":"2026-01-31"},"end":{"date":"2026-02-01"}}`))
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "cal-1",
			Summary:    "Pay rent",
			AllDay:     true,
			Date:       "2026-01-31",
			Recurrence: []string{"RRULE:FREQ=MONTHLY"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-1" || !event.AllDay {
			t.Errorf("unexpected event %+v", event)
		}

		start := got["start"].(map[string]any)
		end := got["end"].(map[string]any)
		if start["date"] != "2026-01-31" || end["date"] != "2026-02-01" {
			t.Errorf("all-day events need an exclusive end date: start=%v end=%v", start, end)
		}
		if rec := got["recurrence"].([]any); rec[0] != "RRULE:FREQ=MONTHLY" {
			t.Errorf("unexpected recurrence %v", rec)
		}
	})

	t.Run("timed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri","start":{"dateTime":"2026-01-31T15:00:00Z"}}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2026, 1, 31, 15, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Meeting",
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" || !event.StartTime.Equal(start) {
			t.Errorf("unexpected event %+v", event)
		}
	})

	t.Run("bad all-day date", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{AllDay: true, Date: "31/01/2026"}); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x", StartTime: time.Now(), EndTime: time.Now()}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCalendars(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/users/me/calendarList" && r.URL.Query().Get("pageToken") == "":
			w.Write([]byte(`{"items":[{"id":"primary","summary":"me@example.com"}],"nextPageToken":"p2"}`))
		case r.URL.Path == "/calendar/v3/users/me/calendarList":
			w.Write([]byte(`{"items":[{"id":"cal-2","summary":"Bills"}]}`))
		case r.URL.Path == "/calendar/v3/calendars" && r.Method == http.MethodPost:
			w.Write([]byte(`{"id":"cal-new","summary":"To Do"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	cals, err := client.ListCalendars(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cals) != 2 || cals[1].Summary != "Bills" {
		t.Errorf("expected both pages, got %+v", cals)
	}

	id, err := client.CreateCalendar(context.Background(), "To Do", "UTC")
	if err != nil || id != "cal-new" {
		t.Errorf("CreateCalendar = %q, %v", id, err)
	}
}

func TestListEvents(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"items":[
			{"id":"a","summary":"Rent","description":"Amount: $-2000.00","start":{"date":"2026-02-01","timeZone":"UTC"}},
			{"id":"b","summary":"Call","start":{"dateTime":"2026-02-02T09:00:00Z"}}
		]}`))
	})

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "cal-2", TimeMin: from, TimeMax: from.AddDate(0, 0, 7)})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || !events[0].AllDay || events[1].AllDay {
		t.Fatalf("unexpected events %+v", events)
	}
	if !events[0].StartTime.Equal(from) {
		t.Errorf("all-day start = %v", events[0].StartTime)
	}
	if query["singleEvents"][0] != "true" || query["orderBy"][0] != "startTime" {
		t.Errorf("recurring events must be expanded: %v", query)
	}
}
