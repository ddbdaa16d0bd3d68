package http

import (
	"encoding/json"
	"fmt"
	"time"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
)

// --- Request DTOs ---

// createReq carries tasks as raw JSON so they can be checked against the
// task schema before decoding.
type createReq struct {
	List     string          `json:"list"`
	NoReveal bool            `json:"no_reveal"`
	Tasks    json.RawMessage `json:"tasks" binding:"required" swaggertype:"array,object"`
}

func (r createReq) toInput() (reminder.CommitInput, error) {
	tasks, err := model.DecodeTasks(r.Tasks)
	if err != nil {
		return reminder.CommitInput{}, err
	}
	return reminder.CommitInput{Tasks: tasks, ListName: r.List, NoReveal: r.NoReveal}, nil
}

type exportReq struct {
	List   string `form:"list"`
	From   string `form:"from"` // YYYY-MM-DD
	To     string `form:"to"`   // YYYY-MM-DD, exclusive
	Days   int    `form:"days"`
	Format string `form:"format"`
	Layout string `form:"layout"`
}

func (r exportReq) window(loc *time.Location) (from, to time.Time, err error) {
	if r.From != "" {
		if from, err = time.ParseInLocation("2006-01-02", r.From, loc); err != nil {
			return from, to, fmt.Errorf("invalid from date %q", r.From)
		}
	}
	if r.To != "" {
		if to, err = time.ParseInLocation("2006-01-02", r.To, loc); err != nil {
			return from, to, fmt.Errorf("invalid to date %q", r.To)
		}
	}
	if r.Days < 0 || r.Days > 366 {
		return from, to, fmt.Errorf("days must be between 0 and 366")
	}
	return from, to, nil
}

// --- Response DTOs ---

type createdResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

type createResp struct {
	List        string        `json:"list"`
	ListCreated bool          `json:"list_created"`
	Created     []createdResp `json:"created"`
	Pending     int           `json:"pending,omitempty"`
}

func newCreateResp(out reminder.CommitOutput) createResp {
	resp := createResp{
		List:        out.List,
		ListCreated: out.ListCreated,
		Created:     make([]createdResp, 0, len(out.Created)),
		Pending:     out.Pending,
	}
	for _, c := range out.Created {
		resp.Created = append(resp.Created, createdResp{ID: c.ID, Title: c.Task.Title, Notes: c.Notes})
	}
	return resp
}
