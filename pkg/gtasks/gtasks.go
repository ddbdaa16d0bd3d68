// Package gtasks wraps the Google Tasks API: task lists and tasks.
package gtasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const statusCompleted = "completed"

// TaskList is one of the user's task lists.
type TaskList struct {
	ID    string
	Title string
}

// Task is a simplified Google task. The API keeps only the date part of Due.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Due       *time.Time
	Completed bool
	WebLink   string
}

// CreateTaskRequest is the input for creating a task.
type CreateTaskRequest struct {
	ListID string
	Title  string
	Notes  string
	Due    *time.Time
}

// ListTasksRequest filters tasks by due date. Zero times are unbounded.
type ListTasksRequest struct {
	ListID        string
	DueMin        time.Time
	DueMax        time.Time
	ShowCompleted bool
}

type Client struct {
	service *tasks.Service
}

// NewClient creates a Tasks client authorised by ts.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	var out []TaskList
	err := c.service.Tasklists.List().Pages(ctx, func(page *tasks.TaskLists) error {
		for _, l := range page.Items {
			out = append(out, TaskList{ID: l.Id, Title: l.Title})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTaskList(ctx context.Context, title string) (string, error) {
	created, err := c.service.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create task list: %w", err)
	}
	return created.Id, nil
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	t := &tasks.Task{Title: req.Title, Notes: req.Notes}
	if req.Due != nil {
		t.Due = req.Due.UTC().Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(req.ListID, t).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	out := toTask(created)
	return &out, nil
}

func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]Task, error) {
	call := c.service.Tasks.List(req.ListID).ShowCompleted(req.ShowCompleted).ShowHidden(req.ShowCompleted)
	if !req.DueMin.IsZero() {
		call = call.DueMin(req.DueMin.UTC().Format(time.RFC3339))
	}
	if !req.DueMax.IsZero() {
		call = call.DueMax(req.DueMax.UTC().Format(time.RFC3339))
	}

	var out []Task
	err := call.Pages(ctx, func(page *tasks.Tasks) error {
		for _, t := range page.Items {
			out = append(out, toTask(t))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return out, nil
}

func toTask(t *tasks.Task) Task {
	out := Task{
		ID:        t.Id,
		Title:     t.Title,
		Notes:     t.Notes,
		Completed: t.Status == statusCompleted,
		WebLink:   t.WebViewLink,
	}
	if t.Due != "" {
		if due, err := time.Parse(time.RFC3339, t.Due); err == nil {
			out.Due = &due
		}
	}
	return out
}
