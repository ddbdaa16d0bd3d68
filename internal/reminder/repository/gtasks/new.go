// Package gtasks stores reminders as Google Tasks. A reminder list is a
// task list with the same title.
package gtasks

import (
	"context"
	"sync"
	"time"

	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/gtasks"
	"reminder-extractor/pkg/log"
)

// API is the part of the Google Tasks client the store uses.
type API interface {
	ListTaskLists(ctx context.Context) ([]gtasks.TaskList, error)
	CreateTaskList(ctx context.Context, title string) (string, error)
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error)
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.Task, error)
}

type Repository interface {
	reminder.Store
	reminder.DueLister
}

type implRepository struct {
	l   log.Logger
	api API
	loc *time.Location

	mu    sync.Mutex
	lists map[string]string // title -> id
}

func New(l log.Logger, api API, loc *time.Location) Repository {
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{l: l, api: api, loc: loc}
}
