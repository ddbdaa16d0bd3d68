package parser

import "errors"

var (
	// ErrUnparseable means no JSON could be recovered from the response.
	ErrUnparseable = errors.New("couldn't parse JSON from model response")
	// ErrNoValidTasks means JSON was recovered but every record was dropped.
	ErrNoValidTasks = errors.New("no valid tasks found in response")
)
