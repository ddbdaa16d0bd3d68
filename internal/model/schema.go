package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidTasks is returned when a task payload does not match TaskListSchema.
var ErrInvalidTasks = errors.New("invalid task payload")

// TaskListSchema describes a list of already validated tasks, as accepted
// by the import command and POST /api/v1/reminders.
const TaskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["title"],
    "properties": {
      "title": {"type": "string", "minLength": 1, "pattern": "\\S"},
      "notes": {"type": "string"},
      "dueDate": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
      "dueTime": {"type": "string", "pattern": "^[0-9]{1,2}:[0-9]{2}$"},
      "amount": {"type": "number"},
      "repeatInterval": {"enum": ["", "daily", "weekly", "monthly", "yearly", null]},
      "isInvoice": {"type": "boolean"},
      "isBill": {"type": "boolean"}
    }
  }
}`

var taskListSchema = jsonschema.MustCompileString("tasks.schema.json", TaskListSchema)

// DecodeTasks validates raw against TaskListSchema and decodes it.
func DecodeTasks(raw []byte) ([]Task, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTasks, err)
	}

	if err := taskListSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTasks, flattenValidation(ve))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTasks, err)
	}

	var tasks []Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTasks, err)
	}
	return tasks, nil
}

func flattenValidation(ve *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}
