package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"reminder-extractor/internal/model"
)

// decodeTaskFile accepts a task array, or an object with a "tasks" array as
// printed by --format json|yaml. YAML is detected by extension or by not
// starting like JSON.
func decodeTaskFile(data []byte, name string) ([]model.Task, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %s is empty", model.ErrInvalidTasks, name)
	}

	ext := strings.ToLower(filepath.Ext(name))
	isYAML := ext == ".yaml" || ext == ".yml" || (trimmed[0] != '[' && trimmed[0] != '{')
	if isYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidTasks, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidTasks, err)
		}
		data = converted
		trimmed = string(converted)
	}

	if strings.HasPrefix(trimmed, "{") {
		var wrapped struct {
			Tasks json.RawMessage `json:"tasks"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidTasks, err)
		}
		if len(wrapped.Tasks) == 0 {
			return nil, fmt.Errorf("%w: object has no tasks array", model.ErrInvalidTasks)
		}
		data = wrapped.Tasks
	}
	return model.DecodeTasks(data)
}
