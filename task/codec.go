package task

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// codec is std-compatible so the blob stays readable by any JSON client
var codec = sonic.ConfigStd

// EncodeCollection serializes the full collection as a JSON array of
// {"id", "title", "isDone"} objects in insertion order.
func EncodeCollection(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := codec.MarshalToString(tasks)
	if err != nil {
		return "", fmt.Errorf("encoding tasks: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a blob written by EncodeCollection.
// Empty text and JSON null decode to an empty collection.
func DecodeCollection(data string) ([]Task, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" || trimmed == "null" {
		return []Task{}, nil
	}

	var tasks []Task
	if err := codec.UnmarshalFromString(trimmed, &tasks); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
