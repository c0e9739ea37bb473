package task

import (
	"bytes"
	"fmt"
	"strconv"
)

// Task is a single to-do entry.
// ID and Title never change after creation; IsDone is flipped by toggling.
type Task struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"isDone"`
}

// ID is an opaque task identifier.
// It is written as a JSON string, but numeric ids (as produced by older
// clients) are accepted on read and kept as their literal text.
type ID string

// String returns the id text
func (id ID) String() string {
	return string(id)
}

// MarshalJSON always writes the id as a JSON string
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid id string %s: %w", data, err)
		}
		*id = ID(s)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("invalid id %s: must be a string or a number", data)
	}
	*id = ID(data)
	return nil
}

// Status is the derived lifecycle state of a task
type Status string

const (
	StatusActive Status = "active"
	StatusDone   Status = "done"
)

type statusInfo struct {
	label string
	emoji string
}

var statuses = map[Status]statusInfo{
	StatusActive: {label: "Active", emoji: "☐"},
	StatusDone:   {label: "Done", emoji: "☑"},
}

// Status reports Active or Done based on IsDone
func (t Task) Status() Status {
	if t.IsDone {
		return StatusDone
	}
	return StatusActive
}

// StatusLabel returns a human readable label for the status
func StatusLabel(status Status) string {
	if info, ok := statuses[status]; ok {
		return info.label
	}
	return string(status)
}

// StatusEmoji returns the checkbox glyph used when rendering a status
func StatusEmoji(status Status) string {
	if info, ok := statuses[status]; ok {
		return info.emoji
	}
	return ""
}

// Toggled returns a copy of t with IsDone flipped
func (t Task) Toggled() Task {
	t.IsDone = !t.IsDone
	return t
}
