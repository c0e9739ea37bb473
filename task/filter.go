package task

import "strings"

// MatchesQuery reports whether the title contains query, ignoring case.
// An empty query matches everything.
func MatchesQuery(t Task, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// Filter returns the tasks whose title matches query, preserving order.
func Filter(tasks []Task, query string) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesQuery(t, query) {
			result = append(result, t)
		}
	}
	return result
}

// Reversed returns a copy of tasks in reverse order (newest first)
func Reversed(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	for i, t := range tasks {
		result[len(tasks)-1-i] = t
	}
	return result
}

// IndexOf returns the position of the task with the given id, or -1
func IndexOf(tasks []Task, id ID) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
