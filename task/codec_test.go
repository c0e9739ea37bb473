package task

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeCollection(t *testing.T) {
	tasks := []Task{
		{ID: "a1", Title: "Buy milk", IsDone: true},
		{ID: "b2", Title: "", IsDone: false},
	}

	got, err := EncodeCollection(tasks)
	if err != nil {
		t.Fatalf("EncodeCollection() error = %v", err)
	}

	want := `[{"id":"a1","title":"Buy milk","isDone":true},{"id":"b2","title":"","isDone":false}]`
	if got != want {
		t.Errorf("EncodeCollection() = %s, want %s", got, want)
	}
}

func TestEncodeCollection_Nil(t *testing.T) {
	got, err := EncodeCollection(nil)
	if err != nil {
		t.Fatalf("EncodeCollection(nil) error = %v", err)
	}
	if got != "[]" {
		t.Errorf("EncodeCollection(nil) = %q, want %q", got, "[]")
	}
}

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []Task
		expectError bool
	}{
		{
			name:     "string ids",
			input:    `[{"id":"x","title":"Call mom","isDone":false}]`,
			expected: []Task{{ID: "x", Title: "Call mom"}},
		},
		{
			name:  "numeric ids from older clients",
			input: `[{"id":0.8412,"title":"Old","isDone":true},{"id":1700000000000,"title":"Older","isDone":false}]`,
			expected: []Task{
				{ID: "0.8412", Title: "Old", IsDone: true},
				{ID: "1700000000000", Title: "Older"},
			},
		},
		{
			name:     "missing isDone defaults to false",
			input:    `[{"id":"y","title":"No flag"}]`,
			expected: []Task{{ID: "y", Title: "No flag"}},
		},
		{
			name:     "empty text",
			input:    "",
			expected: []Task{},
		},
		{
			name:     "whitespace only",
			input:    "  \n",
			expected: []Task{},
		},
		{
			name:     "json null",
			input:    "null",
			expected: []Task{},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []Task{},
		},
		{
			name:        "not json",
			input:       "{broken",
			expectError: true,
		},
		{
			name:        "object instead of array",
			input:       `{"id":"x"}`,
			expectError: true,
		},
		{
			name:        "boolean id",
			input:       `[{"id":true,"title":"bad"}]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCollection(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DecodeCollection() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	original := []Task{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second \"quoted\" ✓", IsDone: true},
		{ID: "3", Title: "Third"},
	}

	data, err := EncodeCollection(original)
	if err != nil {
		t.Fatalf("EncodeCollection() error = %v", err)
	}
	if !strings.HasPrefix(data, "[") {
		t.Fatalf("encoded data is not an array: %s", data)
	}

	decoded, err := DecodeCollection(data)
	if err != nil {
		t.Fatalf("DecodeCollection() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip = %#v, want %#v", decoded, original)
	}
}
