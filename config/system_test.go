package config

import (
	"regexp"
	"testing"
)

func TestNewIDGenerator(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		pattern *regexp.Regexp
		wantErr bool
	}{
		{name: "default is nanoid", scheme: "", pattern: regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)},
		{name: "nanoid", scheme: IDSchemeNanoID, pattern: regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)},
		{name: "uuid", scheme: IDSchemeUUID, pattern: regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)},
		{name: "unknown", scheme: "counter", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewIDGenerator(tt.scheme)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewIDGenerator() error = %v", err)
			}

			seen := make(map[string]bool)
			for i := 0; i < 1000; i++ {
				id, err := gen()
				if err != nil {
					t.Fatalf("generator error = %v", err)
				}
				if !tt.pattern.MatchString(id) {
					t.Fatalf("id %q does not match %s", id, tt.pattern)
				}
				if seen[id] {
					t.Fatalf("duplicate id %q after %d generations", id, i)
				}
				seen[id] = true
			}
		})
	}
}
