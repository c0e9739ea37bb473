package main

import "testing"

func TestParseCLIFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want cliFlags
	}{
		{name: "none", args: nil, want: cliFlags{}},
		{name: "version", args: []string{"--version"}, want: cliFlags{version: true}},
		{name: "short version", args: []string{"-v"}, want: cliFlags{version: true}},
		{name: "list with backend", args: []string{"--backend", "redis", "--list"}, want: cliFlags{list: true}},
		{name: "unknown flags ignored", args: []string{"--color", "--list"}, want: cliFlags{list: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCLIFlags(tt.args); got != tt.want {
				t.Errorf("parseCLIFlags(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
