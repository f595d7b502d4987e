package ui

import "testing"

func TestNumbered(t *testing.T) {
	got := numbered([]string{"Meet SwiftUI", "line\tbreak\nhere"})
	want := "0\tMeet SwiftUI\n1\tline break here\n"
	if got != want {
		t.Errorf("numbered() = %q, want %q", got, want)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		n       int
		want    int
		wantErr bool
	}{
		{"first", "0\tMeet SwiftUI\n", 3, 0, false},
		{"last", "2\tWhat's new\n", 3, 2, false},
		{"empty", "\n", 3, -1, true},
		{"out of range", "3\tgone\n", 3, -1, true},
		{"negative", "-1\tnope\n", 3, -1, true},
		{"garbage", "abc\tdef\n", 3, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.out, tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSelection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSelection() = %d, want %d", got, tt.want)
			}
		})
	}
}
