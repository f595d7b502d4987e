package media

import "testing"

func TestResultTypeString(t *testing.T) {
	tests := []struct {
		rt       ResultType
		expected string
	}{
		{Video, "video"},
		{Playlist, "playlist"},
		{ResultType(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.rt.String(); got != tt.expected {
			t.Errorf("ResultType(%d).String() = %q, want %q", tt.rt, got, tt.expected)
		}
	}
}

func TestEntryItems(t *testing.T) {
	entries := []*Entry{{ID: "a"}, {ID: "b"}}
	items := EntryItems(entries)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, item := range items {
		if item.Pending() {
			t.Errorf("item[%d] should be resolved", i)
		}
		if item.Entry.ID != entries[i].ID {
			t.Errorf("item[%d].Entry.ID = %q, want %q", i, item.Entry.ID, entries[i].ID)
		}
	}

	if !(Item{URL: "https://example.com"}).Pending() {
		t.Error("URL-only item should be pending")
	}
}

func TestNewPlaylistResult(t *testing.T) {
	r := NewPlaylistResult("wwdc23", "wwdc23 sessions", nil)
	if r.Type != Playlist {
		t.Errorf("Type = %v, want playlist", r.Type)
	}
	if r.Playlist.ID != "wwdc23" || r.Playlist.Title != "wwdc23 sessions" {
		t.Errorf("unexpected playlist header: %+v", r.Playlist)
	}
	if r.Entry != nil {
		t.Error("playlist result should not carry an entry")
	}
}
