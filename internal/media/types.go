// Package media defines shared types for the appledev extractors.
package media

// ResultType tells the host what an extraction produced.
type ResultType int

const (
	Video ResultType = iota
	Playlist
)

func (r ResultType) String() string {
	switch r {
	case Video:
		return "video"
	case Playlist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Entry is a normalized description of one playable video.
type Entry struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Formats          []Format   `json:"formats"`
	Subtitles        []Subtitle `json:"subtitles,omitempty"`
	Categories       []string   `json:"categories,omitempty"`
	Thumbnail        string     `json:"thumbnail,omitempty"`
	Description      string     `json:"description,omitempty"`
	Timestamp        *int64     `json:"timestamp,omitempty"`         // Original publish time, epoch seconds
	ReleaseTimestamp *int64     `json:"release_timestamp,omitempty"` // Last content update, epoch seconds
}

// Format is one playable rendition of a video.
type Format struct {
	ID       string  `json:"format_id"`
	URL      string  `json:"url"`
	Ext      string  `json:"ext"`
	Protocol string  `json:"protocol,omitempty"`
	TBR      float64 `json:"tbr,omitempty"` // Total bitrate in kbit/s
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	FPS      float64 `json:"fps,omitempty"`
	VCodec   string  `json:"vcodec,omitempty"` // "none" means no video track
	ACodec   string  `json:"acodec,omitempty"` // Empty means not detected
	Language string  `json:"language,omitempty"`
}

// AudioOnly reports whether the format carries no video track.
func (f Format) AudioOnly() bool {
	return f.VCodec == "none"
}

// Subtitle represents a subtitle track.
type Subtitle struct {
	Language string `json:"language"` // e.g., "en"
	Label    string `json:"label"`    // Display label, e.g., "English (CC)"
	URL      string `json:"url"`
	Ext      string `json:"ext"`
}

// Stream is what manifest parsing yields for one video.
type Stream struct {
	ManifestURL string
	Formats     []Format
	Subtitles   []Subtitle
}

// Item is a playlist member: either a resolved Entry or a URL still pending resolution.
type Item struct {
	Entry *Entry `json:"entry,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Pending reports whether the item still has to be resolved by the host.
func (i Item) Pending() bool {
	return i.Entry == nil
}

// PlaylistResult is an ordered, titled list of items.
type PlaylistResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Entries []Item `json:"entries"`
}

// Result is the outcome of one extraction: a single video or a playlist.
type Result struct {
	Type     ResultType
	Entry    *Entry
	Playlist *PlaylistResult
}

// VideoResult wraps an entry as a Result.
func VideoResult(e *Entry) *Result {
	return &Result{Type: Video, Entry: e}
}

// NewPlaylistResult wraps items as a playlist Result.
func NewPlaylistResult(id, title string, items []Item) *Result {
	return &Result{
		Type:     Playlist,
		Playlist: &PlaylistResult{ID: id, Title: title, Entries: items},
	}
}

// EntryItems wraps resolved entries as playlist items.
func EntryItems(entries []*Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{Entry: e})
	}
	return items
}
