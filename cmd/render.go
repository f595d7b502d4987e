package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"appledev/internal/catalog"
	"appledev/internal/media"
	"appledev/internal/provider"
	"appledev/internal/subtitle"
)

// Colors used in terminal output.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorError     = lipgloss.Color("196") // Red
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	failure lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(colorHighlight),
		label: lipgloss.NewStyle().Foreground(colorSecondary),
		muted: lipgloss.NewStyle().Foreground(colorSecondary).Italic(true),
		badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(colorPrimary).
			Padding(0, 1),
		failure: lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}

// renderer prints results as text, styled only when w is a terminal. When language is set,
// each video names the subtitle track a player should default to.
type renderer struct {
	w        io.Writer
	styled   bool
	st       styles
	language string
}

func newRenderer(w io.Writer) *renderer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &renderer{w: w, styled: styled, st: defaultStyles()}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *renderer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(r.w, "  %s %s\n", r.style(r.st.label, fmt.Sprintf("%-12s", label)), value)
}

func (r *renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) result(res *media.Result) {
	switch res.Type {
	case media.Video:
		r.entry(res.Entry)
	case media.Playlist:
		r.playlist(res.Playlist)
	}
}

func (r *renderer) entry(e *media.Entry) {
	fmt.Fprintln(r.w, r.style(r.st.title, e.Title))
	r.field("id", e.ID)
	r.field("categories", strings.Join(e.Categories, ", "))
	r.field("published", formatTimestamp(e.Timestamp))
	r.field("updated", formatTimestamp(e.ReleaseTimestamp))
	r.field("thumbnail", e.Thumbnail)
	r.field("subtitles", strings.Join(subtitle.Languages(e.Subtitles), ", "))
	if r.language != "" {
		if best := subtitle.BestMatch(e.Subtitles, r.language); best != nil {
			r.field("default sub", subtitleLabel(*best))
		}
	}

	if len(e.Formats) == 0 {
		return
	}
	r.field("formats", fmt.Sprintf("%d", len(e.Formats)))
	for _, f := range e.Formats {
		fmt.Fprintf(r.w, "    %-28s %s\n", f.ID, r.style(r.st.muted, describeFormat(f)))
	}
}

func (r *renderer) playlist(pl *media.PlaylistResult) {
	fmt.Fprintf(r.w, "%s %s\n", r.style(r.st.badge, pl.ID), r.style(r.st.title, pl.Title))
	fmt.Fprintf(r.w, "  %d entries\n", len(pl.Entries))
	for i, it := range pl.Entries {
		if it.Pending() {
			fmt.Fprintf(r.w, "  %3d. %s %s\n", i+1, it.URL, r.style(r.st.muted, "(pending)"))
			continue
		}
		fmt.Fprintf(r.w, "  %3d. %s\n", i+1, it.Entry.Title)
	}
}

func (r *renderer) topics(ev catalog.Event, topics []catalog.Topic) {
	fmt.Fprintf(r.w, "%s %s\n", r.style(r.st.badge, ev.ID), r.style(r.st.title, ev.Name))
	for _, t := range topics {
		fmt.Fprintf(r.w, "  %s %s\n", r.style(r.st.label, fmt.Sprintf("%-32s", t.Slug)), t.Title)
	}
}

func (r *renderer) patterns(patterns []provider.Pattern) {
	for _, p := range patterns {
		fmt.Fprintf(r.w, "%s %s\n", r.style(r.st.badge, fmt.Sprintf("%-8s", p.Kind)), p.Expr)
	}
}

// failure reports err on the renderer's writer. Expected errors are printed without the
// debug hint.
func (r *renderer) failure(err error) {
	prefix := r.style(r.st.failure, "ERROR:")
	if provider.IsExpected(err) {
		fmt.Fprintf(r.w, "%s %v\n", prefix, err)
		return
	}
	fmt.Fprintf(r.w, "%s %v\n%s\n", prefix, err, r.style(r.st.muted, "Run with --debug for request logs."))
}

func describeFormat(f media.Format) string {
	var parts []string
	if f.Width > 0 && f.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", f.Width, f.Height))
	} else if f.AudioOnly() {
		parts = append(parts, "audio only")
	}
	if f.VCodec != "" && f.VCodec != "none" {
		parts = append(parts, f.VCodec)
	}
	if f.ACodec != "" && f.ACodec != "none" {
		parts = append(parts, f.ACodec)
	}
	if f.TBR > 0 {
		parts = append(parts, fmt.Sprintf("%.0fk", f.TBR))
	}
	if f.Language != "" {
		parts = append(parts, "["+f.Language+"]")
	}
	parts = append(parts, f.Ext)
	return strings.Join(parts, " ")
}

func subtitleLabel(sub media.Subtitle) string {
	if sub.Label == "" {
		return sub.Language
	}
	return fmt.Sprintf("%s (%s)", sub.Language, sub.Label)
}

func formatTimestamp(ts *int64) string {
	if ts == nil {
		return ""
	}
	return time.Unix(*ts, 0).UTC().Format(time.DateOnly)
}

// JSON output follows the info-dict layout media tools consume.

type videoInfo struct {
	Type string `json:"_type"`
	*media.Entry
}

type urlInfo struct {
	Type  string `json:"_type"`
	URL   string `json:"url"`
	IEKey string `json:"ie_key"`
}

type playlistInfo struct {
	Type    string `json:"_type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Entries []any  `json:"entries"`
}

func infoDict(res *media.Result) any {
	if res.Type == media.Video {
		return videoInfo{Type: "video", Entry: res.Entry}
	}

	entries := make([]any, 0, len(res.Playlist.Entries))
	for _, it := range res.Playlist.Entries {
		if it.Pending() {
			entries = append(entries, urlInfo{Type: "url", URL: it.URL, IEKey: "AppleDeveloper"})
			continue
		}
		entries = append(entries, videoInfo{Type: "video", Entry: it.Entry})
	}
	return playlistInfo{Type: "playlist", ID: res.Playlist.ID, Title: res.Playlist.Title, Entries: entries}
}

type topicInfo struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type eventInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Start  time.Time   `json:"start"`
	Topics []topicInfo `json:"topics"`
}

func topicsDict(ev catalog.Event, topics []catalog.Topic) eventInfo {
	out := eventInfo{ID: ev.ID, Name: ev.Name, Start: ev.Start, Topics: make([]topicInfo, 0, len(topics))}
	for _, t := range topics {
		out.Topics = append(out.Topics, topicInfo{ID: t.ID, Slug: t.Slug, Title: t.Title})
	}
	return out
}
