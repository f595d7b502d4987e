// Package catalog parses the WWDC data feed: it resolves the most recent event and
// builds per-topic video entries on demand.
//
// A Catalog is built for a single extraction and is not safe for concurrent use.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appledev/internal/extract"
	"appledev/internal/httputil"
	"appledev/internal/logging"
	"appledev/internal/media"
)

// ErrNoEvents is returned when the feed lists no events.
var ErrNoEvents = errors.New("catalog has no events")

// Event is a conference or series of videos.
type Event struct {
	ID         string
	Name       string
	Start      time.Time
	ImagesBase string // Base URL for thumbnail images
}

// Topic is a named grouping of videos. Its entries live in the catalog's topic cache.
type Topic struct {
	ID    string
	Slug  string
	Title string
}

// Catalog is a parsed WWDC data feed.
type Catalog struct {
	event   Event
	topics  []Topic
	videos  []rawVideo
	streams extract.Extractor
	cache   topicCache
}

// New parses a feed document. Stream formats for each video are resolved through streams
// the first time its topic is requested.
func New(data []byte, streams extract.Extractor) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	event, err := latestEvent(doc.Events)
	if err != nil {
		return nil, err
	}

	topics := make([]Topic, 0, len(doc.Topics))
	for _, m := range doc.Topics {
		topics = append(topics, Topic{
			ID:    string(m.Value.ID),
			Slug:  httputil.URLBasename(m.Value.WebPermalink),
			Title: m.Value.Title,
		})
	}

	videos := make([]rawVideo, 0, len(doc.Videos))
	for _, m := range doc.Videos {
		videos = append(videos, m.Value)
	}

	logging.Debug("catalog loaded", "event", event.ID, "topics", len(topics), "videos", len(videos))

	return &Catalog{
		event:   event,
		topics:  topics,
		videos:  videos,
		streams: streams,
		cache:   make(topicCache),
	}, nil
}

// latestEvent picks the event with the greatest start time. Ties keep the first seen.
func latestEvent(events orderedObject[rawEvent]) (Event, error) {
	var (
		latest Event
		found  bool
	)

	for _, m := range events {
		start, err := media.ParseTime(m.Value.StartTime)
		if err != nil {
			return Event{}, fmt.Errorf("event %s: startTime: %w", m.Key, err)
		}
		if found && !start.After(latest.Start) {
			continue
		}

		id := string(m.Value.ID)
		if id == "" {
			id = m.Key
		}
		latest = Event{
			ID:         id,
			Name:       m.Value.Name,
			Start:      start,
			ImagesBase: m.Value.ImagesPath,
		}
		found = true
	}

	if !found {
		return Event{}, ErrNoEvents
	}
	return latest, nil
}

// Event returns the active event.
func (c *Catalog) Event() Event {
	return c.event
}

// Topics returns all topics in feed order.
func (c *Catalog) Topics() []Topic {
	topics := make([]Topic, len(c.topics))
	copy(topics, c.topics)
	return topics
}

// TopicTitle returns the title of the topic with the given slug.
func (c *Catalog) TopicTitle(slug string) (string, bool) {
	t, ok := c.topic(slug)
	if !ok {
		return "", false
	}
	return t.Title, true
}

func (c *Catalog) topic(slug string) (Topic, bool) {
	if slug == "" {
		return Topic{}, false
	}
	for _, t := range c.topics {
		if t.Slug == slug {
			return t, true
		}
	}
	return Topic{}, false
}

// Entries returns the entries of the topic with the given slug, or of every topic when
// slug is empty. The boolean is false only when slug names no topic.
func (c *Catalog) Entries(ctx context.Context, slug string) ([]*media.Entry, bool, error) {
	if slug == "" {
		entries, err := c.AllEntries(ctx)
		return entries, err == nil, err
	}
	return c.TopicEntries(ctx, slug)
}

// TopicEntries returns the active event's entries for one topic. A topic without videos
// yields an empty, non-nil slice.
func (c *Catalog) TopicEntries(ctx context.Context, slug string) ([]*media.Entry, bool, error) {
	t, ok := c.topic(slug)
	if !ok {
		return nil, false, nil
	}

	entries, err := c.populate(ctx, t)
	if err != nil {
		return nil, true, err
	}
	return entries, true, nil
}

// AllEntries returns every topic's entries, concatenated in topic order.
func (c *Catalog) AllEntries(ctx context.Context) ([]*media.Entry, error) {
	all := make([]*media.Entry, 0)
	for _, t := range c.topics {
		entries, err := c.populate(ctx, t)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// populate builds a topic's entries on first request and memoizes them.
func (c *Catalog) populate(ctx context.Context, t Topic) ([]*media.Entry, error) {
	if entries, ok := c.cache.get(t.ID); ok {
		return entries, nil
	}

	entries := make([]*media.Entry, 0)
	for _, v := range c.videos {
		if string(v.EventID) != c.event.ID || string(v.PrimaryTopicID) != t.ID {
			continue
		}
		e, err := buildEntry(ctx, c.streams, v, c.event, t.Title)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	logging.Debug("topic populated", "topic", t.Slug, "entries", len(entries))
	c.cache.put(t.ID, entries)
	return entries, nil
}

// topicCache memoizes built entries by topic ID.
type topicCache map[string][]*media.Entry

func (tc topicCache) get(topicID string) ([]*media.Entry, bool) {
	entries, ok := tc[topicID]
	return entries, ok
}

func (tc topicCache) put(topicID string, entries []*media.Entry) {
	tc[topicID] = entries
}
