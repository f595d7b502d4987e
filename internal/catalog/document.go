package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// document mirrors the WWDC data feed. Its top-level members are JSON objects keyed by
// ID whose member order is significant.
type document struct {
	Events orderedObject[rawEvent] `json:"events"`
	Topics orderedObject[rawTopic] `json:"topics"`
	Videos orderedObject[rawVideo] `json:"videos"`
}

type rawEvent struct {
	ID         jsonID `json:"id"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	ImagesPath string `json:"imagesPath"`
}

type rawTopic struct {
	ID           jsonID `json:"id"`
	Title        string `json:"title"`
	WebPermalink string `json:"webPermalink"`
}

type rawVideo struct {
	ID             jsonID `json:"id"`
	EventID        jsonID `json:"eventId"`
	PrimaryTopicID jsonID `json:"primaryTopicID"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Media          struct {
		DownloadHLS string `json:"downloadHLS"`
	} `json:"media"`
	StaticContentID        jsonID `json:"staticContentId"`
	OriginalPublishingDate string `json:"originalPublishingDate"`
	ContentUpdatedAt       string `json:"contentUpdatedAt"`
}

// keyed is one member of a JSON object.
type keyed[T any] struct {
	Key   string
	Value T
}

// orderedObject decodes a JSON object into its members in document order.
type orderedObject[T any] []keyed[T]

func (o *orderedObject[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	var members orderedObject[T]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		members = append(members, keyed[T]{Key: key, Value: v})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = members
	return nil
}

// jsonID accepts identifiers encoded as either JSON strings or numbers.
type jsonID string

func (id *jsonID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = jsonID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = jsonID(n.String())
	return nil
}
