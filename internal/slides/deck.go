// Package slides defines the parsed representation of generated deck
// content and the normalization applied when ingesting model output.
package slides

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoContent is returned by ParseDeck when there is nothing to parse.
// This is the expected state before the first generation and is distinct
// from a malformed payload.
var ErrNoContent = errors.New("no generated content")

// ErrMalformed is returned when stored content is present but cannot be
// decoded as a deck.
var ErrMalformed = errors.New("malformed generated content")

// Recognized layout names. Anything else falls back to LayoutDefault.
const (
	LayoutDefault  = "default"
	LayoutSplit    = "split"
	LayoutCentered = "centered"
	LayoutBullets  = "bullets"
	LayoutGrid     = "grid"
)

// Slide is one slide of a generated deck.
type Slide struct {
	// Title is the slide heading. A leading '#' marks it as a major
	// heading; the marker is preserved in storage and stripped by
	// Heading for display.
	Title string `json:"title"`
	// Content holds the bullet or paragraph units, in order.
	Content StringList `json:"content"`
	// Visuals is a free-text suggestion for an image or chart.
	Visuals string `json:"visuals,omitempty"`
	// Layout selects a rendering strategy, see the Layout constants.
	Layout string `json:"layout,omitempty"`
}

// Deck is an ordered sequence of slides, the parsed form of a
// presentation's generated content.
type Deck struct {
	Slides []Slide `json:"slides"`
}

// StringList is a []string that also accepts a bare JSON string, wrapping
// it in a single-element list. The upstream model sometimes emits a
// scalar where the contract asks for an array, and every rendering path
// assumes an array.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = StringList{single}
	return nil
}

// IsMajor reports whether the slide title carries the '#' major-heading
// marker.
func (s Slide) IsMajor() bool {
	return strings.HasPrefix(s.Title, "#")
}

// Heading returns the display title with the major-heading marker
// stripped.
func (s Slide) Heading() string {
	return strings.TrimSpace(strings.TrimPrefix(s.Title, "#"))
}

// EffectiveLayout resolves the slide's layout name to one of the
// recognized rendering strategies.
func (s Slide) EffectiveLayout() string {
	switch strings.ToLower(s.Layout) {
	case LayoutSplit, LayoutCentered, LayoutBullets, LayoutGrid:
		return strings.ToLower(s.Layout)
	default:
		return LayoutDefault
	}
}

// ParseDeck decodes raw generated content into a normalized Deck.
//
// Empty input returns ErrNoContent. Input that is not valid JSON for the
// deck shape returns an error wrapping ErrMalformed; it never panics.
// Missing optional fields default rather than fail: a scalar content
// value becomes a one-element list and an absent layout becomes
// LayoutDefault.
func ParseDeck(raw string) (*Deck, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoContent
	}

	var deck Deck
	if err := json.Unmarshal([]byte(raw), &deck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for i := range deck.Slides {
		if deck.Slides[i].Content == nil {
			deck.Slides[i].Content = StringList{}
		}
		if deck.Slides[i].Layout == "" {
			deck.Slides[i].Layout = LayoutDefault
		}
	}
	return &deck, nil
}

// Encode serializes the deck back to the stored JSON form.
func (d *Deck) Encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode deck: %w", err)
	}
	return string(b), nil
}

// Clone returns a deep copy of the deck. Editing surfaces mutate a copy
// so the original stays untouched until an explicit save.
func (d *Deck) Clone() *Deck {
	out := &Deck{Slides: make([]Slide, len(d.Slides))}
	for i, s := range d.Slides {
		cp := s
		cp.Content = append(StringList(nil), s.Content...)
		out.Slides[i] = cp
	}
	return out
}
