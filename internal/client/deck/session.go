// Package deck implements the client-side viewing session for a
// generated slide deck: the grid overview, full-screen preview, and
// per-slide editing, with keyboard-driven navigation.
package deck

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/slides"
)

// Mode is the session's interaction state.
type Mode int

const (
	// ModeGrid shows all slides at once. Navigation keys are inert here.
	ModeGrid Mode = iota
	// ModePreview shows one slide full screen.
	ModePreview
	// ModeEdit shows one slide with its fields editable.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModePreview:
		return "preview"
	case ModeEdit:
		return "edit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Key is a navigation key press.
type Key int

const (
	// KeyForward advances to the next slide (ArrowRight or Space).
	KeyForward Key = iota
	// KeyBackward steps to the previous slide (ArrowLeft).
	KeyBackward
	// KeyCancel leaves the current mode back to the grid (Escape).
	KeyCancel
)

// DeckSaver persists an edited deck back to the server.
type DeckSaver interface {
	SaveDeck(ctx context.Context, id, rawDeck string) error
}

var (
	// ErrEmptyDeck is returned when a session is opened over a deck with
	// no slides.
	ErrEmptyDeck = errors.New("deck has no slides")
	// ErrOutOfRange is returned for a slide index outside the deck.
	ErrOutOfRange = errors.New("slide index out of range")
)

// Session holds one open deck. All mutation happens on a private clone,
// so the caller's deck is untouched until Save succeeds. Session is not
// safe for concurrent use; it models a single interactive view.
type Session struct {
	presentationID string
	deck           *slides.Deck
	saver          DeckSaver

	mode   Mode
	active int
	dirty  bool
}

// NewSession opens a session over a parsed deck. The deck is cloned, it
// starts in grid mode with the first slide active.
func NewSession(presentationID string, d *slides.Deck, saver DeckSaver) (*Session, error) {
	if d == nil || len(d.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Session{
		presentationID: presentationID,
		deck:           d.Clone(),
		saver:          saver,
	}, nil
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Active returns the index of the active slide.
func (s *Session) Active() int { return s.active }

// Dirty reports whether the session holds unsaved edits.
func (s *Session) Dirty() bool { return s.dirty }

// Deck returns the session's working copy.
func (s *Session) Deck() *slides.Deck { return s.deck }

// ActiveSlide returns the slide currently in focus.
func (s *Session) ActiveSlide() *slides.Slide {
	return &s.deck.Slides[s.active]
}

// EnterPreview switches to full-screen preview on slide i.
func (s *Session) EnterPreview(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.mode = ModePreview
	s.active = i
	return nil
}

// EnterEdit switches to edit mode on slide i.
func (s *Session) EnterEdit(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.mode = ModeEdit
	s.active = i
	return nil
}

// Close returns to the grid. Pending edits stay in the working copy.
func (s *Session) Close() {
	s.mode = ModeGrid
}

// Next advances the active slide, clamped at the last slide.
func (s *Session) Next() {
	if s.active < len(s.deck.Slides)-1 {
		s.active++
	}
}

// Prev steps back, clamped at the first slide.
func (s *Session) Prev() {
	if s.active > 0 {
		s.active--
	}
}

// HandleKey dispatches a key press. Keys only act in preview and edit
// modes; in the grid they are ignored, so stray presses cannot move an
// invisible cursor.
func (s *Session) HandleKey(k Key) {
	if s.mode == ModeGrid {
		return
	}
	switch k {
	case KeyForward:
		s.Next()
	case KeyBackward:
		s.Prev()
	case KeyCancel:
		s.Close()
	}
}

// SetTitle replaces the active slide's title. Only valid in edit mode.
func (s *Session) SetTitle(title string) error {
	if s.mode != ModeEdit {
		return fmt.Errorf("cannot edit in %s mode", s.mode)
	}
	s.deck.Slides[s.active].Title = title
	s.dirty = true
	return nil
}

// SetContentLine replaces line n of the active slide's content. Only
// valid in edit mode.
func (s *Session) SetContentLine(n int, text string) error {
	if s.mode != ModeEdit {
		return fmt.Errorf("cannot edit in %s mode", s.mode)
	}
	content := s.deck.Slides[s.active].Content
	if n < 0 || n >= len(content) {
		return ErrOutOfRange
	}
	content[n] = text
	s.dirty = true
	return nil
}

// AddContentLine appends a content line to the active slide. Only valid
// in edit mode.
func (s *Session) AddContentLine(text string) error {
	if s.mode != ModeEdit {
		return fmt.Errorf("cannot edit in %s mode", s.mode)
	}
	s.deck.Slides[s.active].Content = append(s.deck.Slides[s.active].Content, text)
	s.dirty = true
	return nil
}

// Save encodes the working copy and persists it through the saver. On
// success the session is clean again. A failed save keeps the edits and
// the dirty flag so the user can retry.
func (s *Session) Save(ctx context.Context) error {
	raw, err := s.deck.Encode()
	if err != nil {
		return err
	}
	if err := s.saver.SaveDeck(ctx, s.presentationID, raw); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.deck.Slides) {
		return ErrOutOfRange
	}
	return nil
}
