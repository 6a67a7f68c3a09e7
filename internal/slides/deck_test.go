package slides

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDeck_NoContent(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := ParseDeck(raw)
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("ParseDeck(%q) error = %v; want ErrNoContent", raw, err)
		}
	}
}

func TestParseDeck_Malformed(t *testing.T) {
	inputs := []string{
		"not json at all",
		"{",
		`{"slides": "nope"}`,
		`[1,2,3`,
		`I'm sorry, I can't generate that.`,
	}
	for _, raw := range inputs {
		deck, err := ParseDeck(raw)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseDeck(%q) error = %v; want ErrMalformed", raw, err)
		}
		if deck != nil {
			t.Errorf("ParseDeck(%q) returned deck %v on error", raw, deck)
		}
	}
}

func TestParseDeck_ScalarContentCoercion(t *testing.T) {
	raw := `{"slides":[{"title":"T","content":"single line"}]}`
	deck, err := ParseDeck(raw)
	if err != nil {
		t.Fatalf("ParseDeck failed: %v", err)
	}
	if len(deck.Slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(deck.Slides))
	}
	want := StringList{"single line"}
	if !reflect.DeepEqual(deck.Slides[0].Content, want) {
		t.Errorf("content = %v; want %v", deck.Slides[0].Content, want)
	}
}

func TestParseDeck_DefaultsMissingFields(t *testing.T) {
	raw := `{"slides":[{"title":"Only a title"}]}`
	deck, err := ParseDeck(raw)
	if err != nil {
		t.Fatalf("ParseDeck failed: %v", err)
	}
	s := deck.Slides[0]
	if s.Content == nil || len(s.Content) != 0 {
		t.Errorf("content = %v; want empty list", s.Content)
	}
	if s.Layout != LayoutDefault {
		t.Errorf("layout = %q; want %q", s.Layout, LayoutDefault)
	}
	if s.Visuals != "" {
		t.Errorf("visuals = %q; want empty", s.Visuals)
	}
}

func TestParseDeck_NormalizationIdempotent(t *testing.T) {
	deck := &Deck{Slides: []Slide{
		{Title: "# Problem", Content: StringList{"a", "b"}, Visuals: "chart", Layout: "bullets"},
		{Title: "Solution", Content: StringList{"c"}, Layout: "default"},
	}}
	encoded, err := deck.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	reparsed, err := ParseDeck(encoded)
	if err != nil {
		t.Fatalf("ParseDeck failed: %v", err)
	}
	if !reflect.DeepEqual(reparsed, deck) {
		t.Errorf("round trip changed deck:\n got %+v\nwant %+v", reparsed, deck)
	}
}

func TestSlide_Heading(t *testing.T) {
	tests := []struct {
		title   string
		major   bool
		heading string
	}{
		{"# Big Picture", true, "Big Picture"},
		{"#Tight", true, "Tight"},
		{"Plain", false, "Plain"},
	}
	for _, tt := range tests {
		s := Slide{Title: tt.title}
		if s.IsMajor() != tt.major {
			t.Errorf("IsMajor(%q) = %v; want %v", tt.title, s.IsMajor(), tt.major)
		}
		if s.Heading() != tt.heading {
			t.Errorf("Heading(%q) = %q; want %q", tt.title, s.Heading(), tt.heading)
		}
	}
}

func TestSlide_EffectiveLayout(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"split", LayoutSplit},
		{"Centered", LayoutCentered},
		{"BULLETS", LayoutBullets},
		{"grid", LayoutGrid},
		{"", LayoutDefault},
		{"2x2 table", LayoutDefault},
		{"Bullet list", LayoutDefault},
	}
	for _, tt := range tests {
		s := Slide{Layout: tt.layout}
		if got := s.EffectiveLayout(); got != tt.want {
			t.Errorf("EffectiveLayout(%q) = %q; want %q", tt.layout, got, tt.want)
		}
	}
}

func TestDeck_Clone_Isolated(t *testing.T) {
	orig := &Deck{Slides: []Slide{
		{Title: "A", Content: StringList{"one", "two"}},
		{Title: "B", Content: StringList{"three"}},
	}}
	cp := orig.Clone()
	cp.Slides[0].Title = "changed"
	cp.Slides[0].Content[1] = "mutated"

	if orig.Slides[0].Title != "A" {
		t.Errorf("clone mutation leaked into original title: %q", orig.Slides[0].Title)
	}
	if orig.Slides[0].Content[1] != "two" {
		t.Errorf("clone mutation leaked into original content: %q", orig.Slides[0].Content[1])
	}
}
