// Package models defines the core data structures for users and presentations.
package models

import "time"

// User represents an application account.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Email is the unique login email.
	Email string
	// Name is the optional display name.
	Name string
	// Avatar is an optional avatar image URI.
	Avatar string
	// PasswordHash is the bcrypt hash of the password. It is empty for
	// accounts created through an external identity provider; such
	// accounts cannot log in with credentials.
	PasswordHash string
}

// Presentation is the aggregate holding all inputs, calibration settings,
// and generated output for one slide deck. Optional fields are pointers so
// "never set" is distinguishable from an explicit empty value.
type Presentation struct {
	// ID is the unique identifier, assigned at creation.
	ID string
	// UserID identifies the owning user. Every mutating operation is
	// scoped by both ID and UserID.
	UserID string
	// ContentInput is the raw source material supplied by the user.
	ContentInput *string
	// SystemInstruction holds free-text authoring instructions.
	SystemInstruction *string
	// Tone is one of the Tone* constants, or arbitrary text when the
	// user picked ToneCustom.
	Tone *string
	// Verbosity is an integer in [0,4], see VerbosityLabel.
	Verbosity *int
	// NoOfSlides is the desired slide count. Generation defaults it to
	// DefaultSlideCount when unset.
	NoOfSlides *int
	// GeneratedContent is the raw model response, expected but not
	// guaranteed to be a JSON-encoded deck. It is stored verbatim and
	// only parsed by consumers.
	GeneratedContent *string
	// CreatedAt is the record creation timestamp.
	CreatedAt time.Time
}

// DefaultSlideCount is used when a presentation has no stored slide count
// at generation time.
const DefaultSlideCount = 3

// Tone vocabulary. ToneCustom means the tone field carries user text.
const (
	ToneDefault       = "Default"
	ToneProfessional  = "Professional"
	ToneCasual        = "Casual"
	TonePersuasive    = "Persuasive"
	ToneInspirational = "Inspirational"
	ToneEducational   = "Educational"
	ToneNarrative     = "Narrative"
	ToneAuthoritative = "Authoritative"
	ToneTechnical     = "Technical"
	ToneEmpathetic    = "Empathetic"
	ToneCustom        = "Custom"
)

// Verbosity bounds for calibration.
const (
	VerbosityMin = 0
	VerbosityMax = 4
)

// verbosityLabels maps levels 0-4 to their display labels.
var verbosityLabels = [...]string{"LOW", "LOW-MEDIUM", "MEDIUM", "MEDIUM-HIGH", "HIGH"}

// VerbosityLabel returns the label for a verbosity level, or an empty
// string for out-of-range levels.
func VerbosityLabel(level int) string {
	if !ValidVerbosity(level) {
		return ""
	}
	return verbosityLabels[level]
}

// ValidVerbosity reports whether level is within the calibration range.
func ValidVerbosity(level int) bool {
	return level >= VerbosityMin && level <= VerbosityMax
}
