// Package prompt builds the model prompts used for slide generation.
// The system prompt is a fixed output contract passed to the model as a
// distinct system instruction; Build produces the per-request user prompt
// from a presentation's accumulated fields.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
)

// TokensPerSlide returns the suggested token budget per slide for a
// verbosity level. Levels map linearly: level N gets 70+10*N tokens,
// N in [0,4]. Out-of-range levels clamp to the nearest bound.
func TokensPerSlide(level int) int {
	if level < models.VerbosityMin {
		level = models.VerbosityMin
	}
	if level > models.VerbosityMax {
		level = models.VerbosityMax
	}
	return 70 + 10*level
}

// Build composes the user prompt for one generation request. It embeds
// the topic, tone, verbosity level number, the user's authoring
// instructions, the requested slide count, and the verbosity token
// table. Unset fields render as empty so the model sees the same
// bracketed template every time.
func Build(p *models.Presentation) string {
	topic := strDeref(p.ContentInput)
	instructions := strDeref(p.SystemInstruction)
	tone := strDeref(p.Tone)

	verbosity := 0
	if p.Verbosity != nil {
		verbosity = *p.Verbosity
	}
	slideCount := models.DefaultSlideCount
	if p.NoOfSlides != nil {
		slideCount = *p.NoOfSlides
	}

	var b strings.Builder
	fmt.Fprintf(&b, "create me slides on topic [%s]\n", topic)
	fmt.Fprintf(&b, "tone [%s], verbosity[level-%d] and follow this design guide by the user [%s] i need %d SLIDES CONTENT\n\n",
		tone, verbosity, instructions, slideCount)

	b.WriteString("the verbosity level is defined as\nVERBOSITY-LEVEL {\n")
	for level := models.VerbosityMin; level <= models.VerbosityMax; level++ {
		fmt.Fprintf(&b, "  LEVEL-%d :[%d TOKENS PER SLIDE]\n", level, TokensPerSlide(level))
	}
	b.WriteString("}")
	return b.String()
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
