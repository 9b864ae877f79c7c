package reply

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"noor-counseling-be/internal/constant"
	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/llm"
)

// Mode selects the synthesis branch.
type Mode string

const (
	ModeEmotional Mode = "emotional"
	ModeCasual    Mode = "casual"
)

// Fixed apology strings, one per mode. These are the last line of defense:
// a provider failure during synthesis becomes one of these, never an error.
const (
	apologyEmotional = "My heart is with you, but my words are failing me right now. Please stay with me and try once more in a little while."
	apologyCasual    = "Sorry, I could not come up with a reply just now. Please try again in a moment."
)

// Input carries the accumulated request state the synthesizer needs.
type Input struct {
	Name     string
	Emotion  string
	Message  string
	Artifact *dua.Artifact // non-nil only on the emotional branch
}

// Synthesizer produces the final user-facing message. Exactly one guarded
// provider call per invocation; failure degrades to the mode's apology.
type Synthesizer struct {
	guard  *llm.Guard
	rng    *rand.Rand
	logger *log.Logger
}

// NewSynthesizer builds a Synthesizer. The rand source feeds the tone-flavor
// generator; pass nil outside tests.
func NewSynthesizer(guard *llm.Guard, rng *rand.Rand, logger *log.Logger) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Synthesizer{
		guard:  guard,
		rng:    rng,
		logger: logger,
	}
}

// Synthesize builds the branch-specific prompt and returns the reply text.
// The result is always non-empty.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input, mode Mode) string {
	languageHint := constant.ReplyInEnglishHintV1
	if IsRomanUrdu(in.Message) {
		languageHint = constant.ReplyInRomanUrduHintV1
	}

	var prompt, apology string
	switch mode {
	case ModeEmotional:
		duaText := ""
		if in.Artifact != nil {
			duaText = in.Artifact.Serialize()
		}
		prompt = fmt.Sprintf(constant.CounselEmotionalPromptV1,
			in.Name, in.Emotion, in.Name, in.Message, duaText, toneFlavor(s.rng), languageHint)
		apology = apologyEmotional
	default:
		prompt = fmt.Sprintf(constant.CounselCasualPromptV1,
			in.Name, in.Message, toneFlavor(s.rng), languageHint)
		apology = apologyCasual
	}

	out, fellBack := s.guard.GenerateOr(ctx, prompt, apology)
	if fellBack {
		s.logger.Printf("[REPLY] Synthesis fell back to %s apology", mode)
	}
	return out
}

// Apology exposes the fixed fallback for a mode so callers and tests can
// recognize it.
func Apology(mode Mode) string {
	if mode == ModeEmotional {
		return apologyEmotional
	}
	return apologyCasual
}
