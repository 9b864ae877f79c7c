package reply

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/llm"
)

type capturingProvider struct {
	response   string
	err        error
	lastPrompt string
}

func (c *capturingProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return c.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (c *capturingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	c.lastPrompt = prompt
	return c.response, c.err
}

func newTestSynthesizer(provider llm.LLMProvider) *Synthesizer {
	guard := llm.NewGuard(provider, 5*time.Second)
	return NewSynthesizer(guard, rand.New(rand.NewSource(1)), log.New(io.Discard, "", 0))
}

func TestSynthesizeEmotional(t *testing.T) {
	provider := &capturingProvider{response: "a soothing reply"}
	s := newTestSynthesizer(provider)

	artifact := &dua.Artifact{Arabic: "دعاء", Translation: "A supplication."}
	out := s.Synthesize(context.Background(), Input{
		Name:     "Ali",
		Emotion:  "lonely",
		Message:  "I feel so alone tonight",
		Artifact: artifact,
	}, ModeEmotional)

	assert.Equal(t, "a soothing reply", out)
	assert.Contains(t, provider.lastPrompt, "Ali")
	assert.Contains(t, provider.lastPrompt, "lonely")
	assert.Contains(t, provider.lastPrompt, artifact.Arabic, "artifact must be embedded in the prompt")
	assert.Contains(t, provider.lastPrompt, artifact.Translation)
}

func TestSynthesizeCasual(t *testing.T) {
	provider := &capturingProvider{response: "a friendly reply"}
	s := newTestSynthesizer(provider)

	out := s.Synthesize(context.Background(), Input{
		Name:    "Sara",
		Emotion: "neutral",
		Message: "haha that is so funny i cannot stop laughing",
	}, ModeCasual)

	assert.Equal(t, "a friendly reply", out)
	assert.Contains(t, provider.lastPrompt, "Sara")
	assert.NotContains(t, provider.lastPrompt, "dua", "casual prompt must not reference distress content")
	assert.NotContains(t, provider.lastPrompt, "Emotion detected")
}

func TestSynthesizeFallsBackToApology(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
	}{
		{name: "emotional mode", mode: ModeEmotional},
		{name: "casual mode", mode: ModeCasual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSynthesizer(&capturingProvider{err: errors.New("provider down")})
			out := s.Synthesize(context.Background(), Input{
				Name:    "Ali",
				Message: "hello there my friend",
			}, tt.mode)

			require.NotEmpty(t, out)
			assert.Equal(t, Apology(tt.mode), out)
		})
	}

	// The two apologies must be distinguishable.
	assert.NotEqual(t, Apology(ModeEmotional), Apology(ModeCasual))
}

func TestSynthesizeEmptyCompletionBecomesApology(t *testing.T) {
	s := newTestSynthesizer(&capturingProvider{response: "   "})
	out := s.Synthesize(context.Background(), Input{
		Name:    "Ali",
		Message: "hello there my friend",
	}, ModeCasual)

	assert.Equal(t, Apology(ModeCasual), out)
}

func TestSynthesizeRomanUrduHint(t *testing.T) {
	provider := &capturingProvider{response: "jawab"}
	s := newTestSynthesizer(provider)

	s.Synthesize(context.Background(), Input{
		Name:    "Ali",
		Message: "mujhe bohat akela mehsoos ho raha hai",
	}, ModeCasual)

	assert.Contains(t, provider.lastPrompt, "Roman Urdu")
}
