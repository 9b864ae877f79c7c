package emotion

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"noor-counseling-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.response, s.err
}

func newTestClassifier(provider llm.LLMProvider) *Classifier {
	guard := llm.NewGuard(provider, 5*time.Second)
	return NewClassifier(guard, log.New(io.Discard, "", 0))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     Category
	}{
		{name: "clean label", response: "lonely", want: Lonely},
		{name: "label with noise", response: "  Sad.\n", want: Sad},
		{name: "multi-word response", response: "the emotion is sad", want: None},
		{name: "out of set label", response: "nostalgic", want: None},
		{name: "empty response", response: "", want: None},
		{name: "transport failure", err: errors.New("connection refused"), want: None},
		{name: "typed timeout", err: llm.NewGenerationError(llm.KindTimeout, context.DeadlineExceeded), want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(&stubProvider{response: tt.response, err: tt.err})
			got := c.Classify(context.Background(), "whatever the user said")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyNeverPanicsOnProviderError(t *testing.T) {
	c := newTestClassifier(&stubProvider{err: errors.New("boom")})
	assert.NotPanics(t, func() {
		_ = c.Classify(context.Background(), "hello")
	})
}
