package dua

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

	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.Generate(ctx, "", opts...)
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.calls++
	return s.response, s.err
}

func newTestLookup(provider llm.LLMProvider, seed int64) *Lookup {
	guard := llm.NewGuard(provider, 5*time.Second)
	return NewLookup(guard, rand.New(rand.NewSource(seed)), log.New(io.Discard, "", 0))
}

func TestFetchNonDistress(t *testing.T) {
	provider := &stubProvider{}
	l := newTestLookup(provider, 1)

	assert.Nil(t, l.Fetch(context.Background(), emotion.Happy))
	assert.Nil(t, l.Fetch(context.Background(), emotion.None))
	assert.Zero(t, provider.calls, "non-distress categories must not touch the provider")
}

func TestFetchCuratedTier(t *testing.T) {
	provider := &stubProvider{err: errors.New("must not be called")}
	l := newTestLookup(provider, 42)

	for _, c := range []emotion.Category{
		emotion.Sad, emotion.Angry, emotion.Anxious, emotion.Tired,
		emotion.Lonely, emotion.Guilty, emotion.Hopeless,
	} {
		artifact := l.Fetch(context.Background(), c)
		require.NotNil(t, artifact, "curated category %s", c)
		assert.NotEmpty(t, artifact.Arabic)
		assert.NotEmpty(t, artifact.Translation)
	}
	assert.Zero(t, provider.calls, "curated entries must be served without the provider")
}

func TestFetchCuratedSelectionIsReproducible(t *testing.T) {
	a := newTestLookup(&stubProvider{}, 7).Fetch(context.Background(), emotion.Sad)
	b := newTestLookup(&stubProvider{}, 7).Fetch(context.Background(), emotion.Sad)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *a, *b, "same seed must pick the same curated entry")
}

func TestFetchGeneratedTier(t *testing.T) {
	// "empty" has no curated entries, so the generated tier runs.
	provider := &stubProvider{
		response: "Arabic: دعاء\nTranslation: A supplication for emptiness.",
	}
	l := newTestLookup(provider, 1)

	artifact := l.Fetch(context.Background(), emotion.Empty)
	require.NotNil(t, artifact)
	assert.Equal(t, "دعاء", artifact.Arabic)
	assert.Equal(t, "A supplication for emptiness.", artifact.Translation)
	assert.Equal(t, 1, provider.calls)
}

func TestFetchFallbackTier(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{name: "transport error", provider: &stubProvider{err: errors.New("down")}},
		{name: "missing translation", provider: &stubProvider{response: "Arabic: دعاء"}},
		{name: "unstructured text", provider: &stubProvider{response: "here is a nice dua for you"}},
		{name: "empty completion", provider: &stubProvider{response: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLookup(tt.provider, 1)
			artifact := l.Fetch(context.Background(), emotion.Empty)
			require.NotNil(t, artifact, "fallback must always yield an artifact")
			assert.Equal(t, genericFallback, *artifact)
		})
	}
}

func TestSerialize(t *testing.T) {
	a := Artifact{Arabic: "X", Translation: "Y"}
	assert.Equal(t, "Original: X\nTranslation: Y", a.Serialize())
}

func TestCuratedTableIsWellFormed(t *testing.T) {
	for category, entries := range curatedTable {
		assert.True(t, category.IsDistress(), "curated table must only hold distress categories")
		for _, e := range entries {
			assert.NotEmpty(t, e.Arabic)
			assert.NotEmpty(t, e.Translation)
		}
	}
}
