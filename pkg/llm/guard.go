package llm

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DefaultGenerationTimeout bounds a single provider call. Every call site that
// goes through the Guard inherits this unless configured otherwise.
const DefaultGenerationTimeout = 30 * time.Second

// Guard applies the one uniform policy for talking to the provider: a bounded
// timeout per call, deadline expiry normalized to KindTimeout, and an optional
// fixed fallback value. There is no retry; each call fails fast to its local
// fallback so request latency stays bounded.
type Guard struct {
	provider LLMProvider
	timeout  time.Duration
}

func NewGuard(provider LLMProvider, timeout time.Duration) *Guard {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Guard{
		provider: provider,
		timeout:  timeout,
	}
}

// Generate runs a single prompt under the guard policy. An empty or
// whitespace-only completion is a failure (KindEmpty), never a valid result.
func (g *Guard) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.provider.Generate(callCtx, prompt, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && KindOf(err) == KindUnknown {
			return "", NewGenerationError(KindTimeout, err)
		}
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", NewGenerationError(KindEmpty, errors.New("provider returned empty completion"))
	}
	return out, nil
}

// GenerateOr runs Generate and substitutes the fixed fallback on any failure.
// The returned bool reports whether the fallback was used.
func (g *Guard) GenerateOr(ctx context.Context, prompt, fallback string, opts ...Option) (string, bool) {
	out, err := g.Generate(ctx, prompt, opts...)
	if err != nil {
		return fallback, true
	}
	return out, false
}
