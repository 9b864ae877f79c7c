package emotion

import (
	"context"
	"fmt"
	"log"

	"noor-counseling-be/internal/constant"
	"noor-counseling-be/pkg/llm"
)

// Classifier maps raw user text onto the closed Category set via a single
// guarded provider call. Any failure of the underlying call degrades to None;
// classification never fails a request.
type Classifier struct {
	guard  *llm.Guard
	logger *log.Logger
}

func NewClassifier(guard *llm.Guard, logger *log.Logger) *Classifier {
	return &Classifier{
		guard:  guard,
		logger: logger,
	}
}

// Classify returns the detected category, or None when the provider fails or
// answers outside the closed set.
func (c *Classifier) Classify(ctx context.Context, text string) Category {
	prompt := fmt.Sprintf(constant.ClassifyEmotionPromptV1, text)

	raw, err := c.guard.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Printf("[CLASSIFIER] Provider failed (%s), degrading to none: %v", llm.KindOf(err), err)
		return None
	}

	category := Parse(raw)
	if category == None && raw != "" {
		c.logger.Printf("[CLASSIFIER] Rejected out-of-set label: %q", truncate(raw, 40))
	}
	return category
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
