package dua

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"noor-counseling-be/internal/constant"
	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/llm"
)

// Lookup resolves a comfort artifact for a distress category. Policy, in
// priority order: curated table, guarded provider call, fixed generic
// fallback. Once the emotional branch is entered an artifact is always
// available; Fetch never returns an error.
type Lookup struct {
	guard  *llm.Guard
	rng    *rand.Rand
	logger *log.Logger
}

// NewLookup builds a Lookup. The rand source is injectable so table selection
// is reproducible in tests; pass nil for the global source behavior.
func NewLookup(guard *llm.Guard, rng *rand.Rand, logger *log.Logger) *Lookup {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Lookup{
		guard:  guard,
		rng:    rng,
		logger: logger,
	}
}

// Fetch returns an artifact for the category, or nil when the category does
// not call for one (happy, none, or anything non-distress).
func (l *Lookup) Fetch(ctx context.Context, category emotion.Category) *Artifact {
	if !category.IsDistress() {
		return nil
	}

	// Tier 1: curated table
	if entries, ok := curatedTable[category]; ok && len(entries) > 0 {
		picked := entries[l.rng.Intn(len(entries))]
		l.logger.Printf("[DUA] Served curated dua for %s", category)
		return &picked
	}

	// Tier 2: generated
	prompt := fmt.Sprintf(constant.FetchDuaPromptV1, category)
	raw, err := l.guard.Generate(ctx, prompt)
	if err == nil {
		if artifact := parseGenerated(raw); artifact != nil {
			l.logger.Printf("[DUA] Served generated dua for %s", category)
			return artifact
		}
		l.logger.Printf("[DUA] Generated dua failed validation for %s", category)
	} else {
		l.logger.Printf("[DUA] Provider failed for %s (%s): %v", category, llm.KindOf(err), err)
	}

	// Tier 3: generic fallback
	fallback := genericFallback
	return &fallback
}

// parseGenerated validates the two-line "Arabic: ... / Translation: ..."
// format. Both fields must be present and non-empty, otherwise nil.
func parseGenerated(raw string) *Artifact {
	var arabic, translation string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "Arabic:"); ok {
			arabic = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(line, "Translation:"); ok {
			translation = strings.TrimSpace(v)
		}
	}
	if arabic == "" || translation == "" {
		return nil
	}
	return &Artifact{Arabic: arabic, Translation: translation}
}
