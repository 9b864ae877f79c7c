package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"noor-counseling-be/internal/config"
	"noor-counseling-be/pkg/counsel"
	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/llm"
	"noor-counseling-be/pkg/llm/factory"
	"noor-counseling-be/pkg/reply"
	"noor-counseling-be/pkg/session"

	"github.com/fatih/color"
)

// probe exercises the counseling pipeline directly against the live provider,
// without the HTTP layer. Useful for eyeballing prompts and fallbacks.
func main() {
	userID := flag.String("user", "probe-user", "user id for the session store")
	name := flag.String("name", "", "optional display name")
	message := flag.String("message", "I feel so alone tonight", "message to send through the pipeline")
	flag.Parse()

	cfg := config.Load()

	provider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Keys.GoogleGemini)
	if err != nil {
		color.Red("Failed to initialize provider: %v", err)
		os.Exit(1)
	}

	guard := llm.NewGuard(provider, cfg.Ai.GenerationTimeout)
	logger := log.New(os.Stderr, "[PROBE] ", log.LstdFlags)

	executor := counsel.NewExecutor(
		session.NewStore(),
		emotion.NewClassifier(guard, logger),
		dua.NewLookup(guard, nil, logger),
		reply.NewSynthesizer(guard, nil, logger),
		logger,
	)

	color.Cyan("Running pipeline for %q", *message)
	started := time.Now()

	final, err := executor.Execute(context.Background(), counsel.State{
		UserID:  *userID,
		Name:    *name,
		Message: *message,
	})
	if err != nil {
		color.Red("Pipeline failed: %v", err)
		os.Exit(1)
	}

	color.Green("Done in %s", time.Since(started).Round(time.Millisecond))
	color.Yellow("\nName:    %s", final.Name)
	color.Yellow("Emotion: %s (branch: %s)", final.EmotionLabel(), final.Branch)
	if final.Artifact != nil {
		color.Yellow("Dua:\n%s", final.Artifact.Serialize())
	}
	fmt.Printf("\nReply:\n%s\n", final.Reply)
}
