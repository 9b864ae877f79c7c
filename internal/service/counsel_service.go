package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"noor-counseling-be/internal/dto"
	"noor-counseling-be/pkg/counsel"
	"noor-counseling-be/pkg/events"
)

// ICounselService defines the chat service interface
type ICounselService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type counselService struct {
	executor         *counsel.Executor
	publisherService IPublisherService
	pipelineLogger   *log.Logger
}

func NewCounselService(
	executor *counsel.Executor,
	publisherService IPublisherService,
	pipelineLogger *log.Logger,
) ICounselService {
	return &counselService{
		executor:         executor,
		publisherService: publisherService,
		pipelineLogger:   pipelineLogger,
	}
}

// InitPipelineLogger opens the dedicated pipeline log file, falling back to
// stdout when the logs directory cannot be created.
func InitPipelineLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[PIPELINE] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// Chat runs the counseling pipeline for one request and maps the final state
// onto the response schema.
func (s *counselService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	started := time.Now()

	final, err := s.executor.Execute(ctx, counsel.State{
		UserID:  request.UserId,
		Name:    request.Name,
		Message: request.Message,
	})
	if err != nil {
		return nil, err
	}

	s.publishCompleted(ctx, final, time.Since(started))

	response := &dto.ChatResponse{
		Name:    final.Name,
		Emotion: final.EmotionLabel(),
		Message: final.Reply,
	}
	if final.Artifact != nil {
		serialized := final.Artifact.Serialize()
		response.Dua = &serialized
	}
	return response, nil
}

// publishCompleted emits the mood trend event. Best effort: a bus problem
// must never fail a request that already has its reply.
func (s *counselService) publishCompleted(ctx context.Context, final *counsel.State, latency time.Duration) {
	event := events.NewChatCompleted(
		final.RunID,
		final.UserID,
		final.EmotionLabel(),
		string(final.Branch),
		latency,
	)
	if err := s.publisherService.Publish(ctx, event); err != nil {
		s.pipelineLogger.Printf("[WARN] Failed to publish chat completed event: %v", err)
	}
}
