package bootstrap

import (
	"log"

	"noor-counseling-be/internal/config"
	"noor-counseling-be/internal/controller"
	"noor-counseling-be/internal/pkg/logger"
	"noor-counseling-be/internal/service"
	"noor-counseling-be/pkg/counsel"
	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/llm"
	"noor-counseling-be/pkg/llm/factory"
	"noor-counseling-be/pkg/reply"
	"noor-counseling-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// System logger (Exposed for main.go to Sync on exit)
	SysLogger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := service.InitPipelineLogger()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider + Guard
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("bootstrap", "LLM provider initialized", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	guard := llm.NewGuard(llmProvider, cfg.Ai.GenerationTimeout)

	// 4. Pipeline components
	sessionStore := session.NewStore()
	classifier := emotion.NewClassifier(guard, pipelineLogger)
	duaLookup := dua.NewLookup(guard, nil, pipelineLogger)
	synthesizer := reply.NewSynthesizer(guard, nil, pipelineLogger)

	executor := counsel.NewExecutor(
		sessionStore,
		classifier,
		duaLookup,
		synthesizer,
		pipelineLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.ChatTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ChatTopicName)
	counselService := service.NewCounselService(executor, publisherService, pipelineLogger)

	// 6. Controllers
	return &Container{
		ChatController:  controller.NewChatController(counselService),
		ConsumerService: consumerService,
		SysLogger:       sysLogger,
	}
}
