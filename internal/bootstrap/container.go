package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"doc-qa-be/internal/config"
	"doc-qa-be/internal/controller"
	"doc-qa-be/internal/pkg/logger"
	"doc-qa-be/internal/service"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/extract"
	llmOllama "doc-qa-be/pkg/llm/ollama"
	"doc-qa-be/pkg/status"
	"doc-qa-be/pkg/store"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	ChatController    controller.IChatController
	SystemController  controller.ISystemController

	// Background services (exposed for main.go to run)
	IndexerService service.IIndexerService

	// Session bootstrap (most recent persisted session becomes current)
	SessionService service.ISessionService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionStore, err := store.NewFileStore(cfg.Storage.IndexDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize session store: %v", err)
	}

	tracker := status.NewTracker()
	current := service.NewCurrentSession()

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Local model providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding model: %s", cfg.Ai.EmbeddingModel)

	llmProvider := llmOllama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	log.Printf("[INFO] Using LLM model: %s", cfg.Ai.LLMModel)

	extractor := extract.NewFileExtractor()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Topics.IndexSession, pubSub)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.Topics.IndexSession,
		sessionStore,
		tracker,
		embeddingProvider,
		extractor,
		current,
		sysLogger,
	)

	sessionService := service.NewSessionService(
		cfg.Storage.UploadDir,
		sessionStore,
		tracker,
		publisherService,
		current,
		sysLogger,
	)

	queryService := service.NewQueryService(
		sessionStore,
		tracker,
		current,
		embeddingProvider,
		llmProvider,
		cfg.Ai.TopK,
		cfg.Ai.Temperature,
		cfg.Ai.MaxTokens,
		sysLogger,
	)

	systemService := service.NewSystemService(
		llmProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.LLMModel,
		sessionStore,
		current,
	)

	// 5. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		ChatController:    controller.NewChatController(queryService),
		SystemController:  controller.NewSystemController(systemService),

		IndexerService: indexerService,
		SessionService: sessionService,
	}
}
