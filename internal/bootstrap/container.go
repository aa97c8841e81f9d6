package bootstrap

import (
	"log"

	"eco-chat-be/internal/cache"
	"eco-chat-be/internal/config"
	"eco-chat-be/internal/controller"
	"eco-chat-be/internal/pkg/logger"
	"eco-chat-be/internal/pkg/serverutils"
	"eco-chat-be/internal/repository/memory"
	"eco-chat-be/internal/service"
	"eco-chat-be/pkg/llm/factory"
	pktNats "eco-chat-be/pkg/nats"
	"eco-chat-be/pkg/search"
	"eco-chat-be/pkg/vision"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController

	// Middleware
	JwtMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	UsageConsumer service.IUsageConsumer

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS mirror for usage events
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Search-result cache: Redis when configured, no-op otherwise
	var searchCache cache.Cache
	if cfg.App.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Search caching disabled", err)
			searchCache = cache.NewNoOpCache()
		} else {
			searchCache = redisCache
		}
	} else {
		searchCache = cache.NewNoOpCache()
	}

	// 3. Collaborators
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Gemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	searcher := search.NewGoogleSearcher(cfg.Keys.GoogleSearch, cfg.Keys.SearchEngineID, searchCache, sysLogger)
	classifier := vision.NewRoboflowClient(cfg.Keys.Roboflow, sysLogger)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Ai.SessionTTL, cfg.Ai.MaxSessions)

	// 4. Services
	usageService := service.NewUsageService(pubSub, natsPub, sysLogger)
	chatbotService := service.NewChatbotService(
		llmProvider,
		searcher,
		classifier,
		sessionRepo,
		usageService,
		sysLogger,
	)

	// 5. Controllers & Middleware
	chatbotController := controller.NewChatbotController(chatbotService, sysLogger)
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	return &Container{
		ChatbotController: chatbotController,
		JwtMiddleware:     jwtMiddleware,
		UsageConsumer:     usageService,
		Logger:            sysLogger,
	}
}
