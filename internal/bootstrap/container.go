package bootstrap

import (
	"context"
	"log"

	"letter-drafting-be/internal/config"
	"letter-drafting-be/internal/controller"
	"letter-drafting-be/internal/pkg/logger"
	"letter-drafting-be/internal/repository/memory"
	"letter-drafting-be/internal/repository/rediscache"
	"letter-drafting-be/internal/repository/unitofwork"
	"letter-drafting-be/internal/service"
	"letter-drafting-be/pkg/barcode"
	"letter-drafting-be/pkg/grammar"
	"letter-drafting-be/pkg/letterdoc"

	pktNats "letter-drafting-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LetterDraftController  controller.ILetterDraftController
	GrammarController      controller.IGrammarController
	OrganizationController controller.IOrganizationController
	LetterTypeController   controller.ILetterTypeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Domain Facades
	engine := letterdoc.NewEngineWithBarcode(cfg.Letter.SealImageURL, func(text string) (string, error) {
		return barcode.DataURL(text, cfg.Letter.BarcodeWidth, cfg.Letter.BarcodeHeight)
	})
	grammarClient := grammar.NewClient(cfg.Grammar.BaseURL, cfg.Grammar.APIKey)
	grammarCache := rediscache.NewGrammarCache(rdb)
	previewRepo := memory.NewPreviewRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Letter.DraftSavedTopic, pubSub)
	hydrationService := service.NewHydrationService(uowFactory, engine, previewRepo, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Letter.DraftSavedTopic,
		hydrationService,
		sysLogger,
	)

	letterDraftService := service.NewLetterDraftService(uowFactory, publisherService, natsPub)
	grammarService := service.NewGrammarService(grammarClient, grammarCache, sysLogger)
	organizationService := service.NewOrganizationService(uowFactory)
	letterTypeService := service.NewLetterTypeService(uowFactory)

	// 5. Controllers
	return &Container{
		LetterDraftController:  controller.NewLetterDraftController(letterDraftService, hydrationService),
		GrammarController:      controller.NewGrammarController(grammarService),
		OrganizationController: controller.NewOrganizationController(organizationService),
		LetterTypeController:   controller.NewLetterTypeController(letterTypeService),

		ConsumerService: consumerService,
	}
}
