package main

import (
	"context"
	"log"

	_ "proposal_relay/docs"
	"proposal_relay/internal/adapter/http/handlers"
	"proposal_relay/internal/adapter/http/routes"
	"proposal_relay/internal/adapter/persistence/repository"
	"proposal_relay/internal/infrastructure/config"
	"proposal_relay/internal/infrastructure/database"
	"proposal_relay/internal/infrastructure/logger"
	"proposal_relay/internal/infrastructure/webhook"
	"proposal_relay/internal/usecase"
	"proposal_relay/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Proposal Relay API
// @version         1.0
// @description     Relays service proposals from the browser form to the automation webhook.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = appLogger.Sync() }()

	gateway, err := webhook.NewWebhookGateway(cfg.WebhookURL, cfg.WebhookTimeout, cfg.WebhookMock, appLogger)
	if err != nil {
		appLogger.Fatal("webhook gateway not configured", zap.Error(err))
	}

	var deliveries interfaces.IDeliveryRepository
	if cfg.DeliveryAudit.Enabled {
		ddb, err := database.NewDynamoDBClient(context.Background())
		if err != nil {
			appLogger.Fatal("dynamodb client not configured", zap.Error(err))
		}
		deliveries = repository.NewDeliveryDynamoRepository(ddb, cfg.DeliveryAudit.Table)
		appLogger.Info("delivery audit enabled", zap.String("table", cfg.DeliveryAudit.Table))
	}

	relayUseCase := usecase.NewProposalRelayUseCase(gateway, deliveries, appLogger)

	h := routes.Handlers{
		Proposal: handlers.NewProposalHandler(relayUseCase, cfg.MaxBodyBytes, appLogger),
		Catalog:  handlers.NewCatalogHandler(),
	}

	if err := routes.Run(cfg, h, appLogger); err != nil {
		appLogger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
