package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/config"
	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/database"
	"github.com/xavierca1/soluvia-crm/internal/infra/export"
	"github.com/xavierca1/soluvia-crm/internal/infra/http/handlers"
	"github.com/xavierca1/soluvia-crm/internal/infra/queue"
	"github.com/xavierca1/soluvia-crm/internal/infra/worker"
	"github.com/xavierca1/soluvia-crm/internal/logger"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Repositórios (memória, com ou sem dados de demonstração)
	leadRepo, clientRepo, followUpRepo, settingsRepo, catalog := repositories(cfg.CRM.SeedData)

	// 2. UseCases
	followUpUC := usecase.NewFollowUpUseCase(
		followUpRepo, entity.NewClassifier(cfg.CRM.WarningThreshold), nil, appLogger.Named("followups"),
	)

	// 3. Eventos de venda: RabbitMQ quando configurado, senão em processo
	var publisher usecase.EventPublisher = queue.NewInlinePublisher(followUpUC)
	var broker handlers.BrokerConn
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			appLogger.Fatal("rabbitmq indisponível", zap.Error(err))
		}
		defer rabbitMQ.Close()

		consumerCh, err := rabbitMQ.Conn.Channel()
		if err != nil {
			appLogger.Fatal("falha ao abrir canal do consumer", zap.Error(err))
		}
		defer consumerCh.Close()

		publisher = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ.Conn

		consumer := queue.NewWorker(consumerCh, followUpUC, appLogger.Named("sale-worker"))
		go func() {
			if err := consumer.Start(ctx, queue.QueueName); err != nil {
				appLogger.Error("sale worker parou", zap.Error(err))
			}
		}()
	}

	kanbanUC := usecase.NewKanbanUseCase(leadRepo, publisher, nil, appLogger.Named("kanban"))
	clientsUC := usecase.NewClientsUseCase(clientRepo, export.NewXLSXExporter(), cfg.CRM.PageSize, nil, appLogger.Named("clients"))
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, settingsRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, catalog, nil, appLogger.Named("settings"))

	// 4. Worker de prazos
	deadlines := worker.NewFollowUpDeadlineWorker(followUpUC, cfg.CRM.SweepInterval, appLogger.Named("deadline-worker"))
	go deadlines.Start(ctx)

	// 5. Router
	router := handlers.Router{
		Leads:          handlers.NewLeadHandler(kanbanUC),
		Clients:        handlers.NewClientHandler(clientsUC),
		FollowUps:      handlers.NewFollowUpHandler(followUpUC),
		Dashboard:      handlers.NewDashboardHandler(dashboardUC),
		Settings:       handlers.NewSettingsHandler(settingsUC),
		Health:         handlers.NewHealthHandler(broker),
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:         appLogger,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("SOLUV.IA CRM rodando", zap.String("addr", srv.Addr), zap.Bool("rabbitmq", broker != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("servidor caiu", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("encerrando")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown com erro", zap.Error(err))
	}
}

func repositories(seed bool) (*database.LeadRepository, *database.ClientRepository, *database.FollowUpRepository, *database.SettingsRepository, entity.Catalog) {
	catalog := database.SeedCatalog()
	if !seed {
		return database.NewLeadRepository(nil),
			database.NewClientRepository(nil),
			database.NewFollowUpRepository(nil, nil),
			database.NewSettingsRepository(entity.Goal{}, entity.CompanySettings{}, entity.WhatsAppConfig{Status: entity.WhatsAppDisconnected}),
			catalog
	}
	return database.NewLeadRepository(database.SeedLeads()),
		database.NewClientRepository(database.SeedClients()),
		database.NewFollowUpRepository(database.SeedPreSaleFollowUps(), database.SeedPostSaleFollowUps()),
		database.NewSettingsRepository(database.SeedGoal(), database.SeedCompany(), database.SeedWhatsApp()),
		catalog
}
