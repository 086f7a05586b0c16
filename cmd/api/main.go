package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/aksoytekstil/leadfinder/internal/config"
	"github.com/aksoytekstil/leadfinder/internal/infra/database"
	"github.com/aksoytekstil/leadfinder/internal/infra/emailtools"
	"github.com/aksoytekstil/leadfinder/internal/infra/export"
	"github.com/aksoytekstil/leadfinder/internal/infra/http/handlers"
	"github.com/aksoytekstil/leadfinder/internal/infra/http/middleware"
	"github.com/aksoytekstil/leadfinder/internal/infra/mail"
	"github.com/aksoytekstil/leadfinder/internal/infra/queue"
	"github.com/aksoytekstil/leadfinder/internal/infra/scraper"
	"github.com/aksoytekstil/leadfinder/internal/infra/templates"
	"github.com/aksoytekstil/leadfinder/internal/infra/worker"
	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewConnection(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, cfg.DBDriver, cfg.EnforceUniqueLeads); err != nil {
		log.Fatal(err)
	}

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	logRepo := database.NewEmailLogRepository(db)
	historyRepo := database.NewSearchHistoryRepository(db)

	// Scrapers and email tooling
	fetcher := scraper.NewFetcher(cfg.Scraping)
	sources := []usecase.Source{
		scraper.NewWebSearch(fetcher),
		scraper.NewEuropages(fetcher),
		scraper.NewKompass(fetcher),
		scraper.NewTurkishExporter(fetcher),
	}

	finder := emailtools.NewFinder(fetcher)
	validator := emailtools.NewValidator(emailtools.NewDNSResolver(5 * time.Second))
	enricher := emailtools.NewEnricher(finder, validator)

	// Templates and mail
	manager := templates.NewManager(cfg.Targeting.Company.TemplateVariables())
	sender := mail.NewSender(cfg.SMTP, logRepo, manager)

	exporter := export.NewExporter(cfg.ExportsDir)

	// RabbitMQ is optional: without AMQP_URL the pipeline runs without events.
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.QueueProducerInterface
	if cfg.AMQPURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// UseCases
	searchUC := usecase.NewSearchLeadsUseCase(leadRepo, historyRepo, sources, enricher, producer)
	bulkUC := usecase.NewBulkSearchUseCase(searchUC, cfg.Targeting)
	enrichUC := usecase.NewEnrichLeadsUseCase(leadRepo, enricher)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo, leadRepo, logRepo, sender, manager, producer, cfg.SMTP)
	campaignUC.Progress = func(done, total int, result mail.SendResult) {
		status := "sent"
		if !result.Success {
			status = "failed"
		}
		middleware.RecordEmail(status)
		log.Printf("campaign: progress %d/%d", done, total)
	}
	exportUC := usecase.NewExportLeadsUseCase(leadRepo, exporter)
	statsUC := usecase.NewStatsUseCase(leadRepo, sender)

	// Intake worker consumes externally submitted leads from the queue.
	if rabbitMQ != nil {
		intake := queue.NewWorker(rabbitMQ.Ch, searchUC)
		go intake.Start(queue.QueueName)
	}

	if cfg.EnrichInterval > 0 {
		enrichWorker := worker.NewEnrichmentWorker(enrichUC, cfg.EnrichInterval, 50)
		go enrichWorker.Start(context.Background())
	}

	// Handlers
	searchHandler := handlers.NewSearchHandler(searchUC, bulkUC)
	leadHandler := handlers.NewLeadHandler(leadRepo, enrichUC, exportUC)
	campaignHandler := handlers.NewCampaignHandler(campaignUC)
	statsHandler := handlers.NewStatsHandler(statsUC)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn, cfg.SMTP)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/search", searchHandler.HandleSearch)
	r.Post("/search/bulk", searchHandler.HandleBulkSearch)
	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads/enrich", leadHandler.HandleEnrich)
	r.Post("/leads/export", leadHandler.HandleExport)
	r.Post("/campaigns/send", campaignHandler.HandleSend)
	r.Get("/campaigns/{id}/stats", campaignHandler.HandleStats)
	r.Get("/stats", statsHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.HTTPPort
	log.Printf("lead finder listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
