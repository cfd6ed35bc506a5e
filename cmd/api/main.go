package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	contactRepo := database.NewContactRepository(db)
	dealRepo := database.NewDealRepository(db)
	callLogRepo := database.NewCallLogRepository(db)
	taskRepo := database.NewTaskRepository(db)
	noteRepo := database.NewNoteRepository(db)

	// 2. Gateways and adapters
	gateway := twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.APIKey,
		cfg.Twilio.APISecret,
		cfg.Twilio.BaseURL,
		cfg.Server.BaseURL,
	)

	var mailSender *mail.EmailSender
	if cfg.Mail.Host != "" {
		mailSender = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}

	// 3. Call-event queue (optional; the call flow works without it)
	var rabbitMQ *queue.RabbitMQ
	var producer usecase.CallEventProducerInterface
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, gateway, callLogRepo)
		go worker.Start(queue.QueueName)
	}

	// 4. Use cases
	initiateCallUC := usecase.NewInitiateCallUseCase(gateway, callLogRepo, producer)

	var emailService usecase.EmailService
	if mailSender != nil {
		emailService = mailSender
	}
	createContactUC := usecase.NewCreateContactUseCase(contactRepo, emailService)

	// 5. Handlers
	callingHandler := handlers.NewCallingHandler(initiateCallUC, callLogRepo)
	contactHandler := handlers.NewContactHandler(createContactUC, contactRepo)
	dealHandler := handlers.NewDealHandler(dealRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo)
	noteHandler := handlers.NewNoteHandler(noteRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(contactRepo, dealRepo, callLogRepo, taskRepo, noteRepo)

	var rabbitConn *amqp.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/calling/initiate", callingHandler.HandleInitiate)
	r.Get("/api/calls", callingHandler.HandleListCalls)

	r.Get("/api/contacts", contactHandler.HandleList)
	r.Post("/api/contacts", contactHandler.HandleCreate)
	r.Delete("/api/contacts/{id}", contactHandler.HandleDelete)

	r.Get("/api/deals", dealHandler.HandleList)
	r.Post("/api/deals", dealHandler.HandleCreate)
	r.Get("/api/deals/pipeline", dealHandler.HandlePipeline)
	r.Delete("/api/deals/{id}", dealHandler.HandleDelete)

	r.Get("/api/tasks", taskHandler.HandleList)
	r.Post("/api/tasks", taskHandler.HandleCreate)
	r.Put("/api/tasks/{id}/status", taskHandler.HandleUpdateStatus)
	r.Delete("/api/tasks/{id}", taskHandler.HandleDelete)

	r.Get("/api/notes", noteHandler.HandleList)
	r.Post("/api/notes", noteHandler.HandleCreate)
	r.Delete("/api/notes/{id}", noteHandler.HandleDelete)

	r.Get("/api/analytics/summary", analyticsHandler.HandleSummary)
	r.Get("/api/dashboard", analyticsHandler.HandleDashboard)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("🔥 ligue-crm API listening on %s", cfg.Server.Address)
	http.ListenAndServe(cfg.Server.Address, r)
}
