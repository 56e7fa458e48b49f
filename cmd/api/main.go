package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/roothome/esign-bridge/internal/infra/database"
	"github.com/roothome/esign-bridge/internal/infra/http/handlers"
	"github.com/roothome/esign-bridge/internal/infra/http/middleware"
	"github.com/roothome/esign-bridge/internal/infra/integration/crm"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
	"github.com/roothome/esign-bridge/internal/infra/mail"
	"github.com/roothome/esign-bridge/internal/infra/pdf"
	"github.com/roothome/esign-bridge/internal/infra/queue"
	"github.com/roothome/esign-bridge/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	quotationRepo := database.NewQuotationRepository(db)
	userRepo := database.NewUserRepository(db)
	notificationRepo := database.NewNotificationRepository(db)

	// 2. Gateways and adapters
	gateway := esignatures.NewClient(
		getenv("ESIGN_BASE_URL", "https://esignatures.com"),
		os.Getenv("ESIGN_API_TOKEN"),
	)

	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		getenv("MAIL_FROM", "no-reply@roothome.com"),
	)

	renderer := pdf.NewQuotationRenderer(getenv("COMPANY_NAME", "Root Home"))

	// 3. Queue + CRM worker (optional: the webhook works without them)
	var producer queue.QueueProducerInterface
	var rabbitConn *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitConn, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitConn.Conn.Close()
		defer rabbitConn.Ch.Close()

		producer = queue.NewProducer(rabbitConn.Conn, rabbitConn.Ch)

		if token := os.Getenv("CRM_API_TOKEN"); token != "" {
			crmClient := crm.NewClient(os.Getenv("CRM_BASE_URL"), token)
			worker := queue.NewWorker(rabbitConn.Ch, crmClient)
			go worker.Start(queue.QueueName)
		}
	} else {
		log.Println("⚠️ RABBITMQ_URL not set, signed events will not be published")
	}

	// 4. UseCases
	listTemplatesUC := usecase.NewListTemplatesUseCase(gateway)
	sendForSignatureUC := usecase.NewSendForSignatureUseCase(
		quotationRepo, gateway, renderer, mailSender,
	)
	processSignedUC := usecase.NewProcessSignedContractUseCase(
		quotationRepo, userRepo, notificationRepo, mailSender, producer,
	)

	// 5. Handlers
	templateHandler := handlers.NewTemplateHandler(listTemplatesUC)
	signatureHandler := handlers.NewSignatureHandler(sendForSignatureUC)
	webhookHandler := handlers.NewWebhookHandler(os.Getenv("ESIGN_WEBHOOK_SECRET"), processSignedUC)
	quotationHandler := handlers.NewQuotationHandler(quotationRepo)

	var amqpConn *amqp091.Connection
	if rabbitConn != nil {
		amqpConn = rabbitConn.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn, os.Getenv("ESIGN_BASE_URL"))

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/esignature/templates", templateHandler.Handle)
	r.Post("/quotations/{quotationID}/send-for-signature", signatureHandler.Handle)
	r.Get("/quotations/{quotationID}", quotationHandler.HandleGet)
	r.Post("/webhook/esignature", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("🔥 e-signature bridge listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
