package main

import (
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/orderpdf/order-document-service/internal/config"
	"github.com/orderpdf/order-document-service/internal/converter"
	"github.com/orderpdf/order-document-service/internal/database"
	"github.com/orderpdf/order-document-service/internal/eligibility"
	"github.com/orderpdf/order-document-service/internal/handler"
	"github.com/orderpdf/order-document-service/internal/render"
	"github.com/orderpdf/order-document-service/internal/repository"
	"github.com/orderpdf/order-document-service/internal/server"
	"github.com/orderpdf/order-document-service/internal/service"
	"github.com/orderpdf/order-document-service/internal/storage"
)

func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the invoice template; a missing template is a fatal startup condition
	log.Println("Loading invoice template...")
	renderer, err := render.NewInvoiceRenderer(cfg.TemplatePath)
	if err != nil {
		log.Fatalf("Failed to load invoice template: %v", err)
	}

	// Initialize AWS clients
	awsConfig := &aws.Config{Region: aws.String(cfg.AWSRegion)}
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
	}
	sess := session.Must(session.NewSession(awsConfig))

	resolver := service.NewOrderResolver(dynamodb.New(sess), cfg.OrderTableName)

	documentStore, err := storage.NewDocumentStore(&storage.Config{
		Bucket:   cfg.DocumentBucket,
		Region:   cfg.AWSRegion,
		Endpoint: cfg.AWSEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	// Initialize the HTML-to-PDF converter client
	converterClient := converter.NewClient(&converter.Config{
		BaseURL: cfg.ConverterURL,
		Timeout: cfg.ConverterTimeout,
	})

	// Initialize the optional document audit repository
	var auditRepo repository.DocumentRepository
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to audit database...")
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to audit database: %v", err)
		}
		defer db.Close()
		auditRepo = repository.NewPostgresDocumentRepository(db.GetPool())
	}

	// Create services
	log.Println("Creating pipeline services...")
	preprocessService := service.NewPreprocessService(eligibility.Policy(cfg.ReprocessPolicy), cfg.MaxWorkers)
	documentService := service.NewDocumentService(resolver, renderer, converterClient, documentStore, auditRepo)

	// Create handlers
	preprocessHandler := handler.NewPreprocessHandler(preprocessService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// Create and start server (blocking call)
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, preprocessHandler, documentHandler)

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}
