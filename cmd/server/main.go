package main

import (
	"fmt"
	"log"
	"os"

	"github.com/veridoc/backend/config"
	httpDelivery "github.com/veridoc/backend/internal/delivery/http"
	"github.com/veridoc/backend/internal/infrastructure/cache"
	"github.com/veridoc/backend/internal/infrastructure/extract"
	"github.com/veridoc/backend/internal/infrastructure/storage"
	"github.com/veridoc/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting VeriDoc Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Upload dir: %s", cfg.Storage.UploadDir)

	development := cfg.Server.Environment == "development"

	// Initialize infrastructure dependencies
	extractionCache := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	log.Printf("Extraction cache TTL: %s", cfg.Cache.TTL)

	tesseract := extract.NewTesseractClient(cfg.Extraction.TesseractPath, cfg.Extraction.Languages, cfg.Extraction.Timeout)
	pdfExtractor := extract.NewPDFExtractor(cfg.Extraction.MaxPDFPages)

	// Enable debug mode in development environment
	if development {
		tesseract.SetDebug(true)
		pdfExtractor.SetDebug(true)
		log.Printf("Extraction debug mode enabled")
	}

	log.Printf("OCR: binary=%s languages=%s timeout=%s", cfg.Extraction.TesseractPath, cfg.Extraction.Languages, cfg.Extraction.Timeout)

	extractor := extract.NewService(tesseract, pdfExtractor, extractionCache, extract.ServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: development,
	})

	store, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize usecase layer
	verifier := usecase.NewVerificationService(usecase.VerificationServiceConfig{
		SuggestionMinRatio: cfg.Suggestion.MinRatio,
		EnableDebugLogging: development,
	})

	log.Printf("Suggestions: min_ratio=%.2f", cfg.Suggestion.MinRatio)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(verifier, extractor, store, cfg.Storage.MaxUploadSize)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
