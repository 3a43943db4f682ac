package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/orderpdf/order-document-service/internal/domain"
	"github.com/orderpdf/order-document-service/internal/render"
	"github.com/orderpdf/order-document-service/internal/repository"
	"github.com/orderpdf/order-document-service/internal/storage"
)

// DocumentGenerationError represents an error that occurred during document generation
type DocumentGenerationError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *DocumentGenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *DocumentGenerationError) Unwrap() error {
	return e.Err
}

// orderResolver resolves a reference into a full order record
type orderResolver interface {
	Resolve(ctx context.Context, ref domain.OrderReference) (*domain.Order, error)
}

// htmlConverter turns rendered invoice HTML into finished document bytes
type htmlConverter interface {
	ConvertHTML(ctx context.Context, html string) ([]byte, error)
}

// documentStore persists finished documents under an opaque key
type documentStore interface {
	PutObject(key string, data []byte, contentType string) error
}

// DocumentService defines the interface for the single-order document path
type DocumentService interface {
	// GenerateDocument resolves the order, renders and converts the invoice,
	// uploads the result and returns the storage key. Failures propagate to
	// the orchestrator; retries are its responsibility.
	GenerateDocument(ctx context.Context, executionID string, ref domain.OrderReference) (string, error)
}

// DocumentServiceImpl implements the DocumentService interface
type DocumentServiceImpl struct {
	resolver  orderResolver
	renderer  *render.InvoiceRenderer
	converter htmlConverter
	store     documentStore
	auditRepo repository.DocumentRepository
}

// NewDocumentService creates a new DocumentService. The audit repository is
// optional; pass nil to disable the audit trail.
func NewDocumentService(resolver orderResolver, renderer *render.InvoiceRenderer, converter htmlConverter, store documentStore, auditRepo repository.DocumentRepository) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		resolver:  resolver,
		renderer:  renderer,
		converter: converter,
		store:     store,
		auditRepo: auditRepo,
	}
}

// GenerateDocument runs the single-order path for one accepted reference
func (s *DocumentServiceImpl) GenerateDocument(ctx context.Context, executionID string, ref domain.OrderReference) (string, error) {
	log.Printf("Generating invoice document for orderId: %s", ref.OrderID)

	if executionID == "" {
		executionID = uuid.NewString()
	}

	order, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return "", &DocumentGenerationError{Op: "resolve_order", Err: err}
	}

	html := s.renderer.Render(order)

	documentBytes, err := s.converter.ConvertHTML(ctx, html)
	if err != nil {
		return "", &DocumentGenerationError{Op: "convert_html", Err: err}
	}

	key := storage.TemporaryDocumentKey(executionID, ref.OrderID)
	if err := s.store.PutObject(key, documentBytes, "application/pdf"); err != nil {
		return "", &DocumentGenerationError{Op: "store_document", Err: err}
	}

	// Record the generated document if an audit repository is available.
	if s.auditRepo != nil {
		record := &domain.DocumentRecord{
			OrderID:     ref.OrderID,
			PDFKey:      key,
			ExecutionID: executionID,
			GeneratedAt: time.Now(),
		}
		if err := s.auditRepo.RecordDocument(ctx, record); err != nil {
			// Log the error but continue; the document itself was stored.
			log.Printf("Error recording document audit entry: %v", err)
		}
	}

	log.Printf("Successfully generated invoice document for orderId: %s, temporaryKey: %s", ref.OrderID, key)
	return key, nil
}
