package repository

import (
	"context"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// DocumentRepository defines the interface for the document audit trail
type DocumentRepository interface {
	// RecordDocument stores one generated-document record
	RecordDocument(ctx context.Context, record *domain.DocumentRecord) error

	// ListDocumentsByOrder retrieves the audit records for one order, newest first
	ListDocumentsByOrder(ctx context.Context, orderID string) ([]domain.DocumentRecord, error)
}
