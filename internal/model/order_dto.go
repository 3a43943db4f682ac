package model

import (
	"time"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// OrderReferenceDTO represents an order reference for data transfer
type OrderReferenceDTO struct {
	PK               string `json:"pk"`
	SK               string `json:"sk"`
	OrderID          string `json:"orderId"`
	PriorDocumentKey string `json:"oldPdfKey,omitempty"`
}

// EnvelopeRecord is one raw change-event envelope in a preprocess batch
type EnvelopeRecord struct {
	Body string `json:"body"`
}

// PreprocessRequest represents an incoming preprocess batch request
type PreprocessRequest struct {
	Records []EnvelopeRecord `json:"records"`
}

// PreprocessResponse represents the response to a preprocess batch request
type PreprocessResponse struct {
	Items     []OrderReferenceDTO `json:"items"`
	Timestamp string              `json:"ts"`
}

// GenerateDocumentRequest represents a single-order document generation request
type GenerateDocumentRequest struct {
	ExecutionID string            `json:"executionId"`
	Item        OrderReferenceDTO `json:"item"`
}

// GenerateDocumentResponse represents the response to a document generation request
type GenerateDocumentResponse struct {
	PDFKey string `json:"pdfKey"`
}

// ErrorDetail provides additional context for an error response
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// FromDomain converts a domain OrderReference to an OrderReferenceDTO
func (dto *OrderReferenceDTO) FromDomain(ref *domain.OrderReference) {
	dto.PK = ref.PK
	dto.SK = ref.SK
	dto.OrderID = ref.OrderID
	dto.PriorDocumentKey = ref.PriorDocumentKey
}

// ToDomain converts an OrderReferenceDTO to a domain OrderReference
func (dto *OrderReferenceDTO) ToDomain() domain.OrderReference {
	return domain.OrderReference{
		PK:               dto.PK,
		SK:               dto.SK,
		OrderID:          dto.OrderID,
		PriorDocumentKey: dto.PriorDocumentKey,
	}
}

// NewPreprocessResponse builds the response payload from accepted references
func NewPreprocessResponse(items []domain.OrderReference, ts time.Time) *PreprocessResponse {
	dtos := make([]OrderReferenceDTO, len(items))
	for i := range items {
		dtos[i].FromDomain(&items[i])
	}
	return &PreprocessResponse{
		Items:     dtos,
		Timestamp: ts.Format(time.RFC3339),
	}
}
