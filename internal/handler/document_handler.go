package handler

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/orderpdf/order-document-service/internal/model"
	"github.com/orderpdf/order-document-service/internal/service"
)

// DocumentHandler handles HTTP requests for single-order document generation
type DocumentHandler struct {
	documents service.DocumentService
}

// NewDocumentHandler creates a new document generation handler
func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// GenerateDocument handles a request to generate the invoice document for one order
// @Summary Generate an invoice document
// @Description Resolve an accepted order reference, render the invoice and upload the finished document
// @Tags documents
// @Accept json
// @Produce json
// @Param request body model.GenerateDocumentRequest true "Order reference and execution ID"
// @Success 200 {object} model.GenerateDocumentResponse "Storage key of the uploaded document"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Generation failed"
// @Router /v1/documents [post]
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	var request model.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, ErrInvalidInput+": "+err.Error())
		return
	}

	if request.Item.PK == "" || request.Item.SK == "" || request.Item.OrderID == "" {
		respondBadRequest(c, "Order reference requires pk, sk and orderId")
		return
	}

	ref := request.Item.ToDomain()

	log.Printf("Generating document for orderId: %s", ref.OrderID)
	key, err := h.documents.GenerateDocument(c.Request.Context(), request.ExecutionID, ref)
	if err != nil {
		respondInternalServerError(c, fmt.Sprintf("Document generation failed: %v", err))
		return
	}

	respondOK(c, model.GenerateDocumentResponse{PDFKey: key})
}
