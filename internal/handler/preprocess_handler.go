package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/orderpdf/order-document-service/internal/model"
	"github.com/orderpdf/order-document-service/internal/service"
)

// PreprocessHandler handles HTTP requests for the envelope preprocessing stage
type PreprocessHandler struct {
	preprocessor service.PreprocessService
}

// NewPreprocessHandler creates a new preprocess handler
func NewPreprocessHandler(preprocessor service.PreprocessService) *PreprocessHandler {
	return &PreprocessHandler{preprocessor: preprocessor}
}

// Preprocess handles a batch of raw change-event envelopes
// @Summary Preprocess change records
// @Description Parse a batch of change-event envelopes and return the references eligible for document generation
// @Tags preprocess
// @Accept json
// @Produce json
// @Param request body model.PreprocessRequest true "Batch of raw envelopes"
// @Success 200 {object} model.PreprocessResponse "Accepted references and completion timestamp"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /v1/preprocess [post]
func (h *PreprocessHandler) Preprocess(c *gin.Context) {
	var request model.PreprocessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, ErrInvalidInput+": "+err.Error())
		return
	}

	envelopes := make([]string, len(request.Records))
	for i, record := range request.Records {
		envelopes[i] = record.Body
	}

	log.Printf("Preprocessing batch of %d records", len(envelopes))
	result := h.preprocessor.Preprocess(c.Request.Context(), envelopes)

	respondOK(c, model.NewPreprocessResponse(result.Items, result.Timestamp))
}
