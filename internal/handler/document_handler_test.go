package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderpdf/order-document-service/internal/domain"
	"github.com/orderpdf/order-document-service/internal/model"
)

// stubDocumentService returns a canned key or error
type stubDocumentService struct {
	key string
	err error

	lastExecutionID string
	lastRef         domain.OrderReference
}

func (s *stubDocumentService) GenerateDocument(ctx context.Context, executionID string, ref domain.OrderReference) (string, error) {
	s.lastExecutionID = executionID
	s.lastRef = ref
	return s.key, s.err
}

func newDocumentRouter(stub *stubDocumentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/documents", NewDocumentHandler(stub).GenerateDocument)
	return router
}

func postDocument(t *testing.T, router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGenerateDocumentEndpoint(t *testing.T) {
	stub := &stubDocumentService{key: "temp/exec-1-ORD-42.pdf"}
	router := newDocumentRouter(stub)

	recorder := postDocument(t, router, model.GenerateDocumentRequest{
		ExecutionID: "exec-1",
		Item: model.OrderReferenceDTO{
			PK:      "ORDER#42",
			SK:      "DETAILS",
			OrderID: "ORD-42",
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.GenerateDocumentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "temp/exec-1-ORD-42.pdf", response.PDFKey)

	assert.Equal(t, "exec-1", stub.lastExecutionID)
	assert.Equal(t, "ORD-42", stub.lastRef.OrderID)
}

func TestGenerateDocumentEndpointValidatesReference(t *testing.T) {
	router := newDocumentRouter(&stubDocumentService{key: "unused"})

	recorder := postDocument(t, router, model.GenerateDocumentRequest{
		ExecutionID: "exec-1",
		Item:        model.OrderReferenceDTO{PK: "ORDER#42"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGenerateDocumentEndpointPropagatesFailure(t *testing.T) {
	stub := &stubDocumentService{err: errors.New("converter unavailable")}
	router := newDocumentRouter(stub)

	recorder := postDocument(t, router, model.GenerateDocumentRequest{
		Item: model.OrderReferenceDTO{PK: "ORDER#42", SK: "DETAILS", OrderID: "ORD-42"},
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
