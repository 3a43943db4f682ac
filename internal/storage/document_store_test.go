package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemporaryDocumentKey(t *testing.T) {
	key := TemporaryDocumentKey("exec-abc", "ORD-42")
	assert.Equal(t, "temp/exec-abc-ORD-42.pdf", key)
}

func TestNewDocumentStoreRequiresBucket(t *testing.T) {
	_, err := NewDocumentStore(&Config{Region: "us-east-1"})
	require.Error(t, err)
}

func TestNewDocumentStoreWithEndpoint(t *testing.T) {
	store, err := NewDocumentStore(&Config{
		Bucket:   "invoices",
		Region:   "us-east-1",
		Endpoint: "http://localhost:4566",
	})
	require.NoError(t, err)
	assert.NotNil(t, store)
}
