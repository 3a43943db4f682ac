package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderpdf/order-document-service/internal/eligibility"
)

func envelopeFor(orderID string) string {
	return fmt.Sprintf(`{
		"dynamodb": {
			"NewImage": {
				"pk": {"S": "ORDER#%s"},
				"sk": {"S": "DETAILS"},
				"orderId": {"S": "%s"}
			}
		}
	}`, orderID, orderID)
}

func processedEnvelopeFor(orderID string) string {
	return fmt.Sprintf(`{
		"dynamodb": {
			"NewImage": {
				"pk": {"S": "ORDER#%s"},
				"sk": {"S": "DETAILS"},
				"orderId": {"S": "%s"},
				"pdf": {"M": {"s3Key": {"S": "pdfs/%s.pdf"}}}
			}
		}
	}`, orderID, orderID, orderID)
}

func TestPreprocessSkipsBadEnvelopes(t *testing.T) {
	svc := NewPreprocessService(eligibility.PolicyAlways, 3)

	result := svc.Preprocess(context.Background(), []string{
		envelopeFor("ORD-1"),
		"this is not json",
		envelopeFor("ORD-2"),
		`{"dynamodb": {}}`,
		envelopeFor("ORD-3"),
	})

	require.NotNil(t, result)
	require.Len(t, result.Items, 3)
	assert.False(t, result.Timestamp.IsZero())

	// Input order is preserved
	assert.Equal(t, "ORD-1", result.Items[0].OrderID)
	assert.Equal(t, "ORD-2", result.Items[1].OrderID)
	assert.Equal(t, "ORD-3", result.Items[2].OrderID)
}

func TestPreprocessFirstTimeOnlyFiltersProcessedOrders(t *testing.T) {
	svc := NewPreprocessService(eligibility.PolicyFirstTimeOnly, 2)

	result := svc.Preprocess(context.Background(), []string{
		processedEnvelopeFor("ORD-1"),
		envelopeFor("ORD-2"),
		processedEnvelopeFor("ORD-3"),
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "ORD-2", result.Items[0].OrderID)
}

func TestPreprocessEmptyBatch(t *testing.T) {
	svc := NewPreprocessService(eligibility.PolicyAlways, 0)

	result := svc.Preprocess(context.Background(), nil)

	require.NotNil(t, result)
	assert.Empty(t, result.Items)
	assert.False(t, result.Timestamp.IsZero())
}

func TestPreprocessLargeBatchPreservesOrder(t *testing.T) {
	svc := NewPreprocessService(eligibility.PolicyAlways, 4)

	envelopes := make([]string, 50)
	for i := range envelopes {
		envelopes[i] = envelopeFor(fmt.Sprintf("ORD-%03d", i))
	}

	result := svc.Preprocess(context.Background(), envelopes)

	require.Len(t, result.Items, 50)
	for i, item := range result.Items {
		assert.Equal(t, fmt.Sprintf("ORD-%03d", i), item.OrderID)
	}
}
