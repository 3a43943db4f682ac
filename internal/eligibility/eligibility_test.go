package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orderpdf/order-document-service/internal/domain"
)

func TestShouldProcess(t *testing.T) {
	fresh := &domain.OrderReference{PK: "ORDER#1", SK: "DETAILS", OrderID: "ORD-1"}
	processed := &domain.OrderReference{PK: "ORDER#2", SK: "DETAILS", OrderID: "ORD-2", PriorDocumentKey: "pdfs/ORD-2.pdf"}

	tests := []struct {
		name     string
		ref      *domain.OrderReference
		policy   Policy
		expected bool
	}{
		{"always accepts fresh", fresh, PolicyAlways, true},
		{"always accepts processed", processed, PolicyAlways, true},
		{"first time only accepts fresh", fresh, PolicyFirstTimeOnly, true},
		{"first time only rejects processed", processed, PolicyFirstTimeOnly, false},
		{"url changed accepts fresh", fresh, PolicyURLChanged, true},
		{"url changed accepts processed", processed, PolicyURLChanged, true},
		{"unknown policy defaults to always", processed, Policy("SOMETIMES"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldProcess(tt.ref, tt.policy))
		})
	}
}
