package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnvelope() string {
	return `{
		"eventName": "INSERT",
		"dynamodb": {
			"NewImage": {
				"pk": {"S": "ORDER#123"},
				"sk": {"S": "DETAILS"},
				"orderId": {"S": "ORD-123"},
				"status": {"S": "CONFIRMED"}
			}
		}
	}`
}

func TestParseValidEnvelope(t *testing.T) {
	ref := Parse(validEnvelope())

	require.NotNil(t, ref)
	assert.Equal(t, "ORDER#123", ref.PK)
	assert.Equal(t, "DETAILS", ref.SK)
	assert.Equal(t, "ORD-123", ref.OrderID)
	assert.Empty(t, ref.PriorDocumentKey)
}

func TestParsePriorDocumentKey(t *testing.T) {
	raw := `{
		"dynamodb": {
			"NewImage": {
				"pk": {"S": "ORDER#456"},
				"sk": {"S": "DETAILS"},
				"orderId": {"S": "ORD-456"},
				"pdf": {"M": {"s3Key": {"S": "pdfs/ORD-456.pdf"}}}
			}
		}
	}`

	ref := Parse(raw)

	require.NotNil(t, ref)
	assert.Equal(t, "pdfs/ORD-456.pdf", ref.PriorDocumentKey)
}

func TestParsePartialPriorDocumentNesting(t *testing.T) {
	// pdf attribute present but without the nested map does not fail the parse
	raw := `{
		"dynamodb": {
			"NewImage": {
				"pk": {"S": "ORDER#789"},
				"sk": {"S": "DETAILS"},
				"orderId": {"S": "ORD-789"},
				"pdf": {"S": "not-a-map"}
			}
		}
	}`

	ref := Parse(raw)

	require.NotNil(t, ref)
	assert.Empty(t, ref.PriorDocumentKey)
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `not json at all`},
		{"missing dynamodb section", `{"eventName": "INSERT"}`},
		{"missing new image", `{"dynamodb": {"Keys": {"pk": {"S": "ORDER#1"}}}}`},
		{
			"missing pk",
			`{"dynamodb": {"NewImage": {"sk": {"S": "DETAILS"}, "orderId": {"S": "ORD-1"}}}}`,
		},
		{
			"missing sort key",
			`{"dynamodb": {"NewImage": {"pk": {"S": "ORDER#1"}, "orderId": {"S": "ORD-1"}}}}`,
		},
		{
			"missing order id",
			`{"dynamodb": {"NewImage": {"pk": {"S": "ORDER#1"}, "sk": {"S": "DETAILS"}}}}`,
		},
		{
			"empty required field",
			`{"dynamodb": {"NewImage": {"pk": {"S": ""}, "sk": {"S": "DETAILS"}, "orderId": {"S": "ORD-1"}}}}`,
		},
		{
			"wrongly typed required field",
			`{"dynamodb": {"NewImage": {"pk": {"N": "42"}, "sk": {"S": "DETAILS"}, "orderId": {"S": "ORD-1"}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Parse(tt.raw))
		})
	}
}
