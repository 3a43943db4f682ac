package envelope

import (
	"encoding/json"
	"log"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// attributeValue mirrors the order store's attribute encoding, where every field
// is wrapped in a type tag ({"S": ...}, {"N": ...}, {"M": {...}}, {"L": [...]}).
type attributeValue struct {
	S string                    `json:"S"`
	N string                    `json:"N"`
	M map[string]attributeValue `json:"M"`
	L []attributeValue          `json:"L"`
}

// changeRecord is the raw change-notification envelope delivered for one record
// mutation. Only the new image is relevant here.
type changeRecord struct {
	DynamoDB struct {
		NewImage map[string]attributeValue `json:"NewImage"`
	} `json:"dynamodb"`
}

// Parse extracts an OrderReference from a raw change-event envelope. It never
// returns an error: any malformed or incomplete envelope yields nil so a batch
// can keep going past one bad entry. Failures are logged.
func Parse(raw string) *domain.OrderReference {
	var record changeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Printf("Failed to parse change record envelope: %v", err)
		return nil
	}

	newImage := record.DynamoDB.NewImage
	if len(newImage) == 0 {
		log.Println("No NewImage found in change record")
		return nil
	}

	pk := stringValue(newImage, "pk")
	sk := stringValue(newImage, "sk")
	orderID := stringValue(newImage, "orderId")
	priorDocumentKey := nestedStringValue(newImage, "pdf", "s3Key")

	if pk == "" || sk == "" || orderID == "" {
		log.Printf("Missing required fields in change record: pk=%q, sk=%q, orderId=%q", pk, sk, orderID)
		return nil
	}

	return &domain.OrderReference{
		PK:               pk,
		SK:               sk,
		OrderID:          orderID,
		PriorDocumentKey: priorDocumentKey,
	}
}

func stringValue(image map[string]attributeValue, field string) string {
	return image[field].S
}

// nestedStringValue descends one map level: {parent: {M: {child: {S: value}}}}.
// Absence at any level yields "".
func nestedStringValue(image map[string]attributeValue, parent, child string) string {
	parentValue, ok := image[parent]
	if !ok || parentValue.M == nil {
		return ""
	}
	return parentValue.M[child].S
}
