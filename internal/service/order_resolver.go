package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/shopspring/decimal"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// ResolutionError represents an error that occurred while mapping a stored
// order record. Lookup failures never produce one; only corruption found after
// a record was located escalates.
type ResolutionError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// orderStore is the point-lookup surface of the order record store
type orderStore interface {
	GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error)
}

// OrderResolver fetches full order records from the order store. When the store
// is unavailable or the record is missing it substitutes a fixed placeholder
// order so rendering never blocks on store availability.
type OrderResolver struct {
	store     orderStore
	tableName string
}

// NewOrderResolver creates a new OrderResolver against the given table
func NewOrderResolver(store orderStore, tableName string) *OrderResolver {
	return &OrderResolver{
		store:     store,
		tableName: tableName,
	}
}

// Resolve looks up the record keyed by (pk, sk) and maps it into an Order.
// Not-found and lookup errors degrade to the placeholder order; an error is
// returned only when a located record cannot be mapped.
func (r *OrderResolver) Resolve(ctx context.Context, ref domain.OrderReference) (*domain.Order, error) {
	log.Printf("Fetching order details for orderId: %s", ref.OrderID)

	key := map[string]*dynamodb.AttributeValue{
		"pk": {S: aws.String(ref.PK)},
		"sk": {S: aws.String(ref.SK)},
	}

	output, err := r.store.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		log.Printf("Error fetching order details for orderId %s: %v", ref.OrderID, err)
		return sampleOrder(ref.OrderID), nil
	}

	if len(output.Item) == 0 {
		log.Printf("Order not found in store for orderId: %s", ref.OrderID)
		return sampleOrder(ref.OrderID), nil
	}

	order, err := mapItemToOrder(output.Item)
	if err != nil {
		return nil, &ResolutionError{Op: "map_order", Err: err}
	}
	return order, nil
}

func mapItemToOrder(item map[string]*dynamodb.AttributeValue) (*domain.Order, error) {
	customer := domain.Customer{
		Name:    getStringValue(item, "customerName"),
		Email:   getStringValue(item, "customerEmail"),
		Phone:   getStringValue(item, "customerPhone"),
		Address: getStringValue(item, "shippingAddress"),
	}

	lines, err := extractOrderLines(item)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		OrderID:        getStringValue(item, "orderId"),
		Currency:       "USD", // Default currency
		CreatedAt:      parseTimestamp(getStringValue(item, "createdAt")),
		Customer:       customer,
		Lines:          lines,
		Status:         getStringValue(item, "status"),
		Notes:          getStringValue(item, "notes"),
		Source:         getStringValue(item, "source"),
		Priority:       getStringValue(item, "priority"),
		Region:         getStringValue(item, "region"),
		TotalAmount:    getFloatValue(item, "totalAmount"),
		OrderDate:      getStringValue(item, "orderDate"),
		ProcessingTime: getIntValue(item, "processingTime"),
	}, nil
}

// extractOrderLines reads the stored list of line sub-records. An absent or
// non-list items attribute yields an empty line list; a list entry that is not
// a sub-record means the located record is corrupt and escalates.
func extractOrderLines(item map[string]*dynamodb.AttributeValue) ([]domain.LineItem, error) {
	itemsAttr, ok := item["items"]
	if !ok || itemsAttr == nil || itemsAttr.L == nil {
		log.Println("No items found in order")
		return []domain.LineItem{}, nil
	}

	lines := make([]domain.LineItem, 0, len(itemsAttr.L))
	for _, value := range itemsAttr.L {
		line, err := mapValueToOrderLine(value)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func mapValueToOrderLine(value *dynamodb.AttributeValue) (domain.LineItem, error) {
	if value == nil || value.M == nil {
		return domain.LineItem{}, fmt.Errorf("invalid item structure in order lines")
	}

	itemMap := value.M
	sku := getStringValue(itemMap, "itemId")
	quantity := getIntValue(itemMap, "quantity")
	price := getDecimalValue(itemMap, "price")

	// Convert price from major units (dollars) to minor units (cents),
	// rounding half-up.
	priceMinor := price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	return domain.LineItem{
		SKU:            sku,
		Quantity:       quantity,
		UnitPriceMinor: priceMinor,
	}, nil
}

func getStringValue(item map[string]*dynamodb.AttributeValue, key string) string {
	if value, ok := item[key]; ok && value != nil && value.S != nil {
		return *value.S
	}
	return ""
}

func getFloatValue(item map[string]*dynamodb.AttributeValue, key string) float64 {
	if value, ok := item[key]; ok && value != nil && value.N != nil {
		parsed, err := strconv.ParseFloat(*value.N, 64)
		if err != nil {
			log.Printf("Invalid number format for key %s: %s", key, *value.N)
			return 0
		}
		return parsed
	}
	return 0
}

func getIntValue(item map[string]*dynamodb.AttributeValue, key string) int {
	if value, ok := item[key]; ok && value != nil && value.N != nil {
		parsed, err := strconv.Atoi(*value.N)
		if err != nil {
			log.Printf("Invalid integer format for key %s: %s", key, *value.N)
			return 0
		}
		return parsed
	}
	return 0
}

func getDecimalValue(item map[string]*dynamodb.AttributeValue, key string) decimal.Decimal {
	if value, ok := item[key]; ok && value != nil && value.N != nil {
		parsed, err := decimal.NewFromString(*value.N)
		if err != nil {
			log.Printf("Invalid decimal format for key %s: %s", key, *value.N)
			return decimal.Zero
		}
		return parsed
	}
	return decimal.Zero
}

func parseTimestamp(timestamp string) time.Time {
	if timestamp == "" {
		return time.Now()
	}
	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		log.Printf("Invalid timestamp format: %s", timestamp)
		return time.Now()
	}
	return parsed
}

// sampleOrder is the fallback placeholder substituted when the order store is
// unavailable or the record is missing. A visibly synthetic invoice is
// preferred over a hard failure.
func sampleOrder(orderID string) *domain.Order {
	log.Printf("Creating sample order for orderId: %s", orderID)

	return &domain.Order{
		OrderID:   orderID,
		Currency:  "USD",
		CreatedAt: time.Now(),
		Customer: domain.Customer{
			Name:    "Sample Customer",
			Email:   "customer@example.com",
			Phone:   "+1-555-123-4567",
			Address: "123 Main Street, Springfield, CA 90210",
		},
		Lines: []domain.LineItem{
			{SKU: "ITEM-001", Quantity: 2, UnitPriceMinor: 2500},
			{SKU: "ITEM-002", Quantity: 1, UnitPriceMinor: 1500},
		},
		Status:         "CONFIRMED",
		Notes:          "Sample order for testing",
		Source:         "website",
		Priority:       "normal",
		Region:         "us-east",
		TotalAmount:    40.0,
		OrderDate:      time.Now().Format(time.RFC3339),
		ProcessingTime: 1500,
	}
}
