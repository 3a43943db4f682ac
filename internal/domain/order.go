package domain

import "time"

// OrderReference identifies a single order record to process. It is built by the
// envelope parser from one change record and is immutable after creation.
type OrderReference struct {
	PK               string `json:"pk"`
	SK               string `json:"sk"`
	OrderID          string `json:"orderId"`
	PriorDocumentKey string `json:"oldPdfKey,omitempty"`
}

// Customer holds the customer details stored on an order record
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"` // free text, comma-delimited lines
}

// LineItem is a single order line. Prices are kept in integer minor units (cents)
// to avoid floating-point drift.
type LineItem struct {
	SKU            string `json:"sku"`
	Quantity       int    `json:"qty"`
	UnitPriceMinor int64  `json:"priceMinor"`
}

// Order is the aggregate resolved from the order store (or substituted as a
// fallback placeholder when the store is unavailable). It is constructed once
// per resolution attempt and never mutated.
type Order struct {
	OrderID   string     `json:"orderId"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"createdAt"`
	Customer  Customer   `json:"customer"`
	Lines     []LineItem `json:"lines"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	Source    string     `json:"source"`
	Priority  string     `json:"priority"`
	Region    string     `json:"region"`

	// Informational fields; the renderer computes its own totals.
	TotalAmount    float64 `json:"totalAmount"`
	OrderDate      string  `json:"orderDate,omitempty"`
	ProcessingTime int     `json:"processingTime"`
}

// DocumentRecord is one row of the document audit trail: a finished invoice
// document that was uploaded for an order.
type DocumentRecord struct {
	ID          string    `json:"id,omitempty"`
	OrderID     string    `json:"orderId"`
	PDFKey      string    `json:"pdfKey"`
	ExecutionID string    `json:"executionId"`
	GeneratedAt time.Time `json:"generatedAt"`
}
