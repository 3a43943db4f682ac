package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// taxRate is the fixed invoice tax rate (8%).
var taxRate = decimal.RequireFromString("0.08")

var oneHundred = decimal.NewFromInt(100)

// InvoiceRenderer produces invoice HTML from a fixed template by substituting
// computed and raw order fields. The template is loaded once at construction;
// a missing template asset is a startup failure, not a per-order condition.
type InvoiceRenderer struct {
	template string
}

// NewInvoiceRenderer loads the invoice template from the given path
func NewInvoiceRenderer(templatePath string) (*InvoiceRenderer, error) {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice template %s: %w", templatePath, err)
	}
	return &InvoiceRenderer{template: string(template)}, nil
}

// Render substitutes the order into the template and returns the finished HTML.
// Line, tax and total amounts are computed in decimal arithmetic; amounts are
// rounded half-up to two places for display.
func (r *InvoiceRenderer) Render(order *domain.Order) string {
	subtotal := decimal.Zero
	for _, line := range order.Lines {
		subtotal = subtotal.Add(lineTotal(line))
	}
	taxAmount := subtotal.Mul(taxRate)
	grandTotal := subtotal.Add(taxAmount)

	orderDate := order.CreatedAt.UTC().Format("Jan 02, 2006")

	replacer := strings.NewReplacer(
		"{{ORDER_ID}}", order.OrderID,
		"{{ORDER_DATE}}", orderDate,
		"{{ORDER_STATUS}}", defaultUpper(order.Status, "CONFIRMED"),
		"{{ORDER_PRIORITY}}", defaultUpper(order.Priority, "NORMAL"),
		"{{CUSTOMER_NAME}}", order.Customer.Name,
		"{{CUSTOMER_EMAIL}}", order.Customer.Email,
		"{{CUSTOMER_PHONE}}", phoneSection(order.Customer.Phone),
		"{{SHIPPING_ADDRESS}}", shippingAddress(order.Customer.Address),
		"{{ORDER_META}}", orderMeta(order),
		"{{ORDER_ITEMS}}", itemRows(order.Lines),
		"{{SUBTOTAL}}", formatCurrency(subtotal),
		"{{TAX_AMOUNT}}", formatCurrency(taxAmount),
		"{{GRAND_TOTAL}}", formatCurrency(grandTotal),
		"{{GENERATION_DATE}}", time.Now().Format("2006-01-02 15:04:05"),
		"{{PROCESSING_TIME}}", fmt.Sprintf("%d", order.ProcessingTime),
	)

	return replacer.Replace(r.template)
}

func lineTotal(line domain.LineItem) decimal.Decimal {
	unitPrice := decimal.NewFromInt(line.UnitPriceMinor).Div(oneHundred)
	return unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func defaultUpper(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return strings.ToUpper(value)
}

func phoneSection(phone string) string {
	if phone == "" {
		return ""
	}
	return `<div class="customer-detail">Tel: ` + phone + `</div>`
}

// shippingAddress splits a comma-delimited address into one display line per
// segment. An empty address renders a fixed placeholder instead.
func shippingAddress(address string) string {
	if address == "" {
		return `<div class="customer-detail" style="font-style: italic; color: #999;">Same as billing address</div>`
	}

	var b strings.Builder
	for _, segment := range strings.Split(address, ",") {
		b.WriteString(`<div class="customer-detail">`)
		b.WriteString(strings.TrimSpace(segment))
		b.WriteString(`</div>`)
	}
	return b.String()
}

func orderMeta(order *domain.Order) string {
	var b strings.Builder
	b.WriteString(`<div class="order-meta">`)

	if order.Source != "" {
		b.WriteString("<span>Source: " + strings.ToUpper(order.Source) + "</span>")
	}
	if order.Region != "" {
		b.WriteString("<span>Region: " + strings.ToUpper(order.Region) + "</span>")
	}
	if order.Notes != "" {
		b.WriteString("<span>Notes: " + order.Notes + "</span>")
	}

	b.WriteString(`</div>`)
	return b.String()
}

func itemRows(lines []domain.LineItem) string {
	var b strings.Builder
	for _, line := range lines {
		unitPrice := decimal.NewFromInt(line.UnitPriceMinor).Div(oneHundred)

		b.WriteString(fmt.Sprintf(`<tr>
    <td><span class="item-sku">%s</span></td>
    <td>%d</td>
    <td>%s</td>
    <td>%s</td>
</tr>
`, line.SKU, line.Quantity, formatCurrency(unitPrice), formatCurrency(lineTotal(line))))
	}
	return b.String()
}

// formatCurrency renders a US-locale currency amount: dollar sign, two decimal
// places, thousands separators. Rounding is half-up.
func formatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().Round(2).StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	integer, fraction := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	formatted := "$" + b.String() + "." + fraction
	if negative {
		return "-" + formatted
	}
	return formatted
}
