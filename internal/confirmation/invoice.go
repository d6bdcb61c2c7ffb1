package confirmation

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/mfetisov/storefront/internal/domain"
)

// Invoice is the structured printable document for one placed order.
type Invoice struct {
	Number        string            `json:"number"`
	IssuedAt      time.Time         `json:"issuedAt"`
	OrderID       string            `json:"orderId"`
	BillTo        domain.Address    `json:"billTo"`
	Shipping      string            `json:"shipping"`
	PaymentMethod string            `json:"paymentMethod"`
	Lines         []domain.CartLine `json:"lines"`
	Pricing       domain.Breakdown  `json:"pricing"`
}

// BuildInvoice derives the invoice from a receipt snapshot. Pure: same
// snapshot and clock in, same document out.
func BuildInvoice(rec *domain.Receipt, now time.Time) *Invoice {
	return &Invoice{
		Number:        "INV-" + strings.ToUpper(rec.OrderID),
		IssuedAt:      now,
		OrderID:       rec.OrderID,
		BillTo:        rec.Address,
		Shipping:      fmt.Sprintf("%s (%s)", rec.ShippingMethod.Name, rec.ShippingMethod.Days),
		PaymentMethod: rec.PaymentMethod,
		Lines:         rec.Items,
		Pricing:       rec.Pricing,
	}
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`INVOICE {{.Number}}
Issued: {{.IssuedAt.Format "2006-01-02"}}
Order:  {{.OrderID}}

Bill to:
  {{.BillTo.RecipientName}}
  {{.BillTo.Street1}}{{if .BillTo.Street2}}
  {{.BillTo.Street2}}{{end}}
  {{.BillTo.City}}, {{.BillTo.State}}{{if .BillTo.ZipCode}} {{.BillTo.ZipCode}}{{end}}
  {{.BillTo.Country}}
  {{.BillTo.PhoneNumber}}

Shipping: {{.Shipping}}
Payment:  {{.PaymentMethod}}

Items:
{{- range .Lines}}
  {{printf "%-30s" .ProductName}} x{{printf "%-4d" .Quantity}} @ {{printf "%8.2f" .UnitPrice}} = {{printf "%10.2f" .Subtotal}}
{{- end}}

{{printf "%-20s %10.2f" "Subtotal" .Pricing.Subtotal}}
{{printf "%-20s %10.2f" "Shipping" .Pricing.Shipping}}
{{printf "%-20s %10.2f" "Tax" .Pricing.Tax}}
{{printf "%-20s %10.2f" "Discount" .Pricing.Discount}}
{{printf "%-20s %10.2f" "Total" .Pricing.Total}}
`))

// Render produces the plain-text printable document.
func (i *Invoice) Render() (string, error) {
	var sb strings.Builder
	if err := invoiceTemplate.Execute(&sb, i); err != nil {
		return "", fmt.Errorf("render invoice: %w", err)
	}
	return sb.String(), nil
}
