package invoice

import (
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DateFormat is the qbXML wire format for dates.
	DateFormat = "2006-01-02"

	// DefaultTerms is applied when the caller sets no payment terms.
	DefaultTerms = "Net 30"

	// netDays is the due-date offset matching the default terms.
	netDays = 30
)

// Invoice is one invoice to submit, or one returned by a query. The
// RequestID correlates a submitted invoice with its response element
// and must be unique within a submission batch.
type Invoice struct {
	RequestID       string
	CustomerID      string
	TxnDate         time.Time
	Memo            string
	Terms           string
	DueDate         time.Time
	Lines           []*LineItem
	AutoCreateItems bool

	// Populated only from query responses.
	TimeCreated  time.Time
	TimeModified time.Time
	CustomerName string
	IsPaid       *bool
}

// Option configures an Invoice at construction.
type Option func(*Invoice)

// WithRequestID sets a caller-supplied request identifier instead of
// the generated one.
func WithRequestID(id string) Option {
	return func(inv *Invoice) { inv.RequestID = id }
}

// WithMemo sets the invoice memo.
func WithMemo(memo string) Option {
	return func(inv *Invoice) { inv.Memo = memo }
}

// WithTerms overrides the default payment terms.
func WithTerms(terms string) Option {
	return func(inv *Invoice) { inv.Terms = terms }
}

// WithDueDate overrides the default due date.
func WithDueDate(due time.Time) Option {
	return func(inv *Invoice) { inv.DueDate = due }
}

// WithAutoCreateItems opts the invoice into automatic creation of
// catalog items the gateway reports as missing. Every line added to
// such an invoice must declare an item type and a target account.
func WithAutoCreateItems() Option {
	return func(inv *Invoice) { inv.AutoCreateItems = true }
}

// New creates an invoice for the given customer and transaction date.
// Terms default to "Net 30" and the due date to the transaction date
// plus thirty days; the request identifier is generated when not
// supplied.
func New(customerID string, txnDate time.Time, opts ...Option) *Invoice {
	inv := &Invoice{
		CustomerID: customerID,
		TxnDate:    txnDate,
	}
	for _, opt := range opts {
		opt(inv)
	}

	if inv.Terms == "" {
		inv.Terms = DefaultTerms
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = txnDate.AddDate(0, 0, netDays)
	}
	if inv.RequestID == "" {
		inv.RequestID = uuid.NewString()
	}

	return inv
}

// AddLine appends a line item. typ may be TypeUnspecified and account
// empty unless the invoice has auto-creation enabled; an item type
// outside the enumeration fails immediately, before any network call.
func (inv *Invoice) AddLine(name, desc string, rate, qty decimal.Decimal, typ ItemType, account string) error {
	li := &LineItem{
		Name:     name,
		Desc:     desc,
		Rate:     rate,
		Quantity: qty,
		Type:     typ,
		Account:  account,
	}
	if err := validateLine(li, inv.AutoCreateItems); err != nil {
		return err
	}
	inv.Lines = append(inv.Lines, li)
	return nil
}

// LineByName returns the first line item with the given full catalog
// name, or nil.
func (inv *Invoice) LineByName(name string) *LineItem {
	for _, li := range inv.Lines {
		if li.Name == name {
			return li
		}
	}
	return nil
}

// Element renders the InvoiceAdd wire shape. An invoice with zero
// line items is a valid request.
func (inv *Invoice) Element() *etree.Element {
	el := etree.NewElement("InvoiceAdd")
	el.CreateElement("CustomerRef").CreateElement("ListID").SetText(inv.CustomerID)
	el.CreateElement("TxnDate").SetText(inv.TxnDate.Format(DateFormat))
	el.CreateElement("TermsRef").CreateElement("FullName").SetText(inv.Terms)
	el.CreateElement("DueDate").SetText(inv.DueDate.Format(DateFormat))
	if inv.Memo != "" {
		el.CreateElement("Memo").SetText(inv.Memo)
	}
	for _, li := range inv.Lines {
		el.AddChild(li.Element())
	}
	return el
}

// FindByRequestID returns the invoice with the given request
// identifier, or nil.
func FindByRequestID(invoices []*Invoice, requestID string) *Invoice {
	for _, inv := range invoices {
		if inv.RequestID == requestID {
			return inv
		}
	}
	return nil
}
