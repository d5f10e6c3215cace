package invoice

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

// ItemType is the declared type of a catalog item. The enumeration is
// closed; the gateway rejects anything else.
type ItemType int

const (
	// TypeUnspecified means the caller declared no type. Allowed
	// unless the owning invoice has item auto-creation enabled.
	TypeUnspecified ItemType = iota
	Service
	Inventory
	NonInventory
	OtherCharge
	Group
	FixedAsset
	Discount
	Payment
	SalesTax
	SalesTaxGroup
	Subtotal
)

var itemTypeNames = map[ItemType]string{
	Service:       "Service",
	Inventory:     "Inventory",
	NonInventory:  "NonInventory",
	OtherCharge:   "OtherCharge",
	Group:         "Group",
	FixedAsset:    "FixedAsset",
	Discount:      "Discount",
	Payment:       "Payment",
	SalesTax:      "SalesTax",
	SalesTaxGroup: "SalesTaxGroup",
	Subtotal:      "Subtotal",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// Valid reports whether t is a member of the closed enumeration.
// TypeUnspecified is not a valid declared type.
func (t ItemType) Valid() bool {
	_, ok := itemTypeNames[t]
	return ok
}

// allowedItemTypes lists the enumeration for error messages.
func allowedItemTypes() string {
	names := make([]string, 0, len(itemTypeNames))
	for t := Service; t <= Subtotal; t++ {
		names = append(names, itemTypeNames[t])
	}
	return strings.Join(names, ", ")
}

// LineItem is one line on an invoice. Type and Account are optional
// unless the owning invoice has item auto-creation enabled, in which
// case both are required so the item can be created on the fly.
type LineItem struct {
	Name     string
	Desc     string
	Rate     decimal.Decimal
	Quantity decimal.Decimal
	Type     ItemType
	Account  string
}

// Element renders the InvoiceLineAdd wire shape. Quantity serializes
// as a bare integer when it has no fractional part, otherwise as a
// two-decimal fixed string; Rate is always two-decimal fixed.
func (li *LineItem) Element() *etree.Element {
	el := etree.NewElement("InvoiceLineAdd")
	el.CreateElement("ItemRef").CreateElement("FullName").SetText(li.Name)
	el.CreateElement("Desc").SetText(li.Desc)
	el.CreateElement("Quantity").SetText(FormatQuantity(li.Quantity))
	el.CreateElement("Rate").SetText(li.Rate.StringFixed(2))
	return el
}

// FormatQuantity renders a quantity for the wire: "3" for integral
// values (including 3.0), "3.25" otherwise.
func FormatQuantity(q decimal.Decimal) string {
	if q.IsInteger() {
		return q.Truncate(0).String()
	}
	return q.StringFixed(2)
}

// validateLine enforces the auto-creation prerequisites on a new line.
func validateLine(li *LineItem, autoCreate bool) error {
	if li.Type != TypeUnspecified && !li.Type.Valid() {
		return &qbxml.ItemError{Message: fmt.Sprintf(
			"invalid item type specified (hint: allowed types are: %s)", allowedItemTypes())}
	}
	if autoCreate && li.Type == TypeUnspecified {
		return &qbxml.ItemError{Message: "item type must be specified for each line item when using item auto-creation"}
	}
	if autoCreate && li.Account == "" {
		return &qbxml.ItemError{Message: "the item account must be specified for each line item when using item auto-creation"}
	}
	return nil
}
