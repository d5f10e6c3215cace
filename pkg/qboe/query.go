package qboe

import (
	"context"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jamiebegin/go-qbxml/pkg/invoice"
	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

// GetInvoices retrieves the invoice list from the gateway. Returned
// invoices carry the query-only fields (timestamps, paid flag,
// customer display name) and have no request identifier.
func (c *Client) GetInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	batch := newBatch()
	batch.CreateElement("InvoiceQueryRq")

	doc, err := c.roundTrip(ctx, batch)
	if err != nil {
		return nil, err
	}

	var invoices []*invoice.Invoice
	for _, rs := range doc.FindElements("/QBXML/QBXMLMsgsRs/InvoiceQueryRs") {
		if err := qbxml.CheckStatus(rs); err != nil {
			return nil, err
		}
		for _, ret := range rs.ChildElements() {
			txnDate := childText(ret, "TxnDate")
			customerID := childText(ret, "CustomerRef/ListID")
			if txnDate == "" || customerID == "" {
				continue
			}

			inv := &invoice.Invoice{
				CustomerID:   customerID,
				TxnDate:      parseDate(txnDate),
				CustomerName: childText(ret, "CustomerRef/FullName"),
				TimeCreated:  parseDateTime(childText(ret, "TimeCreated")),
				TimeModified: parseDateTime(childText(ret, "TimeModified")),
			}
			if paid := childText(ret, "IsPaid"); paid != "" {
				v := strings.EqualFold(paid, "true")
				inv.IsPaid = &v
			}

			for _, line := range ret.FindElements("InvoiceLineRet") {
				inv.Lines = append(inv.Lines, &invoice.LineItem{
					Name:     childText(line, "ItemRef/FullName"),
					Desc:     childText(line, "Desc"),
					Rate:     parseDecimal(childText(line, "Rate")),
					Quantity: parseDecimal(childText(line, "Quantity")),
				})
			}

			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}

// GetCustomers retrieves the customer list from the gateway.
func (c *Client) GetCustomers(ctx context.Context, requestID string) ([]*invoice.Customer, error) {
	batch := newBatch()
	rq := batch.CreateElement("CustomerQueryRq")
	rq.CreateAttr("requestID", requestID)

	doc, err := c.roundTrip(ctx, batch)
	if err != nil {
		return nil, err
	}

	var customers []*invoice.Customer
	for _, rs := range doc.FindElements("/QBXML/QBXMLMsgsRs/CustomerQueryRs") {
		if err := qbxml.CheckStatus(rs); err != nil {
			return nil, err
		}
		for _, ret := range rs.ChildElements() {
			listID := childText(ret, "ListID")
			name := childText(ret, "Name")
			if listID == "" || name == "" {
				continue
			}

			cust := &invoice.Customer{
				ListID:                listID,
				Name:                  name,
				FullName:              childText(ret, "FullName"),
				CompanyName:           childText(ret, "CompanyName"),
				FirstName:             childText(ret, "FirstName"),
				LastName:              childText(ret, "LastName"),
				PrintAs:               childText(ret, "PrintAs"),
				EditSequence:          childText(ret, "EditSequence"),
				Sublevel:              childText(ret, "Sublevel"),
				Phone:                 childText(ret, "Phone"),
				Email:                 childText(ret, "Email"),
				DeliveryMethod:        childText(ret, "DeliveryMethod"),
				Balance:               parseDecimal(childText(ret, "Balance")),
				TotalBalance:          parseDecimal(childText(ret, "TotalBalance")),
				IsStatementWithParent: childText(ret, "IsStatementWithParent"),
				TimeCreated:           parseDateTime(childText(ret, "TimeCreated")),
				TimeModified:          parseDateTime(childText(ret, "TimeModified")),
			}

			if addr := ret.FindElement("BillAddress"); addr != nil {
				cust.BillAddress = invoice.Address{
					Addr1:      childText(addr, "Addr1"),
					Addr2:      childText(addr, "Addr2"),
					City:       childText(addr, "City"),
					State:      childText(addr, "State"),
					PostalCode: childText(addr, "PostalCode"),
				}
			}

			customers = append(customers, cust)
		}
	}
	return customers, nil
}

// childText returns the text of the element at path, or "".
func childText(el *etree.Element, path string) string {
	if child := el.FindElement(path); child != nil {
		return child.Text()
	}
	return ""
}

// parseDate reads the qbXML date format; malformed or absent values
// yield the zero time, matching the optional-field model.
func parseDate(s string) time.Time {
	t, _ := time.Parse(invoice.DateFormat, s)
	return t
}

func parseDateTime(s string) time.Time {
	t, _ := time.Parse(qbxml.TimestampFormat, s)
	return t
}

// parseDecimal reads a fixed-point value; absent or malformed values
// yield zero.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
