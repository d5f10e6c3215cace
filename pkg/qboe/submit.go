package qboe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/jamiebegin/go-qbxml/pkg/invoice"
	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

// missingItemStatusCode is the gateway's "invalid reference to
// ItemList" status, the one error class PutInvoices repairs itself.
const missingItemStatusCode = 3140

// itemRefPattern extracts the offending item name from the status
// message. The gateway encodes the name only in prose; the numeric
// code alone identifies the class, not the item.
var itemRefPattern = regexp.MustCompile(`Invalid reference to ItemList: (.+) in ItemRef`)

// PutInvoices submits every queued invoice and returns a mapping from
// request identifier to the invoice number assigned by the gateway.
//
// An invoice rejected for referencing a missing catalog item is
// repaired when it has auto-creation enabled: the item is created and
// the invoice resubmitted in the next round, with its siblings'
// results kept. The loop is bounded by MaxRounds, and an item that was
// already created but is still reported missing aborts the call
// instead of looping.
func (c *Client) PutInvoices(ctx context.Context) (map[string]string, error) {
	results := make(map[string]string)
	created := make(map[string]bool)
	pending := c.invoices

	for round := 1; len(pending) > 0; round++ {
		if round > c.maxRounds {
			return nil, fmt.Errorf("invoice submission did not converge after %d rounds", c.maxRounds)
		}

		c.logger.Info("submitting invoice batch",
			slog.Int("round", round),
			slog.Int("invoices", len(pending)))

		redo, err := c.submitRound(ctx, pending, results, created)
		if err != nil {
			return nil, err
		}
		pending = redo
	}

	return results, nil
}

// submitRound posts one batch, records successful invoice numbers into
// results, creates any items queued by missing-reference failures, and
// returns the invoices to resubmit.
func (c *Client) submitRound(ctx context.Context, pending []*invoice.Invoice, results map[string]string, created map[string]bool) ([]*invoice.Invoice, error) {
	batch := newBatch()
	for _, inv := range pending {
		rq := batch.CreateElement("InvoiceAddRq")
		rq.CreateAttr("requestID", inv.RequestID)
		rq.AddChild(inv.Element())
	}

	doc, err := c.roundTrip(ctx, batch)
	if err != nil {
		return nil, err
	}
	responses := doc.FindElements("/QBXML/QBXMLMsgsRs/InvoiceAddRs")

	var toCreate []*invoice.LineItem
	var redo []*invoice.Invoice
	queued := make(map[string]bool)
	redoSet := make(map[string]bool)

	for _, rs := range responses {
		err := qbxml.CheckStatus(rs)
		if err == nil {
			continue
		}

		var statusErr *qbxml.StatusError
		if !errors.As(err, &statusErr) || statusErr.Code != missingItemStatusCode {
			return nil, err
		}

		requestID := rs.SelectAttrValue("requestID", "")
		inv := invoice.FindByRequestID(pending, requestID)
		if inv == nil {
			return nil, fmt.Errorf("gateway reported missing item for unknown request ID %q", requestID)
		}
		if !inv.AutoCreateItems {
			return nil, &qbxml.ItemError{Message: fmt.Sprintf(
				"invoice contains at least one line item that does not exist in QBOE [request ID: %q]"+
					" (hint: enable AutoCreateItems on the invoice to create missing items automatically)", requestID)}
		}

		name, ok := extractItemName(statusErr.Message)
		if !ok {
			return nil, &qbxml.ItemError{Message: "cannot add a line item with an empty item name to an invoice"}
		}
		if created[name] {
			return nil, &qbxml.ItemError{Message: fmt.Sprintf(
				"item %q was created but the gateway still reports it missing; aborting resubmission", name)}
		}

		li := inv.LineByName(name)
		if li == nil {
			return nil, &qbxml.ItemError{Message: fmt.Sprintf(
				"gateway reported missing item %q which is not on invoice [request ID: %q]", name, requestID)}
		}

		// The same item may be missing from several invoices in one
		// round; create it once.
		if !queued[name] {
			queued[name] = true
			toCreate = append(toCreate, li)
		}
		if !redoSet[requestID] {
			redoSet[requestID] = true
			redo = append(redo, inv)
		}
	}

	for _, li := range toCreate {
		if li.Type != invoice.Service {
			return nil, &qbxml.ItemError{Message: fmt.Sprintf(
				"only Service items may be created automatically, not %s;"+
					" this is a limitation of QBOE's qbXML subset", li.Type)}
		}
		c.logger.Info("creating missing catalog item", slog.String("item", li.Name))
		if err := c.AddServiceItem(ctx, li.Name, li.Desc, li.Rate, li.Account); err != nil {
			return nil, err
		}
		created[li.Name] = true
	}

	for _, rs := range responses {
		requestID := rs.SelectAttrValue("requestID", "")
		if requestID == "" || redoSet[requestID] {
			continue
		}
		if _, done := results[requestID]; done {
			continue
		}
		if ref := rs.FindElement("InvoiceRet/RefNumber"); ref != nil {
			results[requestID] = ref.Text()
		}
	}

	return redo, nil
}

// extractItemName pulls the item name out of the prose status message.
// A non-matching message (an item reference with an empty name) is not
// recoverable.
func extractItemName(statusMessage string) (string, bool) {
	m := itemRefPattern.FindStringSubmatch(statusMessage)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
