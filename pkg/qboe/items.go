package qboe

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

// AddServiceItem creates one Service catalog item. Success has no
// return value beyond a nil error; any ERROR-severity response is
// propagated as a *qbxml.StatusError. Service is the only item type
// QBOE's qbXML subset allows creating.
func (c *Client) AddServiceItem(ctx context.Context, name, desc string, rate decimal.Decimal, account string) error {
	batch := newBatch()
	rq := batch.CreateElement("ItemServiceAddRq")
	rq.CreateAttr("requestID", "")

	add := rq.CreateElement("ItemServiceAdd")
	add.CreateElement("Name").SetText(name)
	sop := add.CreateElement("SalesOrPurchase")
	sop.CreateElement("Desc").SetText(desc)
	sop.CreateElement("Price").SetText(rate.StringFixed(2))
	sop.CreateElement("AccountRef").CreateElement("FullName").SetText(account)

	doc, err := c.roundTrip(ctx, batch)
	if err != nil {
		return err
	}

	for _, rs := range doc.FindElements("/QBXML/QBXMLMsgsRs/ItemServiceAddRs") {
		if err := qbxml.CheckStatus(rs); err != nil {
			return err
		}
	}
	return nil
}
