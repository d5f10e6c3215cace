package invoice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnDate = time.Date(2009, 4, 17, 0, 0, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	inv := New("80000001-1234", txnDate)

	assert.Equal(t, "Net 30", inv.Terms)
	assert.Equal(t, txnDate.AddDate(0, 0, 30), inv.DueDate)
	assert.False(t, inv.AutoCreateItems)

	// Generated request identifiers are UUIDs.
	_, err := uuid.Parse(inv.RequestID)
	assert.NoError(t, err)
}

func TestNew_Options(t *testing.T) {
	due := txnDate.AddDate(0, 0, 45)
	inv := New("80000001-1234", txnDate,
		WithRequestID("invoice1"),
		WithMemo("memo text"),
		WithTerms("Net 45"),
		WithDueDate(due),
		WithAutoCreateItems(),
	)

	assert.Equal(t, "invoice1", inv.RequestID)
	assert.Equal(t, "memo text", inv.Memo)
	assert.Equal(t, "Net 45", inv.Terms)
	assert.Equal(t, due, inv.DueDate)
	assert.True(t, inv.AutoCreateItems)
}

func TestAddLine_AutoCreateRequiresTypeAndAccount(t *testing.T) {
	rate := decimal.NewFromFloat(800)
	qty := decimal.NewFromInt(1)

	inv := New("c1", txnDate, WithAutoCreateItems())

	err := inv.AddLine("Sled", "desc", rate, qty, TypeUnspecified, "Sales")
	assert.ErrorContains(t, err, "item type must be specified")

	err = inv.AddLine("Sled", "desc", rate, qty, Service, "")
	assert.ErrorContains(t, err, "item account must be specified")

	err = inv.AddLine("Sled", "desc", rate, qty, Service, "Sales")
	assert.NoError(t, err)
	assert.Len(t, inv.Lines, 1)
}

func TestAddLine_NoValidationWithoutAutoCreate(t *testing.T) {
	inv := New("c1", txnDate)

	err := inv.AddLine("Sled", "desc", decimal.NewFromInt(10), decimal.NewFromInt(1), TypeUnspecified, "")
	assert.NoError(t, err)
}

func TestLineByName(t *testing.T) {
	inv := New("c1", txnDate)
	require.NoError(t, inv.AddLine("Widget", "a widget", decimal.NewFromInt(5), decimal.NewFromInt(2), TypeUnspecified, ""))

	assert.NotNil(t, inv.LineByName("Widget"))
	assert.Nil(t, inv.LineByName("Gadget"))
}

func TestInvoiceElement(t *testing.T) {
	inv := New("80000001-1234", txnDate, WithMemo("hello"))
	require.NoError(t, inv.AddLine("Widget", "a widget", decimal.NewFromFloat(12.5), decimal.NewFromInt(3), TypeUnspecified, ""))

	el := inv.Element()
	assert.Equal(t, "InvoiceAdd", el.Tag)
	assert.Equal(t, "80000001-1234", el.FindElement("CustomerRef/ListID").Text())
	assert.Equal(t, "2009-04-17", el.FindElement("TxnDate").Text())
	assert.Equal(t, "Net 30", el.FindElement("TermsRef/FullName").Text())
	assert.Equal(t, "2009-05-17", el.FindElement("DueDate").Text())
	assert.Equal(t, "hello", el.FindElement("Memo").Text())

	line := el.FindElement("InvoiceLineAdd")
	require.NotNil(t, line)
	assert.Equal(t, "Widget", line.FindElement("ItemRef/FullName").Text())
	assert.Equal(t, "a widget", line.FindElement("Desc").Text())
	assert.Equal(t, "3", line.FindElement("Quantity").Text())
	assert.Equal(t, "12.50", line.FindElement("Rate").Text())
}

func TestInvoiceElement_NoMemoNoLines(t *testing.T) {
	inv := New("c1", txnDate)

	el := inv.Element()
	assert.Nil(t, el.FindElement("Memo"))
	assert.Nil(t, el.FindElement("InvoiceLineAdd"))
	assert.NotNil(t, el.FindElement("CustomerRef/ListID"))
}

func TestFindByRequestID(t *testing.T) {
	a := New("c1", txnDate, WithRequestID("a"))
	b := New("c2", txnDate, WithRequestID("b"))
	invoices := []*Invoice{a, b}

	assert.Same(t, b, FindByRequestID(invoices, "b"))
	assert.Nil(t, FindByRequestID(invoices, "c"))
}
