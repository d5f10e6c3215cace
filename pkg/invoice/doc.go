// Package invoice holds the data records exchanged with the gateway:
// invoices with their line items, plus the read-only customer and
// address records populated from query responses. Invoices and line
// items know their own InvoiceAdd wire shape; everything else is plain
// field accumulation.
package invoice
