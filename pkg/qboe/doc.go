// Package qboe is the main client API for the QBOE gateway.
//
// The Client queues invoices, submits them in batches, and repairs one
// specific failure class on its own: an invoice rejected because it
// references a catalog item the gateway does not know yet. When the
// invoice opted in to auto-creation, the missing items are created and
// only the affected invoices resubmitted, over as many rounds as it
// takes within a bounded limit. Every other error is surfaced to the
// caller unchanged.
package qboe
