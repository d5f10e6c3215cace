package qboe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beevik/etree"

	"github.com/jamiebegin/go-qbxml/pkg/invoice"
	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
	"github.com/jamiebegin/go-qbxml/pkg/session"
)

// DefaultMaxRounds caps the submit/repair cycles in PutInvoices. The
// gateway gives no structural guarantee that creating a missing item
// resolves the reference, so the loop is bounded defensively.
const DefaultMaxRounds = 8

// Config holds client configuration.
type Config struct {
	Identity  qbxml.Identity
	Transport session.Transport
	Logger    *slog.Logger
	MaxRounds int
}

// Client talks to the QBOE gateway. It owns the queue of pending
// invoices and the session manager; it is synchronous and not safe for
// concurrent use.
type Client struct {
	identity  qbxml.Identity
	transport session.Transport
	session   *session.Manager
	logger    *slog.Logger
	maxRounds int

	invoices []*invoice.Invoice
}

// NewClient creates a client for the configured gateway.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}
	if config.Transport == nil {
		return nil, errors.New("transport is required")
	}
	if err := config.Identity.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxRounds := config.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	return &Client{
		identity:  config.Identity,
		transport: config.Transport,
		session:   session.NewManager(config.Identity, config.Transport, logger),
		logger:    logger,
		maxRounds: maxRounds,
	}, nil
}

// Session exposes the session manager, mainly for Reset.
func (c *Client) Session() *session.Manager {
	return c.session
}

// AddInvoice queues an invoice for the next PutInvoices call.
func (c *Client) AddInvoice(inv *invoice.Invoice) {
	c.invoices = append(c.invoices, inv)
}

// newBatch starts a business-message batch with the continue-on-error
// policy, so one failing request does not abort its siblings.
func newBatch() *etree.Element {
	batch := etree.NewElement("QBXMLMsgsRq")
	batch.CreateAttr("onError", "continueOnError")
	return batch
}

// roundTrip wraps a business payload in the authenticated envelope,
// posts it, and parses the response. Sign-in happens here implicitly
// when no ticket is cached yet.
func (c *Client) roundTrip(ctx context.Context, payload *etree.Element) (*etree.Document, error) {
	ticket, err := c.session.Ticket(ctx)
	if err != nil {
		return nil, err
	}

	doc := qbxml.NewRequest(c.identity, ticket, time.Now(), payload)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing request: %w", err)
	}

	raw, err := c.transport.Send(ctx, body)
	if err != nil {
		return nil, err
	}
	return qbxml.Parse(raw)
}
