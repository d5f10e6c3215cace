package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

// State is the sign-in lifecycle position.
type State int

const (
	StateNoSession State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateNoSession:
		return "NoSession"
	case StateAuthenticating:
		return "Authenticating"
	case StateAuthenticated:
		return "Authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Transport posts a serialized qbXML document and returns the raw
// response body.
type Transport interface {
	Send(ctx context.Context, body []byte) ([]byte, error)
}

// Manager holds the session ticket and performs sign-in when it is
// absent. A failed sign-in leaves the manager in StateNoSession and
// propagates the error; it is never silently retried. Once
// authenticated the manager never signs in again.
type Manager struct {
	identity  qbxml.Identity
	transport Transport
	logger    *slog.Logger

	state  State
	ticket string
}

// NewManager creates a manager in StateNoSession.
func NewManager(identity qbxml.Identity, transport Transport, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		identity:  identity,
		transport: transport,
		logger:    logger,
	}
}

// State returns the current lifecycle position.
func (m *Manager) State() State {
	return m.state
}

// Ticket returns the session ticket, signing in first when none is
// cached.
func (m *Manager) Ticket(ctx context.Context) (string, error) {
	if m.state == StateAuthenticated {
		return m.ticket, nil
	}

	m.state = StateAuthenticating
	ticket, err := m.signOn(ctx)
	if err != nil {
		m.state = StateNoSession
		return "", fmt.Errorf("signing in: %w", err)
	}

	m.ticket = ticket
	m.state = StateAuthenticated
	m.logger.Debug("session established", slog.String("app", m.identity.AppName))
	return ticket, nil
}

// Reset drops the cached ticket so the next request signs in again.
// The gateway does not document ticket expiry; this is the extension
// point for callers that detect an invalidated ticket themselves.
func (m *Manager) Reset() {
	m.state = StateNoSession
	m.ticket = ""
}

func (m *Manager) signOn(ctx context.Context) (string, error) {
	doc := qbxml.NewSignonRequest(m.identity, time.Now())
	body, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("serializing signon request: %w", err)
	}

	raw, err := m.transport.Send(ctx, body)
	if err != nil {
		return "", err
	}

	parsed, err := qbxml.Parse(raw)
	if err != nil {
		return "", err
	}
	return qbxml.SignonTicket(parsed)
}
