package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

var testIdentity = qbxml.Identity{
	AppName:          "myapp.mydomain.com",
	AppID:            "112734952",
	AppVer:           "1",
	ConnectionTicket: "TGT-104",
}

// scriptedTransport replays canned responses and records each request.
type scriptedTransport struct {
	responses []string
	err       error
	requests  [][]byte
}

func (t *scriptedTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	t.requests = append(t.requests, body)
	if t.err != nil {
		return nil, t.err
	}
	if len(t.responses) == 0 {
		return nil, errors.New("no scripted response left")
	}
	resp := t.responses[0]
	t.responses = t.responses[1:]
	return []byte(resp), nil
}

const signonOK = `<?xml version="1.0" encoding="utf-8"?>
<QBXML><SignonMsgsRs><SignonAppCertRs statusSeverity="INFO"><SessionTicket>SES-1</SessionTicket></SignonAppCertRs></SignonMsgsRs></QBXML>`

func TestTicket_SignsInOnce(t *testing.T) {
	transport := &scriptedTransport{responses: []string{signonOK}}
	m := NewManager(testIdentity, transport, nil)

	assert.Equal(t, StateNoSession, m.State())

	ticket, err := m.Ticket(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SES-1", ticket)
	assert.Equal(t, StateAuthenticated, m.State())

	// Second call reuses the cached ticket without a network call.
	ticket, err = m.Ticket(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SES-1", ticket)
	assert.Len(t, transport.requests, 1)
}

func TestTicket_SignonRequestShape(t *testing.T) {
	transport := &scriptedTransport{responses: []string{signonOK}}
	m := NewManager(testIdentity, transport, nil)

	_, err := m.Ticket(context.Background())
	require.NoError(t, err)

	doc, err := qbxml.Parse(transport.requests[0])
	require.NoError(t, err)
	rq := doc.FindElement("/QBXML/SignonMsgsRq/SignonAppCertRq")
	require.NotNil(t, rq)
	assert.Equal(t, "myapp.mydomain.com", rq.FindElement("ApplicationLogin").Text())
	assert.Equal(t, "TGT-104", rq.FindElement("ConnectionTicket").Text())
}

func TestTicket_SignonError(t *testing.T) {
	transport := &scriptedTransport{responses: []string{`<QBXML><SignonMsgsRs>
 <SignonAppCertRs statusSeverity="ERROR" statusCode="2020" statusMessage="Invalid connection ticket"/>
</SignonMsgsRs></QBXML>`}}
	m := NewManager(testIdentity, transport, nil)

	_, err := m.Ticket(context.Background())
	var statusErr *qbxml.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 2020, statusErr.Code)
	assert.Equal(t, StateNoSession, m.State())
}

func TestTicket_NoTicketNoError(t *testing.T) {
	transport := &scriptedTransport{responses: []string{`<QBXML><SignonMsgsRs>
 <SignonAppCertRs statusSeverity="INFO"/>
</SignonMsgsRs></QBXML>`}}
	m := NewManager(testIdentity, transport, nil)

	_, err := m.Ticket(context.Background())
	assert.ErrorIs(t, err, qbxml.ErrNoTicket)
	assert.Equal(t, StateNoSession, m.State())
}

func TestTicket_TransportFailure(t *testing.T) {
	transport := &scriptedTransport{err: errors.New("connection refused")}
	m := NewManager(testIdentity, transport, nil)

	_, err := m.Ticket(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateNoSession, m.State())
}

func TestReset(t *testing.T) {
	transport := &scriptedTransport{responses: []string{signonOK, signonOK}}
	m := NewManager(testIdentity, transport, nil)

	_, err := m.Ticket(context.Background())
	require.NoError(t, err)

	m.Reset()
	assert.Equal(t, StateNoSession, m.State())

	_, err = m.Ticket(context.Background())
	require.NoError(t, err)
	assert.Len(t, transport.requests, 2)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "NoSession", StateNoSession.String())
	assert.Equal(t, "Authenticating", StateAuthenticating.String())
	assert.Equal(t, "Authenticated", StateAuthenticated.String())
}
