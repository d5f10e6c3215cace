package qbxml

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

const (
	// Version is the qbXML protocol version declared in every request.
	Version = "6.0"

	// TimestampFormat is the ClientDateTime wire format.
	TimestampFormat = "2006-01-02T15:04:05"

	// Language is the language tag sent in every signon block. QBOE
	// accepts no other value.
	Language = "English"
)

// Identity describes the application to the gateway. All four fields
// are issued during application registration and sent with every
// request.
type Identity struct {
	AppName          string
	AppID            string
	AppVer           string
	ConnectionTicket string
}

// Validate reports the first missing identity field.
func (id Identity) Validate() error {
	switch {
	case id.AppName == "":
		return fmt.Errorf("application name is required")
	case id.AppID == "":
		return fmt.Errorf("application ID is required")
	case id.AppVer == "":
		return fmt.Errorf("application version is required")
	case id.ConnectionTicket == "":
		return fmt.Errorf("connection ticket is required")
	}
	return nil
}

// newEnvelope creates the document shell shared by both envelope
// variants: XML declaration, qbxml version instruction, QBXML root,
// and the SignonMsgsRq block.
func newEnvelope() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateProcInst("qbxml", fmt.Sprintf("version=%q", Version))
	root := doc.CreateElement("QBXML")
	return doc, root.CreateElement("SignonMsgsRq")
}

// NewSignonRequest builds the sign-in envelope. The signon block
// carries the application credentials instead of a session ticket;
// the gateway answers with a SignonAppCertRs containing the ticket.
func NewSignonRequest(id Identity, now time.Time) *etree.Document {
	doc, signon := newEnvelope()

	rq := signon.CreateElement("SignonAppCertRq")
	rq.CreateElement("ClientDateTime").SetText(now.Format(TimestampFormat))
	rq.CreateElement("ApplicationLogin").SetText(id.AppName)
	rq.CreateElement("ConnectionTicket").SetText(id.ConnectionTicket)
	rq.CreateElement("Language").SetText(Language)
	rq.CreateElement("AppID").SetText(id.AppID)
	rq.CreateElement("AppVer").SetText(id.AppVer)

	return doc
}

// NewRequest wraps a business payload in the authenticated envelope.
// The payload element is appended under the QBXML root after the
// signon block. No network or state side effects; pure transformation.
func NewRequest(id Identity, ticket string, now time.Time, payload *etree.Element) *etree.Document {
	doc, signon := newEnvelope()

	rq := signon.CreateElement("SignonTicketRq")
	rq.CreateElement("ClientDateTime").SetText(now.Format(TimestampFormat))
	rq.CreateElement("SessionTicket").SetText(ticket)
	rq.CreateElement("Language").SetText(Language)
	rq.CreateElement("AppID").SetText(id.AppID)
	rq.CreateElement("AppVer").SetText(id.AppVer)

	doc.Root().AddChild(payload)

	return doc
}

// Parse decodes a raw gateway response into a document for the status
// inspection helpers.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing qbXML response: %w", err)
	}
	return doc, nil
}
