package qbxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Severity values carried by the statusSeverity attribute. The gateway
// is inconsistent about case ("ERROR" on signon responses, "Error" on
// business responses), so comparisons are case-insensitive.
const (
	SeverityError = "ERROR"
	SeverityInfo  = "INFO"
)

// CheckStatus classifies one response element by its statusSeverity
// attribute. ERROR severity yields a *StatusError carrying the numeric
// statusCode and statusMessage; anything else is success.
func CheckStatus(el *etree.Element) error {
	sev := el.SelectAttrValue("statusSeverity", "")
	if !strings.EqualFold(sev, SeverityError) {
		return nil
	}

	code, err := strconv.Atoi(el.SelectAttrValue("statusCode", ""))
	if err != nil {
		code = -1
	}
	return &StatusError{
		Code:    code,
		Message: el.SelectAttrValue("statusMessage", ""),
	}
}

// SignonTicket extracts the session ticket from a sign-in response.
// Each SignonAppCertRs/SignonTicketRs element is classified first; an
// ERROR status fails with the corresponding *StatusError. A response
// that ends with neither a ticket nor an error fails with ErrNoTicket.
func SignonTicket(doc *etree.Document) (string, error) {
	var ticket string
	for _, el := range doc.FindElements("//SignonMsgsRs/*") {
		if el.Tag != "SignonAppCertRs" && el.Tag != "SignonTicketRs" {
			continue
		}
		if err := CheckStatus(el); err != nil {
			return "", err
		}
		if t := el.FindElement("SessionTicket"); t != nil && t.Text() != "" {
			ticket = t.Text()
		}
	}

	if ticket == "" {
		return "", ErrNoTicket
	}
	return ticket, nil
}
