package qbxml

import (
	"errors"
	"fmt"
)

// ErrNoTicket is returned when a sign-in response reports neither a
// session ticket nor an error. That combination violates the protocol
// contract and must never be treated as success.
var ErrNoTicket = errors.New("expected a session ticket or an error but received neither")

// StatusError is a response element reporting ERROR severity. It
// carries the numeric status code and message text from the gateway.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (qbXML statusCode: %d)", e.Message, e.Code)
}

// ItemError reports application-level misuse of catalog items: an
// invalid declared item type, a missing account or type on an
// auto-created item, an empty item name extracted from a gateway
// message, or an unsupported item type requested for creation. Item
// errors are never retried.
type ItemError struct {
	Message string
}

func (e *ItemError) Error() string {
	return e.Message
}

// ConfigError reports a credential file that is missing or unreadable.
// Kind names the role of the file ("key" or "certificate").
type ConfigError struct {
	Kind    string
	Path    string
	Missing bool
}

func (e *ConfigError) Error() string {
	if e.Missing {
		return fmt.Sprintf("the specified SSL %s file (%q) does not exist", e.Kind, e.Path)
	}
	return fmt.Sprintf("the specified SSL %s file (%q) exists but is not readable", e.Kind, e.Path)
}

// TransportError reports an HTTP-level failure (non-200 status) or a
// TLS failure classified against a known signature. Unclassified TLS
// failures are propagated as-is, not wrapped in a TransportError.
type TransportError struct {
	StatusCode int    // HTTP status, zero for TLS failures
	Reason     string // HTTP status text
	Hint       string // actionable description for classified TLS failures
	Err        error  // underlying cause, if any
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("invalid response received from QBOE: %d %s", e.StatusCode, e.Reason)
	}
	return e.Hint
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
