// Package qbxml builds and interprets qbXML protocol documents.
//
// Every request to the QBOE gateway is a qbXML document: a processing
// instruction declaring the protocol version, a QBXML root, a signon
// block carrying either the application credentials (sign-in) or the
// current session ticket (all other requests), and the business
// payload. This package produces those envelopes, parses responses,
// and classifies the statusSeverity/statusCode/statusMessage triples
// the gateway attaches to each response element.
//
// The error kinds for the whole library live here as well, so callers
// can branch on failure class with errors.As/errors.Is instead of
// inspecting message text.
package qbxml
