// Package transport performs the HTTPS POST carrying qbXML documents.
//
// The gateway authenticates callers with a client certificate, so
// every request rides a mutual-TLS connection built from a private-key
// file and a certificate file. TLS failures get a secondary diagnostic
// pass: the credential files are checked for existence and
// readability, and known handshake error signatures are translated
// into actionable messages naming the file at fault. Unrecognized TLS
// failures propagate unchanged.
package transport
