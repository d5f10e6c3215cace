package transport

import (
	"crypto/x509"
	"errors"
	"strings"
	"testing"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

func TestClassify_BadKey(t *testing.T) {
	cause := errors.New("tls: failed to find any PEM data in key input")

	err := classify(cause, "/etc/my_key.pem", "/etc/my_cert.crt")
	var transportErr *qbxml.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !strings.Contains(transportErr.Hint, "/etc/my_key.pem") {
		t.Errorf("expected hint to name the key file, got %q", transportErr.Hint)
	}
	if !strings.Contains(transportErr.Hint, "BEGIN RSA PRIVATE KEY") {
		t.Errorf("expected actionable hint, got %q", transportErr.Hint)
	}
	if !errors.Is(err, cause) {
		t.Error("expected original error to be wrapped")
	}
}

func TestClassify_BadCertificate(t *testing.T) {
	cause := errors.New("tls: failed to find any PEM data in certificate input")

	err := classify(cause, "/etc/my_key.pem", "/etc/my_cert.crt")
	var transportErr *qbxml.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !strings.Contains(transportErr.Hint, "/etc/my_cert.crt") {
		t.Errorf("expected hint to name the certificate file, got %q", transportErr.Hint)
	}
	if !strings.Contains(transportErr.Hint, "BEGIN CERTIFICATE") {
		t.Errorf("expected actionable hint, got %q", transportErr.Hint)
	}
}

func TestClassify_Mismatch(t *testing.T) {
	cause := errors.New("tls: private key does not match public key")

	err := classify(cause, "/etc/my_key.pem", "/etc/my_cert.crt")
	var transportErr *qbxml.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !strings.Contains(transportErr.Hint, "/etc/my_key.pem") || !strings.Contains(transportErr.Hint, "/etc/my_cert.crt") {
		t.Errorf("expected hint to name both files, got %q", transportErr.Hint)
	}
}

func TestClassify_UnrecognizedPassesThrough(t *testing.T) {
	cause := errors.New("tls: oversized record received")

	err := classify(cause, "/etc/my_key.pem", "/etc/my_cert.crt")
	if err != cause {
		t.Errorf("expected the original error unchanged, got %v", err)
	}
}

func TestIsTLSError(t *testing.T) {
	if !isTLSError(errors.New("remote error: tls: handshake failure")) {
		t.Error("expected handshake failure to be a TLS error")
	}
	if !isTLSError(x509.UnknownAuthorityError{}) {
		t.Error("expected unknown authority to be a TLS error")
	}
	if isTLSError(errors.New("dial tcp: connection refused")) {
		t.Error("expected connection failure not to be a TLS error")
	}
}
