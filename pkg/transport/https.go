package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
)

const (
	// ContentType is the media type the gateway requires.
	ContentType = "application/x-qbxml"

	// DefaultTimeout bounds each request end to end.
	DefaultTimeout = 60 * time.Second
)

// Config describes the gateway endpoint and the client credentials.
type Config struct {
	Host     string
	Path     string
	KeyFile  string
	CertFile string
	Timeout  time.Duration

	// RootCAs overrides the system pool when verifying the gateway
	// certificate. Nil means the system pool.
	RootCAs *x509.CertPool
}

// Client posts qbXML documents over mutual TLS. The client keypair is
// loaded lazily on the first request so credential problems surface as
// diagnosable send failures rather than construction errors.
type Client struct {
	config    *Config
	client    *http.Client
	tlsConfig *tls.Config
	loaded    bool
}

// NewClient creates a transport client for the configured endpoint.
func NewClient(config *Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    config.RootCAs,
	}

	return &Client{
		config:    config,
		tlsConfig: tlsConfig,
		client: &http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
			Timeout:   config.Timeout,
		},
	}
}

// Send posts one serialized qbXML document and returns the raw
// response body. A non-200 status fails with a *qbxml.TransportError
// carrying the status and reason. The response body is closed on every
// exit path.
func (c *Client) Send(ctx context.Context, body []byte) ([]byte, error) {
	if err := c.ensureCertificate(); err != nil {
		return nil, err
	}

	url := "https://" + c.config.Host + c.config.Path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-type", ContentType)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTLSError(err) {
			return nil, c.diagnose(err)
		}
		return nil, fmt.Errorf("posting qbXML request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &qbxml.TransportError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}

// ensureCertificate loads the client keypair once. Load failures go
// through the same diagnostic pass as handshake failures. When neither
// file is configured the client certificate is omitted entirely, which
// the gateway rejects but test servers accept.
func (c *Client) ensureCertificate() error {
	if c.loaded {
		return nil
	}
	if c.config.CertFile == "" && c.config.KeyFile == "" {
		c.loaded = true
		return nil
	}

	cert, err := tls.LoadX509KeyPair(c.config.CertFile, c.config.KeyFile)
	if err != nil {
		return c.diagnose(err)
	}
	c.tlsConfig.Certificates = []tls.Certificate{cert}
	c.loaded = true
	return nil
}
