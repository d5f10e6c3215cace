// Package config handles configuration loading for go-qbxml tools.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so the connection ticket
// and credential file paths can be injected at runtime.
//
// # Example Configuration
//
//	endpoint:
//	  host: webapps.quickbooks.com
//	  path: /j/AppGateway
//
//	tls:
//	  keyFile: /etc/ssl/my_key.pem
//	  certFile: /etc/ssl/my_cert.crt
//
//	app:
//	  name: myapp.mydomain.com
//	  id: "112734952"
//	  version: "1"
//	  connectionTicket: ${QBOE_CONNECTION_TICKET}
//
//	timeoutSeconds: 60
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jamiebegin/go-qbxml/pkg/qbxml"
	"github.com/jamiebegin/go-qbxml/pkg/transport"
)

// Config is the root configuration structure.
type Config struct {
	Endpoint       EndpointConfig `yaml:"endpoint"`
	TLS            TLSConfig      `yaml:"tls"`
	App            AppConfig      `yaml:"app"`
	TimeoutSeconds int            `yaml:"timeoutSeconds"`
	MaxRounds      int            `yaml:"maxRounds"`
}

// EndpointConfig identifies the gateway.
type EndpointConfig struct {
	Host string `yaml:"host"`
	Path string `yaml:"path"`
}

// TLSConfig holds the client credential files.
type TLSConfig struct {
	KeyFile  string `yaml:"keyFile"`
	CertFile string `yaml:"certFile"`
}

// AppConfig holds the registered application identity.
type AppConfig struct {
	Name             string `yaml:"name"`
	ID               string `yaml:"id"`
	Version          string `yaml:"version"`
	ConnectionTicket string `yaml:"connectionTicket"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Endpoint.Host == "" {
		c.Endpoint.Host = "webapps.quickbooks.com"
	}
	if c.Endpoint.Path == "" {
		c.Endpoint.Path = "/j/AppGateway"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 60
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = 8
	}
}

func (c *Config) validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.App.ID == "" {
		return fmt.Errorf("app.id is required")
	}
	if c.App.Version == "" {
		return fmt.Errorf("app.version is required")
	}
	if c.App.ConnectionTicket == "" {
		return fmt.Errorf("app.connectionTicket is required")
	}
	if c.TLS.KeyFile == "" {
		return fmt.Errorf("tls.keyFile is required")
	}
	if c.TLS.CertFile == "" {
		return fmt.Errorf("tls.certFile is required")
	}
	return nil
}

// Transport builds the transport configuration.
func (c *Config) Transport() *transport.Config {
	return &transport.Config{
		Host:     c.Endpoint.Host,
		Path:     c.Endpoint.Path,
		KeyFile:  c.TLS.KeyFile,
		CertFile: c.TLS.CertFile,
		Timeout:  time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

// Identity builds the application identity.
func (c *Config) Identity() qbxml.Identity {
	return qbxml.Identity{
		AppName:          c.App.Name,
		AppID:            c.App.ID,
		AppVer:           c.App.Version,
		ConnectionTicket: c.App.ConnectionTicket,
	}
}
