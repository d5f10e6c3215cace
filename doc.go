/*
Package goqbxml implements a client for the qbXML protocol used by the
hosted QuickBooks Online Edition (QBOE) accounting service.

# Overview

go-qbxml speaks the vendor's XML vocabulary over mutually-authenticated
HTTPS. It covers session sign-in and ticket reuse, invoice submission
with automatic recovery from missing catalog items, service item
creation, and read queries for invoices and customers.

# Package Structure

The library is organized into the following packages:

	github.com/jamiebegin/go-qbxml/pkg/qboe      - Main client API and invoice submission
	github.com/jamiebegin/go-qbxml/pkg/qbxml     - qbXML envelopes, status handling, error kinds
	github.com/jamiebegin/go-qbxml/pkg/invoice   - Invoice, line item, and customer records
	github.com/jamiebegin/go-qbxml/pkg/session   - Session ticket lifecycle
	github.com/jamiebegin/go-qbxml/pkg/transport - HTTPS transport with client certificates

# Quick Start

To submit invoices:

	import (
	    "github.com/jamiebegin/go-qbxml/pkg/invoice"
	    "github.com/jamiebegin/go-qbxml/pkg/qboe"
	    "github.com/jamiebegin/go-qbxml/pkg/qbxml"
	    "github.com/jamiebegin/go-qbxml/pkg/transport"
	)

	client, _ := qboe.NewClient(&qboe.Config{
	    Identity: qbxml.Identity{
	        AppName:          "myapp.mydomain.com",
	        AppID:            "112734952",
	        AppVer:           "1",
	        ConnectionTicket: "TGT-104-zH084yIDGkH4_r2DYUUcevQ",
	    },
	    Transport: transport.NewClient(&transport.Config{
	        Host:     "webapps.quickbooks.com",
	        Path:     "/j/AppGateway",
	        KeyFile:  "my_key.pem",
	        CertFile: "my_cert.crt",
	    }),
	})

	inv := invoice.New("80000001-1234", time.Now())
	inv.AddLine("Consulting", "One hour of consulting", rate, qty, 0, "")
	client.AddInvoice(inv)

	results, err := client.PutInvoices(ctx)

The result maps each invoice's request identifier to the invoice number
assigned by the remote service.

# Session Handling

A session ticket is obtained lazily on the first request and reused for
the lifetime of the process. Tickets are never persisted. The remote
service does not document ticket expiry; session.Manager.Reset drops
the cached ticket when a caller needs to force re-authentication.

# Error Handling

Failures are reported as distinct error kinds so callers can branch
without parsing message text: qbxml.StatusError for protocol-level
errors, qbxml.ItemError for catalog item misuse, qbxml.ConfigError for
missing or unreadable credential files, qbxml.TransportError for HTTP
and TLS failures, and qbxml.ErrNoTicket when a sign-in response carries
neither a ticket nor an error.
*/
package goqbxml
