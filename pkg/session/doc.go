// Package session owns the process-wide session ticket.
//
// The gateway issues an opaque ticket in response to a sign-in request
// and expects it on every subsequent request. The Manager holds at
// most one ticket, obtains it lazily on first use, and never writes it
// anywhere but process memory. The library is synchronous, so the
// ticket has a single writer and needs no locking; a concurrent port
// must treat Ticket and Reset as one critical section.
package session
