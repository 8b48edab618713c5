// Package client is the transport edge of the transaction core: it owns the
// gRPC channel to a network node, the operator identity used to pay for and
// sign transactions, and the per-network address book and ledger identity.
//
// The execute path fills in operator defaults, freezes, validates entity
// checksums against the client's ledger, and submits with a bounded retry on
// node unavailability. Receipt retrieval is a separate concern and is not
// provided here.
package client
