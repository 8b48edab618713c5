// Package transaction implements the construction, serialization, and
// dispatch core shared by every operation kind on the network.
//
// A Transaction starts out mutable, is configured through chainable setters,
// and is locked by Freeze exactly once. A frozen transaction can be encoded
// to its wire form, serialized to bytes, checksum-validated against a ledger,
// and executed any number of times; mutating it panics. Decoding bytes back
// goes through a closed registry over the transaction-body oneof, so a
// serialized transaction of any kind can be reconstructed without knowing its
// kind ahead of time.
//
// Building, freezing, and encoding are pure and synchronous. Execute is the
// only operation that performs network I/O.
package transaction
