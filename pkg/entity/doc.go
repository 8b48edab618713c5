// Package entity provides the identifier and value types shared by every
// transaction kind: account identifiers, transaction identifiers, and the
// ledger identity of a deployed network.
//
// Entity identifiers may carry an optional five-letter checksum bound to a
// specific ledger (for example "0.0.123-vfmkw" on mainnet). Checksums are
// never verified while an identifier is being parsed or set; verification
// happens on demand through ValidateChecksum, typically right before a
// transaction is sent.
package entity
