// Package keys provides the cryptographic key handles referenced by
// transaction payloads: ed25519 and ECDSA secp256k1 public keys with their
// wire encoding, and the matching private keys used to sign transaction
// bodies.
//
// Key generation and parsing accept the raw hex form as well as the
// DER-prefixed hex form commonly found in operator configuration files.
package keys
