package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
)

// DER prefixes produced by the standard key serialization of other SDKs.
const (
	derPrefixPublicEd25519 = "302a300506032b6570032100"
	derPrefixPublicECDSA   = "302d300706052b8104000a032200"
)

// PublicKey is an immutable handle to an ed25519 or ECDSA secp256k1 public
// key. The zero value is not a valid key.
type PublicKey struct {
	ed25519Key ed25519.PublicKey
	ecdsaKey   *btcec.PublicKey
}

// PublicKeyFromBytesEd25519 creates a public key from 32 raw ed25519 bytes.
func PublicKeyFromBytesEd25519(data []byte) (PublicKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return PublicKey{}, fmt.Errorf("invalid ed25519 public key length: %d", len(data))
	}
	return PublicKey{ed25519Key: append(ed25519.PublicKey{}, data...)}, nil
}

// PublicKeyFromBytesECDSA creates a public key from a compressed 33-byte
// secp256k1 point.
func PublicKeyFromBytesECDSA(data []byte) (PublicKey, error) {
	key, err := btcec.ParsePubKey(data)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid ECDSA public key: %w", err)
	}
	return PublicKey{ecdsaKey: key}, nil
}

// PublicKeyFromString parses a hex-encoded public key, with or without the
// DER prefix, trying ed25519 first and ECDSA second.
func PublicKeyFromString(s string) (PublicKey, error) {
	candidate := strings.ToLower(strings.TrimSpace(s))
	candidate = strings.TrimPrefix(candidate, derPrefixPublicEd25519)
	candidate = strings.TrimPrefix(candidate, derPrefixPublicECDSA)

	data, err := hex.DecodeString(candidate)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key hex: %w", err)
	}

	switch len(data) {
	case ed25519.PublicKeySize:
		return PublicKeyFromBytesEd25519(data)
	case btcec.PubKeyBytesLenCompressed:
		return PublicKeyFromBytesECDSA(data)
	default:
		return PublicKey{}, fmt.Errorf("invalid public key length: %d", len(data))
	}
}

// IsEd25519 reports whether the key is an ed25519 key.
func (pk PublicKey) IsEd25519() bool {
	return pk.ed25519Key != nil
}

// Bytes returns the raw key bytes: 32 bytes for ed25519, the 33-byte
// compressed point for ECDSA.
func (pk PublicKey) Bytes() []byte {
	if pk.ed25519Key != nil {
		return append([]byte{}, pk.ed25519Key...)
	}
	if pk.ecdsaKey != nil {
		return pk.ecdsaKey.SerializeCompressed()
	}
	return nil
}

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk.Bytes())
}

// Equal reports whether two public keys hold the same key material.
func (pk PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(pk.Bytes(), other.Bytes())
}

// ToProtobuf encodes the public key to its wire representation.
func (pk PublicKey) ToProtobuf() *services.Key {
	if pk.ed25519Key != nil {
		return &services.Key{Key: &services.Key_Ed25519{Ed25519: pk.Bytes()}}
	}
	return &services.Key{Key: &services.Key_ECDSASecp256K1{ECDSASecp256K1: pk.Bytes()}}
}

// PublicKeyFromProtobuf decodes a public key from its wire representation.
// Malformed key bytes and unsupported key kinds are decode failures.
func PublicKeyFromProtobuf(pb *services.Key) (PublicKey, error) {
	if pb == nil {
		return PublicKey{}, fmt.Errorf("key is missing")
	}

	switch key := pb.GetKey().(type) {
	case *services.Key_Ed25519:
		return PublicKeyFromBytesEd25519(key.Ed25519)
	case *services.Key_ECDSASecp256K1:
		return PublicKeyFromBytesECDSA(key.ECDSASecp256K1)
	default:
		return PublicKey{}, fmt.Errorf("unsupported key kind %T", pb.GetKey())
	}
}
