package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"golang.org/x/crypto/sha3"
)

const (
	derPrefixPrivateEd25519 = "302e020100300506032b657004220420"
	derPrefixPrivateECDSA   = "3030020100300706052b8104000a04220420"
)

// PrivateKey is an ed25519 or ECDSA secp256k1 signing key.
type PrivateKey struct {
	ed25519Key ed25519.PrivateKey
	ecdsaKey   *btcec.PrivateKey
}

// GeneratePrivateKey generates a new ed25519 private key.
func GeneratePrivateKey() (PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}
	return PrivateKey{ed25519Key: key}, nil
}

// PrivateKeyFromStringEd25519 parses a hex-encoded ed25519 seed, with or
// without the DER prefix.
func PrivateKeyFromStringEd25519(s string) (PrivateKey, error) {
	candidate := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), derPrefixPrivateEd25519)

	seed, err := hex.DecodeString(candidate)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("invalid ed25519 private key hex: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return PrivateKey{}, fmt.Errorf("invalid ed25519 private key length: %d", len(seed))
	}
	return PrivateKey{ed25519Key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromStringECDSA parses a hex-encoded secp256k1 scalar, with or
// without the DER prefix.
func PrivateKeyFromStringECDSA(s string) (PrivateKey, error) {
	candidate := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), derPrefixPrivateECDSA)

	data, err := hex.DecodeString(candidate)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("invalid ECDSA private key hex: %w", err)
	}
	if len(data) != 32 {
		return PrivateKey{}, fmt.Errorf("invalid ECDSA private key length: %d", len(data))
	}
	key, _ := btcec.PrivKeyFromBytes(data)
	return PrivateKey{ecdsaKey: key}, nil
}

// PrivateKeyFromString parses a private key, trying ed25519 first and ECDSA
// second.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	key, edErr := PrivateKeyFromStringEd25519(s)
	if edErr == nil {
		return key, nil
	}
	key, ecdsaErr := PrivateKeyFromStringECDSA(s)
	if ecdsaErr == nil {
		return key, nil
	}
	return PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ed25519 (%v) or ECDSA (%v)",
		edErr, ecdsaErr,
	)
}

// PublicKey derives the public half of the key.
func (sk PrivateKey) PublicKey() PublicKey {
	if sk.ed25519Key != nil {
		return PublicKey{ed25519Key: sk.ed25519Key.Public().(ed25519.PublicKey)}
	}
	if sk.ecdsaKey != nil {
		return PublicKey{ecdsaKey: sk.ecdsaKey.PubKey()}
	}
	return PublicKey{}
}

// Sign signs the given message. Ed25519 signs the message directly; ECDSA
// signs its keccak-256 digest and returns the 64-byte r||s form.
func (sk PrivateKey) Sign(message []byte) []byte {
	if sk.ed25519Key != nil {
		return ed25519.Sign(sk.ed25519Key, message)
	}

	digest := sha3.NewLegacyKeccak256()
	digest.Write(message)
	compact := btcecdsa.SignCompact(sk.ecdsaKey, digest.Sum(nil), true)
	// Drop the recovery byte.
	return compact[1:]
}

// SignaturePair signs the message and packages the signature with the full
// public key as prefix, ready for a transaction's signature map.
func (sk PrivateKey) SignaturePair(message []byte) *services.SignaturePair {
	signature := sk.Sign(message)
	public := sk.PublicKey()

	pair := &services.SignaturePair{PubKeyPrefix: public.Bytes()}
	if public.IsEd25519() {
		pair.Signature = &services.SignaturePair_Ed25519{Ed25519: signature}
	} else {
		pair.Signature = &services.SignaturePair_ECDSASecp256K1{ECDSASecp256K1: signature}
	}
	return pair
}
