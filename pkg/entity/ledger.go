package entity

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// LedgerID identifies a deployed network instance. Entity checksums are
// computed against a ledger ID, so an identifier checksummed for one network
// never validates against another.
type LedgerID []byte

var (
	LedgerIDMainnet    = LedgerID{0x00}
	LedgerIDTestnet    = LedgerID{0x01}
	LedgerIDPreviewnet = LedgerID{0x02}
)

// LedgerIDFromString parses a well-known network name or a hex-encoded
// ledger ID.
func LedgerIDFromString(s string) (LedgerID, error) {
	switch s {
	case "mainnet":
		return LedgerIDMainnet, nil
	case "testnet":
		return LedgerIDTestnet, nil
	case "previewnet":
		return LedgerIDPreviewnet, nil
	}

	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger ID %q: %w", s, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("invalid ledger ID %q: empty", s)
	}
	return LedgerID(decoded), nil
}

func (l LedgerID) String() string {
	switch {
	case bytes.Equal(l, LedgerIDMainnet):
		return "mainnet"
	case bytes.Equal(l, LedgerIDTestnet):
		return "testnet"
	case bytes.Equal(l, LedgerIDPreviewnet):
		return "previewnet"
	}
	return hex.EncodeToString(l)
}
