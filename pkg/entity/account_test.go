package entity

import (
	"errors"
	"testing"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
)

func TestAccountIDFromString(t *testing.T) {
	id, err := AccountIDFromString("0.0.5007")
	if err != nil {
		t.Fatalf("AccountIDFromString failed: %v", err)
	}
	if id.Shard != 0 || id.Realm != 0 || id.Num != 5007 {
		t.Fatalf("unexpected account ID: %+v", id)
	}
	if id.Checksum() != "" {
		t.Fatalf("expected no checksum, got %q", id.Checksum())
	}
	if id.String() != "0.0.5007" {
		t.Fatalf("unexpected string form: %s", id.String())
	}
}

func TestAccountIDFromStringWithChecksum(t *testing.T) {
	id, err := AccountIDFromString("0.0.123-vfmkw")
	if err != nil {
		t.Fatalf("AccountIDFromString failed: %v", err)
	}
	if id.Checksum() != "vfmkw" {
		t.Fatalf("unexpected checksum: %q", id.Checksum())
	}
	if id.String() != "0.0.123" {
		t.Fatalf("checksum must not appear in the plain string form: %s", id.String())
	}
}

func TestAccountIDFromStringRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "0.0", "0.0.x", "0.0.123-VFMKW", "0.0.123-vfmk"} {
		if _, err := AccountIDFromString(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestAccountIDChecksumKnownVector(t *testing.T) {
	// HIP-15 reference vector: account 0.0.123 on mainnet.
	id := NewAccountID(0, 0, 123)
	if got := id.StringWithChecksum(LedgerIDMainnet); got != "0.0.123-vfmkw" {
		t.Fatalf("unexpected checksummed form: %s", got)
	}
}

func TestValidateChecksum(t *testing.T) {
	id, err := AccountIDFromString("0.0.123-vfmkw")
	if err != nil {
		t.Fatalf("AccountIDFromString failed: %v", err)
	}

	if err := id.ValidateChecksum(LedgerIDMainnet); err != nil {
		t.Fatalf("expected mainnet checksum to validate: %v", err)
	}

	err = id.ValidateChecksum(LedgerIDTestnet)
	if err == nil {
		t.Fatalf("expected checksum mismatch on testnet")
	}
	var mismatch *ErrChecksumMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ErrChecksumMismatch, got %T", err)
	}
	if mismatch.Actual != "vfmkw" {
		t.Fatalf("unexpected mismatch detail: %+v", mismatch)
	}
}

func TestValidateChecksumAbsentTriviallyPasses(t *testing.T) {
	id := NewAccountID(0, 0, 123)
	if err := id.ValidateChecksum(LedgerIDMainnet); err != nil {
		t.Fatalf("account without checksum must validate: %v", err)
	}
}

func TestValidateChecksumSelfConsistentAcrossNetworks(t *testing.T) {
	for _, ledgerID := range []LedgerID{LedgerIDMainnet, LedgerIDTestnet, LedgerIDPreviewnet} {
		id, err := AccountIDFromString(NewAccountID(1, 2, 3).StringWithChecksum(ledgerID))
		if err != nil {
			t.Fatalf("AccountIDFromString failed: %v", err)
		}
		if err := id.ValidateChecksum(ledgerID); err != nil {
			t.Fatalf("round-tripped checksum must validate on %s: %v", ledgerID, err)
		}
	}
}

func TestAccountIDProtobufRoundTrip(t *testing.T) {
	id := NewAccountID(1, 2, 3)
	decoded, err := AccountIDFromProtobuf(id.ToProtobuf())
	if err != nil {
		t.Fatalf("AccountIDFromProtobuf failed: %v", err)
	}
	if decoded != id {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, id)
	}
}

func TestAccountIDFromProtobufMissing(t *testing.T) {
	if _, err := AccountIDFromProtobuf(nil); err == nil {
		t.Fatalf("expected error for missing account ID")
	}
}

func TestAccountIDFromProtobufRejectsNegativeComponents(t *testing.T) {
	for _, pb := range []*services.AccountID{
		{ShardNum: -1},
		{RealmNum: -2},
		{Account: &services.AccountID_AccountNum{AccountNum: -3}},
	} {
		if _, err := AccountIDFromProtobuf(pb); err == nil {
			t.Fatalf("expected decode failure for %v", pb)
		}
	}
}
