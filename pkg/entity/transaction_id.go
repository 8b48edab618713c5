package entity

import (
	"fmt"
	"time"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
)

// TransactionID identifies a transaction: the paying account plus the instant
// from which the transaction becomes valid.
type TransactionID struct {
	AccountID  AccountID
	ValidStart time.Time
	Scheduled  bool
	Nonce      int32
}

// TransactionIDGenerate creates a transaction ID for the given payer with a
// valid-start of now, backdated slightly to absorb clock drift between the
// client and the network.
func TransactionIDGenerate(payer AccountID) TransactionID {
	return TransactionID{
		AccountID:  payer,
		ValidStart: time.Now().Add(-10 * time.Second),
	}
}

// NewTransactionID creates a transaction ID with an explicit valid-start.
func NewTransactionID(payer AccountID, validStart time.Time) TransactionID {
	return TransactionID{AccountID: payer, ValidStart: validStart}
}

func (id TransactionID) String() string {
	return fmt.Sprintf("%s@%d.%d", id.AccountID, id.ValidStart.Unix(), id.ValidStart.Nanosecond())
}

// ValidateChecksum verifies the payer account's checksum against the ledger.
func (id TransactionID) ValidateChecksum(ledgerID LedgerID) error {
	return id.AccountID.ValidateChecksum(ledgerID)
}

// ToProtobuf encodes the transaction ID to its wire representation.
func (id TransactionID) ToProtobuf() *services.TransactionID {
	return &services.TransactionID{
		TransactionValidStart: &services.Timestamp{
			Seconds: id.ValidStart.Unix(),
			Nanos:   int32(id.ValidStart.Nanosecond()),
		},
		AccountID: id.AccountID.ToProtobuf(),
		Scheduled: id.Scheduled,
		Nonce:     id.Nonce,
	}
}

// TransactionIDFromProtobuf decodes a transaction ID from its wire
// representation.
func TransactionIDFromProtobuf(pb *services.TransactionID) (TransactionID, error) {
	if pb == nil {
		return TransactionID{}, fmt.Errorf("transaction ID is missing")
	}

	account, err := AccountIDFromProtobuf(pb.GetAccountID())
	if err != nil {
		return TransactionID{}, fmt.Errorf("transaction ID payer: %w", err)
	}

	validStart := time.Time{}
	if start := pb.GetTransactionValidStart(); start != nil {
		validStart = time.Unix(start.GetSeconds(), int64(start.GetNanos())).UTC()
	}

	return TransactionID{
		AccountID:  account,
		ValidStart: validStart,
		Scheduled:  pb.GetScheduled(),
		Nonce:      pb.GetNonce(),
	}, nil
}
