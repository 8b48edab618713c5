package transaction

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/hashgraph/hedera-sdk-go/v2/proto/sdk"
	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
	"github.com/hashgraph-online/hiero-tx-go/pkg/keys"
)

const (
	defaultTransactionValidDuration = 120 * time.Second

	// Default fee ceiling of 2 hbar, in tinybars.
	defaultMaxTransactionFee = 200_000_000
)

// Transaction holds one operation payload plus the cross-cutting metadata
// shared by every operation kind. It is single-owner: no internal locking,
// the owner invokes operations in program order.
type Transaction struct {
	freezeState

	data TransactionData

	transactionID            *entity.TransactionID
	nodeAccountIDs           []entity.AccountID
	transactionValidDuration time.Duration
	maxTransactionFee        uint64
	memo                     string

	signers []keys.PrivateKey
	// Signature pairs carried through a byte round trip.
	signaturePairs []*services.SignaturePair
}

func newTransaction(data TransactionData) Transaction {
	return Transaction{
		data:                     data,
		transactionValidDuration: defaultTransactionValidDuration,
		maxTransactionFee:        defaultMaxTransactionFee,
	}
}

// Data returns the operation payload, type-erased.
func (t *Transaction) Data() TransactionData {
	return t.data
}

// SetTransactionID sets the proposed transaction ID, which also names the
// paying account.
func (t *Transaction) SetTransactionID(id entity.TransactionID) *Transaction {
	t.requireNotFrozen()
	t.transactionID = &id
	return t
}

// GetTransactionID returns the proposed transaction ID, if one has been set.
func (t *Transaction) GetTransactionID() (entity.TransactionID, bool) {
	if t.transactionID == nil {
		return entity.TransactionID{}, false
	}
	return *t.transactionID, true
}

// SetNodeAccountIDs sets the accounts of the nodes the transaction may be
// submitted to.
func (t *Transaction) SetNodeAccountIDs(ids []entity.AccountID) *Transaction {
	t.requireNotFrozen()
	t.nodeAccountIDs = append([]entity.AccountID{}, ids...)
	return t
}

// GetNodeAccountIDs returns the configured node accounts.
func (t *Transaction) GetNodeAccountIDs() []entity.AccountID {
	return append([]entity.AccountID{}, t.nodeAccountIDs...)
}

// SetTransactionMemo sets the memo recorded on the transaction itself, as
// opposed to any memo carried inside the payload.
func (t *Transaction) SetTransactionMemo(memo string) *Transaction {
	t.requireNotFrozen()
	t.memo = memo
	return t
}

// GetTransactionMemo returns the transaction-level memo.
func (t *Transaction) GetTransactionMemo() string {
	return t.memo
}

// SetMaxTransactionFee sets the fee ceiling in tinybars.
func (t *Transaction) SetMaxTransactionFee(fee uint64) *Transaction {
	t.requireNotFrozen()
	t.maxTransactionFee = fee
	return t
}

// GetMaxTransactionFee returns the fee ceiling in tinybars.
func (t *Transaction) GetMaxTransactionFee() uint64 {
	return t.maxTransactionFee
}

// SetTransactionValidDuration sets how long past its valid-start the
// transaction stays valid.
func (t *Transaction) SetTransactionValidDuration(d time.Duration) *Transaction {
	t.requireNotFrozen()
	t.transactionValidDuration = d
	return t
}

// GetTransactionValidDuration returns the validity window.
func (t *Transaction) GetTransactionValidDuration() time.Duration {
	return t.transactionValidDuration
}

// Sign registers a key to sign every encoded attempt of the transaction.
// Signing is permitted after freezing; signatures are produced at encode
// time over the exact body bytes sent.
func (t *Transaction) Sign(key keys.PrivateKey) *Transaction {
	t.signers = append(t.signers, key)
	return t
}

// Freeze makes the transaction immutable. A transaction ID must be set
// first, since encode-time defaults derive from the paying account. Freezing
// an already-frozen transaction is a no-op.
func (t *Transaction) Freeze() error {
	if t.IsFrozen() {
		return nil
	}
	if t.transactionID == nil {
		return fmt.Errorf("transaction ID must be set before freezing")
	}
	t.freeze()
	return nil
}

// ValidateChecksums checks every entity identifier in the transaction,
// metadata and payload alike, against the target ledger.
func (t *Transaction) ValidateChecksums(ledgerID entity.LedgerID) error {
	if t.transactionID != nil {
		if err := t.transactionID.ValidateChecksum(ledgerID); err != nil {
			return err
		}
	}
	for _, node := range t.nodeAccountIDs {
		if err := node.ValidateChecksum(ledgerID); err != nil {
			return err
		}
	}
	return t.data.ValidateChecksums(ledgerID)
}

// buildBody assembles the complete transaction body for one attempt against
// the given node. Payload defaults that depend on the paying account are
// injected here, never stored.
func (t *Transaction) buildBody(node entity.AccountID) *services.TransactionBody {
	body := &services.TransactionBody{
		TransactionID:            t.transactionID.ToProtobuf(),
		TransactionFee:           t.maxTransactionFee,
		TransactionValidDuration: durationToProtobuf(t.transactionValidDuration),
		Memo:                     t.memo,
	}
	if node != (entity.AccountID{}) {
		body.NodeAccountID = node.ToProtobuf()
	}
	t.data.BuildTransactionData(body, singleChunk(*t.transactionID, node))
	return body
}

// makeRequest encodes one signed wire transaction for the given node.
func (t *Transaction) makeRequest(node entity.AccountID) (*services.Transaction, error) {
	bodyBytes, err := proto.Marshal(t.buildBody(node))
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction body: %w", err)
	}

	sigMap := &services.SignatureMap{
		SigPair: append([]*services.SignaturePair{}, t.signaturePairs...),
	}
	for _, signer := range t.signers {
		sigMap.SigPair = append(sigMap.SigPair, signer.SignaturePair(bodyBytes))
	}

	signedBytes, err := proto.Marshal(&services.SignedTransaction{
		BodyBytes: bodyBytes,
		SigMap:    sigMap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode signed transaction: %w", err)
	}

	return &services.Transaction{SignedTransactionBytes: signedBytes}, nil
}

// ToBytes serializes the frozen transaction: one signed wire transaction per
// configured node, or a single node-less one when no nodes are set.
func (t *Transaction) ToBytes() ([]byte, error) {
	if !t.IsFrozen() {
		return nil, fmt.Errorf("transaction must be frozen before serialization")
	}

	nodes := t.nodeAccountIDs
	if len(nodes) == 0 {
		nodes = []entity.AccountID{{}}
	}

	list := &sdk.TransactionList{}
	for _, node := range nodes {
		wire, err := t.makeRequest(node)
		if err != nil {
			return nil, err
		}
		list.TransactionList = append(list.TransactionList, wire)
	}

	data, err := proto.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction list: %w", err)
	}
	return data, nil
}

// TransactionFromBytes decodes a serialized transaction of any kind. The
// result is frozen and carries the signatures present in the input.
func TransactionFromBytes(data []byte) (*Transaction, error) {
	list := &sdk.TransactionList{}
	if err := proto.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("failed to decode transaction list: %w", err)
	}
	if len(list.GetTransactionList()) == 0 {
		return nil, fmt.Errorf("transaction list is empty")
	}

	signed := &services.SignedTransaction{}
	if err := proto.Unmarshal(list.GetTransactionList()[0].GetSignedTransactionBytes(), signed); err != nil {
		return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
	}

	body := &services.TransactionBody{}
	if err := proto.Unmarshal(signed.GetBodyBytes(), body); err != nil {
		return nil, fmt.Errorf("failed to decode transaction body: %w", err)
	}

	payload, err := transactionDataFromProtobuf(body)
	if err != nil {
		return nil, err
	}

	tx := newTransaction(payload)
	tx.maxTransactionFee = body.GetTransactionFee()
	tx.memo = body.GetMemo()
	if body.GetTransactionValidDuration() != nil {
		tx.transactionValidDuration = durationFromProtobuf(body.GetTransactionValidDuration())
	}
	// The decoded transaction is frozen, so it must satisfy the same
	// precondition Freeze enforces: encode-time defaults need a payer.
	id, err := entity.TransactionIDFromProtobuf(body.GetTransactionID())
	if err != nil {
		return nil, fmt.Errorf("transaction body: %w", err)
	}
	tx.transactionID = &id
	for _, wire := range list.GetTransactionList() {
		node := &services.SignedTransaction{}
		if err := proto.Unmarshal(wire.GetSignedTransactionBytes(), node); err != nil {
			return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
		}
		nodeBody := &services.TransactionBody{}
		if err := proto.Unmarshal(node.GetBodyBytes(), nodeBody); err != nil {
			return nil, fmt.Errorf("failed to decode transaction body: %w", err)
		}
		if nodeBody.GetNodeAccountID() != nil {
			nodeID, err := entity.AccountIDFromProtobuf(nodeBody.GetNodeAccountID())
			if err != nil {
				return nil, err
			}
			tx.nodeAccountIDs = append(tx.nodeAccountIDs, nodeID)
		}
	}
	tx.signaturePairs = signed.GetSigMap().GetSigPair()

	tx.freeze()
	return &tx, nil
}

// ScheduleBody produces the payer-agnostic schedulable encoding of the
// transaction, used when the operation is deferred for execution by a
// different payer. No operator defaults are injected on this path.
func (t *Transaction) ScheduleBody() *services.SchedulableTransactionBody {
	body := &services.SchedulableTransactionBody{
		TransactionFee: t.maxTransactionFee,
		Memo:           t.memo,
	}
	t.data.BuildScheduledData(body)
	return body
}

// Execute encodes the frozen transaction and dispatches it to the payload's
// service method over the given channel. The raw acknowledgment is returned
// for the caller's receipt layer to interpret.
func (t *Transaction) Execute(ctx context.Context, conn grpc.ClientConnInterface) (*services.TransactionResponse, error) {
	if !t.IsFrozen() {
		return nil, fmt.Errorf("transaction must be frozen before execution")
	}

	node := entity.AccountID{}
	if len(t.nodeAccountIDs) > 0 {
		node = t.nodeAccountIDs[0]
	}

	request, err := t.makeRequest(node)
	if err != nil {
		return nil, err
	}
	return t.data.Execute(ctx, conn, request)
}
