package transaction

import (
	"context"
	"fmt"
	"time"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
	"github.com/hashgraph-online/hiero-tx-go/pkg/keys"
)

const defaultAutoRenewPeriod = 90 * 24 * time.Hour

// TopicCreateTransaction creates a topic to be used for consensus.
//
// If an auto-renew account is specified, that account must also sign the
// transaction. If an admin key is specified, the admin key must sign. On
// success the receipt for the transaction carries the new topic's ID.
type TopicCreateTransaction struct {
	*Transaction
	data *topicCreateTransactionData
}

type topicCreateTransactionData struct {
	topicMemo          string
	adminKey           *keys.PublicKey
	submitKey          *keys.PublicKey
	autoRenewPeriod    *time.Duration
	autoRenewAccountID *entity.AccountID
}

// NewTopicCreateTransaction creates a mutable topic-creation transaction
// with the default auto-renew period of 90 days.
func NewTopicCreateTransaction() *TopicCreateTransaction {
	period := defaultAutoRenewPeriod
	data := &topicCreateTransactionData{autoRenewPeriod: &period}
	tx := newTransaction(data)
	return &TopicCreateTransaction{Transaction: &tx, data: data}
}

// AsTopicCreate returns the typed view of the transaction when its payload
// is a topic creation, for transactions reconstructed from bytes.
func (t *Transaction) AsTopicCreate() (*TopicCreateTransaction, bool) {
	data, ok := t.data.(*topicCreateTransactionData)
	if !ok {
		return nil, false
	}
	return &TopicCreateTransaction{Transaction: t, data: data}, true
}

// GetTopicMemo returns the short, publicly visible memo for the topic.
func (t *TopicCreateTransaction) GetTopicMemo() string {
	return t.data.topicMemo
}

// SetTopicMemo sets the short, publicly visible memo for the topic. No
// uniqueness is guaranteed, and length limits are enforced by the network.
func (t *TopicCreateTransaction) SetTopicMemo(memo string) *TopicCreateTransaction {
	t.requireNotFrozen()
	t.data.topicMemo = memo
	return t
}

// GetAdminKey returns the key controlling future update and delete of the
// topic, if one is set.
func (t *TopicCreateTransaction) GetAdminKey() (keys.PublicKey, bool) {
	if t.data.adminKey == nil {
		return keys.PublicKey{}, false
	}
	return *t.data.adminKey, true
}

// SetAdminKey sets the key controlling future update and delete of the
// topic.
func (t *TopicCreateTransaction) SetAdminKey(key keys.PublicKey) *TopicCreateTransaction {
	t.requireNotFrozen()
	t.data.adminKey = &key
	return t
}

// GetSubmitKey returns the key controlling message submission to the topic,
// if one is set.
func (t *TopicCreateTransaction) GetSubmitKey() (keys.PublicKey, bool) {
	if t.data.submitKey == nil {
		return keys.PublicKey{}, false
	}
	return *t.data.submitKey, true
}

// SetSubmitKey sets the key controlling message submission to the topic.
func (t *TopicCreateTransaction) SetSubmitKey(key keys.PublicKey) *TopicCreateTransaction {
	t.requireNotFrozen()
	t.data.submitKey = &key
	return t
}

// GetAutoRenewPeriod returns the topic's initial lifetime and automatic
// renewal interval, if one is set.
func (t *TopicCreateTransaction) GetAutoRenewPeriod() (time.Duration, bool) {
	if t.data.autoRenewPeriod == nil {
		return 0, false
	}
	return *t.data.autoRenewPeriod, true
}

// SetAutoRenewPeriod sets the topic's initial lifetime and automatic renewal
// interval.
func (t *TopicCreateTransaction) SetAutoRenewPeriod(period time.Duration) *TopicCreateTransaction {
	t.requireNotFrozen()
	t.data.autoRenewPeriod = &period
	return t
}

// GetAutoRenewAccountID returns the account funding automatic renewal of the
// topic, if one is set.
func (t *TopicCreateTransaction) GetAutoRenewAccountID() (entity.AccountID, bool) {
	if t.data.autoRenewAccountID == nil {
		return entity.AccountID{}, false
	}
	return *t.data.autoRenewAccountID, true
}

// SetAutoRenewAccountID sets the account funding automatic renewal of the
// topic. When left unset, the paying account is filled in at encode time.
func (t *TopicCreateTransaction) SetAutoRenewAccountID(id entity.AccountID) *TopicCreateTransaction {
	t.requireNotFrozen()
	t.data.autoRenewAccountID = &id
	return t
}

// SetTransactionID sets the proposed transaction ID.
func (t *TopicCreateTransaction) SetTransactionID(id entity.TransactionID) *TopicCreateTransaction {
	t.Transaction.SetTransactionID(id)
	return t
}

// SetNodeAccountIDs sets the accounts of the nodes the transaction may be
// submitted to.
func (t *TopicCreateTransaction) SetNodeAccountIDs(ids []entity.AccountID) *TopicCreateTransaction {
	t.Transaction.SetNodeAccountIDs(ids)
	return t
}

// SetTransactionMemo sets the memo recorded on the transaction itself.
func (t *TopicCreateTransaction) SetTransactionMemo(memo string) *TopicCreateTransaction {
	t.Transaction.SetTransactionMemo(memo)
	return t
}

// Sign registers a key to sign every encoded attempt of the transaction.
func (t *TopicCreateTransaction) Sign(key keys.PrivateKey) *TopicCreateTransaction {
	t.Transaction.Sign(key)
	return t
}

func (d *topicCreateTransactionData) toProtobuf() *services.ConsensusCreateTopicTransactionBody {
	pb := &services.ConsensusCreateTopicTransactionBody{Memo: d.topicMemo}
	if d.adminKey != nil {
		pb.AdminKey = d.adminKey.ToProtobuf()
	}
	if d.submitKey != nil {
		pb.SubmitKey = d.submitKey.ToProtobuf()
	}
	if d.autoRenewPeriod != nil {
		pb.AutoRenewPeriod = durationToProtobuf(*d.autoRenewPeriod)
	}
	if d.autoRenewAccountID != nil {
		pb.AutoRenewAccount = d.autoRenewAccountID.ToProtobuf()
	}
	return pb
}

func (d *topicCreateTransactionData) BuildTransactionData(body *services.TransactionBody, chunk *ChunkInfo) {
	chunk.AssertSingleTransaction()

	pb := d.toProtobuf()

	// The paying account funds renewal when no account was configured. The
	// fallback is attempt-local: it never touches the in-memory payload.
	if pb.AutoRenewAccount == nil {
		pb.AutoRenewAccount = chunk.CurrentTransactionID.AccountID.ToProtobuf()
	}

	body.Data = &services.TransactionBody_ConsensusCreateTopic{ConsensusCreateTopic: pb}
}

func (d *topicCreateTransactionData) BuildScheduledData(body *services.SchedulableTransactionBody) {
	body.Data = &services.SchedulableTransactionBody_ConsensusCreateTopic{ConsensusCreateTopic: d.toProtobuf()}
}

func (d *topicCreateTransactionData) ValidateChecksums(ledgerID entity.LedgerID) error {
	if d.autoRenewAccountID == nil {
		return nil
	}
	return d.autoRenewAccountID.ValidateChecksum(ledgerID)
}

func (d *topicCreateTransactionData) Execute(ctx context.Context, conn grpc.ClientConnInterface, request *services.Transaction) (*services.TransactionResponse, error) {
	return services.NewConsensusServiceClient(conn).CreateTopic(ctx, request)
}

func topicCreateDataFromProtobuf(pb *services.ConsensusCreateTopicTransactionBody) (*topicCreateTransactionData, error) {
	data := &topicCreateTransactionData{topicMemo: pb.GetMemo()}

	if pb.GetAdminKey() != nil {
		key, err := keys.PublicKeyFromProtobuf(pb.GetAdminKey())
		if err != nil {
			return nil, fmt.Errorf("topic admin key: %w", err)
		}
		data.adminKey = &key
	}
	if pb.GetSubmitKey() != nil {
		key, err := keys.PublicKeyFromProtobuf(pb.GetSubmitKey())
		if err != nil {
			return nil, fmt.Errorf("topic submit key: %w", err)
		}
		data.submitKey = &key
	}
	if pb.GetAutoRenewPeriod() != nil {
		period := durationFromProtobuf(pb.GetAutoRenewPeriod())
		data.autoRenewPeriod = &period
	}
	if pb.GetAutoRenewAccount() != nil {
		account, err := entity.AccountIDFromProtobuf(pb.GetAutoRenewAccount())
		if err != nil {
			return nil, fmt.Errorf("topic auto-renew account: %w", err)
		}
		data.autoRenewAccountID = &account
	}

	return data, nil
}
