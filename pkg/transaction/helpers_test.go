package transaction

import (
	"testing"
	"time"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"google.golang.org/protobuf/proto"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
	"github.com/hashgraph-online/hiero-tx-go/pkg/keys"
)

const testSeedHex = "db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10"

var (
	testPayerAccountID     = entity.NewAccountID(0, 0, 5006)
	testNodeAccountID      = entity.NewAccountID(0, 0, 5005)
	testAutoRenewAccountID = entity.NewAccountID(0, 0, 5007)
	testAutoRenewPeriod    = 24 * time.Hour
	testValidStart         = time.Unix(1554158542, 0).UTC()
)

func testKey(t *testing.T) keys.PublicKey {
	t.Helper()
	private, err := keys.PrivateKeyFromStringEd25519(testSeedHex)
	if err != nil {
		t.Fatalf("failed to parse test key: %v", err)
	}
	return private.PublicKey()
}

func testTransactionID() entity.TransactionID {
	return entity.NewTransactionID(testPayerAccountID, testValidStart)
}

func makeTopicCreateTransaction(t *testing.T) *TopicCreateTransaction {
	t.Helper()

	tx := NewTopicCreateTransaction().
		SetTransactionID(testTransactionID()).
		SetNodeAccountIDs([]entity.AccountID{testNodeAccountID}).
		SetSubmitKey(testKey(t)).
		SetAdminKey(testKey(t)).
		SetAutoRenewAccountID(testAutoRenewAccountID).
		SetAutoRenewPeriod(testAutoRenewPeriod)

	if err := tx.Freeze(); err != nil {
		t.Fatalf("freeze failed: %v", err)
	}
	return tx
}

// topicCreateBody extracts the payload case from a built transaction body.
func topicCreateBody(t *testing.T, tx *Transaction, node entity.AccountID) *services.ConsensusCreateTopicTransactionBody {
	t.Helper()
	data, ok := tx.buildBody(node).GetData().(*services.TransactionBody_ConsensusCreateTopic)
	if !ok {
		t.Fatalf("expected a topic-create body")
	}
	return data.ConsensusCreateTopic
}

func expectFrozenPanic(t *testing.T, mutate func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when mutating a frozen transaction")
		}
	}()
	mutate()
}

func protoEqual(t *testing.T, want, got proto.Message) {
	t.Helper()
	if !proto.Equal(want, got) {
		t.Fatalf("wire message mismatch:\nwant: %v\ngot:  %v", want, got)
	}
}
