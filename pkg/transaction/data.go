package transaction

import (
	"context"
	"fmt"
	"time"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
)

// TransactionData is implemented by every operation payload. It covers the
// four payload-specific concerns: the two wire encodings, checksum
// validation, and service dispatch. Everything else about a transaction is
// payload-kind-agnostic and lives on Transaction.
type TransactionData interface {
	// BuildTransactionData sets the payload's case on the body's data oneof,
	// applying any encode-time defaults for the current attempt. The defaults
	// are computed fresh on every call and never written back to the payload.
	BuildTransactionData(body *services.TransactionBody, chunk *ChunkInfo)

	// BuildScheduledData sets the payload's case on a schedulable body. A
	// scheduled transaction stays payer-agnostic until executed, so no
	// payer-dependent defaults are applied on this path.
	BuildScheduledData(body *services.SchedulableTransactionBody)

	// ValidateChecksums checks every entity identifier in the payload against
	// the target ledger. Unset identifiers trivially validate.
	ValidateChecksums(ledgerID entity.LedgerID) error

	// Execute dispatches an encoded transaction to the one service method
	// that handles this payload kind.
	Execute(ctx context.Context, conn grpc.ClientConnInterface, request *services.Transaction) (*services.TransactionResponse, error)
}

// transactionDataFromProtobuf is the decode side of the payload registry: it
// selects the payload decoder from the body's oneof discriminant. The switch
// is exhaustive over the supported payload kinds; anything else is a decode
// failure.
func transactionDataFromProtobuf(body *services.TransactionBody) (TransactionData, error) {
	switch data := body.GetData().(type) {
	case *services.TransactionBody_ConsensusCreateTopic:
		return topicCreateDataFromProtobuf(data.ConsensusCreateTopic)
	default:
		return nil, fmt.Errorf("unsupported transaction data kind %T", body.GetData())
	}
}

func durationToProtobuf(d time.Duration) *services.Duration {
	return &services.Duration{Seconds: int64(d / time.Second)}
}

func durationFromProtobuf(pb *services.Duration) time.Duration {
	return time.Duration(pb.GetSeconds()) * time.Second
}
