package transaction

import (
	"fmt"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
)

// ChunkInfo describes the position of one wire transaction within a logical
// operation, for operation kinds that may split a large payload across
// several wire transactions. Single-shot kinds always see one chunk.
type ChunkInfo struct {
	Current int
	Total   int

	InitialTransactionID entity.TransactionID
	CurrentTransactionID entity.TransactionID
	NodeAccountID        entity.AccountID
}

func singleChunk(id entity.TransactionID, node entity.AccountID) *ChunkInfo {
	return &ChunkInfo{
		Current:              0,
		Total:                1,
		InitialTransactionID: id,
		CurrentTransactionID: id,
		NodeAccountID:        node,
	}
}

// AssertSingleTransaction panics when the chunk metadata describes more than
// one wire transaction. Payload kinds that do not support chunking call this
// before encoding; hitting it means the transaction was misconfigured.
func (c *ChunkInfo) AssertSingleTransaction() {
	if c.Total != 1 {
		panic(fmt.Sprintf("transaction has %d chunks but the payload kind supports exactly one", c.Total))
	}
}
