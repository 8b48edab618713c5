// Package hierotx is the transaction construction and serialization core of
// a Go client for a Hedera-style consensus network. It provides the typed
// transaction builders, the freeze state machine, the protobuf wire codec,
// entity-checksum validation, and the per-operation gRPC dispatch that every
// operation kind shares.
//
// # Packages
//
//   - pkg/entity: account, transaction, and ledger identifiers with HIP-15
//     checksum validation
//   - pkg/keys: ed25519 and ECDSA secp256k1 key handles and signing
//   - pkg/transaction: the generic transaction wrapper, the topic-creation
//     operation, byte serialization, and execution dispatch
//   - pkg/client: operator configuration, network address books, and the
//     gRPC submission path
//
// # Getting Started
//
// Build and submit a topic-creation transaction:
//
//	c, err := client.NewClientFromEnv()
//
//	tx := transaction.NewTopicCreateTransaction().
//		SetTopicMemo("my topic").
//		SetAdminKey(adminKey.PublicKey())
//
//	response, err := c.Execute(ctx, tx.Transaction)
//
// Receipt retrieval and higher-level standards live outside this module.
//
// # Installation
//
//	go get github.com/hashgraph-online/hiero-tx-go@latest
package hierotx
