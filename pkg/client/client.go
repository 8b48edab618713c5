package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cenkalti/backoff/v4"
	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
	"github.com/hashgraph-online/hiero-tx-go/pkg/keys"
	"github.com/hashgraph-online/hiero-tx-go/pkg/transaction"
)

const maxSubmitAttempts = 4

// Client owns a gRPC channel to one consensus node plus the operator
// identity used to pay for and sign transactions.
type Client struct {
	network       Network
	conn          *grpc.ClientConn
	nodeAccountID entity.AccountID

	operatorID  entity.AccountID
	operatorKey keys.PrivateKey

	log zerolog.Logger
}

// NewClient opens a client for the configured network and operator.
func NewClient(config Config) (*Client, error) {
	network, err := NetworkForName(config.Network)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.OperatorAccountID) == "" {
		return nil, fmt.Errorf("operator account ID is required")
	}
	if strings.TrimSpace(config.OperatorPrivateKey) == "" {
		return nil, fmt.Errorf("operator private key is required")
	}

	operatorID, err := entity.AccountIDFromString(strings.TrimSpace(config.OperatorAccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := keys.PrivateKeyFromString(config.OperatorPrivateKey)
	if err != nil {
		return nil, err
	}

	endpoint, nodeAccountID := network.pickNode()
	// The consensus node plane speaks plaintext gRPC.
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to open channel to %s: %w", endpoint, err)
	}

	log := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("network", network.Name).
		Logger()

	return &Client{
		network:       network,
		conn:          conn,
		nodeAccountID: nodeAccountID,
		operatorID:    operatorID,
		operatorKey:   operatorKey,
		log:           log,
	}, nil
}

// NewClientFromEnv opens a client configured from the environment.
func NewClientFromEnv() (*Client, error) {
	config, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClient(config)
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.log = log
}

// OperatorAccountID returns the paying account.
func (c *Client) OperatorAccountID() entity.AccountID {
	return c.operatorID
}

// LedgerID returns the identity of the network the client talks to.
func (c *Client) LedgerID() entity.LedgerID {
	return c.network.LedgerID
}

// Close releases the gRPC channel.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Execute submits a transaction. A mutable transaction is completed with
// operator defaults, frozen, and signed by the operator first; every
// transaction is checksum-validated against the client's ledger before send.
// Submission retries on node unavailability with exponential backoff; all
// other failures are returned as-is.
func (c *Client) Execute(ctx context.Context, tx *transaction.Transaction) (*services.TransactionResponse, error) {
	if !tx.IsFrozen() {
		if _, ok := tx.GetTransactionID(); !ok {
			tx.SetTransactionID(entity.TransactionIDGenerate(c.operatorID))
		}
		if len(tx.GetNodeAccountIDs()) == 0 {
			tx.SetNodeAccountIDs([]entity.AccountID{c.nodeAccountID})
		}
		if err := tx.Freeze(); err != nil {
			return nil, err
		}
		tx.Sign(c.operatorKey)
	}

	if err := tx.ValidateChecksums(c.network.LedgerID); err != nil {
		return nil, err
	}

	id, _ := tx.GetTransactionID()
	log := c.log.With().Str("transaction_id", id.String()).Logger()

	var response *services.TransactionResponse
	submit := func() error {
		resp, err := tx.Execute(ctx, c.conn)
		if err != nil {
			if status.Code(err) == codes.Unavailable {
				log.Debug().Err(err).Msg("node unavailable, retrying")
				return err
			}
			return backoff.Permanent(err)
		}
		response = resp
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSubmitAttempts), ctx)
	if err := backoff.Retry(submit, policy); err != nil {
		log.Error().Err(err).Msg("transaction submission failed")
		return nil, err
	}

	log.Info().
		Stringer("precheck", response.GetNodeTransactionPrecheckCode()).
		Msg("transaction submitted")
	return response, nil
}
