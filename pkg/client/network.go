package client

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashgraph-online/hiero-tx-go/pkg/entity"
)

const (
	NetworkMainnet    = "mainnet"
	NetworkTestnet    = "testnet"
	NetworkPreviewnet = "previewnet"
)

// Network describes one deployed network instance: its ledger identity and
// the consensus-node address book.
type Network struct {
	Name     string
	LedgerID entity.LedgerID

	// Nodes maps a node's gRPC endpoint to its account ID.
	Nodes map[string]entity.AccountID
}

// NormalizeNetwork canonicalizes a network name, defaulting to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkPreviewnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// NetworkForName returns the address book and ledger identity for a
// well-known network.
func NetworkForName(name string) (Network, error) {
	normalized, err := NormalizeNetwork(name)
	if err != nil {
		return Network{}, err
	}

	switch normalized {
	case NetworkMainnet:
		return Network{
			Name:     NetworkMainnet,
			LedgerID: entity.LedgerIDMainnet,
			Nodes: map[string]entity.AccountID{
				"35.237.200.180:50211": entity.NewAccountID(0, 0, 3),
				"35.186.191.247:50211": entity.NewAccountID(0, 0, 4),
				"35.192.2.25:50211":    entity.NewAccountID(0, 0, 5),
				"35.199.161.108:50211": entity.NewAccountID(0, 0, 6),
			},
		}, nil
	case NetworkPreviewnet:
		return Network{
			Name:     NetworkPreviewnet,
			LedgerID: entity.LedgerIDPreviewnet,
			Nodes: map[string]entity.AccountID{
				"0.previewnet.hedera.com:50211": entity.NewAccountID(0, 0, 3),
				"1.previewnet.hedera.com:50211": entity.NewAccountID(0, 0, 4),
				"2.previewnet.hedera.com:50211": entity.NewAccountID(0, 0, 5),
			},
		}, nil
	default:
		return Network{
			Name:     NetworkTestnet,
			LedgerID: entity.LedgerIDTestnet,
			Nodes: map[string]entity.AccountID{
				"0.testnet.hedera.com:50211": entity.NewAccountID(0, 0, 3),
				"1.testnet.hedera.com:50211": entity.NewAccountID(0, 0, 4),
				"2.testnet.hedera.com:50211": entity.NewAccountID(0, 0, 5),
				"3.testnet.hedera.com:50211": entity.NewAccountID(0, 0, 6),
			},
		}, nil
	}
}

// pickNode selects one endpoint from the address book deterministically.
func (n Network) pickNode() (string, entity.AccountID) {
	endpoints := make([]string, 0, len(n.Nodes))
	for endpoint := range n.Nodes {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)
	if len(endpoints) == 0 {
		return "", entity.AccountID{}
	}
	return endpoints[0], n.Nodes[endpoints[0]]
}
