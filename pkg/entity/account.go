package entity

import (
	"fmt"
	"regexp"
	"strconv"

	services "github.com/hashgraph/hedera-sdk-go/v2/proto/services"
)

var accountIDPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([a-z]{5}))?$`)

// AccountID identifies an account on the network. The zero value is the
// account 0.0.0. An AccountID optionally carries the checksum it was parsed
// with; the checksum is not verified until ValidateChecksum is called.
type AccountID struct {
	Shard uint64
	Realm uint64
	Num   uint64

	checksum string
}

// NewAccountID creates an AccountID without a checksum.
func NewAccountID(shard, realm, num uint64) AccountID {
	return AccountID{Shard: shard, Realm: realm, Num: num}
}

// AccountIDFromString parses "shard.realm.num" with an optional "-ccccc"
// checksum suffix.
func AccountIDFromString(s string) (AccountID, error) {
	match := accountIDPattern.FindStringSubmatch(s)
	if match == nil {
		return AccountID{}, fmt.Errorf("invalid account ID %q: expected shard.realm.num", s)
	}

	shard, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account ID %q: %w", s, err)
	}
	realm, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account ID %q: %w", s, err)
	}
	num, err := strconv.ParseUint(match[3], 10, 64)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account ID %q: %w", s, err)
	}

	return AccountID{Shard: shard, Realm: realm, Num: num, checksum: match[4]}, nil
}

func (id AccountID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// StringWithChecksum renders the account ID with the checksum computed for
// the given ledger.
func (id AccountID) StringWithChecksum(ledgerID LedgerID) string {
	address := id.String()
	return address + "-" + checksum(ledgerID, address)
}

// Checksum returns the checksum the ID was parsed with, or "".
func (id AccountID) Checksum() string {
	return id.checksum
}

// ValidateChecksum verifies the embedded checksum against the given ledger.
// An account ID without a checksum trivially validates.
func (id AccountID) ValidateChecksum(ledgerID LedgerID) error {
	if id.checksum == "" {
		return nil
	}
	expected := checksum(ledgerID, id.String())
	if id.checksum != expected {
		return &ErrChecksumMismatch{
			Entity:   id.String(),
			Expected: expected,
			Actual:   id.checksum,
		}
	}
	return nil
}

// ToProtobuf encodes the account ID to its wire representation.
func (id AccountID) ToProtobuf() *services.AccountID {
	return &services.AccountID{
		ShardNum: int64(id.Shard),
		RealmNum: int64(id.Realm),
		Account:  &services.AccountID_AccountNum{AccountNum: int64(id.Num)},
	}
}

// AccountIDFromProtobuf decodes an account ID from its wire representation.
// Alias accounts are not handled by this core and fail to decode.
func AccountIDFromProtobuf(pb *services.AccountID) (AccountID, error) {
	if pb == nil {
		return AccountID{}, fmt.Errorf("account ID is missing")
	}
	if _, ok := pb.GetAccount().(*services.AccountID_Alias); ok {
		return AccountID{}, fmt.Errorf("account aliases are not supported")
	}
	if pb.GetShardNum() < 0 || pb.GetRealmNum() < 0 || pb.GetAccountNum() < 0 {
		return AccountID{}, fmt.Errorf(
			"invalid account ID %d.%d.%d: negative component",
			pb.GetShardNum(), pb.GetRealmNum(), pb.GetAccountNum(),
		)
	}
	return AccountID{
		Shard: uint64(pb.GetShardNum()),
		Realm: uint64(pb.GetRealmNum()),
		Num:   uint64(pb.GetAccountNum()),
	}, nil
}
