package entity

import "fmt"

// ErrChecksumMismatch reports that an identifier's embedded checksum does not
// match the checksum computed for the target ledger. It is distinct from a
// decode failure: the identifier itself is well formed.
type ErrChecksumMismatch struct {
	Entity   string
	Expected string
	Actual   string
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf(
		"checksum mismatch for %s: expected %q, got %q",
		e.Entity, e.Expected, e.Actual,
	)
}

const (
	checksumWeight = 31
	checksumP3     = 26 * 26 * 26
	checksumP5     = 26 * 26 * 26 * 26 * 26
	checksumM      = 1_000_003
)

// checksum computes the five-letter HIP-15 checksum for an entity address in
// "shard.realm.num" form against the given ledger ID.
func checksum(ledgerID LedgerID, address string) string {
	// Digits of the address, with '.' mapped to 10.
	digits := make([]int64, 0, len(address))
	for _, c := range address {
		if c == '.' {
			digits = append(digits, 10)
		} else {
			digits = append(digits, int64(c-'0'))
		}
	}

	var s0, s1, s int64 // sums of even/odd digits mod 11, weighted sum mod p3
	for i, d := range digits {
		s = (checksumWeight*s + d) % checksumP3
		if i%2 == 0 {
			s0 = (s0 + d) % 11
		} else {
			s1 = (s1 + d) % 11
		}
	}

	// Hash of the ledger ID followed by six zero bytes.
	var sh int64
	for _, b := range append(append([]byte{}, ledgerID...), 0, 0, 0, 0, 0, 0) {
		sh = (checksumWeight*sh + int64(b)) % checksumP5
	}

	c := ((int64(len(digits)%5)*11+s0)*11+s1)*checksumP3 + s + sh
	c = (c % checksumP5) * checksumM % checksumP5

	out := make([]byte, 5)
	for i := 4; i >= 0; i-- {
		out[i] = byte('a' + c%26)
		c /= 26
	}
	return string(out)
}
