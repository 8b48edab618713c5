package transaction

// freezeState is the two-state mutability machine every transaction owns:
// building, then frozen. The only legal transition is forward. Every setter
// funnels through requireNotFrozen so the guard lives in one place.
type freezeState struct {
	frozen bool
}

// requireNotFrozen panics when the transaction has been frozen. Mutating a
// frozen transaction is a programmer error, not a recoverable condition.
func (s *freezeState) requireNotFrozen() {
	if s.frozen {
		panic("transaction is frozen and can no longer be modified")
	}
}

func (s *freezeState) freeze() {
	s.frozen = true
}

// IsFrozen reports whether the transaction has been frozen.
func (s *freezeState) IsFrozen() bool {
	return s.frozen
}
