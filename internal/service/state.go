package service

// State is the lock state of the vault.
type State int

const (
	// Locked is the initial state: no password, no decrypted notes.
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	default:
		return "locked"
	}
}
