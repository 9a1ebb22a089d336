package conversation

import "sync"

// Phase tracks how free text from a user is interpreted.
type Phase int

const (
	// PhaseAwaitingGroup means the next text is treated as a group identifier.
	PhaseAwaitingGroup Phase = iota
	// PhaseReady means a group is stored and menu requests can be served.
	PhaseReady
)

// UserState is the per-user conversation state. Group holds the display
// form of the last accepted identifier; it survives a change-group request
// until a valid replacement is stored.
type UserState struct {
	Phase Phase
	Group string
}

// Store keeps per-user state in memory. All mutation goes through its
// methods; state does not survive a process restart.
type Store struct {
	mu    sync.RWMutex
	users map[int64]UserState
}

// NewStore returns an empty state store.
func NewStore() *Store {
	return &Store{users: make(map[int64]UserState)}
}

// Get returns the state for the user. Unknown users report a zero state
// with ok=false; the zero Phase is PhaseAwaitingGroup.
func (s *Store) Get(userID int64) (UserState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.users[userID]
	return st, ok
}

// SetAwaiting forces the user back to group entry, retaining any stored
// group until it is replaced.
func (s *Store) SetAwaiting(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.users[userID]
	st.Phase = PhaseAwaitingGroup
	s.users[userID] = st
}

// SetGroup stores a validated group and marks the user ready.
func (s *Store) SetGroup(userID int64, group string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = UserState{Phase: PhaseReady, Group: group}
}

// Len reports the number of tracked users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
