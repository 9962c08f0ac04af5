package core

import "sync"

// Mode says which flow, if any, is open for a user.
type Mode int

const (
	ModeIdle Mode = iota
	ModeBooking
	ModeCourtQuery
)

// bookingStep is the cursor over the ordered booking fields.  Fields are
// filled strictly in this order, one message per field.
type bookingStep int

const (
	stepName bookingStep = iota
	stepSurname
	stepDate
	stepTime
	stepContact
)

// BookingDraft accumulates the wizard answers.  Values are kept verbatim.
type BookingDraft struct {
	Name    string
	Surname string
	Date    string
	Time    string
	Contact string

	step bookingStep
}

// Session is the per-user transient flow state.  It lives only in memory
// and is removed as soon as the flow it tracks completes; abandoned
// sessions persist until process restart.
type Session struct {
	Mode  Mode
	Draft BookingDraft
}

// SessionStore keeps per-user sessions under per-key mutual exclusion.
// Acquire serializes message handling for one user without blocking other
// users; Get/Put/Remove must be called with that user's lock held.
type SessionStore interface {
	Acquire(userID int64) (release func())
	Get(userID int64) (*Session, bool)
	Put(userID int64, s *Session)
	Remove(userID int64)
}

// MemoryStore is the in-process SessionStore.  A small global mutex guards
// the two maps; the per-user mutexes are held across whole message handling
// turns, including blocking collaborator calls.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
}

// NewMemoryStore constructs an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Acquire locks the per-user mutex, creating it on first use, and returns
// the matching unlock.  User mutexes are never deleted; the set of users is
// bounded by whoever has ever messaged the process.
func (s *MemoryStore) Acquire(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *MemoryStore) Get(userID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *MemoryStore) Put(userID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

func (s *MemoryStore) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
