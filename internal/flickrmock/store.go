package flickrmock

import (
	"fmt"
	"sync"
)

// Approval records a user's consent for one request token. Single use: the
// access token exchange consumes it.
type Approval struct {
	Verifier string
	Perms    string
}

type Store struct {
	approvals map[string]Approval
	mu        sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		approvals: make(map[string]Approval),
	}
}

func (s *Store) GetApproval(token string) (Approval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	approval, ok := s.approvals[token]
	if !ok {
		return Approval{}, fmt.Errorf("no approval for token")
	}
	return approval, nil
}

func (s *Store) SetApproval(token string, a Approval) {
	s.mu.Lock()
	s.approvals[token] = a
	s.mu.Unlock()
}

func (s *Store) DeleteApproval(token string) {
	s.mu.Lock()
	delete(s.approvals, token)
	s.mu.Unlock()
}
