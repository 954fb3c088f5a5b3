package store

import (
	"encoding/json"
	"sync"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// AuthStorageKey is the namespace the role flag is persisted under,
// independent of the expense state.
const AuthStorageKey = "expense-auth-storage"

// RoleStore holds the single global admin/user flag. It only answers
// questions; blocking non-admin mutations is the caller's job.
type RoleStore struct {
	mu   sync.RWMutex
	role domain.Role
	repo domain.SnapshotRepository
}

// NewRoleStore loads the persisted role, defaulting to admin (demo default).
func NewRoleStore(repo domain.SnapshotRepository) *RoleStore {
	s := &RoleStore{repo: repo, role: domain.RoleAdmin}

	data, err := repo.Load(AuthStorageKey)
	switch {
	case err == domain.ErrSnapshotNotFound:
		// first run
	case err != nil:
		log.Warn().Err(err).Msg("Failed to load auth snapshot, defaulting to admin")
	default:
		var auth domain.AuthState
		if err := json.Unmarshal(data, &auth); err != nil || (auth.Role != domain.RoleAdmin && auth.Role != domain.RoleUser) {
			log.Warn().Err(err).Msg("Corrupt auth snapshot, defaulting to admin")
		} else {
			s.role = auth.Role
		}
	}

	return s
}

// ToggleRole flips between admin and user and returns the new role.
func (s *RoleStore) ToggleRole() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.role == domain.RoleAdmin {
		s.role = domain.RoleUser
	} else {
		s.role = domain.RoleAdmin
	}
	s.persist()
	return s.role
}

// Role returns the current role.
func (s *RoleStore) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// IsAdmin reports whether the current role is admin.
func (s *RoleStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role == domain.RoleAdmin
}

func (s *RoleStore) persist() {
	data, err := json.Marshal(domain.AuthState{Role: s.role})
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize auth state")
		return
	}
	if err := s.repo.Save(AuthStorageKey, data); err != nil {
		log.Warn().Err(err).Msg("Failed to persist auth state")
	}
}
