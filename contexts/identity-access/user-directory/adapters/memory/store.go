package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	sessionports "bazaar/contexts/identity-access/session-service/ports"
	"bazaar/contexts/identity-access/user-directory/domain/entities"
	domainerrors "bazaar/contexts/identity-access/user-directory/domain/errors"
	"bazaar/contexts/identity-access/user-directory/ports"
)

// Store is an in-memory directory adapter. It also implements the
// session-service ProfileStore port so test wiring can resolve sessions
// against the same records the directory manages.
type Store struct {
	mu    sync.RWMutex
	users map[string]entities.DirectoryUser
}

func NewStore() *Store {
	return &Store{users: map[string]entities.DirectoryUser{}}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) CreateUser(_ context.Context, user entities.DirectoryUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrEmailConflict
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.DirectoryUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return entities.DirectoryUser{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListUsers(_ context.Context, filter ports.UserFilter) (ports.UserPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.DirectoryUser, 0, len(s.users))
	search := strings.ToLower(filter.Search)
	for _, user := range s.users {
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		if filter.PendingOnly && user.IsApproved {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Email), search) &&
			!strings.Contains(strings.ToLower(user.DisplayName), search) {
			continue
		}
		matched = append(matched, user)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })

	page := ports.UserPage{Total: len(matched)}
	start := (filter.Page - 1) * filter.PerPage
	if start >= len(matched) {
		return page, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[start:end]
	return page, nil
}

func (s *Store) UpdateUser(_ context.Context, user entities.DirectoryUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UserID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) CountByRole(_ context.Context, role string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, user := range s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// GetProfile implements the session-service ProfileStore port.
func (s *Store) GetProfile(_ context.Context, userID string) (sessionports.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return sessionports.Profile{}, domainerrors.ErrUserNotFound
	}
	return sessionports.Profile{
		Role:        user.Role,
		IsApproved:  user.IsApproved,
		Permissions: user.Permissions,
	}, nil
}
