package store

import (
	"context"
	"log/slog"
	"os"

	"pixelarium/domain"
)

// AuthClient is the slice of the remote API the session store needs.
// *api.Client satisfies it.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	CreateUser(ctx context.Context, u domain.CreateUser) (domain.User, error)
}

// SessionStore is the single authoritative record of the current user,
// synchronized with a JSON file so the session survives restarts.
//
// Login and Register must not be issued concurrently on the same store.
type SessionStore struct {
	path   string
	client AuthClient
	logger *slog.Logger
	user   *domain.User
}

// NewSessionStore constructs the store and restores any persisted session.
// A corrupt record is deleted and the store starts unauthenticated;
// restoration never fails outward.
func NewSessionStore(path string, client AuthClient, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SessionStore{path: path, client: client, logger: logger}

	var u domain.User
	found, err := loadJSON(path, &u)
	switch {
	case err != nil:
		s.logger.Warn("discarding unreadable session record",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		_ = os.Remove(path)
	case found:
		s.user = &u
	}
	return s
}

// Current returns the logged-in user, or nil when unauthenticated.
func (s *SessionStore) Current() *domain.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login authenticates against the remote API. On success the user becomes
// current and is persisted; on failure the prior state is untouched and the
// error is returned as-is for the caller to display.
func (s *SessionStore) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	s.setUser(u)
	return u, nil
}

// Register creates the account and, like the original client, immediately
// authenticates as it.
func (s *SessionStore) Register(ctx context.Context, profile domain.CreateUser) (domain.User, error) {
	u, err := s.client.CreateUser(ctx, profile)
	if err != nil {
		return domain.User{}, err
	}
	s.setUser(u)
	return u, nil
}

// Logout clears the current user and removes the persisted record. It
// cannot fail; removing an absent record is fine.
func (s *SessionStore) Logout() {
	s.user = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("removing session record failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}

func (s *SessionStore) setUser(u domain.User) {
	s.user = &u
	if err := saveJSON(s.path, u); err != nil {
		// The in-memory session stays valid; it just won't survive restart.
		s.logger.Warn("persisting session failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	}
}
