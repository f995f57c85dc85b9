// Package session holds the identity of the logged in user and keeps it in
// sync with the persisted copy.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/domain"
	"github.com/klwxsrx/parcelshare/pkg/kv"
	"github.com/klwxsrx/parcelshare/pkg/log"
)

// Persisted keys. authToken and userid duplicate parts of authUser for
// readers that do not decode the record.
const (
	KeyUser   = "authUser"
	KeyToken  = "authToken"
	KeyUserID = "userid"
)

type record struct {
	Token  string      `json:"token"`
	Role   domain.Role `json:"role"`
	UserID *int64      `json:"userid"`
}

type Store struct {
	storage kv.Storage
	logger  log.Logger

	hydrate sync.Once
	// write serializes Set, Clear and Reload so that a reload never
	// observes storage that lags behind memory.
	write   sync.Mutex
	mutex   sync.RWMutex
	current domain.Session
}

func NewStore(storage kv.Storage, logger log.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
	}
}

// Hydrate seeds the store from the persisted record on the first call only.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrate.Do(func() {
		s.Reload(ctx)
	})
}

// Reload replaces the in-memory session with the persisted one. A record
// that cannot be decoded is removed.
func (s *Store) Reload(ctx context.Context) {
	s.write.Lock()
	defer s.write.Unlock()

	loaded := s.load(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.current = loaded
}

func (s *Store) load(ctx context.Context) domain.Session {
	raw, err := s.storage.Get(ctx, KeyUser)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.Session{}
	}
	if err != nil && !errors.Is(err, kv.ErrCorrupted) {
		s.logger.WithError(err).Warn(ctx, "failed to read persisted session")
		return domain.Session{}
	}

	var rec record
	if err == nil {
		err = json.Unmarshal([]byte(raw), &rec)
	}
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "discarding corrupted persisted session")
		s.remove(ctx)
		return domain.Session{}
	}

	if rec.Token == "" {
		return domain.Session{}
	}

	return domain.Session{
		Token:  rec.Token,
		Role:   rec.Role,
		UserID: rec.UserID,
	}
}

// Set replaces the session and persists it. An empty token is ignored.
func (s *Store) Set(ctx context.Context, sess domain.Session) {
	if sess.Token == "" {
		s.logger.Warn(ctx, "ignoring session without token")
		return
	}
	if sess.Role == "" {
		sess.Role = domain.DefaultRoleTag
	}
	if sess.UserID != nil {
		userID := *sess.UserID
		sess.UserID = &userID
	}

	s.write.Lock()
	defer s.write.Unlock()

	s.mutex.Lock()
	s.current = sess
	s.mutex.Unlock()

	s.persist(ctx, sess)
}

// Clear resets the session and removes every persisted key.
func (s *Store) Clear(ctx context.Context) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mutex.Lock()
	s.current = domain.Session{}
	s.mutex.Unlock()

	s.remove(ctx)
}

func (s *Store) IsAuthenticated() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.current.IsAuthenticated()
}

func (s *Store) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.current.Token
}

func (s *Store) Role() domain.Role {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.current.IsAuthenticated() {
		return ""
	}
	return s.current.Role
}

func (s *Store) UserID() (int64, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.current.IsAuthenticated() || s.current.UserID == nil {
		return 0, false
	}
	return *s.current.UserID, true
}

// Session returns a copy of the current session.
func (s *Store) Session() domain.Session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sess := s.current
	if sess.UserID != nil {
		userID := *sess.UserID
		sess.UserID = &userID
	}
	return sess
}

func (s *Store) persist(ctx context.Context, sess domain.Session) {
	data, err := json.Marshal(record{
		Token:  sess.Token,
		Role:   sess.Role,
		UserID: sess.UserID,
	})
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to encode session")
		return
	}

	err = s.storage.Set(ctx, KeyUser, string(data))
	if err == nil {
		err = s.storage.Set(ctx, KeyToken, sess.Token)
	}
	if err == nil && sess.UserID != nil {
		err = s.storage.Set(ctx, KeyUserID, strconv.FormatInt(*sess.UserID, 10))
	}
	if err == nil && sess.UserID == nil {
		err = s.storage.Remove(ctx, KeyUserID)
	}
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to persist session")
	}
}

func (s *Store) remove(ctx context.Context) {
	err := s.storage.Remove(ctx, KeyUser, KeyToken, KeyUserID)
	if err != nil {
		s.logger.WithError(err).Error(ctx, "failed to remove persisted session")
	}
}
