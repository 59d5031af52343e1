package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/client/repositories/kv"
	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/dmitrijs2005/greenpath/internal/observability"
)

// Keys of the persisted records.
const (
	KeyCurrentUser = "currentUser"
	KeyUsers       = "users"
)

// Store is the profile/session store. It is safe for concurrent use as long
// as the underlying Transactor is.
type Store struct {
	tx      kv.Transactor
	log     logging.Logger
	metrics *observability.Metrics
}

// NewStore builds a Store over tx. metrics may be nil.
func NewStore(tx kv.Transactor, log logging.Logger, metrics *observability.Metrics) *Store {
	return &Store{tx: tx, log: log, metrics: metrics}
}

// Load returns the active profile, or nil when nobody is signed in or the
// pointer is unreadable.
func (s *Store) Load(ctx context.Context) (*models.UserProfile, error) {
	var current *models.UserProfile
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		var err error
		current, err = s.readCurrent(ctx, repo)
		return err
	})
	s.metrics.ObserveStore("load", err)
	if err != nil {
		return nil, err
	}
	return current, nil
}

// Save merges u onto the active profile and writes the result to both the
// pointer and the users row with the same email. It returns the merged
// profile.
func (s *Store) Save(ctx context.Context, u models.ProfileUpdate) (*models.UserProfile, error) {
	var merged models.UserProfile
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		current, err := s.readCurrent(ctx, repo)
		if err != nil {
			return err
		}
		if current == nil {
			return common.ErrNoActiveUser
		}

		users, err := s.readUsers(ctx, repo)
		if err != nil {
			return err
		}

		merged = current.Merge(u)
		if err := writeJSON(ctx, repo, KeyCurrentUser, merged); err != nil {
			return err
		}

		idx := indexByEmail(users, current.Email)
		if idx < 0 {
			s.log.Warn(ctx, "no users row matches active profile, table left unchanged", "email", current.Email)
			return nil
		}
		users[idx] = merged
		return writeJSON(ctx, repo, KeyUsers, users)
	})
	s.metrics.ObserveStore("save", err)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &merged, nil
}

// FindByCredentials returns the users row whose email and password both
// match exactly, or common.ErrInvalidCredentials.
func (s *Store) FindByCredentials(ctx context.Context, email, password string) (*models.UserProfile, error) {
	var found *models.UserProfile
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		users, err := s.readUsers(ctx, repo)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].Email == email && users[i].Password == password {
				found = &users[i]
				return nil
			}
		}
		return common.ErrInvalidCredentials
	})
	s.metrics.ObserveStore("find", err)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Register appends p to the users table and makes it the active profile.
// It fails with common.ErrEmailAlreadyExists when the email is taken.
func (s *Store) Register(ctx context.Context, p models.UserProfile) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		users, err := s.readUsers(ctx, repo)
		if err != nil {
			return err
		}
		if indexByEmail(users, p.Email) >= 0 {
			return common.ErrEmailAlreadyExists
		}

		users = append(users, p)
		if err := writeJSON(ctx, repo, KeyUsers, users); err != nil {
			return err
		}
		return writeJSON(ctx, repo, KeyCurrentUser, p)
	})
	s.metrics.ObserveStore("register", err)
	if err != nil {
		return fmt.Errorf("register profile: %w", err)
	}
	return nil
}

// Activate makes p the active profile. p is expected to be a users row.
func (s *Store) Activate(ctx context.Context, p models.UserProfile) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		return writeJSON(ctx, repo, KeyCurrentUser, p)
	})
	s.metrics.ObserveStore("activate", err)
	if err != nil {
		return fmt.Errorf("activate profile: %w", err)
	}
	return nil
}

// Clear removes the active-session pointer. The users table is untouched.
func (s *Store) Clear(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repo kv.Repository) error {
		return repo.Delete(ctx, KeyCurrentUser)
	})
	s.metrics.ObserveStore("clear", err)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) readCurrent(ctx context.Context, repo kv.Repository) (*models.UserProfile, error) {
	raw, err := repo.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil || p.Email == "" {
		s.metrics.ObserveCorruption()
		s.log.Warn(ctx, "ignoring unreadable active profile", "key", KeyCurrentUser, "error", err)
		return nil, nil
	}
	return &p, nil
}

func (s *Store) readUsers(ctx context.Context, repo kv.Repository) ([]models.UserProfile, error) {
	raw, err := repo.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var users []models.UserProfile
	if err := json.Unmarshal(raw, &users); err != nil {
		s.metrics.ObserveCorruption()
		s.log.Error(ctx, "users table is unreadable", "key", KeyUsers, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCorruptPersistedState, KeyUsers, err)
	}
	return users, nil
}

func writeJSON(ctx context.Context, repo kv.Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, raw)
}

func indexByEmail(users []models.UserProfile, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
