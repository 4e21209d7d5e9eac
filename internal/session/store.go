package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/store"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// Listener receives the new session state after a successful mutation.
type Listener func(models.SessionState)

// Store is the session store. The zero value is not usable; create one with
// [NewStore].
type Store struct {
	kv     store.KeyValueStore
	logger *logger.Logger

	// mu serializes mutations so writes to each key are single-writer.
	mu sync.Mutex

	stateMu sync.RWMutex
	state   models.SessionState

	listenersMu    sync.Mutex
	listeners      map[int]Listener
	nextListenerID int
}

// NewStore creates a logged-out store over kv. Call [Store.Initialize] to
// restore a persisted session.
func NewStore(kv store.KeyValueStore, log *logger.Logger) *Store {
	return &Store{
		kv:        kv,
		logger:    log,
		state:     models.LoggedOut(),
		listeners: make(map[int]Listener),
	}
}

// Initialize restores the persisted session. The user is logged in only when
// the auth flag is "true" and the stored profile decodes; any other
// combination yields a logged-out state. Only store failures are returned.
func (s *Store) Initialize(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	next, err := s.loadState(ctx)
	if err != nil {
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.Initialize").Msg("error loading session")
		return err
	}
	s.setState(next)
	s.mu.Unlock()

	log.Debug().Str("func", "*Store.Initialize").Bool("logged_in", next.IsLoggedIn).Msg("session initialized")
	s.notify(next)
	return nil
}

func (s *Store) loadState(ctx context.Context) (models.SessionState, error) {
	log := logger.FromContext(ctx)

	flag, err := s.kv.Get(ctx, AuthKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.LoggedOut(), nil
	}
	if err != nil {
		return models.SessionState{}, fmt.Errorf("%w: read %s: %w", ErrLoad, AuthKey, err)
	}
	if flag != authFlagTrue {
		return models.LoggedOut(), nil
	}

	raw, err := s.kv.Get(ctx, ProfileKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		log.Warn().Str("func", "*Store.loadState").Msg("auth flag set but profile missing, starting logged out")
		return models.LoggedOut(), nil
	}
	if err != nil {
		return models.SessionState{}, fmt.Errorf("%w: read %s: %w", ErrLoad, ProfileKey, err)
	}

	var profile models.UserProfile
	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Warn().Err(err).Str("func", "*Store.loadState").Msg("malformed profile, starting logged out")
		return models.LoggedOut(), nil
	}

	return models.LoggedIn(profile), nil
}

// Login persists the profile and the auth flag, then marks the session as
// active. The profile is not validated.
func (s *Store) Login(ctx context.Context, profile models.UserProfile) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if err := s.writeProfile(ctx, profile); err != nil {
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.Login").Msg("error persisting profile")
		return err
	}
	if err := s.kv.Set(ctx, AuthKey, authFlagTrue); err != nil {
		s.rollbackProfile(ctx)
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.Login").Msg("error persisting auth flag")
		return fmt.Errorf("%w: write %s: %w", ErrPersist, AuthKey, err)
	}
	next := models.LoggedIn(profile)
	s.setState(next)
	s.mu.Unlock()

	log.Info().Str("func", "*Store.Login").Str("registration_no", profile.RegistrationNo).Msg("logged in")
	s.notify(next)
	return nil
}

// Logout removes both persisted keys and clears the session. Logging out
// twice is the same as logging out once.
func (s *Store) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	// flag first: without it a leftover profile never restores a session
	if err := s.kv.Delete(ctx, AuthKey); err != nil {
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.Logout").Msg("error deleting auth flag")
		return fmt.Errorf("%w: delete %s: %w", ErrPersist, AuthKey, err)
	}
	if err := s.kv.Delete(ctx, ProfileKey); err != nil {
		// memory still says logged in, so put the flag back
		if s.State().IsLoggedIn {
			if restoreErr := s.kv.Set(ctx, AuthKey, authFlagTrue); restoreErr != nil {
				log.Err(restoreErr).Str("func", "*Store.Logout").Msg("error restoring auth flag")
			}
		}
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.Logout").Msg("error deleting profile")
		return fmt.Errorf("%w: delete %s: %w", ErrPersist, ProfileKey, err)
	}
	next := models.LoggedOut()
	s.setState(next)
	s.mu.Unlock()

	log.Info().Str("func", "*Store.Logout").Msg("logged out")
	s.notify(next)
	return nil
}

// UpdateProfile merges update into the active profile and persists it. It is
// a no-op when nobody is logged in.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	current := s.State()
	if !current.IsLoggedIn {
		s.mu.Unlock()
		log.Debug().Str("func", "*Store.UpdateProfile").Msg("not logged in, update ignored")
		return nil
	}

	merged := update.Apply(*current.User)
	if err := s.writeProfile(ctx, merged); err != nil {
		s.mu.Unlock()
		log.Err(err).Str("func", "*Store.UpdateProfile").Msg("error persisting profile")
		return err
	}
	next := models.LoggedIn(merged)
	s.setState(next)
	s.mu.Unlock()

	s.notify(next)
	return nil
}

// State returns a snapshot of the current session.
func (s *Store) State() models.SessionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn and returns a function that unregisters it.
// fn runs on the goroutine that performed the mutation, after the store's
// locks are released.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.listenersMu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

func (s *Store) setState(next models.SessionState) {
	s.stateMu.Lock()
	s.state = next
	s.stateMu.Unlock()
}

func (s *Store) notify(state models.SessionState) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(state.Clone())
	}
}

// rollbackProfile puts back the profile of the current in-memory session
// after a failed login, or removes the stored one when nobody is logged in.
// Without it a later Initialize could restore the login that failed.
func (s *Store) rollbackProfile(ctx context.Context) {
	log := logger.FromContext(ctx)

	var err error
	if current := s.State(); current.IsLoggedIn {
		err = s.writeProfile(ctx, *current.User)
	} else {
		err = s.kv.Delete(ctx, ProfileKey)
	}
	if err != nil {
		log.Err(err).Str("func", "*Store.rollbackProfile").Msg("error restoring previous profile")
	}
}

func (s *Store) writeProfile(ctx context.Context, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: encode profile: %w", ErrPersist, err)
	}
	if err = s.kv.Set(ctx, ProfileKey, string(raw)); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersist, ProfileKey, err)
	}
	return nil
}
