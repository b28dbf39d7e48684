package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/domain/state"
	"github.com/example/storefront/internal/infrastructure/store"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is a registered account. Password holds the hasher's stored form.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Store holds the registered users and the single current session
type Store struct {
	mu        sync.RWMutex
	snapshots store.SnapshotStore
	hasher    auth.PasswordHasher
	users     []User
	current   *User
}

func NewStore(snapshots store.SnapshotStore, hasher auth.PasswordHasher) *Store {
	if hasher == nil {
		hasher = auth.Plaintext{}
	}
	return &Store{
		snapshots: snapshots,
		hasher:    hasher,
		users:     make([]User, 0),
	}
}

// Load restores users and the current session from their snapshots
func (s *Store) Load(ctx context.Context) {
	users, ok := state.Load[[]User](ctx, s.snapshots, store.KeyUsers)
	current, _ := state.Load[*User](ctx, s.snapshots, store.KeyCurrentUser)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]User, 0, len(users))
	if ok {
		s.users = append(s.users, users...)
	}
	s.current = current
}

// Register creates a user and makes it the current session.
// Emails are compared exactly as entered.
func (s *Store) Register(ctx context.Context, name, email, password, confirm string) (User, error) {
	if password != confirm {
		return User{}, ErrPasswordMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfEmail(email) >= 0 {
		return User{}, ErrEmailTaken
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("failed to register user: %w", err)
	}

	user := User{
		ID:       s.nextID(),
		Name:     name,
		Email:    email,
		Password: stored,
	}
	s.users = append(s.users, user)
	s.current = &user

	state.Save(ctx, s.snapshots, store.KeyUsers, s.users)
	state.Save(ctx, s.snapshots, store.KeyCurrentUser, s.current)
	return user, nil
}

// Login sets the current session to the user matching both email and password.
// A failed attempt leaves the existing session untouched.
func (s *Store) Login(ctx context.Context, email, password string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfEmail(email)
	if i < 0 || !s.hasher.Compare(password, s.users[i].Password) {
		return User{}, ErrInvalidCredentials
	}

	user := s.users[i]
	s.current = &user
	state.Save(ctx, s.snapshots, store.KeyCurrentUser, s.current)
	return user, nil
}

// Logout clears the current session. The bool reports whether anyone was logged in.
func (s *Store) Logout(ctx context.Context) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var previous User
	loggedIn := s.current != nil
	if loggedIn {
		previous = *s.current
	}
	s.current = nil
	state.Save(ctx, s.snapshots, store.KeyCurrentUser, s.current)
	return previous, loggedIn
}

// CurrentUser returns the logged-in user, if any
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// Users returns a copy of the registered users
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]User(nil), s.users...)
}

func (s *Store) indexOfEmail(email string) int {
	for i, u := range s.users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

// nextID is one past the highest id in use
func (s *Store) nextID() int64 {
	var max int64
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
