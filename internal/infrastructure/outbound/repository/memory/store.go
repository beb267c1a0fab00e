package memory

import (
	"maps"
	"sync"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

// Store holds users and posts in process memory with the same integrity rules
// as the Postgres schema: unique email, posts must reference an existing user,
// and users cannot be removed while posts reference them.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]model.User
	posts      map[int64]model.Post
	nextUserID int64
	nextPostID int64
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int64]model.User),
		posts:      make(map[int64]model.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

type snapshot struct {
	users      map[int64]model.User
	posts      map[int64]model.Post
	nextUserID int64
	nextPostID int64
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		users:      maps.Clone(s.users),
		posts:      maps.Clone(s.posts),
		nextUserID: s.nextUserID,
		nextPostID: s.nextPostID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.posts = snap.posts
	s.nextUserID = snap.nextUserID
	s.nextPostID = snap.nextPostID
}

// UserRepository returns a repository that locks the store per call.
func (s *Store) UserRepository(log ports.Logger) *UserRepository {
	return &UserRepository{store: s, log: log, locker: s}
}

// PostRepository returns a repository that locks the store per call.
func (s *Store) PostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{store: s, log: log, locker: s}
}

type locker interface {
	lock() func()
	rlock() func()
}

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock() func() {
	s.mu.RLock()
	return s.mu.RUnlock
}

// held is used by repositories bound to a transaction that already owns the write lock.
type held struct{}

func (held) lock() func()  { return func() {} }
func (held) rlock() func() { return func() {} }
