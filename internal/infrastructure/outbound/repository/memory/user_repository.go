package memory

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type UserRepository struct {
	store  *Store
	log    ports.Logger
	locker locker
}

func (r *UserRepository) emailTaken(email string, exceptID int64) bool {
	for id, user := range r.store.users {
		if id != exceptID && user.Email == email {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.log.Debug("Creating new user (memory impl)", slog.String("email", user.Email))
	defer r.locker.lock()()

	if r.emailTaken(user.Email, 0) {
		r.log.Debug("Email already taken", slog.String("email", user.Email))
		return nil, custom_errors.ErrEmailExists
	}

	now := time.Now().UTC()
	created := model.User{
		ID:        r.store.nextUserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.nextUserID++
	r.store.users[created.ID] = created

	r.log.Debug("Successfully created user (memory impl)", slog.Int64("id", created.ID))
	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	defer r.locker.rlock()()

	user, ok := r.store.users[id]
	if !ok {
		r.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	defer r.locker.rlock()()

	for _, user := range r.store.users {
		if user.Email == email {
			return &user, nil
		}
	}
	r.log.Debug("User not found by email", slog.String("email", email))
	return nil, custom_errors.ErrUserNotFound
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	defer r.locker.rlock()()

	_, ok := r.store.users[id]
	return ok, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	defer r.locker.lock()()

	user, ok := r.store.users[id]
	if !ok {
		r.log.Debug("User not found by id during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}
	if update.IsEmpty() {
		return &user, nil
	}

	if update.Email != nil && r.emailTaken(*update.Email, id) {
		r.log.Debug("Email already taken during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrEmailExists
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	user.UpdatedAt = time.Now().UTC()
	r.store.users[id] = user

	r.log.Debug("Successfully updated user (memory impl)", slog.Int64("id", id))
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	defer r.locker.lock()()

	if _, ok := r.store.users[id]; !ok {
		r.log.Debug("User not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrUserNotFound
	}
	for _, post := range r.store.posts {
		if post.AuthorID == id {
			r.log.Debug("User still has posts", slog.Int64("id", id))
			return custom_errors.ErrUserHasPosts
		}
	}
	delete(r.store.users, id)

	r.log.Debug("Successfully deleted user (memory impl)", slog.Int64("id", id))
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.UserWithPostCount, error) {
	defer r.locker.rlock()()

	counts := make(map[int64]int64, len(r.store.users))
	for _, post := range r.store.posts {
		counts[post.AuthorID]++
	}

	result := make([]*model.UserWithPostCount, 0, len(r.store.users))
	for id, user := range r.store.users {
		result = append(result, &model.UserWithPostCount{User: user, PostCount: counts[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return newerFirst(result[i].CreatedAt, result[i].ID, result[j].CreatedAt, result[j].ID)
	})
	return result, nil
}

func newerFirst(aCreated time.Time, aID int64, bCreated time.Time, bID int64) bool {
	if !aCreated.Equal(bCreated) {
		return aCreated.After(bCreated)
	}
	return aID > bID
}
