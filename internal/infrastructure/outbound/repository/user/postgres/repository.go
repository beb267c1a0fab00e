package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"
)

const userColumns = "id, name, email, created_at, updated_at"

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) observe(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Creating new user", slog.String("email", user.Email))

	now := time.Now().UTC()
	args := pgx.NamedArgs{
		"name":       user.Name,
		"email":      user.Email,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO users (name, email, created_at, updated_at)
		VALUES (@name, @email, @created_at, @updated_at)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.observe("user_create", start, false)
		if db.IsUniqueViolation(err) {
			r.log.Debug("Email already taken", slog.String("email", user.Email))
			return nil, custom_errors.ErrEmailExists
		}
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_create", start, true)
	r.log.Debug("Successfully created user", slog.Int64("id", created.ID))
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Getting user by ID", slog.Int64("id", id))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = @id`
	user, err := scanUser(r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		r.observe("user_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_get_by_id", start, true)
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Getting user by email", slog.String("email", email))

	query := `SELECT ` + userColumns + ` FROM users WHERE email = @email`
	user, err := scanUser(r.db.QueryRow(ctx, query, pgx.NamedArgs{"email": email}))
	if err != nil {
		r.observe("user_get_by_email", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by email", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_get_by_email", start, true)
	return user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = @id)`
	if err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		r.observe("user_exists", start, false)
		r.log.Error("Error checking user existence", slog.Int64("id", id), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_exists", start, true)
	return exists, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	start := time.Now()
	r.log.Debug("Updating user", slog.Int64("id", id), slog.Any("update_fields", map[string]bool{
		"name":  update.Name != nil,
		"email": update.Email != nil,
	}))

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Name != nil {
		setClauses = append(setClauses, "name = @name")
		args["name"] = *update.Name
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = time.Now().UTC()

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.observe("user_update", start, false)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			r.log.Debug("User not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		case db.IsUniqueViolation(err):
			r.log.Debug("Email already taken during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrEmailExists
		}
		r.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_update", start, true)
	r.log.Debug("Successfully updated user", slog.Int64("id", updated.ID), slog.Time("updated_at", updated.UpdatedAt))
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	r.log.Debug("Deleting user", slog.Int64("id", id))

	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.observe("user_delete", start, false)
		if db.IsForeignKeyViolation(err) {
			r.log.Debug("User still has posts", slog.Int64("id", id))
			return custom_errors.ErrUserHasPosts.Wrap(err)
		}
		r.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	if result.RowsAffected() == 0 {
		r.observe("user_delete", start, false)
		r.log.Debug("User not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrUserNotFound
	}

	r.observe("user_delete", start, true)
	r.log.Debug("Successfully deleted user", slog.Int64("id", id))
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.UserWithPostCount, error) {
	start := time.Now()
	r.log.Debug("Listing users")

	query := `
		SELECT u.id, u.name, u.email, u.created_at, u.updated_at, COUNT(p.id)
		FROM users u
		LEFT JOIN posts p ON p.author_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC, u.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.observe("user_list", start, false)
		r.log.Error("Error listing users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	defer rows.Close()

	users := make([]*model.UserWithPostCount, 0)
	for rows.Next() {
		var user model.UserWithPostCount
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.PostCount,
		)
		if err != nil {
			r.observe("user_list", start, false)
			r.log.Error("Error scanning user during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan.Wrap(err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		r.observe("user_list", start, false)
		r.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	r.observe("user_list", start, true)
	r.log.Debug("Retrieved users", slog.Int("count", len(users)))
	return users, nil
}
