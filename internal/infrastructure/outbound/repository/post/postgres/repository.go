package post_repository_postgres

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

const (
	postColumns = "id, title, content, author_id, created_at, updated_at"

	detailedSelect = `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
		       u.id, u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.author_id`
)

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func scanDetailed(row pgx.Row) (*model.PostDetailed, error) {
	post := &model.PostDetailed{Author: &model.AuthorSummary{}}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Author.ID,
		&post.Author.Name,
		&post.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Int64("author_id", post.AuthorID), slog.String("title", post.Title))

	now := time.Now().UTC()
	args := pgx.NamedArgs{
		"author_id":  post.AuthorID,
		"title":      post.Title,
		"content":    post.Content,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (author_id, title, content, created_at, updated_at)
		VALUES (@author_id, @title, @content, @created_at, @updated_at)
		RETURNING ` + postColumns

	created, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.observe("post_create", start, false)
		if db.IsForeignKeyViolation(err) {
			p.log.Debug("Author not found during post creation", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrAuthorNotFound
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID), slog.Int64("author_id", created.AuthorID))
	return created, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`
	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		p.observe("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) GetDetailedByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	start := time.Now()
	p.log.Debug("Getting detailed post by ID", slog.Int64("id", id))

	post, err := scanDetailed(p.db.QueryRow(ctx, detailedSelect+` WHERE p.id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		p.observe("post_get_detailed", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting detailed post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_get_detailed", start, true)
	return post, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting posts by author", slog.Int64("author_id", authorID))

	query := `SELECT ` + postColumns + ` FROM posts WHERE author_id = @author_id ORDER BY created_at DESC, id DESC`
	rows, err := p.db.Query(ctx, query, pgx.NamedArgs{"author_id": authorID})
	if err != nil {
		p.observe("post_get_by_author", start, false)
		p.log.Error("Error getting posts by author", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.observe("post_get_by_author", start, false)
			p.log.Error("Error scanning post during GetByAuthor", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan.Wrap(err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_get_by_author", start, false)
		p.log.Error("Error iterating rows during GetByAuthor", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_get_by_author", start, true)
	p.log.Debug("Successfully retrieved posts by author", slog.Int64("author_id", authorID), slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = @id)`
	if err := p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		p.observe("post_exists", start, false)
		p.log.Error("Error checking post existence", slog.Int64("id", id), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_exists", start, true)
	return exists, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	if update.IsEmpty() {
		return p.GetByID(ctx, id)
	}

	start := time.Now()
	p.log.Debug("Updating post", slog.Int64("id", id), slog.Any("update_fields", map[string]bool{
		"title":     update.Title != nil,
		"content":   update.Content != nil,
		"author_id": update.AuthorID != nil,
	}))

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.AuthorID != nil {
		setClauses = append(setClauses, "author_id = @author_id")
		args["author_id"] = *update.AuthorID
		p.log.Debug("Reassigning post author", slog.Int64("id", id), slog.Int64("author_id", *update.AuthorID))
	}
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = time.Now().UTC()

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	updated, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.observe("post_update", start, false)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		case db.IsForeignKeyViolation(err):
			p.log.Debug("Author not found during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrAuthorNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_update", start, true)
	p.log.Debug("Successfully updated post", slog.Int64("id", updated.ID), slog.Int64("author_id", updated.AuthorID),
		slog.Time("updated_at", updated.UpdatedAt))
	return updated, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	p.log.Debug("Deleting post", slog.Int64("id", id))

	result, err := p.db.Exec(ctx, `DELETE FROM posts WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		p.observe("post_delete", start, false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	if result.RowsAffected() == 0 {
		p.observe("post_delete", start, false)
		p.log.Debug("Post not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	p.observe("post_delete", start, true)
	p.log.Debug("Successfully deleted post", slog.Int64("id", id))
	return nil
}

func (p *PostRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	start := time.Now()
	p.log.Debug("Deleting posts by author", slog.Int64("author_id", authorID))

	result, err := p.db.Exec(ctx, `DELETE FROM posts WHERE author_id = @author_id`, pgx.NamedArgs{"author_id": authorID})
	if err != nil {
		p.observe("post_delete_by_author", start, false)
		p.log.Error("Error deleting posts by author", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_delete_by_author", start, true)
	p.log.Debug("Deleted posts by author", slog.Int64("author_id", authorID), slog.Int64("count", result.RowsAffected()))
	return result.RowsAffected(), nil
}

func (p *PostRepository) ListDetailed(ctx context.Context) ([]*model.PostDetailed, error) {
	start := time.Now()
	p.log.Debug("Listing posts")

	rows, err := p.db.Query(ctx, detailedSelect+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	defer rows.Close()

	posts := make([]*model.PostDetailed, 0)
	for rows.Next() {
		post, err := scanDetailed(rows)
		if err != nil {
			p.observe("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan.Wrap(err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	p.observe("post_list", start, true)
	p.log.Debug("Retrieved posts in List", slog.Int("count", len(posts)))
	return posts, nil
}
