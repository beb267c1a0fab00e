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

type PostRepository struct {
	store  *Store
	log    ports.Logger
	locker locker
}

func (p *PostRepository) detailed(post model.Post) *model.PostDetailed {
	author := p.store.users[post.AuthorID]
	return &model.PostDetailed{Post: post, Author: author.Summary()}
}

func sortPosts(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return newerFirst(posts[i].CreatedAt, posts[i].ID, posts[j].CreatedAt, posts[j].ID)
	})
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.log.Debug("Creating new post (memory impl)", slog.Int64("author_id", post.AuthorID), slog.String("title", post.Title))
	defer p.locker.lock()()

	if _, ok := p.store.users[post.AuthorID]; !ok {
		p.log.Debug("Author not found during post creation", slog.Int64("author_id", post.AuthorID))
		return nil, custom_errors.ErrAuthorNotFound
	}

	now := time.Now().UTC()
	created := model.Post{
		ID:        p.store.nextPostID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.store.nextPostID++
	p.store.posts[created.ID] = created

	p.log.Debug("Successfully created post (memory impl)", slog.Int64("id", created.ID), slog.Int64("author_id", created.AuthorID))
	return &created, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	defer p.locker.rlock()()

	post, ok := p.store.posts[id]
	if !ok {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return &post, nil
}

func (p *PostRepository) GetDetailedByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	defer p.locker.rlock()()

	post, ok := p.store.posts[id]
	if !ok {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return p.detailed(post), nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error) {
	defer p.locker.rlock()()

	result := make([]*model.Post, 0)
	for _, post := range p.store.posts {
		if post.AuthorID == authorID {
			postCopy := post
			result = append(result, &postCopy)
		}
	}
	sortPosts(result)
	return result, nil
}

func (p *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	defer p.locker.rlock()()

	_, ok := p.store.posts[id]
	return ok, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	defer p.locker.lock()()

	post, ok := p.store.posts[id]
	if !ok {
		p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	if update.IsEmpty() {
		return &post, nil
	}

	if update.AuthorID != nil {
		if _, ok := p.store.users[*update.AuthorID]; !ok {
			p.log.Debug("Author not found during Update", slog.Int64("id", id), slog.Int64("author_id", *update.AuthorID))
			return nil, custom_errors.ErrAuthorNotFound
		}
		post.AuthorID = *update.AuthorID
	}
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	post.UpdatedAt = time.Now().UTC()
	p.store.posts[id] = post

	p.log.Debug("Successfully updated post (memory impl)", slog.Int64("id", id))
	return &post, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	defer p.locker.lock()()

	if _, ok := p.store.posts[id]; !ok {
		p.log.Debug("Post not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}
	delete(p.store.posts, id)
	return nil
}

func (p *PostRepository) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	defer p.locker.lock()()

	var deleted int64
	for id, post := range p.store.posts {
		if post.AuthorID == authorID {
			delete(p.store.posts, id)
			deleted++
		}
	}
	p.log.Debug("Deleted posts by author (memory impl)", slog.Int64("author_id", authorID), slog.Int64("count", deleted))
	return deleted, nil
}

func (p *PostRepository) ListDetailed(ctx context.Context) ([]*model.PostDetailed, error) {
	defer p.locker.rlock()()

	posts := make([]*model.Post, 0, len(p.store.posts))
	for _, post := range p.store.posts {
		postCopy := post
		posts = append(posts, &postCopy)
	}
	sortPosts(posts)

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		result = append(result, p.detailed(*post))
	}
	return result, nil
}
