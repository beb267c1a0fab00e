package post_service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"blog-service/internal/application/service/transaction"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
)

type PostService struct {
	postRepo  post_repository.Repository
	uow       ports.UnitOfWork
	publisher ports.EventPublisher
	log       ports.Logger
	metrics   ports.MetricsProvider
	tracer    trace.Tracer
}

func NewPostService(
	postRepo post_repository.Repository,
	uow ports.UnitOfWork,
	publisher ports.EventPublisher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		uow:       uow,
		publisher: publisher,
		log:       log,
		metrics:   metrics,
		tracer:    otel.Tracer("blog-service/post"),
	}
}

func (s *PostService) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "PostService."+name)
}

func (s *PostService) finish(span trace.Span, operation string, err error) {
	s.metrics.IncrementPostOperations(operation, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *PostService) publish(ctx context.Context, event *model.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish post event",
			slog.String("type", string(event.Type)),
			slog.Int64("id", event.EntityID),
			slog.String("error", err.Error()))
	}
}

func storeError(err error) error {
	var e *custom_errors.Error
	if errors.As(err, &e) {
		return err
	}
	return custom_errors.ErrDatabaseQuery.Wrap(err)
}

// authorExists turns a missing author into ErrAuthorNotFound.
func (s *PostService) authorExists(ctx context.Context, tx ports.Transaction, authorID int64) error {
	exists, err := tx.UserRepository().Exists(ctx, authorID)
	if err != nil {
		s.log.Error("Failed to check author existence", slog.Int64("author_id", authorID), slog.String("error", err.Error()))
		return storeError(err)
	}
	if !exists {
		s.log.Debug("Author not found", slog.Int64("author_id", authorID))
		return custom_errors.ErrAuthorNotFound
	}
	return nil
}

func (s *PostService) ListPosts(ctx context.Context) (posts []*model.PostDetailed, err error) {
	ctx, span := s.start(ctx, "ListPosts")
	defer func() { s.finish(span, "list", err) }()

	posts, err = s.postRepo.ListDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, storeError(err)
	}
	span.SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (post *model.PostDetailed, err error) {
	ctx, span := s.start(ctx, "GetPostByID")
	span.SetAttributes(attribute.Int64("post.id", id))
	defer func() { s.finish(span, "get", err) }()

	post, err = s.postRepo.GetDetailedByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, storeError(err)
		}
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	ctx, span := s.start(ctx, "CreatePost")
	span.SetAttributes(attribute.Int64("post.author_id", dto.AuthorID))
	defer func() { s.finish(span, "create", err) }()

	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		if err := s.authorExists(ctx, tx, dto.AuthorID); err != nil {
			return err
		}

		posts := tx.PostRepository()
		created, err := posts.Create(ctx, &model.Post{
			Title:    dto.Title,
			Content:  dto.Content,
			AuthorID: dto.AuthorID,
		})
		if err != nil {
			if errors.Is(err, custom_errors.ErrAuthorNotFound) {
				return custom_errors.ErrAuthorNotFound
			}
			s.log.Error("Failed to create post", slog.String("error", err.Error()))
			return storeError(err)
		}

		result, err = posts.GetDetailedByID(ctx, created.ID)
		if err != nil {
			s.log.Error("Failed to load created post", slog.Int64("id", created.ID), slog.String("error", err.Error()))
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("post.id", result.ID))
	s.log.Info("Post created", slog.Int64("id", result.ID), slog.Int64("author_id", result.AuthorID))
	s.publish(ctx, model.NewEvent(model.EventPostCreated, result.ID, result.Post))
	return result, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (result *model.PostDetailed, err error) {
	ctx, span := s.start(ctx, "UpdatePost")
	span.SetAttributes(attribute.Int64("post.id", id))
	defer func() { s.finish(span, "update", err) }()

	changed := false
	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		posts := tx.PostRepository()

		exists, err := posts.Exists(ctx, id)
		if err != nil {
			s.log.Error("Failed to check post existence", slog.Int64("id", id), slog.String("error", err.Error()))
			return storeError(err)
		}
		if !exists {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}

		if !dto.IsEmpty() {
			if dto.AuthorID != nil {
				if err := s.authorExists(ctx, tx, *dto.AuthorID); err != nil {
					return err
				}
			}

			if _, err := posts.Update(ctx, id, dto); err != nil {
				switch {
				case errors.Is(err, custom_errors.ErrPostNotFound):
					return custom_errors.ErrPostNotFound
				case errors.Is(err, custom_errors.ErrAuthorNotFound):
					return custom_errors.ErrAuthorNotFound
				}
				s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
				return storeError(err)
			}
			changed = true
		}

		result, err = posts.GetDetailedByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to load updated post", slog.Int64("id", id), slog.String("error", err.Error()))
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.Info("Post updated", slog.Int64("id", id))
		s.publish(ctx, model.NewEvent(model.EventPostUpdated, id, result.Post))
	}
	return result, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (err error) {
	ctx, span := s.start(ctx, "DeletePost")
	span.SetAttributes(attribute.Int64("post.id", id))
	defer func() { s.finish(span, "delete", err) }()

	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		posts := tx.PostRepository()

		exists, err := posts.Exists(ctx, id)
		if err != nil {
			s.log.Error("Failed to check post existence", slog.Int64("id", id), slog.String("error", err.Error()))
			return storeError(err)
		}
		if !exists {
			s.log.Debug("Post not found for deletion", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}

		if err := posts.Delete(ctx, id); err != nil {
			if errors.Is(err, custom_errors.ErrPostNotFound) {
				return custom_errors.ErrPostNotFound
			}
			s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("Post deleted", slog.Int64("id", id))
	s.publish(ctx, model.NewEvent(model.EventPostDeleted, id, nil))
	return nil
}
