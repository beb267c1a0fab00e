package user_service

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
	user_repository "blog-service/internal/domain/ports/output/user"
)

type UserService struct {
	userRepo  user_repository.Repository
	postRepo  post_repository.Repository
	uow       ports.UnitOfWork
	publisher ports.EventPublisher
	log       ports.Logger
	metrics   ports.MetricsProvider
	tracer    trace.Tracer
}

func NewUserService(
	userRepo user_repository.Repository,
	postRepo post_repository.Repository,
	uow ports.UnitOfWork,
	publisher ports.EventPublisher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		postRepo:  postRepo,
		uow:       uow,
		publisher: publisher,
		log:       log,
		metrics:   metrics,
		tracer:    otel.Tracer("blog-service/user"),
	}
}

func (s *UserService) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "UserService."+name)
}

func (s *UserService) finish(span trace.Span, operation string, err error) {
	s.metrics.IncrementUserOperations(operation, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *UserService) publish(ctx context.Context, event *model.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish user event",
			slog.String("type", string(event.Type)),
			slog.Int64("id", event.EntityID),
			slog.String("error", err.Error()))
	}
}

// storeError keeps taxonomy errors and hides anything else behind ErrDatabaseQuery.
func storeError(err error) error {
	var e *custom_errors.Error
	if errors.As(err, &e) {
		return err
	}
	return custom_errors.ErrDatabaseQuery.Wrap(err)
}

func (s *UserService) ListUsers(ctx context.Context) (users []*model.UserWithPostCount, err error) {
	ctx, span := s.start(ctx, "ListUsers")
	defer func() { s.finish(span, "list", err) }()

	users, err = s.userRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, storeError(err)
	}
	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (result *model.UserDetailed, err error) {
	ctx, span := s.start(ctx, "GetUserByID")
	span.SetAttributes(attribute.Int64("user.id", id))
	defer func() { s.finish(span, "get", err) }()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get user by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, storeError(err)
		}
	}

	posts, err := s.postRepo.GetByAuthor(ctx, id)
	if err != nil {
		s.log.Error("Failed to get posts by author", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, storeError(err)
	}

	return &model.UserDetailed{User: *user, Posts: posts}, nil
}

func (s *UserService) CreateUser(ctx context.Context, dto *model.CreateUserDTO) (created *model.User, err error) {
	ctx, span := s.start(ctx, "CreateUser")
	defer func() { s.finish(span, "create", err) }()

	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		users := tx.UserRepository()

		_, lookupErr := users.GetByEmail(ctx, dto.Email)
		switch {
		case lookupErr == nil:
			s.log.Debug("Email already exists", slog.String("email", dto.Email))
			return custom_errors.ErrEmailExists
		case !errors.Is(lookupErr, custom_errors.ErrUserNotFound):
			s.log.Error("Failed to check email uniqueness", slog.String("error", lookupErr.Error()))
			return storeError(lookupErr)
		}

		var createErr error
		created, createErr = users.Create(ctx, &model.User{Name: dto.Name, Email: dto.Email})
		if createErr != nil {
			if errors.Is(createErr, custom_errors.ErrEmailExists) {
				return custom_errors.ErrEmailExists
			}
			s.log.Error("Failed to create user", slog.String("error", createErr.Error()))
			return storeError(createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("user.id", created.ID))
	s.log.Info("User created", slog.Int64("id", created.ID))
	s.publish(ctx, model.NewEvent(model.EventUserCreated, created.ID, created))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, dto *model.UpdateUserDTO) (updated *model.User, err error) {
	ctx, span := s.start(ctx, "UpdateUser")
	span.SetAttributes(attribute.Int64("user.id", id))
	defer func() { s.finish(span, "update", err) }()

	changed := false
	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		users := tx.UserRepository()

		existing, getErr := users.GetByID(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, custom_errors.ErrUserNotFound) {
				s.log.Debug("User not found for update", slog.Int64("id", id))
				return custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to get user for update", slog.Int64("id", id), slog.String("error", getErr.Error()))
			return storeError(getErr)
		}

		if dto.IsEmpty() {
			updated = existing
			return nil
		}

		if dto.Email != nil && *dto.Email != existing.Email {
			_, lookupErr := users.GetByEmail(ctx, *dto.Email)
			switch {
			case lookupErr == nil:
				s.log.Debug("Email already exists", slog.Int64("id", id), slog.String("email", *dto.Email))
				return custom_errors.ErrEmailExists
			case !errors.Is(lookupErr, custom_errors.ErrUserNotFound):
				s.log.Error("Failed to check email uniqueness", slog.String("error", lookupErr.Error()))
				return storeError(lookupErr)
			}
		}

		var updateErr error
		updated, updateErr = users.Update(ctx, id, dto)
		if updateErr != nil {
			switch {
			case errors.Is(updateErr, custom_errors.ErrUserNotFound):
				return custom_errors.ErrUserNotFound
			case errors.Is(updateErr, custom_errors.ErrEmailExists):
				return custom_errors.ErrEmailExists
			}
			s.log.Error("Failed to update user", slog.Int64("id", id), slog.String("error", updateErr.Error()))
			return storeError(updateErr)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.Info("User updated", slog.Int64("id", id))
		s.publish(ctx, model.NewEvent(model.EventUserUpdated, id, updated))
	}
	return updated, nil
}

// DeleteUser removes the user together with every post they authored.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, span := s.start(ctx, "DeleteUser")
	span.SetAttributes(attribute.Int64("user.id", id))
	defer func() { s.finish(span, "delete", err) }()

	var removedPosts int64
	err = transaction.Run(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		exists, existsErr := tx.UserRepository().Exists(ctx, id)
		if existsErr != nil {
			s.log.Error("Failed to check user existence", slog.Int64("id", id), slog.String("error", existsErr.Error()))
			return storeError(existsErr)
		}
		if !exists {
			s.log.Debug("User not found for deletion", slog.Int64("id", id))
			return custom_errors.ErrUserNotFound
		}

		var deleteErr error
		removedPosts, deleteErr = tx.PostRepository().DeleteByAuthor(ctx, id)
		if deleteErr != nil {
			s.log.Error("Failed to delete posts of user", slog.Int64("id", id), slog.String("error", deleteErr.Error()))
			return storeError(deleteErr)
		}

		if deleteErr = tx.UserRepository().Delete(ctx, id); deleteErr != nil {
			if errors.Is(deleteErr, custom_errors.ErrUserNotFound) {
				return custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to delete user", slog.Int64("id", id), slog.String("error", deleteErr.Error()))
			return storeError(deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.Int64("user.removed_posts", removedPosts))
	s.log.Info("User deleted", slog.Int64("id", id), slog.Int64("removed_posts", removedPosts))
	s.publish(ctx, model.NewEvent(model.EventUserDeleted, id, map[string]int64{"removedPosts": removedPosts}))
	return nil
}
