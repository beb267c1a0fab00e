package ports

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name EventPublisher --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename EventPublisher.go
type EventPublisher interface {
	Publish(ctx context.Context, event *model.Event) error
	Close() error
}
