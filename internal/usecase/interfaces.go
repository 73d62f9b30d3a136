package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

// EventPublisher entrega eventos de domínio (RabbitMQ ou inline).
type EventPublisher interface {
	PublishSaleClosed(ctx context.Context, event entity.SaleClosed) error
}

// Clock permite fixar o "agora" nos testes.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
