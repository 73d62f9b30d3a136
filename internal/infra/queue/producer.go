package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/http/middleware"
)

// ChannelPublisher é o subconjunto de *amqp.Channel usado pelo producer.
type ChannelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch ChannelPublisher
}

func NewProducer(ch ChannelPublisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.crm
		RoutingKey,   // k.sale.closed
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.LeadID,
			Timestamp:    event.DataFechamento,
		},
	)
	if err != nil {
		middleware.RecordEventPublishError("rabbitmq")
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}
	return nil
}

// SaleClosedHandler consome o evento (agenda o pós-venda).
type SaleClosedHandler interface {
	HandleSaleClosed(ctx context.Context, event entity.SaleClosed) error
}

// InlinePublisher entrega o evento na mesma goroutine quando não há broker.
type InlinePublisher struct {
	Handler SaleClosedHandler
}

func NewInlinePublisher(handler SaleClosedHandler) *InlinePublisher {
	return &InlinePublisher{Handler: handler}
}

func (p *InlinePublisher) PublishSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	if err := p.Handler.HandleSaleClosed(ctx, event); err != nil {
		middleware.RecordEventPublishError("inline")
		return err
	}
	return nil
}
