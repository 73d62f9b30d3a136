package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

// ChannelConsumer é o subconjunto de *amqp.Channel usado pelo worker.
type ChannelConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Worker consome q.sales.closed e repassa cada evento ao handler.
type Worker struct {
	Channel ChannelConsumer
	Handler SaleClosedHandler
	Logger  *zap.Logger
}

func NewWorker(ch ChannelConsumer, handler SaleClosedHandler, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{Channel: ch, Handler: handler, Logger: logger}
}

// Start bloqueia até o ctx ser cancelado ou o canal de entregas fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (ack manual)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info("sale event worker started", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("sale event worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de entregas fechado")
			}
			w.Handle(ctx, d)
		}
	}
}

// Handle processa uma entrega. Payload inválido e falha do handler vão
// para a DLQ (nack sem requeue).
func (w *Worker) Handle(ctx context.Context, d amqp.Delivery) {
	var event entity.SaleClosed
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.Logger.Error("invalid sale event payload", zap.Error(err))
		d.Nack(false, false)
		return
	}

	if err := w.Handler.HandleSaleClosed(ctx, event); err != nil {
		w.Logger.Error("sale event handling failed",
			zap.String("lead_id", event.LeadID), zap.Error(err))
		d.Nack(false, false)
		return
	}

	w.Logger.Info("sale event processed", zap.String("lead_id", event.LeadID))
	d.Ack(false)
}
