package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/infra/queue"
)

// MockChannel
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

// MockAcknowledger
type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	return m.Called(tag, multiple).Error(0)
}

func (m *MockAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	return m.Called(tag, multiple, requeue).Error(0)
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	return m.Called(tag, requeue).Error(0)
}

// MockSaleClosedHandler
type MockSaleClosedHandler struct {
	mock.Mock
}

func (m *MockSaleClosedHandler) HandleSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	return m.Called(ctx, event).Error(0)
}

var closedAt = time.Date(2024, 1, 16, 17, 0, 0, 0, time.UTC)

func saleEvent() entity.SaleClosed {
	return entity.SaleClosed{
		LeadID:         "3",
		ClientName:     "Pedro Costa",
		Phone:          "(11) 97777-9012",
		Produto:        "iPhone 15",
		Valor:          3200,
		Vendedor:       "Ana",
		DataFechamento: closedAt,
	}
}

func TestPublishSaleClosed(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, queue.ExchangeName, queue.RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got entity.SaleClosed
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == "3" &&
				got.Produto == "iPhone 15" && got.Valor == 3200
		})).Return(nil)

	err := queue.NewProducer(ch).PublishSaleClosed(context.Background(), saleEvent())

	assert.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestPublishSaleClosedError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	err := queue.NewProducer(ch).PublishSaleClosed(context.Background(), saleEvent())

	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestInlinePublisherCallsHandler(t *testing.T) {
	handler := new(MockSaleClosedHandler)
	handler.On("HandleSaleClosed", mock.Anything, saleEvent()).Return(nil).Once()

	err := queue.NewInlinePublisher(handler).PublishSaleClosed(context.Background(), saleEvent())

	assert.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestInlinePublisherPropagatesError(t *testing.T) {
	handler := new(MockSaleClosedHandler)
	handler.On("HandleSaleClosed", mock.Anything, mock.Anything).Return(errors.New("storage"))

	err := queue.NewInlinePublisher(handler).PublishSaleClosed(context.Background(), saleEvent())

	assert.Error(t, err)
}

func delivery(ack amqp.Acknowledger, body []byte) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 7, Body: body}
}

func TestWorkerAcksProcessedEvent(t *testing.T) {
	ack := new(MockAcknowledger)
	ack.On("Ack", uint64(7), false).Return(nil)
	handler := new(MockSaleClosedHandler)
	handler.On("HandleSaleClosed", mock.Anything, mock.MatchedBy(func(e entity.SaleClosed) bool {
		return e.LeadID == "3" && e.DataFechamento.Equal(closedAt)
	})).Return(nil)

	body, err := json.Marshal(saleEvent())
	require.NoError(t, err)

	w := queue.NewWorker(nil, handler, zaptest.NewLogger(t))
	w.Handle(context.Background(), delivery(ack, body))

	ack.AssertExpectations(t)
	ack.AssertNotCalled(t, "Nack", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkerDeadLettersInvalidPayload(t *testing.T) {
	ack := new(MockAcknowledger)
	ack.On("Nack", uint64(7), false, false).Return(nil)
	handler := new(MockSaleClosedHandler)

	w := queue.NewWorker(nil, handler, zaptest.NewLogger(t))
	w.Handle(context.Background(), delivery(ack, []byte("{nope")))

	ack.AssertExpectations(t)
	handler.AssertNotCalled(t, "HandleSaleClosed", mock.Anything, mock.Anything)
}

func TestWorkerDeadLettersHandlerFailure(t *testing.T) {
	ack := new(MockAcknowledger)
	ack.On("Nack", uint64(7), false, false).Return(nil)
	handler := new(MockSaleClosedHandler)
	handler.On("HandleSaleClosed", mock.Anything, mock.Anything).Return(errors.New("falhou"))

	body, err := json.Marshal(saleEvent())
	require.NoError(t, err)

	w := queue.NewWorker(nil, handler, zaptest.NewLogger(t))
	w.Handle(context.Background(), delivery(ack, body))

	ack.AssertExpectations(t)
}
