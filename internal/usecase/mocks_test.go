package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

var brt = time.FixedZone("BRT", -3*60*60)

// agora fixo usado em todos os testes
var now = time.Date(2024, 1, 16, 17, 0, 0, 0, brt)

func fixedClock() usecase.Clock {
	return func() time.Time { return now }
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) All(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ReplaceAll(ctx context.Context, leads []entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockClientExporter
type MockClientExporter struct {
	mock.Mock
}

func (m *MockClientExporter) ExportClients(clients []entity.Client) ([]byte, error) {
	args := m.Called(clients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// publisherFunc entrega o evento direto para um handler, como o publisher inline.
type publisherFunc func(ctx context.Context, event entity.SaleClosed) error

func (f publisherFunc) PublishSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	return f(ctx, event)
}
