package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/infra/http/middleware"
	"github.com/xavierca1/soluvia-crm/internal/usecase"
)

type Sweeper interface {
	Sweep(ctx context.Context) ([]usecase.OverdueItem, error)
}

// FollowUpDeadlineWorker reclassifica os follow-ups a cada tick e avisa
// quando algum passa do prazo.
type FollowUpDeadlineWorker struct {
	sweeper      Sweeper
	tickInterval time.Duration
	logger       *zap.Logger
}

func NewFollowUpDeadlineWorker(sweeper Sweeper, tickInterval time.Duration, logger *zap.Logger) *FollowUpDeadlineWorker {
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FollowUpDeadlineWorker{
		sweeper:      sweeper,
		tickInterval: tickInterval,
		logger:       logger,
	}
}

func (w *FollowUpDeadlineWorker) Start(ctx context.Context) {
	w.logger.Info("follow-up deadline worker iniciado", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("follow-up deadline worker encerrado")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce executa uma varredura e devolve quantos itens ficaram atrasados nela.
func (w *FollowUpDeadlineWorker) RunOnce(ctx context.Context) int {
	items, err := w.sweeper.Sweep(ctx)
	if err != nil {
		w.logger.Error("erro ao varrer follow-ups", zap.Error(err))
		return 0
	}

	perKind := map[usecase.FollowUpKind]int{}
	for _, item := range items {
		w.logger.Warn("follow-up atrasado",
			zap.String("kind", string(item.Kind)),
			zap.String("id", item.ID),
			zap.String("client", item.ClientName),
			zap.String("type", string(item.FollowUpType)),
			zap.String("remaining", item.TimeRemaining),
		)
		perKind[item.Kind]++
	}
	for kind, n := range perKind {
		middleware.RecordFollowUpsOverdue(string(kind), n)
	}

	if len(items) > 0 {
		w.logger.Info("follow-ups marcados como atrasados", zap.Int("count", len(items)))
	}
	return len(items)
}
