package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/listing"
)

// leadBoardSchema: busca por nome/telefone, "status" do filtro é a origem do lead.
var leadBoardSchema = listing.Schema[entity.Lead]{
	ID:     func(l entity.Lead) string { return l.ID },
	Status: func(l entity.Lead) string { return string(l.Source) },
	Matches: func(l entity.Lead, term string) bool {
		return listing.ContainsFold(l.Name, term) || strings.Contains(l.Phone, term)
	},
}

func findLead(leads []entity.Lead, id string) int {
	return slices.IndexFunc(leads, func(l entity.Lead) bool { return l.ID == id })
}

func replaceLead(leads []entity.Lead, idx int, lead entity.Lead) []entity.Lead {
	out := slices.Clone(leads)
	out[idx] = lead
	return out
}

// ApplyDrop decide o que um arraste faz com a coleção. Quando nada muda a
// coleção devolvida é a mesma recebida; "closed" nunca é aplicado aqui.
func ApplyDrop(leads []entity.Lead, req MoveRequest) ([]entity.Lead, MoveOutcome, error) {
	if !req.To.Valid() {
		return leads, MoveInvalid, entity.ErrInvalidStatus
	}
	idx := findLead(leads, req.LeadID)
	if idx < 0 {
		return leads, MoveNotFound, entity.ErrLeadNotFound
	}

	lead := leads[idx]
	if lead.Status == req.To || req.From == req.To {
		return leads, MoveUnchanged, nil
	}
	if req.To == entity.LeadClosed {
		return leads, MoveSalePending, nil
	}

	moved, err := lead.WithStatus(req.To)
	if err != nil {
		return leads, MoveUnchanged, err
	}
	return replaceLead(leads, idx, moved), MoveApplied, nil
}

// ApplySale fecha o lead e anexa a venda na mesma cópia.
func ApplySale(leads []entity.Lead, leadID string, sale SaleInput, at Clock) ([]entity.Lead, entity.Lead, error) {
	idx := findLead(leads, leadID)
	if idx < 0 {
		return leads, entity.Lead{}, entity.ErrLeadNotFound
	}
	closed := leads[idx].Close(entity.SaleInfo{
		Produto:     strings.TrimSpace(sale.Produto),
		Valor:       sale.Valor,
		Vendedor:    strings.TrimSpace(sale.Vendedor),
		Observacoes: sale.Observacoes,
	}, at.now())
	return replaceLead(leads, idx, closed), closed, nil
}

func ApplyLeadUpdate(leads []entity.Lead, id string, patch entity.LeadPatch) ([]entity.Lead, entity.Lead, error) {
	idx := findLead(leads, id)
	if idx < 0 {
		return leads, entity.Lead{}, entity.ErrLeadNotFound
	}
	updated := leads[idx].Apply(patch)
	return replaceLead(leads, idx, updated), updated, nil
}

type KanbanUseCase struct {
	mu        sync.Mutex
	Repo      entity.LeadRepositoryInterface
	Publisher EventPublisher
	Clock     Clock
	Logger    *zap.Logger

	// pending guarda o lead aguardando o registro de venda.
	pending *entity.Lead
}

func NewKanbanUseCase(repo entity.LeadRepositoryInterface, publisher EventPublisher, clock Clock, logger *zap.Logger) *KanbanUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KanbanUseCase{
		Repo:      repo,
		Publisher: publisher,
		Clock:     clock,
		Logger:    logger,
	}
}

// Board agrupa os leads filtrados por coluna (leadsByStatus).
func (uc *KanbanUseCase) Board(ctx context.Context, search, source string) (BoardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return BoardOutput{}, storageError(err)
	}

	filtered := listing.Filter(leads, leadBoardSchema, search, source)
	byStatus := make(map[entity.LeadStatus][]entity.Lead, len(entity.LeadStatuses))
	for _, status := range entity.LeadStatuses {
		byStatus[status] = []entity.Lead{}
	}
	for _, l := range filtered {
		byStatus[l.Status] = append(byStatus[l.Status], l)
	}

	out := BoardOutput{LeadsByStatus: byStatus, Total: len(filtered)}
	if uc.pending != nil {
		p := *uc.pending
		out.PendingSale = &p
	}
	return out, nil
}

func (uc *KanbanUseCase) CreateLead(ctx context.Context, name, phone, reason string, source entity.LeadSource) (*entity.Lead, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lead, err := entity.NewLead(strings.TrimSpace(name), strings.TrimSpace(phone), reason, source, uc.Clock.now())
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}

	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uc.Repo.ReplaceAll(ctx, append(slices.Clone(leads), *lead)); err != nil {
		return nil, storageError(err)
	}
	return lead, nil
}

// DropLead é o gate do kanban (onDropLead).
func (uc *KanbanUseCase) DropLead(ctx context.Context, req MoveRequest) (MoveOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return MoveOutput{}, storageError(err)
	}

	next, outcome, err := ApplyDrop(leads, req)
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		return MoveOutput{Outcome: MoveNotFound}, notFound(err)
	case err != nil:
		return MoveOutput{Outcome: outcome}, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}

	lead := leads[findLead(leads, req.LeadID)]
	switch outcome {
	case MoveSalePending:
		// um novo pedido de fechamento substitui o anterior
		p := lead
		uc.pending = &p
		uc.Logger.Info("sale capture requested", zap.String("lead_id", lead.ID))
	case MoveApplied:
		if err := uc.Repo.ReplaceAll(ctx, next); err != nil {
			return MoveOutput{}, storageError(err)
		}
		lead = next[findLead(next, req.LeadID)]
		uc.Logger.Info("lead moved",
			zap.String("lead_id", lead.ID),
			zap.String("to", string(req.To)))
	}

	return MoveOutput{Outcome: outcome, Lead: &lead}, nil
}

func (uc *KanbanUseCase) PendingSale() *entity.Lead {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending == nil {
		return nil
	}
	p := *uc.pending
	return &p
}

// ConfirmSale fecha o lead pendente. Fechamento e publicação do evento
// rodam numa Transaction: se o evento falhar a coleção anterior volta e o
// fechamento continua pendente.
func (uc *KanbanUseCase) ConfirmSale(ctx context.Context, input SaleInput) (entity.Lead, error) {
	if errs := ValidateSaleInput(input); len(errs) > 0 {
		return entity.Lead{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.pending == nil {
		return entity.Lead{}, &DomainError{Code: CodeNoPendingSale, Message: entity.ErrNoPendingSale.Error(), Err: entity.ErrNoPendingSale}
	}

	previous, err := uc.Repo.All(ctx)
	if err != nil {
		return entity.Lead{}, storageError(err)
	}

	next, closed, err := ApplySale(previous, uc.pending.ID, input, uc.Clock)
	if err != nil {
		uc.pending = nil
		return entity.Lead{}, notFound(err)
	}

	event, err := entity.NewSaleClosed(closed)
	if err != nil {
		return entity.Lead{}, &TechnicalError{Code: CodeStorage, Message: err.Error(), Err: err}
	}

	txn := NewTransaction(uc.Logger)
	txn.AddOperation("close_lead", func(ctx context.Context) error {
		return uc.Repo.ReplaceAll(ctx, next)
	})
	txn.AddCompensation("restore_leads", func(ctx context.Context) error {
		return uc.Repo.ReplaceAll(context.WithoutCancel(ctx), previous)
	})
	if uc.Publisher != nil {
		txn.AddOperation("publish_sale_closed", func(ctx context.Context) error {
			return uc.Publisher.PublishSaleClosed(ctx, event)
		})
	}

	if err := txn.Execute(ctx); err != nil {
		uc.Logger.Error("sale confirmation rolled back", zap.String("lead_id", closed.ID), zap.Error(err))
		return entity.Lead{}, &TechnicalError{
			Code:    CodeEventPublish,
			Message: fmt.Sprintf("falha ao registrar venda: %v", err),
			Err:     err,
		}
	}

	uc.pending = nil
	uc.Logger.Info("sale confirmed",
		zap.String("lead_id", closed.ID),
		zap.String("produto", closed.SaleInfo.Produto),
		zap.Float64("valor", closed.SaleInfo.Valor),
		zap.String("vendedor", closed.SaleInfo.Vendedor))
	return closed, nil
}

// CancelSale abandona o fechamento pendente; o lead não muda.
func (uc *KanbanUseCase) CancelSale() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pending = nil
}

// UpdateLead aplica edições parciais (onUpdateLead). Status não passa por aqui.
func (uc *KanbanUseCase) UpdateLead(ctx context.Context, id string, patch entity.LeadPatch) (entity.Lead, error) {
	if errs := ValidateLeadPatch(patch); len(errs) > 0 {
		return entity.Lead{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return entity.Lead{}, storageError(err)
	}
	next, updated, err := ApplyLeadUpdate(leads, id, patch)
	if err != nil {
		return entity.Lead{}, notFound(err)
	}
	if err := uc.Repo.ReplaceAll(ctx, next); err != nil {
		return entity.Lead{}, storageError(err)
	}
	return updated, nil
}

// AddContact registra um novo contato no topo do histórico.
func (uc *KanbanUseCase) AddContact(ctx context.Context, id string, input ContactInput) (entity.Lead, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return entity.Lead{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return entity.Lead{}, storageError(err)
	}
	idx := findLead(leads, id)
	if idx < 0 {
		return entity.Lead{}, notFound(entity.ErrLeadNotFound)
	}

	updated := leads[idx].AppendHistory(entity.ContactHistory{
		ID:          uuid.New().String(),
		Date:        uc.Clock.now(),
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		Outcome:     strings.TrimSpace(input.Outcome),
	})
	if err := uc.Repo.ReplaceAll(ctx, replaceLead(leads, idx, updated)); err != nil {
		return entity.Lead{}, storageError(err)
	}
	return updated, nil
}
