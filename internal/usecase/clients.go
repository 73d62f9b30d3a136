package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/listing"
)

// ClientSchema descreve a tabela de clientes para o listing.
var ClientSchema = listing.Schema[entity.Client]{
	ID:     func(c entity.Client) string { return c.ID },
	Status: func(c entity.Client) string { return string(c.Status) },
	Matches: func(c entity.Client, term string) bool {
		return listing.ContainsFold(c.Name, term) ||
			listing.ContainsFold(c.Email, term) ||
			strings.Contains(c.Phone, term)
	},
	Fields: map[string]func(a, b entity.Client) int{
		"name":   func(a, b entity.Client) int { return listing.CompareFold(a.Name, b.Name) },
		"email":  func(a, b entity.Client) int { return listing.CompareFold(a.Email, b.Email) },
		"phone":  func(a, b entity.Client) int { return strings.Compare(a.Phone, b.Phone) },
		"status": func(a, b entity.Client) int { return strings.Compare(string(a.Status), string(b.Status)) },
		"lastContact": func(a, b entity.Client) int {
			return listing.CompareTime(a.LastContact, b.LastContact)
		},
		"createdAt": func(a, b entity.Client) int {
			return listing.CompareTime(a.CreatedAt, b.CreatedAt)
		},
		"totalPurchases": func(a, b entity.Client) int {
			return listing.CompareFloat(a.TotalPurchases, b.TotalPurchases)
		},
	},
}

// ClientExporter gera a planilha dos clientes selecionados.
type ClientExporter interface {
	ExportClients(clients []entity.Client) ([]byte, error)
}

// ClientsUseCase é o dono da coleção de clientes e do estado da tabela
// (busca, filtro, ordenação, página e seleção).
type ClientsUseCase struct {
	mu       sync.Mutex
	Repo     entity.ClientRepositoryInterface
	Exporter ClientExporter
	Clock    Clock
	Logger   *zap.Logger

	query     listing.Query
	selection listing.Selection
}

func NewClientsUseCase(repo entity.ClientRepositoryInterface, exporter ClientExporter, pageSize int, clock Clock, logger *zap.Logger) *ClientsUseCase {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientsUseCase{
		Repo:     repo,
		Exporter: exporter,
		Clock:    clock,
		Logger:   logger,
		query: listing.Query{
			Status:   listing.StatusAll,
			Sort:     listing.SortState{Field: "name", Direction: listing.Asc},
			Page:     1,
			PageSize: pageSize,
		},
		selection: listing.NewSelection(),
	}
}

// view recalcula a página atual e grava de volta a página já limitada.
func (uc *ClientsUseCase) view(ctx context.Context) (ClientViewOutput, error) {
	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return ClientViewOutput{}, storageError(err)
	}

	page, err := listing.View(clients, ClientSchema, uc.query)
	if err != nil {
		return ClientViewOutput{}, &DomainError{Code: CodeInvalidSort, Message: err.Error(), Err: err}
	}
	uc.query.Page = page.Page

	ids := make([]string, 0, len(page.Items))
	for _, c := range page.Items {
		ids = append(ids, c.ID)
	}
	return ClientViewOutput{
		Page:         page,
		Query:        uc.query,
		Selection:    uc.selection,
		AllSelected:  uc.selection.AllSelected(ids),
		SomeSelected: uc.selection.SomeSelected(ids),
	}, nil
}

func (uc *ClientsUseCase) View(ctx context.Context) (ClientViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.view(ctx)
}

// SetSearch troca o termo de busca e volta para a primeira página.
func (uc *ClientsUseCase) SetSearch(ctx context.Context, term string) (ClientViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.query.Search = term
	uc.query.Page = 1
	return uc.view(ctx)
}

func (uc *ClientsUseCase) SetFilter(ctx context.Context, status string) (ClientViewOutput, error) {
	if status == "" {
		status = listing.StatusAll
	}
	if status != listing.StatusAll && !entity.ClientStatus(status).Valid() {
		return ClientViewOutput{}, newValidationError([]ValidationError{{"status", "filtro inválido"}})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.query.Status = status
	uc.query.Page = 1
	return uc.view(ctx)
}

// ToggleSort inverte a direção no mesmo campo e volta para asc em campo novo.
func (uc *ClientsUseCase) ToggleSort(ctx context.Context, field string) (ClientViewOutput, error) {
	if _, ok := ClientSchema.Fields[field]; !ok {
		return ClientViewOutput{}, &DomainError{
			Code:    CodeInvalidSort,
			Message: fmt.Sprintf("%s: %s", listing.ErrUnknownSortField.Error(), field),
			Err:     listing.ErrUnknownSortField,
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.query.Sort = uc.query.Sort.Toggle(field)
	return uc.view(ctx)
}

func (uc *ClientsUseCase) GoToPage(ctx context.Context, page int) (ClientViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.query.Page = page
	return uc.view(ctx)
}

func (uc *ClientsUseCase) ToggleSelection(ctx context.Context, id string) (ClientViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return ClientViewOutput{}, storageError(err)
	}
	if !slices.ContainsFunc(clients, func(c entity.Client) bool { return c.ID == id }) {
		return ClientViewOutput{}, notFound(entity.ErrClientNotFound)
	}

	uc.selection = uc.selection.Toggle(id)
	return uc.view(ctx)
}

// TogglePageSelection marca ou desmarca todos os clientes da página visível.
func (uc *ClientsUseCase) TogglePageSelection(ctx context.Context) (ClientViewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.view(ctx)
	if err != nil {
		return ClientViewOutput{}, err
	}
	ids := make([]string, 0, len(current.Items))
	for _, c := range current.Items {
		ids = append(ids, c.ID)
	}

	uc.selection = uc.selection.TogglePage(ids)
	return uc.view(ctx)
}

// AddClient cria o cliente a partir do formulário (onAddClient).
func (uc *ClientsUseCase) AddClient(ctx context.Context, input ClientInput) (*entity.Client, error) {
	if input.Status == "" {
		input.Status = entity.ClientLead
	}
	if input.Source == "" {
		input.Source = entity.ClientSourceWhatsApp
	}
	if errs := ValidateClientInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	client, err := entity.NewClient(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Phone),
		input.Status, input.Source, input.Notes, uc.Clock.now(),
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uc.Repo.ReplaceAll(ctx, append(slices.Clone(clients), *client)); err != nil {
		return nil, storageError(err)
	}

	uc.Logger.Info("client created", zap.String("client_id", client.ID))
	return client, nil
}

// UpdateClient aplica edições parciais; totalPurchases é sempre recalculado.
func (uc *ClientsUseCase) UpdateClient(ctx context.Context, id string, patch entity.ClientPatch) (entity.Client, error) {
	if errs := ValidateClientPatch(patch); len(errs) > 0 {
		return entity.Client{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return entity.Client{}, storageError(err)
	}
	idx := slices.IndexFunc(clients, func(c entity.Client) bool { return c.ID == id })
	if idx < 0 {
		return entity.Client{}, notFound(entity.ErrClientNotFound)
	}

	updated := clients[idx].Apply(patch)
	next := slices.Clone(clients)
	next[idx] = updated
	if err := uc.Repo.ReplaceAll(ctx, next); err != nil {
		return entity.Client{}, storageError(err)
	}
	return updated, nil
}

// AddHistory registra uma anotação no topo do histórico do cliente.
func (uc *ClientsUseCase) AddHistory(ctx context.Context, id string, input ClientHistoryInput) (entity.Client, error) {
	if errs := ValidateClientHistoryInput(input); len(errs) > 0 {
		return entity.Client{}, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return entity.Client{}, storageError(err)
	}
	idx := slices.IndexFunc(clients, func(c entity.Client) bool { return c.ID == id })
	if idx < 0 {
		return entity.Client{}, notFound(entity.ErrClientNotFound)
	}

	updated := clients[idx].AppendHistory(entity.ClientHistory{
		ID:          uuid.New().String(),
		Date:        uc.Clock.now(),
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		Outcome:     strings.TrimSpace(input.Outcome),
		Value:       input.Value,
	})
	next := slices.Clone(clients)
	next[idx] = updated
	if err := uc.Repo.ReplaceAll(ctx, next); err != nil {
		return entity.Client{}, storageError(err)
	}
	uc.Logger.Info("client history added", zap.String("client_id", id), zap.String("type", string(input.Type)))
	return updated, nil
}

func emptySelection() *DomainError {
	return &DomainError{Code: CodeEmptySelection, Message: entity.ErrEmptySelection.Error(), Err: entity.ErrEmptySelection}
}

// DeleteSelected remove os clientes selecionados e limpa a seleção.
func (uc *ClientsUseCase) DeleteSelected(ctx context.Context) (BulkOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.selection.Len() == 0 {
		return BulkOutput{}, emptySelection()
	}

	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return BulkOutput{}, storageError(err)
	}
	kept := slices.DeleteFunc(slices.Clone(clients), func(c entity.Client) bool {
		return uc.selection.Has(c.ID)
	})
	removed := len(clients) - len(kept)
	if err := uc.Repo.ReplaceAll(ctx, kept); err != nil {
		return BulkOutput{}, storageError(err)
	}

	remaining := make(map[string]struct{}, len(kept))
	for _, c := range kept {
		remaining[c.ID] = struct{}{}
	}
	uc.selection = uc.selection.Prune(func(id string) bool {
		_, ok := remaining[id]
		return ok
	})

	uc.Logger.Info("clients deleted", zap.Int("count", removed))
	return BulkOutput{
		Affected: removed,
		Message:  fmt.Sprintf("%d cliente(s) removido(s) com sucesso.", removed),
	}, nil
}

func (uc *ClientsUseCase) selected(ctx context.Context) ([]entity.Client, error) {
	if uc.selection.Len() == 0 {
		return nil, emptySelection()
	}
	clients, err := uc.Repo.All(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]entity.Client, 0, uc.selection.Len())
	for _, c := range clients {
		if uc.selection.Has(c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

// MessageSelected só contabiliza o envio; nenhuma mensagem sai daqui.
func (uc *ClientsUseCase) MessageSelected(ctx context.Context) (BulkOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	targets, err := uc.selected(ctx)
	if err != nil {
		return BulkOutput{}, err
	}
	uc.Logger.Info("bulk message requested", zap.Int("count", len(targets)))
	return BulkOutput{
		Affected: len(targets),
		Message:  fmt.Sprintf("Mensagens enviadas para %d cliente(s).", len(targets)),
	}, nil
}

func (uc *ClientsUseCase) ExportSelected(ctx context.Context) ([]byte, BulkOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	targets, err := uc.selected(ctx)
	if err != nil {
		return nil, BulkOutput{}, err
	}
	if uc.Exporter == nil {
		return nil, BulkOutput{}, &TechnicalError{Code: CodeExport, Message: "exportação não configurada"}
	}

	data, err := uc.Exporter.ExportClients(targets)
	if err != nil {
		return nil, BulkOutput{}, &TechnicalError{Code: CodeExport, Message: "falha ao exportar clientes: " + err.Error(), Err: err}
	}
	return data, BulkOutput{
		Affected: len(targets),
		Message:  fmt.Sprintf("Exportando dados de %d cliente(s).", len(targets)),
	}, nil
}
