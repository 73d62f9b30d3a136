package usecase

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/listing"
)

type FollowUpUseCase struct {
	mu         sync.Mutex
	Repo       entity.FollowUpRepositoryInterface
	Classifier entity.Classifier
	Clock      Clock
	Logger     *zap.Logger

	// overdue visto na última varredura, chave kind:id
	lastOverdue map[string]struct{}
}

func NewFollowUpUseCase(repo entity.FollowUpRepositoryInterface, classifier entity.Classifier, clock Clock, logger *zap.Logger) *FollowUpUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FollowUpUseCase{
		Repo:        repo,
		Classifier:  classifier,
		Clock:       clock,
		Logger:      logger,
		lastOverdue: map[string]struct{}{},
	}
}

func validStatusFilter(status string) bool {
	return status == "" || status == listing.StatusAll || entity.FollowUpStatus(status).Valid()
}

func (uc *FollowUpUseCase) refreshed(ctx context.Context) ([]entity.PreSaleFollowUp, []entity.PostSaleFollowUp, error) {
	pre, err := uc.Repo.AllPreSale(ctx)
	if err != nil {
		return nil, nil, storageError(err)
	}
	post, err := uc.Repo.AllPostSale(ctx)
	if err != nil {
		return nil, nil, storageError(err)
	}

	now := uc.Clock.now()
	for i := range pre {
		pre[i] = pre[i].Refresh(uc.Classifier, now)
	}
	for i := range post {
		post[i] = post[i].Refresh(uc.Classifier, now)
	}
	return pre, post, nil
}

// Board recalcula os status e agrupa por tipo (preSaleByType / postSaleByType).
func (uc *FollowUpUseCase) Board(ctx context.Context, status string) (FollowUpBoardOutput, error) {
	if !validStatusFilter(status) {
		return FollowUpBoardOutput{}, newValidationError([]ValidationError{{"status", "filtro inválido"}})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	pre, post, err := uc.refreshed(ctx)
	if err != nil {
		return FollowUpBoardOutput{}, err
	}

	out := FollowUpBoardOutput{
		PreSaleByType:  make(map[entity.FollowUpType][]entity.PreSaleFollowUp, len(entity.PreSaleTypes)),
		PostSaleByType: make(map[entity.FollowUpType][]entity.PostSaleFollowUp, len(entity.PostSaleTypes)),
		PreSaleTotal:   len(pre),
		PostSaleTotal:  len(post),
	}
	for _, t := range entity.PreSaleTypes {
		out.PreSaleByType[t] = []entity.PreSaleFollowUp{}
	}
	for _, t := range entity.PostSaleTypes {
		out.PostSaleByType[t] = []entity.PostSaleFollowUp{}
	}

	match := func(s entity.FollowUpStatus) bool {
		return status == "" || status == listing.StatusAll || string(s) == status
	}
	for _, f := range pre {
		if f.Status == entity.FollowUpOverdue {
			out.PreSaleOverdue++
		}
		if match(f.Status) {
			out.PreSaleByType[f.FollowUpType] = append(out.PreSaleByType[f.FollowUpType], f)
		}
	}
	for _, f := range post {
		if f.Status == entity.FollowUpOverdue && !f.Completed {
			out.PostSaleOverdue++
		}
		if match(f.Status) {
			out.PostSaleByType[f.FollowUpType] = append(out.PostSaleByType[f.FollowUpType], f)
		}
	}
	return out, nil
}

func (uc *FollowUpUseCase) CreatePreSale(ctx context.Context, input PreSaleInput) (*entity.PreSaleFollowUp, error) {
	if errs := ValidatePreSaleInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.Clock.now()
	f, err := entity.NewPreSaleFollowUp(
		strings.TrimSpace(input.ClientName),
		strings.TrimSpace(input.Phone),
		strings.TrimSpace(input.OriginalReason),
		input.FollowUpType, now,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	created := f.Refresh(uc.Classifier, now)

	pre, err := uc.Repo.AllPreSale(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if err := uc.Repo.ReplacePreSale(ctx, append(slices.Clone(pre), created)); err != nil {
		return nil, storageError(err)
	}
	return &created, nil
}

// ExecutePreSale tira o follow-up da lista depois do contato feito.
func (uc *FollowUpUseCase) ExecutePreSale(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	pre, err := uc.Repo.AllPreSale(ctx)
	if err != nil {
		return storageError(err)
	}
	kept := slices.DeleteFunc(slices.Clone(pre), func(f entity.PreSaleFollowUp) bool { return f.ID == id })
	if len(kept) == len(pre) {
		return notFound(entity.ErrFollowUpNotFound)
	}
	if err := uc.Repo.ReplacePreSale(ctx, kept); err != nil {
		return storageError(err)
	}

	delete(uc.lastOverdue, string(KindPreSale)+":"+id)
	uc.Logger.Info("pre-sale follow-up executed", zap.String("followup_id", id))
	return nil
}

func (uc *FollowUpUseCase) CompletePostSale(ctx context.Context, id string) (entity.PostSaleFollowUp, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	post, err := uc.Repo.AllPostSale(ctx)
	if err != nil {
		return entity.PostSaleFollowUp{}, storageError(err)
	}
	idx := slices.IndexFunc(post, func(f entity.PostSaleFollowUp) bool { return f.ID == id })
	if idx < 0 {
		return entity.PostSaleFollowUp{}, notFound(entity.ErrFollowUpNotFound)
	}

	next := slices.Clone(post)
	next[idx] = next[idx].Complete()
	if err := uc.Repo.ReplacePostSale(ctx, next); err != nil {
		return entity.PostSaleFollowUp{}, storageError(err)
	}

	delete(uc.lastOverdue, string(KindPostSale)+":"+id)
	return next[idx], nil
}

// HandleSaleClosed agenda os follow-ups de pós-venda (24H, 14DAYS, 30DAYS)
// a partir da data de fechamento. Reentregas do mesmo evento não duplicam.
func (uc *FollowUpUseCase) HandleSaleClosed(ctx context.Context, event entity.SaleClosed) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	post, err := uc.Repo.AllPostSale(ctx)
	if err != nil {
		return storageError(err)
	}

	now := uc.Clock.now()
	next := slices.Clone(post)
	scheduled := 0
	for _, t := range entity.PostSaleTypes {
		exists := slices.ContainsFunc(post, func(f entity.PostSaleFollowUp) bool {
			return f.LeadID != "" && f.LeadID == event.LeadID && f.FollowUpType == t &&
				f.PurchaseDate.Equal(event.DataFechamento)
		})
		if exists {
			continue
		}
		f, err := entity.NewPostSaleFollowUp(event.ClientName, event.Phone, event.Produto, event.DataFechamento, t)
		if err != nil {
			return &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
		}
		f.LeadID = event.LeadID
		next = append(next, f.Refresh(uc.Classifier, now))
		scheduled++
	}

	if scheduled == 0 {
		return nil
	}
	if err := uc.Repo.ReplacePostSale(ctx, next); err != nil {
		return storageError(err)
	}

	uc.Logger.Info("post-sale follow-ups scheduled",
		zap.String("lead_id", event.LeadID),
		zap.String("produto", event.Produto),
		zap.Int("count", scheduled))
	return nil
}

// Sweep grava os status recalculados e devolve os follow-ups que ficaram
// atrasados desde a varredura anterior.
func (uc *FollowUpUseCase) Sweep(ctx context.Context) ([]OverdueItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	pre, post, err := uc.refreshed(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.Repo.ReplacePreSale(ctx, pre); err != nil {
		return nil, storageError(err)
	}
	if err := uc.Repo.ReplacePostSale(ctx, post); err != nil {
		return nil, storageError(err)
	}

	current := make(map[string]struct{})
	var fresh []OverdueItem
	track := func(kind FollowUpKind, id, name string, t entity.FollowUpType, remaining string) {
		key := string(kind) + ":" + id
		current[key] = struct{}{}
		if _, seen := uc.lastOverdue[key]; !seen {
			fresh = append(fresh, OverdueItem{Kind: kind, ID: id, ClientName: name, FollowUpType: t, TimeRemaining: remaining})
		}
	}
	for _, f := range pre {
		if f.Status == entity.FollowUpOverdue {
			track(KindPreSale, f.ID, f.ClientName, f.FollowUpType, f.TimeRemaining)
		}
	}
	for _, f := range post {
		if f.Status == entity.FollowUpOverdue && !f.Completed {
			track(KindPostSale, f.ID, f.ClientName, f.FollowUpType, f.TimeRemaining)
		}
	}
	uc.lastOverdue = current
	return fresh, nil
}
