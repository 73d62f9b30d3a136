package database

import (
	"context"
	"slices"
	"sync"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

// As coleções vivem só em memória: cada escrita troca a coleção inteira e
// cada leitura devolve uma cópia do slice.

type LeadRepository struct {
	mu    sync.RWMutex
	leads []entity.Lead
}

func NewLeadRepository(seed []entity.Lead) *LeadRepository {
	return &LeadRepository{leads: slices.Clone(seed)}
}

func (r *LeadRepository) All(ctx context.Context) ([]entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.leads), nil
}

func (r *LeadRepository) ReplaceAll(ctx context.Context, leads []entity.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.leads = slices.Clone(leads)
	r.mu.Unlock()
	return nil
}

type ClientRepository struct {
	mu      sync.RWMutex
	clients []entity.Client
}

func NewClientRepository(seed []entity.Client) *ClientRepository {
	return &ClientRepository{clients: slices.Clone(seed)}
}

func (r *ClientRepository) All(ctx context.Context) ([]entity.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.clients), nil
}

func (r *ClientRepository) ReplaceAll(ctx context.Context, clients []entity.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.clients = slices.Clone(clients)
	r.mu.Unlock()
	return nil
}

type FollowUpRepository struct {
	mu       sync.RWMutex
	preSale  []entity.PreSaleFollowUp
	postSale []entity.PostSaleFollowUp
}

func NewFollowUpRepository(pre []entity.PreSaleFollowUp, post []entity.PostSaleFollowUp) *FollowUpRepository {
	return &FollowUpRepository{preSale: slices.Clone(pre), postSale: slices.Clone(post)}
}

func (r *FollowUpRepository) AllPreSale(ctx context.Context) ([]entity.PreSaleFollowUp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.preSale), nil
}

func (r *FollowUpRepository) ReplacePreSale(ctx context.Context, items []entity.PreSaleFollowUp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.preSale = slices.Clone(items)
	r.mu.Unlock()
	return nil
}

func (r *FollowUpRepository) AllPostSale(ctx context.Context) ([]entity.PostSaleFollowUp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.postSale), nil
}

func (r *FollowUpRepository) ReplacePostSale(ctx context.Context, items []entity.PostSaleFollowUp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.postSale = slices.Clone(items)
	r.mu.Unlock()
	return nil
}

type SettingsRepository struct {
	mu       sync.RWMutex
	goal     entity.Goal
	company  entity.CompanySettings
	whatsApp entity.WhatsAppConfig
}

func NewSettingsRepository(goal entity.Goal, company entity.CompanySettings, wa entity.WhatsAppConfig) *SettingsRepository {
	return &SettingsRepository{goal: goal, company: company, whatsApp: wa}
}

func (r *SettingsRepository) Goal(ctx context.Context) (entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.goal, ctx.Err()
}

func (r *SettingsRepository) SaveGoal(ctx context.Context, g entity.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.goal = g
	r.mu.Unlock()
	return nil
}

func (r *SettingsRepository) Company(ctx context.Context) (entity.CompanySettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.company, ctx.Err()
}

func (r *SettingsRepository) SaveCompany(ctx context.Context, c entity.CompanySettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.company = c
	r.mu.Unlock()
	return nil
}

func (r *SettingsRepository) WhatsApp(ctx context.Context) (entity.WhatsAppConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.whatsApp, ctx.Err()
}

func (r *SettingsRepository) SaveWhatsApp(ctx context.Context, w entity.WhatsAppConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.whatsApp = w
	r.mu.Unlock()
	return nil
}
