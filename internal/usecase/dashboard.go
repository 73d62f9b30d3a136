package usecase

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

const recentActivityLimit = 5

type DashboardUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Settings entity.SettingsRepositoryInterface
}

func NewDashboardUseCase(leads entity.LeadRepositoryInterface, settings entity.SettingsRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{Leads: leads, Settings: settings}
}

// progress devolve done/meta em %, limitado a 100. Meta zerada conta como 0%.
func progress(done, meta int) float64 {
	if meta <= 0 {
		return 0
	}
	return math.Min(100, float64(done)/float64(meta)*100)
}

func (uc *DashboardUseCase) Stats(ctx context.Context) (DashboardOutput, error) {
	leads, err := uc.Leads.All(ctx)
	if err != nil {
		return DashboardOutput{}, storageError(err)
	}
	goal, err := uc.Settings.Goal(ctx)
	if err != nil {
		return DashboardOutput{}, storageError(err)
	}

	out := DashboardOutput{Total: len(leads), Goal: goal}
	sales := map[string]*ProductSales{}
	var activity []Activity

	for _, l := range leads {
		switch l.Status {
		case entity.LeadCold:
			out.Cold++
		case entity.LeadTalking:
			out.Talking++
		case entity.LeadHot:
			out.Hot++
		case entity.LeadClosed:
			out.Closed++
		}

		if l.Status == entity.LeadClosed && l.SaleInfo != nil {
			out.Revenue += l.SaleInfo.Valor
			ps, ok := sales[l.SaleInfo.Produto]
			if !ok {
				ps = &ProductSales{Produto: l.SaleInfo.Produto}
				sales[l.SaleInfo.Produto] = ps
			}
			ps.Vendas++
			ps.Receita += l.SaleInfo.Valor
		}

		for _, h := range l.History {
			activity = append(activity, Activity{
				LeadID:      l.ID,
				LeadName:    l.Name,
				Date:        h.Date,
				Type:        h.Type,
				Description: h.Description,
			})
		}
	}

	out.GoalProgress = GoalProgress{
		LeadsFrios:   progress(out.Cold, goal.LeadsFriosMeta),
		LeadsQuentes: progress(out.Hot, goal.LeadsQuentesMeta),
		Conversas:    progress(out.Talking, goal.ConversasMeta),
	}

	out.TopProducts = make([]ProductSales, 0, len(sales))
	for _, ps := range sales {
		out.TopProducts = append(out.TopProducts, *ps)
	}
	slices.SortFunc(out.TopProducts, func(a, b ProductSales) int {
		if c := cmp.Compare(b.Vendas, a.Vendas); c != 0 {
			return c
		}
		return cmp.Compare(a.Produto, b.Produto)
	})

	slices.SortStableFunc(activity, func(a, b Activity) int { return b.Date.Compare(a.Date) })
	out.RecentActivity = append([]Activity{}, activity[:min(len(activity), recentActivityLimit)]...)

	return out, nil
}
