package usecase

import (
	"time"

	"github.com/xavierca1/soluvia-crm/internal/entity"
	"github.com/xavierca1/soluvia-crm/internal/listing"
)

type SaleInput struct {
	Produto     string  `json:"produto"`
	Valor       float64 `json:"valor"`
	Vendedor    string  `json:"vendedor"`
	Observacoes string  `json:"observacoes,omitempty"`
}

type MoveRequest struct {
	LeadID string            `json:"leadId"`
	From   entity.LeadStatus `json:"from,omitempty"`
	To     entity.LeadStatus `json:"to"`
}

type MoveOutcome string

const (
	MoveApplied     MoveOutcome = "applied"
	MoveUnchanged   MoveOutcome = "unchanged"
	MoveNotFound    MoveOutcome = "not_found"
	MoveSalePending MoveOutcome = "sale_required"
	MoveInvalid     MoveOutcome = "invalid"
)

type MoveOutput struct {
	Outcome MoveOutcome  `json:"outcome"`
	Lead    *entity.Lead `json:"lead,omitempty"`
}

type ContactInput struct {
	Type        entity.ContactType `json:"type"`
	Description string             `json:"description"`
	Outcome     string             `json:"outcome"`
}

type BoardOutput struct {
	LeadsByStatus map[entity.LeadStatus][]entity.Lead `json:"leadsByStatus"`
	Total         int                                 `json:"total"`
	PendingSale   *entity.Lead                        `json:"pendingSale,omitempty"`
}

type ClientInput struct {
	Name   string              `json:"name"`
	Email  string              `json:"email"`
	Phone  string              `json:"phone"`
	Status entity.ClientStatus `json:"status"`
	Source entity.ClientSource `json:"source"`
	Notes  string              `json:"notes,omitempty"`
}

// ClientHistoryInput é a anotação do detalhe do cliente; Value só em compras.
type ClientHistoryInput struct {
	Type        entity.ClientHistoryType `json:"type"`
	Description string                   `json:"description"`
	Outcome     string                   `json:"outcome"`
	Value       *float64                 `json:"value,omitempty"`
}

type ClientViewOutput struct {
	listing.Page[entity.Client]
	Query        listing.Query     `json:"query"`
	Selection    listing.Selection `json:"selection"`
	AllSelected  bool              `json:"allSelected"`
	SomeSelected bool              `json:"someSelected"`
}

type BulkOutput struct {
	Affected int    `json:"affected"`
	Message  string `json:"message"`
}

type PreSaleInput struct {
	ClientName     string              `json:"clientName"`
	Phone          string              `json:"phone"`
	OriginalReason string              `json:"originalReason"`
	FollowUpType   entity.FollowUpType `json:"followUpType"`
}

type FollowUpBoardOutput struct {
	PreSaleByType   map[entity.FollowUpType][]entity.PreSaleFollowUp  `json:"preSaleByType"`
	PostSaleByType  map[entity.FollowUpType][]entity.PostSaleFollowUp `json:"postSaleByType"`
	PreSaleTotal    int                                               `json:"preSaleTotal"`
	PreSaleOverdue  int                                               `json:"preSaleOverdue"`
	PostSaleTotal   int                                               `json:"postSaleTotal"`
	PostSaleOverdue int                                               `json:"postSaleOverdue"`
}

type FollowUpKind string

const (
	KindPreSale  FollowUpKind = "pre-sale"
	KindPostSale FollowUpKind = "post-sale"
)

// OverdueItem é um follow-up que venceu desde a varredura anterior.
type OverdueItem struct {
	Kind          FollowUpKind        `json:"kind"`
	ID            string              `json:"id"`
	ClientName    string              `json:"clientName"`
	FollowUpType  entity.FollowUpType `json:"followUpType"`
	TimeRemaining string              `json:"timeRemaining"`
}

type GoalProgress struct {
	LeadsFrios   float64 `json:"leadsFrios"`
	LeadsQuentes float64 `json:"leadsQuentes"`
	Conversas    float64 `json:"conversas"`
}

type ProductSales struct {
	Produto string  `json:"produto"`
	Vendas  int     `json:"vendas"`
	Receita float64 `json:"receita"`
}

type Activity struct {
	LeadID      string             `json:"leadId"`
	LeadName    string             `json:"leadName"`
	Date        time.Time          `json:"date"`
	Type        entity.ContactType `json:"type"`
	Description string             `json:"description"`
}

type DashboardOutput struct {
	Total          int            `json:"total"`
	Cold           int            `json:"cold"`
	Talking        int            `json:"talking"`
	Hot            int            `json:"hot"`
	Closed         int            `json:"closed"`
	Revenue        float64        `json:"revenue"`
	Goal           entity.Goal    `json:"goal"`
	GoalProgress   GoalProgress   `json:"goalProgress"`
	TopProducts    []ProductSales `json:"topProducts"`
	RecentActivity []Activity     `json:"recentActivity"`
}

type WhatsAppConnectInput struct {
	PhoneNumber string `json:"phone_number"`
	APIKey      string `json:"api_key"`
}
