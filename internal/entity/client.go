package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ClientStatus string

const (
	ClientLead     ClientStatus = "lead"
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientLead, ClientActive, ClientInactive:
		return true
	}
	return false
}

type ClientSource string

const (
	ClientSourceWhatsApp  ClientSource = "WhatsApp"
	ClientSourceBalcao    ClientSource = "Balcão"
	ClientSourceInstagram ClientSource = "Instagram"
	ClientSourceSite      ClientSource = "Site"
	ClientSourceIndicacao ClientSource = "Indicação"
)

func (s ClientSource) Valid() bool {
	switch s {
	case ClientSourceWhatsApp, ClientSourceBalcao, ClientSourceInstagram, ClientSourceSite, ClientSourceIndicacao:
		return true
	}
	return false
}

type ClientHistoryType string

const (
	ClientHistoryCall     ClientHistoryType = "call"
	ClientHistoryMessage  ClientHistoryType = "message"
	ClientHistoryVisit    ClientHistoryType = "visit"
	ClientHistoryPurchase ClientHistoryType = "purchase"
	ClientHistorySupport  ClientHistoryType = "support"
)

func (t ClientHistoryType) Valid() bool {
	switch t {
	case ClientHistoryCall, ClientHistoryMessage, ClientHistoryVisit, ClientHistoryPurchase, ClientHistorySupport:
		return true
	}
	return false
}

type ClientHistory struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Type        ClientHistoryType `json:"type"`
	Description string            `json:"description"`
	Outcome     string            `json:"outcome"`
	Value       *float64          `json:"value,omitempty"` // só em compras
}

type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Status      ClientStatus `json:"status"`
	Source      ClientSource `json:"source"`
	CreatedAt   time.Time    `json:"createdAt"`
	LastContact time.Time    `json:"lastContact"`

	// Derivado do histórico; recalculado em todo caminho que altera History.
	TotalPurchases float64         `json:"totalPurchases"`
	History        []ClientHistory `json:"history"`
	Notes          string          `json:"notes,omitempty"`
}

// ClientPatch carrega as alterações parciais de onUpdateClient.
type ClientPatch struct {
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Status      *ClientStatus    `json:"status,omitempty"`
	Source      *ClientSource    `json:"source,omitempty"`
	LastContact *time.Time       `json:"lastContact,omitempty"`
	History     *[]ClientHistory `json:"history,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// Factory
func NewClient(name, email, phone string, status ClientStatus, source ClientSource, notes string, now time.Time) (*Client, error) {
	client := &Client{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Status:      status,
		Source:      source,
		Notes:       notes,
		CreatedAt:   now,
		LastContact: now,
		History:     []ClientHistory{},
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	if !c.Source.Valid() {
		return errors.New("source is invalid")
	}
	return nil
}

// SumPurchases soma as entradas "purchase" que têm valor.
func SumPurchases(history []ClientHistory) float64 {
	var total float64
	for _, h := range history {
		if h.Type == ClientHistoryPurchase && h.Value != nil {
			total += *h.Value
		}
	}
	return total
}

func (c Client) clone() Client {
	out := c
	out.History = make([]ClientHistory, len(c.History))
	for i, h := range c.History {
		if h.Value != nil {
			v := *h.Value
			h.Value = &v
		}
		out.History[i] = h
	}
	return out
}

func (c Client) Apply(p ClientPatch) Client {
	out := c.clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.LastContact != nil {
		out.LastContact = *p.LastContact
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.History != nil {
		out.History = append([]ClientHistory(nil), (*p.History)...)
	}
	out.TotalPurchases = SumPurchases(out.History)
	return out
}

func (c Client) AppendHistory(h ClientHistory) Client {
	out := c.clone()
	out.History = append([]ClientHistory{h}, out.History...)
	if h.Date.After(out.LastContact) {
		out.LastContact = h.Date
	}
	out.TotalPurchases = SumPurchases(out.History)
	return out
}

type ClientRepositoryInterface interface {
	All(ctx context.Context) ([]Client, error)
	ReplaceAll(ctx context.Context, clients []Client) error
}
