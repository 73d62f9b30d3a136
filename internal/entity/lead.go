package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadCold    LeadStatus = "cold"
	LeadTalking LeadStatus = "talking"
	LeadHot     LeadStatus = "hot"
	LeadClosed  LeadStatus = "closed"
)

// LeadStatuses segue a ordem das colunas do kanban.
var LeadStatuses = []LeadStatus{LeadCold, LeadTalking, LeadHot, LeadClosed}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadCold, LeadTalking, LeadHot, LeadClosed:
		return true
	}
	return false
}

type LeadSource string

const (
	SourceWhatsApp  LeadSource = "WhatsApp"
	SourceBalcao    LeadSource = "Balcão"
	SourceInstagram LeadSource = "Instagram"
)

func (s LeadSource) Valid() bool {
	switch s {
	case SourceWhatsApp, SourceBalcao, SourceInstagram:
		return true
	}
	return false
}

type ContactType string

const (
	ContactCall    ContactType = "call"
	ContactMessage ContactType = "message"
	ContactVisit   ContactType = "visit"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactCall, ContactMessage, ContactVisit:
		return true
	}
	return false
}

type ContactHistory struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Type        ContactType `json:"type"`
	Description string      `json:"description"`
	Outcome     string      `json:"outcome"`
}

// SaleInfo é o registro de venda anexado ao lead no fechamento.
type SaleInfo struct {
	Produto        string    `json:"produto"`
	Valor          float64   `json:"valor"`
	Vendedor       string    `json:"vendedor"`
	Observacoes    string    `json:"observacoes,omitempty"`
	DataFechamento time.Time `json:"dataFechamento"`
}

// Lead é tratado como valor: toda alteração devolve uma cópia nova.
type Lead struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	LastContact   time.Time        `json:"lastContact"`
	ContactReason string           `json:"contactReason"`
	Source        LeadSource       `json:"source"`
	Status        LeadStatus       `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	History       []ContactHistory `json:"history"`
	SaleInfo      *SaleInfo        `json:"saleInfo,omitempty"`
}

// LeadPatch carrega as alterações parciais aceitas por onUpdateLead.
// Status e SaleInfo ficam de fora: só mudam pelo gate do kanban.
type LeadPatch struct {
	Name          *string           `json:"name,omitempty"`
	Phone         *string           `json:"phone,omitempty"`
	ContactReason *string           `json:"contactReason,omitempty"`
	Source        *LeadSource       `json:"source,omitempty"`
	LastContact   *time.Time        `json:"lastContact,omitempty"`
	History       *[]ContactHistory `json:"history,omitempty"`
}

func NewLead(name, phone, contactReason string, source LeadSource, now time.Time) (*Lead, error) {
	lead := &Lead{
		ID:            uuid.New().String(),
		Name:          name,
		Phone:         phone,
		ContactReason: contactReason,
		Source:        source,
		Status:        LeadCold,
		CreatedAt:     now,
		LastContact:   now,
		History:       []ContactHistory{},
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if !l.Source.Valid() {
		return errors.New("source is invalid")
	}
	if !l.Status.Valid() {
		return ErrInvalidStatus
	}
	if !l.Consistent() {
		return ErrSaleInfoMismatch
	}
	return nil
}

// Consistent: saleInfo existe se e somente se o lead está fechado.
func (l Lead) Consistent() bool {
	return (l.Status == LeadClosed) == (l.SaleInfo != nil)
}

func (l Lead) clone() Lead {
	out := l
	out.History = append([]ContactHistory(nil), l.History...)
	if l.SaleInfo != nil {
		sale := *l.SaleInfo
		out.SaleInfo = &sale
	}
	return out
}

// WithStatus move o lead para uma coluna que não é closed. Sair de closed descarta a venda.
func (l Lead) WithStatus(status LeadStatus) (Lead, error) {
	if !status.Valid() {
		return l, ErrInvalidStatus
	}
	if status == LeadClosed {
		return l, ErrSaleRequired
	}
	out := l.clone()
	out.Status = status
	out.SaleInfo = nil
	return out, nil
}

// Close anexa a venda e marca closed na mesma cópia.
func (l Lead) Close(sale SaleInfo, at time.Time) Lead {
	out := l.clone()
	sale.DataFechamento = at
	out.Status = LeadClosed
	out.SaleInfo = &sale
	return out
}

func (l Lead) Apply(p LeadPatch) Lead {
	out := l.clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.ContactReason != nil {
		out.ContactReason = *p.ContactReason
	}
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.LastContact != nil {
		out.LastContact = *p.LastContact
	}
	if p.History != nil {
		out.History = append([]ContactHistory(nil), (*p.History)...)
	}
	return out
}

// AppendHistory insere no topo; o contato mais recente vem primeiro.
func (l Lead) AppendHistory(h ContactHistory) Lead {
	out := l.clone()
	out.History = append([]ContactHistory{h}, out.History...)
	if h.Date.After(out.LastContact) {
		out.LastContact = h.Date
	}
	return out
}

type LeadRepositoryInterface interface {
	All(ctx context.Context) ([]Lead, error)
	ReplaceAll(ctx context.Context, leads []Lead) error
}
