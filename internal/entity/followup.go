package entity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type FollowUpType string

const (
	FollowUp1H     FollowUpType = "1H"
	FollowUp24H    FollowUpType = "24H"
	FollowUp48H    FollowUpType = "48H"
	FollowUp7Days  FollowUpType = "7DAYS"
	FollowUp14Days FollowUpType = "14DAYS"
	FollowUp30Days FollowUpType = "30DAYS"
)

var (
	PreSaleTypes  = []FollowUpType{FollowUp1H, FollowUp24H, FollowUp48H, FollowUp7Days}
	PostSaleTypes = []FollowUpType{FollowUp24H, FollowUp14Days, FollowUp30Days}
)

const day = 24 * time.Hour

// Window devolve o prazo total do tipo de follow-up.
func (t FollowUpType) Window() (time.Duration, bool) {
	switch t {
	case FollowUp1H:
		return time.Hour, true
	case FollowUp24H:
		return day, true
	case FollowUp48H:
		return 2 * day, true
	case FollowUp7Days:
		return 7 * day, true
	case FollowUp14Days:
		return 14 * day, true
	case FollowUp30Days:
		return 30 * day, true
	}
	return 0, false
}

func (t FollowUpType) PreSale() bool {
	return containsType(PreSaleTypes, t)
}

func (t FollowUpType) PostSale() bool {
	return containsType(PostSaleTypes, t)
}

func containsType(types []FollowUpType, t FollowUpType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

type FollowUpStatus string

const (
	FollowUpOK      FollowUpStatus = "ok"
	FollowUpWarning FollowUpStatus = "warning"
	FollowUpOverdue FollowUpStatus = "overdue"
)

func (s FollowUpStatus) Valid() bool {
	switch s {
	case FollowUpOK, FollowUpWarning, FollowUpOverdue:
		return true
	}
	return false
}

// DefaultWarningThreshold é a fração do prazo abaixo da qual o follow-up vira warning.
const DefaultWarningThreshold = 0.25

type Classification struct {
	Status        FollowUpStatus
	Remaining     time.Duration
	TimeRemaining string
}

type Classifier struct {
	WarningThreshold float64
}

func NewClassifier(threshold float64) Classifier {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultWarningThreshold
	}
	return Classifier{WarningThreshold: threshold}
}

// Classify: remaining <= 0 é overdue, remaining <= threshold*window é warning, senão ok.
func (c Classifier) Classify(start time.Time, t FollowUpType, now time.Time) (Classification, error) {
	window, ok := t.Window()
	if !ok {
		return Classification{}, ErrInvalidFollowUpType
	}
	threshold := c.WarningThreshold
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultWarningThreshold
	}

	remaining := window - now.Sub(start)
	status := FollowUpOK
	switch {
	case remaining <= 0:
		status = FollowUpOverdue
	case remaining <= time.Duration(float64(window)*threshold):
		status = FollowUpWarning
	}

	return Classification{
		Status:        status,
		Remaining:     remaining,
		TimeRemaining: FormatRemaining(remaining),
	}, nil
}

// FormatRemaining gera o texto exibido no card: "15 min restantes", "6h restantes",
// "3 dias restantes", "30 min atrasado".
func FormatRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		span, _ := formatSpan(-remaining)
		return span + " atrasado"
	}
	span, singular := formatSpan(remaining)
	if singular {
		return span + " restante"
	}
	return span + " restantes"
}

func formatSpan(d time.Duration) (string, bool) {
	switch {
	case d < time.Hour:
		m := int(d / time.Minute)
		return fmt.Sprintf("%d min", m), m == 1
	case d < day:
		h := int(d / time.Hour)
		return fmt.Sprintf("%dh", h), h == 1
	default:
		days := int(d / day)
		if days == 1 {
			return "1 dia", true
		}
		return fmt.Sprintf("%d dias", days), false
	}
}

type PreSaleFollowUp struct {
	ID             string         `json:"id"`
	ClientName     string         `json:"clientName"`
	Phone          string         `json:"phone"`
	OriginalReason string         `json:"originalReason"`
	CreatedAt      time.Time      `json:"createdAt"`
	FollowUpType   FollowUpType   `json:"followUpType"`
	Status         FollowUpStatus `json:"status"`
	TimeRemaining  string         `json:"timeRemaining"`
}

func NewPreSaleFollowUp(clientName, phone, reason string, t FollowUpType, now time.Time) (*PreSaleFollowUp, error) {
	if clientName == "" {
		return nil, errors.New("clientName is required")
	}
	if phone == "" {
		return nil, errors.New("phone is required")
	}
	if !t.PreSale() {
		return nil, ErrInvalidFollowUpType
	}
	return &PreSaleFollowUp{
		ID:             uuid.New().String(),
		ClientName:     clientName,
		Phone:          phone,
		OriginalReason: reason,
		CreatedAt:      now,
		FollowUpType:   t,
		Status:         FollowUpOK,
	}, nil
}

// Refresh recalcula status e timeRemaining a partir de createdAt.
func (f PreSaleFollowUp) Refresh(c Classifier, now time.Time) PreSaleFollowUp {
	cl, err := c.Classify(f.CreatedAt, f.FollowUpType, now)
	if err != nil {
		return f
	}
	f.Status = cl.Status
	f.TimeRemaining = cl.TimeRemaining
	return f
}

type PostSaleFollowUp struct {
	ID               string         `json:"id"`
	ClientName       string         `json:"clientName"`
	Phone            string         `json:"phone"`
	ProductPurchased string         `json:"productPurchased"`
	PurchaseDate     time.Time      `json:"purchaseDate"`
	FollowUpType     FollowUpType   `json:"followUpType"`
	Completed        bool           `json:"completed"`
	Status           FollowUpStatus `json:"status"`
	TimeRemaining    string         `json:"timeRemaining"`
	LeadID           string         `json:"leadId,omitempty"`
}

func NewPostSaleFollowUp(clientName, phone, product string, purchaseDate time.Time, t FollowUpType) (*PostSaleFollowUp, error) {
	if clientName == "" {
		return nil, errors.New("clientName is required")
	}
	if !t.PostSale() {
		return nil, ErrInvalidFollowUpType
	}
	return &PostSaleFollowUp{
		ID:               uuid.New().String(),
		ClientName:       clientName,
		Phone:            phone,
		ProductPurchased: product,
		PurchaseDate:     purchaseDate,
		FollowUpType:     t,
		Status:           FollowUpOK,
	}, nil
}

// Refresh recalcula o status; concluído é sempre ok.
func (f PostSaleFollowUp) Refresh(c Classifier, now time.Time) PostSaleFollowUp {
	if f.Completed {
		f.Status = FollowUpOK
		f.TimeRemaining = "concluído"
		return f
	}
	cl, err := c.Classify(f.PurchaseDate, f.FollowUpType, now)
	if err != nil {
		return f
	}
	f.Status = cl.Status
	f.TimeRemaining = cl.TimeRemaining
	return f
}

func (f PostSaleFollowUp) Complete() PostSaleFollowUp {
	f.Completed = true
	f.Status = FollowUpOK
	f.TimeRemaining = "concluído"
	return f
}

type FollowUpRepositoryInterface interface {
	AllPreSale(ctx context.Context) ([]PreSaleFollowUp, error)
	ReplacePreSale(ctx context.Context, items []PreSaleFollowUp) error
	AllPostSale(ctx context.Context) ([]PostSaleFollowUp, error)
	ReplacePostSale(ctx context.Context, items []PostSaleFollowUp) error
}
