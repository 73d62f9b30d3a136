package handlers

import (
	"net/http"
	"time"
)

// BrokerConn é o pedaço de *amqp091.Connection usado no health check.
type BrokerConn interface {
	IsClosed() bool
}

type HealthHandler struct {
	RabbitMQ  BrokerConn
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler aceita rabbitMQ nil quando os eventos rodam em processo.
func NewHealthHandler(rabbitMQ BrokerConn) *HealthHandler {
	return &HealthHandler{
		RabbitMQ:  rabbitMQ,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := map[string]string{
		"storage": "in-memory",
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	if deps["rabbitmq"] != "healthy" && deps["rabbitmq"] != "not configured" {
		status = "degraded"
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
