package dto

import "github.com/deskflow/helpdesk/internal/domain"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Priority    domain.Priority `json:"priority"`
}

// UpdateTicketRequest carries a partial update; nil means unchanged.
type UpdateTicketRequest struct {
	Status      *domain.Status   `json:"status"`
	AssignedTo  *string          `json:"assignedTo"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *domain.Priority `json:"priority"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// TicketResponse wraps a single mutated or created ticket.
type TicketResponse struct {
	Success bool           `json:"success"`
	Ticket  *domain.Ticket `json:"ticket"`
}

// SeedResponse reports reseed counts.
type SeedResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Tickets int    `json:"tickets"`
}
