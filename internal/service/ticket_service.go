package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/deskflow/helpdesk/internal/domain"
	"github.com/deskflow/helpdesk/internal/repository"
	apperrors "github.com/deskflow/helpdesk/pkg/util"
)

// TicketService coordinates ticket workflows. Authorization is not
// re-checked here: callers were authenticated by the API layer, and
// domain/ownership gating is the client's concern.
type TicketService struct {
	tickets repository.TicketRepository
	users   repository.UserRepository
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.Category
	Priority    domain.Priority
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, users repository.UserRepository) *TicketService {
	return &TicketService{tickets: tickets, users: users}
}

// CreateTicket files a new ticket for the identified creator. Status
// starts at OPEN with an empty comment thread; the key is assigned by
// the store.
func (s *TicketService) CreateTicket(ctx context.Context, creatorKey string, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" ||
		input.Category == "" || input.Priority == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if !input.Category.IsValid() {
		return nil, apperrors.NewValidationError("Unknown category")
	}
	if !input.Priority.IsValid() {
		return nil, apperrors.NewValidationError("Unknown priority")
	}

	creator, err := s.users.GetByKey(ctx, creatorKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}

	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.StatusOpen,
		CreatedBy:   creator.Name,
		Comments:    []domain.Comment{},
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns every ticket, newest first. Visibility filtering
// is a client and policy concern, not a store one.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// GetTicket fetches one ticket by key.
func (s *TicketService) GetTicket(ctx context.Context, key string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	return ticket, nil
}

// UpdateTicket applies a partial update. Absent fields stay unchanged;
// updatedAt always refreshes. Any of the three statuses may be set at
// any time.
func (s *TicketService) UpdateTicket(ctx context.Context, key string, update repository.TicketUpdate) (*domain.Ticket, error) {
	if update.Status != nil && !update.Status.IsValid() {
		return nil, apperrors.NewValidationError("Unknown status")
	}
	if update.Priority != nil && !update.Priority.IsValid() {
		return nil, apperrors.NewValidationError("Unknown priority")
	}

	ticket, err := s.tickets.Update(ctx, key, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	return ticket, nil
}

// AppendComment adds one comment to the thread, authored under the
// identified user's display name. Comments never set isInternal.
func (s *TicketService) AppendComment(ctx context.Context, key, authorKey, text string) (*domain.Ticket, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("Comment text is required")
	}

	author, err := s.users.GetByKey(ctx, authorKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}

	comment := domain.Comment{
		ID:         "c-" + uuid.NewString(),
		Author:     author.Name,
		Text:       text,
		Timestamp:  time.Now().UTC(),
		IsInternal: false,
	}
	ticket, err := s.tickets.AppendComment(ctx, key, comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	return ticket, nil
}
