package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/deskflow/helpdesk/internal/api/dto"
	"github.com/deskflow/helpdesk/internal/domain"
	"github.com/deskflow/helpdesk/internal/policy"
)

// View names one of the client's screens.
type View string

const (
	ViewLogin        View = "login"
	ViewDashboard    View = "dashboard"
	ViewRaiseTicket  View = "raise_ticket"
	ViewTicketList   View = "ticket_list"
	ViewTicketDetail View = "ticket_detail"
)

// Session holds the transient client-side state: the authenticated
// user, a disposable copy of the full ticket collection, and the
// current view with at most one selected-ticket parameter. The store
// remains the sole durable owner of both entities.
type Session struct {
	api    *Client
	logger *zap.Logger

	User             *domain.User
	Tickets          []domain.Ticket
	CurrentView      View
	SelectedTicketID string

	token string
}

// NewSession builds a logged-out session.
func NewSession(api *Client, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{api: api, logger: logger, CurrentView: ViewLogin}
}

func (s *Session) ctx(ctx context.Context) context.Context {
	if s.token == "" {
		return ctx
	}
	return WithToken(ctx, s.token)
}

// Login authenticates and pulls the full ticket collection. When the
// refetch fails the session falls back to the built-in default list
// instead of surfacing an error; the next successful sync replaces it.
func (s *Session) Login(ctx context.Context, email string, role domain.Role, password string) error {
	user, token, err := s.api.Login(ctx, email, role, password)
	if err != nil {
		return err
	}
	s.User = user
	s.token = token
	s.CurrentView = ViewDashboard

	tickets, err := s.api.Tickets(s.ctx(ctx))
	if err != nil {
		s.logger.Warn("ticket refetch failed; using default list", zap.Error(err))
		s.Tickets = defaultTickets()
		return nil
	}
	s.Tickets = tickets
	return nil
}

// Logout discards all session state.
func (s *Session) Logout() {
	s.User = nil
	s.Tickets = nil
	s.token = ""
	s.CurrentView = ViewLogin
	s.SelectedTicketID = ""
}

// RaiseTicket files a ticket, optimistically prepends it, then
// re-syncs with the store and reconciles the two lists by id rather
// than discarding either.
func (s *Session) RaiseTicket(ctx context.Context, req dto.CreateTicketRequest) (*domain.Ticket, error) {
	created, err := s.api.CreateTicket(s.ctx(ctx), req)
	if err != nil {
		return nil, err
	}
	s.Tickets = append([]domain.Ticket{*created}, s.Tickets...)

	fromStore, err := s.api.Tickets(s.ctx(ctx))
	if err != nil {
		s.logger.Warn("post-create refetch failed; keeping optimistic list", zap.Error(err))
		return created, nil
	}
	s.Tickets = reconcile(fromStore, s.Tickets)
	return created, nil
}

// UpdateTicket applies a partial update and re-syncs the one affected
// ticket from the response. Local state is untouched on failure.
func (s *Session) UpdateTicket(ctx context.Context, id string, req dto.UpdateTicketRequest) (*domain.Ticket, error) {
	updated, err := s.api.UpdateTicket(s.ctx(ctx), id, req)
	if err != nil {
		s.logger.Warn("ticket update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.replace(updated)
	return updated, nil
}

// AddComment appends a comment and re-syncs the affected ticket.
func (s *Session) AddComment(ctx context.Context, id, text string) (*domain.Ticket, error) {
	updated, err := s.api.AddComment(s.ctx(ctx), id, text)
	if err != nil {
		s.logger.Warn("comment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.replace(updated)
	return updated, nil
}

// VisibleTickets filters the collection down to what the current user
// may see, per the access policy.
func (s *Session) VisibleTickets() []domain.Ticket {
	if s.User == nil {
		return nil
	}
	visible := make([]domain.Ticket, 0, len(s.Tickets))
	for i := range s.Tickets {
		if policy.CanView(s.User, &s.Tickets[i]) {
			visible = append(visible, s.Tickets[i])
		}
	}
	return visible
}

// CanManage reports whether the current user gets status/assignment
// controls for the ticket.
func (s *Session) CanManage(ticket *domain.Ticket) bool {
	return policy.CanManage(s.User, ticket)
}

// OpenTicket navigates to the detail view. The returned flag warns
// when an agent is stepping outside their domain; navigation still
// proceeds, matching the warn-and-redirect behavior rather than a
// hard denial.
func (s *Session) OpenTicket(id string) (mismatch bool) {
	s.SelectedTicketID = id
	s.CurrentView = ViewTicketDetail
	ticket := s.ticketByID(id)
	if ticket == nil {
		return false
	}
	return policy.DomainMismatch(s.User, ticket)
}

// Navigate switches views without touching the network.
func (s *Session) Navigate(view View) {
	s.CurrentView = view
	if view != ViewTicketDetail {
		s.SelectedTicketID = ""
	}
}

func (s *Session) ticketByID(id string) *domain.Ticket {
	for i := range s.Tickets {
		if s.Tickets[i].ID == id {
			return &s.Tickets[i]
		}
	}
	return nil
}

func (s *Session) replace(updated *domain.Ticket) {
	for i := range s.Tickets {
		if s.Tickets[i].ID == updated.ID {
			s.Tickets[i] = *updated
			return
		}
	}
	s.Tickets = append(s.Tickets, *updated)
}

// reconcile merges the store's list with the local one by id. Store
// entries win; local-only entries (an optimistic create the refetch
// missed) are kept at the tail.
func reconcile(fromStore, local []domain.Ticket) []domain.Ticket {
	seen := make(map[string]struct{}, len(fromStore))
	merged := make([]domain.Ticket, 0, len(fromStore))
	for _, t := range fromStore {
		merged = append(merged, t)
		seen[t.ID] = struct{}{}
	}
	for _, t := range local {
		if _, ok := seen[t.ID]; !ok {
			merged = append(merged, t)
		}
	}
	return merged
}
