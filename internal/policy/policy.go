// Package policy holds the pure access decisions over (user, ticket)
// pairs. The API layer trusts the client to apply these before offering
// status or assignment controls; nothing here touches storage.
package policy

import "github.com/deskflow/helpdesk/internal/domain"

// CanView reports whether the user may open the ticket: its creator,
// any agent scoped to the ticket's category, or the currently assigned
// agent. The assignee clause covers assignments that predate a domain
// change.
func CanView(user *domain.User, ticket *domain.Ticket) bool {
	if user == nil || ticket == nil {
		return false
	}
	if ticket.CreatedBy == user.Name {
		return true
	}
	if user.IsAgent() && user.Domain != nil && *user.Domain == ticket.Category {
		return true
	}
	if ticket.AssignedTo != nil && *ticket.AssignedTo == user.Name {
		return true
	}
	return false
}

// CanManage reports whether the user may change status or assignment:
// only an agent whose domain matches the ticket's category.
func CanManage(user *domain.User, ticket *domain.Ticket) bool {
	if user == nil || ticket == nil {
		return false
	}
	return user.IsAgent() && user.Domain != nil && *user.Domain == ticket.Category
}

// DomainMismatch reports whether an agent is looking outside their own
// domain. Used to gate the detail view behind a warning, not to deny
// access at the data layer.
func DomainMismatch(user *domain.User, ticket *domain.Ticket) bool {
	if user == nil || ticket == nil || !user.IsAgent() {
		return false
	}
	return user.Domain == nil || *user.Domain != ticket.Category
}
