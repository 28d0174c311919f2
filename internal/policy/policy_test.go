package policy

import (
	"testing"

	"github.com/deskflow/helpdesk/internal/domain"
)

func network() *domain.Category {
	c := domain.CategoryNetwork
	return &c
}

func hardware() *domain.Category {
	c := domain.CategoryHardware
	return &c
}

func strPtr(s string) *string { return &s }

func TestCanViewCreator(t *testing.T) {
	alice := &domain.User{Name: "Alice Johnson", Role: domain.RoleUser}
	ticket := &domain.Ticket{CreatedBy: "Alice Johnson", Category: domain.CategorySoftware}
	if !CanView(alice, ticket) {
		t.Fatalf("creator must always be able to view their ticket")
	}
}

func TestCanViewMatrix(t *testing.T) {
	agentNet := &domain.User{Name: "Bob Smith", Role: domain.RoleAgent, Domain: network()}
	agentHW := &domain.User{Name: "Sarah Connor", Role: domain.RoleAgent, Domain: hardware()}
	endUser := &domain.User{Name: "John Doe", Role: domain.RoleUser}

	netTicket := &domain.Ticket{CreatedBy: "Alice Johnson", Category: domain.CategoryNetwork}
	assignedToHW := &domain.Ticket{
		CreatedBy:  "Alice Johnson",
		Category:   domain.CategoryNetwork,
		AssignedTo: strPtr("Sarah Connor"),
	}

	cases := []struct {
		name   string
		user   *domain.User
		ticket *domain.Ticket
		want   bool
	}{
		{"agent matching domain", agentNet, netTicket, true},
		{"agent other domain", agentHW, netTicket, false},
		{"unrelated end user", endUser, netTicket, false},
		{"assigned agent despite domain mismatch", agentHW, assignedToHW, true},
		{"nil user", nil, netTicket, false},
	}
	for _, tc := range cases {
		if got := CanView(tc.user, tc.ticket); got != tc.want {
			t.Errorf("%s: CanView = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanManageRequiresDomainMatch(t *testing.T) {
	agentNet := &domain.User{Name: "Bob Smith", Role: domain.RoleAgent, Domain: network()}
	agentHW := &domain.User{Name: "Sarah Connor", Role: domain.RoleAgent, Domain: hardware()}
	creator := &domain.User{Name: "Alice Johnson", Role: domain.RoleUser}
	ticket := &domain.Ticket{CreatedBy: "Alice Johnson", Category: domain.CategoryNetwork}

	if !CanManage(agentNet, ticket) {
		t.Fatalf("agent with matching domain must manage")
	}
	if CanManage(agentHW, ticket) {
		t.Fatalf("agent with other domain must not manage")
	}
	if CanManage(creator, ticket) {
		t.Fatalf("creator without agent role must not manage")
	}
}

func TestDomainMismatch(t *testing.T) {
	agentNet := &domain.User{Name: "Bob Smith", Role: domain.RoleAgent, Domain: network()}
	endUser := &domain.User{Name: "Alice Johnson", Role: domain.RoleUser}
	netTicket := &domain.Ticket{Category: domain.CategoryNetwork}
	hwTicket := &domain.Ticket{Category: domain.CategoryHardware}

	if DomainMismatch(agentNet, netTicket) {
		t.Fatalf("matching domain is not a mismatch")
	}
	if !DomainMismatch(agentNet, hwTicket) {
		t.Fatalf("agent outside their domain must be flagged")
	}
	if DomainMismatch(endUser, hwTicket) {
		t.Fatalf("end users are never domain-mismatched")
	}
	agentNoDomain := &domain.User{Name: "Ghost", Role: domain.RoleAgent}
	if !DomainMismatch(agentNoDomain, netTicket) {
		t.Fatalf("agent without a domain must be flagged")
	}
}
