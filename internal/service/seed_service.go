package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deskflow/helpdesk/internal/auth"
	"github.com/deskflow/helpdesk/internal/domain"
	"github.com/deskflow/helpdesk/internal/repository"
)

// SeedService wipes and reseeds both collections with the canonical
// demo fixture. Destructive by design; exposed as POST /api/seed.
type SeedService struct {
	users      repository.UserRepository
	tickets    repository.TicketRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewSeedService constructs the service.
func NewSeedService(users repository.UserRepository, tickets repository.TicketRepository, bcryptCost int, logger *zap.Logger) *SeedService {
	return &SeedService{users: users, tickets: tickets, bcryptCost: bcryptCost, logger: logger}
}

type seedAccount struct {
	key      string
	name     string
	email    string
	password string
	role     domain.Role
	domain   *domain.Category
	avatar   string
}

func categoryPtr(c domain.Category) *domain.Category { return &c }

func seedAccounts() []seedAccount {
	return []seedAccount{
		{key: "u1", name: "Alice Johnson", email: "alice@company.com", password: "alice123",
			role: domain.RoleUser, avatar: "https://picsum.photos/100/100?random=1"},
		{key: "u2", name: "John Doe", email: "john@company.com", password: "john123",
			role: domain.RoleUser, avatar: "https://picsum.photos/100/100?random=4"},
		{key: "u3", name: "Hari", email: "hari@company.com", password: "hari123",
			role: domain.RoleUser, avatar: "https://picsum.photos/100/100?random=4"},
		{key: "a1", name: "Bob Smith", email: "bob@company.com", password: "bob123",
			role: domain.RoleAgent, domain: categoryPtr(domain.CategoryNetwork), avatar: "https://picsum.photos/100/100?random=2"},
		{key: "a2", name: "Sarah Connor", email: "sarah@company.com", password: "sarah123",
			role: domain.RoleAgent, domain: categoryPtr(domain.CategoryHardware), avatar: "https://picsum.photos/100/100?random=3"},
		{key: "a3", name: "Mike Dev", email: "mike@company.com", password: "mike123",
			role: domain.RoleAgent, domain: categoryPtr(domain.CategorySoftware), avatar: "https://picsum.photos/100/100?random=5"},
		{key: "a4", name: "Charlie Power", email: "charlie@company.com", password: "charlie123",
			role: domain.RoleAgent, domain: categoryPtr(domain.CategoryElectricity), avatar: "https://picsum.photos/100/100?random=6"},
	}
}

func seedTickets(now time.Time) []domain.Ticket {
	day := 24 * time.Hour
	assigned := func(name string) *string { return &name }
	return []domain.Ticket{
		{
			ID:          "T-1001",
			Title:       "WiFi keeps disconnecting in Meeting Room B",
			Description: "Every time we try to present, the connection drops. It happens every 10 minutes.",
			Category:    domain.CategoryNetwork,
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusOpen,
			CreatedBy:   "Alice Johnson",
			CreatedAt:   now.Add(-2 * day),
			UpdatedAt:   now.Add(-2 * day),
			Comments:    []domain.Comment{},
		},
		{
			ID:          "T-1002",
			Title:       "Monitr flickering",
			Description: "My secondary monitor has a weird pink tint and flickers.",
			Category:    domain.CategoryHardware,
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusInProgress,
			CreatedBy:   "John Doe",
			AssignedTo:  assigned("Sarah Connor"),
			CreatedAt:   now.Add(-5 * day),
			UpdatedAt:   now.Add(-1 * day),
			Comments: []domain.Comment{
				{
					ID:         "c1",
					Author:     "Sarah Connor",
					Text:       "Ordering a replacement cable to test.",
					Timestamp:  now.Add(-1 * day),
					IsInternal: false,
				},
			},
		},
		{
			ID:          "T-1003",
			Title:       "Need IntelliJ License",
			Description: "My trial expired, need a corporate key.",
			Category:    domain.CategorySoftware,
			Priority:    domain.PriorityLow,
			Status:      domain.StatusResolved,
			CreatedBy:   "Alice Johnson",
			AssignedTo:  assigned("Mike Dev"),
			CreatedAt:   now.Add(-10 * day),
			UpdatedAt:   now.Add(-9 * day),
			Comments:    []domain.Comment{},
		},
		{
			ID:          "T-1004",
			Title:       "Power outlet sparking",
			Description: "The outlet near desk 4B sparked when I plugged in my charger.",
			Category:    domain.CategoryElectricity,
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusOpen,
			CreatedBy:   "Alice Johnson",
			CreatedAt:   now,
			UpdatedAt:   now,
			Comments:    []domain.Comment{},
		},
	}
}

// Seed replaces all users and tickets, returning the inserted counts.
// The ticket key sequence is advanced past the seeded keys so the next
// created ticket cannot collide with them.
func (s *SeedService) Seed(ctx context.Context) (int, int, error) {
	if err := s.tickets.DeleteAll(ctx); err != nil {
		return 0, 0, err
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return 0, 0, err
	}

	accounts := seedAccounts()
	for _, acct := range accounts {
		hash, err := auth.HashPassword(acct.password, s.bcryptCost)
		if err != nil {
			return 0, 0, err
		}
		user := &domain.User{
			ID:           acct.key,
			Name:         acct.name,
			Email:        acct.email,
			PasswordHash: hash,
			Role:         acct.role,
			Domain:       acct.domain,
			Avatar:       acct.avatar,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return 0, 0, err
		}
	}

	tickets := seedTickets(time.Now().UTC())
	for i := range tickets {
		if err := s.tickets.CreateSeeded(ctx, &tickets[i]); err != nil {
			return 0, 0, err
		}
	}
	if err := s.tickets.AdvanceKeySequence(ctx, 1004); err != nil {
		return 0, 0, err
	}

	s.logger.Info("database seeded",
		zap.Int("users", len(accounts)),
		zap.Int("tickets", len(tickets)),
	)
	return len(accounts), len(tickets), nil
}
