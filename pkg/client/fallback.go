package client

import (
	"time"

	"github.com/deskflow/helpdesk/internal/domain"
)

// defaultTickets is the built-in list shown when the post-login fetch
// fails. It mirrors the server's seed fixture so a demo session still
// has something to render.
func defaultTickets() []domain.Ticket {
	now := time.Now().UTC()
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
					ID:        "c1",
					Author:    "Sarah Connor",
					Text:      "Ordering a replacement cable to test.",
					Timestamp: now.Add(-1 * day),
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
