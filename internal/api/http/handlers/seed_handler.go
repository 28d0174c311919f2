package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/deskflow/helpdesk/internal/api/dto"
	"github.com/deskflow/helpdesk/internal/service"
	apperrors "github.com/deskflow/helpdesk/pkg/util"
)

// SeedHandler exposes the destructive demo reseed.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler constructs handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seedService}
}

// Seed POST /api/seed. Wipes and reseeds both collections.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	users, tickets, err := h.seed.Seed(c.Context())
	if err != nil {
		return &apperrors.DomainError{
			Code:       "SEED_FAILED",
			Message:    "Server error during seeding",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}
	return c.JSON(dto.SeedResponse{
		Message: "Database seeded successfully",
		Users:   users,
		Tickets: tickets,
	})
}
