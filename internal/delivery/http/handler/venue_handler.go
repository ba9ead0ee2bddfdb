package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/pkg/utils"
	"github.com/midway/midway-backend/internal/pkg/validator"
	"github.com/midway/midway-backend/internal/usecase"
	"github.com/midway/midway-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueHandler - venue search endpoints
type VenueHandler struct {
	venueUC *usecase.VenueSearchUseCase
	logger  *zap.Logger
}

func NewVenueHandler(venueUC *usecase.VenueSearchUseCase, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		venueUC: venueUC,
		logger:  logger,
	}
}

// Search - find venues around the midpoint of the given postcodes
func (h *VenueHandler) Search(c *fiber.Ctx) error {
	var req dto.VenueSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.venueUC.SearchVenues(c.Context(), req.Postcodes, req.VenueType)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Venues),
	})
}

// Stats - operator counters for the search pipeline
func (h *VenueHandler) Stats(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.venueUC.Stats(), nil)
}
