package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/delivery/http/middleware"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/pkg/utils"
	"github.com/midway/midway-backend/internal/pkg/validator"
	"github.com/midway/midway-backend/internal/usecase"
	"github.com/midway/midway-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// GroupHandler - group and meetup endpoints
type GroupHandler struct {
	groupUC *usecase.GroupUseCase
	logger  *zap.Logger
}

func NewGroupHandler(groupUC *usecase.GroupUseCase, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		groupUC: groupUC,
		logger:  logger,
	}
}

// Create - create a group, the creator becomes admin
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.groupUC.Create(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// MyGroups - groups the current user belongs to
func (h *GroupHandler) MyGroups(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groups, err := h.groupUC.ListForUser(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, groups, &utils.Meta{Total: len(groups)})
}

// Get - group details with members, members only
func (h *GroupHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	result, err := h.groupUC.Get(c.Context(), userID, groupID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// AddMember - add a user by email, admins only
func (h *GroupHandler) AddMember(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.groupUC.AddMember(c.Context(), userID, groupID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// RemoveMember - leave the group or, for admins, remove another member
func (h *GroupHandler) RemoveMember(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	memberID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid user id"))
	}

	if err := h.groupUC.RemoveMember(c.Context(), userID, groupID, memberID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Member removed successfully"}, nil)
}

// CreateMeetup - record a planned meetup for the group
func (h *GroupHandler) CreateMeetup(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	var req dto.CreateMeetupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.groupUC.CreateMeetup(c.Context(), userID, groupID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// ListMeetups - meetups for the group, newest first
func (h *GroupHandler) ListMeetups(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	meetups, err := h.groupUC.ListMeetups(c.Context(), userID, groupID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, meetups, &utils.Meta{Total: len(meetups)})
}

// SearchVenues - run a venue search from the saved locations of group members
func (h *GroupHandler) SearchVenues(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid group id"))
	}

	var req dto.GroupVenueSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.groupUC.SearchGroupVenues(c.Context(), userID, groupID, req.VenueType)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
