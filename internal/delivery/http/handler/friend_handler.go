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

// FriendHandler - friend request endpoints
type FriendHandler struct {
	friendUC *usecase.FriendUseCase
	logger   *zap.Logger
}

func NewFriendHandler(friendUC *usecase.FriendUseCase, logger *zap.Logger) *FriendHandler {
	return &FriendHandler{
		friendUC: friendUC,
		logger:   logger,
	}
}

// SendRequest - send a friend request by email
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.FriendRequestInput
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.friendUC.SendRequest(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// Respond - accept or reject a pending request
func (h *FriendHandler) Respond(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	friendshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid friendship id"))
	}

	var req dto.FriendRespondInput
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage(err.Error()))
	}

	result, err := h.friendUC.Respond(c.Context(), userID, friendshipID, req.Status)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List - accepted friends
func (h *FriendHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	friends, err := h.friendUC.ListFriends(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, friends, &utils.Meta{Total: len(friends)})
}

// ListPending - requests waiting for a response
func (h *FriendHandler) ListPending(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	pending, err := h.friendUC.ListPending(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pending, &utils.Meta{Total: len(pending)})
}

// Remove - delete a friendship
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	friendshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidInput.WithMessage("Invalid friendship id"))
	}

	if err := h.friendUC.Remove(c.Context(), userID, friendshipID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Friend removed successfully"}, nil)
}
