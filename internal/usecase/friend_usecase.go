package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/usecase/dto"
)

// FriendUseCase - friend requests and the friend list
type FriendUseCase struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	logger         *zap.Logger
}

func NewFriendUseCase(
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *FriendUseCase {
	return &FriendUseCase{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// SendRequest creates a pending friendship towards the user with the given
// email. Self-requests and duplicates (in either direction, any status)
// are rejected.
func (uc *FriendUseCase) SendRequest(ctx context.Context, senderID uuid.UUID, req dto.FriendRequestInput) (*dto.FriendshipResponse, error) {
	receiver, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if receiver.ID == senderID {
		return nil, errors.ErrInvalidInput.WithMessage("Cannot send friend request to yourself")
	}

	existing, err := uc.friendshipRepo.FindBetween(ctx, senderID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrConflict.WithMessage("Friend request already exists")
	}

	friendship := &domain.Friendship{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Status:     domain.FriendshipStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := uc.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	receiverResp := dto.ToUserResponse(receiver)
	return &dto.FriendshipResponse{
		ID:         friendship.ID,
		SenderID:   friendship.SenderID,
		ReceiverID: friendship.ReceiverID,
		Status:     friendship.Status,
		CreatedAt:  friendship.CreatedAt,
		Receiver:   &receiverResp,
	}, nil
}

// Respond accepts or rejects a pending request. Only the receiver may
// respond.
func (uc *FriendUseCase) Respond(ctx context.Context, userID, friendshipID uuid.UUID, status string) (*dto.FriendshipResponse, error) {
	if status != domain.FriendshipStatusAccepted && status != domain.FriendshipStatusRejected {
		return nil, errors.ErrInvalidInput.WithMessage("Invalid status")
	}

	friendship, err := uc.friendshipRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return nil, err
	}

	if friendship.ReceiverID != userID {
		return nil, errors.ErrForbidden.WithMessage("Only the receiver can respond to a friend request")
	}

	updated, err := uc.friendshipRepo.UpdateStatus(ctx, friendshipID, status)
	if err != nil {
		return nil, err
	}

	resp := &dto.FriendshipResponse{
		ID:         updated.ID,
		SenderID:   updated.SenderID,
		ReceiverID: updated.ReceiverID,
		Status:     updated.Status,
		CreatedAt:  updated.CreatedAt,
	}

	if sender, err := uc.userRepo.GetByID(ctx, updated.SenderID); err == nil {
		senderResp := dto.ToUserResponse(sender)
		resp.Sender = &senderResp
	}

	return resp, nil
}

// ListFriends returns the user's accepted friendships, each resolved to
// the counterpart user.
func (uc *FriendUseCase) ListFriends(ctx context.Context, userID uuid.UUID) ([]dto.FriendResponse, error) {
	friends, err := uc.friendshipRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.FriendResponse, 0, len(friends))
	for _, f := range friends {
		result = append(result, dto.FriendResponse{
			FriendshipID: f.FriendshipID,
			Friend:       dto.ToUserResponse(&f.User),
			CreatedAt:    f.CreatedAt,
		})
	}

	return result, nil
}

// ListPending returns requests waiting for the user's response, with the
// sender resolved.
func (uc *FriendUseCase) ListPending(ctx context.Context, userID uuid.UUID) ([]dto.FriendshipResponse, error) {
	pending, err := uc.friendshipRepo.ListIncoming(ctx, userID, []string{domain.FriendshipStatusPending})
	if err != nil {
		return nil, err
	}

	result := make([]dto.FriendshipResponse, 0, len(pending))
	for _, f := range pending {
		resp := dto.FriendshipResponse{
			ID:         f.ID,
			SenderID:   f.SenderID,
			ReceiverID: f.ReceiverID,
			Status:     f.Status,
			CreatedAt:  f.CreatedAt,
		}
		if sender, err := uc.userRepo.GetByID(ctx, f.SenderID); err == nil {
			senderResp := dto.ToUserResponse(sender)
			resp.Sender = &senderResp
		}
		result = append(result, resp)
	}

	return result, nil
}

// Remove deletes a friendship. Only a participant may remove it.
func (uc *FriendUseCase) Remove(ctx context.Context, userID, friendshipID uuid.UUID) error {
	friendship, err := uc.friendshipRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return err
	}

	if !friendship.Involves(userID) {
		return errors.ErrForbidden.WithMessage("Not a participant of this friendship")
	}

	return uc.friendshipRepo.Delete(ctx, friendshipID)
}
