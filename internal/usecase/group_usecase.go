package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/usecase/dto"
)

// GroupUseCase - groups, memberships, meetups and the group-location
// adapter feeding member locations into venue search
type GroupUseCase struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	venueUC   *VenueSearchUseCase
	logger    *zap.Logger
}

func NewGroupUseCase(
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	venueUC *VenueSearchUseCase,
	logger *zap.Logger,
) *GroupUseCase {
	return &GroupUseCase{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		venueUC:   venueUC,
		logger:    logger,
	}
}

// Create stores a new group; the creator becomes its admin member.
func (uc *GroupUseCase) Create(ctx context.Context, creatorID uuid.UUID, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := &domain.Group{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   creatorID,
		CreatedAt:   time.Now(),
	}

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return uc.groupResponse(ctx, group)
}

// Get returns a group with members; only members may see it.
func (uc *GroupUseCase) Get(ctx context.Context, userID, groupID uuid.UUID) (*dto.GroupResponse, error) {
	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	return uc.groupResponse(ctx, group)
}

// ListForUser returns the groups the user belongs to.
func (uc *GroupUseCase) ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.GroupResponse, error) {
	groups, err := uc.groupRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		resp, err := uc.groupResponse(ctx, &groups[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}

	return result, nil
}

// AddMember adds the user with the given email. Admins only.
func (uc *GroupUseCase) AddMember(ctx context.Context, requesterID, groupID uuid.UUID, req dto.AddMemberRequest) (*dto.GroupMemberResponse, error) {
	requester, err := uc.groupRepo.GetMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.Role != domain.GroupRoleAdmin {
		return nil, errors.ErrForbidden.WithMessage("Only admins can add members")
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	member := &domain.GroupMember{
		GroupID:  groupID,
		UserID:   user.ID,
		Role:     domain.GroupRoleMember,
		JoinedAt: time.Now(),
	}

	if err := uc.groupRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	member.User = user
	resp := dto.ToGroupMemberResponse(*member)
	return &resp, nil
}

// RemoveMember removes a membership. Anyone may leave; only admins remove
// other members.
func (uc *GroupUseCase) RemoveMember(ctx context.Context, requesterID, groupID, memberID uuid.UUID) error {
	requester, err := uc.groupRepo.GetMember(ctx, groupID, requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return errors.ErrForbidden.WithMessage("Not a member of this group")
	}

	if memberID != requesterID && requester.Role != domain.GroupRoleAdmin {
		return errors.ErrForbidden.WithMessage("Only admins can remove other members")
	}

	return uc.groupRepo.RemoveMember(ctx, groupID, memberID)
}

// CreateMeetup stores a meetup for the group. Members only.
func (uc *GroupUseCase) CreateMeetup(ctx context.Context, userID, groupID uuid.UUID, req dto.CreateMeetupRequest) (*domain.Meetup, error) {
	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	meetup := &domain.Meetup{
		ID:          uuid.New(),
		GroupID:     groupID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	if err := uc.groupRepo.CreateMeetup(ctx, meetup); err != nil {
		return nil, err
	}

	return meetup, nil
}

// ListMeetups returns the group's meetups, newest first. Members only.
func (uc *GroupUseCase) ListMeetups(ctx context.Context, userID, groupID uuid.UUID) ([]domain.Meetup, error) {
	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	return uc.groupRepo.ListMeetups(ctx, groupID)
}

// SearchGroupVenues is the group-location adapter: it feeds every member's
// saved location into the venue search. Member ordering is preserved, so
// the location and name slices stay parallel and the response labels each
// location with the member it belongs to.
func (uc *GroupUseCase) SearchGroupVenues(ctx context.Context, userID, groupID uuid.UUID, venueType string) (*dto.VenueSearchResponse, error) {
	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	members, err := uc.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	// Skip with the same trim rule SearchVenues applies to its inputs, so
	// a whitespace-only saved location cannot desynchronize the parallel
	// location and name slices.
	locations := make([]string, 0, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		if m.User == nil || strings.TrimSpace(m.User.Location) == "" {
			continue
		}
		locations = append(locations, m.User.Location)
		names = append(names, m.User.Name)
	}

	if len(locations) < 2 {
		return nil, errors.ErrInvalidInput.WithMessage("Group needs at least 2 members with saved locations")
	}

	result, err := uc.venueUC.SearchVenues(ctx, locations, venueType)
	if err != nil {
		return nil, err
	}

	// SearchVenues keeps input order, so labels attach by index.
	for i := range result.Locations {
		result.Locations[i].Label = names[i]
	}

	return result, nil
}

func (uc *GroupUseCase) requireMember(ctx context.Context, groupID, userID uuid.UUID) error {
	member, err := uc.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return errors.ErrForbidden.WithMessage("Not a member of this group")
	}
	return nil
}

func (uc *GroupUseCase) groupResponse(ctx context.Context, group *domain.Group) (*dto.GroupResponse, error) {
	members, err := uc.groupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	memberResps := make([]dto.GroupMemberResponse, 0, len(members))
	for _, m := range members {
		memberResps = append(memberResps, dto.ToGroupMemberResponse(m))
	}

	return &dto.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatorID:   group.CreatorID,
		CreatedAt:   group.CreatedAt,
		Members:     memberResps,
		MemberCount: len(memberResps),
	}, nil
}
