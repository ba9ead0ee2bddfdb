package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type groupRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGroupRepository(db *DB) repository.GroupRepository {
	return &groupRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create inserts the group and the creator's admin membership in one
// transaction, so a group can never exist without an admin.
func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	groupQuery := `
		INSERT INTO groups (id, name, description, creator_id, created_at)
		VALUES (:id, :name, :description, :creator_id, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, groupQuery, group); err != nil {
		r.logger.Error("Failed to create group", zap.Error(err))
		return fmt.Errorf("create group: %w", err)
	}

	memberQuery := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, memberQuery, group.ID, group.CreatorID, domain.GroupRoleAdmin, group.CreatedAt); err != nil {
		r.logger.Error("Failed to add creator as admin", zap.Error(err))
		return fmt.Errorf("add creator membership: %w", err)
	}

	return tx.Commit()
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	query := `
		SELECT id, name, description, creator_id, created_at
		FROM groups
		WHERE id = $1
	`

	var group domain.Group
	err := r.db.GetContext(ctx, &group, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound.WithMessage("Group not found")
	}
	if err != nil {
		r.logger.Error("Failed to get group", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("get group: %w", err)
	}

	return &group, nil
}

func (r *groupRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.creator_id, g.created_at
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`

	groups := []domain.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, userID); err != nil {
		r.logger.Error("Failed to list groups for user", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return groups, nil
}

// ListMembers returns memberships with user rows, ordered by joined_at.
// The ordering matters: the group venue search derives parallel
// location/name slices from this list.
func (r *groupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMember, error) {
	query := `
		SELECT
			m.group_id, m.user_id, m.role, m.joined_at,
			u.id, u.email, u.name, u.location, u.created_at, u.updated_at
		FROM group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.joined_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		r.logger.Error("Failed to list group members", zap.String("group_id", groupID.String()), zap.Error(err))
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()

	members := []domain.GroupMember{}
	for rows.Next() {
		var m domain.GroupMember
		var u domain.User
		if err := rows.Scan(
			&m.GroupID, &m.UserID, &m.Role, &m.JoinedAt,
			&u.ID, &u.Email, &u.Name, &u.Location, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		m.User = &u
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *groupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*domain.GroupMember, error) {
	query := `
		SELECT group_id, user_id, role, joined_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`

	var member domain.GroupMember
	err := r.db.GetContext(ctx, &member, query, groupID, userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get group member", zap.Error(err))
		return nil, fmt.Errorf("get group member: %w", err)
	}

	return &member, nil
}

func (r *groupRepository) AddMember(ctx context.Context, member *domain.GroupMember) error {
	query := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES (:group_id, :user_id, :role, :joined_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, member); err != nil {
		if isUniqueViolation(err) {
			return errors.ErrConflict.WithMessage("User is already a member")
		}
		r.logger.Error("Failed to add group member", zap.Error(err))
		return fmt.Errorf("add group member: %w", err)
	}

	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		r.logger.Error("Failed to remove group member", zap.Error(err))
		return fmt.Errorf("remove group member: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrNotFound.WithMessage("Member not found")
	}

	return nil
}

func (r *groupRepository) CreateMeetup(ctx context.Context, meetup *domain.Meetup) error {
	query := `
		INSERT INTO meetups (id, group_id, name, description, date, location, created_at)
		VALUES (:id, :group_id, :name, :description, :date, :location, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, meetup); err != nil {
		r.logger.Error("Failed to create meetup", zap.Error(err))
		return fmt.Errorf("create meetup: %w", err)
	}

	return nil
}

func (r *groupRepository) ListMeetups(ctx context.Context, groupID uuid.UUID) ([]domain.Meetup, error) {
	query := `
		SELECT id, group_id, name, description, date, location, created_at
		FROM meetups
		WHERE group_id = $1
		ORDER BY date DESC
	`

	meetups := []domain.Meetup{}
	if err := r.db.SelectContext(ctx, &meetups, query, groupID); err != nil {
		r.logger.Error("Failed to list meetups", zap.String("group_id", groupID.String()), zap.Error(err))
		return nil, fmt.Errorf("list meetups: %w", err)
	}

	return meetups, nil
}
