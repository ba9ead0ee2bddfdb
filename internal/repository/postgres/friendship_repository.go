package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/midway/midway-backend/internal/domain"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type friendshipRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFriendshipRepository(db *DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *domain.Friendship) error {
	query := `
		INSERT INTO friendships (id, sender_id, receiver_id, status, created_at)
		VALUES (:id, :sender_id, :receiver_id, :status, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, friendship); err != nil {
		r.logger.Error("Failed to create friendship", zap.Error(err))
		return fmt.Errorf("create friendship: %w", err)
	}

	return nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error) {
	query := `
		SELECT id, sender_id, receiver_id, status, created_at
		FROM friendships
		WHERE id = $1
	`

	var friendship domain.Friendship
	err := r.db.GetContext(ctx, &friendship, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound.WithMessage("Friendship not found")
	}
	if err != nil {
		r.logger.Error("Failed to get friendship", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("get friendship: %w", err)
	}

	return &friendship, nil
}

func (r *friendshipRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*domain.Friendship, error) {
	query := `
		SELECT id, sender_id, receiver_id, status, created_at
		FROM friendships
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
	`

	var friendship domain.Friendship
	err := r.db.GetContext(ctx, &friendship, query, a, b)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find friendship between users", zap.Error(err))
		return nil, fmt.Errorf("find friendship: %w", err)
	}

	return &friendship, nil
}

func (r *friendshipRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]domain.Friend, error) {
	// Joins the counterpart user row: the sender when the user received
	// the request, the receiver when the user sent it.
	query := `
		SELECT
			f.id AS friendship_id,
			f.created_at,
			u.id, u.email, u.name, u.location, u.created_at AS user_created_at, u.updated_at
		FROM friendships f
		JOIN users u
			ON u.id = CASE WHEN f.sender_id = $1 THEN f.receiver_id ELSE f.sender_id END
		WHERE f.status = $2
		  AND (f.sender_id = $1 OR f.receiver_id = $1)
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, domain.FriendshipStatusAccepted)
	if err != nil {
		r.logger.Error("Failed to list friends", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	friends := []domain.Friend{}
	for rows.Next() {
		var f domain.Friend
		if err := rows.Scan(
			&f.FriendshipID, &f.CreatedAt,
			&f.User.ID, &f.User.Email, &f.User.Name, &f.User.Location,
			&f.User.CreatedAt, &f.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan friend row: %w", err)
		}
		friends = append(friends, f)
	}

	return friends, rows.Err()
}

func (r *friendshipRepository) ListIncoming(ctx context.Context, userID uuid.UUID, statuses []string) ([]domain.Friendship, error) {
	query := `
		SELECT id, sender_id, receiver_id, status, created_at
		FROM friendships
		WHERE receiver_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC
	`

	friendships := []domain.Friendship{}
	if err := r.db.SelectContext(ctx, &friendships, query, userID, pq.Array(statuses)); err != nil {
		r.logger.Error("Failed to list incoming friendships", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("list incoming friendships: %w", err)
	}

	return friendships, nil
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Friendship, error) {
	query := `
		UPDATE friendships
		SET status = $2
		WHERE id = $1
		RETURNING id, sender_id, receiver_id, status, created_at
	`

	var friendship domain.Friendship
	err := r.db.GetContext(ctx, &friendship, query, id, status)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound.WithMessage("Friendship not found")
	}
	if err != nil {
		r.logger.Error("Failed to update friendship status", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("update friendship status: %w", err)
	}

	return &friendship, nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM friendships WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete friendship", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("delete friendship: %w", err)
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrNotFound.WithMessage("Friendship not found")
	}

	return nil
}
