package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inviteColumns = "id::text, email, role, token, expires_at, consumed_at, created_at"

// InviteRepository handles invite persistence
type InviteRepository struct {
	pool *pgxpool.Pool
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(pool *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{pool: pool}
}

// Create inserts a new invite
func (r *InviteRepository) Create(ctx context.Context, email string, role models.Role, token string, expiresAt time.Time) (*models.Invite, error) {
	start := time.Now()
	query := `
		INSERT INTO invites (email, role, token, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + inviteColumns

	row := r.pool.QueryRow(ctx, query, email, role, token, expiresAt)

	invite, err := scanInvite(row)
	observe("invites.create", start, err)
	if err != nil {
		return nil, mapError(err, "invite")
	}
	return invite, nil
}

// GetByToken fetches an invite by its opaque token
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	start := time.Now()
	row := r.pool.QueryRow(ctx, `SELECT `+inviteColumns+` FROM invites WHERE token = $1`, token)

	invite, err := scanInvite(row)
	observe("invites.get_by_token", start, err)
	if err != nil {
		return nil, mapError(err, "invite")
	}
	return invite, nil
}

// Consume marks an invite used. The update is conditional on the invite
// still being live, so a concurrent second registration loses cleanly.
func (r *InviteRepository) Consume(ctx context.Context, token string) (*models.Invite, error) {
	start := time.Now()
	query := `
		UPDATE invites SET consumed_at = now()
		WHERE token = $1 AND consumed_at IS NULL AND expires_at > now()
		RETURNING ` + inviteColumns

	row := r.pool.QueryRow(ctx, query, token)
	invite, err := scanInvite(row)
	observe("invites.consume", start, err)
	if err == nil {
		return invite, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to consume invite: %w", err)
	}

	existing, lookupErr := r.GetByToken(ctx, token)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if existing.Consumed() {
		return nil, apperrors.ConflictError("invite already used")
	}
	return nil, apperrors.ConflictError("invite expired")
}

// List returns all invites, newest first
func (r *InviteRepository) List(ctx context.Context) ([]*models.Invite, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, `SELECT `+inviteColumns+` FROM invites ORDER BY created_at DESC`)
	observe("invites.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]*models.Invite, 0)
	for rows.Next() {
		invite, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, invite)
	}
	return invites, rows.Err()
}

func scanInvite(row pgx.Row) (*models.Invite, error) {
	var invite models.Invite
	err := row.Scan(
		&invite.ID, &invite.Email, &invite.Role, &invite.Token,
		&invite.ExpiresAt, &invite.ConsumedAt, &invite.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invite, nil
}
