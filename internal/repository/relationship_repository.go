package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RelationshipRepository owns the mentor↔mentee and group↔mentee links.
// Each mutation is a single conditional UPDATE checking capacity and
// current assignment in the same statement. Under READ COMMITTED the
// correlated COUNT(*) does not see concurrent uncommitted assigns, so
// two near-simultaneous requests can still overshoot capacity by one;
// closing that window would take SERIALIZABLE or an advisory lock per
// mentor, which the booking model does not require.
type RelationshipRepository struct {
	pool *pgxpool.Pool
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(pool *pgxpool.Pool) *RelationshipRepository {
	return &RelationshipRepository{pool: pool}
}

// AssignMentee links a mentee to a mentor, honoring max_mentees
func (r *RelationshipRepository) AssignMentee(ctx context.Context, mentorID, menteeID string) error {
	start := time.Now()
	query := `
		UPDATE mentees SET mentor_id = $1, updated_at = now()
		WHERE id = $2
			AND mentor_id IS NULL
			AND (SELECT COUNT(*) FROM mentees x WHERE x.mentor_id = $1)
				< (SELECT max_mentees FROM mentors WHERE id = $1)
	`

	tag, err := r.pool.Exec(ctx, query, mentorID, menteeID)
	observe("relationships.assign_mentee", start, err)
	if err != nil {
		return fmt.Errorf("failed to assign mentee: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	return r.diagnoseAssign(ctx, mentorID, menteeID)
}

// diagnoseAssign explains why the conditional assign matched zero rows
func (r *RelationshipRepository) diagnoseAssign(ctx context.Context, mentorID, menteeID string) error {
	var maxMentees, current int
	err := r.pool.QueryRow(ctx,
		`SELECT max_mentees, (SELECT COUNT(*) FROM mentees x WHERE x.mentor_id = m.id) FROM mentors m WHERE m.id = $1`,
		mentorID).Scan(&maxMentees, &current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFoundError("mentor")
		}
		return fmt.Errorf("failed to check mentor: %w", err)
	}

	var assigned *string
	err = r.pool.QueryRow(ctx, `SELECT mentor_id::text FROM mentees WHERE id = $1`, menteeID).Scan(&assigned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFoundError("mentee")
		}
		return fmt.Errorf("failed to check mentee: %w", err)
	}

	if assigned != nil {
		return apperrors.ConflictError("mentee already has a mentor")
	}
	if current >= maxMentees {
		return apperrors.ConflictError("mentor is at capacity")
	}
	// Lost a race between the conditional update and the diagnosis
	return apperrors.ConflictError("assignment failed")
}

// UnassignMentee removes the mentor link from a mentee
func (r *RelationshipRepository) UnassignMentee(ctx context.Context, mentorID, menteeID string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx,
		`UPDATE mentees SET mentor_id = NULL, updated_at = now() WHERE id = $1 AND mentor_id = $2`,
		menteeID, mentorID)
	observe("relationships.unassign_mentee", start, err)
	if err != nil {
		return fmt.Errorf("failed to unassign mentee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("assignment")
	}
	return nil
}

// JoinGroup adds a mentee to a group, honoring max_capacity
func (r *RelationshipRepository) JoinGroup(ctx context.Context, groupID, menteeID string) error {
	start := time.Now()
	query := `
		UPDATE mentees SET group_id = $1, updated_at = now()
		WHERE id = $2
			AND group_id IS NULL
			AND (SELECT COUNT(*) FROM mentees x WHERE x.group_id = $1)
				< (SELECT max_capacity FROM groups WHERE id = $1)
	`

	tag, err := r.pool.Exec(ctx, query, groupID, menteeID)
	observe("relationships.join_group", start, err)
	if err != nil {
		return fmt.Errorf("failed to join group: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	return r.diagnoseJoin(ctx, groupID, menteeID)
}

func (r *RelationshipRepository) diagnoseJoin(ctx context.Context, groupID, menteeID string) error {
	var maxCapacity, current int
	err := r.pool.QueryRow(ctx,
		`SELECT max_capacity, (SELECT COUNT(*) FROM mentees x WHERE x.group_id = g.id) FROM groups g WHERE g.id = $1`,
		groupID).Scan(&maxCapacity, &current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFoundError("group")
		}
		return fmt.Errorf("failed to check group: %w", err)
	}

	var member *string
	err = r.pool.QueryRow(ctx, `SELECT group_id::text FROM mentees WHERE id = $1`, menteeID).Scan(&member)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFoundError("mentee")
		}
		return fmt.Errorf("failed to check mentee: %w", err)
	}

	if member != nil {
		return apperrors.ConflictError("mentee already belongs to a group")
	}
	if current >= maxCapacity {
		return apperrors.ConflictError("group is at capacity")
	}
	return apperrors.ConflictError("join failed")
}

// LeaveGroup removes a mentee from a group
func (r *RelationshipRepository) LeaveGroup(ctx context.Context, groupID, menteeID string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx,
		`UPDATE mentees SET group_id = NULL, updated_at = now() WHERE id = $1 AND group_id = $2`,
		menteeID, groupID)
	observe("relationships.leave_group", start, err)
	if err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("membership")
	}
	return nil
}
