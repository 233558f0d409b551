package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MenteeRepository handles mentee data access
type MenteeRepository struct {
	pool *pgxpool.Pool
}

// NewMenteeRepository creates a new mentee repository
func NewMenteeRepository(pool *pgxpool.Pool) *MenteeRepository {
	return &MenteeRepository{pool: pool}
}

const menteeSelect = `
	SELECT me.id::text, me.user_id::text, u.name, u.email,
		me.school, me.interests, me.goals, me.progress,
		me.mentor_id::text, me.group_id::text, me.application_status,
		me.created_at, me.updated_at
	FROM mentees me
	JOIN users u ON u.id = me.user_id
`

func scanMentee(row pgx.Row) (*models.Mentee, error) {
	var m models.Mentee
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Email,
		&m.School, &m.Interests, &m.Goals, &m.Progress,
		&m.MentorID, &m.GroupID, &m.ApplicationStatus,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a mentee profile for a user
func (r *MenteeRepository) Create(ctx context.Context, userID string, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	start := time.Now()
	query := `
		INSERT INTO mentees (user_id, school, interests, goals)
		VALUES ($1, $2, COALESCE($3, '{}'), COALESCE($4, '{}'))
		RETURNING id::text
	`

	var id string
	err := r.pool.QueryRow(ctx, query, userID, req.School, req.Interests, req.Goals).Scan(&id)
	observe("mentees.create", start, err)
	if err != nil {
		return nil, mapError(err, "mentee")
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a single mentee
func (r *MenteeRepository) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	start := time.Now()
	mentee, err := scanMentee(r.pool.QueryRow(ctx, menteeSelect+` WHERE me.id = $1`, id))
	observe("mentees.get_by_id", start, err)
	if err != nil {
		return nil, mapError(err, "mentee")
	}
	return mentee, nil
}

// GetByUserID retrieves the mentee profile owned by a user
func (r *MenteeRepository) GetByUserID(ctx context.Context, userID string) (*models.Mentee, error) {
	start := time.Now()
	mentee, err := scanMentee(r.pool.QueryRow(ctx, menteeSelect+` WHERE me.user_id = $1`, userID))
	observe("mentees.get_by_user_id", start, err)
	if err != nil {
		return nil, mapError(err, "mentee")
	}
	return mentee, nil
}

// GetAll retrieves all mentees ordered by creation time
func (r *MenteeRepository) GetAll(ctx context.Context) ([]*models.Mentee, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, menteeSelect+` ORDER BY me.created_at`)
	if err != nil {
		observe("mentees.get_all", start, err)
		return nil, fmt.Errorf("failed to query mentees: %w", err)
	}
	defer rows.Close()

	var mentees []*models.Mentee
	for rows.Next() {
		mentee, scanErr := scanMentee(rows)
		if scanErr != nil {
			observe("mentees.get_all", start, scanErr)
			return nil, fmt.Errorf("failed to scan mentee: %w", scanErr)
		}
		mentees = append(mentees, mentee)
	}

	observe("mentees.get_all", start, rows.Err())
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mentees: %w", err)
	}
	return mentees, nil
}

// Update applies a partial update to a mentee profile
func (r *MenteeRepository) Update(ctx context.Context, id string, req *models.UpdateMenteeRequest) (*models.Mentee, error) {
	start := time.Now()
	query := `
		UPDATE mentees SET
			school = COALESCE($2, school),
			interests = COALESCE($3, interests),
			goals = COALESCE($4, goals),
			progress = COALESCE($5, progress),
			application_status = COALESCE($6, application_status),
			updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, req.School, req.Interests, req.Goals, req.Progress, req.ApplicationStatus)
	observe("mentees.update", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update mentee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, mapError(errNoRows(), "mentee")
	}

	return r.GetByID(ctx, id)
}

// Delete removes a mentee profile
func (r *MenteeRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx, `DELETE FROM mentees WHERE id = $1`, id)
	observe("mentees.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete mentee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(errNoRows(), "mentee")
	}
	return nil
}
