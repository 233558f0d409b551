package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MentorRepository handles mentor data access
type MentorRepository struct {
	pool *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(pool *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{pool: pool}
}

// mentorSelect joins the owning user and derives the mentee/group id lists
// from the authoritative references on those rows.
const mentorSelect = `
	SELECT m.id::text, m.user_id::text, u.name, u.email,
		m.expertise, m.max_mentees, m.mentorship_type, m.duration,
		COALESCE(ARRAY(SELECT me.id::text FROM mentees me WHERE me.mentor_id = m.id ORDER BY me.created_at), '{}') AS mentees,
		COALESCE(ARRAY(SELECT g.id::text FROM groups g WHERE g.mentor_id = m.id ORDER BY g.created_at), '{}') AS groups,
		m.created_at, m.updated_at
	FROM mentors m
	JOIN users u ON u.id = m.user_id
`

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	var m models.Mentor
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Email,
		&m.Expertise, &m.MaxMentees, &m.MentorshipType, &m.Duration,
		&m.Mentees, &m.Groups, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a mentor profile for a user
func (r *MentorRepository) Create(ctx context.Context, userID string, req *models.CreateMentorRequest) (*models.Mentor, error) {
	start := time.Now()
	query := `
		INSERT INTO mentors (user_id, expertise, max_mentees, mentorship_type, duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`

	var id string
	err := r.pool.QueryRow(ctx, query, userID, req.Expertise, req.MaxMentees, req.MentorshipType, req.Duration).Scan(&id)
	observe("mentors.create", start, err)
	if err != nil {
		return nil, mapError(err, "mentor")
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a single mentor with derived mentee and group lists
func (r *MentorRepository) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	start := time.Now()
	mentor, err := scanMentor(r.pool.QueryRow(ctx, mentorSelect+` WHERE m.id = $1`, id))
	observe("mentors.get_by_id", start, err)
	if err != nil {
		return nil, mapError(err, "mentor")
	}
	return mentor, nil
}

// GetByUserID retrieves the mentor profile owned by a user
func (r *MentorRepository) GetByUserID(ctx context.Context, userID string) (*models.Mentor, error) {
	start := time.Now()
	mentor, err := scanMentor(r.pool.QueryRow(ctx, mentorSelect+` WHERE m.user_id = $1`, userID))
	observe("mentors.get_by_user_id", start, err)
	if err != nil {
		return nil, mapError(err, "mentor")
	}
	return mentor, nil
}

// GetAll retrieves all mentors ordered by creation time
func (r *MentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, mentorSelect+` ORDER BY m.created_at`)
	if err != nil {
		observe("mentors.get_all", start, err)
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		mentor, scanErr := scanMentor(rows)
		if scanErr != nil {
			observe("mentors.get_all", start, scanErr)
			return nil, fmt.Errorf("failed to scan mentor: %w", scanErr)
		}
		mentors = append(mentors, mentor)
	}

	observe("mentors.get_all", start, rows.Err())
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mentors: %w", err)
	}
	return mentors, nil
}

// Update applies a partial update to a mentor profile. Shrinking
// max_mentees below the current roster size is refused in the same
// conditional UPDATE, so the capacity invariant AssignMentee relies on
// cannot be broken from this side.
func (r *MentorRepository) Update(ctx context.Context, id string, req *models.UpdateMentorRequest) (*models.Mentor, error) {
	start := time.Now()
	query := `
		UPDATE mentors SET
			expertise = COALESCE($2, expertise),
			max_mentees = COALESCE($3, max_mentees),
			mentorship_type = COALESCE($4, mentorship_type),
			duration = COALESCE($5, duration),
			updated_at = now()
		WHERE id = $1
			AND ($3::int IS NULL
				OR $3 >= (SELECT COUNT(*) FROM mentees x WHERE x.mentor_id = mentors.id))
	`

	tag, err := r.pool.Exec(ctx, query, id, req.Expertise, req.MaxMentees, req.MentorshipType, req.Duration)
	observe("mentors.update", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.diagnoseUpdate(ctx, id)
	}

	return r.GetByID(ctx, id)
}

// diagnoseUpdate explains why the conditional update matched zero rows
func (r *MentorRepository) diagnoseUpdate(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM mentors WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check mentor: %w", err)
	}
	if !exists {
		return mapError(errNoRows(), "mentor")
	}
	return apperrors.ConflictError("max mentees is below the current roster size")
}

// Delete removes a mentor profile
func (r *MentorRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	observe("mentors.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete mentor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(errNoRows(), "mentor")
	}
	return nil
}
