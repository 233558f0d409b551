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

// GroupRepository handles group data access
type GroupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

const groupSelect = `
	SELECT g.id::text, g.name, g.description, g.topic, g.mentor_id::text,
		g.max_capacity, g.meeting_frequency, g.meeting_day, g.meeting_time,
		COALESCE(ARRAY(SELECT me.id::text FROM mentees me WHERE me.group_id = g.id ORDER BY me.created_at), '{}') AS mentees,
		g.created_at, g.updated_at
	FROM groups g
`

func scanGroup(row pgx.Row) (*models.Group, error) {
	var g models.Group
	var frequency, day, meetingTime *string
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Topic, &g.MentorID,
		&g.MaxCapacity, &frequency, &day, &meetingTime,
		&g.Mentees, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if frequency != nil && meetingTime != nil {
		g.MeetingSchedule = &models.MeetingSchedule{
			Frequency: models.MeetingFrequency(*frequency),
			DayOfWeek: day,
			Time:      *meetingTime,
		}
	}
	return &g, nil
}

func scheduleColumns(s *models.MeetingSchedule) (frequency, day, meetingTime *string) {
	if s == nil {
		return nil, nil, nil
	}
	f := string(s.Frequency)
	t := s.Time
	return &f, s.DayOfWeek, &t
}

// Create inserts a new group owned by a mentor
func (r *GroupRepository) Create(ctx context.Context, mentorID string, req *models.CreateGroupRequest) (*models.Group, error) {
	start := time.Now()
	frequency, day, meetingTime := scheduleColumns(req.MeetingSchedule)
	query := `
		INSERT INTO groups (name, description, topic, mentor_id, max_capacity, meeting_frequency, meeting_day, meeting_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text
	`

	var id string
	err := r.pool.QueryRow(ctx, query, req.Name, req.Description, req.Topic, mentorID,
		req.MaxCapacity, frequency, day, meetingTime).Scan(&id)
	observe("groups.create", start, err)
	if err != nil {
		return nil, mapError(err, "group")
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a single group with its derived mentee list
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	start := time.Now()
	group, err := scanGroup(r.pool.QueryRow(ctx, groupSelect+` WHERE g.id = $1`, id))
	observe("groups.get_by_id", start, err)
	if err != nil {
		return nil, mapError(err, "group")
	}
	return group, nil
}

// GetAll retrieves all groups ordered by creation time
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.Group, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, groupSelect+` ORDER BY g.created_at`)
	if err != nil {
		observe("groups.get_all", start, err)
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, scanErr := scanGroup(rows)
		if scanErr != nil {
			observe("groups.get_all", start, scanErr)
			return nil, fmt.Errorf("failed to scan group: %w", scanErr)
		}
		groups = append(groups, group)
	}

	observe("groups.get_all", start, rows.Err())
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read groups: %w", err)
	}
	return groups, nil
}

// Update applies a partial update to a group. Shrinking max_capacity
// below the current member count is refused in the same conditional
// UPDATE, mirroring the guard JoinGroup enforces on the other side.
func (r *GroupRepository) Update(ctx context.Context, id string, req *models.UpdateGroupRequest) (*models.Group, error) {
	start := time.Now()
	frequency, day, meetingTime := scheduleColumns(req.MeetingSchedule)
	query := `
		UPDATE groups SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			topic = COALESCE($4, topic),
			max_capacity = COALESCE($5, max_capacity),
			meeting_frequency = COALESCE($6, meeting_frequency),
			meeting_day = COALESCE($7, meeting_day),
			meeting_time = COALESCE($8, meeting_time),
			updated_at = now()
		WHERE id = $1
			AND ($5::int IS NULL
				OR $5 >= (SELECT COUNT(*) FROM mentees x WHERE x.group_id = groups.id))
	`

	tag, err := r.pool.Exec(ctx, query, id, req.Name, req.Description, req.Topic,
		req.MaxCapacity, frequency, day, meetingTime)
	observe("groups.update", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, r.diagnoseUpdate(ctx, id)
	}

	return r.GetByID(ctx, id)
}

// diagnoseUpdate explains why the conditional update matched zero rows
func (r *GroupRepository) diagnoseUpdate(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check group: %w", err)
	}
	if !exists {
		return mapError(errNoRows(), "group")
	}
	return apperrors.ConflictError("max capacity is below the current member count")
}

// Delete removes a group
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	observe("groups.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(errNoRows(), "group")
	}
	return nil
}
