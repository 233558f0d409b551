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

const slotColumns = `id::text, mentor_id::text, to_char(slot_date, 'YYYY-MM-DD'),
	to_char(slot_time, 'HH24:MI'), duration_minutes, meeting_link, booked_by::text, created_at`

// SlotRepository handles availability slot persistence
type SlotRepository struct {
	pool *pgxpool.Pool
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Create inserts a new availability slot
func (r *SlotRepository) Create(ctx context.Context, mentorID string, req *models.CreateSlotRequest) (*models.Slot, error) {
	start := time.Now()
	query := `
		INSERT INTO slots (mentor_id, slot_date, slot_time, duration_minutes, meeting_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + slotColumns

	row := r.pool.QueryRow(ctx, query,
		mentorID, req.Date, req.Time, req.DurationMinutes, req.MeetingLink)

	slot, err := scanSlot(row)
	observe("slots.create", start, err)
	if err != nil {
		return nil, mapError(err, "slot")
	}
	return slot, nil
}

// GetByID fetches a slot by id
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	start := time.Now()
	row := r.pool.QueryRow(ctx, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)

	slot, err := scanSlot(row)
	observe("slots.get_by_id", start, err)
	if err != nil {
		return nil, mapError(err, "slot")
	}
	return slot, nil
}

// List returns slots matching the filter, soonest first
func (r *SlotRepository) List(ctx context.Context, filter *models.SlotFilter) ([]*models.Slot, error) {
	start := time.Now()
	query := `SELECT ` + slotColumns + ` FROM slots WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.MentorID != "" {
		query += fmt.Sprintf(" AND mentor_id = $%d", argNum)
		args = append(args, filter.MentorID)
		argNum++
	}
	if filter.OnlyOpen {
		query += " AND booked_by IS NULL"
	}
	query += " ORDER BY slot_date, slot_time"

	rows, err := r.pool.Query(ctx, query, args...)
	observe("slots.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	slots := make([]*models.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Book claims an open slot for a mentee. The claim is a compare-and-swap:
// zero rows affected means the slot is gone or already booked, which a
// follow-up read disambiguates.
func (r *SlotRepository) Book(ctx context.Context, slotID, menteeID string) (*models.Slot, error) {
	start := time.Now()
	query := `
		UPDATE slots SET booked_by = $2
		WHERE id = $1 AND booked_by IS NULL
		RETURNING ` + slotColumns

	row := r.pool.QueryRow(ctx, query, slotID, menteeID)
	slot, err := scanSlot(row)
	observe("slots.book", start, err)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapError(err, "slot")
	}

	var booked bool
	err = r.pool.QueryRow(ctx, `SELECT booked_by IS NOT NULL FROM slots WHERE id = $1`, slotID).Scan(&booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("slot")
		}
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if booked {
		return nil, apperrors.ConflictError("slot already booked")
	}
	return nil, apperrors.ConflictError("booking failed")
}

// Delete removes an unbooked slot owned by the mentor
func (r *SlotRepository) Delete(ctx context.Context, slotID, mentorID string) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM slots WHERE id = $1 AND mentor_id = $2 AND booked_by IS NULL`,
		slotID, mentorID)
	observe("slots.delete", start, err)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var booked bool
		err = r.pool.QueryRow(ctx,
			`SELECT booked_by IS NOT NULL FROM slots WHERE id = $1 AND mentor_id = $2`,
			slotID, mentorID).Scan(&booked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NotFoundError("slot")
			}
			return fmt.Errorf("failed to check slot: %w", err)
		}
		if booked {
			return apperrors.ConflictError("slot is booked")
		}
		return apperrors.NotFoundError("slot")
	}
	return nil
}

func scanSlot(row pgx.Row) (*models.Slot, error) {
	var slot models.Slot
	err := row.Scan(
		&slot.ID, &slot.MentorID, &slot.Date, &slot.Time,
		&slot.DurationMinutes, &slot.MeetingLink, &slot.BookedBy, &slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
