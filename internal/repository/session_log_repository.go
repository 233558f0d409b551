package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionLogColumns = `id::text, mentor_id::text, mentee_id::text,
	to_char(session_date, 'YYYY-MM-DD'), topic, mentor_score, mentee_score,
	mentor_needs_support, mentor_support_reason, mentee_needs_support, mentee_support_reason,
	completed_by_mentor, completed_by_mentee, created_at, updated_at`

// SessionLogRepository handles session log persistence
type SessionLogRepository struct {
	pool *pgxpool.Pool
}

// NewSessionLogRepository creates a new session log repository
func NewSessionLogRepository(pool *pgxpool.Pool) *SessionLogRepository {
	return &SessionLogRepository{pool: pool}
}

// Upsert writes a session log keyed by (mentor, mentee, session date). A
// second submission for the same key replaces the mutable fields of the
// existing row rather than creating a duplicate.
func (r *SessionLogRepository) Upsert(ctx context.Context, mentorID string, req *models.UpsertSessionLogRequest) (*models.SessionLog, error) {
	start := time.Now()
	query := `
		INSERT INTO session_logs (
			mentor_id, mentee_id, session_date, topic, mentor_score, mentee_score,
			mentor_needs_support, mentor_support_reason, mentee_needs_support, mentee_support_reason,
			completed_by_mentor, completed_by_mentee
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (mentor_id, mentee_id, session_date) DO UPDATE SET
			topic = EXCLUDED.topic,
			mentor_score = EXCLUDED.mentor_score,
			mentee_score = EXCLUDED.mentee_score,
			mentor_needs_support = EXCLUDED.mentor_needs_support,
			mentor_support_reason = EXCLUDED.mentor_support_reason,
			mentee_needs_support = EXCLUDED.mentee_needs_support,
			mentee_support_reason = EXCLUDED.mentee_support_reason,
			completed_by_mentor = EXCLUDED.completed_by_mentor,
			completed_by_mentee = EXCLUDED.completed_by_mentee,
			updated_at = now()
		RETURNING ` + sessionLogColumns

	row := r.pool.QueryRow(ctx, query,
		mentorID, req.MenteeID, req.SessionDate, req.Topic,
		req.MentorScore, req.MenteeScore,
		req.MentorNeedsSupport, req.MentorSupportReason,
		req.MenteeNeedsSupport, req.MenteeSupportReason,
		req.CompletedByMentor, req.CompletedByMentee,
	)

	log, err := scanSessionLog(row)
	observe("session_logs.upsert", start, err)
	if err != nil {
		return nil, mapError(err, "session log")
	}
	return log, nil
}

// GetByID fetches a single session log
func (r *SessionLogRepository) GetByID(ctx context.Context, id string) (*models.SessionLog, error) {
	start := time.Now()
	row := r.pool.QueryRow(ctx, `SELECT `+sessionLogColumns+` FROM session_logs WHERE id = $1`, id)

	log, err := scanSessionLog(row)
	observe("session_logs.get_by_id", start, err)
	if err != nil {
		return nil, mapError(err, "session log")
	}
	return log, nil
}

// List returns session logs matching the filter, newest session first
func (r *SessionLogRepository) List(ctx context.Context, filter *models.SessionLogFilter) ([]*models.SessionLog, error) {
	start := time.Now()
	query := `SELECT ` + sessionLogColumns + ` FROM session_logs WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.MentorID != "" {
		query += fmt.Sprintf(" AND mentor_id = $%d", argNum)
		args = append(args, filter.MentorID)
		argNum++
	}
	if filter.MenteeID != "" {
		query += fmt.Sprintf(" AND mentee_id = $%d", argNum)
		args = append(args, filter.MenteeID)
		argNum++
	}
	if filter.NeedsSupport {
		query += " AND (mentor_needs_support OR mentee_needs_support)"
	}
	query += " ORDER BY session_date DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	observe("session_logs.list", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list session logs: %w", err)
	}
	defer rows.Close()

	return collectSessionLogs(rows)
}

// All returns every session log ordered for export
func (r *SessionLogRepository) All(ctx context.Context) ([]*models.SessionLog, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx,
		`SELECT `+sessionLogColumns+` FROM session_logs ORDER BY session_date, mentor_id, mentee_id`)
	observe("session_logs.all", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session logs: %w", err)
	}
	defer rows.Close()

	return collectSessionLogs(rows)
}

func collectSessionLogs(rows pgx.Rows) ([]*models.SessionLog, error) {
	logs := make([]*models.SessionLog, 0)
	for rows.Next() {
		log, err := scanSessionLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func scanSessionLog(row pgx.Row) (*models.SessionLog, error) {
	var log models.SessionLog
	err := row.Scan(
		&log.ID, &log.MentorID, &log.MenteeID, &log.SessionDate, &log.Topic,
		&log.MentorScore, &log.MenteeScore,
		&log.MentorNeedsSupport, &log.MentorSupportReason,
		&log.MenteeNeedsSupport, &log.MenteeSupportReason,
		&log.CompletedByMentor, &log.CompletedByMentee,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
