package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/storage"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"id", "mentor_id", "mentee_id", "session_date", "topic",
	"mentor_score", "mentee_score",
	"mentor_needs_support", "mentor_support_reason",
	"mentee_needs_support", "mentee_support_reason",
	"completed_by_mentor", "completed_by_mentee",
}

// SessionLogService handles session log upserts, listing and CSV export
type SessionLogService struct {
	logRepo       repository.SessionLogRepositoryInterface
	mentorRepo    repository.MentorRepositoryInterface
	storageClient *storage.Client
}

// NewSessionLogService creates a new session log service instance. The
// storage client may be nil; export then skips the archive upload.
func NewSessionLogService(
	logRepo repository.SessionLogRepositoryInterface,
	mentorRepo repository.MentorRepositoryInterface,
	storageClient *storage.Client,
) *SessionLogService {
	return &SessionLogService{
		logRepo:       logRepo,
		mentorRepo:    mentorRepo,
		storageClient: storageClient,
	}
}

// Upsert writes a session log for one (mentor, mentee, date). Re-submitting
// the same key updates the record in place. Mentors log for themselves;
// admins may log for any mentor via req.MentorID.
func (s *SessionLogService) Upsert(ctx context.Context, identity *models.Identity, req *models.UpsertSessionLogRequest) (*models.SessionLog, error) {
	mentorID := req.MentorID
	if identity.Role != models.RoleAdmin {
		mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if mentorID != "" && mentorID != mentor.ID {
			return nil, apperrors.AccessDeniedError("mentors log their own sessions")
		}
		mentorID = mentor.ID
	}
	if mentorID == "" {
		return nil, apperrors.InvalidInputError("mentorId", "required")
	}

	log, err := s.logRepo.Upsert(ctx, mentorID, req)
	if err != nil {
		metrics.SessionLogUpserts.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SessionLogUpserts.WithLabelValues("success").Inc()
	return log, nil
}

// List returns session logs visible to the caller. Mentors see their own
// logs; admins see everything and may filter freely.
func (s *SessionLogService) List(ctx context.Context, identity *models.Identity, filter *models.SessionLogFilter) ([]*models.SessionLog, error) {
	if identity.Role != models.RoleAdmin {
		mentor, err := s.mentorRepo.GetByUserID(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		filter.MentorID = mentor.ID
	}
	return s.logRepo.List(ctx, filter)
}

// NeedsSupport returns logs where either side raised a support flag
func (s *SessionLogService) NeedsSupport(ctx context.Context) ([]*models.SessionLog, error) {
	return s.logRepo.List(ctx, &models.SessionLogFilter{NeedsSupport: true})
}

// ExportCSV renders every session log as CSV. When object storage is
// configured a copy is archived; archive failures do not fail the export.
func (s *SessionLogService) ExportCSV(ctx context.Context) ([]byte, error) {
	logs, err := s.logRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, log := range logs {
		if err := w.Write(exportRow(log)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	data := buf.Bytes()
	if s.storageClient != nil {
		key := fmt.Sprintf("exports/session-logs-%s.csv", time.Now().UTC().Format("20060102-150405"))
		if _, err := s.storageClient.Upload(ctx, key, "text/csv", data); err != nil {
			logger.Error("Failed to archive session log export", zap.Error(err), zap.String("key", key))
		} else {
			logger.Info("Session log export archived", zap.String("key", key), zap.Int("rows", len(logs)))
		}
	}
	return data, nil
}

func exportRow(log *models.SessionLog) []string {
	return []string{
		log.ID, log.MentorID, log.MenteeID, log.SessionDate, log.Topic,
		optionalInt(log.MentorScore), optionalInt(log.MenteeScore),
		strconv.FormatBool(log.MentorNeedsSupport), optionalString(log.MentorSupportReason),
		strconv.FormatBool(log.MenteeNeedsSupport), optionalString(log.MenteeSupportReason),
		strconv.FormatBool(log.CompletedByMentor), strconv.FormatBool(log.CompletedByMentee),
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
