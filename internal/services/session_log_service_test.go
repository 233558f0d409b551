package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionLogService_Upsert_MentorLogsOwnSession(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewSessionLogService(logRepo, mentorRepo, nil)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	req := &models.UpsertSessionLogRequest{
		MenteeID:    "mentee-1",
		SessionDate: "2026-08-20",
		Topic:       "Goroutines and channels",
	}

	mentorRepo.On("GetByUserID", mock.Anything, "user-m").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)
	logRepo.On("Upsert", mock.Anything, "mentor-1", req).
		Return(&models.SessionLog{ID: "log-1", MentorID: "mentor-1", MenteeID: "mentee-1"}, nil)

	log, err := service.Upsert(context.Background(), identity, req)

	require.NoError(t, err)
	assert.Equal(t, "log-1", log.ID)
	logRepo.AssertExpectations(t)
}

func TestSessionLogService_Upsert_MentorCannotLogForOthers(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewSessionLogService(logRepo, mentorRepo, nil)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}
	req := &models.UpsertSessionLogRequest{
		MentorID:    "mentor-other",
		MenteeID:    "mentee-1",
		SessionDate: "2026-08-20",
		Topic:       "Goroutines and channels",
	}

	mentorRepo.On("GetByUserID", mock.Anything, "user-m").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)

	_, err := service.Upsert(context.Background(), identity, req)

	require.ErrorIs(t, err, apperrors.ErrAccessDenied)
	logRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionLogService_List_MentorPinnedToOwnLogs(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewSessionLogService(logRepo, mentorRepo, nil)

	identity := &models.Identity{UserID: "user-m", Role: models.RoleMentor}

	mentorRepo.On("GetByUserID", mock.Anything, "user-m").
		Return(&models.Mentor{ID: "mentor-1", UserID: "user-m"}, nil)
	logRepo.On("List", mock.Anything, mock.MatchedBy(func(f *models.SessionLogFilter) bool {
		return f.MentorID == "mentor-1"
	})).Return([]*models.SessionLog{{ID: "log-1", MentorID: "mentor-1"}}, nil)

	// Attempting to filter by another mentor is silently overridden
	logs, err := service.List(context.Background(), identity, &models.SessionLogFilter{MentorID: "mentor-other"})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "mentor-1", logs[0].MentorID)
}

func TestSessionLogService_List_AdminFiltersFreely(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	mentorRepo := new(MockMentorRepository)
	service := services.NewSessionLogService(logRepo, mentorRepo, nil)

	identity := &models.Identity{UserID: "user-a", Role: models.RoleAdmin}
	filter := &models.SessionLogFilter{MenteeID: "mentee-5"}

	logRepo.On("List", mock.Anything, filter).Return([]*models.SessionLog{}, nil)

	_, err := service.List(context.Background(), identity, filter)

	require.NoError(t, err)
	mentorRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestSessionLogService_NeedsSupport(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	service := services.NewSessionLogService(logRepo, new(MockMentorRepository), nil)

	logRepo.On("List", mock.Anything, mock.MatchedBy(func(f *models.SessionLogFilter) bool {
		return f.NeedsSupport && f.MentorID == "" && f.MenteeID == ""
	})).Return([]*models.SessionLog{{ID: "log-1", MentorNeedsSupport: true}}, nil)

	logs, err := service.NeedsSupport(context.Background())

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].MentorNeedsSupport)
}

func TestSessionLogService_ExportCSV(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	service := services.NewSessionLogService(logRepo, new(MockMentorRepository), nil)

	score := 4
	reason := "needs help with system design"
	logRepo.On("All", mock.Anything).Return([]*models.SessionLog{
		{
			ID:                "log-1",
			MentorID:          "mentor-1",
			MenteeID:          "mentee-1",
			SessionDate:       "2026-08-20",
			Topic:             "Goroutines and channels",
			MentorScore:       &score,
			CompletedByMentor: true,
		},
		{
			ID:                  "log-2",
			MentorID:            "mentor-1",
			MenteeID:            "mentee-2",
			SessionDate:         "2026-08-21",
			Topic:               "Career planning",
			MenteeNeedsSupport:  true,
			MenteeSupportReason: &reason,
		},
	}, nil)

	data, err := service.ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"id", "mentor_id", "mentee_id", "session_date", "topic",
		"mentor_score", "mentee_score",
		"mentor_needs_support", "mentor_support_reason",
		"mentee_needs_support", "mentee_support_reason",
		"completed_by_mentor", "completed_by_mentee",
	}, records[0])

	assert.Equal(t, []string{
		"log-1", "mentor-1", "mentee-1", "2026-08-20", "Goroutines and channels",
		"4", "", "false", "", "false", "", "true", "false",
	}, records[1])
	assert.Equal(t, []string{
		"log-2", "mentor-1", "mentee-2", "2026-08-21", "Career planning",
		"", "", "false", "", "true", "needs help with system design", "false", "false",
	}, records[2])
}

func TestSessionLogService_ExportCSV_Empty(t *testing.T) {
	logRepo := new(MockSessionLogRepository)
	service := services.NewSessionLogService(logRepo, new(MockMentorRepository), nil)

	logRepo.On("All", mock.Anything).Return([]*models.SessionLog{}, nil)

	data, err := service.ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
