package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/db"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/password"
	"go.uber.org/zap"
)

type seeder struct {
	users   repository.UserRepositoryInterface
	mentors repository.MentorRepositoryInterface
	mentees repository.MenteeRepositoryInterface
	groups  repository.GroupRepositoryInterface
	slots   repository.SlotRepositoryInterface
	logs    repository.SessionLogRepositoryInterface
	rels    repository.RelationshipRepositoryInterface
	cfg     *config.Config
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		ServiceName: "mentorhub-seed",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	s := &seeder{
		users:   repository.NewUserRepository(pool),
		mentors: repository.NewMentorRepository(pool),
		mentees: repository.NewMenteeRepository(pool),
		groups:  repository.NewGroupRepository(pool),
		slots:   repository.NewSlotRepository(pool),
		logs:    repository.NewSessionLogRepository(pool),
		rels:    repository.NewRelationshipRepository(pool),
		cfg:     cfg,
	}

	if err := s.run(ctx); err != nil {
		logger.Error("Seeding failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func (s *seeder) run(ctx context.Context) error {
	adminEmail := s.cfg.Auth.SeedAdminEmail
	adminPassword := s.cfg.Auth.SeedAdminPassword
	if adminEmail == "" || adminPassword == "" {
		return fmt.Errorf("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	if _, err := s.user(ctx, adminEmail, adminPassword, "Admin", models.RoleAdmin); err != nil {
		return err
	}

	mentorUser, err := s.user(ctx, "mentor@example.com", "mentor-pass-1", "An Nguyen", models.RoleMentor)
	if err != nil {
		return err
	}
	mentor, err := s.mentor(ctx, mentorUser.ID, &models.CreateMentorRequest{
		Expertise:      []string{"Backend", "Databases"},
		MaxMentees:     5,
		MentorshipType: models.MentorshipGroup,
		Duration:       models.DurationMediumTerm,
	})
	if err != nil {
		return err
	}

	menteeUser, err := s.user(ctx, "mentee@example.com", "mentee-pass-1", "Binh Tran", models.RoleMentee)
	if err != nil {
		return err
	}
	school := "HUST"
	mentee, err := s.mentee(ctx, menteeUser.ID, &models.CreateMenteeRequest{
		School:    &school,
		Interests: []string{"Go", "Distributed systems"},
		Goals:     []string{"Land a backend internship"},
	})
	if err != nil {
		return err
	}

	if err := s.rels.AssignMentee(ctx, mentor.ID, mentee.ID); err != nil &&
		!apperrors.Is(err, apperrors.ErrConflict) {
		return err
	}

	day := "Tuesday"
	if _, err := s.group(ctx, mentor.ID, &models.CreateGroupRequest{
		Name:        "Backend Fundamentals",
		Description: "Weekly deep dives into backend engineering",
		Topic:       "Backend",
		MaxCapacity: 8,
		MeetingSchedule: &models.MeetingSchedule{
			Frequency: models.FrequencyWeekly,
			DayOfWeek: &day,
			Time:      "19:00",
		},
	}); err != nil {
		return err
	}

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	if _, err := s.slot(ctx, mentor.ID, &models.CreateSlotRequest{
		Date:            date,
		Time:            "10:00",
		DurationMinutes: 60,
	}); err != nil {
		return err
	}

	score := 4
	if _, err := s.logs.Upsert(ctx, mentor.ID, &models.UpsertSessionLogRequest{
		MenteeID:          mentee.ID,
		SessionDate:       time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		Topic:             "Kickoff and goal setting",
		MentorScore:       &score,
		CompletedByMentor: true,
	}); err != nil {
		return err
	}

	return nil
}

// user creates an account or returns the existing one
func (s *seeder) user(ctx context.Context, email, plaintext, name string, role models.Role) (*models.User, error) {
	hash, err := password.Hash(plaintext, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, hash, name, role)
	if err == nil {
		logger.Info("Seeded user", zap.String("email", email), zap.String("role", string(role)))
		return user, nil
	}
	if apperrors.Is(err, apperrors.ErrConflict) {
		return s.users.GetByEmail(ctx, email)
	}
	return nil, err
}

func (s *seeder) mentor(ctx context.Context, userID string, req *models.CreateMentorRequest) (*models.Mentor, error) {
	mentor, err := s.mentors.Create(ctx, userID, req)
	if err == nil {
		return mentor, nil
	}
	if apperrors.Is(err, apperrors.ErrConflict) {
		return s.mentors.GetByUserID(ctx, userID)
	}
	return nil, err
}

func (s *seeder) mentee(ctx context.Context, userID string, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	mentee, err := s.mentees.Create(ctx, userID, req)
	if err == nil {
		return mentee, nil
	}
	if apperrors.Is(err, apperrors.ErrConflict) {
		return s.mentees.GetByUserID(ctx, userID)
	}
	return nil, err
}

// slot creates the sample slot unless the mentor already has one at the
// same date and time; slots carry no unique constraint to lean on
func (s *seeder) slot(ctx context.Context, mentorID string, req *models.CreateSlotRequest) (*models.Slot, error) {
	existing, err := s.slots.List(ctx, &models.SlotFilter{MentorID: mentorID})
	if err != nil {
		return nil, err
	}
	for _, sl := range existing {
		if sl.Date == req.Date && sl.Time == req.Time {
			return sl, nil
		}
	}
	return s.slots.Create(ctx, mentorID, req)
}

func (s *seeder) group(ctx context.Context, mentorID string, req *models.CreateGroupRequest) (*models.Group, error) {
	groups, err := s.groups.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Name == req.Name && g.MentorID == mentorID {
			return g, nil
		}
	}
	return s.groups.Create(ctx, mentorID, req)
}
