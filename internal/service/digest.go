package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/robfig/cron/v3"
)

// Mailer delivers goal digests
type Mailer interface {
	SendGoalDigest(to, username string, progress models.GoalProgressResponse) error
}

// ScheduleDigest registers the weekly goal digest on c
func (s *Service) ScheduleDigest(c *cron.Cron, spec string, mailer Mailer) error {
	_, err := c.AddFunc(spec, func() {
		sent, err := s.SendDigests(context.Background(), mailer)
		if err != nil {
			s.log.WithError(err).Error("Goal digest run failed")
			return
		}
		s.log.Infof("Goal digest sent to %d users", sent)
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return nil
}

// SendDigests emails goal progress to every user with at least one goal.
// A failure for one user is logged and does not stop the run.
func (s *Service) SendDigests(ctx context.Context, mailer Mailer) (int, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, u := range users {
		progress, err := s.GoalProgress(ctx, u.ID)
		if err != nil {
			s.log.WithError(err).Warnf("Skipping digest for user %d", u.ID)
			continue
		}
		if len(progress.Goals) == 0 {
			continue
		}
		if err := mailer.SendGoalDigest(u.Email, u.Username, progress); err != nil {
			s.log.WithError(err).Warnf("Failed to send digest to user %d", u.ID)
			continue
		}
		sent++
	}
	return sent, nil
}
