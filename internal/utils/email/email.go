package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/forecast-service/internal/config"
	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendGoalDigest sends the weekly goal progress digest
func (s *Sender) SendGoalDigest(to, username string, progress models.GoalProgressResponse) error {
	e := s.newDigest(to, username, progress)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) newDigest(to, username string, progress models.GoalProgressResponse) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your goal progress for %s", progress.AsOf)
	e.Text = []byte(digestBody(username, progress))
	return e
}

func digestBody(username string, progress models.GoalProgressResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", username)
	fmt.Fprintf(&b, "Here is where your goals stand as of %s.\n\n", progress.AsOf)
	for _, g := range progress.Goals {
		status := "on track"
		if !g.OnTrack {
			status = "behind"
		}
		fmt.Fprintf(&b, "- %s: %.1f%% of %.2f (%s)", g.Name, g.PercentComplete, g.TargetAmount, status)
		if g.ProjectedCompletionDate != nil {
			fmt.Fprintf(&b, ", projected completion %s", *g.ProjectedCompletionDate)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nBest regards,\nForecast Service")
	return b.String()
}
