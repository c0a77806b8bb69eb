package email

import (
	"io"
	"strings"
	"testing"

	"github.com/Dan9191/forecast-service/internal/config"
	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/sirupsen/logrus"
)

func TestNewDigest(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewSender(&config.Config{SenderEmail: "forecast@example.com"}, log)

	done := "2026-03"
	e := s.newDigest("ann@example.com", "ann", models.GoalProgressResponse{
		AsOf: "2025-06-15",
		Goals: []models.GoalProgress{
			{Name: "Emergency fund", TargetAmount: 10000, PercentComplete: 42.5, OnTrack: true, ProjectedCompletionDate: &done},
			{Name: "Car loan", TargetAmount: 8000, PercentComplete: 10},
		},
	})

	if e.From != "forecast@example.com" || len(e.To) != 1 || e.To[0] != "ann@example.com" {
		t.Fatalf("unexpected envelope: from=%s to=%v", e.From, e.To)
	}
	if e.Subject != "Your goal progress for 2025-06-15" {
		t.Fatalf("subject=%q", e.Subject)
	}
	body := string(e.Text)
	for _, want := range []string{
		"Dear ann,",
		"- Emergency fund: 42.5% of 10000.00 (on track), projected completion 2026-03\n",
		"- Car loan: 10.0% of 8000.00 (behind)\n",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
