package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

var asOf = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.005 {
		t.Fatalf("%s=%.4f want=%.4f", name, got, want)
	}
}

func balances(points []models.BalancePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Balance
	}
	return out
}
