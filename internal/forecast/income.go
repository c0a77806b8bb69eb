package forecast

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

// Income detection defaults
const (
	DefaultIncomeLookbackMonths = 6
	DefaultIncomeMinAmount      = 25.0
	DefaultIncomeMinOccurrences = 3
)

// IncomeOptions tunes recurring income detection
type IncomeOptions struct {
	AsOf           time.Time
	LookbackMonths int
	MinAmount      float64
	MinOccurrences int
}

// DefaultIncomeOptions returns the standard detection thresholds anchored at asOf
func DefaultIncomeOptions(asOf time.Time) IncomeOptions {
	return IncomeOptions{
		AsOf:           asOf,
		LookbackMonths: DefaultIncomeLookbackMonths,
		MinAmount:      DefaultIncomeMinAmount,
		MinOccurrences: DefaultIncomeMinOccurrences,
	}
}

var (
	transferPattern = regexp.MustCompile(`(?i)\b(transfer|xfer|zelle|venmo|paypal|cash\s?app|apple\s?cash)\b|\bach\b.*\b(savings|checking)\b`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9\s]+`)
)

// IsTransfer reports whether a description looks like money moving between
// the user's own accounts or through a peer-to-peer app
func IsTransfer(description string) bool {
	return transferPattern.MatchString(description)
}

// NormalizeDescription builds the grouping key for a transaction description
func NormalizeDescription(description string) string {
	s := strings.ToUpper(description)
	s = nonAlphanumeric.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// ClassifyGap maps an average gap between occurrences in days to a frequency
func ClassifyGap(days float64) models.Frequency {
	switch {
	case days <= 10:
		return models.Weekly
	case days <= 18:
		return models.Biweekly
	case days <= 45:
		return models.Monthly
	case days <= 100:
		return models.Quarterly
	default:
		return models.Yearly
	}
}

// DetectIncomePatterns infers recurring income streams from transaction history.
// Results are sorted by monthly equivalent, largest first.
func DetectIncomePatterns(txns []models.Transaction, opts IncomeOptions) []models.DetectedIncomePattern {
	from := opts.AsOf.AddDate(0, -opts.LookbackMonths, 0)

	groups := make(map[string][]models.Transaction)
	for _, t := range txns {
		if t.Date.Before(from) || t.Date.After(opts.AsOf) {
			continue
		}
		if t.Amount <= opts.MinAmount || IsTransfer(t.Description) {
			continue
		}
		key := NormalizeDescription(t.Description)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], t)
	}

	patterns := make([]models.DetectedIncomePattern, 0, len(groups))
	for _, group := range groups {
		if len(group) < opts.MinOccurrences || len(group) < 2 {
			continue
		}
		patterns = append(patterns, summarizeGroup(group))
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].MonthlyEquivalent != patterns[j].MonthlyEquivalent {
			return patterns[i].MonthlyEquivalent > patterns[j].MonthlyEquivalent
		}
		return patterns[i].Description < patterns[j].Description
	})
	return patterns
}

// summarizeGroup turns occurrences sharing a normalized description into a pattern
func summarizeGroup(group []models.Transaction) models.DetectedIncomePattern {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Date.Before(group[j].Date)
	})

	var total float64
	for _, t := range group {
		total += t.Amount
	}
	first, last := group[0], group[len(group)-1]
	gapDays := last.Date.Sub(first.Date).Hours() / 24 / float64(len(group)-1)

	average := total / float64(len(group))
	frequency := ClassifyGap(gapDays)
	return models.DetectedIncomePattern{
		Description:       strings.TrimSpace(last.Description),
		AverageAmount:     roundCents(average),
		Frequency:         frequency,
		MonthlyEquivalent: roundCents(average * MonthlyMultiplier(frequency)),
		Occurrences:       len(group),
		LastSeen:          last.Date,
	}
}
