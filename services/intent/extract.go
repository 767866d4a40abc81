package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/pkg/schedule"
	"github.com/shopspring/decimal"
)

var (
	amountPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	intervalPattern = regexp.MustCompile(`every\s+(\d+)\s*(second|sec|s|minute|min|hour|day)s?`)
	monthlyPattern  = regexp.MustCompile(`(?:every|each)\s+(?:month|monthly)\s*(?:on)?\s*(?:the\s*)?(\d{1,2})`)
	countPattern    = regexp.MustCompile(`(\d+|one|two|three|four|five)\s+transactions?`)
)

var unitSeconds = map[string]int64{
	"second": 1,
	"sec":    1,
	"s":      1,
	"minute": 60,
	"min":    60,
	"hour":   3600,
	"day":    86400,
}

var numberWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

// DefaultAnalysisCount is used when an analysis request names no count
const DefaultAnalysisCount = 2

// ExtractAmount returns the first decimal number in text, ignoring thousands separators
func ExtractAmount(text string) *decimal.Decimal {
	m := amountPattern.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return nil
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return nil
	}
	return &d
}

// ExtractSchedule recognises "every N <unit>" and "every month on the D" phrases
func ExtractSchedule(text string) *models.Schedule {
	lowered := strings.ToLower(text)

	if m := intervalPattern.FindStringSubmatch(lowered); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		unit := unitSeconds[m[2]]
		if err == nil && n > 0 && unit > 0 && n <= schedule.MaxIntervalSeconds/unit {
			return &models.Schedule{
				Recurring:       true,
				Frequency:       models.FrequencyInterval,
				IntervalSeconds: n * unit,
			}
		}
		return nil
	}

	if m := monthlyPattern.FindStringSubmatch(lowered); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil {
			return &models.Schedule{
				Recurring:  true,
				Frequency:  models.FrequencyMonthly,
				DayOfMonth: day,
			}
		}
	}

	return nil
}

// IsAnalysisRequest reports whether text asks to analyze transactions
func IsAnalysisRequest(text string) bool {
	lowered := strings.ToLower(text)
	return strings.Contains(lowered, "analy") && strings.Contains(lowered, "transaction")
}

// ExtractAnalysisCount reads "N transactions" where N is digits or one..five
func ExtractAnalysisCount(text string) int {
	m := countPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return DefaultAnalysisCount
	}
	if n, ok := numberWords[m[1]]; ok {
		return n
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return DefaultAnalysisCount
	}
	return n
}
