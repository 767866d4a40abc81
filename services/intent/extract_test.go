package intent

import (
	"testing"

	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Pay 50 USDC to Alice", "50"},
		{"send 1,250.75 to bob", "1250.75"},
		{"transfer 0.5", "0.5"},
		{"pay alice", ""},
	}

	for _, tt := range tests {
		got := ExtractAmount(tt.text)
		if tt.expected == "" {
			assert.Nil(t, got, tt.text)
			continue
		}
		require.NotNil(t, got, tt.text)
		assert.Equal(t, tt.expected, got.String(), tt.text)
	}
}

func TestExtractSchedule(t *testing.T) {
	tests := []struct {
		text     string
		expected *models.Schedule
	}{
		{"Pay 10 USDC to Bob every 5 seconds", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 5}},
		{"every 2 minutes", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 120}},
		{"every 3 hours", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 10800}},
		{"every 1 day", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 86400}},
		{"Every 30s", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 30}},
		{"pay rent every month on the 15", &models.Schedule{Recurring: true, Frequency: models.FrequencyMonthly, DayOfMonth: 15}},
		{"each monthly 1", &models.Schedule{Recurring: true, Frequency: models.FrequencyMonthly, DayOfMonth: 1}},
		{"Pay 50 USDC to Alice", nil},
		{"every 0 days", nil},
		{"pay 10 usdc to bob every 200000 days", nil},
		{"every 99999999999999999999 seconds", nil},
		{"every 106751 days", &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 106751 * 86400}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractSchedule(tt.text), tt.text)
	}
}

func TestAnalysisRequest(t *testing.T) {
	assert.True(t, IsAnalysisRequest("Analyze my last three transactions"))
	assert.True(t, IsAnalysisRequest("please analyse transactions"))
	assert.False(t, IsAnalysisRequest("show my transactions"))

	assert.Equal(t, 3, ExtractAnalysisCount("analyze my last three transactions"))
	assert.Equal(t, 4, ExtractAnalysisCount("analyze 4 transactions"))
	assert.Equal(t, 1, ExtractAnalysisCount("analyze one transaction"))
	assert.Equal(t, DefaultAnalysisCount, ExtractAnalysisCount("analyze my transactions"))
}
