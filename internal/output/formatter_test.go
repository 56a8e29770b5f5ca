package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divsim/dividend-simulator/internal/domain"
)

func testSummary() *domain.SimulationSummary {
	deciles := make([]domain.DecilePoint, 0, 9)
	for i := 1; i <= 9; i++ {
		q := decimal.NewFromFloat(0.1).Mul(decimal.NewFromInt(int64(i)))
		deciles = append(deciles, domain.DecilePoint{
			Quantile: q,
			Value:    decimal.NewFromInt(int64(i)),
		})
	}
	return &domain.SimulationSummary{
		Outcomes:       []decimal.Decimal{decimal.NewFromInt(5)},
		Deciles:        deciles,
		Mean:           decimal.NewFromFloat(5.5),
		Trials:         1000,
		DiscountRate:   decimal.NewFromFloat(0.1),
		TargetLeverage: decimal.NewFromInt(2),
		ReinvestRate:   decimal.NewFromFloat(0.5),
		ProfitBump:     decimal.NewFromFloat(0.065),
		Seed:           42,
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q", name)
		assert.Equal(t, name, f.Name())
	}

	// Aliases and case folding.
	assert.Equal(t, "console", GetFormatterByName("pretty").Name())
	assert.Equal(t, "console", GetFormatterByName("TABLE").Name())
	assert.Equal(t, "console", GetFormatterByName(" text ").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())

	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(testSummary())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "DIVIDEND PRESENT VALUE DISTRIBUTION")
	assert.Contains(t, text, "Trials: 1000")
	assert.Contains(t, text, "10%")
	assert.Contains(t, text, "90%")
	assert.Contains(t, text, "Mean: 5.5000")
	// One line per decile.
	assert.Equal(t, 9, strings.Count(text, "%  "))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(testSummary())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header, nine deciles, mean, trials.
	require.Len(t, records, 12)
	assert.Equal(t, []string{"statistic", "present_value"}, records[0])
	assert.Equal(t, []string{"p10", "1.000000"}, records[1])
	assert.Equal(t, []string{"p90", "9.000000"}, records[9])
	assert.Equal(t, []string{"mean", "5.500000"}, records[10])
	assert.Equal(t, []string{"trials", "1000"}, records[11])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(testSummary())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "deciles")
	assert.Contains(t, decoded, "mean")
	assert.EqualValues(t, 1000, decoded["trials"])
}

func TestWriteFormatted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFormatted(&buf, ConsoleFormatter{}, testSummary()))
	assert.Contains(t, buf.String(), "Mean:")
}
