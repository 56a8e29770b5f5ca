package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// CSVFormatter emits the decile table as quantile,present_value rows with
// the mean appended as a final row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"statistic", "present_value"}); err != nil {
		return nil, err
	}
	for _, d := range summary.Deciles {
		row := []string{"p" + d.Quantile.Mul(hundred).StringFixed(0), d.Value.StringFixed(6)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"mean", summary.Mean.StringFixed(6)}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"trials", strconv.Itoa(summary.Trials)}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
