package output

import (
	"bytes"
	"fmt"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// ConsoleFormatter renders the decile table the way the interactive report
// prints it: nine quantiles then the mean.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DIVIDEND PRESENT VALUE DISTRIBUTION")
	fmt.Fprintln(&buf, "===================================")
	fmt.Fprintf(&buf, "Trials: %d  Target Leverage: %s  Reinvest Rate: %s\n",
		summary.Trials, FormatRate(summary.TargetLeverage), FormatRate(summary.ReinvestRate))
	fmt.Fprintf(&buf, "Discount Rate: %s  Profit Bump: %s  Seed: %d\n",
		FormatRate(summary.DiscountRate), FormatRate(summary.ProfitBump), summary.Seed)
	fmt.Fprintln(&buf)
	for _, d := range summary.Deciles {
		fmt.Fprintf(&buf, "%4s  %s\n", FormatQuantile(d.Quantile), FormatValue(d.Value))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Mean: %s\n", FormatValue(summary.Mean))
	return buf.Bytes(), nil
}
