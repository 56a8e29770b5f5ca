package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/divsim/dividend-simulator/internal/calculation"
	"github.com/divsim/dividend-simulator/internal/logging"
	"github.com/divsim/dividend-simulator/internal/output"
)

var sweepFlags struct {
	minLeverage float64
	maxLeverage float64
	step        float64
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the simulation across a range of target leverage levels",
	Long: `sweep repeats the Monte Carlo batch for each target leverage level in
half-turn steps, from net-cash balance sheets to heavily levered ones, and
prints one decile table per level. All other parameters come from the
configuration file or their defaults.`,
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.Float64Var(&sweepFlags.minLeverage, "min", -0.5, "lowest target leverage (negative means net cash)")
	f.Float64Var(&sweepFlags.maxLeverage, "max", 4.5, "highest target leverage")
	f.Float64Var(&sweepFlags.step, "step", 0.5, "leverage increment per run")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	if sweepFlags.step <= 0 {
		return fmt.Errorf("step must be positive, got %v", sweepFlags.step)
	}
	conf, err := loadConfiguration()
	if err != nil {
		return err
	}
	logger, err := buildLogger(conf)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	base := conf.SimulationConfig()
	engineLogger := logging.NewEngineLogger(logger)
	formatter := output.ConsoleFormatter{}

	min := decimal.NewFromFloat(sweepFlags.minLeverage)
	max := decimal.NewFromFloat(sweepFlags.maxLeverage)
	step := decimal.NewFromFloat(sweepFlags.step)

	for level := min; level.LessThanOrEqual(max); level = level.Add(step) {
		cfg := base
		cfg.TargetLeverage = level

		sim := calculation.NewSimulator(cfg)
		sim.SetLogger(engineLogger)
		summary, err := sim.Run()
		if err != nil {
			return fmt.Errorf("target leverage %s: %w", level, err)
		}

		fmt.Printf("--- target leverage %s ---\n", level)
		if err := output.WriteFormatted(os.Stdout, formatter, summary); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
