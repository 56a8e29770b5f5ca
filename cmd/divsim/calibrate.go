package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/divsim/dividend-simulator/internal/calculation"
	"github.com/divsim/dividend-simulator/internal/logging"
	"github.com/divsim/dividend-simulator/internal/output"
)

var calibrateFlags struct {
	minBump float64
	maxBump float64
	step    float64
	target  float64
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Scan profit bump values to find the breakeven calibration",
	Long: `calibrate runs the Monte Carlo batch once per profit bump value in the
scanned range and prints the mean present value for each, so the bump that
prices the company at the target value (by default its initial equity) can
be read off directly.`,
	RunE: runCalibrate,
}

func init() {
	f := calibrateCmd.Flags()
	f.Float64Var(&calibrateFlags.minBump, "min", 0.0, "lowest profit bump to scan")
	f.Float64Var(&calibrateFlags.maxBump, "max", 0.1, "highest profit bump to scan")
	f.Float64Var(&calibrateFlags.step, "step", 0.005, "bump increment per run")
	f.Float64Var(&calibrateFlags.target, "target", 0, "breakeven mean present value (default initial equity)")
	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(cmd *cobra.Command, _ []string) error {
	if calibrateFlags.step <= 0 {
		return fmt.Errorf("step must be positive, got %v", calibrateFlags.step)
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

	target := base.InitialEquity
	if cmd.Flags().Changed("target") {
		target = decimal.NewFromFloat(calibrateFlags.target)
	}

	min := decimal.NewFromFloat(calibrateFlags.minBump)
	max := decimal.NewFromFloat(calibrateFlags.maxBump)
	step := decimal.NewFromFloat(calibrateFlags.step)

	var bestBump, bestDistance decimal.Decimal
	first := true

	fmt.Println("bump      mean PV")
	for bump := min; bump.LessThanOrEqual(max); bump = bump.Add(step) {
		cfg := base
		cfg.ProfitBump = bump

		sim := calculation.NewSimulator(cfg)
		sim.SetLogger(engineLogger)
		summary, err := sim.Run()
		if err != nil {
			return fmt.Errorf("profit bump %s: %w", bump, err)
		}

		distance := summary.Mean.Sub(target).Abs()
		if first || distance.LessThan(bestDistance) {
			bestBump, bestDistance = bump, distance
			first = false
		}
		fmt.Printf("%-8s  %s\n", bump, output.FormatValue(summary.Mean))
	}

	fmt.Printf("\nclosest to target %s: bump %s\n", output.FormatValue(target), bestBump)
	return nil
}
