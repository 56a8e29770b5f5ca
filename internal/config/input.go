package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/divsim/dividend-simulator/internal/calculation"
)

// Configuration is the full simulator input file.
type Configuration struct {
	Simulation SimulationSettings `yaml:"simulation"`
	Logging    LoggingSettings    `yaml:"logging"`
	Output     OutputSettings     `yaml:"output"`
}

// SimulationSettings mirrors calculation.SimulationConfig with optional
// fields, so values absent from the file fall back to the reference
// defaults. Pointers distinguish "not set" from legitimate zero values
// (target_leverage: 0 is an all-equity company, not an omission). Plain
// floats here; conversion to decimal happens once at the driver boundary.
type SimulationSettings struct {
	RiskFreeRate   *float64 `yaml:"risk_free_rate"`
	DiscountRate   *float64 `yaml:"discount_rate"`
	InitialEquity  *float64 `yaml:"initial_equity"`
	TargetLeverage *float64 `yaml:"target_leverage"`
	ReinvestRate   *float64 `yaml:"reinvest_rate"`
	ProfitBump     *float64 `yaml:"profit_bump"`
	Trials         *int     `yaml:"trials"`
	HorizonYears   *int     `yaml:"horizon_years"`
	Seed           int64    `yaml:"seed"`
}

// LoggingSettings controls the process logger.
type LoggingSettings struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// OutputSettings controls report rendering.
type OutputSettings struct {
	Format string `yaml:"format"` // console, csv, json
	File   string `yaml:"file"`   // empty writes to stdout
}

// InputParser handles loading and validation of simulator configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The simulation
// driver re-checks its own invariants; these checks exist to reject a bad
// file with a message that points at the field.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	s := config.Simulation
	if s.Trials != nil && *s.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", *s.Trials)
	}
	if s.InitialEquity != nil && *s.InitialEquity <= 0 {
		return fmt.Errorf("initial_equity must be positive, got %v", *s.InitialEquity)
	}
	if s.ReinvestRate != nil && (*s.ReinvestRate < 0 || *s.ReinvestRate > 1) {
		return fmt.Errorf("reinvest_rate must be between 0 and 1, got %v", *s.ReinvestRate)
	}
	if s.HorizonYears != nil && *s.HorizonYears <= 0 {
		return fmt.Errorf("horizon_years must be positive, got %d", *s.HorizonYears)
	}

	switch config.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level must be one of debug, info, warn, error; got %q", config.Logging.Level)
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging format must be 'console' or 'json', got %q", config.Logging.Format)
	}
	switch config.Output.Format {
	case "", "console", "csv", "json":
	default:
		return fmt.Errorf("output format must be one of console, csv, json; got %q", config.Output.Format)
	}

	return nil
}

// SimulationConfig converts the file settings into a fully defaulted
// calculation config.
func (c *Configuration) SimulationConfig() calculation.SimulationConfig {
	cfg := calculation.DefaultConfig()
	s := c.Simulation

	if s.RiskFreeRate != nil {
		cfg.RiskFreeRate = decimal.NewFromFloat(*s.RiskFreeRate)
		cfg.DiscountRate = calculation.DefaultDiscountRate(cfg.RiskFreeRate)
	}
	if s.DiscountRate != nil {
		cfg.DiscountRate = decimal.NewFromFloat(*s.DiscountRate)
	}
	if s.InitialEquity != nil {
		cfg.InitialEquity = decimal.NewFromFloat(*s.InitialEquity)
	}
	if s.TargetLeverage != nil {
		cfg.TargetLeverage = decimal.NewFromFloat(*s.TargetLeverage)
	}
	if s.ReinvestRate != nil {
		cfg.ReinvestRate = decimal.NewFromFloat(*s.ReinvestRate)
	}
	if s.ProfitBump != nil {
		cfg.ProfitBump = decimal.NewFromFloat(*s.ProfitBump)
	}
	if s.Trials != nil {
		cfg.Trials = *s.Trials
	}
	if s.HorizonYears != nil {
		cfg.HorizonYears = *s.HorizonYears
	}
	cfg.Seed = s.Seed

	return cfg
}

// CreateExampleConfiguration returns the reference calibration run as a
// configuration value; the init command serializes it for new users.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		Simulation: SimulationSettings{
			RiskFreeRate:   floatPtr(0.04),
			DiscountRate:   floatPtr(0.10),
			InitialEquity:  floatPtr(10),
			TargetLeverage: floatPtr(2),
			ReinvestRate:   floatPtr(0.5),
			ProfitBump:     floatPtr(0.065),
			Trials:         intPtr(calculation.DefaultTrials),
			HorizonYears:   intPtr(calculation.DefaultHorizonYears),
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
		Output: OutputSettings{
			Format: "console",
		},
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
