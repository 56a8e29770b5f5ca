package calculation

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// Reference defaults for the simulation parameters. They reproduce the
// calibration run the model was tuned against.
var (
	DefaultRiskFreeRate   = decimal.NewFromFloat(0.04)
	DefaultInitialEquity  = decimal.NewFromInt(10)
	DefaultTargetLeverage = decimal.NewFromInt(2)
	DefaultReinvestRate   = decimal.NewFromFloat(0.5)
	DefaultProfitBump     = decimal.NewFromFloat(0.065)
)

// DefaultTrials is the default Monte Carlo batch size.
const DefaultTrials = 1000

// maxConcurrentTrials bounds the trial worker fan-out.
const maxConcurrentTrials = 10

// SimulationConfig holds every tunable of a Monte Carlo run.
type SimulationConfig struct {
	RiskFreeRate decimal.Decimal
	// DiscountRate is used as given, zero included (an undiscounted sum is a
	// valid valuation). DefaultConfig and the config/flag layers resolve the
	// risk-free-plus-premium default where omission is still knowable.
	DiscountRate   decimal.Decimal
	InitialEquity  decimal.Decimal
	TargetLeverage decimal.Decimal
	ReinvestRate   decimal.Decimal
	ProfitBump     decimal.Decimal
	Trials         int
	HorizonYears   int
	// Seed is the master seed for the batch; zero draws one from seedFunc.
	Seed int64
}

// DefaultConfig returns the reference calibration run's configuration.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		RiskFreeRate:   DefaultRiskFreeRate,
		DiscountRate:   DefaultDiscountRate(DefaultRiskFreeRate),
		InitialEquity:  DefaultInitialEquity,
		TargetLeverage: DefaultTargetLeverage,
		ReinvestRate:   DefaultReinvestRate,
		ProfitBump:     DefaultProfitBump,
		Trials:         DefaultTrials,
		HorizonYears:   DefaultHorizonYears,
	}
}

// Validate rejects configurations that would produce nonsensical output.
// Every rejection wraps ErrInvalidConfig.
func (c SimulationConfig) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.InitialEquity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: initial equity must be positive, got %s", ErrInvalidConfig, c.InitialEquity)
	}
	if c.ReinvestRate.IsNegative() || c.ReinvestRate.GreaterThan(one) {
		return fmt.Errorf("%w: reinvest rate must be in [0,1], got %s", ErrInvalidConfig, c.ReinvestRate)
	}
	if c.HorizonYears < 0 {
		return fmt.Errorf("%w: horizon years cannot be negative, got %d", ErrInvalidConfig, c.HorizonYears)
	}
	return nil
}

// Simulator repeats company-lifecycle simulation and valuation across
// independent trials.
type Simulator struct {
	config SimulationConfig
	logger Logger
}

// NewSimulator creates a simulator for the given configuration.
func NewSimulator(config SimulationConfig) *Simulator {
	return &Simulator{config: config, logger: NopLogger{}}
}

// SetLogger replaces the simulator's logger (default is a no-op).
func (s *Simulator) SetLogger(l Logger) {
	if l != nil {
		s.logger = l
	}
}

// Run executes the full batch and returns one present value per trial plus
// the decile summary. Trials are independent; each derives its own random
// source from the master seed, so a seeded run is reproducible regardless of
// goroutine scheduling. Any trial failure fails the batch: dropping trials
// would bias the reported distribution.
func (s *Simulator) Run() (*domain.SimulationSummary, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = seedFunc()
	}

	s.logger.Infof("starting simulation: trials=%d leverage=%s reinvest=%s bump=%s seed=%d",
		cfg.Trials, cfg.TargetLeverage, cfg.ReinvestRate, cfg.ProfitBump, seed)

	outcomes := make([]decimal.Decimal, cfg.Trials)
	errs := make([]error, cfg.Trials)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentTrials)

	for i := 0; i < cfg.Trials; i++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			pv, err := s.runTrial(cfg, seed+int64(trial))
			if err != nil {
				errs[trial] = fmt.Errorf("trial %d: %w", trial, err)
				return
			}
			outcomes[trial] = pv
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Errorf("simulation aborted: %v", err)
			return nil, err
		}
	}

	summary := Summarize(outcomes)
	summary.Trials = cfg.Trials
	summary.DiscountRate = cfg.DiscountRate
	summary.TargetLeverage = cfg.TargetLeverage
	summary.ReinvestRate = cfg.ReinvestRate
	summary.ProfitBump = cfg.ProfitBump
	summary.Seed = seed

	s.logger.Infof("simulation complete: mean=%s", summary.Mean)
	return summary, nil
}

// runTrial simulates one fresh company and values its dividend stream.
func (s *Simulator) runTrial(cfg SimulationConfig, seed int64) (decimal.Decimal, error) {
	rng := rand.New(rand.NewSource(seed))
	sim := &LifecycleSimulator{
		Returns: NewReturnModel(rng),
		Policy:  FinancingPolicy{RiskFreeRate: cfg.RiskFreeRate},
		Horizon: cfg.HorizonYears,
	}
	company := domain.NewCompanyState(cfg.InitialEquity, cfg.TargetLeverage, cfg.ReinvestRate)
	cashFlows, err := sim.Run(company, cfg.ProfitBump)
	if err != nil {
		return decimal.Zero, err
	}
	return PresentValue(cashFlows, cfg.DiscountRate), nil
}
