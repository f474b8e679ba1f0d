package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/runway/internal/forecast"
	"github.com/cleared-dev/runway/internal/goals"
)

// FileName is the config file runway looks for in the working directory.
const FileName = "runway.yaml"

// Environment overrides, applied after the YAML file.
const (
	EnvWindowMonths = "RUNWAY_WINDOW_MONTHS"
	EnvDamping      = "RUNWAY_DAMPING"
	EnvMonthsAhead  = "RUNWAY_MONTHS_AHEAD"
	EnvCurrency     = "RUNWAY_CURRENCY"
)

// MaxMonthsAhead bounds forecast.months_ahead and the --months flag.
const MaxMonthsAhead = 120

// Config represents the top-level runway.yaml configuration.
type Config struct {
	Forecast ForecastConfig `yaml:"forecast"`
	Planner  PlannerConfig  `yaml:"planner"`
	Output   OutputConfig   `yaml:"output"`
}

// ForecastConfig tunes the forecast engine.
type ForecastConfig struct {
	WindowMonths int     `yaml:"window_months"`
	Damping      float64 `yaml:"damping"`
	MonthsAhead  int     `yaml:"months_ahead"`
}

// PlannerConfig holds goal planner defaults. SavingsGoal is a decimal
// string so it survives YAML without float rounding.
type PlannerConfig struct {
	SavingsGoal      string           `yaml:"savings_goal"`
	ProjectionType   string           `yaml:"projection_type"`
	VolatilityBuffer float64          `yaml:"volatility_buffer"`
	PathMonths       int              `yaml:"path_months"`
	Stability        goals.Thresholds `yaml:"stability"`
}

// OutputConfig controls text rendering.
type OutputConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Default returns a Config with the standard forecasting parameters.
func Default() *Config {
	return &Config{
		Forecast: ForecastConfig{
			WindowMonths: forecast.DefaultWindowMonths,
			Damping:      forecast.DefaultDamping,
			MonthsAhead:  6,
		},
		Planner: PlannerConfig{
			SavingsGoal:      "10000",
			ProjectionType:   string(goals.Average),
			VolatilityBuffer: goals.DefaultVolatilityBuffer,
			PathMonths:       goals.DefaultPathMonths,
			Stability:        goals.DefaultThresholds(),
		},
		Output: OutputConfig{
			CurrencySymbol: "$",
		},
	}
}

// Load reads a runway.yaml file from disk. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads path. A missing file is only an error when the caller named
// it explicitly; otherwise defaults are returned.
func Resolve(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadEnv loads .env style files into the process environment. With no
// arguments it reads ./.env. Missing files are ignored.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from RUNWAY_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvWindowMonths); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWindowMonths, err)
		}
		c.Forecast.WindowMonths = n
	}
	if v := os.Getenv(EnvDamping); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDamping, err)
		}
		c.Forecast.Damping = f
	}
	if v := os.Getenv(EnvMonthsAhead); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMonthsAhead, err)
		}
		c.Forecast.MonthsAhead = n
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Output.CurrencySymbol = v
	}
	return nil
}

// Validate returns every problem with the configuration in one error.
func (c *Config) Validate() error {
	var problems []string

	if c.Forecast.WindowMonths < 1 {
		problems = append(problems, fmt.Sprintf("forecast.window_months %d: must be at least 1", c.Forecast.WindowMonths))
	}
	if c.Forecast.Damping < 0 {
		problems = append(problems, fmt.Sprintf("forecast.damping %g: must not be negative", c.Forecast.Damping))
	}
	if c.Forecast.MonthsAhead < 1 || c.Forecast.MonthsAhead > MaxMonthsAhead {
		problems = append(problems, fmt.Sprintf("forecast.months_ahead %d: must be between 1 and %d", c.Forecast.MonthsAhead, MaxMonthsAhead))
	}

	if _, err := c.Planner.Goal(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := goals.ParseProjectionType(c.Planner.ProjectionType); err != nil {
		problems = append(problems, "planner.projection_type: "+err.Error())
	}
	if c.Planner.VolatilityBuffer < 0 {
		problems = append(problems, fmt.Sprintf("planner.volatility_buffer %g: must not be negative", c.Planner.VolatilityBuffer))
	}
	if c.Planner.PathMonths < 1 {
		problems = append(problems, fmt.Sprintf("planner.path_months %d: must be at least 1", c.Planner.PathMonths))
	}
	th := c.Planner.Stability
	if th.StableBelow <= 0 || th.ModerateBelow <= th.StableBelow {
		problems = append(problems, fmt.Sprintf("planner.stability: need 0 < stable_below (%g) < moderate_below (%g)", th.StableBelow, th.ModerateBelow))
	}

	if c.Output.CurrencySymbol == "" {
		problems = append(problems, "output.currency_symbol: must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Goal parses the configured savings goal.
func (p PlannerConfig) Goal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(p.SavingsGoal))
	if err != nil {
		return decimal.Zero, fmt.Errorf("planner.savings_goal %q: %w", p.SavingsGoal, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("planner.savings_goal %q: must be positive", p.SavingsGoal)
	}
	return d, nil
}

// ForecastOptions converts the forecast section to engine options.
func (c *Config) ForecastOptions() forecast.Options {
	return forecast.Options{
		WindowMonths: c.Forecast.WindowMonths,
		Damping:      c.Forecast.Damping,
	}
}
