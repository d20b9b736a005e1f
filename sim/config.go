package sim

import (
	"fmt"
	"math"
)

// StaffSpeeds groups per-role processing rates in items per minute.
// All three must be positive: a zero speed is an undefined processing rate
// and is rejected by Config.Validate before any simulation starts.
type StaffSpeeds struct {
	Cashier float64
	Barista float64
	Cook    float64
}

// BottleneckThresholds groups per-role queueing-delay thresholds in minutes.
// An order whose stage waits longer than the threshold beyond its earliest
// possible start records a bottleneck event for that role.
type BottleneckThresholds struct {
	Cashier float64
	Barista float64
	Cook    float64
}

// LoyaltyConfig groups membership and loyalty-credit parameters.
type LoyaltyConfig struct {
	MembershipChance float64 // per-visit enrollment probability for non-members
	MembershipPrice  int64   // cash charged at signup, counted as revenue
	MembershipBonus  int64   // loyalty credit granted at signup
}

// CreatorConfig groups content-creator engagement parameters.
type CreatorConfig struct {
	Chance          float64 // probability a new customer is a creator persona
	ChallengeChance float64 // per-visit submission probability for creators
	ChallengeReward int64   // loyalty credit awarded per submission
	AvgViewsPerPost int64   // estimated reach credited per submission
}

// TrafficBand maps an hour range [FromHour, ToHour) to a per-minute
// arrival probability.
type TrafficBand struct {
	FromHour int
	ToHour   int
	Chance   float64
}

// ArrivalSchedule is the step function over hour-of-day that drives the
// arrival process. Hours not covered by any band use DefaultChance.
type ArrivalSchedule struct {
	Bands         []TrafficBand
	DefaultChance float64
	MaxArrivals   int // arrivals admitted per successful draw: 1..MaxArrivals
}

// ChanceAt returns the per-minute arrival probability for the given hour.
// The first matching band wins.
func (s ArrivalSchedule) ChanceAt(hour int) float64 {
	for _, b := range s.Bands {
		if hour >= b.FromHour && hour < b.ToHour {
			return b.Chance
		}
	}
	return s.DefaultChance
}

// OrderMix parameterizes order generation: which categories feed each
// selection step and the per-window food probabilities. Window bounds are
// hours of day, inclusive on both ends.
type OrderMix struct {
	// DrinkCategories feed the always-attempted beverage step.
	DrinkCategories []string

	BreakfastStart  int
	BreakfastEnd    int
	BreakfastChance float64
	// BreakfastPrimary supplies the light-food item; BreakfastFallback is
	// consulted only when no primary category exists in the menu.
	BreakfastPrimary  []string
	BreakfastFallback []string

	LunchStart      int
	LunchEnd        int
	LunchChance     float64
	LunchCategories []string
}

// Config is the full, immutable configuration surface of a simulation run.
// Construct with DefaultConfig, adjust, then Validate before use.
type Config struct {
	Days        int
	OpeningHour int
	ClosingHour int

	Staff       StaffSpeeds
	Bottlenecks BottleneckThresholds
	Loyalty     LoyaltyConfig
	Creator     CreatorConfig
	Arrivals    ArrivalSchedule
	Mix         OrderMix

	// Satisfaction starts at 100 and loses SatisfactionDecay points per
	// minute of average wait beyond SatisfactionThreshold, clamped to [0,100].
	SatisfactionThreshold float64
	SatisfactionDecay     float64
}

// DefaultConfig returns the opening-run configuration matching the shop's
// observed staffing and traffic pattern.
func DefaultConfig() Config {
	return Config{
		Days:        30,
		OpeningHour: 7,
		ClosingHour: 17,
		Staff:       StaffSpeeds{Cashier: 1.5, Barista: 0.8, Cook: 0.5},
		Bottlenecks: BottleneckThresholds{Cashier: 10, Barista: 15, Cook: 20},
		Loyalty: LoyaltyConfig{
			MembershipChance: 0.05,
			MembershipPrice:  500,
			MembershipBonus:  500,
		},
		Creator: CreatorConfig{
			Chance:          0.05,
			ChallengeChance: 0.30,
			ChallengeReward: 250,
			AvgViewsPerPost: 1500,
		},
		Arrivals: ArrivalSchedule{
			Bands: []TrafficBand{
				{FromHour: 7, ToHour: 9, Chance: 0.4},
				{FromHour: 9, ToHour: 11, Chance: 0.2},
				{FromHour: 11, ToHour: 14, Chance: 0.35},
				{FromHour: 14, ToHour: 16, Chance: 0.15},
			},
			DefaultChance: 0.1,
			MaxArrivals:   3,
		},
		Mix: OrderMix{
			DrinkCategories:   []string{"beverages", "coffee"},
			BreakfastStart:    7,
			BreakfastEnd:      10,
			BreakfastChance:   0.4,
			BreakfastPrimary:  []string{"extras"},
			BreakfastFallback: []string{"grill"},
			LunchStart:        11,
			LunchEnd:          14,
			LunchChance:       0.7,
			LunchCategories:   []string{"bowls", "grill", "weekend"},
		},
		SatisfactionThreshold: 5,
		SatisfactionDecay:     5,
	}
}

// Validate checks that the configuration defines a runnable simulation.
// Returns the first problem found.
func (c *Config) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}
	if c.OpeningHour < 0 || c.ClosingHour > 24 || c.OpeningHour >= c.ClosingHour {
		return fmt.Errorf("opening hours [%d, %d) are not a valid business day", c.OpeningHour, c.ClosingHour)
	}
	if err := validateSpeed("cashier", c.Staff.Cashier); err != nil {
		return err
	}
	if err := validateSpeed("barista", c.Staff.Barista); err != nil {
		return err
	}
	if err := validateSpeed("cook", c.Staff.Cook); err != nil {
		return err
	}
	if c.Bottlenecks.Cashier < 0 || c.Bottlenecks.Barista < 0 || c.Bottlenecks.Cook < 0 {
		return fmt.Errorf("bottleneck thresholds must be non-negative, got %+v", c.Bottlenecks)
	}
	if err := validateChance("loyalty.membership_chance", c.Loyalty.MembershipChance); err != nil {
		return err
	}
	if err := validateChance("creator.chance", c.Creator.Chance); err != nil {
		return err
	}
	if err := validateChance("creator.challenge_chance", c.Creator.ChallengeChance); err != nil {
		return err
	}
	if err := validateChance("mix.breakfast_chance", c.Mix.BreakfastChance); err != nil {
		return err
	}
	if err := validateChance("mix.lunch_chance", c.Mix.LunchChance); err != nil {
		return err
	}
	if c.Arrivals.MaxArrivals < 1 {
		return fmt.Errorf("arrivals.max_arrivals must be at least 1, got %d", c.Arrivals.MaxArrivals)
	}
	if err := validateChance("arrivals.default_chance", c.Arrivals.DefaultChance); err != nil {
		return err
	}
	for i, b := range c.Arrivals.Bands {
		if b.FromHour >= b.ToHour {
			return fmt.Errorf("arrivals.bands[%d]: hour range [%d, %d) is empty", i, b.FromHour, b.ToHour)
		}
		if err := validateChance(fmt.Sprintf("arrivals.bands[%d].chance", i), b.Chance); err != nil {
			return err
		}
	}
	if c.SatisfactionThreshold < 0 {
		return fmt.Errorf("satisfaction threshold must be non-negative, got %f", c.SatisfactionThreshold)
	}
	if c.SatisfactionDecay < 0 {
		return fmt.Errorf("satisfaction decay must be non-negative, got %f", c.SatisfactionDecay)
	}
	return nil
}

// validateSpeed rejects zero, negative, and non-finite processing rates.
// A zero speed would make stage durations undefined (division by zero).
func validateSpeed(role string, speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%s speed must be a finite number, got %f", role, speed)
	}
	if speed <= 0 {
		return fmt.Errorf("%s speed must be positive, got %f", role, speed)
	}
	return nil
}

func validateChance(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s must be a probability in [0, 1], got %f", name, p)
	}
	return nil
}
