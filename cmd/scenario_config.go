package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/rich-aroma/opening-sim/sim"
)

// Scenario is the YAML override surface for simulation parameters. Every
// field is optional: unset fields leave the default configuration alone.
type Scenario struct {
	Days        *int `yaml:"days,omitempty"`
	OpeningHour *int `yaml:"opening_hour,omitempty"`
	ClosingHour *int `yaml:"closing_hour,omitempty"`

	Staff *StaffScenario `yaml:"staff,omitempty"`

	Loyalty *LoyaltyScenario `yaml:"loyalty,omitempty"`
	Creator *CreatorScenario `yaml:"creator,omitempty"`

	Traffic              []TrafficBandScenario `yaml:"traffic,omitempty"`
	DefaultTrafficChance *float64              `yaml:"default_traffic_chance,omitempty"`
	MaxArrivals          *int                  `yaml:"max_arrivals,omitempty"`

	SatisfactionThreshold *float64 `yaml:"satisfaction_threshold,omitempty"`
	SatisfactionDecay     *float64 `yaml:"satisfaction_decay,omitempty"`
}

// StaffScenario overrides per-role processing rates.
type StaffScenario struct {
	CashierSpeed *float64 `yaml:"cashier_speed,omitempty"`
	BaristaSpeed *float64 `yaml:"barista_speed,omitempty"`
	CookSpeed    *float64 `yaml:"cook_speed,omitempty"`
}

// LoyaltyScenario overrides membership parameters.
type LoyaltyScenario struct {
	MembershipChance *float64 `yaml:"membership_chance,omitempty"`
	MembershipPrice  *int64   `yaml:"membership_price,omitempty"`
	MembershipBonus  *int64   `yaml:"membership_bonus,omitempty"`
}

// CreatorScenario overrides content-creator parameters.
type CreatorScenario struct {
	Chance          *float64 `yaml:"chance,omitempty"`
	ChallengeChance *float64 `yaml:"challenge_chance,omitempty"`
	ChallengeReward *int64   `yaml:"challenge_reward,omitempty"`
	AvgViewsPerPost *int64   `yaml:"avg_views_per_post,omitempty"`
}

// TrafficBandScenario is one step of the arrival schedule.
type TrafficBandScenario struct {
	FromHour int     `yaml:"from_hour"`
	ToHour   int     `yaml:"to_hour"`
	Chance   float64 `yaml:"chance"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &s, nil
}

// ApplyTo overlays the scenario's set fields onto cfg. The result still
// goes through Config.Validate before the simulation starts.
func (s *Scenario) ApplyTo(cfg *sim.Config) {
	if s.Days != nil {
		cfg.Days = *s.Days
	}
	if s.OpeningHour != nil {
		cfg.OpeningHour = *s.OpeningHour
	}
	if s.ClosingHour != nil {
		cfg.ClosingHour = *s.ClosingHour
	}
	if s.Staff != nil {
		if s.Staff.CashierSpeed != nil {
			cfg.Staff.Cashier = *s.Staff.CashierSpeed
		}
		if s.Staff.BaristaSpeed != nil {
			cfg.Staff.Barista = *s.Staff.BaristaSpeed
		}
		if s.Staff.CookSpeed != nil {
			cfg.Staff.Cook = *s.Staff.CookSpeed
		}
	}
	if s.Loyalty != nil {
		if s.Loyalty.MembershipChance != nil {
			cfg.Loyalty.MembershipChance = *s.Loyalty.MembershipChance
		}
		if s.Loyalty.MembershipPrice != nil {
			cfg.Loyalty.MembershipPrice = *s.Loyalty.MembershipPrice
		}
		if s.Loyalty.MembershipBonus != nil {
			cfg.Loyalty.MembershipBonus = *s.Loyalty.MembershipBonus
		}
	}
	if s.Creator != nil {
		if s.Creator.Chance != nil {
			cfg.Creator.Chance = *s.Creator.Chance
		}
		if s.Creator.ChallengeChance != nil {
			cfg.Creator.ChallengeChance = *s.Creator.ChallengeChance
		}
		if s.Creator.ChallengeReward != nil {
			cfg.Creator.ChallengeReward = *s.Creator.ChallengeReward
		}
		if s.Creator.AvgViewsPerPost != nil {
			cfg.Creator.AvgViewsPerPost = *s.Creator.AvgViewsPerPost
		}
	}
	if len(s.Traffic) > 0 {
		bands := make([]sim.TrafficBand, 0, len(s.Traffic))
		for _, b := range s.Traffic {
			bands = append(bands, sim.TrafficBand{FromHour: b.FromHour, ToHour: b.ToHour, Chance: b.Chance})
		}
		cfg.Arrivals.Bands = bands
	}
	if s.DefaultTrafficChance != nil {
		cfg.Arrivals.DefaultChance = *s.DefaultTrafficChance
	}
	if s.MaxArrivals != nil {
		cfg.Arrivals.MaxArrivals = *s.MaxArrivals
	}
	if s.SatisfactionThreshold != nil {
		cfg.SatisfactionThreshold = *s.SatisfactionThreshold
	}
	if s.SatisfactionDecay != nil {
		cfg.SatisfactionDecay = *s.SatisfactionDecay
	}
}
