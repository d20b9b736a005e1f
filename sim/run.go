package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RunMetrics accumulates daily bundles across a multi-day run.
type RunMetrics struct {
	Days int

	CashRevenue    int64
	LoyaltyRevenue int64
	Memberships    int
	Orders         int

	// Loyalty ledger: credit granted (memberships + creator rewards)
	// versus credit spent. Outstanding liability is the difference.
	LoyaltyIssued   int64
	LoyaltyRedeemed int64

	ItemSales        map[string]int
	HourlySales      map[int]int64
	HourlyItemCounts map[int]map[string]int

	Bottlenecks BottleneckCounts
	Creators    CreatorStats

	DailyCSAT []int
}

// OutstandingLiability is the loyalty credit issued but not yet redeemed.
func (r *RunMetrics) OutstandingLiability() int64 {
	return r.LoyaltyIssued - r.LoyaltyRedeemed
}

// AverageCSAT is the mean of the daily satisfaction scores.
func (r *RunMetrics) AverageCSAT() float64 {
	if len(r.DailyCSAT) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.DailyCSAT {
		sum += s
	}
	return float64(sum) / float64(len(r.DailyCSAT))
}

// CSATTrend returns the last n daily scores (all of them if fewer).
func (r *RunMetrics) CSATTrend(n int) []int {
	if n >= len(r.DailyCSAT) {
		return r.DailyCSAT
	}
	return r.DailyCSAT[len(r.DailyCSAT)-n:]
}

// ItemCount is one row of the top-sellers ranking.
type ItemCount struct {
	Name  string
	Count int
}

// TopItems ranks items by total count, descending, ties broken by name so
// the ranking is deterministic.
func (r *RunMetrics) TopItems(n int) []ItemCount {
	ranked := make([]ItemCount, 0, len(r.ItemSales))
	for name, count := range r.ItemSales {
		ranked = append(ranked, ItemCount{Name: name, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// merge folds one day's bundle into the running totals.
func (r *RunMetrics) merge(d DailyMetrics, loyalty LoyaltyConfig) {
	r.CashRevenue += d.CashRevenue
	r.LoyaltyRevenue += d.LoyaltyRevenue
	r.Memberships += d.Memberships
	r.Orders += d.Orders

	r.LoyaltyIssued += int64(d.Memberships)*loyalty.MembershipBonus + d.Creators.LoyaltyAwarded
	r.LoyaltyRedeemed += d.LoyaltyRevenue

	for name, count := range d.ItemSales {
		r.ItemSales[name] += count
	}
	for hour, rev := range d.HourlySales {
		r.HourlySales[hour] += rev
	}
	for hour, items := range d.HourlyItemCounts {
		if r.HourlyItemCounts[hour] == nil {
			r.HourlyItemCounts[hour] = make(map[string]int)
		}
		for name, count := range items {
			r.HourlyItemCounts[hour][name] += count
		}
	}

	r.Bottlenecks.Cashier += d.Bottlenecks.Cashier
	r.Bottlenecks.Barista += d.Bottlenecks.Barista
	r.Bottlenecks.Cook += d.Bottlenecks.Cook

	r.Creators.Visits += d.Creators.Visits
	r.Creators.Submissions += d.Creators.Submissions
	r.Creators.LoyaltyAwarded += d.Creators.LoyaltyAwarded
	r.Creators.EstimatedViews += d.Creators.EstimatedViews

	r.DailyCSAT = append(r.DailyCSAT, d.CSAT)
}

// Runner repeats the day simulation for the configured number of days.
// Staff cursors reset each day; customers and orders do not persist.
type Runner struct {
	cfg     Config
	catalog *Catalog
	rng     *PartitionedRNG
}

// NewRunner validates the configuration and builds a runner. Each day
// draws from its own deterministically derived RNG substream.
func NewRunner(cfg Config, catalog *Catalog, key SimulationKey) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return &Runner{
		cfg:     cfg,
		catalog: catalog,
		rng:     NewPartitionedRNG(key),
	}, nil
}

// Run executes the full multi-day simulation and returns the aggregate.
func (r *Runner) Run() *RunMetrics {
	totals := &RunMetrics{
		Days:             r.cfg.Days,
		ItemSales:        make(map[string]int),
		HourlySales:      make(map[int]int64),
		HourlyItemCounts: make(map[int]map[string]int),
	}

	day := NewDaySimulator(r.cfg, r.catalog)
	for d := 1; d <= r.cfg.Days; d++ {
		daily := day.Run(d, r.rng.ForSubsystem(SubsystemDay(d)))
		totals.merge(daily, r.cfg.Loyalty)
		logrus.Infof("[day %02d] orders=%d revenue=%d csat=%d feedback=%q",
			d, daily.Orders, daily.CashRevenue+daily.LoyaltyRevenue, daily.CSAT, daily.Feedback)
	}

	return totals
}
