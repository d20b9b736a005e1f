package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DaySimulator drives one business day at one-minute granularity:
// arrivals, order generation, settlement, and staff scheduling, folding
// everything into a DailyMetrics bundle.
type DaySimulator struct {
	cfg     Config
	catalog *Catalog
	sched   *Scheduler
}

// NewDaySimulator creates a day simulator over a validated config and a
// read-only catalog. The scheduler is reused across days; Run resets it.
func NewDaySimulator(cfg Config, catalog *Catalog) *DaySimulator {
	return &DaySimulator{
		cfg:     cfg,
		catalog: catalog,
		sched:   NewScheduler(cfg.Staff, cfg.Bottlenecks),
	}
}

// Run simulates business day dayNum using the given RNG stream.
//
// Per minute: an arrival draw against the traffic schedule admits 1..N
// arrivals. Per arrival: persona, membership, order generation (empty
// selections are discarded and do not count as visits), creator
// engagement, settlement, staff scheduling, accumulators. Within a minute
// arrivals are processed in generation order; across minutes time only
// moves forward.
func (d *DaySimulator) Run(dayNum int, rng *rand.Rand) DailyMetrics {
	d.sched.Reset()

	m := DailyMetrics{
		Day:              dayNum,
		ItemSales:        make(map[string]int),
		HourlySales:      make(map[int]int64),
		HourlyItemCounts: make(map[int]map[string]int),
	}

	var waits []float64
	customerID := 1

	minutes := (d.cfg.ClosingHour - d.cfg.OpeningHour) * 60
	for minute := 0; minute < minutes; minute++ {
		hour := d.cfg.OpeningHour + minute/60

		arrivals := 0
		if rng.Float64() < d.cfg.Arrivals.ChanceAt(hour) {
			arrivals = 1 + rng.Intn(d.cfg.Arrivals.MaxArrivals)
		}

		for i := 0; i < arrivals; i++ {
			cust := NewCustomer(fmt.Sprintf("D%d-C%d", dayNum, customerID), d.cfg.Creator, rng)
			customerID++

			if cust.DecideMembership(d.cfg.Loyalty, rng) {
				m.Memberships++
				m.CashRevenue += d.cfg.Loyalty.MembershipPrice
			}

			items := cust.GenerateOrder(d.catalog, d.cfg.Mix, hour, rng)
			if len(items) == 0 {
				continue // no purchase, not a visit
			}

			if cust.Creator {
				m.Creators.Visits++
				if cust.EngageChallenge(d.cfg.Creator, rng) {
					cust.LoyaltyBalance += d.cfg.Creator.ChallengeReward
					m.Creators.Submissions++
					m.Creators.LoyaltyAwarded += d.cfg.Creator.ChallengeReward
					m.Creators.EstimatedViews += d.cfg.Creator.AvgViewsPerPost
				}
			}

			order := NewOrder(fmt.Sprintf("D%d-O%d", dayNum, m.Orders+1), cust, items, minute, hour)
			m.Orders++

			cash, loyalty := order.Settle()
			m.CashRevenue += cash
			m.LoyaltyRevenue += loyalty

			m.HourlySales[hour] += order.Total
			if m.HourlyItemCounts[hour] == nil {
				m.HourlyItemCounts[hour] = make(map[string]int)
			}
			for _, item := range items {
				m.ItemSales[item.Name]++
				m.HourlyItemCounts[hour][item.Name]++
			}

			res := d.sched.Process(order)
			if res.CashierBottleneck {
				m.Bottlenecks.Cashier++
			}
			if res.BaristaBottleneck {
				m.Bottlenecks.Barista++
			}
			if res.CookBottleneck {
				m.Bottlenecks.Cook++
			}
			waits = append(waits, order.TimeCompleted-float64(order.TimePlaced))
		}
	}

	m.AvgWait = meanWait(waits)
	m.CSAT = SatisfactionScore(m.AvgWait, d.cfg.SatisfactionThreshold, d.cfg.SatisfactionDecay)
	m.Feedback = FeedbackForWait(m.AvgWait)
	m.POS = POSHealthFor(m.Bottlenecks.Cashier, m.Orders)

	logrus.Debugf("[day %02d] orders=%d cash=%d loyalty=%d avg_wait=%.2f csat=%d",
		dayNum, m.Orders, m.CashRevenue, m.LoyaltyRevenue, m.AvgWait, m.CSAT)

	return m
}

// meanWait averages the day's wait samples; a day with no recorded orders
// has zero average wait rather than a division error.
func meanWait(waits []float64) float64 {
	if len(waits) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range waits {
		sum += w
	}
	return sum / float64(len(waits))
}
