// Package sim provides the core discrete-event simulation of a café's
// opening run: minute-resolution arrivals, order generation, payment
// settlement, and a cursor-based three-station staffing model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - staff.go: the cursor-based scheduler (cashier, barista, cook) and bottleneck detection
//   - day.go: the minute-by-minute arrival loop for a single business day
//   - run.go: the multi-day runner and cross-day aggregation
//
// Supporting pieces:
//   - menu.go: the read-only menu catalog and the drink/food/other partition
//   - customer.go: persona flags, membership enrollment, order generation
//   - order.go: order totals, derived stage counts, loyalty-first settlement
//   - metrics.go: typed daily metrics and qualitative feedback categories
//   - rng.go: partitioned deterministic RNG (one substream per simulated day)
//   - config.go: the immutable configuration surface and its validation
//
// The simulation is a pure function of (Config, Catalog, seed). Two runs with
// the same inputs produce identical RunMetrics.
package sim
