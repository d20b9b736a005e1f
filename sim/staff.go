package sim

import "math"

// Role identifies a staffed station.
type Role string

const (
	RoleCashier Role = "cashier"
	RoleBarista Role = "barista"
	RoleCook    Role = "cook"
)

// Staff is a single-server resource: it processes one order's stage at a
// time in arrival order. BusyUntil is the next-free cursor in fractional
// minutes and is non-decreasing across a day.
type Staff struct {
	Role      Role
	Speed     float64 // items per minute, validated positive
	BusyUntil float64
}

// stage runs one unit of work arriving at earliest, returning the stage's
// start and finish. The cursor advances to the finish time.
func (s *Staff) stage(earliest float64, items int) (start, finish float64) {
	start = math.Max(earliest, s.BusyUntil)
	finish = start + float64(items)/s.Speed
	s.BusyUntil = finish
	return start, finish
}

// StageResult reports one order's trip through the stations.
type StageResult struct {
	Completion float64

	CashierBottleneck bool
	BaristaBottleneck bool
	CookBottleneck    bool
}

// Scheduler models the three specialized single-server stations. The
// cashier fronts every order; drink and food preparation run as parallel,
// independent queues downstream of the cashier. Cursor arithmetic suffices
// because each station serves strictly one stage at a time in arrival
// order: no reordering, no preemption, no abandonment.
type Scheduler struct {
	Cashier *Staff
	Barista *Staff
	Cook    *Staff

	Thresholds BottleneckThresholds
}

// NewScheduler builds a scheduler from validated staff speeds.
func NewScheduler(speeds StaffSpeeds, thresholds BottleneckThresholds) *Scheduler {
	return &Scheduler{
		Cashier:    &Staff{Role: RoleCashier, Speed: speeds.Cashier},
		Barista:    &Staff{Role: RoleBarista, Speed: speeds.Barista},
		Cook:       &Staff{Role: RoleCook, Speed: speeds.Cook},
		Thresholds: thresholds,
	}
}

// Reset zeroes all cursors. Called at the start of each business day.
func (s *Scheduler) Reset() {
	s.Cashier.BusyUntil = 0
	s.Barista.BusyUntil = 0
	s.Cook.BusyUntil = 0
}

// Process runs an order through its stages in sequence and stamps the
// order's completion time.
//
// The cashier stage always runs and is exactly one work item regardless of
// order size. Drink and food stages run only when the order carries items
// of that class; both key off the cashier completion, not each other, so a
// slow barista delays only drink-bearing orders. Completion is the max of
// whichever stages ran: a grab-and-go order (no drink, no food) completes
// right when payment is taken.
//
// A stage whose queueing delay beyond its earliest possible start exceeds
// the role's threshold flags a bottleneck event.
func (s *Scheduler) Process(o *Order) StageResult {
	arrival := float64(o.TimePlaced)

	start, cashierDone := s.Cashier.stage(arrival, 1)
	res := StageResult{
		Completion:        cashierDone,
		CashierBottleneck: start-arrival > s.Thresholds.Cashier,
	}

	if o.DrinkCount > 0 {
		bStart, bDone := s.Barista.stage(cashierDone, o.DrinkCount)
		res.Completion = math.Max(res.Completion, bDone)
		res.BaristaBottleneck = bStart-cashierDone > s.Thresholds.Barista
	}

	if o.FoodCount > 0 {
		kStart, kDone := s.Cook.stage(cashierDone, o.FoodCount)
		res.Completion = math.Max(res.Completion, kDone)
		res.CookBottleneck = kStart-cashierDone > s.Thresholds.Cook
	}

	o.TimeCompleted = res.Completion
	o.Completed = true
	return res
}
