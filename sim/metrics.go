package sim

// WaitFeedback is the qualitative customer-experience category derived
// from the day's average wait. The category is the testable unit; the
// rendered string is presentation only.
type WaitFeedback int

const (
	WaitFast    WaitFeedback = iota // avg wait <= 7 minutes
	WaitSteady                      // > 7
	WaitSlow                        // > 10
	WaitPainful                     // > 15
)

var waitFeedbackText = map[WaitFeedback]string{
	WaitFast:    "Loved it! Fast service.",
	WaitSteady:  "Busy, but moving.",
	WaitSlow:    "A bit slow, but worth it.",
	WaitPainful: "Food was good but wait was insane.",
}

// FeedbackForWait buckets an average wait (minutes) into a category.
func FeedbackForWait(avgWait float64) WaitFeedback {
	switch {
	case avgWait > 15:
		return WaitPainful
	case avgWait > 10:
		return WaitSlow
	case avgWait > 7:
		return WaitSteady
	default:
		return WaitFast
	}
}

func (f WaitFeedback) String() string {
	if s, ok := waitFeedbackText[f]; ok {
		return s
	}
	return "unknown"
}

// POSHealth is the point-of-sale flow assessment for a day.
type POSHealth int

const (
	POSSmooth POSHealth = iota
	POSOverwhelmed
)

var posHealthText = map[POSHealth]string{
	POSSmooth:      "POS Flow: Smooth. No issues.",
	POSOverwhelmed: "POS Flow: Cashier got overwhelmed.",
}

// POSHealthFor assesses register flow from the fraction of orders that hit
// a cashier bottleneck. More than 10% flags the register as overwhelmed.
// A zero-order day is smooth.
func POSHealthFor(cashierBottlenecks, orders int) POSHealth {
	if orders == 0 {
		return POSSmooth
	}
	if float64(cashierBottlenecks)/float64(orders) > 0.10 {
		return POSOverwhelmed
	}
	return POSSmooth
}

func (h POSHealth) String() string {
	if s, ok := posHealthText[h]; ok {
		return s
	}
	return "unknown"
}

// SatisfactionScore derives the synthetic CSAT score in [0, 100] from the
// average wait: 100 minus decay points per minute of wait beyond the
// threshold, truncated to an integer and clamped.
func SatisfactionScore(avgWait, threshold, decay float64) int {
	score := 100.0
	if avgWait > threshold {
		score -= (avgWait - threshold) * decay
	}
	s := int(score)
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// BottleneckCounts tallies bottleneck events per role within a day.
type BottleneckCounts struct {
	Cashier int
	Barista int
	Cook    int
}

// CreatorStats tallies content-creator engagement.
type CreatorStats struct {
	Visits         int   // admitted visits by creator personas
	Submissions    int   // challenge content submissions
	LoyaltyAwarded int64 // loyalty credit issued as submission rewards
	EstimatedViews int64 // Submissions * AvgViewsPerPost
}

// DailyMetrics is the immutable bundle a day simulation returns. The run
// aggregator owns merging it into running totals.
type DailyMetrics struct {
	Day int

	CashRevenue    int64
	LoyaltyRevenue int64
	Memberships    int
	Orders         int

	ItemSales        map[string]int
	HourlySales      map[int]int64
	HourlyItemCounts map[int]map[string]int

	Bottlenecks BottleneckCounts
	Creators    CreatorStats

	AvgWait  float64
	CSAT     int
	Feedback WaitFeedback
	POS      POSHealth
}
