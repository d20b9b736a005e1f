package cmd

import (
	"fmt"
	"io"
	"sort"

	sim "github.com/rich-aroma/opening-sim/sim"
)

// PrintReport writes the end-of-run ledger: revenue totals, creator
// impact, the loyalty liability ledger, satisfaction trend, and top
// sellers. Display only; every number comes straight from RunMetrics.
func PrintReport(w io.Writer, m *sim.RunMetrics, topN int) {
	fmt.Fprintf(w, "RICH AROMA OS - %d DAY SIMULATION\n", m.Days)
	fmt.Fprintln(w, "====================================================")
	fmt.Fprintf(w, "Total Revenue (Cash)    : L%d\n", m.CashRevenue)
	fmt.Fprintf(w, "Total Revenue (Loyalty) : L%d\n", m.LoyaltyRevenue)
	fmt.Fprintf(w, "Total Orders            : %d\n", m.Orders)
	fmt.Fprintf(w, "Memberships Sold        : %d\n", m.Memberships)

	fmt.Fprintln(w, "\n--- CONTENT CREATOR IMPACT ---")
	fmt.Fprintf(w, "Creator Visits          : %d\n", m.Creators.Visits)
	fmt.Fprintf(w, "Challenges Completed    : %d (Rewards: L%d issued)\n", m.Creators.Submissions, m.Creators.LoyaltyAwarded)
	fmt.Fprintf(w, "Est. Views Generated    : %d\n", m.Creators.EstimatedViews)

	fmt.Fprintln(w, "\n--- LOYALTY (RICO CASH) ---")
	fmt.Fprintf(w, "Total Issued            : L%d\n", m.LoyaltyIssued)
	fmt.Fprintf(w, "Total Redeemed          : L%d\n", m.LoyaltyRedeemed)
	fmt.Fprintf(w, "Outstanding Liability   : L%d\n", m.OutstandingLiability())

	fmt.Fprintln(w, "\n--- CUSTOMER EXPERIENCE (CSAT) ---")
	fmt.Fprintf(w, "Average Satisfaction    : %.1f/100\n", m.AverageCSAT())
	fmt.Fprintf(w, "Trend (Last 7 Days)     : %v\n", m.CSATTrend(7))

	fmt.Fprintln(w, "\n--- TOP SELLING ITEMS ---")
	for _, item := range m.TopItems(topN) {
		fmt.Fprintf(w, "%s: %d\n", item.Name, item.Count)
	}

	fmt.Fprintln(w, "\n--- REVENUE BY HOUR ---")
	hours := make([]int, 0, len(m.HourlySales))
	for h := range m.HourlySales {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	for _, h := range hours {
		fmt.Fprintf(w, "%02d:00  L%d\n", h, m.HourlySales[h])
	}
}
