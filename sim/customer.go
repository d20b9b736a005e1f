package sim

import "math/rand"

// Customer is one arriving guest. Instances live only within a single
// simulated day; each day starts a fresh ID counter and nothing about an
// individual customer persists across days.
type Customer struct {
	ID             string
	VIP            bool  // enrolled member
	LoyaltyBalance int64 // store-scoped credit, spendable before cash
	CashSpent      int64 // cumulative pure-cash spend (future segmentation)

	Creator          bool // content-creator persona
	ContentSubmitted bool // challenge participation, at most once per lifetime
}

// NewCustomer creates a customer and draws its creator persona.
func NewCustomer(id string, creator CreatorConfig, rng *rand.Rand) *Customer {
	return &Customer{
		ID:      id,
		Creator: rng.Float64() < creator.Chance,
	}
}

// DecideMembership runs the per-visit enrollment draw. On success the
// customer becomes a member and receives the loyalty bonus; the caller
// records a membership sale. Members never re-enroll.
func (c *Customer) DecideMembership(loyalty LoyaltyConfig, rng *rand.Rand) bool {
	if c.VIP || rng.Float64() >= loyalty.MembershipChance {
		return false
	}
	c.VIP = true
	c.LoyaltyBalance += loyalty.MembershipBonus
	return true
}

// EngageChallenge runs the per-visit content-submission draw for creator
// personas. A customer submits at most once; non-creators never submit.
func (c *Customer) EngageChallenge(creator CreatorConfig, rng *rand.Rand) bool {
	if !c.Creator || c.ContentSubmitted {
		return false
	}
	if rng.Float64() >= creator.ChallengeChance {
		return false
	}
	c.ContentSubmitted = true
	return true
}

// GenerateOrder builds this visit's item selection for the given hour.
//
// One beverage is always attempted (uniform category, then uniform item).
// Inside the breakfast window a light-food item is added with the breakfast
// probability; inside the lunch window a heavier item is added with the
// lunch probability. Outside both windows no food is added.
//
// Category lookups that come up empty silently skip that step. The result
// may therefore be empty; the caller discards such visits.
func (c *Customer) GenerateOrder(catalog *Catalog, mix OrderMix, hour int, rng *rand.Rand) []MenuItem {
	var items []MenuItem

	if item, ok := PickItem(rng, catalog.CategoriesIn(mix.DrinkCategories...)); ok {
		items = append(items, item)
	}

	switch {
	case hour >= mix.BreakfastStart && hour <= mix.BreakfastEnd:
		if rng.Float64() < mix.BreakfastChance {
			cats := catalog.CategoriesIn(mix.BreakfastPrimary...)
			if len(cats) == 0 {
				cats = catalog.CategoriesIn(mix.BreakfastFallback...)
			}
			if item, ok := PickItem(rng, cats); ok {
				items = append(items, item)
			}
		}
	case hour >= mix.LunchStart && hour <= mix.LunchEnd:
		if rng.Float64() < mix.LunchChance {
			if item, ok := PickItem(rng, catalog.CategoriesIn(mix.LunchCategories...)); ok {
				items = append(items, item)
			}
		}
	}

	return items
}
