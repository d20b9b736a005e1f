package sim

// Order is one admitted visit's purchase. TimePlaced is the minute offset
// from opening; TimeCompleted is in fractional minutes and is valid only
// once Completed is set by the scheduler.
type Order struct {
	ID       string
	Customer *Customer
	Items    []MenuItem

	TimePlaced    int
	HourPlaced    int
	TimeCompleted float64
	Completed     bool

	Total int64

	// Derived stage counts. Invariant:
	// DrinkCount + FoodCount + OtherCount == len(Items).
	DrinkCount int
	FoodCount  int
	OtherCount int
}

// NewOrder builds an order from a non-empty item selection, computing the
// total and the per-station counts.
func NewOrder(id string, c *Customer, items []MenuItem, minute, hour int) *Order {
	o := &Order{
		ID:         id,
		Customer:   c,
		Items:      items,
		TimePlaced: minute,
		HourPlaced: hour,
	}
	for _, item := range items {
		o.Total += item.Price
		switch ClassOf(item.CategoryID) {
		case ClassDrink:
			o.DrinkCount++
		case ClassFood:
			o.FoodCount++
		default:
			o.OtherCount++
		}
	}
	return o
}

// Settle partitions the order total into loyalty-funded and cash-funded
// portions, loyalty first. Always cash + loyalty == Total exactly; money is
// integer units so there is no rounding drift. Pure-cash payments (customer
// had no credit) accumulate into the customer's cash-spend tracker.
func (o *Order) Settle() (cash, loyalty int64) {
	c := o.Customer
	switch {
	case c.LoyaltyBalance >= o.Total:
		loyalty = o.Total
		c.LoyaltyBalance -= o.Total
	case c.LoyaltyBalance > 0:
		loyalty = c.LoyaltyBalance
		cash = o.Total - loyalty
		c.LoyaltyBalance = 0
	default:
		cash = o.Total
		c.CashSpent += o.Total
	}
	return cash, loyalty
}
