package services

import (
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
)

// LoyaltyCalculator is a domain service computing a customer's loyalty
// statistics from their delivered orders.
//
// Two figures are produced:
//   - Bottle count: the total number of bottles across delivered orders.
//   - Current streak: how many consecutive calendar days, counting back from
//     today, the customer received a delivery. The first missing day ends
//     it, so a day without a delivery yet means no streak.
//
// Only delivered orders count. Pending, confirmed, and cancelled orders
// contribute to neither figure.
type LoyaltyCalculator struct{}

// NewLoyaltyCalculator creates a LoyaltyCalculator.
func NewLoyaltyCalculator() LoyaltyCalculator {
	return LoyaltyCalculator{}
}

// DeliveredBottleCount sums the quantities of all delivered orders.
func (c LoyaltyCalculator) DeliveredBottleCount(orders []*order.Order) int {
	total := 0
	for _, o := range orders {
		if o.Status() == order.Delivered {
			total += o.Quantity()
		}
	}
	return total
}

// CurrentStreak counts consecutive delivery days walking back from today.
//
// The walk starts at the calendar day of today and steps back one day at a
// time while a delivered order exists for that day. Any gap ends the walk,
// including today itself when no delivery has happened yet. Multiple
// deliveries on the same day collapse into one streak day.
func (c LoyaltyCalculator) CurrentStreak(orders []*order.Order, today kernel.Date) int {
	deliveredDays := make(map[string]struct{})
	for _, o := range orders {
		if o.Status() == order.Delivered {
			deliveredDays[o.DeliveryDate().String()] = struct{}{}
		}
	}

	day := today
	streak := 0
	for {
		if _, ok := deliveredDays[day.String()]; !ok {
			break
		}
		streak++
		day = day.AddDays(-1)
	}

	return streak
}
