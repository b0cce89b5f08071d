// Package services provides domain services that compute results across
// multiple domain entities where the logic does not belong to a single
// aggregate.
//
// The package includes:
//   - LoyaltyCalculator: derives a customer's delivered bottle count and
//     consecutive-day delivery streak from their order history
package services
