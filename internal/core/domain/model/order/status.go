package order

import (
	"fmt"

	"milkround/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates transitions and provides string
// representations for the API and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Orders in this status await confirmation by an administrator.
	Pending

	// Confirmed indicates an administrator has accepted the order
	// for delivery on its delivery date.
	Confirmed

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn by the customer or an
	// administrator before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the lowercase wire representation of a status.
// Returns an error for anything that is not one of the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the four valid statuses.
// Unknown (0) and any other values are invalid. Used to vet Status values
// arriving from external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Every other starting status fails, including Confirmed itself: an order
// is confirmed exactly once.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Confirmed -> Delivered
//
// Pending orders cannot skip straight to Delivered, and terminal statuses
// never transition.
func (s Status) Deliver() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Terminal statuses cannot be cancelled: a delivered order stays delivered
// and cancelling twice is rejected.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// TransitionTo dispatches to the transition method matching target.
// Requesting Pending (or any invalid target) fails: Pending is only ever an
// initial status.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Confirmed:
		return s.Confirm()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid transition target", target.String()),
		)
	}
}
