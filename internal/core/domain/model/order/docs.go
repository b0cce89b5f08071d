// Package order contains the Order aggregate and its supporting value
// objects: the Status lifecycle state machine and the Tariff pricing policy.
//
// An Order is placed by a customer for a number of milk bottles on a
// specific delivery date. Its total price is frozen at placement time from
// the tariff then in effect, and its status moves through
// pending -> confirmed -> delivered, with cancellation possible from either
// non-terminal status. All construction goes through NewOrder (placement)
// or RestoreOrder (rehydration from persistence) so invariants cannot be
// bypassed.
package order
