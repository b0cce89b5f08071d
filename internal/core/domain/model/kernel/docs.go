// Package kernel contains shared value objects used across the domain model.
//
// It provides UUID, a validated identifier type wrapping google/uuid, and
// Date, a calendar-day value object with no time component. Both follow the
// same conventions as the rest of the domain: immutable value semantics,
// constructor functions that validate their inputs, and a Validate method
// that rejects zero values created outside a constructor.
package kernel
