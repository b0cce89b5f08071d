package account

import (
	"fmt"

	"milkround/internal/pkg/errs"
)

// Role determines what an account is allowed to do. Customers place orders
// and submit reviews; administrators additionally manage order statuses and
// see every customer's orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the default role assigned at registration.
	RoleCustomer

	// RoleAdmin grants access to the administrative order views and status
	// transitions. Assigned out of band, never through the public API.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the lowercase wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role, or "unknown" for invalid
// values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
