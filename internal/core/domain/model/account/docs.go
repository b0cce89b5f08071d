// Package account contains the Account aggregate and the Role value object.
//
// Accounts hold the delivery profile (name, phone, hall, room) that the
// admin order views display, plus the hashed login credential. Roles split
// users into customers and administrators; the administrator role is never
// granted through the public API.
package account
