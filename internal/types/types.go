// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
//
// Every resource comes in three shapes:
//
//   - Create — the client payload accepted by POST. Required fields are
//     plain values; optional fields are pointers so "absent" is nil.
//   - Update — the PATCH payload. Every field is a pointer: nil means
//     "not set, keep the stored value". A JSON null is indistinguishable
//     from an absent key and is treated as absent, so an update can never
//     clear a field back to empty.
//   - Read — the server-side record returned to clients, carrying the
//     generated id (and, where the resource has them, timestamps).
//
// Update shapes expose an Apply method (the merge step: set fields
// overwrite, everything else carries over) and each resource has a
// Filter struct with a Matches method used by the store's list scan.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (snake_case names match the API's wire format).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. Custom rules (course_code, department_code, uni, credits)
//     are registered in internal/validation.
package types

import "strings"

// Address is an embedded sub-record: a postal address stored inline
// inside a Person or Organization. Embedded addresses carry no id of
// their own — they are replaced wholesale when a parent is updated.
type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// anyAddress reports whether at least one embedded address satisfies the
// predicate. Nested filters (city, country) match on any element.
func anyAddress(addrs []Address, match func(Address) bool) bool {
	for _, a := range addrs {
		if match(a) {
			return true
		}
	}
	return false
}

// containsFold reports whether substr occurs in s, ignoring case.
// Used by the partial-match filters (organization name, course title).
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
