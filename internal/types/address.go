package types

import "github.com/google/uuid"

// AddressCreate is the POST /api/addresses payload.
// All five fields are required strings.
type AddressCreate struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// AddressUpdate is the PATCH payload; supply only fields to change.
type AddressUpdate struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// AddressRead is the stored record returned to clients.
// The validate tags are re-checked after every merge so a partial update
// cannot blank out a required field.
type AddressRead struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street" validate:"required"`
	City       string    `json:"city" validate:"required"`
	State      string    `json:"state" validate:"required"`
	PostalCode string    `json:"postal_code" validate:"required"`
	Country    string    `json:"country" validate:"required"`
}

// Apply merges the update onto cur: every set (non-nil) field overwrites,
// everything else — including the id — carries over unchanged.
func (u AddressUpdate) Apply(cur AddressRead) AddressRead {
	merged := cur
	if u.Street != nil {
		merged.Street = *u.Street
	}
	if u.City != nil {
		merged.City = *u.City
	}
	if u.State != nil {
		merged.State = *u.State
	}
	if u.PostalCode != nil {
		merged.PostalCode = *u.PostalCode
	}
	if u.Country != nil {
		merged.Country = *u.Country
	}
	return merged
}

// AddressFilter holds the optional query parameters of GET /api/addresses.
// A nil field imposes no constraint; all comparisons are case-sensitive
// exact matches.
type AddressFilter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// Matches reports whether the record satisfies every provided filter.
func (f AddressFilter) Matches(a AddressRead) bool {
	if f.Street != nil && a.Street != *f.Street {
		return false
	}
	if f.City != nil && a.City != *f.City {
		return false
	}
	if f.State != nil && a.State != *f.State {
		return false
	}
	if f.PostalCode != nil && a.PostalCode != *f.PostalCode {
		return false
	}
	if f.Country != nil && a.Country != *f.Country {
		return false
	}
	return true
}
