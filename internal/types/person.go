package types

import "github.com/google/uuid"

// PersonCreate is the POST /api/persons payload.
// uni is the institutional identifier (e.g. "abc1234").
type PersonCreate struct {
	UNI       string    `json:"uni" validate:"required,uni"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     *string   `json:"phone" validate:"omitempty,max=50"`
	BirthDate *string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses []Address `json:"addresses" validate:"dive"`
}

// PersonUpdate is the PATCH payload; supply only fields to change.
// A supplied addresses list replaces the stored list wholesale.
type PersonUpdate struct {
	UNI       *string    `json:"uni" validate:"omitempty,uni"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone" validate:"omitempty,max=50"`
	BirthDate *string    `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses *[]Address `json:"addresses" validate:"omitempty,dive"`
}

// PersonRead is the stored record returned to clients.
type PersonRead struct {
	ID        uuid.UUID `json:"id"`
	UNI       string    `json:"uni" validate:"required,uni"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     *string   `json:"phone" validate:"omitempty,max=50"`
	BirthDate *string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses []Address `json:"addresses" validate:"dive"`
}

// Apply merges the update onto cur (set fields overwrite, the rest
// carries over).
func (u PersonUpdate) Apply(cur PersonRead) PersonRead {
	merged := cur
	if u.UNI != nil {
		merged.UNI = *u.UNI
	}
	if u.FirstName != nil {
		merged.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		merged.LastName = *u.LastName
	}
	if u.Email != nil {
		merged.Email = *u.Email
	}
	if u.Phone != nil {
		merged.Phone = u.Phone
	}
	if u.BirthDate != nil {
		merged.BirthDate = u.BirthDate
	}
	if u.Addresses != nil {
		merged.Addresses = *u.Addresses
	}
	return merged
}

// PersonFilter holds the optional query parameters of GET /api/persons.
// City and Country match against the embedded address list: a person
// matches if ANY of their addresses matches.
type PersonFilter struct {
	UNI       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}

// Matches reports whether the record satisfies every provided filter.
func (f PersonFilter) Matches(p PersonRead) bool {
	if f.UNI != nil && p.UNI != *f.UNI {
		return false
	}
	if f.FirstName != nil && p.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && p.LastName != *f.LastName {
		return false
	}
	if f.Email != nil && p.Email != *f.Email {
		return false
	}
	if f.Phone != nil && (p.Phone == nil || *p.Phone != *f.Phone) {
		return false
	}
	if f.BirthDate != nil && (p.BirthDate == nil || *p.BirthDate != *f.BirthDate) {
		return false
	}
	if f.City != nil && !anyAddress(p.Addresses, func(a Address) bool { return a.City == *f.City }) {
		return false
	}
	if f.Country != nil && !anyAddress(p.Addresses, func(a Address) bool { return a.Country == *f.Country }) {
		return false
	}
	return true
}
