package types

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationCreate is the POST /api/organizations payload.
// contact_person_id references a Person but is NOT checked against the
// person store (unenforced reference).
type OrganizationCreate struct {
	Name            string     `json:"name" validate:"required,max=200"`
	OrgType         string     `json:"org_type" validate:"required,oneof=university company nonprofit government startup research"`
	Website         *string    `json:"website" validate:"omitempty,http_url"`
	Description     *string    `json:"description" validate:"omitempty,max=1000"`
	ContactPersonID *uuid.UUID `json:"contact_person_id"`
	EmployeeCount   *int       `json:"employee_count" validate:"omitempty,gte=0"`
	FoundedYear     *int       `json:"founded_year" validate:"omitempty,gte=1000,lte=2030"`
	Addresses       []Address  `json:"addresses" validate:"dive"`
}

// OrganizationUpdate is the PATCH payload; supply only fields to change.
type OrganizationUpdate struct {
	Name            *string    `json:"name" validate:"omitempty,max=200"`
	OrgType         *string    `json:"org_type" validate:"omitempty,oneof=university company nonprofit government startup research"`
	Website         *string    `json:"website" validate:"omitempty,http_url"`
	Description     *string    `json:"description" validate:"omitempty,max=1000"`
	ContactPersonID *uuid.UUID `json:"contact_person_id"`
	EmployeeCount   *int       `json:"employee_count" validate:"omitempty,gte=0"`
	FoundedYear     *int       `json:"founded_year" validate:"omitempty,gte=1000,lte=2030"`
	Addresses       *[]Address `json:"addresses" validate:"omitempty,dive"`
}

// OrganizationRead is the stored record returned to clients.
// created_at is set once at creation and never changes; updated_at
// advances on every successful PATCH. Both are UTC.
type OrganizationRead struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name" validate:"required,max=200"`
	OrgType         string     `json:"org_type" validate:"required,oneof=university company nonprofit government startup research"`
	Website         *string    `json:"website" validate:"omitempty,http_url"`
	Description     *string    `json:"description" validate:"omitempty,max=1000"`
	ContactPersonID *uuid.UUID `json:"contact_person_id"`
	EmployeeCount   *int       `json:"employee_count" validate:"omitempty,gte=0"`
	FoundedYear     *int       `json:"founded_year" validate:"omitempty,gte=1000,lte=2030"`
	Addresses       []Address  `json:"addresses" validate:"dive"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Apply merges the update onto cur. Timestamps are the store's concern:
// created_at carries over here and updated_at is stamped by the store
// after a successful merge.
func (u OrganizationUpdate) Apply(cur OrganizationRead) OrganizationRead {
	merged := cur
	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.OrgType != nil {
		merged.OrgType = *u.OrgType
	}
	if u.Website != nil {
		merged.Website = u.Website
	}
	if u.Description != nil {
		merged.Description = u.Description
	}
	if u.ContactPersonID != nil {
		merged.ContactPersonID = u.ContactPersonID
	}
	if u.EmployeeCount != nil {
		merged.EmployeeCount = u.EmployeeCount
	}
	if u.FoundedYear != nil {
		merged.FoundedYear = u.FoundedYear
	}
	if u.Addresses != nil {
		merged.Addresses = *u.Addresses
	}
	return merged
}

// OrganizationFilter holds the optional query parameters of
// GET /api/organizations. Name is a case-insensitive substring match
// (intentional asymmetry with the other, exact filters); City and
// Country match any embedded address.
type OrganizationFilter struct {
	Name            *string
	OrgType         *string
	FoundedYear     *int
	ContactPersonID *uuid.UUID
	City            *string
	Country         *string
}

// Matches reports whether the record satisfies every provided filter.
func (f OrganizationFilter) Matches(o OrganizationRead) bool {
	if f.Name != nil && !containsFold(o.Name, *f.Name) {
		return false
	}
	if f.OrgType != nil && o.OrgType != *f.OrgType {
		return false
	}
	if f.FoundedYear != nil && (o.FoundedYear == nil || *o.FoundedYear != *f.FoundedYear) {
		return false
	}
	if f.ContactPersonID != nil && (o.ContactPersonID == nil || *o.ContactPersonID != *f.ContactPersonID) {
		return false
	}
	if f.City != nil && !anyAddress(o.Addresses, func(a Address) bool { return a.City == *f.City }) {
		return false
	}
	if f.Country != nil && !anyAddress(o.Addresses, func(a Address) bool { return a.Country == *f.Country }) {
		return false
	}
	return true
}
