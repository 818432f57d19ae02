// Package storage defines the Storage interface — a contract that any
// record store must satisfy to work with this application — plus the
// typed errors every backend reports.
//
// Handlers depend only on this interface, never on a concrete store.
// Swapping the in-memory backend for something durable would mean
// implementing these methods and changing one line in main.go; handler
// code and tests stay untouched.
//
// There are deliberately no Delete methods: the API has no delete
// operation. Records live until the process exits.
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kashsosa-888/cloud-computing-project/internal/types"
)

// Storage is the record-store contract, four resources wide.
//
// Create inserts a freshly validated payload and returns the stored
// record with its generated id (and timestamps where the resource has
// them). List scans the collection in insertion order and keeps records
// matching the filter; it never fails on an empty result. Get fetches
// one record by id. Update merges a partial payload onto the stored
// record, re-validates the merged result, and replaces the stored value.
//
// Course Create/Update additionally enforce the composite-key uniqueness
// of (course_code, semester, year) and fail with a ConflictError rather
// than store a duplicate. Every failure leaves the store unmodified.
type Storage interface {
	CreateAddress(in types.AddressCreate) (types.AddressRead, error)
	ListAddresses(filter types.AddressFilter) ([]types.AddressRead, error)
	GetAddressByID(id uuid.UUID) (types.AddressRead, error)
	UpdateAddressByID(id uuid.UUID, upd types.AddressUpdate) (types.AddressRead, error)

	CreatePerson(in types.PersonCreate) (types.PersonRead, error)
	ListPersons(filter types.PersonFilter) ([]types.PersonRead, error)
	GetPersonByID(id uuid.UUID) (types.PersonRead, error)
	UpdatePersonByID(id uuid.UUID, upd types.PersonUpdate) (types.PersonRead, error)

	CreateOrganization(in types.OrganizationCreate) (types.OrganizationRead, error)
	ListOrganizations(filter types.OrganizationFilter) ([]types.OrganizationRead, error)
	GetOrganizationByID(id uuid.UUID) (types.OrganizationRead, error)
	UpdateOrganizationByID(id uuid.UUID, upd types.OrganizationUpdate) (types.OrganizationRead, error)

	CreateCourse(in types.CourseCreate) (types.CourseRead, error)
	ListCourses(filter types.CourseFilter) ([]types.CourseRead, error)
	GetCourseByID(id uuid.UUID) (types.CourseRead, error)
	UpdateCourseByID(id uuid.UUID, upd types.CourseUpdate) (types.CourseRead, error)
}

// NotFoundError reports a lookup for an id the store has never seen
// (or that belongs to a different resource type). Maps to HTTP 404.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports a write the store refused because it would
// violate a uniqueness guarantee: a duplicate id on insert, or a Course
// whose (course_code, semester, year) is already taken by another
// record. Maps to HTTP 400.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e ConflictError) Error() string {
	return e.Detail
}

// CourseConflict builds the ConflictError for a taken composite key.
func CourseConflict(key types.CourseKey) ConflictError {
	return ConflictError{
		Resource: "course",
		Detail: fmt.Sprintf("course %s already exists for %s %d",
			key.CourseCode, key.Semester, key.Year),
	}
}
