// Package memory implements storage.Storage with process-local maps.
//
// Storage is deliberately volatile: records live in memory and are lost
// when the process exits. Each resource type gets its own collection — a
// map from generated id to the full Read record plus an id slice that
// preserves insertion order, since List must return records in the order
// they were created (no sort is ever applied).
//
// Every collection is guarded by its own sync.RWMutex. The HTTP server
// handles requests on multiple goroutines, so merge, re-validation, the
// Course uniqueness scan, and the final map write all happen under one
// write-lock acquisition — no request ever observes a partially-applied
// update, and no failure leaves a partial write behind.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kashsosa-888/cloud-computing-project/internal/storage"
	"github.com/kashsosa-888/cloud-computing-project/internal/types"
	"github.com/kashsosa-888/cloud-computing-project/internal/validation"
)

// collection is one resource type's backing state.
type collection[R any] struct {
	resource string // lowercase singular, used in error messages
	mu       sync.RWMutex
	records  map[uuid.UUID]R
	order    []uuid.UUID // ids in insertion order
}

func newCollection[R any](resource string) collection[R] {
	return collection[R]{
		resource: resource,
		records:  make(map[uuid.UUID]R),
	}
}

// Store holds all four resource collections. Construct one per process
// (or one per test — tests get isolation from a fresh store, not from
// resetting shared globals).
type Store struct {
	addresses     collection[types.AddressRead]
	persons       collection[types.PersonRead]
	organizations collection[types.OrganizationRead]
	courses       collection[types.CourseRead]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		addresses:     newCollection[types.AddressRead]("address"),
		persons:       newCollection[types.PersonRead]("person"),
		organizations: newCollection[types.OrganizationRead]("organization"),
		courses:       newCollection[types.CourseRead]("course"),
	}
}

// ─── generic collection operations ───────────────────────────────────────

// insert adds a record under id. The caller must hold c.mu.
func insert[R any](c *collection[R], id uuid.UUID, rec R) error {
	if _, exists := c.records[id]; exists {
		return storage.ConflictError{
			Resource: c.resource,
			Detail:   fmt.Sprintf("%s with id %s already exists", c.resource, id),
		}
	}
	c.records[id] = rec
	c.order = append(c.order, id)
	return nil
}

// get fetches one record by id.
func get[R any](c *collection[R], id uuid.UUID) (R, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	if !ok {
		var zero R
		return zero, storage.NotFoundError{Resource: c.resource, ID: id}
	}
	return rec, nil
}

// listWhere scans the collection in insertion order and keeps records
// the predicate accepts. Always returns a non-nil slice so an empty
// result encodes as [] rather than null.
func listWhere[R any](c *collection[R], keep func(R) bool) []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]R, 0, len(c.order))
	for _, id := range c.order {
		if rec, ok := c.records[id]; ok && keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// update looks up id, runs merge on the stored record, and replaces the
// stored value with the result — all under the write lock, so the merge
// function may safely scan c.records (the Course uniqueness check does).
// If merge returns an error nothing is written.
func update[R any](c *collection[R], id uuid.UUID, merge func(R) (R, error)) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero R
	cur, ok := c.records[id]
	if !ok {
		return zero, storage.NotFoundError{Resource: c.resource, ID: id}
	}
	merged, err := merge(cur)
	if err != nil {
		return zero, err
	}
	c.records[id] = merged
	return merged, nil
}

// ─── Address ──────────────────────────────────────────────────────────────

func (s *Store) CreateAddress(in types.AddressCreate) (types.AddressRead, error) {
	rec := types.AddressRead{
		ID:         uuid.New(),
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}

	c := &s.addresses
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := insert(c, rec.ID, rec); err != nil {
		return types.AddressRead{}, err
	}
	return rec, nil
}

func (s *Store) ListAddresses(filter types.AddressFilter) ([]types.AddressRead, error) {
	return listWhere(&s.addresses, filter.Matches), nil
}

func (s *Store) GetAddressByID(id uuid.UUID) (types.AddressRead, error) {
	return get(&s.addresses, id)
}

func (s *Store) UpdateAddressByID(id uuid.UUID, upd types.AddressUpdate) (types.AddressRead, error) {
	return update(&s.addresses, id, func(cur types.AddressRead) (types.AddressRead, error) {
		merged := upd.Apply(cur)
		if err := validation.Struct(merged); err != nil {
			return types.AddressRead{}, err
		}
		return merged, nil
	})
}

// ─── Person ───────────────────────────────────────────────────────────────

func (s *Store) CreatePerson(in types.PersonCreate) (types.PersonRead, error) {
	rec := types.PersonRead{
		ID:        uuid.New(),
		UNI:       in.UNI,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		Addresses: nonNilAddresses(in.Addresses),
	}

	c := &s.persons
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := insert(c, rec.ID, rec); err != nil {
		return types.PersonRead{}, err
	}
	return rec, nil
}

func (s *Store) ListPersons(filter types.PersonFilter) ([]types.PersonRead, error) {
	return listWhere(&s.persons, filter.Matches), nil
}

func (s *Store) GetPersonByID(id uuid.UUID) (types.PersonRead, error) {
	return get(&s.persons, id)
}

func (s *Store) UpdatePersonByID(id uuid.UUID, upd types.PersonUpdate) (types.PersonRead, error) {
	return update(&s.persons, id, func(cur types.PersonRead) (types.PersonRead, error) {
		merged := upd.Apply(cur)
		merged.Addresses = nonNilAddresses(merged.Addresses)
		if err := validation.Struct(merged); err != nil {
			return types.PersonRead{}, err
		}
		return merged, nil
	})
}

// ─── Organization ─────────────────────────────────────────────────────────

func (s *Store) CreateOrganization(in types.OrganizationCreate) (types.OrganizationRead, error) {
	now := time.Now().UTC()
	rec := types.OrganizationRead{
		ID:              uuid.New(),
		Name:            in.Name,
		OrgType:         in.OrgType,
		Website:         in.Website,
		Description:     in.Description,
		ContactPersonID: in.ContactPersonID,
		EmployeeCount:   in.EmployeeCount,
		FoundedYear:     in.FoundedYear,
		Addresses:       nonNilAddresses(in.Addresses),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	c := &s.organizations
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := insert(c, rec.ID, rec); err != nil {
		return types.OrganizationRead{}, err
	}
	return rec, nil
}

func (s *Store) ListOrganizations(filter types.OrganizationFilter) ([]types.OrganizationRead, error) {
	return listWhere(&s.organizations, filter.Matches), nil
}

func (s *Store) GetOrganizationByID(id uuid.UUID) (types.OrganizationRead, error) {
	return get(&s.organizations, id)
}

func (s *Store) UpdateOrganizationByID(id uuid.UUID, upd types.OrganizationUpdate) (types.OrganizationRead, error) {
	return update(&s.organizations, id, func(cur types.OrganizationRead) (types.OrganizationRead, error) {
		merged := upd.Apply(cur)
		merged.Addresses = nonNilAddresses(merged.Addresses)
		if err := validation.Struct(merged); err != nil {
			return types.OrganizationRead{}, err
		}
		merged.UpdatedAt = time.Now().UTC()
		return merged, nil
	})
}

// ─── Course ───────────────────────────────────────────────────────────────

func (s *Store) CreateCourse(in types.CourseCreate) (types.CourseRead, error) {
	now := time.Now().UTC()
	rec := types.CourseRead{
		ID:                uuid.New(),
		CourseCode:        in.CourseCode,
		Title:             in.Title,
		Description:       in.Description,
		Credits:           *in.Credits, // validated required before this point
		Semester:          in.Semester,
		Year:              in.Year,
		DepartmentCode:    in.DepartmentCode,
		InstructorID:      in.InstructorID,
		MaxEnrollment:     in.MaxEnrollment,
		Prerequisites:     nonNilStrings(in.Prerequisites),
		Location:          in.Location,
		MeetingTimes:      in.MeetingTimes,
		CurrentEnrollment: 0, // server-maintained, never client-supplied
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	c := &s.courses
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.courseKeyTaken(rec.Key(), rec.ID) {
		return types.CourseRead{}, storage.CourseConflict(rec.Key())
	}
	if err := insert(c, rec.ID, rec); err != nil {
		return types.CourseRead{}, err
	}
	return rec, nil
}

func (s *Store) ListCourses(filter types.CourseFilter) ([]types.CourseRead, error) {
	return listWhere(&s.courses, filter.Matches), nil
}

func (s *Store) GetCourseByID(id uuid.UUID) (types.CourseRead, error) {
	return get(&s.courses, id)
}

func (s *Store) UpdateCourseByID(id uuid.UUID, upd types.CourseUpdate) (types.CourseRead, error) {
	return update(&s.courses, id, func(cur types.CourseRead) (types.CourseRead, error) {
		merged := upd.Apply(cur)
		merged.Prerequisites = nonNilStrings(merged.Prerequisites)
		if err := validation.Struct(merged); err != nil {
			return types.CourseRead{}, err
		}
		// Effective key after the merge: unset fields inherited from cur.
		// The record's own prior identity is excluded so a Course can be
		// updated without changing its key.
		if s.courseKeyTaken(merged.Key(), id) {
			return types.CourseRead{}, storage.CourseConflict(merged.Key())
		}
		merged.UpdatedAt = time.Now().UTC()
		return merged, nil
	})
}

// courseKeyTaken reports whether any stored Course other than exclude
// carries the composite key. The caller must hold s.courses.mu.
func (s *Store) courseKeyTaken(key types.CourseKey, exclude uuid.UUID) bool {
	for id, rec := range s.courses.records {
		if id != exclude && rec.Key() == key {
			return true
		}
	}
	return false
}

// nonNilAddresses normalises a nil list to an empty one so reads encode
// as [] rather than null.
func nonNilAddresses(addrs []types.Address) []types.Address {
	if addrs == nil {
		return []types.Address{}
	}
	return addrs
}

func nonNilStrings(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// Ensure Store implements storage.Storage.
var _ storage.Storage = (*Store)(nil)
