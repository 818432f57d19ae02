package memory_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashsosa-888/cloud-computing-project/internal/storage"
	"github.com/kashsosa-888/cloud-computing-project/internal/storage/memory"
	"github.com/kashsosa-888/cloud-computing-project/internal/types"
)

func ptr[T any](v T) *T { return &v }

func courseIn(code, semester string, year int) types.CourseCreate {
	return types.CourseCreate{
		CourseCode:     code,
		Title:          "Introduction to Databases",
		Credits:        ptr(3.0),
		Semester:       semester,
		Year:           year,
		DepartmentCode: "COMS",
	}
}

func personIn(uni string, addrs ...types.Address) types.PersonCreate {
	return types.PersonCreate{
		UNI:       uni,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     uni + "@example.edu",
		Addresses: addrs,
	}
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	store := memory.New()

	created, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	require.NoError(t, err)
	require.NotEqual(t, uuid.UUID{}, created.ID)
	assert.Equal(t, 0, created.CurrentEnrollment)
	assert.Equal(t, []string{}, created.Prerequisites)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := store.GetCourseByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	store := memory.New()

	_, err := store.GetCourseByID(uuid.New())
	var notFound storage.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "course", notFound.Resource)

	_, err = store.GetPersonByID(uuid.New())
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "person", notFound.Resource)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	store := memory.New()

	_, err := store.UpdateCourseByID(uuid.New(), types.CourseUpdate{Title: ptr("x")})
	var notFound storage.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	store := memory.New()

	created, err := store.CreatePerson(personIn("abc1234"))
	require.NoError(t, err)

	updated, err := store.UpdatePersonByID(created.ID, types.PersonUpdate{
		FirstName: ptr("Augusta"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UNI, updated.UNI)
	assert.Equal(t, created.LastName, updated.LastName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Addresses, updated.Addresses)

	// The replacement is visible to subsequent reads.
	got, err := store.GetPersonByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestListWithNoFiltersReturnsInsertionOrder(t *testing.T) {
	store := memory.New()

	var ids []uuid.UUID
	for _, city := range []string{"New York", "Boston", "Chicago"} {
		rec, err := store.CreateAddress(types.AddressCreate{
			Street: "1 Main St", City: city, State: "XX",
			PostalCode: "00000", Country: "USA",
		})
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	records, err := store.ListAddresses(types.AddressFilter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, ids[i], rec.ID)
	}
}

func TestListOnEmptyStoreIsEmptyNotNil(t *testing.T) {
	store := memory.New()

	records, err := store.ListCourses(types.CourseFilter{})
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestPersonCityFilterUsesAnyAddress(t *testing.T) {
	store := memory.New()

	ny := types.Address{Street: "116th St & Broadway", City: "New York", State: "NY", PostalCode: "10027", Country: "USA"}
	boston := types.Address{Street: "1 Main St", City: "Boston", State: "MA", PostalCode: "02101", Country: "USA"}

	inNY, err := store.CreatePerson(personIn("aa1111", boston, ny))
	require.NoError(t, err)
	_, err = store.CreatePerson(personIn("bb2222", boston))
	require.NoError(t, err)
	_, err = store.CreatePerson(personIn("cc3333"))
	require.NoError(t, err)

	records, err := store.ListPersons(types.PersonFilter{City: ptr("New York")})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, inNY.ID, records[0].ID)
}

func TestDuplicateCourseKeyOnCreateConflicts(t *testing.T) {
	store := memory.New()

	_, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	require.NoError(t, err)

	_, err = store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	var conflict storage.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "COMS4111 already exists for Fall 2025")

	// The failed insert left the store unmodified.
	records, err := store.ListCourses(types.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Different semester or year is a different key.
	_, err = store.CreateCourse(courseIn("COMS4111", "Spring", 2025))
	assert.NoError(t, err)
	_, err = store.CreateCourse(courseIn("COMS4111", "Fall", 2026))
	assert.NoError(t, err)
}

func TestUpdateIntoCollidingKeyConflicts(t *testing.T) {
	store := memory.New()

	_, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	require.NoError(t, err)
	second, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2026))
	require.NoError(t, err)

	// Moving the second course to 2025 would collide with the first.
	_, err = store.UpdateCourseByID(second.ID, types.CourseUpdate{Year: ptr(2025)})
	var conflict storage.ConflictError
	require.ErrorAs(t, err, &conflict)

	// Conflict aborted the update: the stored year is untouched.
	got, err := store.GetCourseByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year)

	// A non-colliding year succeeds.
	updated, err := store.UpdateCourseByID(second.ID, types.CourseUpdate{Year: ptr(2027)})
	require.NoError(t, err)
	assert.Equal(t, 2027, updated.Year)
}

func TestCourseMayKeepItsOwnKeyOnUpdate(t *testing.T) {
	store := memory.New()

	created, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	require.NoError(t, err)

	// Updating an unrelated field re-checks the key, which still belongs
	// to this record — its own identity is excluded from the scan.
	updated, err := store.UpdateCourseByID(created.ID, types.CourseUpdate{
		Title: ptr("Advanced Database Systems"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.Key(), updated.Key())
}

func TestMergedRecordIsRevalidated(t *testing.T) {
	store := memory.New()

	created, err := store.CreateCourse(courseIn("COMS4111", "Fall", 2025))
	require.NoError(t, err)

	// 3.55 has two decimal places; the merged record must be rejected.
	_, err = store.UpdateCourseByID(created.ID, types.CourseUpdate{Credits: ptr(3.55)})
	var validateErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validateErrs)

	// 10.5 is out of range.
	_, err = store.UpdateCourseByID(created.ID, types.CourseUpdate{Credits: ptr(10.5)})
	require.ErrorAs(t, err, &validateErrs)

	// Failed updates left the stored record alone.
	got, err := store.GetCourseByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Credits, got.Credits)
}

func TestTimestampsOnUpdate(t *testing.T) {
	store := memory.New()

	created, err := store.CreateOrganization(types.OrganizationCreate{
		Name:    "Columbia University",
		OrgType: "university",
	})
	require.NoError(t, err)

	updated, err := store.UpdateOrganizationByID(created.ID, types.OrganizationUpdate{
		Name: ptr("Columbia University in the City of New York"),
	})
	require.NoError(t, err)

	// created_at never moves; updated_at never goes backwards.
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}
