package types_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kashsosa-888/cloud-computing-project/internal/types"
)

func ptr[T any](v T) *T { return &v }

func storedCourse() types.CourseRead {
	return types.CourseRead{
		ID:                uuid.New(),
		CourseCode:        "COMS4111",
		Title:             "Introduction to Databases",
		Description:       ptr("Fundamentals of database design."),
		Credits:           3.0,
		Semester:          "Fall",
		Year:              2025,
		DepartmentCode:    "COMS",
		MaxEnrollment:     ptr(120),
		Prerequisites:     []string{"COMS1004"},
		Location:          ptr("Mudd 233"),
		CurrentEnrollment: 85,
		CreatedAt:         time.Date(2025, 1, 15, 10, 20, 30, 0, time.UTC),
		UpdatedAt:         time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestCourseUpdateAppliesOnlySetFields(t *testing.T) {
	cur := storedCourse()
	merged := types.CourseUpdate{
		Title: ptr("Advanced Database Systems"),
		Year:  ptr(2026),
	}.Apply(cur)

	assert.Equal(t, "Advanced Database Systems", merged.Title)
	assert.Equal(t, 2026, merged.Year)

	// Everything the payload left unset carries over unchanged.
	assert.Equal(t, cur.ID, merged.ID)
	assert.Equal(t, cur.CourseCode, merged.CourseCode)
	assert.Equal(t, cur.Description, merged.Description)
	assert.Equal(t, cur.Credits, merged.Credits)
	assert.Equal(t, cur.Semester, merged.Semester)
	assert.Equal(t, cur.MaxEnrollment, merged.MaxEnrollment)
	assert.Equal(t, cur.Prerequisites, merged.Prerequisites)
	assert.Equal(t, cur.Location, merged.Location)
	assert.Equal(t, cur.CurrentEnrollment, merged.CurrentEnrollment)
	assert.Equal(t, cur.CreatedAt, merged.CreatedAt)
}

func TestCourseUpdateEmptyPayloadIsIdentity(t *testing.T) {
	cur := storedCourse()
	assert.Equal(t, cur, types.CourseUpdate{}.Apply(cur))
}

func TestCourseUpdateReplacesPrerequisitesWholesale(t *testing.T) {
	cur := storedCourse()
	merged := types.CourseUpdate{
		Prerequisites: ptr([]string{"COMS3134", "COMS3203"}),
	}.Apply(cur)

	assert.Equal(t, []string{"COMS3134", "COMS3203"}, merged.Prerequisites)
}

func TestPersonUpdateReplacesAddressesWholesale(t *testing.T) {
	cur := types.PersonRead{
		ID:        uuid.New(),
		UNI:       "abc1234",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.edu",
		Addresses: []types.Address{
			{Street: "1 Old St", City: "London", State: "LDN", PostalCode: "E1", Country: "UK"},
			{Street: "2 Old St", City: "London", State: "LDN", PostalCode: "E2", Country: "UK"},
		},
	}

	newList := []types.Address{
		{Street: "116th St & Broadway", City: "New York", State: "NY", PostalCode: "10027", Country: "USA"},
	}
	merged := types.PersonUpdate{Addresses: &newList}.Apply(cur)

	// The stored list is replaced, not merged element-by-element.
	assert.Equal(t, newList, merged.Addresses)
	assert.Equal(t, cur.UNI, merged.UNI)
	assert.Equal(t, cur.Email, merged.Email)
}

func TestOrganizationUpdateCarriesTimestamps(t *testing.T) {
	cur := types.OrganizationRead{
		ID:        uuid.New(),
		Name:      "Columbia University",
		OrgType:   "university",
		Addresses: []types.Address{},
		CreatedAt: time.Date(2025, 1, 15, 10, 20, 30, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC),
	}

	merged := types.OrganizationUpdate{Name: ptr("Columbia")}.Apply(cur)

	assert.Equal(t, "Columbia", merged.Name)
	// created_at is immutable; updated_at is the store's job, Apply
	// leaves both alone.
	assert.Equal(t, cur.CreatedAt, merged.CreatedAt)
	assert.Equal(t, cur.UpdatedAt, merged.UpdatedAt)
}
