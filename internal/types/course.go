package types

import (
	"time"

	"github.com/google/uuid"
)

// CourseCreate is the POST /api/courses payload.
//
// credits is a pointer so that an explicit 0.0 (a valid credit value)
// can be told apart from a missing field. instructor_id references a
// Person but is not checked against the person store.
type CourseCreate struct {
	CourseCode     string     `json:"course_code" validate:"required,course_code"`
	Title          string     `json:"title" validate:"required,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	Credits        *float64   `json:"credits" validate:"required,gte=0,lte=10,credits"`
	Semester       string     `json:"semester" validate:"required,oneof=Fall Spring Summer"`
	Year           int        `json:"year" validate:"required,gte=2020,lte=2040"`
	DepartmentCode string     `json:"department_code" validate:"required,department_code"`
	InstructorID   *uuid.UUID `json:"instructor_id"`
	MaxEnrollment  *int       `json:"max_enrollment" validate:"omitempty,gte=1,lte=1000"`
	Prerequisites  []string   `json:"prerequisites" validate:"dive,course_code"`
	Location       *string    `json:"location" validate:"omitempty,max=100"`
	MeetingTimes   *string    `json:"meeting_times" validate:"omitempty,max=200"`
}

// CourseUpdate is the PATCH payload; supply only fields to change.
// A supplied prerequisites list replaces the stored list wholesale.
// current_enrollment is server-maintained and deliberately absent.
type CourseUpdate struct {
	CourseCode     *string    `json:"course_code" validate:"omitempty,course_code"`
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	Credits        *float64   `json:"credits" validate:"omitempty,gte=0,lte=10,credits"`
	Semester       *string    `json:"semester" validate:"omitempty,oneof=Fall Spring Summer"`
	Year           *int       `json:"year" validate:"omitempty,gte=2020,lte=2040"`
	DepartmentCode *string    `json:"department_code" validate:"omitempty,department_code"`
	InstructorID   *uuid.UUID `json:"instructor_id"`
	MaxEnrollment  *int       `json:"max_enrollment" validate:"omitempty,gte=1,lte=1000"`
	Prerequisites  *[]string  `json:"prerequisites" validate:"omitempty,dive,course_code"`
	Location       *string    `json:"location" validate:"omitempty,max=100"`
	MeetingTimes   *string    `json:"meeting_times" validate:"omitempty,max=200"`
}

// CourseRead is the stored record returned to clients.
type CourseRead struct {
	ID                uuid.UUID  `json:"id"`
	CourseCode        string     `json:"course_code" validate:"required,course_code"`
	Title             string     `json:"title" validate:"required,max=200"`
	Description       *string    `json:"description" validate:"omitempty,max=2000"`
	Credits           float64    `json:"credits" validate:"gte=0,lte=10,credits"`
	Semester          string     `json:"semester" validate:"required,oneof=Fall Spring Summer"`
	Year              int        `json:"year" validate:"required,gte=2020,lte=2040"`
	DepartmentCode    string     `json:"department_code" validate:"required,department_code"`
	InstructorID      *uuid.UUID `json:"instructor_id"`
	MaxEnrollment     *int       `json:"max_enrollment" validate:"omitempty,gte=1,lte=1000"`
	Prerequisites     []string   `json:"prerequisites" validate:"dive,course_code"`
	Location          *string    `json:"location" validate:"omitempty,max=100"`
	MeetingTimes      *string    `json:"meeting_times" validate:"omitempty,max=200"`
	CurrentEnrollment int        `json:"current_enrollment" validate:"gte=0"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CourseKey is the composite uniqueness key: at most one stored Course
// may carry a given (course_code, semester, year) at any time.
type CourseKey struct {
	CourseCode string
	Semester   string
	Year       int
}

// Key returns the record's composite key.
func (c CourseRead) Key() CourseKey {
	return CourseKey{CourseCode: c.CourseCode, Semester: c.Semester, Year: c.Year}
}

// Apply merges the update onto cur. created_at and current_enrollment
// always carry over; updated_at is stamped by the store afterwards.
func (u CourseUpdate) Apply(cur CourseRead) CourseRead {
	merged := cur
	if u.CourseCode != nil {
		merged.CourseCode = *u.CourseCode
	}
	if u.Title != nil {
		merged.Title = *u.Title
	}
	if u.Description != nil {
		merged.Description = u.Description
	}
	if u.Credits != nil {
		merged.Credits = *u.Credits
	}
	if u.Semester != nil {
		merged.Semester = *u.Semester
	}
	if u.Year != nil {
		merged.Year = *u.Year
	}
	if u.DepartmentCode != nil {
		merged.DepartmentCode = *u.DepartmentCode
	}
	if u.InstructorID != nil {
		merged.InstructorID = u.InstructorID
	}
	if u.MaxEnrollment != nil {
		merged.MaxEnrollment = u.MaxEnrollment
	}
	if u.Prerequisites != nil {
		merged.Prerequisites = *u.Prerequisites
	}
	if u.Location != nil {
		merged.Location = u.Location
	}
	if u.MeetingTimes != nil {
		merged.MeetingTimes = u.MeetingTimes
	}
	return merged
}

// CourseFilter holds the optional query parameters of GET /api/courses.
// Title is a case-insensitive substring match; Credits is an exact
// numeric match while MinCredits/MaxCredits are inclusive bounds.
type CourseFilter struct {
	CourseCode     *string
	Title          *string
	DepartmentCode *string
	Semester       *string
	Year           *int
	InstructorID   *uuid.UUID
	Credits        *float64
	MinCredits     *float64
	MaxCredits     *float64
}

// Matches reports whether the record satisfies every provided filter.
func (f CourseFilter) Matches(c CourseRead) bool {
	if f.CourseCode != nil && c.CourseCode != *f.CourseCode {
		return false
	}
	if f.Title != nil && !containsFold(c.Title, *f.Title) {
		return false
	}
	if f.DepartmentCode != nil && c.DepartmentCode != *f.DepartmentCode {
		return false
	}
	if f.Semester != nil && c.Semester != *f.Semester {
		return false
	}
	if f.Year != nil && c.Year != *f.Year {
		return false
	}
	if f.InstructorID != nil && (c.InstructorID == nil || *c.InstructorID != *f.InstructorID) {
		return false
	}
	if f.Credits != nil && c.Credits != *f.Credits {
		return false
	}
	if f.MinCredits != nil && c.Credits < *f.MinCredits {
		return false
	}
	if f.MaxCredits != nil && c.Credits > *f.MaxCredits {
		return false
	}
	return true
}
